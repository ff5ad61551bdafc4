package sandhi

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
)

var updateGolden = flag.Bool("update", false, "regenerate golden fixtures instead of checking them")

const goldenPath = "testdata/golden/split_all.json"

type ruleFixture struct {
	Joined string `json:"joined"`
	First  string `json:"first"`
	Second string `json:"second"`
}

type splitFixture struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Kind   string `json:"kind"`
}

type goldenCase struct {
	Name  string         `json:"name"`
	Rules []ruleFixture  `json:"rules"`
	Input string         `json:"input"`
	Want  []splitFixture `json:"want"`
}

func loadGolden(t *testing.T) []goldenCase {
	t.Helper()
	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading %s: %v", goldenPath, err)
	}
	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("unmarshaling %s: %v", goldenPath, err)
	}
	return cases
}

func kindName(k Kind) string {
	if k == KindStandardSandhi {
		return "sandhi"
	}
	return "prefix"
}

func splitterFromFixture(tc goldenCase) *Splitter {
	m := NewMap()
	for _, r := range tc.Rules {
		m.Insert(r.Joined, Rule{First: r.First, Second: r.Second})
	}
	return NewSplitter(m)
}

// TestGolden runs SplitAll against the rule tables and inputs in
// testdata/golden/split_all.json and checks the returned splits, in
// order, against each case's declared want list. Run with -update to
// regenerate the fixture after an intentional change to SplitAll's
// enumeration order.
func TestGolden(t *testing.T) {
	cases := loadGolden(t)

	if *updateGolden {
		for i, tc := range cases {
			splitter := splitterFromFixture(tc)
			got := splitter.SplitAll(tc.Input)
			want := make([]splitFixture, len(got))
			for j, s := range got {
				want[j] = splitFixture{First: s.First, Second: s.Second, Kind: kindName(s.Kind)}
			}
			cases[i].Want = want
		}
		data, err := json.MarshalIndent(cases, "", "  ")
		if err != nil {
			t.Fatalf("marshaling updated golden: %v", err)
		}
		if err := os.WriteFile(goldenPath, append(data, '\n'), 0o644); err != nil {
			t.Fatalf("writing %s: %v", goldenPath, err)
		}
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			splitter := splitterFromFixture(tc)
			got := splitter.SplitAll(tc.Input)

			if len(got) != len(tc.Want) {
				t.Fatalf("SplitAll(%q) produced %d splits, want %d: got %+v", tc.Input, len(got), len(tc.Want), got)
			}
			for i, want := range tc.Want {
				g := got[i]
				if g.First != want.First || g.Second != want.Second || kindName(g.Kind) != want.Kind {
					t.Errorf("split %d = {%q, %q, %s}, want {%q, %q, %s}",
						i, g.First, g.Second, kindName(g.Kind), want.First, want.Second, want.Kind)
				}
			}
		})
	}
}
