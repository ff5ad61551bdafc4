// Command vidyut-cheda-smoketest wires the module together end to end: it
// loads a data directory's sandhi rules, kosha tables, and scoring tables,
// then runs a handful of sample inputs through Chedaka.Run and prints the
// resulting tokens. It is not a CLI surface — no flags, no subcommands —
// just enough to exercise the library during development.
package main

import (
	"fmt"
	"os"
	"time"

	vidyutcheda "github.com/ambuda-org/vidyut-cheda-go"
	"github.com/rs/zerolog"
)

var sampleInputs = []string{
	"rAmogacCati",
	"tatra",
	"rAma 123",
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <data-dir>\n", os.Args[0])
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	start := time.Now()
	cheda, err := vidyutcheda.New(os.Args[1])
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load data directory")
	}
	fmt.Fprintf(os.Stderr, "loaded in %s\n\n", time.Since(start).Round(time.Millisecond))

	for _, input := range sampleInputs {
		tokens, err := cheda.Run(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%-16s ERROR: %v\n", input, err)
			continue
		}
		fmt.Printf("%s\n", input)
		for _, tok := range tokens {
			fmt.Printf("  %-12s %s\n", tok.Text, tok.Data.Tag)
		}
	}
}
