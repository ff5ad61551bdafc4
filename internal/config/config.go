// Package config holds the engine's own tuning knobs and the fixed-layout
// data-file paths a Chedaka loads from a single base directory.
//
// This is deliberately not outer CLI/file-path plumbing — a caller
// embedding this module still has to tell Chedaka.New where its data
// lives and, optionally, override a handful of search-tuning constants
// (the transition-model smoothing floor, the priority-queue beam width).
// Those knobs are what this package covers.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// DefaultLogEpsilon is the smoothing floor applied to unseen Markov
// transitions, defaulting to -5.0. Options may override it, but a
// compatible implementation must keep -5.0 as the default.
const DefaultLogEpsilon = -5.0

// Options are the engine's runtime-tunable knobs, loadable from a small
// YAML file the way translitkit's common/schemes.go loads its own
// provider configuration.
type Options struct {
	// LogEpsilon is the log10 probability assigned to a Markov transition
	// never observed in training data.
	LogEpsilon float64 `yaml:"log_epsilon"`
	// BeamWidth bounds the chedaka's priority queue to the BeamWidth
	// highest-scoring partials after each push; 0 means unbounded. Closes
	// the resource-safety gap an unbounded search queue would otherwise
	// leave open on adversarial input.
	BeamWidth int `yaml:"beam_width"`
}

// DefaultOptions returns the engine's default tuning: the -5.0 smoothing
// floor, and an unbounded queue.
func DefaultOptions() Options {
	return Options{
		LogEpsilon: DefaultLogEpsilon,
		BeamWidth:  0,
	}
}

// LoadOptions reads Options from a YAML file at path, filling in defaults
// for any zero-valued field LogEpsilon (since 0.0 is not a meaningful log
// probability floor, an explicit zero in the file is treated as "unset").
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, errors.Wrapf(err, "reading options file %q", path)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, errors.Wrapf(err, "parsing options file %q", path)
	}
	if opts.LogEpsilon == 0 {
		opts.LogEpsilon = DefaultLogEpsilon
	}
	return opts, nil
}

// DataPaths joins the fixed relative filenames a Chedaka's three
// subsystems load against one base directory, mirroring
// vidyut-cheda/src/chedaka.rs's Config::sandhi_rules/kosha_path/model_path.
type DataPaths struct {
	base string
}

// NewDataPaths returns a DataPaths rooted at base.
func NewDataPaths(base string) DataPaths {
	return DataPaths{base: base}
}

// SandhiRules is the tab-separated (first_tail, second_head, joined) table.
func (d DataPaths) SandhiRules() string {
	return filepath.Join(d.base, "sandhi-rules.tsv")
}

// PadaTable is the surface-form → morphological-entry table.
func (d DataPaths) PadaTable() string {
	return filepath.Join(d.base, "padas.tsv")
}

// StemTable is the stem → pratipadika table.
func (d DataPaths) StemTable() string {
	return filepath.Join(d.base, "stems.tsv")
}

// EndingTable is the ending → (stem-ending, sample-subanta) table.
func (d DataPaths) EndingTable() string {
	return filepath.Join(d.base, "endings.tsv")
}

// LemmaCounts is the (lemma, pos_tag, count) CSV feeding the lemma model.
func (d DataPaths) LemmaCounts() string {
	return filepath.Join(d.base, "lemma_counts.csv")
}

// Transitions is the (state_from, state_to, probability) CSV feeding the
// transition model.
func (d DataPaths) Transitions() string {
	return filepath.Join(d.base, "transitions.csv")
}

// Snapshot is the gob-encoded serialized Kosha+SandhiMap+Model.
func (d DataPaths) Snapshot() string {
	return filepath.Join(d.base, "snapshot.gob")
}
