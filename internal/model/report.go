package model

import (
	"fmt"
	"time"
)

// Outcome is the result category of resolving one reported path.
type Outcome string

const (
	// Resolved means exactly one indexed file matched.
	Resolved Outcome = "resolved"
	// NotFound means no indexed file matched.
	NotFound Outcome = "not_found"
	// Ambiguous means more than one indexed file matched; the entry is skipped.
	Ambiguous Outcome = "ambiguous"
)

// Skipped reports whether a coverage entry with this outcome contributes nothing.
func (o Outcome) Skipped() bool {
	return o != Resolved
}

// Resolution is the answer for a single raw path taken from a coverage report.
type Resolution struct {
	RawPath    string     `yaml:"raw_path"`
	Normalized string     `yaml:"normalized"`
	Outcome    Outcome    `yaml:"outcome"`
	File       *InputFile `yaml:"file,omitempty"`
	Candidates int        `yaml:"candidates"`
}

// Statistics aggregates the resolutions of one run.
type Statistics struct {
	Entries   int              `yaml:"entries"`
	Files     int              `yaml:"files"`
	Resolved  int              `yaml:"resolved"`
	NotFound  int              `yaml:"not_found"`
	Ambiguous int              `yaml:"ambiguous"`
	Languages map[Language]int `yaml:"languages,omitempty"`
}

// Summarize counts outcomes. Files is the number of distinct indexed files that
// received at least one entry; Languages counts those files per language.
func Summarize(resolutions []Resolution) Statistics {
	stats := Statistics{Languages: map[Language]int{}}
	seen := make(map[Path]struct{})

	for _, r := range resolutions {
		stats.Entries++

		switch r.Outcome {
		case Resolved:
			stats.Resolved++

			if r.File == nil {
				continue
			}

			if _, ok := seen[r.File.AbsolutePath]; ok {
				continue
			}

			seen[r.File.AbsolutePath] = struct{}{}
			stats.Files++
			stats.Languages[r.File.Language]++
		case NotFound:
			stats.NotFound++
		case Ambiguous:
			stats.Ambiguous++
		}
	}

	return stats
}

// String renders the one-line summary written to the log at the end of a run.
func (s Statistics) String() string {
	return fmt.Sprintf(
		"Coverage Report Statistics: %d entries, %d files, %d resolved, %d not found, %d ambiguous.",
		s.Entries, s.Files, s.Resolved, s.NotFound, s.Ambiguous,
	)
}

// Run is a persisted import run.
type Run struct {
	ID          string       `yaml:"id"`
	CreatedAt   time.Time    `yaml:"created_at"`
	Root        Path         `yaml:"root"`
	BaseDir     string       `yaml:"base_dir,omitempty"`
	Language    Language     `yaml:"language"`
	Strategy    string       `yaml:"strategy"`
	Statistics  Statistics   `yaml:"statistics"`
	Resolutions []Resolution `yaml:"resolutions"`
}
