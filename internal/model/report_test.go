package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	a := InputFile{AbsolutePath: "/repo/a.cs", Language: "cs"}
	b := InputFile{AbsolutePath: "/repo/b.vb", Language: "vbnet"}

	stats := Summarize([]Resolution{
		{RawPath: "a.cs", Outcome: Resolved, File: &a},
		{RawPath: "/_/a.cs", Outcome: Resolved, File: &a},
		{RawPath: "b.vb", Outcome: Resolved, File: &b},
		{RawPath: "legacy.cs", Outcome: Resolved},
		{RawPath: "missing.cs", Outcome: NotFound},
		{RawPath: "dup.cs", Outcome: Ambiguous, Candidates: 2},
	})

	assert.Equal(t, Statistics{
		Entries:   6,
		Files:     2,
		Resolved:  4,
		NotFound:  1,
		Ambiguous: 1,
		Languages: map[Language]int{"cs": 1, "vbnet": 1},
	}, stats)
}

func TestSummarize_Empty(t *testing.T) {
	stats := Summarize(nil)

	assert.Zero(t, stats.Entries)
	assert.Zero(t, stats.Files)
	assert.Empty(t, stats.Languages)
}

func TestStatistics_String(t *testing.T) {
	stats := Statistics{Entries: 10, Files: 3, Resolved: 7, NotFound: 2, Ambiguous: 1}

	assert.Equal(t,
		"Coverage Report Statistics: 10 entries, 3 files, 7 resolved, 2 not found, 1 ambiguous.",
		stats.String())
}

func TestOutcome_Skipped(t *testing.T) {
	assert.False(t, Resolved.Skipped())
	assert.True(t, NotFound.Skipped())
	assert.True(t, Ambiguous.Skipped())
}
