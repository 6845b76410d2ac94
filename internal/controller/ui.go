// Package controller provides the output adapters that display resolutions,
// run statistics and index listings.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "covmap.dev/pkg/covmap/internal/model"
)

// UI defines the interface for displaying resolution results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayResolutions(ctx context.Context, resolutions []m.Resolution) error
	DisplayStatistics(ctx context.Context, stats m.Statistics) error
	DisplayIndex(ctx context.Context, files []m.InputFile) error
}

// NewUI returns a TUI when output is a terminal and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
