package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "covmap.dev/pkg/covmap/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayResolutions prints one row per reported path.
func (s *SimpleUI) DisplayResolutions(ctx context.Context, resolutions []m.Resolution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(resolutions) == 0 {
		s.printf("No coverage paths to resolve\n")
		return nil
	}

	s.printf("\n%s", renderResolutionsTable(resolutions, false))

	return nil
}

// DisplayStatistics prints the run summary.
func (s *SimpleUI) DisplayStatistics(ctx context.Context, stats m.Statistics) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s\n%s", stats.String(), renderStatisticsTable(stats))

	return nil
}

// DisplayIndex prints the indexed files.
func (s *SimpleUI) DisplayIndex(ctx context.Context, files []m.InputFile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(files) == 0 {
		s.printf("No files indexed\n")
		return nil
	}

	s.printf("\n%s", renderIndexTable(files))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
