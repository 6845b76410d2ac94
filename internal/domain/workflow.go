// Package domain holds the coverage-path resolution logic and the workflows the
// CLI commands drive.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"covmap.dev/pkg/covmap/internal/adapter"
	"covmap.dev/pkg/covmap/internal/controller"
	m "covmap.dev/pkg/covmap/internal/model"
)

// memoSize bounds the number of distinct raw paths remembered during one import.
const memoSize = 4096

// IndexArgs selects the files the index is built from.
type IndexArgs struct {
	Root      m.Path
	Languages map[string][]string
	Exclude   []string
}

// ResolveArgs resolves explicit raw paths.
type ResolveArgs struct {
	IndexArgs
	Paths    []string
	Language m.Language
	BaseDir  string
	Strategy Strategy
}

// ImportArgs resolves every path of a path list and saves the run.
type ImportArgs struct {
	ResolveArgs
	Source  m.Path
	Reports m.Path
	Threads int
}

// ViewArgs displays a saved run.
type ViewArgs struct {
	Reports m.Path
}

// Workflow is the entry point the CLI commands call.
type Workflow interface {
	Index(ctx context.Context, args IndexArgs) error
	Resolve(ctx context.Context, args ResolveArgs) error
	Import(ctx context.Context, args ImportArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.IndexBuilder
	adapter.PathListReader
	adapter.ReportStore
	controller.UI
	logger *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	builder adapter.IndexBuilder,
	reader adapter.PathListReader,
	store adapter.ReportStore,
	ui controller.UI,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &workflow{
		IndexBuilder:   builder,
		PathListReader: reader,
		ReportStore:    store,
		UI:             ui,
		logger:         logger,
	}
}

// Index builds the file index and lists it.
func (w *workflow) Index(ctx context.Context, args IndexArgs) error {
	index, err := w.buildIndex(ctx, args)
	if err != nil {
		return err
	}

	return w.DisplayIndex(ctx, index.AllFiles())
}

// Resolve resolves args.Paths one by one and displays the outcomes.
func (w *workflow) Resolve(ctx context.Context, args ResolveArgs) error {
	index, err := w.buildIndex(ctx, args.IndexArgs)
	if err != nil {
		return err
	}

	resolver := NewResolver(ResolverConfig{Language: args.Language, BaseDir: args.BaseDir}, index, w.logger)

	resolutions := make([]m.Resolution, 0, len(args.Paths))
	for _, raw := range args.Paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		resolutions = append(resolutions, resolver.Lookup(raw, args.Strategy))
	}

	return w.DisplayResolutions(ctx, resolutions)
}

// Import runs a full ingestion: index, read the path list, resolve every entry,
// summarise, display and save. Unresolved entries never abort the run.
func (w *workflow) Import(ctx context.Context, args ImportArgs) error {
	run := m.Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Root:      args.Root,
		BaseDir:   args.BaseDir,
		Language:  args.Language,
		Strategy:  string(args.Strategy),
	}
	logger := w.logger.With("run_id", run.ID)

	index, err := w.buildIndex(ctx, args.IndexArgs)
	if err != nil {
		return err
	}

	paths, err := w.Read(ctx, args.Source)
	if err != nil {
		logger.Error("Failed to read path list", "source", args.Source, "error", err)
		return fmt.Errorf("read path list: %w", err)
	}

	logger.Debug("Resolving coverage paths", "entries", len(paths), "indexed", index.Len(), "threads", args.Threads)

	resolver := NewResolver(ResolverConfig{Language: args.Language, BaseDir: args.BaseDir}, index, logger)

	run.Resolutions, err = resolveAll(ctx, resolver, args.Strategy, paths, args.Threads)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	run.Statistics = m.Summarize(run.Resolutions)
	logger.Info(run.Statistics.String())

	if run.Statistics.Entries > 0 && run.Statistics.Resolved == 0 {
		logger.Warn("The coverage report doesn't contain any coverage data for the indexed files")
	}

	if err := w.DisplayResolutions(ctx, run.Resolutions); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if err := w.DisplayStatistics(ctx, run.Statistics); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if args.Reports == "" {
		return nil
	}

	if err := w.SaveRun(args.Reports, run); err != nil {
		logger.Error("Failed to save run", "reports", args.Reports, "error", err)
		return fmt.Errorf("save run: %w", err)
	}

	return nil
}

// View displays a run saved by Import.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	run, err := w.LoadRun(args.Reports)
	if err != nil {
		return fmt.Errorf("load run: %w", err)
	}

	if err := w.DisplayResolutions(ctx, run.Resolutions); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return w.DisplayStatistics(ctx, run.Statistics)
}

func (w *workflow) buildIndex(ctx context.Context, args IndexArgs) (*adapter.MemoryIndex, error) {
	index, err := w.Build(ctx, adapter.BuildArgs{
		Root:      args.Root,
		Languages: args.Languages,
		Exclude:   args.Exclude,
	})
	if err != nil {
		w.logger.Error("Failed to build file index", "root", args.Root, "error", err)
		return nil, fmt.Errorf("build index: %w", err)
	}

	return index, nil
}

// resolveAll resolves paths on up to threads goroutines. Results keep the input
// order. Repeated raw paths are answered from a bounded memo.
func resolveAll(ctx context.Context, resolver *Resolver, strategy Strategy, paths []string, threads int) ([]m.Resolution, error) {
	if threads < 1 {
		threads = 1
	}

	memo, err := lru.New[string, m.Resolution](memoSize)
	if err != nil {
		return nil, err
	}

	results := make([]m.Resolution, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, raw := range paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			if res, ok := memo.Get(raw); ok {
				results[i] = res
				return nil
			}

			res := resolver.Lookup(raw, strategy)
			memo.Add(raw, res)
			results[i] = res

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
