package domain

import (
	"fmt"
	"log/slog"
	"strings"

	"covmap.dev/pkg/covmap/internal/adapter"
	"covmap.dev/pkg/covmap/internal/domain/sourcepath"
	m "covmap.dev/pkg/covmap/internal/model"
)

// Strategy selects how a reported path is looked up in the file index.
type Strategy string

const (
	// StrategyAbsolute matches the normalised path against indexed absolute paths
	// exactly. Kept for older report layouts.
	StrategyAbsolute Strategy = "absolute"
	// StrategyRelative matches the stripped path against indexed relative paths
	// exactly. Kept for older report layouts.
	StrategyRelative Strategy = "relative"
	// StrategyContains looks for indexed absolute paths containing the stripped,
	// slash-form path and refuses ambiguous matches.
	StrategyContains Strategy = "contains"
)

// DefaultStrategy is the strategy used when none is configured.
const DefaultStrategy = StrategyContains

// ParseStrategy converts a configuration value to a Strategy.
func ParseStrategy(value string) (Strategy, error) {
	switch s := Strategy(strings.ToLower(strings.TrimSpace(value))); s {
	case "":
		return DefaultStrategy, nil
	case StrategyAbsolute, StrategyRelative, StrategyContains:
		return s, nil
	default:
		return "", fmt.Errorf("unknown resolution strategy %q (want absolute, relative or contains)", value)
	}
}

// ResolverConfig is the configuration captured when a Resolver is built.
type ResolverConfig struct {
	// Language restricts matches to indexed files of this language. Empty matches any.
	Language m.Language
	// BaseDir is the project base directory substituted for the POSIX sentinel
	// in absolute lookups. Optional.
	BaseDir string
}

// Resolver maps paths reported by coverage tools onto indexed files. It holds
// no mutable state and may be used from several goroutines.
type Resolver struct {
	index      adapter.FileIndex
	normalizer *sourcepath.Normalizer
	language   m.Language
	logger     *slog.Logger
}

// NewResolver builds a Resolver over index. A missing base directory is logged
// once here and disables base-directory substitution.
func NewResolver(cfg ResolverConfig, index adapter.FileIndex, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if cfg.BaseDir == "" {
		logger.Warn("project base directory not configured; deterministic source paths will only be stripped")
	} else {
		logger.Info("deterministic source paths will be replaced with the project base directory",
			"sentinel", sourcepath.PosixSentinel, "base_dir", cfg.BaseDir)
	}

	return &Resolver{
		index:      index,
		normalizer: sourcepath.NewNormalizer(cfg.BaseDir, logger),
		language:   cfg.Language,
		logger:     logger,
	}
}

// IsSupportedAbsolute reports whether the index has a file of the configured
// language whose absolute path equals the normalised raw path.
func (r *Resolver) IsSupportedAbsolute(raw string) bool {
	path := r.normalizer.ForAbsolute(raw)
	found := r.index.HasFiles(adapter.And(adapter.HasAbsolutePath(path), r.languagePredicate()))
	r.logger.Debug("absolute path lookup", "path", path, "found", found)

	return found
}

// IsSupportedRelative reports whether the index has a file of the configured
// language whose relative path equals the stripped raw path.
func (r *Resolver) IsSupportedRelative(raw string) bool {
	path := r.normalizer.ForRelative(raw)
	found := r.index.HasFiles(adapter.And(adapter.HasRelativePath(path), r.languagePredicate()))
	r.logger.Debug("relative path lookup", "path", path, "found", found)

	return found
}

// Resolve finds the single indexed file whose absolute path contains the
// stripped, slash-form raw path. Zero or several candidates leave the entry
// unresolved; candidates are never ranked.
func (r *Resolver) Resolve(raw string) m.Resolution {
	path := sourcepath.ToSlashForm(r.normalizer.ForRelative(raw))
	res := m.Resolution{RawPath: raw, Normalized: path}

	if path == "" {
		res.Outcome = m.NotFound
		r.logger.Debug("empty coverage path, skipped", "path", raw)

		return res
	}

	var found m.InputFile

	for _, file := range r.index.AllFiles() {
		if r.language != "" && file.Language != r.language {
			continue
		}

		if strings.Contains(sourcepath.ToSlashForm(string(file.AbsolutePath)), path) {
			res.Candidates++
			found = file
		}
	}

	switch res.Candidates {
	case 0:
		res.Outcome = m.NotFound
		r.logger.Debug("path is not indexed as an absolute or relative path; coverage entry skipped, verify the source inclusion settings",
			"path", path)
	case 1:
		res.Outcome = m.Resolved
		res.File = &found
		r.logger.Debug("found indexed file for coverage entry", "file", found.AbsolutePath, "path", path)
	default:
		res.Outcome = m.Ambiguous
		r.logger.Debug("more than one indexed file matches; coverage entry skipped",
			"path", path, "candidates", res.Candidates)
	}

	return res
}

// Lookup resolves raw with the given strategy. The exact-match strategies only
// answer presence, so their resolutions never carry a File.
func (r *Resolver) Lookup(raw string, strategy Strategy) m.Resolution {
	switch strategy {
	case StrategyAbsolute:
		return presence(raw, r.normalizer.ForAbsolute(raw), r.IsSupportedAbsolute(raw))
	case StrategyRelative:
		return presence(raw, r.normalizer.ForRelative(raw), r.IsSupportedRelative(raw))
	default:
		return r.Resolve(raw)
	}
}

func (r *Resolver) languagePredicate() adapter.Predicate {
	if r.language == "" {
		return adapter.All()
	}

	return adapter.HasLanguage(r.language)
}

func presence(raw, normalized string, found bool) m.Resolution {
	res := m.Resolution{RawPath: raw, Normalized: normalized, Outcome: m.NotFound}
	if found {
		res.Outcome = m.Resolved
		res.Candidates = 1
	}

	return res
}
