package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	m "covmap.dev/pkg/covmap/internal/model"
)

var (
	// ErrInvalidExclude is returned when an exclusion pattern is not a valid regex.
	ErrInvalidExclude = errors.New("invalid exclude pattern")
	// ErrExtensionConflict is returned when two languages claim the same extension.
	ErrExtensionConflict = errors.New("extension mapped to more than one language")
)

// skippedDirs are never indexed: VCS metadata, dependencies and build output.
var skippedDirs = map[string]struct{}{
	".git":         {},
	"vendor":       {},
	"node_modules": {},
	"bin":          {},
	"obj":          {},
}

// BuildArgs configures an index build.
type BuildArgs struct {
	Root      m.Path
	Languages map[string][]string // language -> extensions (".cs")
	Exclude   []string            // regular expressions matched against the slash-form relative path
}

// IndexBuilder populates a FileIndex from a project directory.
type IndexBuilder interface {
	Build(ctx context.Context, args BuildArgs) (*MemoryIndex, error)
}

type localIndexBuilder struct {
	fs     SourceFSAdapter
	logger *slog.Logger
}

// NewLocalIndexBuilder returns an IndexBuilder walking the local filesystem via fs.
func NewLocalIndexBuilder(fs SourceFSAdapter, logger *slog.Logger) IndexBuilder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &localIndexBuilder{fs: fs, logger: logger}
}

// Build walks args.Root recursively and indexes every file whose extension maps
// to a language and whose relative path matches no exclusion pattern.
func (b *localIndexBuilder) Build(ctx context.Context, args BuildArgs) (*MemoryIndex, error) {
	extensions, err := extensionLanguages(args.Languages)
	if err != nil {
		return nil, err
	}

	excludes, err := compileExcludes(args.Exclude)
	if err != nil {
		return nil, err
	}

	root, err := b.fs.AbsPath(args.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve index root %s: %w", args.Root, err)
	}

	info, err := b.fs.FileInfo(root)
	if err != nil {
		return nil, fmt.Errorf("index root error: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("index root %s is not a directory", root)
	}

	var files []m.InputFile

	err = b.fs.Walk(root, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if info.IsDir() {
			if _, skip := skippedDirs[info.Name()]; skip && path != string(root) {
				return filepath.SkipDir
			}

			return nil
		}

		language, ok := extensions[strings.ToLower(filepath.Ext(path))]
		if !ok {
			return nil
		}

		rel, err := b.fs.RelPath(root, m.Path(path))
		if err != nil {
			return err
		}

		relSlash := filepath.ToSlash(string(rel))
		if matchesAny(excludes, relSlash) {
			b.logger.Debug("excluded from index", "path", relSlash)
			return nil
		}

		files = append(files, m.InputFile{
			AbsolutePath: m.Path(path),
			RelativePath: m.Path(relSlash),
			Language:     language,
		})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	b.logger.Debug("index built", "root", root, "files", len(files))

	return NewMemoryIndex(files...), nil
}

func extensionLanguages(languages map[string][]string) (map[string]m.Language, error) {
	extensions := make(map[string]m.Language)

	for language, exts := range languages {
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}

			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}

			if existing, ok := extensions[ext]; ok && existing != m.Language(language) {
				return nil, fmt.Errorf("%w: %s (%s, %s)", ErrExtensionConflict, ext, existing, language)
			}

			extensions[ext] = m.Language(language)
		}
	}

	return extensions, nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidExclude, pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func matchesAny(patterns []*regexp.Regexp, path string) bool {
	for _, re := range patterns {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}
