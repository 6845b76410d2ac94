// Package sourcepath rewrites paths reported by coverage tools into the form the
// file index can be queried with. Compilers running deterministic builds replace
// the real source root with a fixed sentinel; the helpers here detect and remove
// (or replace) that sentinel and normalise separators.
package sourcepath

import (
	"log/slog"
	"strings"
)

const (
	// PosixSentinel is the prefix deterministic builds put in place of the source root.
	PosixSentinel = "/_/"
	// WindowsSentinel is the drive-style form of the sentinel, found anywhere in the path.
	WindowsSentinel = `C:\_\`
)

// IsDeterministic reports whether path carries either sentinel form. The two
// checks are not merged: one is a prefix test, the other a substring test.
func IsDeterministic(path string) bool {
	return strings.HasPrefix(path, PosixSentinel) || strings.Contains(path, WindowsSentinel)
}

// Strip removes the sentinel, leaving the bare relative remainder. The POSIX
// prefix is removed once; every literal occurrence of the Windows form is removed.
// Paths without a sentinel are returned unchanged.
func Strip(path string) string {
	if strings.HasPrefix(path, PosixSentinel) {
		return strings.TrimPrefix(path, PosixSentinel)
	}

	return strings.ReplaceAll(path, WindowsSentinel, "")
}

// Replace substitutes the POSIX sentinel with baseDir, joining with a backslash
// when baseDir contains one and with a slash otherwise. The Windows sentinel is
// only stripped, even when baseDir is set. An empty baseDir falls back to Strip.
func Replace(path, baseDir string) string {
	if baseDir == "" || !strings.HasPrefix(path, PosixSentinel) {
		return Strip(path)
	}

	remainder := strings.TrimPrefix(path, PosixSentinel)

	if strings.Contains(baseDir, `\`) {
		return strings.TrimSuffix(baseDir, `\`) + `\` + strings.ReplaceAll(remainder, "/", `\`)
	}

	return strings.TrimSuffix(baseDir, "/") + "/" + remainder
}

// ToSlashForm replaces every backslash with a slash. Unlike filepath.ToSlash it
// does not depend on the host OS.
func ToSlashForm(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}

// Normalizer applies the transforms above for a fixed project base directory and
// traces each decision.
type Normalizer struct {
	baseDir string
	logger  *slog.Logger
}

// NewNormalizer returns a Normalizer. baseDir may be empty.
func NewNormalizer(baseDir string, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Normalizer{baseDir: baseDir, logger: logger}
}

// BaseDir returns the configured project base directory.
func (n *Normalizer) BaseDir() string {
	return n.baseDir
}

// ForAbsolute normalises raw for an absolute-path lookup, joining the sentinel
// remainder to the base directory when one is configured.
func (n *Normalizer) ForAbsolute(raw string) string {
	if !IsDeterministic(raw) {
		n.logger.Debug("not a deterministic source path, kept", "path", raw)
		return raw
	}

	normalized := Replace(raw, n.baseDir)
	n.logger.Debug("deterministic source path replaced", "path", raw, "normalized", normalized, "base_dir", n.baseDir)

	return normalized
}

// ForRelative normalises raw for a relative-path lookup: the sentinel is only stripped.
func (n *Normalizer) ForRelative(raw string) string {
	if !IsDeterministic(raw) {
		n.logger.Debug("not a deterministic source path, kept", "path", raw)
		return raw
	}

	normalized := Strip(raw)
	n.logger.Debug("deterministic source path stripped", "path", raw, "normalized", normalized)

	return normalized
}
