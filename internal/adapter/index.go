package adapter

import (
	"sort"

	m "covmap.dev/pkg/covmap/internal/model"
)

// FileIndex is the registry of files under analysis. It is populated before
// resolution starts and is only read afterwards.
type FileIndex interface {
	// HasFiles reports whether at least one indexed file satisfies predicate.
	HasFiles(predicate Predicate) bool

	// AllFiles returns every indexed file regardless of language.
	AllFiles() []m.InputFile
}

// Predicate selects indexed files.
type Predicate func(file m.InputFile) bool

// All matches every file.
func All() Predicate {
	return func(m.InputFile) bool { return true }
}

// HasAbsolutePath matches files whose absolute path equals path exactly.
func HasAbsolutePath(path string) Predicate {
	return func(file m.InputFile) bool {
		return string(file.AbsolutePath) == path
	}
}

// HasRelativePath matches files whose index-relative path equals path exactly.
func HasRelativePath(path string) Predicate {
	return func(file m.InputFile) bool {
		return string(file.RelativePath) == path
	}
}

// HasLanguage matches files tagged with language.
func HasLanguage(language m.Language) Predicate {
	return func(file m.InputFile) bool {
		return file.Language == language
	}
}

// And matches files satisfying every predicate. And() matches everything.
func And(predicates ...Predicate) Predicate {
	return func(file m.InputFile) bool {
		for _, p := range predicates {
			if !p(file) {
				return false
			}
		}

		return true
	}
}

// MemoryIndex is an immutable in-memory FileIndex.
type MemoryIndex struct {
	files []m.InputFile
}

// NewMemoryIndex builds an index over files. Files are ordered by absolute path.
func NewMemoryIndex(files ...m.InputFile) *MemoryIndex {
	sorted := make([]m.InputFile, len(files))
	copy(sorted, files)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AbsolutePath < sorted[j].AbsolutePath
	})

	return &MemoryIndex{files: sorted}
}

// HasFiles implements FileIndex.
func (idx *MemoryIndex) HasFiles(predicate Predicate) bool {
	for _, file := range idx.files {
		if predicate(file) {
			return true
		}
	}

	return false
}

// AllFiles implements FileIndex. The returned slice is a copy.
func (idx *MemoryIndex) AllFiles() []m.InputFile {
	files := make([]m.InputFile, len(idx.files))
	copy(files, idx.files)

	return files
}

// Len returns the number of indexed files.
func (idx *MemoryIndex) Len() int {
	return len(idx.files)
}
