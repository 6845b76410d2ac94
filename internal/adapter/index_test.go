package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "covmap.dev/pkg/covmap/internal/model"
)

func TestPredicates(t *testing.T) {
	file := m.InputFile{AbsolutePath: "/repo/src/A.cs", RelativePath: "src/A.cs", Language: "cs"}

	tests := []struct {
		name      string
		predicate Predicate
		want      bool
	}{
		{"all", All(), true},
		{"absolute path equal", HasAbsolutePath("/repo/src/A.cs"), true},
		{"absolute path is not a suffix match", HasAbsolutePath("src/A.cs"), false},
		{"relative path equal", HasRelativePath("src/A.cs"), true},
		{"relative path differs", HasRelativePath("A.cs"), false},
		{"language equal", HasLanguage("cs"), true},
		{"language differs", HasLanguage("vbnet"), false},
		{"and all true", And(HasRelativePath("src/A.cs"), HasLanguage("cs")), true},
		{"and one false", And(HasRelativePath("src/A.cs"), HasLanguage("vbnet")), false},
		{"empty and", And(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.predicate(file))
		})
	}
}

func TestMemoryIndex(t *testing.T) {
	idx := NewMemoryIndex(
		m.InputFile{AbsolutePath: "/repo/b.cs", Language: "cs"},
		m.InputFile{AbsolutePath: "/repo/a.vb", Language: "vbnet"},
	)

	assert.Equal(t, 2, idx.Len())
	assert.True(t, idx.HasFiles(HasLanguage("vbnet")))
	assert.False(t, idx.HasFiles(HasLanguage("fsharp")))

	files := idx.AllFiles()
	assert.Equal(t, m.Path("/repo/a.vb"), files[0].AbsolutePath)
	assert.Equal(t, m.Path("/repo/b.cs"), files[1].AbsolutePath)

	files[0].Language = "mutated"
	assert.Equal(t, m.Language("vbnet"), idx.AllFiles()[0].Language)
}

func TestMemoryIndex_Empty(t *testing.T) {
	idx := NewMemoryIndex()

	assert.Zero(t, idx.Len())
	assert.False(t, idx.HasFiles(All()))
	assert.Empty(t, idx.AllFiles())
}
