package adapter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "covmap.dev/pkg/covmap/internal/model"
)

var dotnetLanguages = map[string][]string{
	"cs":    {".cs"},
	"vbnet": {"vb"},
}

func TestLocalIndexBuilder_Build(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "Program.cs"), "class Program {}\n")
	writeTestFile(t, filepath.Join(root, "Lib", "Helper.VB"), "Module Helper\nEnd Module\n")
	writeTestFile(t, filepath.Join(root, "Lib", "readme.md"), "# lib\n")
	writeTestFile(t, filepath.Join(root, "obj", "Debug", "Generated.cs"), "class Generated {}\n")
	writeTestFile(t, filepath.Join(root, "Tests", "ProgramTests.cs"), "class ProgramTests {}\n")

	builder := NewLocalIndexBuilder(NewLocalSourceFSAdapter(), nil)

	idx, err := builder.Build(context.Background(), BuildArgs{
		Root:      m.Path(root),
		Languages: dotnetLanguages,
		Exclude:   []string{`^Tests/`},
	})
	require.NoError(t, err)

	files := idx.AllFiles()
	require.Len(t, files, 2)

	byRel := map[m.Path]m.InputFile{}
	for _, f := range files {
		byRel[f.RelativePath] = f
	}

	program, ok := byRel["Program.cs"]
	require.True(t, ok)
	assert.Equal(t, m.Language("cs"), program.Language)
	assert.Equal(t, m.Path(filepath.Join(root, "Program.cs")), program.AbsolutePath)

	helper, ok := byRel["Lib/Helper.VB"]
	require.True(t, ok)
	assert.Equal(t, m.Language("vbnet"), helper.Language)
}

func TestLocalIndexBuilder_Errors(t *testing.T) {
	builder := NewLocalIndexBuilder(NewLocalSourceFSAdapter(), nil)
	ctx := context.Background()

	t.Run("invalid exclude", func(t *testing.T) {
		_, err := builder.Build(ctx, BuildArgs{Root: m.Path(t.TempDir()), Exclude: []string{"("}})
		require.ErrorIs(t, err, ErrInvalidExclude)
	})

	t.Run("conflicting extension", func(t *testing.T) {
		_, err := builder.Build(ctx, BuildArgs{
			Root:      m.Path(t.TempDir()),
			Languages: map[string][]string{"cs": {".cs"}, "csharp": {".CS"}},
		})
		require.ErrorIs(t, err, ErrExtensionConflict)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := builder.Build(ctx, BuildArgs{Root: m.Path(filepath.Join(t.TempDir(), "missing"))})
		require.Error(t, err)
	})

	t.Run("root is a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.cs")
		writeTestFile(t, path, "class A {}\n")

		_, err := builder.Build(ctx, BuildArgs{Root: m.Path(path)})
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "A.cs"), "class A {}\n")

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := builder.Build(cancelled, BuildArgs{Root: m.Path(root), Languages: dotnetLanguages})
		require.ErrorIs(t, err, context.Canceled)
	})
}
