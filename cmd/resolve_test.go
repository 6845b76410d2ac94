package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"covmap.dev/pkg/covmap/internal/domain"
	domainmocks "covmap.dev/pkg/covmap/internal/domain/mocks"
	m "covmap.dev/pkg/covmap/internal/model"
)

func TestResolveCmd_PassesPathsAndDefaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newResolveCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Resolve", mock.Anything, mock.MatchedBy(func(args domain.ResolveArgs) bool {
		return len(args.Paths) == 2 &&
			args.Paths[0] == "/_/some/path/file.cs" &&
			args.Paths[1] == `C:\_\other.cs` &&
			args.Strategy == domain.StrategyContains &&
			args.Language == m.Language("cs") &&
			args.Root == m.Path(".") &&
			len(args.Languages["vbnet"]) == 1
	})).Return(nil)

	cmd.SetArgs([]string{"resolve", "/_/some/path/file.cs", `C:\_\other.cs`})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestResolveCmd_FlagsOverrideConfig(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newResolveCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Resolve", mock.Anything, mock.MatchedBy(func(args domain.ResolveArgs) bool {
		return args.Strategy == domain.StrategyAbsolute &&
			args.BaseDir == "/home/user/project" &&
			args.Language == m.Language("vbnet") &&
			args.Root == m.Path("./src")
	})).Return(nil)

	cmd.SetArgs([]string{
		"resolve",
		"--strategy", "absolute",
		"--base-dir", "/home/user/project",
		"--language", "vbnet",
		"--root", "./src",
		"/_/file.vb",
	})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestResolveCmd_RequiresPath(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newResolveCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{"resolve"})
	err := cmd.Execute()
	require.Error(t, err)
}

func TestResolveCmd_RejectsUnknownStrategy(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newResolveCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{"resolve", "--strategy", "fuzzy", "a.cs"})
	err := cmd.Execute()
	require.Error(t, err)
}
