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

func TestImportCmd_ReadsStdinByDefault(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newImportCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Import", mock.Anything, mock.MatchedBy(func(args domain.ImportArgs) bool {
		return args.Source == m.Path("-") &&
			args.Reports == m.Path(".covmap-reports") &&
			args.Threads == 1 &&
			args.Strategy == domain.StrategyContains &&
			len(args.Paths) == 0
	})).Return(nil)

	cmd.SetArgs([]string{"import"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestImportCmd_SourceAndFlags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newImportCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Import", mock.Anything, mock.MatchedBy(func(args domain.ImportArgs) bool {
		return args.Source == m.Path("paths.txt.gz") &&
			args.Reports == m.Path("./out") &&
			args.Threads == 4 &&
			len(args.Exclude) == 2 &&
			args.Exclude[0] == `^Tests/` &&
			args.Exclude[1] == `\.g\.cs$`
	})).Return(nil)

	cmd.SetArgs([]string{
		"import",
		"--parallel", "4",
		"-o", "./out",
		"-x", `^Tests/`,
		"-x", `\.g\.cs$`,
		"paths.txt.gz",
	})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestImportCmd_RejectsTwoSources(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newImportCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{"import", "a.txt", "b.txt"})
	err := cmd.Execute()
	require.Error(t, err)
}
