package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"htmlreport.dev/pkg/htmlreport/internal/domain"
	m "htmlreport.dev/pkg/htmlreport/internal/model"
)

func TestRunCmd_Defaults(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t, newRunCmd())

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Output == m.Path(defaultOutput) &&
			args.Title == domain.DefaultTitle &&
			args.Verbosity == defaultVerbosity &&
			args.GroupBy == domain.GroupByPackage &&
			args.EntryModule == domain.DefaultEntryModule &&
			args.WorkDir == "" &&
			len(args.Packages) == 0
	})).Return(nil)

	cmd.SetArgs(logArgs(t, "run"))
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_FlagsAndPackages(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t, newRunCmd())

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Output == m.Path("out/tests.html") &&
			args.Title == "Nightly" &&
			args.Description == "All packages" &&
			args.Verbosity == 2 &&
			args.GroupBy == domain.GroupByTest &&
			args.Descriptions == m.Path("desc.yaml") &&
			args.WorkDir == "examples/mixed" &&
			len(args.Packages) == 2 &&
			args.Packages[0] == "./cmd" &&
			args.Packages[1] == "./internal/..."
	})).Return(nil)

	cmd.SetArgs(logArgs(t,
		"run",
		"-o", "out/tests.html",
		"--title", "Nightly",
		"--description", "All packages",
		"-v", "2",
		"--group-by", "test",
		"--descriptions", "desc.yaml",
		"-C", "examples/mixed",
		"./cmd", "./internal/...",
	))
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_TestsFailed(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t, newRunCmd())

	mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).Return(domain.ErrTestsFailed)

	cmd.SetArgs(logArgs(t, "run"))
	require.ErrorIs(t, cmd.Execute(), domain.ErrTestsFailed)
}

func TestRunCmd_EnvOverridesDefault(t *testing.T) {
	t.Setenv("HTMLREPORT_REPORT_TITLE", "From Env")

	cmd, mockWorkflow := newTestRootCmd(t, newRunCmd())

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Title == "From Env"
	})).Return(nil)

	cmd.SetArgs(logArgs(t, "run"))
	require.NoError(t, cmd.Execute())
}
