// Package cmd provides the root command and CLI setup for htmlreport.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"htmlreport.dev/pkg/htmlreport/internal/adapter"
	"htmlreport.dev/pkg/htmlreport/internal/controller"
	"htmlreport.dev/pkg/htmlreport/internal/domain"
)

var testAdapter adapter.TestRunnerAdapter
var eventSource adapter.EventSource
var descriptionStore adapter.DescriptionStore
var reportStore adapter.ReportStore
var renderer *controller.HTMLRenderer
var workflow domain.Workflow
var ui controller.UI

var (
	outputFlag       string
	titleFlag        string
	descriptionFlag  string
	verbosityFlag    int
	groupByFlag      string
	entryPackageFlag string
	descriptionsFlag string
	logFileFlag      string
	debugFlag        bool
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stderr))
	testAdapter = adapter.NewLocalTestRunnerAdapter()
	eventSource = adapter.NewEventSource(os.Stdin)
	descriptionStore = adapter.NewYAMLDescriptionStore()
	reportStore = adapter.NewReportStore(os.Stdout)
	renderer = controller.NewHTMLRenderer()
	workflow = domain.NewWorkflow(
		testAdapter,
		eventSource,
		descriptionStore,
		reportStore,
		ui,
		renderer,
	)
}

const sourcesHelp = `Events are the line-delimited JSON written by 'go test -json'. Output
goes to report.html unless --output is given; use '-' for stdout.`

const rootLongDescription = `htmlreport turns Go test results into a single self-contained XHTML
report: a summary table per package or test function with collapsible
captured output for every test.

` + sourcesHelp

const renderLongDescription = `Render a report from a recorded event stream, read from the given file
or from stdin when no file or '-' is given.

  go test -json ./... > events.json
  htmlreport render events.json

` + sourcesHelp

const runLongDescription = `Run 'go test -json' for the given packages (default: ./...) and write a
report of the results. Exits non-zero when any test failed.

` + sourcesHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "htmlreport",
		Short:        "HTML reports for Go tests",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds a root command with its persistent flags bound.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&outputFlag, outputFlagName, "o", viper.GetString(outputConfigKey), "report file path, '-' for stdout")
	bindFlagToConfig(flags.Lookup(outputFlagName), outputConfigKey)

	flags.StringVar(&titleFlag, titleFlagName, viper.GetString(titleConfigKey), "report title")
	bindFlagToConfig(flags.Lookup(titleFlagName), titleConfigKey)

	flags.StringVar(&descriptionFlag, descriptionFlagName, viper.GetString(descriptionConfigKey), "report description")
	bindFlagToConfig(flags.Lookup(descriptionFlagName), descriptionConfigKey)

	flags.IntVarP(&verbosityFlag, verbosityFlagName, "v", viper.GetInt(verbosityConfigKey), "progress verbosity: 0 quiet, 1 one character per test, 2 one line per test")
	bindFlagToConfig(flags.Lookup(verbosityFlagName), verbosityConfigKey)

	flags.StringVar(&groupByFlag, groupByFlagName, viper.GetString(groupByConfigKey), "group tests by 'package' or top-level 'test'")
	bindFlagToConfig(flags.Lookup(groupByFlagName), groupByConfigKey)

	flags.StringVar(&entryPackageFlag, entryPackageFlagName, viper.GetString(entryPackageConfigKey), "package whose groups are shown without qualification")
	bindFlagToConfig(flags.Lookup(entryPackageFlagName), entryPackageConfigKey)

	flags.StringVar(&descriptionsFlag, descriptionsFlagName, viper.GetString(descriptionsConfigKey), "YAML file with group docs and test descriptions")
	bindFlagToConfig(flags.Lookup(descriptionsFlagName), descriptionsConfigKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolVar(&debugFlag, debugFlagName, viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(debugFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
