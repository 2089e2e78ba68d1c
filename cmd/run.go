package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"htmlreport.dev/pkg/htmlreport/internal/domain"
)

var runWorkDirFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [packages...]",
		Short: "Run go test and write an HTML report",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Run(cmd.Context(), domain.RunArgs{
				ReportArgs: reportArgsFromConfig(),
				WorkDir:    viper.GetString(workDirConfigKey),
				Packages:   args,
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&runWorkDirFlag, workDirFlagName, "C", viper.GetString(workDirConfigKey), "directory to run go test in (default: current directory)")
	bindFlagToConfig(cmd.Flags().Lookup(workDirFlagName), workDirConfigKey)
}
