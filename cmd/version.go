package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, VCS revision and Go version used to build htmlreport.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, _ := debug.ReadBuildInfo()

			for _, line := range versionLines(info) {
				cmd.Println(line)
			}
		},
	}
}

// versionLines formats build info, one line per field.
func versionLines(info *debug.BuildInfo) []string {
	if info == nil || info.Main.Version == "" {
		return []string{"version: unknown"}
	}

	lines := []string{
		"htmlreport version\t " + info.Main.Version,
		"go version\t " + info.GoVersion,
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			lines = append(lines, "revision\t "+setting.Value)
		}
	}

	return lines
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
