package cmd

import (
	"github.com/spf13/cobra"

	"htmlreport.dev/pkg/htmlreport/internal/adapter"
	"htmlreport.dev/pkg/htmlreport/internal/domain"
	m "htmlreport.dev/pkg/htmlreport/internal/model"
)

// renderCmd represents the render command.
var renderCmd = newRenderCmd()

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Render a report from recorded go test -json output",
		Long:  renderLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := adapter.StdinPath
			if len(args) == 1 {
				input = m.Path(args[0])
			}

			return workflow.Render(cmd.Context(), domain.RenderArgs{
				ReportArgs: reportArgsFromConfig(),
				Input:      input,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
