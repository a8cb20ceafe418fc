package cli

import (
	"github.com/spf13/cobra"

	"github.com/ufal/maskit-web/pkg/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		format string
		f      displayFlags
	)
	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Apply the display toggles to saved service output",
		Long: "Render reads output previously returned by the service and prints the\n" +
			"variant selected by the toggles. Nothing is sent over the network.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			result := render.ProcessedResult{Content: content, Format: render.ParseFormat(format)}
			return writeOutput(cmd.OutOrStdout(), f.render(result, a.cfg.Display))
		},
	}
	cmd.Flags().StringVar(&format, "format", string(render.FormatText), "format of the input: txt, html or conllu")
	f.register(cmd)
	return cmd
}
