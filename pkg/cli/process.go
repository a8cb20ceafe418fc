package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ufal/maskit-web/pkg/maskit"
	"github.com/ufal/maskit-web/pkg/render"
)

type submitFlags struct {
	input     string
	output    string
	randomize bool
	classes   bool
	stats     string
	save      string
	displayFlags
}

func (f *submitFlags) register(cmd *cobra.Command, withOptions bool) {
	cmd.Flags().StringVar(&f.input, "input", string(maskit.InputText), "input format: txt or presegmented")
	cmd.Flags().StringVar(&f.output, "output", string(render.FormatText), "output format: txt, html or conllu")
	cmd.Flags().StringVar(&f.stats, "stats", "", "write the statistics table to this file")
	cmd.Flags().StringVar(&f.save, "save", "", "save the output to this file or directory")
	if withOptions {
		cmd.Flags().BoolVar(&f.randomize, "randomize", false, "replace with random values of the same kind")
		cmd.Flags().BoolVar(&f.classes, "classes", false, "replace with class names")
		cmd.MarkFlagsMutuallyExclusive("randomize", "classes")
	}
	f.displayFlags.register(cmd)
}

func (f *submitFlags) request(text string) maskit.ProcessRequest {
	return maskit.ProcessRequest{
		Text:      text,
		Input:     maskit.InputFormat(f.input),
		Output:    render.ParseFormat(f.output),
		Randomize: f.randomize,
		Classes:   f.classes,
	}
}

func newProcessCmd(a *app) *cobra.Command {
	f := &submitFlags{}
	cmd := &cobra.Command{
		Use:   "process [file|-]",
		Short: "Anonymize text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.submit(cmd, args, f, false)
		},
	}
	f.register(cmd, true)
	return cmd
}

func newDetectCmd(a *app) *cobra.Command {
	f := &submitFlags{}
	cmd := &cobra.Command{
		Use:   "detect [file|-]",
		Short: "Detect quoted sources (SouDeC)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.submit(cmd, args, f, true)
		},
	}
	f.register(cmd, false)
	return cmd
}

func (a *app) submit(cmd *cobra.Command, args []string, f *submitFlags, detect bool) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	client := a.client()
	var resp *maskit.ProcessResponse
	if detect {
		resp, err = client.Detect(cmd.Context(), f.request(text))
	} else {
		resp, err = client.Process(cmd.Context(), f.request(text))
	}
	if err != nil {
		var apiErr *maskit.APIError
		if errors.As(err, &apiErr) {
			return errors.New(apiErr.UserMessage())
		}
		return err
	}

	result := resp.ProcessedResult()
	if err := writeOutput(cmd.OutOrStdout(), f.render(result, a.cfg.Display)); err != nil {
		return err
	}

	if f.save != "" {
		path := savePath(f.save, result.Format)
		if err := os.WriteFile(path, []byte(render.Render(result, f.options(a.cfg.Display))), 0o644); err != nil {
			return fmt.Errorf("save output: %w", err)
		}
	}
	if f.stats != "" {
		if err := os.WriteFile(f.stats, []byte(resp.Stats), 0o644); err != nil {
			return fmt.Errorf("save statistics: %w", err)
		}
	}
	return nil
}

// savePath resolves a directory target to citations.<format> inside it.
func savePath(target string, format render.Format) string {
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return filepath.Join(target, format.FileName("citations"))
	}
	return target
}
