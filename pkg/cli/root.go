// Package cli implements the maskit command line tool.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ufal/maskit-web/pkg/config"
	"github.com/ufal/maskit-web/pkg/maskit"
	"github.com/ufal/maskit-web/pkg/render"
	"github.com/ufal/maskit-web/pkg/version"
)

// app is the state shared by all subcommands, filled in before any of them runs.
type app struct {
	configDir string
	baseURL   string
	verbose   bool

	cfg *config.Config
}

// NewRootCmd constructs the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "maskit",
		Short:         "Anonymize Czech text with the MasKIT service",
		Version:       version.GitCommit,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.configDir, "config-dir", os.Getenv("CONFIG_DIR"),
		"directory containing maskit.yaml (built-in defaults when empty)")
	cmd.PersistentFlags().StringVar(&a.baseURL, "base-url", "", "override the service base URL")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log requests to stderr")

	cmd.AddCommand(newProcessCmd(a))
	cmd.AddCommand(newDetectCmd(a))
	cmd.AddCommand(newInfoCmd(a))
	cmd.AddCommand(newRenderCmd(a))

	cmd.Run = func(cmd *cobra.Command, _ []string) { _ = cmd.Help() }

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	if a.configDir == "" {
		a.cfg = config.Default()
	} else {
		_ = godotenv.Load(filepath.Join(a.configDir, ".env"))
		cfg, err := config.Initialize(cmd.Context(), a.configDir)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	if a.baseURL != "" {
		a.cfg.API.BaseURL = strings.TrimRight(a.baseURL, "/")
	}
	return nil
}

func (a *app) client() *maskit.Client {
	return maskit.NewClient(maskit.OptionsFromConfig(a.cfg.API))
}

// displayFlags are the output toggles shared by process, detect and render.
type displayFlags struct {
	hideOriginals  bool
	noHighlighting bool
	display        bool
}

func (f *displayFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.hideOriginals, "hide-originals", false, "drop the original values")
	cmd.Flags().BoolVar(&f.noHighlighting, "no-highlighting", false, "strip highlighting from HTML output")
	cmd.Flags().BoolVar(&f.display, "display", false, "add on-screen <br> markers to text output")
}

func (f *displayFlags) options(defaults render.DisplayOptions) render.DisplayOptions {
	opts := defaults
	if f.hideOriginals {
		opts.ShowOriginals = false
	}
	if f.noHighlighting {
		opts.ShowHighlighting = false
	}
	return opts
}

func (f *displayFlags) render(result render.ProcessedResult, defaults render.DisplayOptions) string {
	if f.display {
		return render.RenderForDisplay(result, f.options(defaults))
	}
	return render.Render(result, f.options(defaults))
}

// readInput reads the file named by args, or stdin when there is none or it is "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// writeOutput prints s followed by a newline unless it already ends with one.
func writeOutput(w io.Writer, s string) error {
	if s != "" && !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(w, s)
	return err
}
