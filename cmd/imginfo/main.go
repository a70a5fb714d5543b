package main

import (
	"fmt"
	"os"

	"imginfo/internal/app"
	"imginfo/internal/config"
	appErrors "imginfo/internal/errors"
	"imginfo/internal/infra/exif"
	"imginfo/internal/infra/fs"
	"imginfo/internal/infra/imgcodec"
	"imginfo/internal/logging"
	"imginfo/internal/presentation"
	"imginfo/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		exitWithError(err)
	}
}

func newRootCmd() *cobra.Command {
	var opts config.Options

	cmd := &cobra.Command{
		Use:           "imginfo <image>",
		Short:         "Print file and image metadata of a single picture",
		Long:          "imginfo reads one image file (jpg / jpeg / png / gif / bmp) and reports its file size, creation time, pixel dimensions, color type and camera model.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(args[0], opts)
			if err != nil {
				return appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
			}
			return run(cmd, cfg)
		},
	}

	cmd.Flags().BoolVarP(&opts.TUI, "tui", "t", false, "Show the result in an interactive terminal viewer")
	cmd.Flags().BoolVarP(&opts.JSON, "json", "j", false, "Print the result as JSON")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose output")

	return cmd
}

func run(cmd *cobra.Command, cfg config.Config) error {
	logger := logging.New(os.Stderr, cfg.Verbose)

	inspector := app.Inspector{
		FS:      fs.OSFS{},
		Decoder: imgcodec.Decoder{},
		Exif:    exif.Reader{},
		Logger:  logger,
	}

	if cfg.TUI {
		return runTUI(cmd, &inspector, cfg)
	}

	meta, err := inspector.Inspect(cmd.Context(), cfg.Path)
	if err != nil {
		return err
	}

	printer := presentation.Printer{Writer: os.Stdout}
	if cfg.JSON {
		return printer.PrintJSON(meta)
	}
	printer.PrintReport(meta)
	return nil
}

func runTUI(cmd *cobra.Command, inspector *app.Inspector, cfg config.Config) error {
	model := tui.NewModel(tui.Config{
		Path: cfg.Path,
		Inspect: func() tea.Cmd {
			return func() tea.Msg {
				meta, err := inspector.Inspect(cmd.Context(), cfg.Path)
				if err != nil {
					return tui.ErrorMsg{Err: err}
				}
				return tui.MetadataReadyMsg{Meta: meta}
			}
		},
	})

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "tui", "", err)
	}
	if m, ok := final.(tui.Model); ok && m.Err != nil {
		return m.Err
	}
	return nil
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
	os.Exit(1)
}
