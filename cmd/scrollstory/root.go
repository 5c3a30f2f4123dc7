package main

import (
	"github.com/fwojciec/scrollstory"
	"github.com/fwojciec/scrollstory/bubbletea"
	"github.com/fwojciec/scrollstory/chroma"
	"github.com/fwojciec/scrollstory/clipboard"
	"github.com/fwojciec/scrollstory/imaging"
	"github.com/fwojciec/scrollstory/lipgloss"
	"github.com/fwojciec/scrollstory/toml"
	scrollzap "github.com/fwojciec/scrollstory/zap"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// viewerFactory builds the viewer for the resolved settings. Tests replace it
// to avoid starting a terminal program.
type viewerFactory func(toml.Settings, *zap.Logger) (scrollstory.Viewer, error)

type flags struct {
	config  string
	theme   string
	logFile string
}

func newRootCommand(newViewer viewerFactory) *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:           "scrollstory [flags] <story.yaml|story.jsonl>",
		Short:         "Read an illustrated story in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd, f)
			if err != nil {
				return err
			}
			loader, err := loaderFor(args[0])
			if err != nil {
				return err
			}

			logger, closeLog, err := scrollzap.NewLogger(settings.LogFile, settings.LogLevel)
			if err != nil {
				return err
			}
			defer closeLog()

			viewer, err := newViewer(settings, logger)
			if err != nil {
				return err
			}
			app := &App{
				Path:   args[0],
				Loader: loader,
				Images: imaging.NewLoader(settings.ImageWidth, settings.ImageHeight),
				Viewer: viewer,
				Logger: logger,
			}
			return app.Run(cmd.Context())
		},
	}

	rootCmd.Flags().StringVarP(&f.config, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVar(&f.theme, "theme", "", "Color theme: auto, paper or night")
	rootCmd.Flags().StringVar(&f.logFile, "log-file", "", "Write a log to this file (level from log_level)")

	rootCmd.AddCommand(newConvertCommand())

	return rootCmd
}

// resolveSettings loads the settings file and applies flag overrides.
func resolveSettings(cmd *cobra.Command, f flags) (toml.Settings, error) {
	settings, err := toml.Load(f.config)
	if err != nil {
		return toml.Settings{}, err
	}
	if cmd.Flags().Changed("theme") {
		settings.Theme = f.theme
	}
	if cmd.Flags().Changed("log-file") {
		settings.LogFile = f.logFile
	}
	return settings, settings.Validate()
}

// newTerminalViewer wires the Bubble Tea viewer with the configured theme,
// text styling and clipboard.
func newTerminalViewer(settings toml.Settings, logger *zap.Logger) (scrollstory.Viewer, error) {
	theme, err := lipgloss.ThemeByName(settings.Theme)
	if err != nil {
		return nil, err
	}
	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(theme.Palette()))
	if err != nil {
		return nil, err
	}

	opts := []bubbletea.ModelOption{
		bubbletea.WithTheme(theme),
		bubbletea.WithTokenizer(tokenizer),
		bubbletea.WithLogger(logger),
		bubbletea.WithConfig(settings.Config()),
	}
	if cb := clipboard.NewSystem(); cb.Available() {
		opts = append(opts, bubbletea.WithClipboard(cb))
	}
	return bubbletea.NewViewer(bubbletea.WithModelOptions(opts...)), nil
}
