package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/petal-ui/petal/internal/logging"
	"github.com/petal-ui/petal/theme"
)

type rootFlags struct {
	theme    string
	logLevel string
	logFile  string
	ascii    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gallery",
		Short:         "Browse petal's themed terminal widgets",
		Long:          `Gallery renders every petal widget in an interactive showcase so themes and key bindings can be tried out without writing a program.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Built-in theme name or path to a theme file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file instead of stderr")
	cmd.PersistentFlags().BoolVar(&flags.ascii, "ascii", false, "Disable colour output")

	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runGallery(flags *rootFlags) error {
	log, closeLog, err := newLogger(flags)
	if err != nil {
		return err
	}
	defer closeLog()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("gallery needs an interactive terminal")
	}

	if flags.ascii {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	th, err := resolveTheme(flags.theme, log)
	if err != nil {
		return err
	}
	theme.SetCurrent(th)

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}
	zl := log.Zerolog()
	zl.Debug().
		Int("width", width).Int("height", height).
		Str("theme", th.Name).
		Msg("starting gallery")

	model := newGalleryModel(width, height)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		zl.Error().Err(err).Msg("gallery exited with error")
		return fmt.Errorf("gallery failed: %w", err)
	}
	return nil
}

// resolveTheme accepts a built-in name or a path to a theme file. Paths are
// recognised by their extension.
func resolveTheme(name string, log *logging.Logger) (theme.Theme, error) {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return theme.NewLoader(log.Zerolog()).LoadFile(name)
	}
	th, ok := theme.Builtin(name)
	if !ok {
		return theme.Theme{}, fmt.Errorf("unknown theme %q (built-ins: light, dark, retro, frost)", name)
	}
	return th, nil
}

func newLogger(flags *rootFlags) (*logging.Logger, func(), error) {
	opts := logging.Options{Level: flags.logLevel, HumanReadable: true}
	closeLog := func() {}

	if flags.logFile != "" {
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		opts.Writer = f
		opts.HumanReadable = false
		closeLog = func() { _ = f.Close() }
	}

	log, err := logging.New(opts)
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, closeLog, nil
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the built-in themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range []string{"light", "dark", "retro", "frost"} {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
