package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sonicdash/sonic/internal/config"
	"github.com/sonicdash/sonic/internal/theme"
)

const defaultConfigFile = "sonic.yaml"

var (
	verbose bool
	quiet   bool
	noColor bool
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "sonic",
	Short: "Operations dashboard shell with switchable theme profiles",
	Long: `sonic serves the dashboard shell: header, sidebar and content frame,
styled by the selected theme profile. The theme commands inspect and switch
profiles from the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger(cmd.ErrOrStderr())
		return nil
	},
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "sonic: %v\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default ./"+defaultConfigFile+" when present)")

	rootCmd.AddCommand(serveCmd, themeCmd, versionCmd)
}

func logLevel() log.Level {
	switch {
	case verbose:
		return log.DebugLevel
	case quiet:
		return log.WarnLevel
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SONIC_LOG_LEVEL"))) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// setupLogger installs a charm logger as the default slog handler.
func setupLogger(w io.Writer) {
	level := logLevel()

	styles := log.DefaultStyles()
	if colorEnabled(w) {
		styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
			SetString("DEBUG").
			Foreground(lipgloss.Color(theme.DefaultColor(theme.RegionSecondary))).
			Bold(true)
		styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
			SetString("INFO").
			Foreground(lipgloss.Color(theme.DefaultColor(theme.RegionPrimary))).
			Bold(true)
		styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
			SetString("WARN").
			Foreground(lipgloss.Color("#d29922")).
			Bold(true)
		styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
			SetString("ERROR").
			Foreground(lipgloss.Color("#cf222e")).
			Bold(true)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	logger.SetStyles(styles)
	slog.SetDefault(slog.New(logger))
}

// colorEnabled reports whether w is a terminal that should get ANSI styling.
func colorEnabled(w io.Writer) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// loadConfig reads --config, or ./sonic.yaml when it exists, and applies the
// SONIC_* environment overrides.
func loadConfig() (config.File, error) {
	path := strings.TrimSpace(cfgFile)
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		} else if !errors.Is(err, fs.ErrNotExist) {
			return config.File{}, fmt.Errorf("stat %s: %w", defaultConfigFile, err)
		}
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.File{}, err
		}
		cfg = loaded
		slog.Debug("config loaded", "path", path)
	}
	cfg.ApplyEnv()
	return cfg, nil
}
