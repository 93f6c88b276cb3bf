package maschine

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/varalys/maschine/internal/rotor"
	"golang.org/x/term"
)

var (
	flagJSON    bool
	flagTable   bool
	flagNoColor bool
	flagVerbose bool
	flagConfig  string

	version = "0.1.0"

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

// rootCmd is the base Cobra command for the maschine CLI.
var rootCmd = &cobra.Command{
	Use:     "maschine",
	Short:   "Encipher and decipher messages on a three-rotor machine",
	Long:    "maschine simulates a three-rotor cipher machine with a reflector and plugboard. Running a cipher text through a machine with the same settings recovers the message.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		if err := rotor.ValidateCatalog(); err != nil {
			return fmt.Errorf("wheel catalog: %w", err)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the maschine CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "output in table format with borders")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log debug details to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ./.maschine.yml, then ~/.config/maschine/config.yml)")
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
