package maschine

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/varalys/maschine/internal/lampboard"
)

var errNotInteractive = errors.New("lampboard needs an interactive terminal")

func init() {
	cmd := &cobra.Command{
		Use:   "lampboard",
		Short: "Type on an interactive keyboard and watch the lamps",
		Long:  "Lampboard opens a full-screen keyboard. Every letter typed steps the rotors and lights its cipher letter. ctrl+y copies the output, ctrl+r resets the machine, esc quits.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return errNotInteractive
			}
			res, _, _, err := resolution()
			if err != nil {
				return err
			}
			return lampboard.Run(res.Settings)
		},
	}
	rootCmd.AddCommand(cmd)
	addSettingsFlags(cmd)
}
