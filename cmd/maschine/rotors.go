package maschine

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/varalys/maschine/internal/report"
	"github.com/varalys/maschine/internal/rotor"
)

type wheel struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Wiring string `json:"wiring"`
	Notch  string `json:"notch,omitempty"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "rotors",
		Short: "List the available rotors and reflectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !flagJSON {
				return report.PrintCatalog(cmd.OutOrStdout())
			}
			var out []wheel
			for _, t := range rotor.Types() {
				out = append(out, wheel{Name: t.String(), Kind: "rotor", Wiring: t.Wiring(), Notch: string(t.Notch())})
			}
			for _, r := range rotor.ReflectorTypes() {
				out = append(out, wheel{Name: r.String(), Kind: "reflector", Wiring: r.Wiring()})
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	rootCmd.AddCommand(cmd)
}
