package maschine

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/varalys/maschine/internal/config"
	"github.com/varalys/maschine/internal/report"
	"github.com/varalys/maschine/internal/settings"
)

var (
	cfgOutput    string
	cfgRotors    string
	cfgRings     string
	cfgReflector string
	cfgPlugboard string
	cfgFormat    string
	cfgNoColor   bool
	cfgStrict    bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .maschine.yml with default machine settings",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".maschine.yml", "output file path")
	initCmd.Flags().StringVar(&cfgRotors, "rotors", "I,II,III", "default rotors, entry rotor first")
	initCmd.Flags().StringVar(&cfgRings, "rings", "1,1,1", "default ring settings")
	initCmd.Flags().StringVar(&cfgReflector, "reflector", "B", "default reflector")
	initCmd.Flags().StringVar(&cfgPlugboard, "plugboard", "", "default plugboard pairs")
	initCmd.Flags().StringVar(&cfgFormat, "format", "text", "default output format: text | table | json")
	initCmd.Flags().BoolVar(&cfgNoColor, "no-color", false, "disable color output by default")
	initCmd.Flags().BoolVar(&cfgStrict, "strict", false, "reject invalid settings by default")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective machine settings and their fingerprint",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
	cfgCmd.AddCommand(showCmd)
	addSettingsFlags(showCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	res := settings.Resolve(settings.Raw{
		Rotors:    cfgRotors,
		Rings:     cfgRings,
		Reflector: cfgReflector,
		Plugboard: cfgPlugboard,
	})
	if err := res.Err(); err != nil {
		return fmt.Errorf("refusing to write invalid settings: %w", err)
	}
	switch strings.ToLower(cfgFormat) {
	case "text", "table", "json":
	default:
		return fmt.Errorf("unknown output format %q (want text, table or json)", cfgFormat)
	}

	s := res.Settings
	names := make([]string, len(s.Rotors))
	rings := make([]string, len(s.Rings))
	for i := range s.Rotors {
		names[i] = s.Rotors[i].String()
		rings[i] = fmt.Sprint(s.Rings[i])
	}
	fc := config.FileConfig{
		Rotors:    strPtr(strings.Join(names, ",")),
		Rings:     strPtr(strings.Join(rings, ",")),
		Reflector: strPtr(s.Reflector.String()),
		Plugboard: optStrPtr(strings.Join(s.Plugboard, ",")),
		NoColor:   boolPtr(cfgNoColor),
		Strict:    boolPtr(cfgStrict),
		Output:    strPtr(strings.ToLower(cfgFormat)),
	}
	if err := config.Save(cfgOutput, fc); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	res, lcfg, gcfg, err := resolution()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	d := res.Settings.Describe()
	fmt.Fprintln(w, report.MachineLine(d))
	fmt.Fprintln(w, "Fingerprint:", d.Fingerprint)
	for _, is := range res.Issues {
		fmt.Fprintln(w, "fallback:", is.Error())
	}
	names := append(lcfg.KeyNames(), gcfg.KeyNames()...)
	if len(names) > 0 {
		fmt.Fprintln(w, "Key sheets:", strings.Join(names, ", "))
	}
	return nil
}

func strPtr(s string) *string { return &s }
func optStrPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
func boolPtr(v bool) *bool { return &v }
