package maschine

import (
	"github.com/spf13/cobra"
	"github.com/varalys/maschine/internal/settings"
	"github.com/varalys/maschine/internal/types"
)

func init() {
	cmd := &cobra.Command{
		Use:   "run ROTORS RINGS REFLECTOR MESSAGE [PLUGBOARD]",
		Short: "Translate with all settings given positionally",
		Long:  "Run takes the whole key as positional arguments. An empty token selects its default; invalid tokens fall back to the defaults with a warning, or fail with --strict. The reflector must be the single letter b or c: longer tokens such as \"charlie\" are invalid and select B.",
		Args:  cobra.RangeArgs(4, 5),
		Example: `
maschine run 1,2,3 1,1,1 b "Hello, World!"
maschine run 2,4,5 5,12,20 c "attack at dawn" AB,CD,XZ
`,
		RunE: runPositional,
	}
	rootCmd.AddCommand(cmd)
	cmd.Flags().BoolVar(&flagStrict, "strict", false, "fail instead of falling back to defaults on invalid settings")
}

func runPositional(cmd *cobra.Command, args []string) error {
	lcfg, gcfg, err := loadConfigs()
	if err != nil {
		return err
	}
	raw := settings.Raw{Rotors: args[0], Rings: args[1], Reflector: args[2]}
	if len(args) == 5 {
		raw.Plugboard = args[4]
	}
	res := settings.Resolve(raw)
	if err := checkResolution(res, lcfg, gcfg); err != nil {
		return err
	}
	tr, err := res.Record("", args[3])
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), []types.Translation{tr}, lcfg, gcfg)
}
