package maschine

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/varalys/maschine/internal/config"
	"github.com/varalys/maschine/internal/settings"
)

// Settings flags shared by translate, lampboard and config show.
var (
	flagRotors    string
	flagRings     string
	flagReflector string
	flagPlugboard string
	flagKey       string
	flagStrict    bool
)

func addSettingsFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagRotors, "rotors", "r", "", "three rotor numbers, entry rotor first (e.g. 1,2,3 or I,II,III)")
	cmd.Flags().StringVar(&flagRings, "rings", "", "three ring settings 1-26 (e.g. 1,1,1)")
	cmd.Flags().StringVar(&flagReflector, "reflector", "", "reflector letter: b | c")
	cmd.Flags().StringVarP(&flagPlugboard, "plugboard", "p", "", "comma-separated letter pairs (e.g. AB,CD)")
	cmd.Flags().StringVarP(&flagKey, "key", "k", "", "use a named key sheet from the config file")
	cmd.Flags().BoolVar(&flagStrict, "strict", false, "fail instead of falling back to defaults on invalid settings")
}

// loadConfigs returns the local and global config files. An explicit
// --config path takes the place of the local file and must exist.
func loadConfigs() (local, global config.FileConfig, err error) {
	if c, err := config.LoadGlobal(); err == nil {
		global = c
	}
	if flagConfig != "" {
		local, err = config.LoadFile(flagConfig)
		if err != nil {
			return local, global, fmt.Errorf("load config: %w", err)
		}
		return local, global, nil
	}
	wd, _ := os.Getwd()
	if c, err := config.LoadLocal(wd); err == nil {
		local = c
	}
	return local, global, nil
}

// sheets picks the config layers that settings are read from. A named key
// replaces the top-level settings of both files.
func sheets(lcfg, gcfg config.FileConfig) (local, global config.KeySheet, err error) {
	if flagKey == "" {
		return lcfg.Sheet(), gcfg.Sheet(), nil
	}
	if k, err := lcfg.Key(flagKey); err == nil {
		return k, config.KeySheet{}, nil
	}
	k, err := gcfg.Key(flagKey)
	if err != nil {
		return local, global, err
	}
	return config.KeySheet{}, k, nil
}

// resolveSettings applies CLI > local > global precedence to the machine
// settings, logs any fallbacks and enforces --strict.
func resolveSettings(lcfg, gcfg config.FileConfig) (settings.Resolution, error) {
	local, global, err := sheets(lcfg, gcfg)
	if err != nil {
		return settings.Resolution{}, err
	}
	res := settings.Resolve(settings.Raw{
		Rotors:    pickString(flagRotors, local.Rotors, global.Rotors),
		Rings:     pickString(flagRings, local.Rings, global.Rings),
		Reflector: pickString(flagReflector, local.Reflector, global.Reflector),
		Plugboard: pickString(flagPlugboard, local.Plugboard, global.Plugboard),
	})
	return res, checkResolution(res, lcfg, gcfg)
}

// checkResolution fails on any issue when strict mode is on (flag or
// config), and otherwise logs the fallbacks that were applied.
func checkResolution(res settings.Resolution, lcfg, gcfg config.FileConfig) error {
	if pickBool(flagStrict, lcfg.Strict, gcfg.Strict) {
		if err := res.Err(); err != nil {
			return fmt.Errorf("invalid settings: %w", err)
		}
		return nil
	}
	res.Log(logger)
	logger.Debug("machine settings", "settings", res.Settings.Canonical(), "fingerprint", res.Settings.Fingerprint())
	return nil
}

// resolution loads the config files and resolves the machine settings.
func resolution() (settings.Resolution, config.FileConfig, config.FileConfig, error) {
	lcfg, gcfg, err := loadConfigs()
	if err != nil {
		return settings.Resolution{}, lcfg, gcfg, err
	}
	res, err := resolveSettings(lcfg, gcfg)
	return res, lcfg, gcfg, err
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
