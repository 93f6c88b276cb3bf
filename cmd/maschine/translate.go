package maschine

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/varalys/maschine/internal/config"
	"github.com/varalys/maschine/internal/files"
	"github.com/varalys/maschine/internal/report"
	"github.com/varalys/maschine/internal/types"
)

var (
	flagFile     string
	flagGlob     string
	flagOutDir   string
	flagCopy     bool
	flagDescribe bool

	// copyToClipboard is replaced in tests.
	copyToClipboard = clipboard.WriteAll
)

func init() {
	cmd := &cobra.Command{
		Use:   "translate [message...]",
		Short: "Encipher or decipher a message",
		Long:  "Translate passes a message through a freshly set machine. Non-letters are dropped and the result is printed in groups of four. Translating the output again with the same settings recovers the message.",
		Example: `
# Encipher with the default machine (rotors I II III, rings 1 1 1, reflector B)
maschine translate "attack at dawn"

# Full key, message from stdin
echo "attack at dawn" | maschine translate -r 2,4,5 --rings 5,12,20 --reflector c -p AB,CD,XZ

# Every file below msgs/, results mirrored into out/
maschine translate --glob 'msgs/**/*.txt' --out-dir out
`,
		RunE: runTranslate,
	}
	rootCmd.AddCommand(cmd)

	addSettingsFlags(cmd)
	cmd.Flags().StringVarP(&flagFile, "file", "f", "", "read the message from this file")
	cmd.Flags().StringVar(&flagGlob, "glob", "", "translate every file matching this pattern (supports **)")
	cmd.Flags().StringVar(&flagOutDir, "out-dir", "", "with --glob, write each result below this directory")
	cmd.Flags().BoolVar(&flagCopy, "copy", false, "copy the output to the clipboard")
	cmd.Flags().BoolVar(&flagDescribe, "describe", false, "print the machine settings and fingerprint after the output")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	res, lcfg, gcfg, err := resolution()
	if err != nil {
		return err
	}

	var trs []types.Translation
	switch {
	case flagGlob != "":
		batch, err := files.Expand(flagGlob)
		if err != nil {
			return err
		}
		logger.Debug("expanded pattern", "pattern", flagGlob, "files", len(batch.Paths))
		if trs, err = batch.Translate(res, logger); err != nil {
			return err
		}
		if flagOutDir != "" {
			if err := batch.Write(flagOutDir, trs); err != nil {
				return fmt.Errorf("write results: %w", err)
			}
		}
	case flagFile != "":
		b, err := os.ReadFile(flagFile)
		if err != nil {
			return err
		}
		tr, err := res.Record(flagFile, string(b))
		if err != nil {
			return err
		}
		trs = append(trs, tr)
	default:
		msg, err := message(cmd, args)
		if err != nil {
			return err
		}
		tr, err := res.Record("", msg)
		if err != nil {
			return err
		}
		trs = append(trs, tr)
	}

	if flagCopy {
		if err := copyToClipboard(joinOutputs(trs)); err != nil {
			logger.Warn("copy to clipboard failed", "err", err)
		}
	}
	return render(cmd.OutOrStdout(), trs, lcfg, gcfg)
}

// message joins the positional arguments, or reads stdin when there are none.
func message(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

func joinOutputs(trs []types.Translation) string {
	outs := make([]string, len(trs))
	for i, tr := range trs {
		outs[i] = tr.Output
	}
	return strings.Join(outs, "\n")
}

// render writes trs in the selected format: --json, --table, the config
// "output" key, then plain text.
func render(w io.Writer, trs []types.Translation, lcfg, gcfg config.FileConfig) error {
	format := "text"
	if v := pickString("", lcfg.Output, gcfg.Output); v != "" {
		format = strings.ToLower(v)
	}
	switch {
	case flagJSON:
		format = "json"
	case flagTable:
		format = "table"
	}
	opts := report.PrintOptions{
		NoColor:  pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor) || !isTerminal(w),
		Describe: flagDescribe,
	}
	switch format {
	case "json":
		return report.WriteJSON(w, trs)
	case "table":
		return report.PrintTable(w, trs, opts)
	case "text":
		report.PrintText(w, trs, opts)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, table or json)", format)
	}
}
