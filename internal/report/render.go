package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/varalys/maschine/internal/rotor"
	"github.com/varalys/maschine/internal/types"
)

type PrintOptions struct {
	NoColor bool
	// Describe adds the machine settings and fingerprint below the output.
	Describe bool
}

var (
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	issueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func paint(style lipgloss.Style, s string, opts PrintOptions) string {
	if opts.NoColor {
		return s
	}
	return style.Render(s)
}

// PrintText writes each translation's output on its own line, prefixed with
// its source when there is more than one.
func PrintText(w io.Writer, trs []types.Translation, opts PrintOptions) {
	for _, tr := range trs {
		out := paint(outputStyle, tr.Output, opts)
		if tr.Source != "" && len(trs) > 1 {
			fmt.Fprintf(w, "%s: %s\n", paint(labelStyle, tr.Source, opts), out)
		} else {
			fmt.Fprintln(w, out)
		}
	}
	if opts.Describe && len(trs) > 0 {
		fmt.Fprintln(w)
		describe(w, trs[0].Machine, opts)
	}
}

func describe(w io.Writer, m types.Machine, opts PrintOptions) {
	fmt.Fprintf(w, "%s %s\n", paint(labelStyle, "Machine:", opts), MachineLine(m))
	fmt.Fprintf(w, "%s %s\n", paint(labelStyle, "Fingerprint:", opts), m.Fingerprint)
}

// MachineLine renders settings in the form
// "Rotors: I II III, Rings: 1 1 1, Reflector: B, Plugboard: AB CD".
func MachineLine(m types.Machine) string {
	rings := make([]string, len(m.Rings))
	for i, r := range m.Rings {
		rings[i] = strconv.Itoa(r)
	}
	s := fmt.Sprintf("Rotors: %s, Rings: %s, Reflector: %s",
		strings.Join(m.Rotors, " "), strings.Join(rings, " "), m.Reflector)
	if len(m.Plugboard) > 0 {
		s += ", Plugboard: " + strings.Join(m.Plugboard, " ")
	}
	return s
}

// PrintTable renders translations as a bordered table followed by the
// machine settings and any configuration fallbacks.
func PrintTable(w io.Writer, trs []types.Translation, opts PrintOptions) error {
	if len(trs) == 0 {
		fmt.Fprintln(w, "Nothing to translate")
		return nil
	}
	table := tablewriter.NewWriter(w)
	table.Header("Source", "Letters", "Output", "Rotors after")
	for _, tr := range trs {
		src := tr.Source
		if src == "" {
			src = "-"
		}
		row := []string{src, strconv.Itoa(tr.Letters), tr.Output, strings.Join(tr.State, ", ")}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	describe(w, trs[0].Machine, opts)
	seen := map[string]bool{}
	for _, tr := range trs {
		for _, is := range tr.Issues {
			if seen[is] {
				continue
			}
			seen[is] = true
			fmt.Fprintf(w, "%s %s\n", paint(issueStyle, "fallback:", opts), is)
		}
	}
	return nil
}

// PrintCatalog lists the rotor and reflector wheels with their wiring.
func PrintCatalog(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header("Wheel", "Kind", "Wiring", "Notch")
	for _, t := range rotor.Types() {
		row := []string{t.String(), "rotor", t.Wiring(), string(t.Notch())}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	for _, r := range rotor.ReflectorTypes() {
		row := []string{r.String(), "reflector", r.Wiring(), "-"}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
