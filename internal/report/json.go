package report

import (
	"encoding/json"
	"io"

	"github.com/varalys/maschine/internal/types"
)

// WriteJSON pretty-prints translations as a JSON array.
func WriteJSON(w io.Writer, trs []types.Translation) error {
	if trs == nil {
		trs = []types.Translation{}
	} // no `null` in JSON
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(trs)
}
