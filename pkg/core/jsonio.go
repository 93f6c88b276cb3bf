package core

import (
	"encoding/json"
	"io"

	"github.com/varalys/maschine/internal/report"
)

// MarshalTranslations pretty-prints translations as JSON for humans or pipelines.
func MarshalTranslations(w io.Writer, trs []Translation) error {
	return report.WriteJSON(w, trs)
}

// UnmarshalTranslations decodes translations JSON, useful for ingestion tests.
func UnmarshalTranslations(r io.Reader) ([]Translation, error) {
	var trs []Translation
	if err := json.NewDecoder(r).Decode(&trs); err != nil {
		return nil, err
	}
	return trs, nil
}
