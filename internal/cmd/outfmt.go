package cmd

import (
	"encoding/json"
	"io"
)

// writeJSON encodes v as a single indented JSON object, gogcli's own
// outfmt.WriteJSON contract (referenced in docs_edit.go, not retrieved into
// the example pack).
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
