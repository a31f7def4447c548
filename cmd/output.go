package cmd

import (
	"encoding/json"
	"io"
)

func writeJSONOutput(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
