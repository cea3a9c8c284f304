package reporter

import (
	"encoding/json"
	"io"
)

type JSONReporter struct{}

func (r *JSONReporter) Report(w io.Writer, versions []string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	type output struct {
		Count    int      `json:"count"`
		Latest   string   `json:"latest,omitempty"`
		Versions []string `json:"versions"`
	}

	out := output{
		Count:    len(versions),
		Versions: versions,
	}
	if out.Versions == nil {
		out.Versions = []string{}
	}
	if len(versions) > 0 {
		out.Latest = versions[0]
	}
	return enc.Encode(out)
}
