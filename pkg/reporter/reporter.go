package reporter

import "io"

// Reporter renders the list of documentation versions, newest first.
type Reporter interface {
	Report(w io.Writer, versions []string) error
}

func New(format string) Reporter {
	switch format {
	case "json":
		return &JSONReporter{}
	case "script":
		return &ScriptReporter{}
	default:
		return &TableReporter{}
	}
}
