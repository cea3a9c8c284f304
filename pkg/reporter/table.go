package reporter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

type TableReporter struct{}

func (r *TableReporter) Report(w io.Writer, versions []string) error {
	if len(versions) == 0 {
		_, err := fmt.Fprintln(w, "No documentation versions found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tVERSION\tCHANNEL")
	fmt.Fprintln(tw, "-\t-------\t-------")

	for i, v := range versions {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, v, channel(v))
	}
	return tw.Flush()
}

func channel(version string) string {
	switch {
	case strings.Contains(version, "-alpha"):
		return "alpha"
	case strings.Contains(version, "-beta"):
		return "beta"
	default:
		return "stable"
	}
}
