package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aretw0/stepwise/pkg/registry"
)

// PrintAlgorithms writes the catalog as an aligned table.
func PrintAlgorithms(w io.Writer, algs []registry.Algorithm) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTITLE\tCOMPLEXITY\tSTART")
	for _, a := range algs {
		start := "-"
		if a.NeedsStart {
			start = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.Name, a.Title, a.Complexity, start)
	}
	return tw.Flush()
}
