// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteText prints one block per polygon: summary lines, a per-edge table
// and the bordering totals.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, e := range r.Entries {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "polygon %s\t(%d vertices, reach %g)\n", e.Name, len(e.Vertices), e.Reach)
		fmt.Fprintf(tw, "  centroid\t(%.4f, %.4f)\n", e.Centroid.X, e.Centroid.Y)
		fmt.Fprintf(tw, "  area\t%.4f\n", e.Area)
		fmt.Fprintf(tw, "  perimeter\t%.4f\n", e.Perimeter)
		if e.AngleErr != nil {
			fmt.Fprintf(tw, "  angles\t%v\n", e.AngleErr)
		}

		fmt.Fprintln(tw, "  edge\tdx\tdy\tlength\tangle")
		for j, s := range e.Segments {
			angle := "-"
			if e.Angles != nil {
				angle = fmt.Sprintf("%.4f", e.Angles[j])
			}
			fmt.Fprintf(tw, "  %d\t%.4f\t%.4f\t%.4f\t%s\n", j, s.X, s.Y, e.Lengths[j], angle)
		}

		fmt.Fprintln(tw, "  border\tbordering")
		for _, b := range e.Borders {
			if b.Err != nil {
				fmt.Fprintf(tw, "  %s\t%v\n", typeLabel(b.Type), b.Err)
				continue
			}
			fmt.Fprintf(tw, "  %s\t%.4f\n", typeLabel(b.Type), b.Value)
		}
	}

	return tw.Flush()
}
