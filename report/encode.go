package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/robopath/gridgraph"
)

const rule = "=================================================="

// WriteText writes r as a plain-text report: the cost matrix, a summary
// header, one line per step and the visited corners.
func WriteText(w io.Writer, r Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "Cost matrix:")
	for _, row := range r.Grid {
		cells := make([]string, len(row))
		for i, cell := range row {
			switch {
			case cell.Start:
				cells[i] = fmt.Sprintf("S(%d)", cell.Cost)
			case cell.End:
				cells[i] = fmt.Sprintf("E(%d)", cell.Cost)
			default:
				cells[i] = fmt.Sprintf("%d", cell.Cost)
			}
		}
		fmt.Fprintln(bw, strings.Join(cells, " "))
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, rule)
	fmt.Fprintln(bw, "ROBOT OPTIMAL PATH")
	fmt.Fprintln(bw, rule)
	fmt.Fprintf(bw, "Grid: %dx%d\n", r.Size, r.Size)
	fmt.Fprintf(bw, "Start: %s\n", r.Start)
	fmt.Fprintf(bw, "Destination: %s\n", r.End)

	if !r.Found {
		fmt.Fprintln(bw, "NO PATH FOUND!")
		fmt.Fprintf(bw, "\nVisited corners: %s\n", formatCoords(r.Corners))

		return bw.Flush()
	}

	fmt.Fprintf(bw, "Total cost: %d\n", *r.TotalCost)
	fmt.Fprintf(bw, "Steps: %d\n", r.StepCount)
	fmt.Fprintln(bw, "\nPath:")
	for _, st := range r.Steps {
		var marks strings.Builder
		if st.Corner {
			marks.WriteString(" (corner)")
		}
		if st.Start {
			marks.WriteString(" (start)")
		}
		if st.End {
			marks.WriteString(" (end)")
		}
		fmt.Fprintf(bw, "Step %02d: %s%s\n", st.Index, st.Coord, marks.String())
	}
	fmt.Fprintf(bw, "\nVisited corners: %s\n", formatCoords(r.Corners))

	return bw.Flush()
}

// WriteYAML encodes r as a YAML document.
func WriteYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return enc.Close()
}

func formatCoords(cs []gridgraph.Coordinate) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
