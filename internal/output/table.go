package output

import (
	"fmt"
	"io"

	"github.com/bay-transit/bayt-cli/internal/models"
	"github.com/bay-transit/bayt-cli/internal/operators"
)

// TableOptions configures the table output
type TableOptions struct {
	Colors *Colors
}

func (o TableOptions) colors() *Colors {
	if o.Colors != nil {
		return o.Colors
	}
	return NewColors(ColorNever)
}

// RenderDepartures renders departures as a formatted table
func RenderDepartures(w io.Writer, departures []models.Departure, opts TableOptions) {
	if len(departures) == 0 {
		_, _ = fmt.Fprintln(w, "No departures found.")
		return
	}

	c := opts.colors()

	for _, dep := range departures {
		timeStr := dep.DepartureTime.Local().Format("15:04")

		// Line (truncate/pad to 12 chars)
		line := dep.LineName
		if len(line) > 12 {
			line = line[:12]
		}
		lineStr := fmt.Sprintf("%-12s", line)

		// Real-time marker (fixed 5-char width)
		rtStr := c.Scheduled("sched")
		if dep.IsRealTime {
			rtStr = c.RealTime("live ")
		}

		// Format the line: TIME RT LINE DEST
		_, _ = fmt.Fprintf(w, "%s %s  %s  %s\n",
			c.Time(timeStr),
			rtStr,
			c.Line(lineStr),
			c.Dest(dep.Destination),
		)
	}
}

// RenderStations renders stations as a formatted list
func RenderStations(w io.Writer, stations []models.Station, opts TableOptions) {
	if len(stations) == 0 {
		_, _ = fmt.Fprintln(w, "No stops found.")
		return
	}

	c := opts.colors()

	for _, st := range stations {
		_, _ = fmt.Fprintf(w, "%s  %s", c.Line("%-10s", st.ID), c.Dest(st.Name))
		if st.Latitude != nil && st.Longitude != nil {
			_, _ = fmt.Fprintf(w, "  %s", c.Muted("(%.5f, %.5f)", *st.Latitude, *st.Longitude))
		}
		_, _ = fmt.Fprintln(w)
	}
}

// RenderLines renders transit lines as a formatted list
func RenderLines(w io.Writer, lines []models.TransitLine, opts TableOptions) {
	if len(lines) == 0 {
		_, _ = fmt.Fprintln(w, "No lines found.")
		return
	}

	c := opts.colors()

	for _, l := range lines {
		_, _ = fmt.Fprintf(w, "%s  %s\n", c.Line("%-10s", l.ID), c.Dest(l.DisplayName()))
	}
}

// RenderOperators renders the known-operator registry
func RenderOperators(w io.Writer, ops []operators.Operator, opts TableOptions) {
	c := opts.colors()

	_, _ = fmt.Fprintln(w, c.Header("Known operators:"))
	_, _ = fmt.Fprintln(w)
	for _, op := range ops {
		_, _ = fmt.Fprintf(w, "  %s  %-10s %s\n", c.Line("%-4s", op.ID), c.Muted(op.Abbr), c.Dest(op.Name))
	}
}
