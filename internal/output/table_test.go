package output

import (
	"strings"
	"testing"
	"time"

	"github.com/bay-transit/bayt-cli/internal/models"
	"github.com/bay-transit/bayt-cli/internal/operators"
	"github.com/bay-transit/bayt-cli/internal/testutil"
)

func plainOpts() TableOptions {
	return TableOptions{Colors: NewColors(ColorNever)}
}

func TestRenderDepartures(t *testing.T) {
	departures := []models.Departure{
		{
			LineName:      "N Judah",
			Destination:   "Ocean Beach",
			DepartureTime: time.Date(2030, 1, 1, 10, 5, 0, 0, time.UTC),
			IsRealTime:    true,
		},
		{
			LineName:      "L Taraval",
			Destination:   "SF Zoo",
			DepartureTime: time.Date(2030, 1, 1, 10, 30, 0, 0, time.UTC),
		},
	}

	var buf strings.Builder
	RenderDepartures(&buf, departures, plainOpts())
	out := buf.String()

	testutil.AssertContains(t, out, "N Judah")
	testutil.AssertContains(t, out, "Ocean Beach")
	testutil.AssertContains(t, out, "live")
	testutil.AssertContains(t, out, "sched")
	testutil.AssertContains(t, out, "SF Zoo")
}

func TestRenderDepartures_Empty(t *testing.T) {
	var buf strings.Builder
	RenderDepartures(&buf, nil, plainOpts())
	testutil.AssertContains(t, buf.String(), "No departures found.")
}

func TestRenderStations(t *testing.T) {
	lat, lon := 37.76263, -122.43532
	stations := []models.Station{
		{ID: "15553", Name: "Market St & Castro St", Latitude: &lat, Longitude: &lon},
		{ID: "99999", Name: "No Coordinates"},
	}

	var buf strings.Builder
	RenderStations(&buf, stations, plainOpts())
	out := buf.String()

	testutil.AssertContains(t, out, "15553")
	testutil.AssertContains(t, out, "Market St & Castro St")
	testutil.AssertContains(t, out, "37.76263")
	testutil.AssertContains(t, out, "No Coordinates")
}

func TestRenderStations_Empty(t *testing.T) {
	var buf strings.Builder
	RenderStations(&buf, nil, plainOpts())
	testutil.AssertContains(t, buf.String(), "No stops found.")
}

func TestRenderLines(t *testing.T) {
	lines := []models.TransitLine{
		{ID: "N", Name: "N Judah"},
		{ID: "42"}, // nameless line shows its id
	}

	var buf strings.Builder
	RenderLines(&buf, lines, plainOpts())
	out := buf.String()

	testutil.AssertContains(t, out, "N Judah")
	testutil.AssertContains(t, out, "42")
}

func TestRenderLines_Empty(t *testing.T) {
	var buf strings.Builder
	RenderLines(&buf, nil, plainOpts())
	testutil.AssertContains(t, buf.String(), "No lines found.")
}

func TestRenderOperators(t *testing.T) {
	var buf strings.Builder
	RenderOperators(&buf, operators.All(), plainOpts())
	out := buf.String()

	testutil.AssertContains(t, out, "Known operators:")
	testutil.AssertContains(t, out, "Caltrain")
	testutil.AssertContains(t, out, "BART")
}
