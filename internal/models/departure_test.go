package models

import (
	"testing"
	"time"

	"github.com/bay-transit/bayt-cli/internal/siri"
	"github.com/bay-transit/bayt-cli/internal/testutil"
)

var testNow = time.Date(2029, 12, 31, 23, 0, 0, 0, time.UTC)

// visitAt builds a minimal visit with an expected departure time.
func visitAt(lineRef, expected string) siri.StopVisit {
	return siri.StopVisit{
		LineRef:               lineRef,
		HasCall:               true,
		ExpectedDepartureTime: expected,
	}
}

func TestDeriveDepartures_SingleVisit(t *testing.T) {
	// A visit with only a line ref falls back for name and destination and
	// defaults to scheduled (not real-time).
	visits := []siri.StopVisit{visitAt("L1", "2030-01-01T10:00:00.000Z")}

	deps := DeriveDepartures(visits, "", testNow)
	testutil.AssertLen(t, deps, 1)
	testutil.AssertEqual(t, deps[0].LineName, "L1")
	testutil.AssertEqual(t, deps[0].Destination, "Unknown")
	testutil.AssertFalse(t, deps[0].IsRealTime)
	testutil.AssertTrue(t, deps[0].DepartureTime.Equal(time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)))
}

func TestDeriveDepartures_FallbackLineName(t *testing.T) {
	visits := []siri.StopVisit{
		{HasCall: true, ExpectedDepartureTime: "2030-01-01T10:00:00Z"},
	}

	deps := DeriveDepartures(visits, "", testNow)
	testutil.AssertLen(t, deps, 1)
	testutil.AssertEqual(t, deps[0].LineName, "Train")
}

func TestDeriveDepartures_PublishedNamePreferred(t *testing.T) {
	visits := []siri.StopVisit{
		{
			LineRef:               "N",
			PublishedLineName:     "N Judah",
			DestinationName:       "Ocean Beach",
			Monitored:             true,
			HasCall:               true,
			ExpectedDepartureTime: "2030-01-01T10:00:00Z",
		},
	}

	deps := DeriveDepartures(visits, "", testNow)
	testutil.AssertLen(t, deps, 1)
	testutil.AssertEqual(t, deps[0].LineName, "N Judah")
	testutil.AssertEqual(t, deps[0].Destination, "Ocean Beach")
	testutil.AssertTrue(t, deps[0].IsRealTime)
}

func TestDeriveDepartures_SortedAscending(t *testing.T) {
	visits := []siri.StopVisit{
		visitAt("A", "2030-01-01T10:05:00Z"),
		visitAt("B", "2030-01-01T10:01:00Z"),
	}

	deps := DeriveDepartures(visits, "", testNow)
	testutil.AssertLen(t, deps, 2)
	testutil.AssertEqual(t, deps[0].LineName, "B")
	testutil.AssertEqual(t, deps[1].LineName, "A")
	testutil.AssertTrue(t, !deps[1].DepartureTime.Before(deps[0].DepartureTime))
}

func TestDeriveDepartures_CappedAtFive(t *testing.T) {
	visits := []siri.StopVisit{
		visitAt("A", "2030-01-01T10:07:00Z"),
		visitAt("B", "2030-01-01T10:01:00Z"),
		visitAt("C", "2030-01-01T10:05:00Z"),
		visitAt("D", "2030-01-01T10:02:00Z"),
		visitAt("E", "2030-01-01T10:06:00Z"),
		visitAt("F", "2030-01-01T10:04:00Z"),
		visitAt("G", "2030-01-01T10:03:00Z"),
	}

	deps := DeriveDepartures(visits, "", testNow)
	testutil.AssertLen(t, deps, 5)
	// The five soonest survive, in order
	for i := 1; i < len(deps); i++ {
		testutil.AssertTrue(t, !deps[i].DepartureTime.Before(deps[i-1].DepartureTime))
	}
	testutil.AssertEqual(t, deps[0].LineName, "B")
	testutil.AssertEqual(t, deps[4].LineName, "C")
}

func TestDeriveDepartures_PastExcluded(t *testing.T) {
	// Past and exactly-now departures never appear; an empty board is not
	// an error.
	visits := []siri.StopVisit{
		visitAt("A", "2020-01-01T00:00:00Z"),
		visitAt("B", testNow.Format(time.RFC3339)),
	}

	deps := DeriveDepartures(visits, "", testNow)
	testutil.AssertLen(t, deps, 0)
}

func TestDeriveDepartures_LineFilter(t *testing.T) {
	visits := []siri.StopVisit{
		visitAt("N", "2030-01-01T10:01:00Z"),
		visitAt("L", "2030-01-01T10:02:00Z"),
		visitAt("n", "2030-01-01T10:03:00Z"), // filter is case-sensitive
	}

	deps := DeriveDepartures(visits, "N", testNow)
	testutil.AssertLen(t, deps, 1)
	testutil.AssertEqual(t, deps[0].LineName, "N")
}

func TestDeriveDepartures_TimePrecedence(t *testing.T) {
	tests := []struct {
		name  string
		visit siri.StopVisit
		want  time.Time
	}{
		{
			name: "expected departure wins over aimed",
			visit: siri.StopVisit{
				HasCall:               true,
				ExpectedDepartureTime: "2030-01-01T10:05:00Z",
				AimedDepartureTime:    "2030-01-01T10:00:00Z",
			},
			want: time.Date(2030, 1, 1, 10, 5, 0, 0, time.UTC),
		},
		{
			name: "aimed departure wins over expected arrival",
			visit: siri.StopVisit{
				HasCall:             true,
				AimedDepartureTime:  "2030-01-01T10:00:00Z",
				ExpectedArrivalTime: "2030-01-01T09:55:00Z",
			},
			want: time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "expected arrival wins over aimed arrival",
			visit: siri.StopVisit{
				HasCall:             true,
				ExpectedArrivalTime: "2030-01-01T09:55:00Z",
				AimedArrivalTime:    "2030-01-01T09:50:00Z",
			},
			want: time.Date(2030, 1, 1, 9, 55, 0, 0, time.UTC),
		},
		{
			name: "aimed arrival as last resort",
			visit: siri.StopVisit{
				HasCall:          true,
				AimedArrivalTime: "2030-01-01T09:50:00Z",
			},
			want: time.Date(2030, 1, 1, 9, 50, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := DeriveDepartures([]siri.StopVisit{tt.visit}, "", testNow)
			testutil.AssertLen(t, deps, 1)
			testutil.AssertTrue(t, deps[0].DepartureTime.Equal(tt.want))
		})
	}
}

func TestDeriveDepartures_SkipsUnusableVisits(t *testing.T) {
	visits := []siri.StopVisit{
		{LineRef: "A"},                  // no call at all
		{LineRef: "B", HasCall: true},   // call with no time fields
		visitAt("C", "garbage"),         // unparseable time
		visitAt("D", "2030-01-01T10:00:00Z"), // the one good visit
	}

	deps := DeriveDepartures(visits, "", testNow)
	testutil.AssertLen(t, deps, 1)
	testutil.AssertEqual(t, deps[0].LineName, "D")
}

func TestDeriveDepartures_Empty(t *testing.T) {
	deps := DeriveDepartures(nil, "", testNow)
	testutil.AssertLen(t, deps, 0)
}
