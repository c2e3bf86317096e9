package models

import (
	"testing"

	"github.com/bay-transit/bayt-cli/internal/siri"
	"github.com/bay-transit/bayt-cli/internal/testutil"
)

func TestDeriveStations(t *testing.T) {
	records := []siri.StopRecord{
		{ID: "2", Name: "Church St", Latitude: "37.75178", Longitude: "-122.42862"},
		{ID: "1", Name: "Castro St", Latitude: "37.76263", Longitude: "-122.43532"},
	}

	stations := DeriveStations(records)
	testutil.AssertLen(t, stations, 2)

	// Sorted by name ascending
	testutil.AssertEqual(t, stations[0].Name, "Castro St")
	testutil.AssertEqual(t, stations[1].Name, "Church St")

	testutil.AssertTrue(t, stations[0].Latitude != nil)
	testutil.AssertFloatEqual(t, *stations[0].Latitude, 37.76263, 1e-9)
	testutil.AssertFloatEqual(t, *stations[0].Longitude, -122.43532, 1e-9)
}

func TestDeriveStations_DropsIncompleteRecords(t *testing.T) {
	records := []siri.StopRecord{
		{ID: "", Name: "No ID"},
		{ID: "no-name", Name: ""},
		{ID: "ok", Name: "Keeps"},
	}

	stations := DeriveStations(records)
	testutil.AssertLen(t, stations, 1)
	testutil.AssertEqual(t, stations[0].ID, "ok")
}

func TestDeriveStations_BadCoordinatesKeepRecord(t *testing.T) {
	records := []siri.StopRecord{
		{ID: "a", Name: "Missing coords"},
		{ID: "b", Name: "Malformed coords", Latitude: "north-ish", Longitude: "-122.4"},
	}

	stations := DeriveStations(records)
	testutil.AssertLen(t, stations, 2)
	testutil.AssertTrue(t, stations[0].Latitude == nil)
	testutil.AssertTrue(t, stations[0].Longitude == nil)
	// Latitude unparseable, longitude still kept
	testutil.AssertTrue(t, stations[1].Latitude == nil)
	testutil.AssertTrue(t, stations[1].Longitude != nil)
}

func TestDeriveStations_NoDedup(t *testing.T) {
	// Duplicate ids pass through untouched.
	records := []siri.StopRecord{
		{ID: "x", Name: "Same Stop"},
		{ID: "x", Name: "Same Stop"},
	}

	stations := DeriveStations(records)
	testutil.AssertLen(t, stations, 2)
}

func TestDeriveStations_StableTies(t *testing.T) {
	records := []siri.StopRecord{
		{ID: "first", Name: "Same Name"},
		{ID: "second", Name: "Same Name"},
	}

	stations := DeriveStations(records)
	testutil.AssertLen(t, stations, 2)
	testutil.AssertEqual(t, stations[0].ID, "first")
	testutil.AssertEqual(t, stations[1].ID, "second")
}
