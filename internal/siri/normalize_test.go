package siri

import (
	"testing"

	"github.com/bay-transit/bayt-cli/internal/testutil"
)

func TestDecodeStopMonitoring(t *testing.T) {
	visits, err := DecodeStopMonitoring([]byte(testutil.SampleStopMonitoringResponse))
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, visits, 2)

	testutil.AssertEqual(t, visits[0].LineRef, "N")
	testutil.AssertEqual(t, visits[0].PublishedLineName, "N Judah")
	testutil.AssertEqual(t, visits[0].DestinationName, "Ocean Beach")
	testutil.AssertTrue(t, visits[0].Monitored)
	testutil.AssertTrue(t, visits[0].HasCall)
	testutil.AssertEqual(t, visits[0].ExpectedDepartureTime, "2030-01-01T10:05:00Z")
	testutil.AssertEqual(t, visits[0].AimedDepartureTime, "2030-01-01T10:04:00Z")

	testutil.AssertFalse(t, visits[1].Monitored)
	testutil.AssertEqual(t, visits[1].ExpectedDepartureTime, "")
	testutil.AssertEqual(t, visits[1].AimedDepartureTime, "2030-01-01T10:01:00.000Z")
}

func TestDecodeStopMonitoring_SingleVisitObject(t *testing.T) {
	// A bare visit object (plus a top-level Siri wrapper and a delivery
	// array) decodes the same as a one-element visit array.
	visits, err := DecodeStopMonitoring([]byte(testutil.SampleStopMonitoringSingleVisit))
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, visits, 1)
	testutil.AssertEqual(t, visits[0].LineRef, "J")
	testutil.AssertEqual(t, visits[0].DestinationName, "Balboa Park")
}

func TestDecodeStopMonitoring_MissingCall(t *testing.T) {
	body := `{"ServiceDelivery":{"StopMonitoringDelivery":{"MonitoredStopVisit":[
		{"MonitoredVehicleJourney":{"LineRef":"X"}}
	]}}}`

	visits, err := DecodeStopMonitoring([]byte(body))
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, visits, 1)
	testutil.AssertFalse(t, visits[0].HasCall)
}

func TestDecodeStopMonitoring_FirstDeliveryOnly(t *testing.T) {
	body := `{"ServiceDelivery":{"StopMonitoringDelivery":[
		{"MonitoredStopVisit":[{"MonitoredVehicleJourney":{"LineRef":"first"}}]},
		{"MonitoredStopVisit":[{"MonitoredVehicleJourney":{"LineRef":"second"}}]}
	]}}`

	visits, err := DecodeStopMonitoring([]byte(body))
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, visits, 1)
	testutil.AssertEqual(t, visits[0].LineRef, "first")
}

func TestDecodeStopMonitoring_AbsentDelivery(t *testing.T) {
	visits, err := DecodeStopMonitoring([]byte(testutil.SampleEmptyObjectResponse))
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, visits, 0)
}

func TestDecodeStopMonitoring_InvalidJSON(t *testing.T) {
	_, err := DecodeStopMonitoring([]byte(`not json at all`))
	testutil.AssertError(t, err)
}

func TestDecodeStops_ContentsFamily(t *testing.T) {
	records, err := DecodeStops([]byte(testutil.SampleStopsContentsResponse))
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, records, 2)
	testutil.AssertEqual(t, records[0].ID, "15553")
	testutil.AssertEqual(t, records[0].Name, "Market St & Castro St")
	testutil.AssertEqual(t, records[0].Latitude, "37.76263")
	testutil.AssertEqual(t, records[0].Longitude, "-122.43532")
}

func TestDecodeStops_SingleObjectEqualsArray(t *testing.T) {
	fromArray, err := DecodeStops([]byte(testutil.SampleStopsContentsResponse))
	testutil.AssertNil(t, err)

	fromObject, err := DecodeStops([]byte(testutil.SampleStopsContentsSingleObject))
	testutil.AssertNil(t, err)

	testutil.AssertLen(t, fromObject, 1)
	testutil.AssertEqual(t, fromObject[0], fromArray[0])
}

func TestDecodeStops_SIRIFallback(t *testing.T) {
	records, err := DecodeStops([]byte(testutil.SampleStopsSIRIResponse))
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, records, 1)
	testutil.AssertEqual(t, records[0].ID, "place-mlbr")
	testutil.AssertEqual(t, records[0].Name, "Millbrae")
	// Coordinates come from the nested centroid
	testutil.AssertEqual(t, records[0].Latitude, "37.60035")
	testutil.AssertEqual(t, records[0].Longitude, "-122.38666")
}

func TestDecodeStops_ContentsWinsOverSIRI(t *testing.T) {
	// The two families are never merged; a populated Contents tree means
	// the SIRI tree is never consulted.
	body := `{
		"Contents": {"dataObjects": {"ScheduledStopPoint": {"id": "c1", "Name": "Contents Stop"}}},
		"Siri": {"ServiceDelivery": {"DataObjectDelivery": {"dataObjects": {"SiteFrame": {"stopPlaces": {
			"StopPlace": {"id": "s1", "Name": "Siri Stop"}
		}}}}}}
	}`

	records, err := DecodeStops([]byte(body))
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, records, 1)
	testutil.AssertEqual(t, records[0].ID, "c1")
}

func TestDecodeStops_EmptyContentsFallsThrough(t *testing.T) {
	body := `{
		"Contents": {"dataObjects": {}},
		"Siri": {"ServiceDelivery": {"DataObjectDelivery": {"dataObjects": {"SiteFrame": {"stopPlaces": {
			"StopPlace": {"id": "s1", "Name": "Siri Stop"}
		}}}}}}
	}`

	records, err := DecodeStops([]byte(body))
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, records, 1)
	testutil.AssertEqual(t, records[0].ID, "s1")
}

func TestDecodeStops_BothFamiliesAbsent(t *testing.T) {
	records, err := DecodeStops([]byte(testutil.SampleEmptyObjectResponse))
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, records, 0)
}

func TestDecodeStops_InvalidJSON(t *testing.T) {
	_, err := DecodeStops([]byte(`{"Contents": `))
	testutil.AssertError(t, err)
}

func TestDecodeLines_ContentsFamily(t *testing.T) {
	records, err := DecodeLines([]byte(testutil.SampleLinesContentsResponse))
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, records, 2)
	testutil.AssertEqual(t, records[0].ID, "N")
	testutil.AssertEqual(t, records[0].Name, "N Judah")
	testutil.AssertEqual(t, records[1].PublicCode, "L")
}

func TestDecodeLines_SIRIFallbackAndLowercaseID(t *testing.T) {
	records, err := DecodeLines([]byte(testutil.SampleLinesSIRIResponse))
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, records, 1)
	testutil.AssertEqual(t, records[0].ID, "J")
	testutil.AssertEqual(t, records[0].Name, "J Church")
}

func TestDecodeLines_CapitalizedIDPreferred(t *testing.T) {
	body := `{"Contents": {"dataObjects": {"ResourceFrame": {"lines": {"Line": [
		{"Id": "CAP", "id": "low", "Name": "Both IDs"}
	]}}}}}`

	records, err := DecodeLines([]byte(body))
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, records, 1)
	testutil.AssertEqual(t, records[0].ID, "CAP")
}

func TestDecodeLines_BothFamiliesAbsent(t *testing.T) {
	records, err := DecodeLines([]byte(testutil.SampleEmptyObjectResponse))
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, records, 0)
}

func TestDecode_WrongShapeButValidJSON(t *testing.T) {
	// A valid JSON value in neither family shape is tolerated as empty,
	// not an error.
	for _, body := range []string{`[1,2,3]`, `"a string"`, `42`} {
		records, err := DecodeStops([]byte(body))
		testutil.AssertNil(t, err)
		testutil.AssertLen(t, records, 0)
	}
}
