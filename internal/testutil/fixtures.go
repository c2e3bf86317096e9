package testutil

// Sample JSON responses for API testing. The upstream serves two schema
// families ("Contents" and "Siri") and is inconsistent about whether
// repeatable fields are arrays or single objects; there is a fixture for
// each variant.

// SampleStopMonitoringResponse is a stop-monitoring response with two
// visits, deliberately out of time order.
const SampleStopMonitoringResponse = `{
	"ServiceDelivery": {
		"StopMonitoringDelivery": {
			"MonitoredStopVisit": [
				{
					"MonitoredVehicleJourney": {
						"LineRef": "N",
						"PublishedLineName": "N Judah",
						"DestinationName": "Ocean Beach",
						"Monitored": true,
						"MonitoredCall": {
							"ExpectedDepartureTime": "2030-01-01T10:05:00Z",
							"AimedDepartureTime": "2030-01-01T10:04:00Z"
						}
					}
				},
				{
					"MonitoredVehicleJourney": {
						"LineRef": "L",
						"PublishedLineName": "L Taraval",
						"DestinationName": "SF Zoo",
						"Monitored": false,
						"MonitoredCall": {
							"AimedDepartureTime": "2030-01-01T10:01:00.000Z"
						}
					}
				}
			]
		}
	}
}`

// SampleStopMonitoringSingleVisit encodes MonitoredStopVisit as a bare
// object instead of an array, and wraps the document in a top-level Siri
// key.
const SampleStopMonitoringSingleVisit = `{
	"Siri": {
		"ServiceDelivery": {
			"StopMonitoringDelivery": [
				{
					"MonitoredStopVisit": {
						"MonitoredVehicleJourney": {
							"LineRef": "J",
							"DestinationName": "Balboa Park",
							"Monitored": true,
							"MonitoredCall": {
								"ExpectedDepartureTime": "2030-01-01T09:30:00Z"
							}
						}
					}
				}
			]
		}
	}
}`

// SampleStopsContentsResponse is a stops response in the Contents family.
const SampleStopsContentsResponse = `{
	"Contents": {
		"dataObjects": {
			"ScheduledStopPoint": [
				{
					"id": "15553",
					"Name": "Market St & Castro St",
					"Location": {"Longitude": "-122.43532", "Latitude": "37.76263"}
				},
				{
					"id": "13218",
					"Name": "Church St & 24th St",
					"Location": {"Longitude": "-122.42862", "Latitude": "37.75178"}
				}
			]
		}
	}
}`

// SampleStopsContentsSingleObject encodes ScheduledStopPoint as a bare
// object.
const SampleStopsContentsSingleObject = `{
	"Contents": {
		"dataObjects": {
			"ScheduledStopPoint": {
				"id": "15553",
				"Name": "Market St & Castro St",
				"Location": {"Longitude": "-122.43532", "Latitude": "37.76263"}
			}
		}
	}
}`

// SampleStopsSIRIResponse is a stops response in the SIRI family, with the
// coordinates under the nested centroid.
const SampleStopsSIRIResponse = `{
	"Siri": {
		"ServiceDelivery": {
			"DataObjectDelivery": {
				"dataObjects": {
					"SiteFrame": {
						"stopPlaces": {
							"StopPlace": [
								{
									"id": "place-mlbr",
									"Name": "Millbrae",
									"Centroid": {"Location": {"Longitude": "-122.38666", "Latitude": "37.60035"}}
								}
							]
						}
					}
				}
			}
		}
	}
}`

// SampleLinesContentsResponse is a lines response in the Contents family.
const SampleLinesContentsResponse = `{
	"Contents": {
		"dataObjects": {
			"ResourceFrame": {
				"lines": {
					"Line": [
						{"Id": "N", "Name": "N Judah", "PublicCode": "N"},
						{"Id": "L", "Name": "", "PublicCode": "L"}
					]
				}
			}
		}
	}
}`

// SampleLinesSIRIResponse is a lines response in the SIRI family, using
// the lowercase id field.
const SampleLinesSIRIResponse = `{
	"Siri": {
		"ServiceDelivery": {
			"DataObjectDelivery": {
				"dataObjects": {
					"ResourceFrame": {
						"lines": {
							"Line": {"id": "J", "Name": "J Church"}
						}
					}
				}
			}
		}
	}
}`

// SampleEmptyObjectResponse is valid JSON matching neither schema family.
const SampleEmptyObjectResponse = `{}`
