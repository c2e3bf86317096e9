// Package siri decodes the two JSON shapes the 511 transit API serves:
// a flattened "Contents" (NeTEx) tree and a nested "Siri" ServiceDelivery
// tree. The upstream is inconsistent about repeatable fields — the same
// key may hold a single object or an array — so every repeatable field
// decodes through oneOrMany. The package produces flat intermediate
// records; domain conversion lives in internal/models.
package siri

import (
	"bytes"
	"encoding/json"
)

// utf8BOM is the 3-byte prefix the upstream sometimes includes before the
// JSON body.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// StripBOM removes a leading UTF-8 byte-order mark if present.
func StripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}

// oneOrMany decodes a JSON value that is either an array of T or a single
// T object. A value that is neither decodes as absent, not as an error;
// family mismatches are expected and resolved by the caller trying the
// next family.
type oneOrMany[T any] []T

func (l *oneOrMany[T]) UnmarshalJSON(data []byte) error {
	var many []T
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one T
	if err := json.Unmarshal(data, &one); err == nil {
		*l = oneOrMany[T]{one}
		return nil
	}
	*l = nil
	return nil
}

// StopVisit is one normalized real-time observation from a StopMonitoring
// response. Empty string means the field was absent upstream.
type StopVisit struct {
	LineRef               string
	PublishedLineName     string
	DestinationName       string
	Monitored             bool
	HasCall               bool
	ExpectedDepartureTime string
	AimedDepartureTime    string
	ExpectedArrivalTime   string
	AimedArrivalTime      string
}

// StopRecord is one normalized stop from either schema family.
// Coordinates stay as the upstream's decimal strings; parsing them is the
// deriver's concern.
type StopRecord struct {
	ID        string
	Name      string
	Latitude  string
	Longitude string
}

// LineRecord is one normalized line from either schema family.
type LineRecord struct {
	ID         string
	Name       string
	PublicCode string
}

// Raw tree for StopMonitoring responses.

type monitoredCall struct {
	ExpectedDepartureTime string `json:"ExpectedDepartureTime"`
	AimedDepartureTime    string `json:"AimedDepartureTime"`
	ExpectedArrivalTime   string `json:"ExpectedArrivalTime"`
	AimedArrivalTime      string `json:"AimedArrivalTime"`
}

type monitoredVehicleJourney struct {
	LineRef           string         `json:"LineRef"`
	PublishedLineName string         `json:"PublishedLineName"`
	DestinationName   string         `json:"DestinationName"`
	Monitored         bool           `json:"Monitored"`
	MonitoredCall     *monitoredCall `json:"MonitoredCall"`
}

type monitoredStopVisit struct {
	MonitoredVehicleJourney monitoredVehicleJourney `json:"MonitoredVehicleJourney"`
}

type stopMonitoringDelivery struct {
	MonitoredStopVisit oneOrMany[monitoredStopVisit] `json:"MonitoredStopVisit"`
}

type monitoringServiceDelivery struct {
	StopMonitoringDelivery oneOrMany[stopMonitoringDelivery] `json:"StopMonitoringDelivery"`
}

type stopMonitoringDocument struct {
	Siri            *stopMonitoringDocument    `json:"Siri"`
	ServiceDelivery *monitoringServiceDelivery `json:"ServiceDelivery"`
}

// Raw trees for stops responses.

type location struct {
	Longitude string `json:"Longitude"`
	Latitude  string `json:"Latitude"`
}

type scheduledStopPoint struct {
	ID       string    `json:"id"`
	Name     string    `json:"Name"`
	Location *location `json:"Location"`
}

type stopPlaceCentroid struct {
	Location *location `json:"Location"`
}

type stopPlace struct {
	ID       string             `json:"id"`
	Name     string             `json:"Name"`
	Centroid *stopPlaceCentroid `json:"Centroid"`
}

type stopsContents struct {
	DataObjects struct {
		ScheduledStopPoint oneOrMany[scheduledStopPoint] `json:"ScheduledStopPoint"`
	} `json:"dataObjects"`
}

type stopsDocument struct {
	Contents *stopsContents `json:"Contents"`
	Siri     *struct {
		ServiceDelivery struct {
			DataObjectDelivery struct {
				DataObjects struct {
					SiteFrame struct {
						StopPlaces struct {
							StopPlace oneOrMany[stopPlace] `json:"StopPlace"`
						} `json:"stopPlaces"`
					} `json:"SiteFrame"`
				} `json:"dataObjects"`
			} `json:"DataObjectDelivery"`
		} `json:"ServiceDelivery"`
	} `json:"Siri"`
}

// Raw trees for lines responses.

type line struct {
	ID         string `json:"Id"`
	LowerID    string `json:"id"`
	Name       string `json:"Name"`
	PublicCode string `json:"PublicCode"`
}

type resourceFrame struct {
	Lines struct {
		Line oneOrMany[line] `json:"Line"`
	} `json:"lines"`
}

type linesDocument struct {
	Contents *struct {
		DataObjects struct {
			ResourceFrame resourceFrame `json:"ResourceFrame"`
		} `json:"dataObjects"`
	} `json:"Contents"`
	Siri *struct {
		ServiceDelivery struct {
			DataObjectDelivery struct {
				DataObjects struct {
					ResourceFrame resourceFrame `json:"ResourceFrame"`
				} `json:"dataObjects"`
			} `json:"DataObjectDelivery"`
		} `json:"ServiceDelivery"`
	} `json:"Siri"`
}
