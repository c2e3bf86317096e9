package siri

import (
	"encoding/json"
)

// DecodeStopMonitoring extracts the first delivery's visit list from a
// StopMonitoring response body. An optional top-level "Siri" wrapper is
// tolerated. A response without any delivery yields an empty list; only a
// body that is not valid JSON at all returns an error.
func DecodeStopMonitoring(data []byte) ([]StopVisit, error) {
	var doc stopMonitoringDocument
	if err := decode(data, &doc); err != nil {
		return nil, err
	}
	if doc.Siri != nil {
		doc = *doc.Siri
	}
	if doc.ServiceDelivery == nil {
		return nil, nil
	}
	deliveries := doc.ServiceDelivery.StopMonitoringDelivery
	if len(deliveries) == 0 {
		return nil, nil
	}

	raw := deliveries[0].MonitoredStopVisit
	visits := make([]StopVisit, 0, len(raw))
	for _, v := range raw {
		mvj := v.MonitoredVehicleJourney
		sv := StopVisit{
			LineRef:           mvj.LineRef,
			PublishedLineName: mvj.PublishedLineName,
			DestinationName:   mvj.DestinationName,
			Monitored:         mvj.Monitored,
		}
		if call := mvj.MonitoredCall; call != nil {
			sv.HasCall = true
			sv.ExpectedDepartureTime = call.ExpectedDepartureTime
			sv.AimedDepartureTime = call.AimedDepartureTime
			sv.ExpectedArrivalTime = call.ExpectedArrivalTime
			sv.AimedArrivalTime = call.AimedArrivalTime
		}
		visits = append(visits, sv)
	}
	return visits, nil
}

// DecodeStops extracts stop records from a stops response body. The
// Contents family is tried first; the SIRI family is consulted only when
// Contents yields zero records. The two families are never merged.
func DecodeStops(data []byte) ([]StopRecord, error) {
	var doc stopsDocument
	if err := decode(data, &doc); err != nil {
		return nil, err
	}

	if doc.Contents != nil {
		points := doc.Contents.DataObjects.ScheduledStopPoint
		if len(points) > 0 {
			records := make([]StopRecord, 0, len(points))
			for _, p := range points {
				r := StopRecord{ID: p.ID, Name: p.Name}
				if p.Location != nil {
					r.Latitude = p.Location.Latitude
					r.Longitude = p.Location.Longitude
				}
				records = append(records, r)
			}
			return records, nil
		}
	}

	if doc.Siri == nil {
		return nil, nil
	}
	places := doc.Siri.ServiceDelivery.DataObjectDelivery.DataObjects.SiteFrame.StopPlaces.StopPlace
	records := make([]StopRecord, 0, len(places))
	for _, p := range places {
		r := StopRecord{ID: p.ID, Name: p.Name}
		if p.Centroid != nil && p.Centroid.Location != nil {
			r.Latitude = p.Centroid.Location.Latitude
			r.Longitude = p.Centroid.Location.Longitude
		}
		records = append(records, r)
	}
	return records, nil
}

// DecodeLines extracts line records from a lines response body, Contents
// family first, then the SIRI family's differently-nested ResourceFrame.
func DecodeLines(data []byte) ([]LineRecord, error) {
	var doc linesDocument
	if err := decode(data, &doc); err != nil {
		return nil, err
	}

	if doc.Contents != nil {
		if records := lineRecords(doc.Contents.DataObjects.ResourceFrame); len(records) > 0 {
			return records, nil
		}
	}
	if doc.Siri == nil {
		return nil, nil
	}
	return lineRecords(doc.Siri.ServiceDelivery.DataObjectDelivery.DataObjects.ResourceFrame), nil
}

// lineRecords flattens a ResourceFrame, preferring the capitalized Id
// field over the lowercase id the upstream sometimes emits instead.
func lineRecords(frame resourceFrame) []LineRecord {
	raw := frame.Lines.Line
	if len(raw) == 0 {
		return nil
	}
	records := make([]LineRecord, 0, len(raw))
	for _, l := range raw {
		id := l.ID
		if id == "" {
			id = l.LowerID
		}
		records = append(records, LineRecord{
			ID:         id,
			Name:       l.Name,
			PublicCode: l.PublicCode,
		})
	}
	return records
}

// decode unmarshals into v, distinguishing "not JSON at all" (error) from
// "valid JSON in neither expected shape" (tolerated as empty).
func decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		if !json.Valid(data) {
			return err
		}
	}
	return nil
}
