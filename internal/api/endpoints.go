package api

const (
	// BaseURL is the base URL for the 511 transit API
	BaseURL = "https://api.511.org/transit"

	// EndpointStopMonitoring returns real-time stop visits
	// Required params: api_key, agency, stopCode, format
	EndpointStopMonitoring = "/StopMonitoring"

	// EndpointStops returns the stop list for an operator
	// Required params: api_key, operator_id, format
	EndpointStops = "/stops"

	// EndpointLines returns the line list for an operator
	// Required params: api_key, operator_id, format
	EndpointLines = "/lines"
)
