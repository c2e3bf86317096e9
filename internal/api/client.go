package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bay-transit/bayt-cli/internal/models"
	"github.com/bay-transit/bayt-cli/internal/siri"
)

const defaultTimeout = 10 * time.Second

// Client is the API client for the 511 transit API
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	now        func() time.Time
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the API base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// NewClient creates a new API client. The key is checked per call, not
// here, so an unconfigured client can still be constructed for commands
// that never reach the network.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    BaseURL,
		apiKey:     apiKey,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// DepartureRequest contains parameters for a stop-monitoring query
type DepartureRequest struct {
	Agency   string // Operator ID (required)
	StopCode string // Stop code within the operator (required)
	Line     string // Optional line filter (exact match)
}

// GetDepartures fetches the departure board for a stop: at most five
// future departures, ascending by time. An empty board is a success.
func (c *Client) GetDepartures(ctx context.Context, req DepartureRequest) ([]models.Departure, error) {
	body, err := c.GetDeparturesRaw(ctx, req)
	if err != nil {
		return nil, err
	}

	visits, err := siri.DecodeStopMonitoring(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return models.DeriveDepartures(visits, req.Line, c.now()), nil
}

// GetDeparturesRaw fetches stop monitoring data and returns raw JSON
func (c *Client) GetDeparturesRaw(ctx context.Context, req DepartureRequest) ([]byte, error) {
	if req.Agency == "" {
		return nil, fmt.Errorf("%w: agency is required", ErrInvalidRequest)
	}
	if req.StopCode == "" {
		return nil, fmt.Errorf("%w: stop code is required", ErrInvalidRequest)
	}

	params := url.Values{}
	params.Set("agency", req.Agency)
	params.Set("stopCode", req.StopCode)

	return c.doRequest(ctx, EndpointStopMonitoring, params)
}

// GetStops fetches the stop list for an operator, name-sorted. Zero
// usable stops from both schema families is ErrNoStopsFound, never an
// empty success.
func (c *Client) GetStops(ctx context.Context, operatorID string) ([]models.Station, error) {
	body, err := c.GetStopsRaw(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	records, err := siri.DecodeStops(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	stations := models.DeriveStations(records)
	if len(stations) == 0 {
		return nil, ErrNoStopsFound
	}
	return stations, nil
}

// GetStopsRaw fetches the stop list and returns raw JSON
func (c *Client) GetStopsRaw(ctx context.Context, operatorID string) ([]byte, error) {
	if operatorID == "" {
		return nil, fmt.Errorf("%w: operator id is required", ErrInvalidRequest)
	}

	params := url.Values{}
	params.Set("operator_id", operatorID)

	return c.doRequest(ctx, EndpointStops, params)
}

// GetLines fetches the line list for an operator, sorted by display name.
// Unlike stops, an empty line list is a success.
func (c *Client) GetLines(ctx context.Context, operatorID string) ([]models.TransitLine, error) {
	body, err := c.GetLinesRaw(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	records, err := siri.DecodeLines(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return models.DeriveLines(records), nil
}

// GetLinesRaw fetches the line list and returns raw JSON
func (c *Client) GetLinesRaw(ctx context.Context, operatorID string) ([]byte, error) {
	if operatorID == "" {
		return nil, fmt.Errorf("%w: operator id is required", ErrInvalidRequest)
	}

	params := url.Values{}
	params.Set("operator_id", operatorID)

	return c.doRequest(ctx, EndpointLines, params)
}

// doRequest performs one HTTP GET against an endpoint and returns the
// BOM-stripped body. Exactly one round trip; no retries.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params.Set("api_key", c.apiKey)
	params.Set("format", "json")

	reqURL := c.baseURL + endpoint + "?" + params.Encode()
	if _, err := url.ParseRequestURI(reqURL); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, NewAPIError(resp.StatusCode, resp.Status, endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return siri.StripBOM(body), nil
}
