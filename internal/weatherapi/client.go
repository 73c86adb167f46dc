package weatherapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"skycast/internal/domain"
)

const (
	// DefaultBaseURL is the weatherapi.com v1 endpoint
	DefaultBaseURL = "https://api.weatherapi.com/v1"
	// DefaultTimeout bounds a single request
	DefaultTimeout = 10 * time.Second
)

// Client talks to the weatherapi.com location lookup and forecast endpoints
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *zap.SugaredLogger
	now     func() time.Time
}

// NewClient creates a client with its own http.Client using the given timeout
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *zap.SugaredLogger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return NewClientWithHTTPClient(baseURL, apiKey, &http.Client{Timeout: timeout}, logger)
}

// NewClientWithHTTPClient creates a client around an existing http.Client (for tests)
func NewClientWithHTTPClient(baseURL, apiKey string, httpClient *http.Client, logger *zap.SugaredLogger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
		logger:  logger,
		now:     time.Now,
	}
}

// SearchLocations returns the locations matching a free-text query.
// The query is sent as-is; callers decide when a query is long enough.
func (c *Client) SearchLocations(ctx context.Context, query string) ([]domain.LocationCandidate, error) {
	params := url.Values{}
	params.Set("q", query)

	var entries []searchEntry
	if err := c.get(ctx, "search.json", params, &entries); err != nil {
		return nil, fmt.Errorf("searching locations for %q: %w", query, err)
	}

	candidates := make([]domain.LocationCandidate, 0, len(entries))
	for _, e := range entries {
		candidates = append(candidates, e.toDomain())
	}
	c.logger.Debugw("location search completed", "query", query, "results", len(candidates))
	return candidates, nil
}

// FetchForecast resolves a location name and returns its current conditions
// and a daily forecast in one round trip
func (c *Client) FetchForecast(ctx context.Context, locationName string, days int) (*domain.WeatherSnapshot, error) {
	req := domain.ForecastRequest{LocationName: locationName, Days: days}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	params := url.Values{}
	params.Set("q", locationName)
	params.Set("days", strconv.Itoa(days))
	params.Set("aqi", "no")
	params.Set("alerts", "no")

	var resp forecastResponse
	if err := c.get(ctx, "forecast.json", params, &resp); err != nil {
		return nil, fmt.Errorf("fetching forecast for %q: %w", locationName, err)
	}
	if len(resp.Forecast.ForecastDay) == 0 {
		return nil, fmt.Errorf("fetching forecast for %q: %w", locationName, ErrEmptyResult)
	}

	snap := resp.toDomain(c.now())
	c.logger.Debugw("forecast fetched",
		"location", snap.Location.Name,
		"country", snap.Location.Country,
		"days", len(snap.Days))
	return snap, nil
}

// get performs a GET against an endpoint and decodes the JSON body into dst
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, dst any) error {
	// path without the key, safe for logs and errors
	path := "/" + endpoint + "?q=" + url.QueryEscape(params.Get("q"))

	params.Set("key", c.apiKey)
	rawURL := c.baseURL + "/" + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: creating request for %s: %w", ErrInvalidRequest, path, withoutURL(err))
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrNetwork, path, withoutURL(err))
	}
	defer resp.Body.Close()

	c.logger.Debugw("weather API request",
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %w", path, readAPIError(resp))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decoding response from %s: %w", ErrDecode, path, err)
	}
	return nil
}

// withoutURL drops the *url.Error wrapper, whose message carries the key
func withoutURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

func readAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}
	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		apiErr.Code = payload.Error.Code
		apiErr.Message = payload.Error.Message
	}
	return apiErr
}
