package nominatim

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample request: https://nominatim.openstreetmap.org/search?q=Mumbai&format=json&addressdetails=1&limit=5
const (
	defaultBaseURL = "https://nominatim.openstreetmap.org"

	// Nominatim's usage policy requires a distinguishing client identifier.
	userAgent = "astro-atlas/1.0 (birth-chart location search)"

	defaultTimeout = 10 * time.Second
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return NewClientWithBaseURL(defaultBaseURL, defaultTimeout, logger)
}

// NewClientWithBaseURL overrides the endpoint and timeout. Useful for tests
// and for self-hosted Nominatim instances.
func NewClientWithBaseURL(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger.With("component", "nominatim-client"),
	}
}

// Search performs a forward geocoding query and returns up to limit places.
func (c *Client) Search(query string, limit int) ([]Place, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = "/search"
	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("addressdetails", "1")
	q.Set("accept-language", "en")
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	c.logger.Debug("searching nominatim", "query", query, "limit", limit)

	var places []Place
	if err := c.getJSON(u.String(), &places); err != nil {
		return nil, err
	}

	c.logger.Debug("nominatim search completed", "query", query, "result_count", len(places))

	return places, nil
}

// Reverse resolves coordinates to a single place.
func (c *Client) Reverse(latitude, longitude float64) (*ReverseAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = "/reverse"
	q := u.Query()
	q.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("format", "json")
	q.Set("addressdetails", "1")
	q.Set("accept-language", "en")
	u.RawQuery = q.Encode()

	c.logger.Debug("reverse geocoding", "lat", latitude, "lon", longitude)

	var apiResp ReverseAPIResponse
	if err := c.getJSON(u.String(), &apiResp); err != nil {
		return nil, err
	}

	if apiResp.Error != "" {
		return nil, fmt.Errorf("reverse geocoding failed: %s", apiResp.Error)
	}

	return &apiResp, nil
}

func (c *Client) getJSON(rawURL string, out any) error {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("nominatim request failed", "error", err)
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("nominatim returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode nominatim response", "error", err)
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
