// Package geocoding implements the forward geocoding service against a
// Nominatim-compatible search endpoint. Results are best effort and never
// authoritative for assignment; they only populate coordinates up front.
package geocoding

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"atlas/config"
	"atlas/internal/domain/service"
	"atlas/internal/errors"
)

const (
	defaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "atlas-geocoder"
	defaultTimeout   = 5 * time.Second

	// maxResponseBytes bounds how much of the provider response is read.
	maxResponseBytes = 1 << 20
)

// nominatimClient talks to a Nominatim-compatible /search endpoint.
type nominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// searchResult mirrors one entry of the provider's JSON response.
// Nominatim serializes coordinates as strings.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewNominatimClient creates the geocoding service from configuration,
// falling back to the public Nominatim instance when none is given.
func NewNominatimClient(cfg *config.Config, logger *slog.Logger) service.GeocodingService {
	baseURL := defaultBaseURL
	userAgent := defaultUserAgent
	timeout := defaultTimeout

	if geocfg := cfg.Geocoding; geocfg != nil {
		if geocfg.BaseURL != "" {
			baseURL = strings.TrimRight(geocfg.BaseURL, "/")
		}
		if geocfg.UserAgent != "" {
			userAgent = geocfg.UserAgent
		}
		if geocfg.Timeout > 0 {
			timeout = geocfg.Timeout
		}
	}

	return &nominatimClient{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Geocode resolves a free-form address into coordinates using the provider's
// best match. Returns service.ErrGeocodeNoResult when the provider finds
// nothing.
func (c *nominatimClient) Geocode(ctx context.Context, address string) (*service.GeocodeResult, error) {
	query := strings.TrimSpace(address)
	if query == "" {
		return nil, service.ErrGeocodeNoResult
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build geocoding request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call geocoding provider")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("geocoding provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read geocoding response")
	}

	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, errors.Wrap(err, "decode geocoding response")
	}
	if len(results) == 0 {
		return nil, service.ErrGeocodeNoResult
	}

	best := results[0]
	lat, err := strconv.ParseFloat(best.Lat, 64)
	if err != nil {
		return nil, errors.Wrap(err, "parse latitude in geocoding response")
	}
	lng, err := strconv.ParseFloat(best.Lon, 64)
	if err != nil {
		return nil, errors.Wrap(err, "parse longitude in geocoding response")
	}

	c.logger.Debug("geocoded address",
		slog.String("query", query),
		slog.Float64("lat", lat),
		slog.Float64("lng", lng),
	)

	return &service.GeocodeResult{
		Latitude:    lat,
		Longitude:   lng,
		DisplayName: best.DisplayName,
	}, nil
}
