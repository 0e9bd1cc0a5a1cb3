package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/talentbase/talentbase/internal/application/service"
	"github.com/talentbase/talentbase/internal/config"
	"github.com/talentbase/talentbase/pkg/logger"
)

// mapquestAdapter resolves free-text addresses through the MapQuest
// geocoding REST API. Only the first result of the first batch entry is
// used; candidate addresses are short Italian city/street strings and
// the top hit is good enough for a distance estimate.
type mapquestAdapter struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     logger.Logger
}

func NewMapquestAdapter(cfg config.Config, log logger.Logger) (service.Geocoder, error) {
	if cfg.Geocoder.ApiKey == "" {
		return nil, fmt.Errorf("geocoder api_key is not configured")
	}

	log.Info("MapQuest geocoder initialized")
	return &mapquestAdapter{
		baseURL: cfg.Geocoder.BaseURL,
		apiKey:  cfg.Geocoder.ApiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}, nil
}

type geocodeResponse struct {
	Results []struct {
		Locations []struct {
			LatLng struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"latLng"`
			AdminArea5 string `json:"adminArea5"` // city
			AdminArea3 string `json:"adminArea3"` // region
			Street     string `json:"street"`
		} `json:"locations"`
	} `json:"results"`
}

func (a *mapquestAdapter) Geocode(ctx context.Context, address string) (*service.GeocodeResult, error) {
	endpoint := fmt.Sprintf("%s/address?key=%s&location=%s",
		a.baseURL, url.QueryEscape(a.apiKey), url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	if len(body.Results) == 0 || len(body.Results[0].Locations) == 0 {
		return nil, fmt.Errorf("no geocode result for address")
	}

	loc := body.Results[0].Locations[0]
	return &service.GeocodeResult{
		Lat:              loc.LatLng.Lat,
		Lng:              loc.LatLng.Lng,
		FormattedAddress: formatAddress(loc.Street, loc.AdminArea5, loc.AdminArea3),
	}, nil
}

func formatAddress(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += p
	}
	return out
}
