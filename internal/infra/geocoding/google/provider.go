// Package google implements place autocomplete and resolution on the Google Places
// web service.
package google

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"handoff/internal/domain/entity"
	"handoff/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	autocompletePath = "/maps/api/place/autocomplete/json"
	detailsPath      = "/maps/api/place/details/json"
	detailsFields    = "place_id,formatted_address,address_component,geometry/location"

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
	statusNotFound    = "NOT_FOUND"
	statusInvalid     = "INVALID_REQUEST"
)

// Doer is the HTTP client the provider calls through.
type Doer interface {
	Get(ctx context.Context, url string) (*http.Response, error)
}

// Options configures the provider.
type Options struct {
	BaseURL  string
	APIKey   string
	Language string
}

// Provider implements service.GeocodingProvider.
type Provider struct {
	client Doer
	opts   Options
}

// NewProvider creates a Places provider calling through client.
func NewProvider(client Doer, opts Options) *Provider {
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")

	return &Provider{client: client, opts: opts}
}

var _ service.GeocodingProvider = (*Provider)(nil)

type autocompleteResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Predictions  []struct {
		PlaceID     string `json:"place_id"`
		Description string `json:"description"`
	} `json:"predictions"`
}

type detailsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Result       struct {
		PlaceID           string `json:"place_id"`
		FormattedAddress  string `json:"formatted_address"`
		AddressComponents []struct {
			LongName  string   `json:"long_name"`
			ShortName string   `json:"short_name"`
			Types     []string `json:"types"`
		} `json:"address_components"`
		Geometry *struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
}

// Autocomplete returns place suggestions for free text.
func (p *Provider) Autocomplete(ctx context.Context, query string) ([]entity.PlaceSuggestion, error) {
	params := p.params()
	params.Set("input", query)

	var body autocompleteResponse
	if err := p.get(ctx, autocompletePath, params, &body); err != nil {
		return nil, err
	}

	switch body.Status {
	case statusOK, statusZeroResults:
	default:
		return nil, errors.Errorf("places autocomplete: %s %s", body.Status, body.ErrorMessage)
	}

	suggestions := make([]entity.PlaceSuggestion, 0, len(body.Predictions))
	for _, prediction := range body.Predictions {
		suggestions = append(suggestions, entity.PlaceSuggestion{
			PlaceID:     prediction.PlaceID,
			Description: prediction.Description,
		})
	}

	return suggestions, nil
}

// Resolve returns the components and position of a place. Unknown or malformed place
// IDs yield service.ErrPlaceNotFound.
func (p *Provider) Resolve(ctx context.Context, placeID string) (*entity.Place, error) {
	params := p.params()
	params.Set("place_id", placeID)
	params.Set("fields", detailsFields)

	var body detailsResponse
	if err := p.get(ctx, detailsPath, params, &body); err != nil {
		return nil, err
	}

	switch body.Status {
	case statusOK:
	case statusNotFound, statusZeroResults, statusInvalid:
		return nil, errors.Wrapf(service.ErrPlaceNotFound, "places details: %s", body.Status)
	default:
		return nil, errors.Errorf("places details: %s %s", body.Status, body.ErrorMessage)
	}

	result := body.Result
	place := &entity.Place{
		PlaceID:          result.PlaceID,
		FormattedAddress: result.FormattedAddress,
		Components:       make([]entity.AddressComponent, 0, len(result.AddressComponents)),
	}
	if place.PlaceID == "" {
		place.PlaceID = placeID
	}
	for _, c := range result.AddressComponents {
		place.Components = append(place.Components, entity.AddressComponent{
			LongName:  c.LongName,
			ShortName: c.ShortName,
			Types:     c.Types,
		})
	}
	if result.Geometry != nil {
		place.Location = &entity.Coordinates{
			Lat:  result.Geometry.Location.Lat,
			Long: result.Geometry.Location.Lng,
		}
	}

	return place, nil
}

func (p *Provider) params() url.Values {
	params := url.Values{}
	params.Set("key", p.opts.APIKey)
	if p.opts.Language != "" {
		params.Set("language", p.opts.Language)
	}

	return params
}

func (p *Provider) get(ctx context.Context, path string, params url.Values, out any) error {
	resp, err := p.client.Get(ctx, p.opts.BaseURL+path+"?"+params.Encode())
	if err != nil {
		return errors.Wrap(err, "places request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))

		return errors.Errorf("places request: status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode places response")
	}

	return nil
}
