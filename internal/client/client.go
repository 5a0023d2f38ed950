// Package client talks to the handoff API on behalf of the terminal client. It
// implements the ports the selection workflow runs against.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"handoff/internal/domain/entity"
	"handoff/internal/domain/service"
	"handoff/internal/infra/httpclient"
	"handoff/internal/selection"
	"handoff/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxResponseBody = 1 << 20

// Options configures a Client.
type Options struct {
	BaseURL string
	// Token is the bearer access token sent with every request.
	Token string
	HTTP  httpclient.Config
}

// Client is an API client for one authenticated user.
type Client struct {
	http    *httpclient.Client
	baseURL *url.URL
	token   string
}

var (
	_ selection.AddressBook        = (*Client)(nil)
	_ selection.MeetupPointService = (*Client)(nil)
	_ service.GeocodingProvider    = (*Client)(nil)
)

// New is the constructor for Client. Requests are never retried; failures surface to
// the caller, which offers a manual retry.
func New(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("base url %q must be absolute", opts.BaseURL)
	}

	httpCfg := opts.HTTP
	httpCfg.MaxRetries = 0

	return &Client{
		http:    httpclient.New(httpCfg),
		baseURL: base,
		token:   opts.Token,
	}, nil
}

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s (%d %s)", e.Message, e.Status, e.Code)
	}

	return fmt.Sprintf("%s: %s (%d %s)", e.Message, e.Details, e.Status, e.Code)
}

// Unwrap maps API codes onto the errors the workflow and callers check for.
func (e *APIError) Unwrap() error {
	switch e.Code {
	case "ADDRESS_NAME_EXISTS":
		return selection.ErrNameExists
	case "PLACE_NOT_FOUND":
		return service.ErrPlaceNotFound
	default:
		return nil
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

// ListAddresses returns the caller's saved addresses.
func (c *Client) ListAddresses(ctx context.Context) ([]*entity.Address, error) {
	var addresses []*entity.Address
	if err := c.call(ctx, http.MethodGet, "/v1/addresses", nil, nil, &addresses); err != nil {
		return nil, err
	}

	return addresses, nil
}

// CreateAddress saves a new address and fills it in with the stored record.
func (c *Client) CreateAddress(ctx context.Context, address *entity.Address) error {
	return c.call(ctx, http.MethodPost, "/v1/addresses", nil, toAddressInput(address), address)
}

// Autocomplete returns place suggestions.
func (c *Client) Autocomplete(ctx context.Context, query string) ([]entity.PlaceSuggestion, error) {
	var suggestions []entity.PlaceSuggestion
	if err := c.call(ctx, http.MethodGet, "/v1/places/autocomplete", url.Values{"q": {query}}, nil, &suggestions); err != nil {
		return nil, err
	}

	return suggestions, nil
}

// Resolve returns a place's components and position.
func (c *Client) Resolve(ctx context.Context, placeID string) (*entity.Place, error) {
	var resolved struct {
		Place *entity.Place `json:"place"`
	}
	if err := c.call(ctx, http.MethodGet, "/v1/places/"+url.PathEscape(placeID), nil, nil, &resolved); err != nil {
		return nil, err
	}

	return resolved.Place, nil
}

// GetMeetupPoint returns the recommended point between the caller and pair.To.
func (c *Client) GetMeetupPoint(ctx context.Context, pair selection.Pair) (*entity.MeetupPoint, error) {
	var point entity.MeetupPoint
	if err := c.call(ctx, http.MethodGet, "/v1/meetup-point", url.Values{"with": {pair.To.String()}}, nil, &point); err != nil {
		return nil, err
	}

	return &point, nil
}

// DecideDelivery records the confirmed selection for an exchange.
func (c *Client) DecideDelivery(ctx context.Context, exchangeID uuid.UUID, sel selection.Selection) (*entity.Delivery, error) {
	input := usecase.DecideDeliveryInput{Method: sel.Method.String()}
	if !sel.Delegated() {
		input.Address = toAddressInput(sel.Address)
	}

	var delivery entity.Delivery
	if err := c.call(ctx, http.MethodPut, deliveryPath(exchangeID), nil, input, &delivery); err != nil {
		return nil, err
	}

	return &delivery, nil
}

// GetDelivery reads the decision recorded for an exchange.
func (c *Client) GetDelivery(ctx context.Context, exchangeID uuid.UUID) (*entity.Delivery, error) {
	var delivery entity.Delivery
	if err := c.call(ctx, http.MethodGet, deliveryPath(exchangeID), nil, nil, &delivery); err != nil {
		return nil, err
	}

	return &delivery, nil
}

func deliveryPath(exchangeID uuid.UUID) string {
	return "/v1/exchanges/" + exchangeID.String() + "/delivery"
}

func toAddressInput(a *entity.Address) *usecase.CreateAddressInput {
	if a == nil {
		return nil
	}

	input := &usecase.CreateAddressInput{
		Name:          a.Name,
		StreetAddress: a.StreetAddress,
		Apartment:     a.Apartment,
		City:          a.City,
		Region:        a.Region,
		Country:       a.Country,
		PostalCode:    a.PostalCode,
		Message:       a.Message,
	}
	if a.Location != nil {
		lat, long := a.Location.Lat, a.Location.Long
		input.Latitude = &lat
		input.Longitude = &long
	}

	return input
}

// call sends one request. path must already be escaped.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u, err := c.endpoint(path)
	if err != nil {
		return err
	}
	u.RawQuery = query.Encode()

	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(&env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return &APIError{Status: resp.StatusCode, Code: "HTTP_ERROR", Message: http.StatusText(resp.StatusCode)}
		}

		return errors.Wrapf(err, "decode %s %s response", method, path)
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		apiErr := &APIError{Status: resp.StatusCode, Message: env.Message}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Details = env.Error.Details
		}

		return apiErr
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}

	return errors.Wrapf(json.Unmarshal(env.Data, out), "decode %s %s data", method, path)
}

// endpoint appends an escaped path to the base URL without cleaning dot segments.
func (c *Client) endpoint(escapedPath string) (*url.URL, error) {
	raw := c.baseURL.EscapedPath() + escapedPath
	p, err := url.PathUnescape(raw)
	if err != nil {
		return nil, errors.Wrap(err, "build request path")
	}

	u := *c.baseURL
	u.Path, u.RawPath = p, raw

	return &u, nil
}
