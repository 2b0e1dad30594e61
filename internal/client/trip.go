package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/domain"
)

// Endpoint paths. The mobile build points these at the production API; the
// stub server implements the same surface for dev and tests.
const (
	PathTrips    = "/trips"
	PathPackages = "/catalog/packages"
)

// SubmitTripResponse is the backend's acknowledgement of a trip submission.
type SubmitTripResponse struct {
	Envelope
	TripID string `json:"trip_id"`
}

// SubmitTrip posts the final merged payload (trip fields plus device
// fingerprint) to the submission endpoint. The payload arrives as a flat map
// because the fingerprint keys sit alongside the trip keys at the top level.
//
// A response is accepted when the envelope's success flag is set or the HTTP
// status is 200/201. Anything else is returned as an error carrying a
// user-facing message.
func (c *Client) SubmitTrip(ctx context.Context, payload map[string]any) (SubmitTripResponse, error) {
	var resp SubmitTripResponse
	status, err := c.Post(ctx, PathTrips, payload, &resp)
	if err != nil {
		return SubmitTripResponse{}, fmt.Errorf("client.Client.SubmitTrip: %w", err)
	}
	if !Accepted(resp.Envelope, status) {
		msg := resp.Message
		if msg == "" {
			msg = GenericErrorMessage
		}
		return SubmitTripResponse{}, fmt.Errorf("client.Client.SubmitTrip: %w", &APIError{StatusCode: status, Message: msg})
	}
	return resp, nil
}

// Packages fetches a page of the sample travel catalog, optionally filtered
// by a free-text query over city, province, and trip type.
func (c *Client) Packages(ctx context.Context, query string, page domain.PaginationParams) ([]domain.TravelPackage, error) {
	path := fmt.Sprintf("%s?page=%d&limit=%d", PathPackages, page.Page, page.Limit)
	if query != "" {
		path += "&q=" + url.QueryEscape(query)
	}
	var resp struct {
		Envelope
		Data []domain.TravelPackage `json:"data"`
	}
	if _, err := c.Get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("client.Client.Packages: %w", err)
	}
	if resp.Data == nil {
		return []domain.TravelPackage{}, nil
	}
	return resp.Data, nil
}

// UserMessage extracts the displayable message from an error returned by this
// package: APIError messages pass through, everything else (timeouts, DNS
// failures) collapses to the generic fallback.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return GenericErrorMessage
}
