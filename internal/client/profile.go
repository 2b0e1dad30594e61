package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/validate"
)

// PathProfile is the account profile endpoint. Reads and updates address a
// profile by email; deletion targets the signed-in account via the bearer
// token.
const PathProfile = "/profile"

// ErrNotSignedIn is returned by calls that need an authenticated session when
// no token is stored.
var ErrNotSignedIn = errors.New("no signed-in account")

// Profile is the account profile as the backend returns it.
type Profile struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email_address"`
	PhoneNumber string `json:"phone_number"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
	Address     string `json:"address,omitempty"`
	BannerURL   string `json:"banner_url,omitempty"`
	ProfileURL  string `json:"profile_url,omitempty"`
}

// ProfileUpdate is the edit form. Empty fields mean "leave unchanged"; only
// filled-in fields are validated and sent.
type ProfileUpdate struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	City        string
	Country     string
	Address     string
}

// Validate checks the filled-in fields and returns the first failure message,
// or "" when every present field passes.
func (u ProfileUpdate) Validate() string {
	if msg := validate.ProfileText(u.FirstName, "Invalid first name"); msg != "" {
		return msg
	}
	if msg := validate.ProfileText(u.LastName, "Invalid last name"); msg != "" {
		return msg
	}
	if msg := validate.LocalPhone(u.PhoneNumber); msg != "" {
		return msg
	}
	if msg := validate.ProfileText(u.City, "Invalid city"); msg != "" {
		return msg
	}
	if msg := validate.ProfileText(u.Country, "Invalid country"); msg != "" {
		return msg
	}
	if msg := validate.Address(u.Address); msg != "" {
		return msg
	}
	return ""
}

// Changes returns only the fields the user filled in, keyed by wire name.
// An empty map means there is nothing to send.
func (u ProfileUpdate) Changes() map[string]string {
	changes := map[string]string{}
	put := func(key, value string) {
		if value != "" {
			changes[key] = value
		}
	}
	put("first_name", u.FirstName)
	put("last_name", u.LastName)
	put("phone_number", u.PhoneNumber)
	put("city", u.City)
	put("country", u.Country)
	put("address", u.Address)
	return changes
}

// profileResponse wraps the profile object the backend nests under "user".
type profileResponse struct {
	Envelope
	User Profile `json:"user"`
}

// GetProfile fetches the profile for email.
func (c *Client) GetProfile(ctx context.Context, email string) (Profile, error) {
	var resp profileResponse
	status, err := c.Get(ctx, PathProfile+"/"+url.PathEscape(email), &resp)
	if err != nil {
		return Profile{}, fmt.Errorf("client.Client.GetProfile: %w", err)
	}
	if !Accepted(resp.Envelope, status) {
		return Profile{}, fmt.Errorf("client.Client.GetProfile: %w", &APIError{StatusCode: status, Message: messageOr(resp.Message)})
	}
	return resp.User, nil
}

// UpdateProfile sends the filled-in fields of upd for the account identified
// by email. An update with no fields at all is rejected locally, matching the
// edit form's "Please update at least one field" rule.
func (c *Client) UpdateProfile(ctx context.Context, email string, upd ProfileUpdate) error {
	if msg := upd.Validate(); msg != "" {
		return fmt.Errorf("client.Client.UpdateProfile: %w", &APIError{StatusCode: 0, Message: msg})
	}
	changes := upd.Changes()
	if len(changes) == 0 {
		return fmt.Errorf("client.Client.UpdateProfile: %w", &APIError{StatusCode: 0, Message: "Please update at least one field"})
	}
	var resp Envelope
	status, err := c.Put(ctx, PathProfile+"/"+url.PathEscape(email), changes, &resp)
	if err != nil {
		return fmt.Errorf("client.Client.UpdateProfile: %w", err)
	}
	if !Accepted(resp, status) {
		return fmt.Errorf("client.Client.UpdateProfile: %w", &APIError{StatusCode: status, Message: messageOr(resp.Message)})
	}
	return nil
}

// DeleteAccount removes the signed-in account and clears the local session.
// Without a stored token the call fails up front rather than sending an
// unauthenticated delete.
func (c *Client) DeleteAccount(ctx context.Context) error {
	if c.token() == "" {
		return fmt.Errorf("client.Client.DeleteAccount: %w", ErrNotSignedIn)
	}
	var resp Envelope
	status, err := c.Delete(ctx, PathProfile, &resp)
	if err != nil {
		return fmt.Errorf("client.Client.DeleteAccount: %w", err)
	}
	if !Accepted(resp, status) {
		return fmt.Errorf("client.Client.DeleteAccount: %w", &APIError{StatusCode: status, Message: messageOr(resp.Message)})
	}
	if c.sessions != nil {
		if err := c.sessions.Clear(); err != nil {
			return fmt.Errorf("client.Client.DeleteAccount: clear session: %w", err)
		}
	}
	return nil
}
