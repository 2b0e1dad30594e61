package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/client"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/domain"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/fingerprint"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/flow"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/server"
)

// newTestServer builds a router over a fresh store with logging discarded.
func newTestServer(t *testing.T) (*httptest.Server, *server.Store) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := server.NewStore()
	router := server.NewRouter(server.New(store, logger), logger, server.RouterConfig{
		CORSOrigins: []string{"http://localhost:5173"},
		MaxBodySize: 1 << 20,
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, store
}

// postJSON posts v and decodes the response body into a generic map.
func postJSON(t *testing.T, url string, v any) (int, map[string]any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

// validTripPayload is the minimum the submission endpoint re-checks.
func validTripPayload() map[string]any {
	return map[string]any{
		"trip_title":  "Summer Vacation",
		"trip_images": []string{"file:///a.jpg"},
		"budget":      150000,
	}
}

// ---- health -----------------------------------------------------------------

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ---- trips ------------------------------------------------------------------

func TestCreateTrip_StoresPayload(t *testing.T) {
	srv, store := newTestServer(t)

	status, body := postJSON(t, srv.URL+client.PathTrips, validTripPayload())

	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["trip_id"])

	trips := store.Trips()
	require.Len(t, trips, 1)
	assert.Equal(t, "Summer Vacation", trips[0].Payload["trip_title"])
}

func TestCreateTrip_MissingTitle(t *testing.T) {
	srv, store := newTestServer(t)
	payload := validTripPayload()
	delete(payload, "trip_title")

	status, body := postJSON(t, srv.URL+client.PathTrips, payload)

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "Trip title required", body["message"])
	assert.Empty(t, store.Trips())
}

func TestCreateTrip_MissingImages(t *testing.T) {
	srv, _ := newTestServer(t)
	payload := validTripPayload()
	payload["trip_images"] = []string{}

	status, body := postJSON(t, srv.URL+client.PathTrips, payload)

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "Please select at least 1 image", body["message"])
}

func TestCreateTrip_MalformedBody(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+client.PathTrips, "application/json", bytes.NewReader([]byte("{nope")))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ---- catalog ----------------------------------------------------------------

func TestListPackages_FilterAndPagination(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + client.PathPackages + "?q=adventure&page=1&limit=1")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Success    bool                   `json:"success"`
		Data       []domain.TravelPackage `json:"data"`
		Pagination struct {
			Page  int `json:"page"`
			Limit int `json:"limit"`
			Total int `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Adventure", body.Data[0].TripType)
	assert.Equal(t, 2, body.Pagination.Total)
	assert.Equal(t, 1, body.Pagination.Limit)
}

func TestListPackages_DefaultsReturnWholeCatalog(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + client.PathPackages)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Data []domain.TravelPackage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Data, 8)
}

// ---- auth -------------------------------------------------------------------

func signUpBody(email string) map[string]any {
	return map[string]any{
		"first_name":       "Ali",
		"last_name":        "Raza",
		"email_address":    email,
		"phone_number":     "+923001234567",
		"password":         "secret1",
		"confirm_password": "secret1",
	}
}

func TestSignUp_CreatesAccountAndToken(t *testing.T) {
	srv, _ := newTestServer(t)

	status, body := postJSON(t, srv.URL+client.PathSignUp, signUpBody("ali@example.com"))

	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	srv, _ := newTestServer(t)
	postJSON(t, srv.URL+client.PathSignUp, signUpBody("ali@example.com"))

	status, body := postJSON(t, srv.URL+client.PathSignUp, signUpBody("ALI@example.com"))

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Email already registered", body["message"])
}

func TestSignUp_RejectsWeakPassword(t *testing.T) {
	srv, _ := newTestServer(t)
	req := signUpBody("ali@example.com")
	req["password"] = "abc"
	req["confirm_password"] = "abc"

	status, body := postJSON(t, srv.URL+client.PathSignUp, req)

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "Password must be at least 6 characters", body["message"])
}

func TestLogin(t *testing.T) {
	srv, _ := newTestServer(t)
	postJSON(t, srv.URL+client.PathSignUp, signUpBody("ali@example.com"))

	status, body := postJSON(t, srv.URL+client.PathLogin, map[string]any{
		"email_address": "ali@example.com",
		"password":      "secret1",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["token"])

	status, body = postJSON(t, srv.URL+client.PathLogin, map[string]any{
		"email_address": "ali@example.com",
		"password":      "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid email or password", body["message"])
}

func TestVerifyOTP(t *testing.T) {
	srv, _ := newTestServer(t)
	postJSON(t, srv.URL+client.PathSignUp, signUpBody("ali@example.com"))

	status, _ := postJSON(t, srv.URL+client.PathVerifyOTP, map[string]any{
		"email_address": "ali@example.com",
		"otp":           server.StubOTP,
	})
	assert.Equal(t, http.StatusOK, status)

	status, body := postJSON(t, srv.URL+client.PathVerifyOTP, map[string]any{
		"email_address": "ali@example.com",
		"otp":           "0000",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "Invalid OTP", body["message"])
}

func TestForgotAndResetPassword(t *testing.T) {
	srv, _ := newTestServer(t)
	postJSON(t, srv.URL+client.PathSignUp, signUpBody("ali@example.com"))

	status, _ := postJSON(t, srv.URL+client.PathForgotPassword, map[string]any{
		"email_address": "ali@example.com",
	})
	assert.Equal(t, http.StatusOK, status)

	status, body := postJSON(t, srv.URL+client.PathForgotPassword, map[string]any{
		"email_address": "nobody@example.com",
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No account with that email", body["message"])

	// Reset rides on PUT.
	data, _ := json.Marshal(map[string]any{
		"email_address":        "ali@example.com",
		"new_password":         "newsecret",
		"confirm_new_password": "newsecret",
	})
	req, err := http.NewRequest(http.MethodPut, srv.URL+client.PathResetPassword, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The new password works, the old one does not.
	status, _ = postJSON(t, srv.URL+client.PathLogin, map[string]any{
		"email_address": "ali@example.com",
		"password":      "newsecret",
	})
	assert.Equal(t, http.StatusOK, status)
}

// ---- end to end -------------------------------------------------------------

// TestEndToEndSubmission drives a full planning session through the real REST
// client against the stub server.
func TestEndToEndSubmission(t *testing.T) {
	srv, store := newTestServer(t)

	api := client.New(srv.URL)
	sess := flow.NewSession(api, fingerprint.Static(fingerprint.Fingerprint{
		Brand:    "test",
		DeviceID: "dev-1",
	}))

	e := sess.Editor()
	e.SetField(domain.FieldTripTitle, "Summer Vacation")
	e.SetField(domain.FieldDestinationCountry, "Pakistan")
	e.SetField(domain.FieldDestinationCity, "Hunza")
	e.SetField(domain.FieldBudget, "150000")
	e.SetField(domain.FieldHotelName, "Serena")
	e.SetField(domain.FieldTransportMode, "Car")
	e.SetField(domain.FieldTotalTravelers, "4")
	e.SetField(domain.FieldDescription, "Family trip")
	e.SetField(domain.FieldFoodPreferences, "BBQ")
	e.SetField(domain.FieldSpecialNotes, "Warm clothes")
	e.SetDates(
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
	)

	errs, err := sess.AdvanceFromPlan()
	require.NoError(t, err)
	require.Empty(t, errs)

	e.AppendImages([]string{"file:///a.jpg", "file:///b.jpg"})
	errs, err = sess.AdvanceFromImages()
	require.NoError(t, err)
	require.Empty(t, errs)

	resp, err := sess.Confirm(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.TripID)
	assert.Equal(t, flow.StageConfirmed, sess.Stage())

	trips := store.Trips()
	require.Len(t, trips, 1)
	assert.Equal(t, "Summer Vacation", trips[0].Payload["trip_title"])
	assert.Equal(t, "dev-1", trips[0].Payload["deviceId"])
	assert.Equal(t, "Planning", trips[0].Payload["status"])
}
