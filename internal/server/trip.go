package server

import (
	"net/http"
	"strconv"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/catalog"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/domain"
)

// CreateTrip handles POST /trips: the terminal submission of a planned trip.
// The client has already run the full gate, so the server only re-checks the
// contract essentials before accepting.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := decode(r, &payload); err != nil {
		s.fail(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	title, _ := payload["trip_title"].(string)
	if title == "" {
		s.fail(w, http.StatusUnprocessableEntity, "Trip title required")
		return
	}
	images, _ := payload["trip_images"].([]any)
	if len(images) == 0 {
		s.fail(w, http.StatusUnprocessableEntity, "Please select at least 1 image")
		return
	}

	id := s.store.SaveTrip(payload)
	s.logger.Info("trip accepted", "trip_id", id, "title", title)

	s.writeJSON(w, http.StatusCreated, struct {
		envelope
		TripID string `json:"trip_id"`
	}{
		envelope: envelope{Success: true, Status: http.StatusCreated, Message: "Trip created"},
		TripID:   id.String(),
	})
}

// ListPackages handles GET /catalog/packages with optional q, page, and
// limit query parameters.
func (s *Server) ListPackages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	matched := catalog.Search(query)
	page := catalog.Page(matched, params)

	s.writeJSON(w, http.StatusOK, struct {
		envelope
		Data       []domain.TravelPackage `json:"data"`
		Pagination struct {
			Page  int `json:"page"`
			Limit int `json:"limit"`
			Total int `json:"total"`
		} `json:"pagination"`
	}{
		envelope: envelope{Success: true, Status: http.StatusOK},
		Data:     page,
		Pagination: struct {
			Page  int `json:"page"`
			Limit int `json:"limit"`
			Total int `json:"total"`
		}{Page: params.Page, Limit: params.Limit, Total: len(matched)},
	})
}

// queryInt parses an optional integer query parameter, returning nil when it
// is absent or malformed.
func queryInt(r *http.Request, key string) *int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}
