// Package flow drives a planning session through its stages:
//
//	Plan --gate pass--> Images --≥1 image--> Review --confirm--> Submitting --ok--> Confirmed
//	                                                 Submitting --error--> Review
//
// Each advance hands the next stage a deep-copy snapshot of the draft, so a
// stage can keep editing its own copy without retroactively changing what was
// already handed off. The final confirm merges the device fingerprint into
// the payload and posts it through the REST client.
package flow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/client"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/domain"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/draft"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/fingerprint"
)

// Stage is one step of the planning flow.
type Stage string

// The stages, in order. Submitting and Confirmed are terminal-side states:
// Submitting has exactly one request in flight, Confirmed ends the session.
const (
	StagePlan       Stage = "plan"
	StageImages     Stage = "images"
	StageReview     Stage = "review"
	StageSubmitting Stage = "submitting"
	StageConfirmed  Stage = "confirmed"
)

// ErrWrongStage is returned when a transition is requested from a stage it
// does not apply to (e.g. confirming before reaching Review).
var ErrWrongStage = errors.New("transition not valid in current stage")

// Submitter is the single remote operation the flow needs. *client.Client
// satisfies it; tests substitute a recording stub.
type Submitter interface {
	SubmitTrip(ctx context.Context, payload map[string]any) (client.SubmitTripResponse, error)
}

// Session owns one draft from creation to submission or abandonment.
// The draft never outlives the session; there is no save-as-draft.
//
// Mutations are single-threaded (UI events), but Confirm may be raced by a
// double press, so the in-flight guard is mutex-protected.
type Session struct {
	editor    *draft.Editor
	submitter Submitter
	collector fingerprint.Collector
	logger    *slog.Logger

	stage Stage

	// Handoff snapshots. Each stage renders from the snapshot produced by the
	// stage before it, never from the live editor.
	planned  domain.TripDraft
	reviewed domain.TripDraft

	mu       sync.Mutex
	inFlight bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// NewSession starts a planning session at the Plan stage with a fresh draft.
func NewSession(submitter Submitter, collector fingerprint.Collector, opts ...Option) *Session {
	s := &Session{
		editor:    draft.NewEditor(),
		submitter: submitter,
		collector: collector,
		logger:    slog.Default(),
		stage:     StagePlan,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Editor returns the session's draft editor. All user edits go through it.
func (s *Session) Editor() *draft.Editor {
	return s.editor
}

// Stage returns the current stage.
func (s *Session) Stage() Stage {
	return s.stage
}

// Planned returns the snapshot handed to the Images stage.
func (s *Session) Planned() domain.TripDraft {
	return s.planned.Clone()
}

// Reviewed returns the snapshot handed to the Review stage.
func (s *Session) Reviewed() domain.TripDraft {
	return s.reviewed.Clone()
}

// AdvanceFromPlan runs the stage gate. On failure the full error map is
// returned and the session stays at Plan. On success the draft is snapshotted
// and the session moves to Images.
func (s *Session) AdvanceFromPlan() (domain.ErrorMap, error) {
	if s.stage != StagePlan {
		return nil, fmt.Errorf("flow.Session.AdvanceFromPlan: %w", ErrWrongStage)
	}
	errs := s.editor.Validate()
	if len(errs) > 0 {
		return errs, nil
	}
	s.planned = s.editor.Draft()
	s.stage = StageImages
	s.logger.Info("stage advanced", "from", StagePlan, "to", StageImages)
	return domain.ErrorMap{}, nil
}

// AdvanceFromImages requires at least one selected image. On failure the
// error map carries the literal rejection message and the session stays at
// Images; on success the session moves to Review with a fresh snapshot.
func (s *Session) AdvanceFromImages() (domain.ErrorMap, error) {
	if s.stage != StageImages {
		return nil, fmt.Errorf("flow.Session.AdvanceFromImages: %w", ErrWrongStage)
	}
	current := s.editor.Draft()
	if errs := draft.ValidateImages(current); len(errs) > 0 {
		return errs, nil
	}
	s.reviewed = current
	s.stage = StageReview
	s.logger.Info("stage advanced", "from", StageImages, "to", StageReview)
	return domain.ErrorMap{}, nil
}

// EditPlan returns from Review to Plan so the user can adjust details. The
// draft keeps everything entered so far, including images.
func (s *Session) EditPlan() error {
	if s.stage != StageReview {
		return fmt.Errorf("flow.Session.EditPlan: %w", ErrWrongStage)
	}
	s.stage = StagePlan
	return nil
}

// Discard abandons the session: fresh draft, back to Plan. There is no
// persistence, so discarding is simply forgetting.
func (s *Session) Discard() {
	s.editor = draft.NewEditor()
	s.planned = domain.TripDraft{}
	s.reviewed = domain.TripDraft{}
	s.stage = StagePlan
	s.logger.Info("draft discarded")
}

// Confirm performs the terminal submission: collects the device fingerprint,
// merges it with the reviewed snapshot, and posts the combined payload.
//
// Exactly one submission may be in flight; a second press while awaiting the
// response returns domain.ErrSubmitInFlight without touching the network.
// On success the session is Confirmed. On failure the draft is untouched and
// the session returns to Review so the user can retry; the returned error's
// message (via client.UserMessage) is safe to surface.
//
// ctx ties the request to the caller's lifetime: cancelling it aborts the
// in-flight call.
func (s *Session) Confirm(ctx context.Context) (client.SubmitTripResponse, error) {
	s.mu.Lock()
	// The in-flight check comes first: while a submission is on the wire the
	// stage is Submitting, so a second press must report the double-press
	// sentinel, not a stage mismatch.
	if s.inFlight {
		s.mu.Unlock()
		return client.SubmitTripResponse{}, fmt.Errorf("flow.Session.Confirm: %w", domain.ErrSubmitInFlight)
	}
	if s.stage != StageReview {
		s.mu.Unlock()
		return client.SubmitTripResponse{}, fmt.Errorf("flow.Session.Confirm: %w", ErrWrongStage)
	}
	s.inFlight = true
	s.stage = StageSubmitting
	s.mu.Unlock()

	payload := s.buildPayload()

	resp, err := s.submitter.SubmitTrip(ctx, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if err != nil {
		s.stage = StageReview
		return client.SubmitTripResponse{}, fmt.Errorf("flow.Session.Confirm: %w", err)
	}
	s.stage = StageConfirmed
	s.logger.Info("trip submitted", "trip_id", resp.TripID)
	return resp, nil
}

// buildPayload flattens the reviewed snapshot to a map and merges the device
// fingerprint underneath it: fingerprint fields first, trip fields winning on
// any key collision.
//
// A failed fingerprint lookup does not corrupt or block the submission; the
// payload simply goes out without fingerprint fields, and the failure is
// logged so it is never silent.
func (s *Session) buildPayload() map[string]any {
	payload := map[string]any{}

	if s.collector != nil {
		fp, err := s.collector.Collect()
		if err != nil {
			s.logger.Warn("fingerprint lookup failed, submitting without device details", "error", err)
		} else {
			for k, v := range fp.Fields() {
				payload[k] = v
			}
		}
	}

	// Flatten the snapshot through its JSON form so the wire names and date
	// formatting stay identical to the draft's marshalled shape.
	data, err := json.Marshal(s.reviewed)
	if err != nil {
		// TripDraft contains only marshalable types; this cannot fail.
		s.logger.Error("snapshot marshal failed", "error", err)
		return payload
	}
	var tripFields map[string]any
	if err := json.Unmarshal(data, &tripFields); err != nil {
		s.logger.Error("snapshot flatten failed", "error", err)
		return payload
	}
	for k, v := range tripFields {
		payload[k] = v
	}
	return payload
}
