// Package planner runs the interactive trip-planning session in a terminal.
// The Runner reads answers from its Input and renders prompts to its Output,
// which keeps the whole flow scriptable in tests and decoupled from the real
// stdin/stdout wiring in the CLI.
package planner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/client"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/domain"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/flow"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/picker"
)

// dateLayout is the entry format for trip dates.
const dateLayout = "2006-01-02"

// pickLimit matches the gallery's multi-select cap.
const pickLimit = 20

// prompts maps each Plan field to its input label, in screen order.
var prompts = map[string]string{
	domain.FieldTripTitle:          "Trip Title (e.g. Summer Vacation)",
	domain.FieldDestinationCountry: "Destination Country",
	domain.FieldDestinationCity:    "Destination City",
	domain.FieldBudget:             "Budget",
	domain.FieldHotelName:          "Hotel Name",
	domain.FieldTransportMode:      "Transport Mode",
	domain.FieldTotalTravelers:     "Total Travelers",
	domain.FieldDescription:        "Description",
	domain.FieldFoodPreferences:    "Food Preferences (comma separated)",
	domain.FieldSpecialNotes:       "Special Notes",
}

// Runner drives one planning session over the given IO.
type Runner struct {
	Input  io.Reader
	Output io.Writer
	Picker picker.Picker

	reader *bufio.Reader
}

// Run executes the session until it is confirmed or the input ends.
// Returns the submission response on success; io.EOF when the user ran out of
// input before confirming.
func (r *Runner) Run(ctx context.Context, sess *flow.Session) (client.SubmitTripResponse, error) {
	r.reader = bufio.NewReader(r.Input)

	for {
		switch sess.Stage() {
		case flow.StagePlan:
			if err := r.runPlan(sess); err != nil {
				return client.SubmitTripResponse{}, err
			}
		case flow.StageImages:
			if err := r.runImages(sess); err != nil {
				return client.SubmitTripResponse{}, err
			}
		case flow.StageReview:
			resp, done, err := r.runReview(ctx, sess)
			if err != nil {
				return client.SubmitTripResponse{}, err
			}
			if done {
				return resp, nil
			}
		case flow.StageConfirmed:
			return client.SubmitTripResponse{}, nil
		default:
			return client.SubmitTripResponse{}, fmt.Errorf("planner.Runner.Run: unexpected stage %q", sess.Stage())
		}
	}
}

// runPlan prompts for every field, the schedule, and the optional traveler
// and activity lists, then runs the gate. On failure it reports each error
// and re-prompts only the failing fields.
func (r *Runner) runPlan(sess *flow.Session) error {
	fmt.Fprintln(r.Output, "--- Plan Your Trip ---")

	ed := sess.Editor()
	for _, key := range domain.FieldOrder {
		if key == domain.FieldDates {
			continue
		}
		value, err := r.ask(prompts[key], ed.FieldDisplay(key))
		if err != nil {
			return err
		}
		ed.SetField(key, value)
	}

	if err := r.askDates(sess); err != nil {
		return err
	}
	if err := r.askTravelers(sess); err != nil {
		return err
	}
	if err := r.askActivities(sess); err != nil {
		return err
	}

	for {
		errs, err := sess.AdvanceFromPlan()
		if err != nil {
			return fmt.Errorf("planner.Runner.runPlan: %w", err)
		}
		if len(errs) == 0 {
			return nil
		}

		fmt.Fprintln(r.Output, "Please correct the highlighted fields:")
		for _, key := range domain.FieldOrder {
			if msg, ok := errs[key]; ok {
				fmt.Fprintf(r.Output, "  %s: %s\n", key, msg)
			}
		}
		for _, key := range domain.FieldOrder {
			if _, ok := errs[key]; !ok {
				continue
			}
			if key == domain.FieldDates {
				if err := r.askDates(sess); err != nil {
					return err
				}
				continue
			}
			value, err := r.ask(prompts[key], ed.FieldDisplay(key))
			if err != nil {
				return err
			}
			ed.SetField(key, value)
		}
	}
}

// askDates prompts for both schedule dates; both must parse before they are
// confirmed together, mirroring the bottom sheet's combined confirm.
func (r *Runner) askDates(sess *flow.Session) error {
	for {
		startRaw, err := r.ask("Start Date (YYYY-MM-DD)", "")
		if err != nil {
			return err
		}
		endRaw, err := r.ask("End Date (YYYY-MM-DD)", "")
		if err != nil {
			return err
		}
		start, errStart := time.Parse(dateLayout, strings.TrimSpace(startRaw))
		end, errEnd := time.Parse(dateLayout, strings.TrimSpace(endRaw))
		if errStart != nil || errEnd != nil {
			fmt.Fprintln(r.Output, "Please set both start and end dates")
			continue
		}
		sess.Editor().SetDates(start, end)
		return nil
	}
}

// askTravelers collects zero or more travelers, appending to whatever the
// draft already holds.
func (r *Runner) askTravelers(sess *flow.Session) error {
	ed := sess.Editor()
	for {
		more, err := r.ask("Add a traveler? (y/n)", "")
		if err != nil {
			return err
		}
		if !isYes(more) {
			return nil
		}
		ed.AddTraveler()
		i := len(ed.Draft().Travelers) - 1
		name, err := r.ask("  Traveler name", "")
		if err != nil {
			return err
		}
		ed.UpdateTravelerName(i, name)
		age, err := r.ask("  Traveler age", "")
		if err != nil {
			return err
		}
		ed.UpdateTravelerAge(i, age)
	}
}

// askActivities collects zero or more activities.
func (r *Runner) askActivities(sess *flow.Session) error {
	ed := sess.Editor()
	for {
		more, err := r.ask("Add an activity? (y/n)", "")
		if err != nil {
			return err
		}
		if !isYes(more) {
			return nil
		}
		ed.AddActivity()
		i := len(ed.Draft().Activities) - 1
		for _, attr := range []string{"title", "description", "time", "location"} {
			value, err := r.ask("  Activity "+attr, "")
			if err != nil {
				return err
			}
			ed.UpdateActivity(i, attr, value)
		}
	}
}

// runImages runs the gallery analog: pick from the configured source, then
// try to advance. Cancelling the picker only aborts that add, never the flow.
func (r *Runner) runImages(sess *flow.Session) error {
	fmt.Fprintln(r.Output, "--- Select Images ---")

	for {
		answer, err := r.ask("Open gallery (g), continue (n)", "")
		if err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "g":
			uris, err := r.Picker.Pick(pickLimit)
			if errors.Is(err, domain.ErrPickerCancelled) {
				fmt.Fprintln(r.Output, "Selection cancelled")
				continue
			}
			if err != nil {
				fmt.Fprintf(r.Output, "Gallery unavailable: %v\n", err)
				continue
			}
			sess.Editor().AppendImages(uris)
			fmt.Fprintf(r.Output, "%d image(s) selected\n", len(sess.Editor().Draft().Images))
		case "n":
			errs, err := sess.AdvanceFromImages()
			if err != nil {
				return fmt.Errorf("planner.Runner.runImages: %w", err)
			}
			if len(errs) == 0 {
				return nil
			}
			for _, msg := range errs {
				fmt.Fprintln(r.Output, msg)
			}
		}
	}
}

// runReview renders the summary and confirms. done is true once the trip was
// submitted successfully; a failed submission reports the message and leaves
// the session at Review for another attempt.
func (r *Runner) runReview(ctx context.Context, sess *flow.Session) (client.SubmitTripResponse, bool, error) {
	r.renderReview(sess.Reviewed())

	answer, err := r.ask("Confirm trip? (y = submit, e = edit details)", "")
	if err != nil {
		return client.SubmitTripResponse{}, false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "e":
		if err := sess.EditPlan(); err != nil {
			return client.SubmitTripResponse{}, false, fmt.Errorf("planner.Runner.runReview: %w", err)
		}
		return client.SubmitTripResponse{}, false, nil
	case "y":
		resp, err := sess.Confirm(ctx)
		if err != nil {
			fmt.Fprintln(r.Output, client.UserMessage(err))
			return client.SubmitTripResponse{}, false, nil
		}
		fmt.Fprintln(r.Output, "Trip confirmed!")
		return resp, true, nil
	default:
		return client.SubmitTripResponse{}, false, nil
	}
}

// renderReview prints the review card.
func (r *Runner) renderReview(d domain.TripDraft) {
	fmt.Fprintln(r.Output, "--- Review Trip ---")
	fmt.Fprintf(r.Output, "%s — PKR %.0f\n", d.Title, d.Budget)
	fmt.Fprintf(r.Output, "Country: %s  City: %s\n", d.DestinationCountry, d.DestinationCity)
	if d.StartDate != nil && d.EndDate != nil {
		fmt.Fprintf(r.Output, "Dates: %s to %s\n", d.StartDate.Format(dateLayout), d.EndDate.Format(dateLayout))
	}
	fmt.Fprintf(r.Output, "Travelers: %d  Transport: %s\n", d.TotalTravelers, d.TransportMode)
	fmt.Fprintf(r.Output, "Hotel: %s  Status: %s\n", d.HotelName, d.Status)
	fmt.Fprintf(r.Output, "Description: %s\n", d.Description)
	fmt.Fprintf(r.Output, "Food Preferences: %s\n", strings.Join(d.FoodPreferences, ", "))
	fmt.Fprintf(r.Output, "Special Notes: %s\n", d.SpecialNotes)
	for _, t := range d.Travelers {
		fmt.Fprintf(r.Output, "  %s (%d yrs)\n", t.Name, t.Age)
	}
	for _, a := range d.Activities {
		fmt.Fprintf(r.Output, "  %s — %s (%s, %s)\n", a.Title, a.Description, a.Time, a.Location)
	}
	fmt.Fprintf(r.Output, "Images: %d selected\n", len(d.Images))
}

// ask prints a prompt (showing the current value when one exists) and reads
// one line of input. An empty answer keeps the current value.
func (r *Runner) ask(label, current string) (string, error) {
	if current != "" {
		fmt.Fprintf(r.Output, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(r.Output, "%s: ", label)
	}
	line, err := r.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", io.EOF
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" && current != "" {
		return current, nil
	}
	return line, nil
}

func isYes(answer string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	return a == "y" || a == "yes"
}
