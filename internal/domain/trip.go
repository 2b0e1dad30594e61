// Package domain contains the core data types for the Go-Travel planner.
// This package has zero external dependencies and is imported by every other
// internal package (draft, flow, client, server).
package domain

import "time"

// TripStatus is the lifecycle status stamped on a draft at creation.
// The client never transitions it; the backend owns status changes after
// submission.
type TripStatus string

// StatusPlanning is the only status a client-held draft ever carries.
const StatusPlanning TripStatus = "Planning"

// Traveler is one entry in a draft's traveler list.
type Traveler struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// Activity is one planned activity on a trip.
type Activity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Location    string `json:"location"`
}

// TripDraft is the aggregate built up across the planning stages.
// JSON tags match the wire contract of the submission endpoint.
//
// StartDate and EndDate are nil until the user has picked both. Budget and
// TotalTravelers hold the parsed numeric values; the raw display strings
// (needed for the "zero means not entered" round-trip) live on draft.Editor,
// not here.
type TripDraft struct {
	Title              string     `json:"trip_title"`
	DestinationCountry string     `json:"destination_country"`
	DestinationCity    string     `json:"destination_city"`
	StartDate          *time.Time `json:"start_date"`
	EndDate            *time.Time `json:"end_date"`
	Budget             float64    `json:"budget"`
	Description        string     `json:"description"`
	HotelName          string     `json:"hotel_name"`
	TransportMode      string     `json:"transport_mode"`
	TotalTravelers     int        `json:"total_travelers"`
	Travelers          []Traveler `json:"travelers"`
	Activities         []Activity `json:"activities"`
	FoodPreferences    []string   `json:"food_preferences"`
	SpecialNotes       string     `json:"special_notes"`
	Images             []string   `json:"trip_images"`
	IsPublic           bool       `json:"is_public"`
	Status             TripStatus `json:"status"`
}

// NewTripDraft returns an empty draft with defaults: status Planning,
// private, all collections empty (never nil, so callers can range safely).
func NewTripDraft() TripDraft {
	return TripDraft{
		Travelers:       []Traveler{},
		Activities:      []Activity{},
		FoodPreferences: []string{},
		Images:          []string{},
		IsPublic:        false,
		Status:          StatusPlanning,
	}
}

// Clone returns a deep copy of the draft. Nested slices are copied so that
// later mutation of the receiver never changes a snapshot already handed off
// to the next stage.
func (d TripDraft) Clone() TripDraft {
	c := d
	c.Travelers = append([]Traveler{}, d.Travelers...)
	c.Activities = append([]Activity{}, d.Activities...)
	c.FoodPreferences = append([]string{}, d.FoodPreferences...)
	c.Images = append([]string{}, d.Images...)
	if d.StartDate != nil {
		sd := *d.StartDate
		c.StartDate = &sd
	}
	if d.EndDate != nil {
		ed := *d.EndDate
		c.EndDate = &ed
	}
	return c
}
