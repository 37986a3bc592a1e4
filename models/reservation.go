package models

import (
	"time"
)

// Resource is a bookable thing from the static catalog: a locker bank, a bike
// or scooter rack, or a study room. The category is implied by the name.
type Resource struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Location    string `bson:"location,omitempty" json:"location,omitempty"`
}

// Reservation represents one committed booking. Exactly one shape applies:
// lockers carry LockerNumber, racks carry RackNumber (both reserved until
// released), timed resources carry Date/Time/Duration.
type Reservation struct {
	ID           string `bson:"id" json:"id"`
	ResourceID   string `bson:"resource_id" json:"resourceId"`
	ResourceName string `bson:"resource_name" json:"resourceName"`
	Date         string `bson:"date,omitempty" json:"date,omitempty"` // "2006-01-02"
	Time         string `bson:"time,omitempty" json:"time,omitempty"` // "15:04"
	Duration     int    `bson:"duration" json:"duration"`             // hours
	LockerNumber int    `bson:"locker_number,omitempty" json:"lockerNumber,omitempty"`
	RackNumber   int    `bson:"rack_number,omitempty" json:"rackNumber,omitempty"`
}

func (r Reservation) IsLocker() bool {
	return r.LockerNumber != 0
}

func (r Reservation) IsRack() bool {
	return r.RackNumber != 0
}

func (r Reservation) IsTimed() bool {
	return r.Date != "" && r.Time != ""
}

// StartsAt resolves the reservation's date and time into a local wall-clock
// instant. The second return is false for untimed reservations.
func (r Reservation) StartsAt() (time.Time, bool) {
	if !r.IsTimed() {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", r.Date+" "+r.Time, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Profile is the commuter profile captured at registration.
type Profile struct {
	FirstName string `bson:"first_name" json:"firstName"`
	LastName  string `bson:"last_name" json:"lastName"`
	Email     string `bson:"email" json:"email"`
}

// AppState is the full application state held by the reservation store:
// the profile, the reservation ledger, and the resource catalog.
type AppState struct {
	Profile      *Profile      `bson:"profile,omitempty" json:"profile,omitempty"`
	Reservations []Reservation `bson:"reservations" json:"reservations"`
	Resources    []Resource    `bson:"resources" json:"resources"`
}

// Toast is the notification payload produced when the assistant commits a
// change, for the presentation layer to display.
type Toast struct {
	Message   string    `json:"message"`
	Kind      string    `json:"kind"` // "success" or "info"
	Timestamp time.Time `json:"timestamp"`
}
