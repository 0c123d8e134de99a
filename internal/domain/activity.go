// Package domain defines the business logic for the activity signup service.
package domain

import "errors"

var (
	// ErrActivityNotFound is returned when an activity name is absent from the registry.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered indicates the student is already on the activity roster.
	ErrAlreadyRegistered = errors.New("student is already signed up for this activity")
	// ErrNotRegistered indicates the student is not on the activity roster.
	ErrNotRegistered = errors.New("student is not registered for this activity")
	// ErrInvalidInput is returned when a roster operation is missing required fields.
	ErrInvalidInput = errors.New("invalid input")
)

// Activity describes one extracurricular offering and its roster.
// Participants are kept in signup order. MaxParticipants is advertised to
// clients but not enforced against the roster length.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Registry maps activity names to their records.
type Registry map[string]Activity
