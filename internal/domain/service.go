package domain

import (
	"context"
	"fmt"
	"strings"
)

// RosterStore captures the registry operations the service depends on.
type RosterStore interface {
	List(ctx context.Context) (Registry, error)
	Signup(ctx context.Context, activity, email string) error
	Unregister(ctx context.Context, activity, email string) error
}

// Service orchestrates roster operations.
type Service struct {
	store RosterStore
}

// NewService constructs a Service.
func NewService(store RosterStore) *Service {
	return &Service{store: store}
}

// ListActivities returns every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) (Registry, error) {
	return s.store.List(ctx)
}

// Signup adds a student's email to an activity roster. The email is appended
// in signup order.
func (s *Service) Signup(ctx context.Context, activity, email string) error {
	if err := validateRosterInput(activity, email); err != nil {
		return err
	}
	return s.store.Signup(ctx, activity, email)
}

// Unregister removes a student's email from an activity roster.
func (s *Service) Unregister(ctx context.Context, activity, email string) error {
	if err := validateRosterInput(activity, email); err != nil {
		return err
	}
	return s.store.Unregister(ctx, activity, email)
}

func validateRosterInput(activity, email string) error {
	if strings.TrimSpace(activity) == "" {
		return fmt.Errorf("activity name: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email: %w", ErrInvalidInput)
	}
	return nil
}
