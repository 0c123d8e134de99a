package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/signup/internal/domain"
)

type stubStore struct {
	listCalls       int
	signupCalls     []string
	unregisterCalls []string
	registry        domain.Registry
	err             error
}

func (s *stubStore) List(ctx context.Context) (domain.Registry, error) {
	s.listCalls++
	return s.registry, s.err
}

func (s *stubStore) Signup(ctx context.Context, activity, email string) error {
	s.signupCalls = append(s.signupCalls, activity+"|"+email)
	return s.err
}

func (s *stubStore) Unregister(ctx context.Context, activity, email string) error {
	s.unregisterCalls = append(s.unregisterCalls, activity+"|"+email)
	return s.err
}

func TestSignupRejectsEmptyActivity(t *testing.T) {
	store := &stubStore{}
	service := domain.NewService(store)

	err := service.Signup(context.Background(), "  ", "student@mergington.edu")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	require.Empty(t, store.signupCalls)
}

func TestSignupRejectsEmptyEmail(t *testing.T) {
	store := &stubStore{}
	service := domain.NewService(store)

	err := service.Signup(context.Background(), "Chess Club", "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	require.Empty(t, store.signupCalls)
}

func TestSignupDelegatesToStore(t *testing.T) {
	store := &stubStore{}
	service := domain.NewService(store)

	require.NoError(t, service.Signup(context.Background(), "Chess Club", "student@mergington.edu"))
	require.Equal(t, []string{"Chess Club|student@mergington.edu"}, store.signupCalls)
}

func TestSignupPropagatesStoreError(t *testing.T) {
	store := &stubStore{err: domain.ErrAlreadyRegistered}
	service := domain.NewService(store)

	err := service.Signup(context.Background(), "Chess Club", "student@mergington.edu")
	require.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestUnregisterRejectsEmptyInput(t *testing.T) {
	store := &stubStore{}
	service := domain.NewService(store)

	require.ErrorIs(t, service.Unregister(context.Background(), "", "student@mergington.edu"), domain.ErrInvalidInput)
	require.ErrorIs(t, service.Unregister(context.Background(), "Chess Club", "   "), domain.ErrInvalidInput)
	require.Empty(t, store.unregisterCalls)
}

func TestUnregisterDelegatesToStore(t *testing.T) {
	store := &stubStore{}
	service := domain.NewService(store)

	require.NoError(t, service.Unregister(context.Background(), "Chess Club", "student@mergington.edu"))
	require.Equal(t, []string{"Chess Club|student@mergington.edu"}, store.unregisterCalls)
}

func TestListActivitiesDelegatesToStore(t *testing.T) {
	store := &stubStore{registry: domain.Registry{"Chess Club": {MaxParticipants: 12}}}
	service := domain.NewService(store)

	registry, err := service.ListActivities(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, store.listCalls)
	require.Contains(t, registry, "Chess Club")
}
