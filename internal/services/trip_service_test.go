package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmind/internal/models/db_models"
	"tripmind/internal/models/request_models"
	"tripmind/pkg/utils"
)

type fakeTripRepo struct {
	trips map[uuid.UUID]*db_models.Trip
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: map[uuid.UUID]*db_models.Trip{}}
}

func (r *fakeTripRepo) Create(ctx context.Context, trip *db_models.Trip) error {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	r.trips[trip.ID] = trip
	return nil
}

func (r *fakeTripRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	return r.trips[id], nil
}

func (r *fakeTripRepo) ListByUserEmail(ctx context.Context, email string) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	for _, trip := range r.trips {
		if trip.UserEmail == email {
			trips = append(trips, *trip)
		}
	}
	return trips, nil
}

func (r *fakeTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.trips, id)
	return nil
}

func (r *fakeTripRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(r.trips)), nil
}

func saveTripFixture(t *testing.T, service TripServiceInterface, email string) uuid.UUID {
	t.Helper()
	resp, err := service.SaveTrip(context.Background(), email, request_models.SaveTripRequest{
		Origin:       "Hanoi",
		Destination:  "Bangkok",
		DurationDays: 3,
		Budget:       "moderate",
		GroupSize:    "2",
		Interests:    []string{"temples"},
		Plan:         json.RawMessage(`{"trip_plan":{"destination":"Bangkok"}}`),
	})
	require.NoError(t, err)
	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	return id
}

func TestSaveTripDefaultsTitle(t *testing.T) {
	service := NewTripService(newFakeTripRepo())

	resp, err := service.SaveTrip(context.Background(), "alex@example.com", request_models.SaveTripRequest{
		Origin:      "Hanoi",
		Destination: "Bangkok",
		Plan:        json.RawMessage(`{}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "Hanoi to Bangkok", resp.Title)
}

func TestGetTripOwnership(t *testing.T) {
	service := NewTripService(newFakeTripRepo())
	id := saveTripFixture(t, service, "alex@example.com")

	resp, err := service.GetTrip(context.Background(), "alex@example.com", id)
	require.NoError(t, err)
	assert.Equal(t, "Bangkok", resp.Destination)

	_, err = service.GetTrip(context.Background(), "intruder@example.com", id)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestGetTripNotFound(t *testing.T) {
	service := NewTripService(newFakeTripRepo())

	_, err := service.GetTrip(context.Background(), "alex@example.com", uuid.New())
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestListTripsOnlyOwn(t *testing.T) {
	service := NewTripService(newFakeTripRepo())
	saveTripFixture(t, service, "alex@example.com")
	saveTripFixture(t, service, "someone@example.com")

	trips, err := service.ListTrips(context.Background(), "alex@example.com")
	require.NoError(t, err)
	assert.Len(t, trips, 1)
}

func TestDeleteTrip(t *testing.T) {
	service := NewTripService(newFakeTripRepo())
	id := saveTripFixture(t, service, "alex@example.com")

	require.ErrorIs(t,
		service.DeleteTrip(context.Background(), "intruder@example.com", id),
		utils.ErrForbidden)

	require.NoError(t, service.DeleteTrip(context.Background(), "alex@example.com", id))

	_, err := service.GetTrip(context.Background(), "alex@example.com", id)
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}
