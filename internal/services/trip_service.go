package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"tripmind/internal/models/db_models"
	"tripmind/internal/models/request_models"
	"tripmind/internal/models/response_models"
	"tripmind/internal/repositories"
	"tripmind/pkg/utils"
)

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, email string, req request_models.SaveTripRequest) (*response_models.TripResponse, error)
	GetTrip(ctx context.Context, email string, id uuid.UUID) (*response_models.TripResponse, error)
	ListTrips(ctx context.Context, email string) ([]response_models.TripSummaryResponse, error)
	DeleteTrip(ctx context.Context, email string, id uuid.UUID) error
}

type TripService struct {
	tripRepo repositories.TripRepositoryInterface
}

func NewTripService(tripRepo repositories.TripRepositoryInterface) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

func (s *TripService) SaveTrip(ctx context.Context, email string, req request_models.SaveTripRequest) (*response_models.TripResponse, error) {
	title := req.Title
	if title == "" {
		title = fmt.Sprintf("%s to %s", req.Origin, req.Destination)
	}

	trip := &db_models.Trip{
		UserEmail:    email,
		Title:        title,
		Origin:       req.Origin,
		Destination:  req.Destination,
		DurationDays: req.DurationDays,
		Budget:       req.Budget,
		GroupSize:    req.GroupSize,
		Interests:    pq.StringArray(req.Interests),
		SpecialReq:   req.SpecialReq,
		PlanJSON:     datatypes.JSON(req.Plan),
	}
	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toTripResponse(trip), nil
}

func (s *TripService) GetTrip(ctx context.Context, email string, id uuid.UUID) (*response_models.TripResponse, error) {
	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.UserEmail != email {
		return nil, utils.ErrForbidden
	}
	return toTripResponse(trip), nil
}

func (s *TripService) ListTrips(ctx context.Context, email string) ([]response_models.TripSummaryResponse, error) {
	trips, err := s.tripRepo.ListByUserEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.TripSummaryResponse, 0, len(trips))
	for _, trip := range trips {
		summaries = append(summaries, response_models.TripSummaryResponse{
			ID:           trip.ID.String(),
			Title:        trip.Title,
			Origin:       trip.Origin,
			Destination:  trip.Destination,
			DurationDays: trip.DurationDays,
			CreatedAt:    trip.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, email string, id uuid.UUID) error {
	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}
	if trip.UserEmail != email {
		return utils.ErrForbidden
	}
	if err := s.tripRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toTripResponse(trip *db_models.Trip) *response_models.TripResponse {
	return &response_models.TripResponse{
		ID:           trip.ID.String(),
		Title:        trip.Title,
		Origin:       trip.Origin,
		Destination:  trip.Destination,
		DurationDays: trip.DurationDays,
		Budget:       trip.Budget,
		GroupSize:    trip.GroupSize,
		Interests:    trip.Interests,
		SpecialReq:   trip.SpecialReq,
		Plan:         []byte(trip.PlanJSON),
		CreatedAt:    trip.CreatedAt,
	}
}
