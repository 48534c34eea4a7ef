package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"tripmind/internal/models/db_models"
	"tripmind/internal/models/request_models"
	"tripmind/internal/models/response_models"
	"tripmind/internal/repositories"
	"tripmind/pkg/utils"
)

type ItineraryServiceInterface interface {
	SaveItinerary(ctx context.Context, email string, req request_models.SaveItineraryRequest) (*response_models.ItineraryResponse, error)
	GetItinerary(ctx context.Context, email string, id uuid.UUID) (*response_models.ItineraryResponse, error)
	ListItineraries(ctx context.Context, email string) ([]response_models.ItineraryResponse, error)
	DeleteItinerary(ctx context.Context, email string, id uuid.UUID) error
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepositoryInterface
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepositoryInterface) ItineraryServiceInterface {
	return &ItineraryService{itineraryRepo: itineraryRepo}
}

func (s *ItineraryService) SaveItinerary(ctx context.Context, email string, req request_models.SaveItineraryRequest) (*response_models.ItineraryResponse, error) {
	itinerary := &db_models.Itinerary{
		UserEmail:     email,
		TripID:        req.TripID,
		Title:         req.Title,
		ItineraryJSON: datatypes.JSON(req.ItineraryData),
	}
	if err := s.itineraryRepo.Create(ctx, itinerary); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toItineraryResponse(itinerary, true), nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, email string, id uuid.UUID) (*response_models.ItineraryResponse, error) {
	itinerary, err := s.itineraryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	if itinerary.UserEmail != email {
		return nil, utils.ErrForbidden
	}
	return toItineraryResponse(itinerary, true), nil
}

func (s *ItineraryService) ListItineraries(ctx context.Context, email string) ([]response_models.ItineraryResponse, error) {
	itineraries, err := s.itineraryRepo.ListByUserEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ItineraryResponse, 0, len(itineraries))
	for i := range itineraries {
		responses = append(responses, *toItineraryResponse(&itineraries[i], false))
	}
	return responses, nil
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, email string, id uuid.UUID) error {
	itinerary, err := s.itineraryRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if itinerary == nil {
		return utils.ErrItineraryNotFound
	}
	if itinerary.UserEmail != email {
		return utils.ErrForbidden
	}
	if err := s.itineraryRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toItineraryResponse(itinerary *db_models.Itinerary, includeData bool) *response_models.ItineraryResponse {
	resp := &response_models.ItineraryResponse{
		ID:        itinerary.ID.String(),
		Title:     itinerary.Title,
		CreatedAt: itinerary.CreatedAt,
	}
	if itinerary.TripID != nil {
		tripID := itinerary.TripID.String()
		resp.TripID = &tripID
	}
	if includeData {
		resp.ItineraryData = []byte(itinerary.ItineraryJSON)
	}
	return resp
}
