package services

import (
	"context"

	"github.com/google/uuid"

	"tripmind/internal/models/db_models"
	"tripmind/internal/models/request_models"
	"tripmind/internal/models/response_models"
	"tripmind/internal/repositories"
	"tripmind/pkg/utils"
)

type AdminServiceInterface interface {
	GetDashboard(ctx context.Context) (*response_models.DashboardResponse, error)
	ListUsers(ctx context.Context) ([]response_models.UserResponse, error)
	CreateExpert(ctx context.Context, req request_models.CreateExpertRequest) (*response_models.ExpertResponse, error)
	ListAllExperts(ctx context.Context) ([]response_models.ExpertResponse, error)
	ListAllBookings(ctx context.Context) ([]response_models.BookingResponse, error)
	SetExpertVisibility(ctx context.Context, expertID uuid.UUID, isShown bool) (*response_models.ExpertResponse, error)
}

type AdminService struct {
	userRepo    repositories.UserRepositoryInterface
	tripRepo    repositories.TripRepositoryInterface
	profileRepo repositories.ExpertProfileRepositoryInterface
	bookingRepo repositories.ExpertBookingRepositoryInterface
}

func NewAdminService(
	userRepo repositories.UserRepositoryInterface,
	tripRepo repositories.TripRepositoryInterface,
	profileRepo repositories.ExpertProfileRepositoryInterface,
	bookingRepo repositories.ExpertBookingRepositoryInterface,
) AdminServiceInterface {
	return &AdminService{
		userRepo:    userRepo,
		tripRepo:    tripRepo,
		profileRepo: profileRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *AdminService) GetDashboard(ctx context.Context) (*response_models.DashboardResponse, error) {
	users, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	trips, err := s.tripRepo.CountAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	experts, err := s.profileRepo.CountAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	bookings, err := s.bookingRepo.CountAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	pending, err := s.bookingRepo.CountByStatus(ctx, db_models.BookingPending)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.DashboardResponse{
		TotalUsers:      users,
		TotalTrips:      trips,
		TotalExperts:    experts,
		TotalBookings:   bookings,
		PendingBookings: pending,
	}, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]response_models.UserResponse, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toUserResponse(&users[i]))
	}
	return responses, nil
}

func (s *AdminService) ListAllBookings(ctx context.Context) ([]response_models.BookingResponse, error) {
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toBookingResponses(bookings), nil
}

// CreateExpert provisions the expert's user account and profile together.
// New profiles start hidden until an admin flips visibility.
func (s *AdminService) CreateExpert(ctx context.Context, req request_models.CreateExpertRequest) (*response_models.ExpertResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &db_models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         db_models.RoleExpert,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	profile := &db_models.ExpertProfile{
		UserID:          user.ID,
		Bio:             req.Bio,
		Location:        req.Location,
		Languages:       req.Languages,
		ExperienceYears: req.ExperienceYears,
		PricePerHour:    req.PricePerHour,
		CountryCode:     req.CountryCode,
		TimeZone:        req.TimeZone,
		IsShown:         false,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}

	profile.User = *user
	resp := toExpertResponse(profile, true)
	return &resp, nil
}

func (s *AdminService) ListAllExperts(ctx context.Context) ([]response_models.ExpertResponse, error) {
	profiles, err := s.profileRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	experts := make([]response_models.ExpertResponse, 0, len(profiles))
	for i := range profiles {
		experts = append(experts, toExpertResponse(&profiles[i], true))
	}
	return experts, nil
}

func (s *AdminService) SetExpertVisibility(ctx context.Context, expertID uuid.UUID, isShown bool) (*response_models.ExpertResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, expertID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrExpertNotFound
	}

	profile.IsShown = isShown
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := toExpertResponse(profile, true)
	return &resp, nil
}
