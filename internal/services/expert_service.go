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

var allowedBookingStatuses = map[string]bool{
	db_models.BookingConfirmed: true,
	db_models.BookingDeclined:  true,
	db_models.BookingCompleted: true,
}

type ExpertServiceInterface interface {
	ListShownExperts(ctx context.Context) ([]response_models.ExpertResponse, error)
	GetExpert(ctx context.Context, id uuid.UUID) (*response_models.ExpertResponse, error)
	UpdateOwnProfile(ctx context.Context, email string, req request_models.UpdateExpertProfileRequest) (*response_models.ExpertResponse, error)
	CreateBooking(ctx context.Context, email string, req request_models.CreateExpertBookingRequest) (*response_models.BookingResponse, error)
	ListMyBookings(ctx context.Context, email string) ([]response_models.BookingResponse, error)
	ListExpertBookings(ctx context.Context, email string) ([]response_models.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, email string, bookingID uuid.UUID, status string) (*response_models.BookingResponse, error)
}

type ExpertService struct {
	userRepo    repositories.UserRepositoryInterface
	profileRepo repositories.ExpertProfileRepositoryInterface
	bookingRepo repositories.ExpertBookingRepositoryInterface
}

func NewExpertService(
	userRepo repositories.UserRepositoryInterface,
	profileRepo repositories.ExpertProfileRepositoryInterface,
	bookingRepo repositories.ExpertBookingRepositoryInterface,
) ExpertServiceInterface {
	return &ExpertService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *ExpertService) ListShownExperts(ctx context.Context) ([]response_models.ExpertResponse, error) {
	profiles, err := s.profileRepo.ListShown(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	experts := make([]response_models.ExpertResponse, 0, len(profiles))
	for i := range profiles {
		experts = append(experts, toExpertResponse(&profiles[i], false))
	}
	return experts, nil
}

func (s *ExpertService) GetExpert(ctx context.Context, id uuid.UUID) (*response_models.ExpertResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil || !profile.IsShown {
		return nil, utils.ErrExpertNotFound
	}
	resp := toExpertResponse(profile, false)
	return &resp, nil
}

func (s *ExpertService) UpdateOwnProfile(ctx context.Context, email string, req request_models.UpdateExpertProfileRequest) (*response_models.ExpertResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	profile, err := s.profileRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrExpertNotFound
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Languages != nil {
		profile.Languages = *req.Languages
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.PricePerHour != nil {
		profile.PricePerHour = *req.PricePerHour
	}
	if req.CountryCode != nil {
		profile.CountryCode = *req.CountryCode
	}
	if req.TimeZone != nil {
		profile.TimeZone = *req.TimeZone
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := toExpertResponse(profile, true)
	return &resp, nil
}

func (s *ExpertService) CreateBooking(ctx context.Context, email string, req request_models.CreateExpertBookingRequest) (*response_models.BookingResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	expertID, err := uuid.Parse(req.ExpertID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	profile, err := s.profileRepo.FindByID(ctx, expertID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil || !profile.IsShown {
		return nil, utils.ErrExpertNotFound
	}

	durationHours := req.DurationHours
	if durationHours <= 0 {
		durationHours = 4
	}

	booking := &db_models.ExpertBooking{
		UserID:            user.ID,
		ExpertID:          profile.ID,
		Status:            db_models.BookingPending,
		RequestedStart:    req.RequestedStart,
		RequestedTimeZone: req.RequestedTimeZone,
		DurationHours:     durationHours,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, utils.ErrDatabaseError
	}

	booking.User = *user
	booking.Expert = *profile
	resp := toBookingResponse(booking)
	return &resp, nil
}

func (s *ExpertService) ListMyBookings(ctx context.Context, email string) ([]response_models.BookingResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	bookings, err := s.bookingRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toBookingResponses(bookings), nil
}

// ListExpertBookings returns the bookings addressed to the calling expert.
func (s *ExpertService) ListExpertBookings(ctx context.Context, email string) ([]response_models.BookingResponse, error) {
	profile, err := s.profileByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByExpertID(ctx, profile.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toBookingResponses(bookings), nil
}

// UpdateBookingStatus lets the booked expert move a booking through the
// PENDING -> CONFIRMED/DECLINED -> COMPLETED lifecycle.
func (s *ExpertService) UpdateBookingStatus(ctx context.Context, email string, bookingID uuid.UUID, status string) (*response_models.BookingResponse, error) {
	if !allowedBookingStatuses[status] {
		return nil, utils.ErrInvalidInput
	}

	profile, err := s.profileByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}
	if booking.ExpertID != profile.ID {
		return nil, utils.ErrForbidden
	}

	booking.Status = status
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := toBookingResponse(booking)
	return &resp, nil
}

func (s *ExpertService) profileByEmail(ctx context.Context, email string) (*db_models.ExpertProfile, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	profile, err := s.profileRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrExpertNotFound
	}
	return profile, nil
}

func toExpertResponse(profile *db_models.ExpertProfile, includeEmail bool) response_models.ExpertResponse {
	resp := response_models.ExpertResponse{
		ID:              profile.ID.String(),
		Name:            profile.User.Name,
		AvatarURL:       profile.User.AvatarURL,
		Bio:             profile.Bio,
		Location:        profile.Location,
		Languages:       profile.Languages,
		ExperienceYears: profile.ExperienceYears,
		PricePerHour:    profile.PricePerHour,
		CountryCode:     profile.CountryCode,
		TimeZone:        profile.TimeZone,
		IsShown:         profile.IsShown,
	}
	if includeEmail {
		resp.Email = profile.User.Email
	}
	return resp
}

func toBookingResponse(booking *db_models.ExpertBooking) response_models.BookingResponse {
	return response_models.BookingResponse{
		ID:                booking.ID.String(),
		ExpertID:          booking.ExpertID.String(),
		ExpertName:        booking.Expert.User.Name,
		UserName:          booking.User.Name,
		Status:            booking.Status,
		RequestedStart:    booking.RequestedStart,
		RequestedTimeZone: booking.RequestedTimeZone,
		DurationHours:     booking.DurationHours,
		CreatedAt:         booking.CreatedAt,
	}
}

func toBookingResponses(bookings []db_models.ExpertBooking) []response_models.BookingResponse {
	responses := make([]response_models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, toBookingResponse(&bookings[i]))
	}
	return responses
}
