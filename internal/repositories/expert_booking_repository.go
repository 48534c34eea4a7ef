package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmind/internal/models/db_models"
)

type ExpertBookingRepositoryInterface interface {
	Create(ctx context.Context, booking *db_models.ExpertBooking) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.ExpertBooking, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.ExpertBooking, error)
	ListByExpertID(ctx context.Context, expertID uuid.UUID) ([]db_models.ExpertBooking, error)
	ListAll(ctx context.Context) ([]db_models.ExpertBooking, error)
	Update(ctx context.Context, booking *db_models.ExpertBooking) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type expertBookingRepository struct {
	db *gorm.DB
}

func NewExpertBookingRepository(db *gorm.DB) ExpertBookingRepositoryInterface {
	return &expertBookingRepository{db: db}
}

func (r *expertBookingRepository) Create(ctx context.Context, booking *db_models.ExpertBooking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *expertBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.ExpertBooking, error) {
	var booking db_models.ExpertBooking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Expert").
		Preload("Expert.User").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *expertBookingRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.ExpertBooking, error) {
	var bookings []db_models.ExpertBooking
	err := r.db.WithContext(ctx).
		Preload("Expert").
		Preload("Expert.User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *expertBookingRepository) ListByExpertID(ctx context.Context, expertID uuid.UUID) ([]db_models.ExpertBooking, error) {
	var bookings []db_models.ExpertBooking
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("expert_id = ?", expertID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *expertBookingRepository) ListAll(ctx context.Context) ([]db_models.ExpertBooking, error) {
	var bookings []db_models.ExpertBooking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Expert").
		Preload("Expert.User").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *expertBookingRepository) Update(ctx context.Context, booking *db_models.ExpertBooking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *expertBookingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.ExpertBooking{}).Count(&count).Error
	return count, err
}

func (r *expertBookingRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.ExpertBooking{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
