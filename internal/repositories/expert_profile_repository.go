package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmind/internal/models/db_models"
)

type ExpertProfileRepositoryInterface interface {
	Create(ctx context.Context, profile *db_models.ExpertProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.ExpertProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*db_models.ExpertProfile, error)
	ListShown(ctx context.Context) ([]db_models.ExpertProfile, error)
	ListAll(ctx context.Context) ([]db_models.ExpertProfile, error)
	Update(ctx context.Context, profile *db_models.ExpertProfile) error
	CountAll(ctx context.Context) (int64, error)
}

type expertProfileRepository struct {
	db *gorm.DB
}

func NewExpertProfileRepository(db *gorm.DB) ExpertProfileRepositoryInterface {
	return &expertProfileRepository{db: db}
}

func (r *expertProfileRepository) Create(ctx context.Context, profile *db_models.ExpertProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *expertProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.ExpertProfile, error) {
	var profile db_models.ExpertProfile
	err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *expertProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*db_models.ExpertProfile, error) {
	var profile db_models.ExpertProfile
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *expertProfileRepository) ListShown(ctx context.Context) ([]db_models.ExpertProfile, error) {
	var profiles []db_models.ExpertProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("is_shown = ?", true).
		Order("created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *expertProfileRepository) ListAll(ctx context.Context) ([]db_models.ExpertProfile, error) {
	var profiles []db_models.ExpertProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *expertProfileRepository) Update(ctx context.Context, profile *db_models.ExpertProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *expertProfileRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.ExpertProfile{}).Count(&count).Error
	return count, err
}
