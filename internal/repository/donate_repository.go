package repository

import (
	"context"

	"jobhub/internal/models"

	"gorm.io/gorm"
)

type DonateRepository interface {
	Create(ctx context.Context, donate *models.Donate) error
	Save(ctx context.Context, donate *models.Donate) error
	Approved(ctx context.Context) ([]models.Donate, error)
}

type donateRepository struct {
	db *gorm.DB
}

func NewDonateRepository(db *gorm.DB) DonateRepository {
	return &donateRepository{db: db}
}

func (r *donateRepository) Create(ctx context.Context, donate *models.Donate) error {
	return r.db.WithContext(ctx).Create(donate).Error
}

func (r *donateRepository) Save(ctx context.Context, donate *models.Donate) error {
	return r.db.WithContext(ctx).Save(donate).Error
}

func (r *donateRepository) Approved(ctx context.Context) ([]models.Donate, error) {
	var donates []models.Donate
	err := r.db.WithContext(ctx).
		Where("approved = ?", true).
		Order("created_at DESC").
		Find(&donates).Error
	return donates, err
}
