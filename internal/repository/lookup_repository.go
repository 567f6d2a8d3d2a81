package repository

import (
	"context"

	"jobhub/internal/models"

	"gorm.io/gorm"
)

// LookupRepository serves the classification tables behind the cached list
// projections: industries, cities, benefits.
type LookupRepository interface {
	Industries(ctx context.Context) ([]models.Industry, error)
	SaveIndustry(ctx context.Context, industry *models.Industry) error
	Cities(ctx context.Context) ([]models.City, error)
	SaveCity(ctx context.Context, city *models.City) error
	SaveProvince(ctx context.Context, province *models.Province) error
	Benefits(ctx context.Context) ([]models.Benefit, error)
	SaveBenefit(ctx context.Context, benefit *models.Benefit) error
}

type lookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) LookupRepository {
	return &lookupRepository{db: db}
}

func (r *lookupRepository) Industries(ctx context.Context) ([]models.Industry, error) {
	var industries []models.Industry
	err := r.db.WithContext(ctx).
		Where("supported = ? AND is_deleted = ?", true, false).
		Order("name").
		Find(&industries).Error
	return industries, err
}

func (r *lookupRepository) SaveIndustry(ctx context.Context, industry *models.Industry) error {
	return r.db.WithContext(ctx).Save(industry).Error
}

func (r *lookupRepository) Cities(ctx context.Context) ([]models.City, error) {
	var cities []models.City
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Preload("Province").
		Order("priority DESC, name").
		Find(&cities).Error
	return cities, err
}

func (r *lookupRepository) SaveCity(ctx context.Context, city *models.City) error {
	return r.db.WithContext(ctx).Save(city).Error
}

func (r *lookupRepository) SaveProvince(ctx context.Context, province *models.Province) error {
	return r.db.WithContext(ctx).Save(province).Error
}

func (r *lookupRepository) Benefits(ctx context.Context) ([]models.Benefit, error) {
	var benefits []models.Benefit
	err := r.db.WithContext(ctx).
		Where("supported = ? AND is_deleted = ?", true, false).
		Order("priority DESC, name").
		Find(&benefits).Error
	return benefits, err
}

func (r *lookupRepository) SaveBenefit(ctx context.Context, benefit *models.Benefit) error {
	return r.db.WithContext(ctx).Save(benefit).Error
}
