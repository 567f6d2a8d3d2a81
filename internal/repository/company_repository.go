package repository

import (
	"context"

	"jobhub/internal/models"

	"gorm.io/gorm"
)

type CompanyRepository interface {
	WithTx(tx *gorm.DB) CompanyRepository
	Create(ctx context.Context, company *models.Company) error
	Save(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	GetBySlug(ctx context.Context, slug string) (*models.Company, error)
	Best(ctx context.Context, limit int) ([]models.Company, error)
	Discussed(ctx context.Context, limit int) ([]models.Company, error)
	Names(ctx context.Context) ([]models.Company, error)
	Count(ctx context.Context) (int64, error)
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

// WithTx binds the repository to an open transaction.
func (r *companyRepository) WithTx(tx *gorm.DB) CompanyRepository {
	return &companyRepository{db: tx}
}

func (r *companyRepository) Create(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *companyRepository) Save(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

func (r *companyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).
		Preload("Industry").
		Preload("City").
		First(&company, id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetBySlug resolves a public company page: deleted and unapproved companies
// are not visible.
func (r *companyRepository) GetBySlug(ctx context.Context, slug string) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).
		Where("company_slug = ? AND is_deleted = ? AND approved = ?", slug, false, true).
		Preload("Industry").
		Preload("City").
		Preload("Benefits").
		First(&company).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// Best returns the top companies by company score. Cheaters are excluded from
// the ranking.
func (r *companyRepository) Best(ctx context.Context, limit int) ([]models.Company, error) {
	var companies []models.Company
	err := r.db.WithContext(ctx).
		Where("is_deleted = ? AND approved = ? AND is_cheater = ?", false, true, false).
		Preload("City").
		Order("company_score DESC").
		Limit(limit).
		Find(&companies).Error
	return companies, err
}

// Discussed returns the companies with the most combined reviews and
// interviews.
func (r *companyRepository) Discussed(ctx context.Context, limit int) ([]models.Company, error) {
	var companies []models.Company
	err := r.db.WithContext(ctx).
		Where("is_deleted = ? AND approved = ? AND is_cheater = ?", false, true, false).
		Preload("City").
		Order("total_review + total_interview DESC").
		Limit(limit).
		Find(&companies).Error
	return companies, err
}

// Names returns the id/name/slug projection of every visible company.
func (r *companyRepository) Names(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	err := r.db.WithContext(ctx).
		Select("id", "name", "name_en", "company_slug", "logo").
		Where("is_deleted = ? AND approved = ?", false, true).
		Order("name").
		Find(&companies).Error
	return companies, err
}

func (r *companyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("is_deleted = ? AND approved = ?", false, true).
		Count(&count).Error
	return count, err
}
