package repository

import (
	"context"
	"time"

	"jobhub/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	WithTx(tx *gorm.DB) ReviewRepository
	Create(ctx context.Context, review *models.CompanyReview) error
	Save(ctx context.Context, review *models.CompanyReview) error
	GetByID(ctx context.Context, id int64) (*models.CompanyReview, error)
	ApprovedByCompany(ctx context.Context, companyID int64) ([]models.CompanyReview, error)
	ApprovedCount(ctx context.Context, companyID int64) (int64, error)
	ApprovedSince(ctx context.Context, companyID int64, since, until time.Time) ([]models.CompanyReview, error)
	Count(ctx context.Context) (int64, error)
	CreatorAggregate(ctx context.Context, creatorID string) (count int64, avgRate float64, err error)
	SetLegalIssueByCompany(ctx context.Context, companyID int64, hasLegalIssue bool) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) WithTx(tx *gorm.DB) ReviewRepository {
	return &reviewRepository{db: tx}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.CompanyReview) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) Save(ctx context.Context, review *models.CompanyReview) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*models.CompanyReview, error) {
	var review models.CompanyReview
	err := r.db.WithContext(ctx).First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ApprovedByCompany returns the review set that feeds company statistics:
// approved and not deleted.
func (r *reviewRepository) ApprovedByCompany(ctx context.Context, companyID int64) ([]models.CompanyReview, error) {
	var reviews []models.CompanyReview
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_deleted = ? AND approved = ?", companyID, false, true).
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) ApprovedCount(ctx context.Context, companyID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CompanyReview{}).
		Where("company_id = ? AND is_deleted = ? AND approved = ?", companyID, false, true).
		Count(&count).Error
	return count, err
}

// ApprovedSince returns approved reviews created in the given window for the
// salary timeline. Deleted reviews are intentionally not filtered here; the
// timeline has always included them.
func (r *reviewRepository) ApprovedSince(ctx context.Context, companyID int64, since, until time.Time) ([]models.CompanyReview, error) {
	var reviews []models.CompanyReview
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND approved = ? AND created_at >= ? AND created_at < ?",
			companyID, true, since, until).
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CompanyReview{}).
		Where("is_deleted = ? AND approved = ?", false, true).
		Count(&count).Error
	return count, err
}

// CreatorAggregate returns the count and mean overall rate of a user's
// reviews, for the denormalized user totals.
func (r *reviewRepository) CreatorAggregate(ctx context.Context, creatorID string) (int64, float64, error) {
	var agg struct {
		Count   int64
		Average float64
	}
	err := r.db.WithContext(ctx).Model(&models.CompanyReview{}).
		Select("COUNT(*) as count, COALESCE(AVG(over_all_rate), 0) as average").
		Where("creator_id = ?", creatorID).
		Scan(&agg).Error
	if err != nil {
		return 0, 0, err
	}
	return agg.Count, agg.Average, nil
}

// SetLegalIssueByCompany propagates a company's legal-issue flag to all of its
// reviews in one bulk update.
func (r *reviewRepository) SetLegalIssueByCompany(ctx context.Context, companyID int64, hasLegalIssue bool) error {
	return r.db.WithContext(ctx).Model(&models.CompanyReview{}).
		Where("company_id = ?", companyID).
		Update("has_legal_issue", hasLegalIssue).Error
}
