package repository

import (
	"context"

	"jobhub/internal/models"

	"gorm.io/gorm"
)

type InterviewRepository interface {
	WithTx(tx *gorm.DB) InterviewRepository
	Create(ctx context.Context, interview *models.Interview) error
	Save(ctx context.Context, interview *models.Interview) error
	GetByID(ctx context.Context, id int64) (*models.Interview, error)
	ApprovedCount(ctx context.Context, companyID int64) (int64, error)
	Count(ctx context.Context) (int64, error)
	CreatorAggregate(ctx context.Context, creatorID string) (count int64, avgRate float64, err error)
	SetLegalIssueByCompany(ctx context.Context, companyID int64, hasLegalIssue bool) error
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) WithTx(tx *gorm.DB) InterviewRepository {
	return &interviewRepository{db: tx}
}

func (r *interviewRepository) Create(ctx context.Context, interview *models.Interview) error {
	return r.db.WithContext(ctx).Create(interview).Error
}

func (r *interviewRepository) Save(ctx context.Context, interview *models.Interview) error {
	return r.db.WithContext(ctx).Save(interview).Error
}

func (r *interviewRepository) GetByID(ctx context.Context, id int64) (*models.Interview, error) {
	var interview models.Interview
	err := r.db.WithContext(ctx).First(&interview, id).Error
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) ApprovedCount(ctx context.Context, companyID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Interview{}).
		Where("company_id = ? AND is_deleted = ? AND approved = ?", companyID, false, true).
		Count(&count).Error
	return count, err
}

func (r *interviewRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Interview{}).
		Where("is_deleted = ? AND approved = ?", false, true).
		Count(&count).Error
	return count, err
}

// CreatorAggregate returns the count and mean total rate of a user's
// interviews, for the denormalized user totals.
func (r *interviewRepository) CreatorAggregate(ctx context.Context, creatorID string) (int64, float64, error) {
	var agg struct {
		Count   int64
		Average float64
	}
	err := r.db.WithContext(ctx).Model(&models.Interview{}).
		Select("COUNT(*) as count, COALESCE(AVG(total_rate), 0) as average").
		Where("creator_id = ?", creatorID).
		Scan(&agg).Error
	if err != nil {
		return 0, 0, err
	}
	return agg.Count, agg.Average, nil
}

func (r *interviewRepository) SetLegalIssueByCompany(ctx context.Context, companyID int64, hasLegalIssue bool) error {
	return r.db.WithContext(ctx).Model(&models.Interview{}).
		Where("company_id = ?", companyID).
		Update("has_legal_issue", hasLegalIssue).Error
}
