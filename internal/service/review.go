package service

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"jobhub/internal/cache"
	"jobhub/internal/dto"
	"jobhub/internal/models"
	"jobhub/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound    = errors.New("review not found")
	ErrInterviewNotFound = errors.New("interview not found")
)

// ReviewService owns the review/interview write path: every mutation runs in
// a single transaction covering the record write, the statistics recompute,
// and the company save. Cache invalidation happens after the transaction
// commits, never before.
type ReviewService struct {
	db            *gorm.DB
	companyRepo   repository.CompanyRepository
	reviewRepo    repository.ReviewRepository
	interviewRepo repository.InterviewRepository
	userRepo      repository.UserRepository
	stats         *StatisticsService
	coherence     *cache.Coherence
	logger        *slog.Logger
}

func NewReviewService(
	db *gorm.DB,
	companyRepo repository.CompanyRepository,
	reviewRepo repository.ReviewRepository,
	interviewRepo repository.InterviewRepository,
	userRepo repository.UserRepository,
	stats *StatisticsService,
	coherence *cache.Coherence,
	logger *slog.Logger,
) *ReviewService {
	return &ReviewService{
		db:            db,
		companyRepo:   companyRepo,
		reviewRepo:    reviewRepo,
		interviewRepo: interviewRepo,
		userRepo:      userRepo,
		stats:         stats,
		coherence:     coherence,
		logger:        logger,
	}
}

// CreateReview stores a new review for a company. Reviews are created
// unapproved and enter statistics only once a moderator accepts them, with
// one exception: moderator-authored reviews are approved at creation.
func (s *ReviewService) CreateReview(ctx context.Context, creatorID string, companyID int64, req *dto.CreateReviewDTO) (*models.CompanyReview, error) {
	monthly := models.NormalizeSalary(req.Salary, models.SalaryType(req.SalaryType))
	if err := models.ValidateMonthlySalary(monthly); err != nil {
		return nil, err
	}

	creator, err := s.userRepo.FindByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	review := &models.CompanyReview{
		CompanyID:         companyID,
		CreatorID:         creatorID,
		JobTitle:          req.JobTitle,
		WorkLifeBalance:   req.WorkLifeBalance,
		SalaryBenefit:     req.SalaryBenefit,
		Security:          req.Security,
		Management:        req.Management,
		Culture:           req.Culture,
		RecommendToFriend: req.RecommendToFriend,
		Title:             req.Title,
		Salary:            int64(math.Round(monthly)),
		SalaryType:        models.SalaryType(req.SalaryType),
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		CurrentWork:       req.CurrentWork,
		Approved:          creator.IsModerator(),
	}
	if req.Description != "" {
		review.Description = &req.Description
	}
	review.ComputeOverAllRate()

	err = s.db.Transaction(func(tx *gorm.DB) error {
		company, err := s.companyRepo.WithTx(tx).GetByID(ctx, companyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCompanyNotFound
			}
			return err
		}
		review.HasLegalIssue = company.HasLegalIssue
		if err := s.reviewRepo.WithTx(tx).Create(ctx, review); err != nil {
			return err
		}
		if review.Approved {
			if err := s.stats.RecomputeReviewStatistics(ctx, tx, company); err != nil {
				return err
			}
		}
		return s.refreshCreatorTotals(ctx, tx, creator)
	})
	if err != nil {
		return nil, err
	}

	s.coherence.OnMutation(ctx, cache.KindReview)
	if review.Approved {
		s.coherence.OnMutation(ctx, cache.KindCompany)
	}
	return review, nil
}

// ApproveReview accepts a pending review for public display, which pulls it
// into every company aggregate.
func (s *ReviewService) ApproveReview(ctx context.Context, reviewID int64) (*models.CompanyReview, error) {
	review, err := s.setReviewState(ctx, reviewID, func(r *models.CompanyReview) {
		r.Approved = true
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview soft-deletes a review and drops it from the aggregates.
func (s *ReviewService) DeleteReview(ctx context.Context, reviewID int64) error {
	_, err := s.setReviewState(ctx, reviewID, func(r *models.CompanyReview) {
		r.IsDeleted = true
	})
	return err
}

func (s *ReviewService) setReviewState(ctx context.Context, reviewID int64, mutate func(*models.CompanyReview)) (*models.CompanyReview, error) {
	var review *models.CompanyReview
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		review, err = s.reviewRepo.WithTx(tx).GetByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReviewNotFound
			}
			return err
		}
		mutate(review)
		if err := s.reviewRepo.WithTx(tx).Save(ctx, review); err != nil {
			return err
		}
		company, err := s.companyRepo.WithTx(tx).GetByID(ctx, review.CompanyID)
		if err != nil {
			return err
		}
		return s.stats.RecomputeReviewStatistics(ctx, tx, company)
	})
	if err != nil {
		return nil, err
	}
	s.coherence.OnMutation(ctx, cache.KindReview)
	s.coherence.OnMutation(ctx, cache.KindCompany)
	return review, nil
}

// CreateInterview stores a new interview experience, unapproved unless
// authored by a moderator.
func (s *ReviewService) CreateInterview(ctx context.Context, creatorID string, companyID int64, req *dto.CreateInterviewDTO) (*models.Interview, error) {
	salaryType := models.SalaryType(req.SalaryType)
	asked := models.NormalizeSalary(req.AskedSalary, salaryType)
	if err := models.ValidateMonthlySalary(asked); err != nil {
		return nil, err
	}
	offered := models.NormalizeSalary(req.OfferedSalary, salaryType)
	if err := models.ValidateMonthlySalary(offered); err != nil {
		return nil, err
	}

	creator, err := s.userRepo.FindByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	interview := &models.Interview{
		CompanyID:                companyID,
		CreatorID:                creatorID,
		JobTitle:                 req.JobTitle,
		Status:                   req.Status,
		ApplyMethod:              req.ApplyMethod,
		InterviewerRate:          req.InterviewerRate,
		TotalRate:                req.TotalRate,
		Title:                    req.Title,
		AskedSalary:              int64(math.Round(asked)),
		OfferedSalary:            int64(math.Round(offered)),
		SalaryType:               salaryType,
		InterviewDate:            req.InterviewDate,
		ResponseTimeBeforeReview: req.ResponseTimeBeforeReview,
		Approved:                 creator.IsModerator(),
	}
	if req.Description != "" {
		interview.Description = &req.Description
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		company, err := s.companyRepo.WithTx(tx).GetByID(ctx, companyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCompanyNotFound
			}
			return err
		}
		interview.HasLegalIssue = company.HasLegalIssue
		if err := s.interviewRepo.WithTx(tx).Create(ctx, interview); err != nil {
			return err
		}
		if interview.Approved {
			if err := s.stats.RecomputeInterviewStatistics(ctx, tx, company); err != nil {
				return err
			}
		}
		return s.refreshCreatorTotals(ctx, tx, creator)
	})
	if err != nil {
		return nil, err
	}

	s.coherence.OnMutation(ctx, cache.KindInterview)
	if interview.Approved {
		s.coherence.OnMutation(ctx, cache.KindCompany)
	}
	return interview, nil
}

// ApproveInterview accepts a pending interview for public display.
func (s *ReviewService) ApproveInterview(ctx context.Context, interviewID int64) (*models.Interview, error) {
	return s.setInterviewState(ctx, interviewID, func(i *models.Interview) {
		i.Approved = true
	})
}

// DeleteInterview soft-deletes an interview.
func (s *ReviewService) DeleteInterview(ctx context.Context, interviewID int64) error {
	_, err := s.setInterviewState(ctx, interviewID, func(i *models.Interview) {
		i.IsDeleted = true
	})
	return err
}

func (s *ReviewService) setInterviewState(ctx context.Context, interviewID int64, mutate func(*models.Interview)) (*models.Interview, error) {
	var interview *models.Interview
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		interview, err = s.interviewRepo.WithTx(tx).GetByID(ctx, interviewID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInterviewNotFound
			}
			return err
		}
		mutate(interview)
		if err := s.interviewRepo.WithTx(tx).Save(ctx, interview); err != nil {
			return err
		}
		company, err := s.companyRepo.WithTx(tx).GetByID(ctx, interview.CompanyID)
		if err != nil {
			return err
		}
		return s.stats.RecomputeInterviewStatistics(ctx, tx, company)
	})
	if err != nil {
		return nil, err
	}
	s.coherence.OnMutation(ctx, cache.KindInterview)
	s.coherence.OnMutation(ctx, cache.KindCompany)
	return interview, nil
}

// refreshCreatorTotals keeps the denormalized per-user contribution count and
// mean rating in step with the user's reviews and interviews.
func (s *ReviewService) refreshCreatorTotals(ctx context.Context, tx *gorm.DB, user *models.User) error {
	reviewCount, reviewAvg, err := s.reviewRepo.WithTx(tx).CreatorAggregate(ctx, user.ID)
	if err != nil {
		return err
	}
	interviewCount, interviewAvg, err := s.interviewRepo.WithTx(tx).CreatorAggregate(ctx, user.ID)
	if err != nil {
		return err
	}
	total := reviewCount + interviewCount
	user.TotalReview = int(total)
	if total > 0 {
		user.RateAvg = (reviewAvg*float64(reviewCount) + interviewAvg*float64(interviewCount)) / float64(total)
	} else {
		user.RateAvg = 0
	}
	return s.userRepo.WithTx(tx).Save(ctx, user)
}
