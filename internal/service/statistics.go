package service

import (
	"context"
	"math"

	"jobhub/internal/models"
	"jobhub/internal/repository"

	"gorm.io/gorm"
)

// Salary aggregates are displayed in millions of the base currency unit.
const salaryDisplayUnit = 1_000_000

// Caps the volume contribution to the company score: past 20 combined
// reviews and interviews, more volume earns nothing.
const maxReviewPointVolume = 20

// ReviewStats is the block of company aggregates derived from the approved,
// non-deleted review set.
type ReviewStats struct {
	TotalReview       int
	SalaryAvg         float64
	SalaryMax         float64
	SalaryMin         float64
	WorkLifeBalance   float64
	SalaryBenefit     float64
	Security          float64
	Management        float64
	Culture           float64
	OverAllRate       float64
	RecommendToFriend float64
}

// ComputeReviewStats aggregates a company's qualifying reviews. With no rows
// every aggregate is zero; division is always guarded by a count check.
// Reviews with a zero salary still count toward totals and rating means but
// are excluded from the salary aggregates (zero is the unset sentinel).
func ComputeReviewStats(reviews []models.CompanyReview) ReviewStats {
	var stats ReviewStats
	stats.TotalReview = len(reviews)
	if len(reviews) == 0 {
		return stats
	}

	var (
		salarySum           float64
		salaryCount         int
		salaryMax           float64
		salaryMin           float64
		wlbSum, benefitSum  int
		securitySum, mgmSum int
		cultureSum          int
		overAllSum          float64
		recommendCount      int
	)
	for _, r := range reviews {
		if r.Salary != 0 {
			salary := float64(r.Salary)
			salarySum += salary
			if salaryCount == 0 || salary > salaryMax {
				salaryMax = salary
			}
			if salaryCount == 0 || salary < salaryMin {
				salaryMin = salary
			}
			salaryCount++
		}
		wlbSum += r.WorkLifeBalance
		benefitSum += r.SalaryBenefit
		securitySum += r.Security
		mgmSum += r.Management
		cultureSum += r.Culture
		overAllSum += r.OverAllRate
		if r.RecommendToFriend {
			recommendCount++
		}
	}

	if salaryCount > 0 {
		stats.SalaryAvg = round1(salarySum / float64(salaryCount) / salaryDisplayUnit)
		stats.SalaryMax = round1(salaryMax / salaryDisplayUnit)
		stats.SalaryMin = round1(salaryMin / salaryDisplayUnit)
	}

	total := float64(len(reviews))
	stats.WorkLifeBalance = round1(float64(wlbSum) / total)
	stats.SalaryBenefit = round1(float64(benefitSum) / total)
	stats.Security = round1(float64(securitySum) / total)
	stats.Management = round1(float64(mgmSum) / total)
	stats.Culture = round1(float64(cultureSum) / total)
	stats.OverAllRate = round1(overAllSum / total)

	// The ratio is rounded before scaling, so the result is always 0 or 100.
	// That matches the formula this platform has always shipped with; do not
	// "fix" it to round(ratio*100) without a product decision. math.Round
	// breaks an exact half-split upward, so 1 of 2 recommending reports 100.
	stats.RecommendToFriend = round2(math.Round(float64(recommendCount)/total) * 100)

	return stats
}

// ApplyReviewStats writes the aggregates onto the company record. The company
// score is refreshed separately since it also depends on the interview count.
func ApplyReviewStats(company *models.Company, stats ReviewStats) {
	company.TotalReview = stats.TotalReview
	company.SalaryAvg = stats.SalaryAvg
	company.SalaryMax = stats.SalaryMax
	company.SalaryMin = stats.SalaryMin
	company.WorkLifeBalance = stats.WorkLifeBalance
	company.SalaryBenefit = stats.SalaryBenefit
	company.Security = stats.Security
	company.Management = stats.Management
	company.Culture = stats.Culture
	company.OverAllRate = stats.OverAllRate
	company.RecommendToFriend = stats.RecommendToFriend
}

// CompanyScore blends review volume, boolean reputation traits, and the mean
// user rating into a 0-5 composite, rounded to 1 decimal.
func CompanyScore(company *models.Company, reviewCount, interviewCount int64, avgOverAllRate float64) float64 {
	volume := reviewCount + interviewCount
	if volume > maxReviewPointVolume {
		volume = maxReviewPointVolume
	}
	reviewPoint := float64(volume) / 4 // 0-5

	boolPoint := 0.0
	if company.IsFamous {
		boolPoint += 2
	}
	if company.HasPanelModerator {
		boolPoint++
	}
	if company.IsBigCompany {
		boolPoint++
	}
	if !company.IsCheater {
		boolPoint++
	}

	return round1((boolPoint + reviewPoint + avgOverAllRate) / 3)
}

// MeanOverAllRate is the unrounded mean rating feeding the company score;
// zero when there are no reviews.
func MeanOverAllRate(reviews []models.CompanyReview) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.OverAllRate
	}
	return sum / float64(len(reviews))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// StatisticsService recomputes the derived company fields whenever a
// contributing record changes. All recomputes run inside the caller's
// transaction so a partial update (stats written, company not saved) is never
// observable.
type StatisticsService struct {
	companyRepo   repository.CompanyRepository
	reviewRepo    repository.ReviewRepository
	interviewRepo repository.InterviewRepository
}

func NewStatisticsService(
	companyRepo repository.CompanyRepository,
	reviewRepo repository.ReviewRepository,
	interviewRepo repository.InterviewRepository,
) *StatisticsService {
	return &StatisticsService{
		companyRepo:   companyRepo,
		reviewRepo:    reviewRepo,
		interviewRepo: interviewRepo,
	}
}

// RecomputeReviewStatistics rebuilds every review-derived aggregate plus the
// company score, and persists the company.
func (s *StatisticsService) RecomputeReviewStatistics(ctx context.Context, tx *gorm.DB, company *models.Company) error {
	reviews, err := s.reviewRepo.WithTx(tx).ApprovedByCompany(ctx, company.ID)
	if err != nil {
		return err
	}
	interviewCount, err := s.interviewRepo.WithTx(tx).ApprovedCount(ctx, company.ID)
	if err != nil {
		return err
	}

	ApplyReviewStats(company, ComputeReviewStats(reviews))
	company.CompanyScore = CompanyScore(company, int64(len(reviews)), interviewCount, MeanOverAllRate(reviews))

	return s.companyRepo.WithTx(tx).Save(ctx, company)
}

// RecomputeInterviewStatistics refreshes the interview count and the company
// score, and persists the company.
func (s *StatisticsService) RecomputeInterviewStatistics(ctx context.Context, tx *gorm.DB, company *models.Company) error {
	interviewCount, err := s.interviewRepo.WithTx(tx).ApprovedCount(ctx, company.ID)
	if err != nil {
		return err
	}
	reviews, err := s.reviewRepo.WithTx(tx).ApprovedByCompany(ctx, company.ID)
	if err != nil {
		return err
	}

	company.TotalInterview = int(interviewCount)
	company.CompanyScore = CompanyScore(company, int64(len(reviews)), interviewCount, MeanOverAllRate(reviews))

	return s.companyRepo.WithTx(tx).Save(ctx, company)
}

// RefreshCompanyScore recomputes only the composite score, for company edits
// that change the trait flags without touching the review set.
func (s *StatisticsService) RefreshCompanyScore(ctx context.Context, tx *gorm.DB, company *models.Company) error {
	reviews, err := s.reviewRepo.WithTx(tx).ApprovedByCompany(ctx, company.ID)
	if err != nil {
		return err
	}
	interviewCount, err := s.interviewRepo.WithTx(tx).ApprovedCount(ctx, company.ID)
	if err != nil {
		return err
	}
	company.CompanyScore = CompanyScore(company, int64(len(reviews)), interviewCount, MeanOverAllRate(reviews))
	return nil
}
