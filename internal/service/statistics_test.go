package service

import (
	"testing"

	"jobhub/internal/models"

	"github.com/stretchr/testify/assert"
)

func review(wlb, sb, sec, mgmt, cult int, salary int64, recommend bool) models.CompanyReview {
	r := models.CompanyReview{
		WorkLifeBalance:   wlb,
		SalaryBenefit:     sb,
		Security:          sec,
		Management:        mgmt,
		Culture:           cult,
		Salary:            salary,
		RecommendToFriend: recommend,
		Approved:          true,
	}
	r.ComputeOverAllRate()
	return r
}

func TestComputeReviewStats_NoReviews(t *testing.T) {
	stats := ComputeReviewStats(nil)

	assert.Equal(t, 0, stats.TotalReview)
	assert.Zero(t, stats.SalaryAvg)
	assert.Zero(t, stats.SalaryMin)
	assert.Zero(t, stats.SalaryMax)
	assert.Zero(t, stats.WorkLifeBalance)
	assert.Zero(t, stats.OverAllRate)
	assert.Zero(t, stats.RecommendToFriend)
}

func TestComputeReviewStats_SalaryAggregates(t *testing.T) {
	reviews := []models.CompanyReview{
		review(3, 3, 3, 3, 3, 24_000_000, true),
		review(3, 3, 3, 3, 3, 12_000_000, true),
		// Zero salary is the unset sentinel: counted in totals and rating
		// means but excluded from salary aggregates.
		review(3, 3, 3, 3, 3, 0, true),
	}

	stats := ComputeReviewStats(reviews)

	assert.Equal(t, 3, stats.TotalReview)
	assert.InDelta(t, 18.0, stats.SalaryAvg, 1e-9)
	assert.InDelta(t, 24.0, stats.SalaryMax, 1e-9)
	assert.InDelta(t, 12.0, stats.SalaryMin, 1e-9)
}

func TestComputeReviewStats_RatingMeans(t *testing.T) {
	reviews := []models.CompanyReview{
		review(5, 4, 5, 5, 5, 0, true),
		review(1, 1, 1, 1, 1, 0, false),
	}

	stats := ComputeReviewStats(reviews)

	assert.InDelta(t, 3.0, stats.WorkLifeBalance, 1e-9)
	assert.InDelta(t, 2.5, stats.SalaryBenefit, 1e-9)
	assert.InDelta(t, 3.0, stats.Security, 1e-9)
	assert.InDelta(t, 3.0, stats.Management, 1e-9)
	assert.InDelta(t, 3.0, stats.Culture, 1e-9)
	// Per-review overall rates are 4.8 and 1.0.
	assert.InDelta(t, 2.9, stats.OverAllRate, 1e-9)
}

// The recommendation percentage rounds the ratio before scaling, so any
// review set collapses to 0 or 100. This pins the shipped formula against an
// accidental "fix".
func TestComputeReviewStats_RecommendCollapsesToExtremes(t *testing.T) {
	twoOfThree := []models.CompanyReview{
		review(3, 3, 3, 3, 3, 0, true),
		review(3, 3, 3, 3, 3, 0, true),
		review(3, 3, 3, 3, 3, 0, false),
	}
	assert.InDelta(t, 100.0, ComputeReviewStats(twoOfThree).RecommendToFriend, 1e-9)

	oneOfThree := []models.CompanyReview{
		review(3, 3, 3, 3, 3, 0, true),
		review(3, 3, 3, 3, 3, 0, false),
		review(3, 3, 3, 3, 3, 0, false),
	}
	assert.InDelta(t, 0.0, ComputeReviewStats(oneOfThree).RecommendToFriend, 1e-9)

	// An exact half-split rounds upward.
	oneOfTwo := []models.CompanyReview{
		review(3, 3, 3, 3, 3, 0, true),
		review(3, 3, 3, 3, 3, 0, false),
	}
	assert.InDelta(t, 100.0, ComputeReviewStats(oneOfTwo).RecommendToFriend, 1e-9)
}

func TestCompanyScore_NoContributions(t *testing.T) {
	// With no reviews or interviews the score reduces to boolPoint/3.
	company := &models.Company{
		IsFamous:          true,
		HasPanelModerator: true,
		IsBigCompany:      true,
		IsCheater:         false,
	}
	// boolPoint = 2 + 1 + 1 + 1 = 5
	assert.InDelta(t, 1.7, CompanyScore(company, 0, 0, 0), 1e-9)

	cheater := &models.Company{IsCheater: true}
	assert.InDelta(t, 0.0, CompanyScore(cheater, 0, 0, 0), 1e-9)
}

func TestCompanyScore_CompositeExample(t *testing.T) {
	company := &models.Company{
		IsFamous:          false,
		HasPanelModerator: false,
		IsBigCompany:      true,
		IsCheater:         false,
	}
	reviews := []models.CompanyReview{
		{OverAllRate: 5.0, Approved: true},
		{OverAllRate: 1.0, Approved: true},
	}

	// boolPoint = 2, reviewPoint = min(20, 2)/4 = 0.5, rating mean = 3.0
	score := CompanyScore(company, 2, 0, MeanOverAllRate(reviews))
	assert.InDelta(t, 1.8, score, 1e-9)
}

func TestCompanyScore_VolumeCap(t *testing.T) {
	company := &models.Company{IsCheater: true} // boolPoint = 0
	// 30 + 10 contributions cap at 20 -> reviewPoint = 5.
	assert.InDelta(t, 1.7, CompanyScore(company, 30, 10, 0), 1e-9)
}

func TestCompanyScore_Idempotent(t *testing.T) {
	company := &models.Company{IsBigCompany: true}
	first := CompanyScore(company, 7, 3, 4.2)
	second := CompanyScore(company, 7, 3, 4.2)
	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, 0.0)
	assert.LessOrEqual(t, first, 5.0)
}

func TestApplyReviewStats(t *testing.T) {
	company := &models.Company{}
	reviews := []models.CompanyReview{
		review(4, 4, 4, 4, 4, 30_000_000, true),
	}

	ApplyReviewStats(company, ComputeReviewStats(reviews))

	assert.Equal(t, 1, company.TotalReview)
	assert.InDelta(t, 30.0, company.SalaryAvg, 1e-9)
	assert.InDelta(t, 4.0, company.OverAllRate, 1e-9)
	assert.InDelta(t, 100.0, company.RecommendToFriend, 1e-9)
}

func TestMeanOverAllRate(t *testing.T) {
	assert.Zero(t, MeanOverAllRate(nil))

	reviews := []models.CompanyReview{
		{OverAllRate: 2.0},
		{OverAllRate: 4.0},
	}
	assert.InDelta(t, 3.0, MeanOverAllRate(reviews), 1e-9)
}

func TestComputeOverAllRate(t *testing.T) {
	r := review(5, 4, 5, 5, 5, 0, true)
	assert.InDelta(t, 4.8, r.OverAllRate, 1e-9)
}
