package service

import (
	"testing"
	"time"

	"jobhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timelineReview(created time.Time, salary int64) models.CompanyReview {
	return models.CompanyReview{Salary: salary, CreatedAt: created, Approved: true}
}

func TestBuildSalaryTimeline_AlwaysEightBucketsAscending(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	buckets := BuildSalaryTimeline(&models.Company{}, nil, now)

	require.Len(t, buckets, 8)
	for i, b := range buckets {
		assert.Equal(t, i+1, b.ID)
		assert.Zero(t, b.Salary)
		assert.Zero(t, b.Reviews)
	}
}

func TestBuildSalaryTimeline_LegalIssueZeroesEverything(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	reviews := []models.CompanyReview{
		timelineReview(now.Add(-30*24*time.Hour), 40_000_000),
	}

	buckets := BuildSalaryTimeline(&models.Company{HasLegalIssue: true}, reviews, now)

	require.Len(t, buckets, 8)
	for _, b := range buckets {
		assert.Zero(t, b.Salary)
		assert.Zero(t, b.Reviews)
	}
}

func TestBuildSalaryTimeline_BucketsByPublishTime(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	endDate := now.Add(-100 * 24 * time.Hour) // quarter 2
	withEndDate := timelineReview(now.Add(-10*24*time.Hour), 20_000_000)
	withEndDate.EndDate = &endDate

	reviews := []models.CompanyReview{
		timelineReview(now.Add(-30*24*time.Hour), 30_000_000), // quarter 1
		timelineReview(now.Add(-60*24*time.Hour), 50_000_000), // quarter 1
		withEndDate, // end date wins over creation time
		timelineReview(now.Add(-800*24*time.Hour), 90_000_000), // outside the 720-day range
	}

	buckets := BuildSalaryTimeline(&models.Company{}, reviews, now)
	require.Len(t, buckets, 8)

	q1 := buckets[0]
	assert.Equal(t, 1, q1.ID)
	assert.Equal(t, 2, q1.Reviews)
	assert.InDelta(t, 40.0, q1.Salary, 1e-9)

	q2 := buckets[1]
	assert.Equal(t, 2, q2.ID)
	assert.Equal(t, 1, q2.Reviews)
	assert.InDelta(t, 20.0, q2.Salary, 1e-9)

	for _, b := range buckets[2:] {
		assert.Zero(t, b.Reviews)
		assert.Zero(t, b.Salary)
	}
}

func TestBuildSalaryTimeline_BucketTimestamps(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	buckets := BuildSalaryTimeline(&models.Company{}, nil, now)

	// Each bucket is stamped at the midpoint of its window.
	require.Len(t, buckets, 8)
	assert.Equal(t, "2026-07-16", buckets[0].Time) // now - 90d + 45d
	assert.Equal(t, "2024-10-24", buckets[7].Time) // now - 720d + 45d
}

func TestQuarterIndex_Boundaries(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, quarterIndex(now.Add(-time.Hour), now))
	assert.Equal(t, 0, quarterIndex(now, now))                       // windows are half-open at now
	assert.Equal(t, 1, quarterIndex(now.Add(-90*24*time.Hour), now)) // window start is inclusive
	assert.Equal(t, 2, quarterIndex(now.Add(-90*24*time.Hour).Add(-time.Second), now))
	assert.Equal(t, 8, quarterIndex(now.Add(-720*24*time.Hour), now))
	assert.Equal(t, 0, quarterIndex(now.Add(-720*24*time.Hour).Add(-time.Second), now))
}
