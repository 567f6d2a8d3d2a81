package service

import (
	"sort"
	"time"

	"jobhub/internal/models"
)

const (
	timelineQuarters   = 8
	quarterLength      = 90 * 24 * time.Hour
	quarterMidpoint    = 45 * 24 * time.Hour
	timelineDateLayout = "2006-01-02"
)

// SalaryTimelineBucket is one 90-day window of the salary trend chart.
// Quarter 1 is the most recent window, quarter 8 the oldest.
type SalaryTimelineBucket struct {
	ID      int     `json:"id"`
	Time    string  `json:"time"`
	Salary  float64 `json:"salary"`
	Reviews int     `json:"reviews"`
}

// BuildSalaryTimeline derives the 8-quarter salary trend for a company from
// its approved reviews of the trailing 720 days. Pure function of
// (company, reviews, now); recomputed on every call, never cached.
//
// Companies with a legal issue get all-zero buckets regardless of the data.
// Reviews are bucketed by publish time (end date when set, creation time
// otherwise); quarter i spans [now - i*90d, now - (i-1)*90d).
func BuildSalaryTimeline(company *models.Company, reviews []models.CompanyReview, now time.Time) []SalaryTimelineBucket {
	type bucketAgg struct {
		count     int
		salarySum float64
	}
	aggs := make(map[int]*bucketAgg, timelineQuarters)

	if !company.HasLegalIssue {
		for i := range reviews {
			q := quarterIndex(reviews[i].PublishTime(), now)
			if q == 0 {
				continue
			}
			agg := aggs[q]
			if agg == nil {
				agg = &bucketAgg{}
				aggs[q] = agg
			}
			agg.count++
			agg.salarySum += float64(reviews[i].Salary)
		}
	}

	buckets := make([]SalaryTimelineBucket, 0, timelineQuarters)
	for i := timelineQuarters; i >= 1; i-- {
		bucket := SalaryTimelineBucket{
			ID:   i,
			Time: now.Add(-time.Duration(i) * quarterLength).Add(quarterMidpoint).Format(timelineDateLayout),
		}
		if agg := aggs[i]; agg != nil {
			bucket.Reviews = agg.count
			bucket.Salary = round1(agg.salarySum / float64(agg.count) / salaryDisplayUnit)
		}
		buckets = append(buckets, bucket)
	}

	sort.Slice(buckets, func(a, b int) bool { return buckets[a].ID < buckets[b].ID })
	return buckets
}

// quarterIndex returns which trailing 90-day window the publish time falls
// in, or 0 when it is outside the charted range.
func quarterIndex(publishTime, now time.Time) int {
	for i := timelineQuarters; i >= 1; i-- {
		start := now.Add(-time.Duration(i) * quarterLength)
		end := now.Add(-time.Duration(i-1) * quarterLength)
		if !publishTime.Before(start) && publishTime.Before(end) {
			return i
		}
	}
	return 0
}
