package dto

import (
	"math"
	"time"

	"jobhub/internal/models"
)

// CreateReviewDTO for submitting a company review. Salary is given in the
// unit of the chosen salary type and normalized to monthly on create.
type CreateReviewDTO struct {
	JobTitle          string     `json:"job_title" binding:"max=100"`
	WorkLifeBalance   int        `json:"work_life_balance" binding:"required,min=1,max=5"`
	SalaryBenefit     int        `json:"salary_benefit" binding:"required,min=1,max=5"`
	Security          int        `json:"security" binding:"required,min=1,max=5"`
	Management        int        `json:"management" binding:"required,min=1,max=5"`
	Culture           int        `json:"culture" binding:"required,min=1,max=5"`
	RecommendToFriend bool       `json:"recommend_to_friend"`
	Title             string     `json:"title" binding:"required,max=100"`
	Description       string     `json:"description" binding:"max=40000"`
	Salary            float64    `json:"salary" binding:"min=0"`
	SalaryType        string     `json:"salary_type" binding:"required,oneof=YEAR MONTH DAY HOUR"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	CurrentWork       bool       `json:"current_work"`
}

// CreateInterviewDTO for submitting an interview experience.
type CreateInterviewDTO struct {
	JobTitle                 string     `json:"job_title" binding:"max=100"`
	Status                   string     `json:"status" binding:"required,oneof=ACCEPT REJECT NOANSWER WORKING"`
	ApplyMethod              string     `json:"apply_method" binding:"required,oneof=SITE EMAIL FRIEND LINKEDIN OTHER"`
	InterviewerRate          int        `json:"interviewer_rate" binding:"required,min=1,max=5"`
	TotalRate                int        `json:"total_rate" binding:"required,min=1,max=5"`
	Title                    string     `json:"title" binding:"required,max=100"`
	Description              string     `json:"description" binding:"max=40000"`
	AskedSalary              float64    `json:"asked_salary" binding:"min=0"`
	OfferedSalary            float64    `json:"offered_salary" binding:"min=0"`
	SalaryType               string     `json:"salary_type" binding:"required,oneof=YEAR MONTH DAY HOUR"`
	InterviewDate            *time.Time `json:"interview_date"`
	ResponseTimeBeforeReview string     `json:"response_time_before_review" binding:"required,oneof=1WEEK 2WEEK 1MONTH MORE"`
}

// ReviewResponse returns a stored review with the salary converted back to
// the unit the user submitted.
type ReviewResponse struct {
	ID                int64      `json:"id"`
	CompanyID         int64      `json:"company_id"`
	JobTitle          string     `json:"job_title"`
	WorkLifeBalance   int        `json:"work_life_balance"`
	SalaryBenefit     int        `json:"salary_benefit"`
	Security          int        `json:"security"`
	Management        int        `json:"management"`
	Culture           int        `json:"culture"`
	OverAllRate       float64    `json:"over_all_rate"`
	RecommendToFriend bool       `json:"recommend_to_friend"`
	Title             string     `json:"title"`
	Description       *string    `json:"description,omitempty"`
	Salary            int64      `json:"salary"`
	SalaryType        string     `json:"salary_type"`
	Approved          bool       `json:"approved"`
	HasLegalIssue     bool       `json:"has_legal_issue"`
	Created           time.Time  `json:"created"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	CurrentWork       bool       `json:"current_work"`
}

func FromModelToReviewResponse(review *models.CompanyReview) *ReviewResponse {
	return &ReviewResponse{
		ID:                review.ID,
		CompanyID:         review.CompanyID,
		JobTitle:          review.JobTitle,
		WorkLifeBalance:   review.WorkLifeBalance,
		SalaryBenefit:     review.SalaryBenefit,
		Security:          review.Security,
		Management:        review.Management,
		Culture:           review.Culture,
		OverAllRate:       review.OverAllRate,
		RecommendToFriend: review.RecommendToFriend,
		Title:             review.Title,
		Description:       review.Description,
		Salary:            int64(math.Round(models.DenormalizeSalary(float64(review.Salary), review.SalaryType))),
		SalaryType:        string(review.SalaryType),
		Approved:          review.Approved,
		HasLegalIssue:     review.HasLegalIssue,
		Created:           review.CreatedAt,
		StartDate:         review.StartDate,
		EndDate:           review.EndDate,
		CurrentWork:       review.CurrentWork,
	}
}

// InterviewResponse returns a stored interview with salaries converted back
// to the submitted unit.
type InterviewResponse struct {
	ID              int64      `json:"id"`
	CompanyID       int64      `json:"company_id"`
	JobTitle        string     `json:"job_title"`
	Status          string     `json:"status"`
	ApplyMethod     string     `json:"apply_method"`
	InterviewerRate int        `json:"interviewer_rate"`
	TotalRate       int        `json:"total_rate"`
	Title           string     `json:"title"`
	Description     *string    `json:"description,omitempty"`
	AskedSalary     int64      `json:"asked_salary"`
	OfferedSalary   int64      `json:"offered_salary"`
	SalaryType      string     `json:"salary_type"`
	Approved        bool       `json:"approved"`
	HasLegalIssue   bool       `json:"has_legal_issue"`
	Created         time.Time  `json:"created"`
	InterviewDate   *time.Time `json:"interview_date,omitempty"`
}

func FromModelToInterviewResponse(interview *models.Interview) *InterviewResponse {
	return &InterviewResponse{
		ID:              interview.ID,
		CompanyID:       interview.CompanyID,
		JobTitle:        interview.JobTitle,
		Status:          interview.Status,
		ApplyMethod:     interview.ApplyMethod,
		InterviewerRate: interview.InterviewerRate,
		TotalRate:       interview.TotalRate,
		Title:           interview.Title,
		Description:     interview.Description,
		AskedSalary:     int64(math.Round(models.DenormalizeSalary(float64(interview.AskedSalary), interview.SalaryType))),
		OfferedSalary:   int64(math.Round(models.DenormalizeSalary(float64(interview.OfferedSalary), interview.SalaryType))),
		SalaryType:      string(interview.SalaryType),
		Approved:        interview.Approved,
		HasLegalIssue:   interview.HasLegalIssue,
		Created:         interview.CreatedAt,
		InterviewDate:   interview.InterviewDate,
	}
}
