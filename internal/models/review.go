package models

import "time"

type CompanyReview struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	CompanyID int64  `json:"company_id" gorm:"not null;index"`
	CreatorID string `json:"creator_id" gorm:"type:uuid;not null;index"`
	JobTitle  string `json:"job_title" gorm:"size:100"`

	// Ratings, 1-5 each. OverAllRate is fixed at creation as the mean of the
	// five sub-ratings.
	WorkLifeBalance int     `json:"work_life_balance" gorm:"not null;check:work_life_balance >= 1 AND work_life_balance <= 5"`
	SalaryBenefit   int     `json:"salary_benefit" gorm:"not null;check:salary_benefit >= 1 AND salary_benefit <= 5"`
	Security        int     `json:"security" gorm:"not null;check:security >= 1 AND security <= 5"`
	Management      int     `json:"management" gorm:"not null;check:management >= 1 AND management <= 5"`
	Culture         int     `json:"culture" gorm:"not null;check:culture >= 1 AND culture <= 5"`
	OverAllRate     float64 `json:"over_all_rate" gorm:"not null"`

	RecommendToFriend bool `json:"recommend_to_friend"`

	Title       string  `json:"title" gorm:"size:100;not null"`
	Description *string `json:"description,omitempty" gorm:"size:40000"`

	// Salary is stored in the canonical monthly unit regardless of the unit
	// the user submitted.
	Salary     int64      `json:"salary"`
	SalaryType SalaryType `json:"salary_type" gorm:"size:10"`

	IsDeleted     bool `json:"is_deleted" gorm:"default:false"`
	HasLegalIssue bool `json:"has_legal_issue" gorm:"default:false"`
	Approved      bool `json:"approved" gorm:"default:false;index"`

	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CurrentWork bool       `json:"current_work" gorm:"default:false"`

	TotalView    int        `json:"total_view" gorm:"default:0"`
	Reply        *string    `json:"reply,omitempty" gorm:"size:40000"`
	ReplyCreated *time.Time `json:"reply_created,omitempty"`
	IP           *string    `json:"-" gorm:"size:20"`

	CreatedAt time.Time `json:"created" gorm:"autoCreateTime;index"`

	// Associations
	Company Company `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE;"`
	Creator User    `json:"creator,omitempty" gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE;"`
}

func (CompanyReview) TableName() string {
	return "company_reviews"
}

// PublishTime is the timestamp the review is bucketed by in the salary
// timeline: the employment end date when set, the creation time otherwise.
func (r *CompanyReview) PublishTime() time.Time {
	if r.EndDate != nil {
		return *r.EndDate
	}
	return r.CreatedAt
}

// ComputeOverAllRate sets OverAllRate to the mean of the five sub-ratings.
func (r *CompanyReview) ComputeOverAllRate() {
	sum := r.WorkLifeBalance + r.SalaryBenefit + r.Security + r.Management + r.Culture
	r.OverAllRate = float64(sum) / 5
}
