package models

import "time"

// Interview outcome states.
const (
	InterviewStatusAccepted = "ACCEPT"
	InterviewStatusRejected = "REJECT"
	InterviewStatusNoAnswer = "NOANSWER"
	InterviewStatusWorking  = "WORKING"
)

// How the candidate applied.
const (
	ApplyMethodSite     = "SITE"
	ApplyMethodEmail    = "EMAIL"
	ApplyMethodFriend   = "FRIEND"
	ApplyMethodLinkedin = "LINKEDIN"
	ApplyMethodOther    = "OTHER"
)

// Employer response-time buckets.
const (
	ResponseTime1Week  = "1WEEK"
	ResponseTime2Week  = "2WEEK"
	ResponseTime1Month = "1MONTH"
	ResponseTimeMore   = "MORE"
)

type Interview struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	CompanyID int64  `json:"company_id" gorm:"not null;index"`
	CreatorID string `json:"creator_id" gorm:"type:uuid;not null;index"`
	JobTitle  string `json:"job_title" gorm:"size:100"`

	Status      string `json:"status" gorm:"size:10"`
	ApplyMethod string `json:"apply_method" gorm:"size:10"`

	InterviewerRate int `json:"interviewer_rate" gorm:"not null;check:interviewer_rate >= 1 AND interviewer_rate <= 5"`
	TotalRate       int `json:"total_rate" gorm:"not null;check:total_rate >= 1 AND total_rate <= 5"`

	Title       string  `json:"title" gorm:"size:100;not null"`
	Description *string `json:"description,omitempty" gorm:"size:40000"`

	// Stored in the canonical monthly unit, like review salaries.
	AskedSalary   int64      `json:"asked_salary"`
	OfferedSalary int64      `json:"offered_salary"`
	SalaryType    SalaryType `json:"salary_type" gorm:"size:10"`

	IsDeleted     bool `json:"is_deleted" gorm:"default:false"`
	HasLegalIssue bool `json:"has_legal_issue" gorm:"default:false"`
	Approved      bool `json:"approved" gorm:"default:false;index"`

	InterviewDate            *time.Time `json:"interview_date,omitempty"`
	ResponseTimeBeforeReview string     `json:"response_time_before_review" gorm:"size:8"`
	ResponseTimeAfterReview  *string    `json:"response_time_after_review,omitempty" gorm:"size:8"`

	TotalView    int        `json:"total_view" gorm:"default:0"`
	Reply        *string    `json:"reply,omitempty" gorm:"size:40000"`
	ReplyCreated *time.Time `json:"reply_created,omitempty"`
	IP           *string    `json:"-" gorm:"size:20"`

	CreatedAt time.Time `json:"created" gorm:"autoCreateTime;index"`

	// Associations
	Company Company `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE;"`
	Creator User    `json:"creator,omitempty" gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE;"`
}

func (Interview) TableName() string {
	return "interviews"
}
