package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"column:password_hash;not null" json:"-"`
	Role     string `gorm:"default:'user';not null" json:"role"` // "user", "moderator"
	NickName string `json:"nick_name"`

	// Denormalized contribution totals, refreshed when the user posts a
	// review or interview.
	TotalReview int     `gorm:"default:0" json:"total_review"`
	RateAvg     float64 `gorm:"default:0" json:"rate_avg"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}

func (user *User) IsModerator() bool {
	return user.Role == "moderator"
}
