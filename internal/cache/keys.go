package cache

import (
	"fmt"
	"time"
)

// Named cache entries. List projections have no expiry: they live until a
// mutation on their source data invalidates them.
const (
	BestCompanyListKey      = "company:list:best"
	DiscussedCompanyListKey = "company:list:discussed"
	CompanyNameListKey      = "company:list:names"
	IndustryListKey         = "industry:list"
	CityListKey             = "city:list"
	BenefitListKey          = "benefit:list"
	DonateListKey           = "donate:list"
	TotalReviewKey          = "total:review"
	TotalInterviewKey       = "total:interview"
	TotalCompanyKey         = "total:company"
	TotalUserKey            = "total:user"
)

// NoExpiry marks entries that persist until explicitly invalidated.
const NoExpiry time.Duration = 0

func ForgotPasswordTokenKey(username string) string {
	return fmt.Sprintf("forgot-password:user:%s", username)
}
