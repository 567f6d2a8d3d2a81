package dto

import (
	"time"

	"jobhub/internal/models"
)

// CreateCompanyDTO for user-generated company submissions. New companies are
// created unapproved.
type CreateCompanyDTO struct {
	Name        string `json:"name" binding:"required,max=100"`
	NameEn      string `json:"name_en" binding:"required,max=100"`
	Description string `json:"description" binding:"max=3000"`
	IndustryID  int64  `json:"industry_id" binding:"required"`
	CityID      int64  `json:"city_id" binding:"required"`
	Size        string `json:"size" binding:"required,oneof=VS S M L VL"`
	Site        string `json:"site" binding:"max=100"`
}

// ModerateCompanyDTO carries the moderation and trait flags a moderator may
// change on a company.
type ModerateCompanyDTO struct {
	Approved          *bool `json:"approved"`
	IsCheater         *bool `json:"is_cheater"`
	IsFamous          *bool `json:"is_famous"`
	HasPanelModerator *bool `json:"has_panel_moderator"`
}

// CompanyListItem is the read-optimized projection cached for the
// best-company and discussed-company lists.
type CompanyListItem struct {
	Name           string     `json:"name"`
	Slug           string     `json:"slug"`
	Founded        *time.Time `json:"founded,omitempty"`
	Logo           *string    `json:"logo,omitempty"`
	CityName       string     `json:"city_name"`
	CityShowName   string     `json:"city_show_name"`
	CitySlug       string     `json:"city_slug"`
	Description    *string    `json:"description,omitempty"`
	TotalReview    int        `json:"total_review"`
	TotalInterview int        `json:"total_interview"`
	SalaryMin      float64    `json:"salary_min"`
	SalaryMax      float64    `json:"salary_max"`
	OverAllRate    float64    `json:"over_all_rate"`
	Size           string     `json:"size"`
	HasLegalIssue  bool       `json:"has_legal_issue"`
	CompanyScore   float64    `json:"company_score"`
}

func FromModelToCompanyListItem(company *models.Company) CompanyListItem {
	return CompanyListItem{
		Name:           company.Name,
		Slug:           company.Slug,
		Founded:        company.Founded,
		Logo:           company.Logo,
		CityName:       company.City.Name,
		CityShowName:   company.City.ShowName,
		CitySlug:       company.City.Slug,
		Description:    company.Description,
		TotalReview:    company.TotalReview,
		TotalInterview: company.TotalInterview,
		SalaryMin:      company.SalaryMin,
		SalaryMax:      company.SalaryMax,
		OverAllRate:    company.OverAllRate,
		Size:           company.Size,
		HasLegalIssue:  company.HasLegalIssue,
		CompanyScore:   company.CompanyScore,
	}
}

// CompanyNameItem is the cached name-list projection used by search
// autocomplete.
type CompanyNameItem struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	NameEn string  `json:"name_en"`
	Slug   string  `json:"slug"`
	Logo   *string `json:"logo,omitempty"`
}

func FromModelToCompanyNameItem(company *models.Company) CompanyNameItem {
	return CompanyNameItem{
		ID:     company.ID,
		Name:   company.Name,
		NameEn: company.NameEn,
		Slug:   company.Slug,
		Logo:   company.Logo,
	}
}

// IndustryItem is the cached industry-list projection.
type IndustryItem struct {
	Name string  `json:"name"`
	Slug string  `json:"slug"`
	Icon *string `json:"icon,omitempty"`
	Logo *string `json:"logo,omitempty"`
}

// CityItem is the cached city-list projection.
type CityItem struct {
	Name     string `json:"name"`
	ShowName string `json:"show_name"`
	Slug     string `json:"slug"`
	Province string `json:"province"`
}

// BenefitItem is the cached benefit-list projection.
type BenefitItem struct {
	Name string  `json:"name"`
	Icon *string `json:"icon,omitempty"`
	Logo *string `json:"logo,omitempty"`
}

// DonateItem is the cached donate-list projection.
type DonateItem struct {
	Name     string    `json:"name"`
	Amount   int64     `json:"amount"`
	Currency string    `json:"currency"`
	Created  time.Time `json:"created"`
}

// HomeResponse bundles the cached landing-page lists.
type HomeResponse struct {
	Industries         []IndustryItem    `json:"industries"`
	BestCompanies      []CompanyListItem `json:"best_companies"`
	DiscussedCompanies []CompanyListItem `json:"discussed_companies"`
}

// TotalsResponse carries the cached site-wide counters.
type TotalsResponse struct {
	Companies  int64 `json:"companies"`
	Reviews    int64 `json:"reviews"`
	Interviews int64 `json:"interviews"`
	Users      int64 `json:"users"`
}
