package models

import "time"

// Company size tiers. Companies above SizeSmall count as "big" for scoring.
const (
	SizeVerySmall = "VS"
	SizeSmall     = "S"
	SizeMedium    = "M"
	SizeLarge     = "L"
	SizeVeryLarge = "VL"
)

type Company struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      *string    `json:"user_id,omitempty" gorm:"type:uuid;index"`
	Name        string     `json:"name" gorm:"not null"`
	NameEn      string     `json:"name_en"`
	Description *string    `json:"description,omitempty" gorm:"size:3000"`
	Logo        *string    `json:"logo,omitempty" gorm:"size:200"`
	Cover       *string    `json:"cover,omitempty" gorm:"size:200"`
	IndustryID  int64      `json:"industry_id" gorm:"not null;index"`
	CityID      int64      `json:"city_id" gorm:"not null;index"`
	Founded     *time.Time `json:"founded,omitempty"`
	Slug        string     `json:"slug" gorm:"column:company_slug;uniqueIndex;size:255;not null"`
	Size        string     `json:"size" gorm:"size:2"`
	Tell        string     `json:"tell,omitempty" gorm:"size:14"`
	Site        string     `json:"site,omitempty" gorm:"size:100"`
	Address     string     `json:"address,omitempty" gorm:"size:200"`

	// Moderation flags
	IsDeleted     bool `json:"is_deleted" gorm:"default:false"`
	HasLegalIssue bool `json:"has_legal_issue" gorm:"default:false"`
	Approved      bool `json:"approved" gorm:"default:false;index"`
	UserGenerated bool `json:"user_generated" gorm:"default:false"`

	// Trait flags feeding the company score
	IsCheater         bool `json:"is_cheater" gorm:"default:false"`
	IsFamous          bool `json:"is_famous" gorm:"default:false"`
	HasPanelModerator bool `json:"has_panel_moderator" gorm:"default:false"`
	IsBigCompany      bool `json:"is_big_company" gorm:"default:false"`

	// Derived statistics. Never edited by hand: recomputed from the approved,
	// non-deleted review/interview sets whenever a contributing record changes.
	WorkLifeBalance   float64 `json:"work_life_balance" gorm:"default:0"`
	SalaryBenefit     float64 `json:"salary_benefit" gorm:"default:0"`
	Security          float64 `json:"security" gorm:"default:0"`
	Management        float64 `json:"management" gorm:"default:0"`
	Culture           float64 `json:"culture" gorm:"default:0"`
	OverAllRate       float64 `json:"over_all_rate" gorm:"default:0"`
	SalaryAvg         float64 `json:"salary_avg" gorm:"default:0"`
	SalaryMax         float64 `json:"salary_max" gorm:"default:0"`
	SalaryMin         float64 `json:"salary_min" gorm:"default:0"`
	RecommendToFriend float64 `json:"recommend_to_friend" gorm:"default:0"`
	TotalReview       int     `json:"total_review" gorm:"default:0"`
	TotalInterview    int     `json:"total_interview" gorm:"default:0"`
	TotalView         int     `json:"total_view" gorm:"default:0"`
	CompanyScore      float64 `json:"company_score" gorm:"default:0;index"`

	CreatedAt time.Time `json:"created" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"-" gorm:"autoUpdateTime"`

	// Associations
	Industry Industry  `json:"industry,omitempty" gorm:"foreignKey:IndustryID;constraint:OnDelete:CASCADE;"`
	City     City      `json:"city,omitempty" gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE;"`
	Benefits []Benefit `json:"benefits,omitempty" gorm:"many2many:company_benefits;"`
}

func (Company) TableName() string {
	return "companies"
}

// DeriveBigCompany keeps IsBigCompany in sync with the size tier. Called on
// every company save.
func (c *Company) DeriveBigCompany() {
	c.IsBigCompany = c.Size != SizeVerySmall && c.Size != SizeSmall
}

type Industry struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Slug        string  `json:"slug" gorm:"column:industry_slug;uniqueIndex;size:100;not null"`
	Logo        *string `json:"logo,omitempty" gorm:"size:200"`
	Icon        *string `json:"icon,omitempty" gorm:"size:50"`
	Description string  `json:"description" gorm:"size:2000"`
	Supported   bool    `json:"supported" gorm:"default:true"`
	IsDeleted   bool    `json:"is_deleted" gorm:"default:false"`
}

func (Industry) TableName() string {
	return "industries"
}

type Province struct {
	ID        int64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string   `json:"name" gorm:"uniqueIndex;size:50;not null"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Supported bool     `json:"supported" gorm:"default:false"`
	IsDeleted bool     `json:"is_deleted" gorm:"default:false"`
}

func (Province) TableName() string {
	return "provinces"
}

type City struct {
	ID         int64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string   `json:"name" gorm:"uniqueIndex;size:50;not null"`
	ShowName   string   `json:"show_name" gorm:"size:100"`
	Slug       string   `json:"slug" gorm:"column:city_slug;uniqueIndex;size:50;not null"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Priority   int      `json:"priority" gorm:"default:0"`
	Supported  bool     `json:"supported" gorm:"default:false"`
	IsDeleted  bool     `json:"is_deleted" gorm:"default:false"`
	ProvinceID int64    `json:"province_id" gorm:"not null;index"`

	Province Province `json:"province,omitempty" gorm:"foreignKey:ProvinceID;constraint:OnDelete:CASCADE;"`
}

func (City) TableName() string {
	return "cities"
}

type Benefit struct {
	ID        int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string  `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Logo      *string `json:"logo,omitempty" gorm:"size:200"`
	Icon      *string `json:"icon,omitempty" gorm:"size:50"`
	Supported bool    `json:"supported" gorm:"default:true"`
	IsDeleted bool    `json:"is_deleted" gorm:"default:false"`
	Priority  int     `json:"priority" gorm:"default:0"`
}

func (Benefit) TableName() string {
	return "benefits"
}
