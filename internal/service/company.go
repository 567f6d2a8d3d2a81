package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"jobhub/internal/cache"
	"jobhub/internal/dto"
	"jobhub/internal/models"
	"jobhub/internal/repository"

	"gorm.io/gorm"
)

var ErrCompanyNotFound = errors.New("company not found")

const (
	homeListSize = 10
	// The timeline charts the trailing 8 quarters of 90 days.
	timelineWindow = 720 * 24 * time.Hour
)

type CompanyService struct {
	db            *gorm.DB
	companyRepo   repository.CompanyRepository
	reviewRepo    repository.ReviewRepository
	interviewRepo repository.InterviewRepository
	lookupRepo    repository.LookupRepository
	userRepo      repository.UserRepository
	donateRepo    repository.DonateRepository
	stats         *StatisticsService
	store         cache.Store
	coherence     *cache.Coherence
	logger        *slog.Logger
}

func NewCompanyService(
	db *gorm.DB,
	companyRepo repository.CompanyRepository,
	reviewRepo repository.ReviewRepository,
	interviewRepo repository.InterviewRepository,
	lookupRepo repository.LookupRepository,
	userRepo repository.UserRepository,
	donateRepo repository.DonateRepository,
	stats *StatisticsService,
	store cache.Store,
	coherence *cache.Coherence,
	logger *slog.Logger,
) *CompanyService {
	return &CompanyService{
		db:            db,
		companyRepo:   companyRepo,
		reviewRepo:    reviewRepo,
		interviewRepo: interviewRepo,
		lookupRepo:    lookupRepo,
		userRepo:      userRepo,
		donateRepo:    donateRepo,
		stats:         stats,
		store:         store,
		coherence:     coherence,
		logger:        logger,
	}
}

// GetBySlug returns a publicly visible company.
func (s *CompanyService) GetBySlug(ctx context.Context, slug string) (*models.Company, error) {
	company, err := s.companyRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

// Create registers a user-generated company. It stays unapproved until a
// moderator accepts it.
func (s *CompanyService) Create(ctx context.Context, userID string, req *dto.CreateCompanyDTO) (*models.Company, error) {
	company := &models.Company{
		UserID:        &userID,
		Name:          req.Name,
		NameEn:        req.NameEn,
		IndustryID:    req.IndustryID,
		CityID:        req.CityID,
		Size:          req.Size,
		Site:          req.Site,
		Slug:          Slugify(req.NameEn),
		UserGenerated: true,
	}
	if req.Description != "" {
		company.Description = &req.Description
	}
	company.DeriveBigCompany()
	// No contributions yet, so the score starts from the trait flags alone.
	company.CompanyScore = CompanyScore(company, 0, 0, 0)

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	s.coherence.OnMutation(ctx, cache.KindCompany)
	return company, nil
}

// Moderate applies moderation and trait flags to a company, refreshes the
// company score (the trait flags feed it), and persists everything in one
// transaction. Cache invalidation runs after commit.
func (s *CompanyService) Moderate(ctx context.Context, companyID int64, req *dto.ModerateCompanyDTO) (*models.Company, error) {
	var company *models.Company
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		company, err = s.companyRepo.WithTx(tx).GetByID(ctx, companyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCompanyNotFound
			}
			return err
		}
		if req.Approved != nil {
			company.Approved = *req.Approved
		}
		if req.IsCheater != nil {
			company.IsCheater = *req.IsCheater
		}
		if req.IsFamous != nil {
			company.IsFamous = *req.IsFamous
		}
		if req.HasPanelModerator != nil {
			company.HasPanelModerator = *req.HasPanelModerator
		}
		company.DeriveBigCompany()
		if err := s.stats.RefreshCompanyScore(ctx, tx, company); err != nil {
			return err
		}
		return s.companyRepo.WithTx(tx).Save(ctx, company)
	})
	if err != nil {
		return nil, err
	}
	s.coherence.OnMutation(ctx, cache.KindCompany)
	return company, nil
}

// PropagateLegalIssue sets a company's legal-issue flag and mirrors it onto
// every review and interview of the company in one bulk update per table.
func (s *CompanyService) PropagateLegalIssue(ctx context.Context, companyID int64, hasLegalIssue bool) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		company, err := s.companyRepo.WithTx(tx).GetByID(ctx, companyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCompanyNotFound
			}
			return err
		}
		company.HasLegalIssue = hasLegalIssue
		if err := s.companyRepo.WithTx(tx).Save(ctx, company); err != nil {
			return err
		}
		if err := s.reviewRepo.WithTx(tx).SetLegalIssueByCompany(ctx, companyID, hasLegalIssue); err != nil {
			return err
		}
		return s.interviewRepo.WithTx(tx).SetLegalIssueByCompany(ctx, companyID, hasLegalIssue)
	})
	if err != nil {
		return err
	}
	s.coherence.OnMutation(ctx, cache.KindCompany)
	s.coherence.OnMutation(ctx, cache.KindReview)
	s.coherence.OnMutation(ctx, cache.KindInterview)
	return nil
}

// SalaryTimeline builds the salary trend chart for a company page. Not
// cached: recomputed on every call.
func (s *CompanyService) SalaryTimeline(ctx context.Context, slug string, now time.Time) ([]SalaryTimelineBucket, error) {
	company, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	var reviews []models.CompanyReview
	if !company.HasLegalIssue {
		reviews, err = s.reviewRepo.ApprovedSince(ctx, company.ID, now.Add(-timelineWindow), now)
		if err != nil {
			return nil, err
		}
	}
	return BuildSalaryTimeline(company, reviews, now), nil
}

// Home serves the landing-page lists, each a read-through cache entry with no
// expiry: regenerated on miss, dropped by the coherence table on mutation.
func (s *CompanyService) Home(ctx context.Context) (*dto.HomeResponse, error) {
	industries, err := s.Industries(ctx)
	if err != nil {
		return nil, err
	}

	var best []dto.CompanyListItem
	if err := s.store.Get(ctx, cache.BestCompanyListKey, &best); err != nil {
		companies, err := s.companyRepo.Best(ctx, homeListSize)
		if err != nil {
			return nil, err
		}
		best = make([]dto.CompanyListItem, 0, len(companies))
		for i := range companies {
			best = append(best, dto.FromModelToCompanyListItem(&companies[i]))
		}
		s.cacheSet(ctx, cache.BestCompanyListKey, best)
	}

	var discussed []dto.CompanyListItem
	if err := s.store.Get(ctx, cache.DiscussedCompanyListKey, &discussed); err != nil {
		companies, err := s.companyRepo.Discussed(ctx, homeListSize)
		if err != nil {
			return nil, err
		}
		discussed = make([]dto.CompanyListItem, 0, len(companies))
		for i := range companies {
			discussed = append(discussed, dto.FromModelToCompanyListItem(&companies[i]))
		}
		s.cacheSet(ctx, cache.DiscussedCompanyListKey, discussed)
	}

	return &dto.HomeResponse{
		Industries:         industries,
		BestCompanies:      best,
		DiscussedCompanies: discussed,
	}, nil
}

// Names returns the cached company name list.
func (s *CompanyService) Names(ctx context.Context) ([]dto.CompanyNameItem, error) {
	var names []dto.CompanyNameItem
	if err := s.store.Get(ctx, cache.CompanyNameListKey, &names); err == nil {
		return names, nil
	}
	companies, err := s.companyRepo.Names(ctx)
	if err != nil {
		return nil, err
	}
	names = make([]dto.CompanyNameItem, 0, len(companies))
	for i := range companies {
		names = append(names, dto.FromModelToCompanyNameItem(&companies[i]))
	}
	s.cacheSet(ctx, cache.CompanyNameListKey, names)
	return names, nil
}

// Industries returns the cached industry list.
func (s *CompanyService) Industries(ctx context.Context) ([]dto.IndustryItem, error) {
	var items []dto.IndustryItem
	if err := s.store.Get(ctx, cache.IndustryListKey, &items); err == nil {
		return items, nil
	}
	industries, err := s.lookupRepo.Industries(ctx)
	if err != nil {
		return nil, err
	}
	items = make([]dto.IndustryItem, 0, len(industries))
	for _, industry := range industries {
		items = append(items, dto.IndustryItem{
			Name: industry.Name,
			Slug: industry.Slug,
			Icon: industry.Icon,
			Logo: industry.Logo,
		})
	}
	s.cacheSet(ctx, cache.IndustryListKey, items)
	return items, nil
}

// Cities returns the cached city list.
func (s *CompanyService) Cities(ctx context.Context) ([]dto.CityItem, error) {
	var items []dto.CityItem
	if err := s.store.Get(ctx, cache.CityListKey, &items); err == nil {
		return items, nil
	}
	cities, err := s.lookupRepo.Cities(ctx)
	if err != nil {
		return nil, err
	}
	items = make([]dto.CityItem, 0, len(cities))
	for _, city := range cities {
		items = append(items, dto.CityItem{
			Name:     city.Name,
			ShowName: city.ShowName,
			Slug:     city.Slug,
			Province: city.Province.Name,
		})
	}
	s.cacheSet(ctx, cache.CityListKey, items)
	return items, nil
}

// Benefits returns the cached benefit list.
func (s *CompanyService) Benefits(ctx context.Context) ([]dto.BenefitItem, error) {
	var items []dto.BenefitItem
	if err := s.store.Get(ctx, cache.BenefitListKey, &items); err == nil {
		return items, nil
	}
	benefits, err := s.lookupRepo.Benefits(ctx)
	if err != nil {
		return nil, err
	}
	items = make([]dto.BenefitItem, 0, len(benefits))
	for _, benefit := range benefits {
		items = append(items, dto.BenefitItem{
			Name: benefit.Name,
			Icon: benefit.Icon,
			Logo: benefit.Logo,
		})
	}
	s.cacheSet(ctx, cache.BenefitListKey, items)
	return items, nil
}

// Donates returns the cached donate list.
func (s *CompanyService) Donates(ctx context.Context) ([]dto.DonateItem, error) {
	var items []dto.DonateItem
	if err := s.store.Get(ctx, cache.DonateListKey, &items); err == nil {
		return items, nil
	}
	donates, err := s.donateRepo.Approved(ctx)
	if err != nil {
		return nil, err
	}
	items = make([]dto.DonateItem, 0, len(donates))
	for _, donate := range donates {
		items = append(items, dto.DonateItem{
			Name:     donate.Name,
			Amount:   donate.Amount,
			Currency: donate.Currency,
			Created:  donate.CreatedAt,
		})
	}
	s.cacheSet(ctx, cache.DonateListKey, items)
	return items, nil
}

// Totals serves the site-wide counters, each cached independently.
func (s *CompanyService) Totals(ctx context.Context) (*dto.TotalsResponse, error) {
	companies, err := s.cachedCount(ctx, cache.TotalCompanyKey, s.companyRepo.Count)
	if err != nil {
		return nil, err
	}
	reviews, err := s.cachedCount(ctx, cache.TotalReviewKey, s.reviewRepo.Count)
	if err != nil {
		return nil, err
	}
	interviews, err := s.cachedCount(ctx, cache.TotalInterviewKey, s.interviewRepo.Count)
	if err != nil {
		return nil, err
	}
	users, err := s.cachedCount(ctx, cache.TotalUserKey, s.userRepo.Count)
	if err != nil {
		return nil, err
	}
	return &dto.TotalsResponse{
		Companies:  companies,
		Reviews:    reviews,
		Interviews: interviews,
		Users:      users,
	}, nil
}

// SaveIndustry persists an industry and drops the stale list projection.
func (s *CompanyService) SaveIndustry(ctx context.Context, industry *models.Industry) error {
	if err := s.lookupRepo.SaveIndustry(ctx, industry); err != nil {
		return err
	}
	s.coherence.OnMutation(ctx, cache.KindIndustry)
	return nil
}

func (s *CompanyService) SaveCity(ctx context.Context, city *models.City) error {
	if err := s.lookupRepo.SaveCity(ctx, city); err != nil {
		return err
	}
	s.coherence.OnMutation(ctx, cache.KindCity)
	return nil
}

func (s *CompanyService) SaveProvince(ctx context.Context, province *models.Province) error {
	if err := s.lookupRepo.SaveProvince(ctx, province); err != nil {
		return err
	}
	s.coherence.OnMutation(ctx, cache.KindProvince)
	return nil
}

func (s *CompanyService) SaveBenefit(ctx context.Context, benefit *models.Benefit) error {
	if err := s.lookupRepo.SaveBenefit(ctx, benefit); err != nil {
		return err
	}
	s.coherence.OnMutation(ctx, cache.KindBenefit)
	return nil
}

func (s *CompanyService) SaveDonate(ctx context.Context, donate *models.Donate) error {
	if err := s.donateRepo.Save(ctx, donate); err != nil {
		return err
	}
	s.coherence.OnMutation(ctx, cache.KindDonate)
	return nil
}

func (s *CompanyService) cachedCount(ctx context.Context, key string, query func(context.Context) (int64, error)) (int64, error) {
	var count int64
	if err := s.store.Get(ctx, key, &count); err == nil {
		return count, nil
	}
	count, err := query(ctx)
	if err != nil {
		return 0, err
	}
	s.cacheSet(ctx, key, count)
	return count, nil
}

// cacheSet repopulates a no-expiry entry. Cache failures only cost the next
// reader a rebuild, so they are logged and swallowed.
func (s *CompanyService) cacheSet(ctx context.Context, key string, value any) {
	if err := s.store.Set(ctx, key, value, cache.NoExpiry); err != nil {
		s.logger.Warn("failed to repopulate cache entry", "key", key, "error", err)
	}
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from the company's latin name.
func Slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
