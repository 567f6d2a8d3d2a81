package service

import (
	"context"
	"log/slog"
	"testing"

	"jobhub/internal/cache"
	"jobhub/internal/dto"
	"jobhub/internal/models"
	"jobhub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCompanyRepo struct {
	created *models.Company
}

func (f *fakeCompanyRepo) WithTx(tx *gorm.DB) repository.CompanyRepository { return f }

func (f *fakeCompanyRepo) Create(ctx context.Context, company *models.Company) error {
	f.created = company
	return nil
}

func (f *fakeCompanyRepo) Save(ctx context.Context, company *models.Company) error { return nil }

func (f *fakeCompanyRepo) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCompanyRepo) GetBySlug(ctx context.Context, slug string) (*models.Company, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCompanyRepo) Best(ctx context.Context, limit int) ([]models.Company, error) {
	return nil, nil
}

func (f *fakeCompanyRepo) Discussed(ctx context.Context, limit int) ([]models.Company, error) {
	return nil, nil
}

func (f *fakeCompanyRepo) Names(ctx context.Context) ([]models.Company, error) { return nil, nil }

func (f *fakeCompanyRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func TestCreate_InitializesCompanyScore(t *testing.T) {
	repo := &fakeCompanyRepo{}
	store, err := cache.NewMemoryStore(8)
	require.NoError(t, err)
	logger := slog.Default()
	svc := NewCompanyService(nil, repo, nil, nil, nil, nil, nil, nil,
		store, cache.NewCoherence(store, logger), logger)

	company, err := svc.Create(context.Background(), "user-1", &dto.CreateCompanyDTO{
		Name:       "Acme",
		NameEn:     "Acme Corp",
		IndustryID: 1,
		CityID:     1,
		Size:       models.SizeLarge,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	// boolPoint = 1 (big company) + 1 (not a cheater) = 2; score = 2/3 -> 0.7.
	assert.True(t, company.IsBigCompany)
	assert.InDelta(t, 0.7, repo.created.CompanyScore, 1e-9)
	assert.Equal(t, "acme-corp", company.Slug)
	assert.False(t, company.Approved)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Acme Corp", "acme-corp"},
		{"  Digikala  ", "digikala"},
		{"Snapp! Group", "snapp-group"},
		{"A/B & C", "a-b-c"},
		{"cafe-bazaar", "cafe-bazaar"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.name), "input %q", tt.name)
	}
}

func TestDeriveBigCompany(t *testing.T) {
	tests := []struct {
		size string
		big  bool
	}{
		{models.SizeVerySmall, false},
		{models.SizeSmall, false},
		{models.SizeMedium, true},
		{models.SizeLarge, true},
		{models.SizeVeryLarge, true},
	}
	for _, tt := range tests {
		company := &models.Company{Size: tt.size}
		company.DeriveBigCompany()
		assert.Equal(t, tt.big, company.IsBigCompany, "size %s", tt.size)
	}
}
