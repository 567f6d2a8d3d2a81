package cache

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allKnownKeys() []string {
	return []string{
		BestCompanyListKey,
		DiscussedCompanyListKey,
		CompanyNameListKey,
		IndustryListKey,
		CityListKey,
		BenefitListKey,
		DonateListKey,
		TotalReviewKey,
		TotalInterviewKey,
		TotalCompanyKey,
		TotalUserKey,
	}
}

func populatedStore(t *testing.T) *MemoryStore {
	t.Helper()
	store, err := NewMemoryStore(64)
	require.NoError(t, err)
	for _, key := range allKnownKeys() {
		require.NoError(t, store.Set(context.Background(), key, "cached", NoExpiry))
	}
	return store
}

func TestOnMutation_InvalidatesOnlyTriggeredKeys(t *testing.T) {
	tests := []struct {
		kind        EntityKind
		invalidated []string
	}{
		{KindCompany, []string{BestCompanyListKey, DiscussedCompanyListKey, CompanyNameListKey, TotalCompanyKey}},
		{KindReview, []string{BestCompanyListKey, DiscussedCompanyListKey, TotalReviewKey}},
		{KindInterview, []string{BestCompanyListKey, DiscussedCompanyListKey, TotalInterviewKey}},
		{KindIndustry, []string{IndustryListKey}},
		{KindCity, []string{CityListKey}},
		{KindProvince, []string{CityListKey}},
		{KindBenefit, []string{BenefitListKey}},
		{KindDonate, []string{DonateListKey}},
		{KindUser, []string{TotalUserKey}},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			ctx := context.Background()
			store := populatedStore(t)
			coherence := NewCoherence(store, slog.Default())

			coherence.OnMutation(ctx, tt.kind)

			invalidated := make(map[string]bool, len(tt.invalidated))
			for _, key := range tt.invalidated {
				invalidated[key] = true
			}
			var value string
			for _, key := range allKnownKeys() {
				err := store.Get(ctx, key, &value)
				if invalidated[key] {
					assert.ErrorIs(t, err, ErrCacheMiss, "key %s should have been invalidated", key)
				} else {
					assert.NoError(t, err, "key %s should have survived", key)
				}
			}
		})
	}
}

func TestOnMutation_RepopulatedEntrySurvivesUnrelatedMutations(t *testing.T) {
	ctx := context.Background()
	store := populatedStore(t)
	coherence := NewCoherence(store, slog.Default())

	coherence.OnMutation(ctx, KindCompany)

	var value string
	require.ErrorIs(t, store.Get(ctx, CompanyNameListKey, &value), ErrCacheMiss)

	// The next reader rebuilds the entry; it then stays warm until the next
	// company mutation.
	require.NoError(t, store.Set(ctx, CompanyNameListKey, "rebuilt", NoExpiry))

	coherence.OnMutation(ctx, KindReview)
	coherence.OnMutation(ctx, KindUser)

	require.NoError(t, store.Get(ctx, CompanyNameListKey, &value))
	assert.Equal(t, "rebuilt", value)
}

func TestKeysFor_CoversEveryKind(t *testing.T) {
	kinds := []EntityKind{
		KindCompany, KindReview, KindInterview, KindIndustry,
		KindCity, KindProvince, KindBenefit, KindDonate, KindUser,
	}
	for _, kind := range kinds {
		assert.NotEmpty(t, KeysFor(kind), "kind %s has no trigger set", kind)
	}
}

func TestMemoryStore_MissAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewMemoryStore(8)
	require.NoError(t, err)

	var out []string
	assert.ErrorIs(t, store.Get(ctx, BestCompanyListKey, &out), ErrCacheMiss)

	in := []string{"acme", "globex"}
	require.NoError(t, store.Set(ctx, BestCompanyListKey, in, NoExpiry))
	require.NoError(t, store.Get(ctx, BestCompanyListKey, &out))
	assert.Equal(t, in, out)

	require.NoError(t, store.Delete(ctx, BestCompanyListKey))
	assert.ErrorIs(t, store.Get(ctx, BestCompanyListKey, &out), ErrCacheMiss)
}
