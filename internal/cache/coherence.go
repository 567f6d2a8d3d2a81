package cache

import (
	"context"
	"log/slog"
)

// EntityKind identifies the record type behind a mutation event.
type EntityKind string

const (
	KindCompany   EntityKind = "company"
	KindReview    EntityKind = "review"
	KindInterview EntityKind = "interview"
	KindIndustry  EntityKind = "industry"
	KindCity      EntityKind = "city"
	KindProvince  EntityKind = "province"
	KindBenefit   EntityKind = "benefit"
	KindDonate    EntityKind = "donate"
	KindUser      EntityKind = "user"
)

// invalidationTable maps each mutation kind to the cache entries whose source
// data it may have changed. Every invalidation in the system goes through this
// table so the trigger sets stay auditable in one place.
var invalidationTable = map[EntityKind][]string{
	KindCompany: {
		BestCompanyListKey,
		DiscussedCompanyListKey,
		CompanyNameListKey,
		TotalCompanyKey,
	},
	KindReview: {
		BestCompanyListKey,
		DiscussedCompanyListKey,
		TotalReviewKey,
	},
	KindInterview: {
		BestCompanyListKey,
		DiscussedCompanyListKey,
		TotalInterviewKey,
	},
	KindIndustry: {IndustryListKey},
	KindCity:     {CityListKey},
	KindProvince: {CityListKey},
	KindBenefit:  {BenefitListKey},
	KindDonate:   {DonateListKey},
	KindUser:     {TotalUserKey},
}

// Coherence invalidates cache entries in response to mutation events. It must
// be invoked only after the underlying record is durably persisted; most
// entries have no TTL, so an invalidate-then-rollback would go stale forever
// the other way around.
type Coherence struct {
	store  Store
	logger *slog.Logger
}

func NewCoherence(store Store, logger *slog.Logger) *Coherence {
	return &Coherence{store: store, logger: logger}
}

// KeysFor reports the cache entries invalidated by a mutation of the given
// kind.
func KeysFor(kind EntityKind) []string {
	return invalidationTable[kind]
}

// OnMutation deletes every cache entry whose trigger set includes kind.
// Deletion is unconditional; the next reader regenerates on miss. Cache
// backend failures are logged and swallowed so an outage never blocks the
// write path.
func (c *Coherence) OnMutation(ctx context.Context, kind EntityKind) {
	keys := invalidationTable[kind]
	if len(keys) == 0 {
		return
	}
	if err := c.store.Delete(ctx, keys...); err != nil {
		c.logger.Warn("cache invalidation failed", "kind", string(kind), "keys", keys, "error", err)
	}
}
