package services

import (
	"context"
	"errors"
	"strings"

	"github.com/css-society/events-api/internal/bus"
	"github.com/css-society/events-api/internal/logger"
	"github.com/css-society/events-api/internal/models"
)

var (
	// ErrUnknownSection is returned for a section outside the fixed enumeration.
	ErrUnknownSection = errors.New("unknown event section")
)

// EventLister defines read operations on the dynamic event store.
type EventLister interface {
	ListUpcoming(ctx context.Context) ([]models.EventDB, error)
	ListActiveBySection(ctx context.Context, section string) ([]models.EventDB, error)
	GetBySlug(ctx context.Context, slug string) (*models.EventDB, error)
}

// CatalogCache caches merged per-section lists.
type CatalogCache interface {
	GetSection(ctx context.Context, section string) ([]models.EventDB, error)
	SetSection(ctx context.Context, section string, events []models.EventDB) error
	InvalidateAll(ctx context.Context) error
}

// Subscriber is the slice of the signal bus the catalog listens on.
type Subscriber interface {
	SubscribeUpdated(fn func())
	SubscribeDeleted(fn func(bus.EventDeleted))
}

// CatalogService merges the statically bundled events with the dynamically
// stored rows into per-section lists free of duplicate slugs.
type CatalogService struct {
	events EventLister
	cache  CatalogCache
	static []models.EventDB
}

// NewCatalogService creates a catalog service and subscribes it to the
// signal bus. cache and sub may be nil.
func NewCatalogService(events EventLister, cache CatalogCache, static []models.EventDB, sub Subscriber) *CatalogService {
	svc := &CatalogService{
		events: events,
		cache:  cache,
		static: static,
	}
	if sub != nil {
		sub.SubscribeUpdated(svc.onEventsUpdated)
		sub.SubscribeDeleted(svc.onEventDeleted)
	}
	return svc
}

// EventsBySection returns the section's event list. Store read failures
// degrade to the static source alone; the method only errors on an
// unknown section.
func (svc *CatalogService) EventsBySection(ctx context.Context, section string) ([]models.EventDB, error) {
	section, ok := canonicalSection(section)
	if !ok {
		return nil, ErrUnknownSection
	}

	if svc.cache != nil {
		cached, err := svc.cache.GetSection(ctx, section)
		if err != nil {
			logger.Log.Errorw("catalog cache read failed", "section", section, "err", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	merged := svc.buildSection(ctx, section)

	if svc.cache != nil {
		if err := svc.cache.SetSection(ctx, section, merged); err != nil {
			logger.Log.Errorw("catalog cache write failed", "section", section, "err", err)
		}
	}

	return merged, nil
}

func (svc *CatalogService) buildSection(ctx context.Context, section string) []models.EventDB {
	if section == models.SectionUpcoming {
		dynamic, err := svc.events.ListUpcoming(ctx)
		if err != nil {
			logger.Log.Errorw("failed to list upcoming events", "err", err)
			return []models.EventDB{}
		}
		return dynamic
	}

	dynamic, err := svc.events.ListActiveBySection(ctx, section)
	if err != nil {
		logger.Log.Errorw("failed to list events by section", "section", section, "err", err)
		dynamic = nil
	}

	var static []models.EventDB
	for _, e := range svc.static {
		if strings.EqualFold(e.Section, section) {
			static = append(static, e)
		}
	}

	return MergeBySlug(dynamic, static)
}

// EventBySlug resolves a single event, preferring the dynamic row over the
// static definition. Returns nil when neither source has the slug.
func (svc *CatalogService) EventBySlug(ctx context.Context, slug string) (*models.EventDB, error) {
	event, err := svc.events.GetBySlug(ctx, slug)
	if err != nil {
		logger.Log.Errorw("failed to get event by slug", "slug", slug, "err", err)
	} else if event != nil {
		return event, nil
	}

	for _, e := range svc.static {
		if e.Slug == slug {
			static := e
			return &static, nil
		}
	}

	return nil, err
}

// MergeBySlug concatenates primary and secondary, dropping any later entry
// whose slug was already seen. Deterministic and order-preserving.
func MergeBySlug(primary, secondary []models.EventDB) []models.EventDB {
	merged := make([]models.EventDB, 0, len(primary)+len(secondary))
	seen := make(map[string]bool, len(primary))

	for _, lists := range [][]models.EventDB{primary, secondary} {
		for _, e := range lists {
			if seen[e.Slug] {
				continue
			}
			seen[e.Slug] = true
			merged = append(merged, e)
		}
	}

	return merged
}

// onEventsUpdated handles the eventsUpdated signal.
func (svc *CatalogService) onEventsUpdated() {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.InvalidateAll(context.Background()); err != nil {
		logger.Log.Errorw("catalog cache invalidation failed", "err", err)
	}
}

// onEventDeleted handles the eventDeleted signal. The cache is dropped
// synchronously so a deleted event never flashes from stale cache entries
// while the next read rebuilds them.
func (svc *CatalogService) onEventDeleted(e bus.EventDeleted) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.InvalidateAll(context.Background()); err != nil {
		logger.Log.Errorw("catalog cache prune failed", "slug", e.EventSlug, "err", err)
	}
}

// canonicalSection resolves a case-insensitive section value to its
// canonical constant, keeping the cache keyed on a single spelling.
func canonicalSection(section string) (string, bool) {
	for _, s := range models.Sections() {
		if strings.EqualFold(s, section) {
			return s, true
		}
	}
	return "", false
}
