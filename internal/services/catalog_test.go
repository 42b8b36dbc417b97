package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/css-society/events-api/internal/bus"
	"github.com/css-society/events-api/internal/content"
	"github.com/css-society/events-api/internal/models"
)

func TestCatalogService_EventsBySection_UnknownSection(t *testing.T) {
	svc := NewCatalogService(nil, nil, nil, nil)

	_, err := svc.EventsBySection(context.Background(), "archived")
	assert.Equal(t, ErrUnknownSection, err)
}

func TestCatalogService_EventsBySection_Upcoming(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := NewMockEventLister(ctrl)
	events.EXPECT().ListUpcoming(ctx).Return([]models.EventDB{
		{Slug: "css-hackathon", Name: "CSS Hackathon", Section: models.SectionUpcoming},
	}, nil)

	// Static definitions never leak into the upcoming section.
	svc := NewCatalogService(events, nil, content.Events(), nil)
	got, err := svc.EventsBySection(ctx, models.SectionUpcoming)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "css-hackathon", got[0].Slug)
}

func TestCatalogService_EventsBySection_SectionCaseInsensitive(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The documented query values are lowercase; the loader resolves them
	// to the canonical section constants.
	events := NewMockEventLister(ctrl)
	events.EXPECT().ListUpcoming(ctx).Return(nil, nil)
	events.EXPECT().ListActiveBySection(ctx, models.SectionYearly).Return(nil, nil)
	events.EXPECT().ListActiveBySection(ctx, models.SectionCultural).Return(nil, nil)
	events.EXPECT().ListActiveBySection(ctx, models.SectionTechnical).Return(nil, nil)

	svc := NewCatalogService(events, nil, nil, nil)
	for _, section := range []string{"upcoming", "yearly", "cultural", "technical"} {
		_, err := svc.EventsBySection(ctx, section)
		assert.NoError(t, err, "section %q", section)
	}
}

func TestCatalogService_EventsBySection_CacheKeyedOnCanonicalSection(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cached := []models.EventDB{{Slug: "dsa-marathon", Section: models.SectionTechnical}}

	cache := NewMockCatalogCache(ctrl)
	cache.EXPECT().GetSection(ctx, models.SectionTechnical).Return(cached, nil).Times(2)

	svc := NewCatalogService(nil, cache, nil, nil)

	for _, section := range []string{"technical", "TECHNICAL"} {
		got, err := svc.EventsBySection(ctx, section)
		assert.NoError(t, err, "section %q", section)
		assert.Equal(t, cached, got)
	}
}

func TestCatalogService_EventsBySection_MergesDynamicOverStatic(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	static := []models.EventDB{
		{Slug: "css-abacus", Name: "CSS Abacus", Section: models.SectionYearly},
		{Slug: "css-olympics", Name: "CSS Olympics", Section: models.SectionYearly},
		{Slug: "esperanza", Name: "Esperanza", Section: models.SectionCultural},
	}

	events := NewMockEventLister(ctrl)
	events.EXPECT().ListActiveBySection(ctx, models.SectionYearly).Return([]models.EventDB{
		{Slug: "css-abacus", Name: "CSS Abacus 2026", Section: models.SectionYearly},
	}, nil)

	svc := NewCatalogService(events, nil, static, nil)
	got, err := svc.EventsBySection(ctx, models.SectionYearly)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	// The dynamic row wins the shared slug, the other static row survives,
	// and the cultural static row stays out of the yearly section.
	assert.Equal(t, "CSS Abacus 2026", got[0].Name)
	assert.Equal(t, "css-olympics", got[1].Slug)
}

func TestCatalogService_EventsBySection_StoreErrorDegradesToStatic(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	static := []models.EventDB{
		{Slug: "css-go", Name: "CSS Go", Section: models.SectionCultural},
	}

	events := NewMockEventLister(ctrl)
	events.EXPECT().ListActiveBySection(ctx, models.SectionCultural).Return(nil, errors.New("store down"))

	svc := NewCatalogService(events, nil, static, nil)
	got, err := svc.EventsBySection(ctx, models.SectionCultural)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "css-go", got[0].Slug)
}

func TestCatalogService_EventsBySection_Cache(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cached := []models.EventDB{{Slug: "cached", Name: "Cached", Section: models.SectionTechnical}}

	// 1. Cache hit skips the store entirely
	cache := NewMockCatalogCache(ctrl)
	cache.EXPECT().GetSection(ctx, models.SectionTechnical).Return(cached, nil)

	svc := NewCatalogService(nil, cache, nil, nil)
	got, err := svc.EventsBySection(ctx, models.SectionTechnical)
	assert.NoError(t, err)
	assert.Equal(t, cached, got)

	// 2. Cache miss builds and writes back
	events := NewMockEventLister(ctrl)
	events.EXPECT().ListActiveBySection(ctx, models.SectionTechnical).Return(cached, nil)
	cache.EXPECT().GetSection(ctx, models.SectionTechnical).Return(nil, nil)
	cache.EXPECT().SetSection(ctx, models.SectionTechnical, cached).Return(nil)

	svc = NewCatalogService(events, cache, nil, nil)
	got, err = svc.EventsBySection(ctx, models.SectionTechnical)
	assert.NoError(t, err)
	assert.Equal(t, cached, got)

	// 3. Cache errors degrade to the store
	events.EXPECT().ListActiveBySection(ctx, models.SectionTechnical).Return(cached, nil)
	cache.EXPECT().GetSection(ctx, models.SectionTechnical).Return(nil, errors.New("redis down"))
	cache.EXPECT().SetSection(ctx, models.SectionTechnical, cached).Return(errors.New("redis down"))

	got, err = svc.EventsBySection(ctx, models.SectionTechnical)
	assert.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestCatalogService_EventBySlug(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	static := []models.EventDB{
		{Slug: "esperanza", Name: "Esperanza", Section: models.SectionCultural},
	}

	events := NewMockEventLister(ctrl)
	svc := NewCatalogService(events, nil, static, nil)

	// 1. Dynamic row preferred
	events.EXPECT().GetBySlug(ctx, "esperanza").Return(&models.EventDB{Slug: "esperanza", Name: "Esperanza 2026"}, nil)
	got, err := svc.EventBySlug(ctx, "esperanza")
	assert.NoError(t, err)
	assert.Equal(t, "Esperanza 2026", got.Name)

	// 2. Static fallback when the store has no row
	events.EXPECT().GetBySlug(ctx, "esperanza").Return(nil, nil)
	got, err = svc.EventBySlug(ctx, "esperanza")
	assert.NoError(t, err)
	assert.Equal(t, "Esperanza", got.Name)

	// 3. Static fallback when the store errors
	events.EXPECT().GetBySlug(ctx, "esperanza").Return(nil, errors.New("store down"))
	got, err = svc.EventBySlug(ctx, "esperanza")
	assert.NoError(t, err)
	assert.Equal(t, "Esperanza", got.Name)

	// 4. Unknown slug
	events.EXPECT().GetBySlug(ctx, "missing").Return(nil, nil)
	got, err = svc.EventBySlug(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCatalogService_BusInvalidatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := NewMockCatalogCache(ctrl)
	cache.EXPECT().InvalidateAll(gomock.Any()).Return(nil).Times(2)

	b := bus.New()
	NewCatalogService(nil, cache, nil, b)

	b.PublishUpdated()
	b.PublishDeleted(bus.EventDeleted{EventSlug: "css-go"})
}

func TestMergeBySlug(t *testing.T) {
	tests := []struct {
		name      string
		primary   []models.EventDB
		secondary []models.EventDB
		wantSlugs []string
	}{
		{
			name:      "both empty",
			wantSlugs: []string{},
		},
		{
			name:      "disjoint keeps order",
			primary:   []models.EventDB{{Slug: "a"}, {Slug: "b"}},
			secondary: []models.EventDB{{Slug: "c"}},
			wantSlugs: []string{"a", "b", "c"},
		},
		{
			name:      "primary wins shared slug",
			primary:   []models.EventDB{{Slug: "a", Name: "dynamic"}},
			secondary: []models.EventDB{{Slug: "a", Name: "static"}, {Slug: "b"}},
			wantSlugs: []string{"a", "b"},
		},
		{
			name:      "duplicate inside primary collapses",
			primary:   []models.EventDB{{Slug: "a"}, {Slug: "a"}},
			wantSlugs: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := MergeBySlug(tt.primary, tt.secondary)

			slugs := make([]string, 0, len(merged))
			for _, e := range merged {
				slugs = append(slugs, e.Slug)
			}
			assert.Equal(t, tt.wantSlugs, slugs)
		})
	}
}

func TestMergeBySlug_PrimaryValueSurvives(t *testing.T) {
	merged := MergeBySlug(
		[]models.EventDB{{Slug: "a", Name: "dynamic"}},
		[]models.EventDB{{Slug: "a", Name: "static"}},
	)

	assert.Len(t, merged, 1)
	assert.Equal(t, "dynamic", merged[0].Name)
}
