package impl

import (
	"testing"
	"time"

	"eventpulse/internal/domain/entity"
	"eventpulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScorer() scorer {
	cfg := newTestEngagementConfig()

	return scorer{lowPrice: cfg.LowPriceThreshold, midPrice: cfg.MidPriceThreshold}
}

func scoreOne(t *testing.T, input usecase.ScoreInput) entity.ScoreBreakdown {
	t.Helper()

	scored := newTestScorer().score(input)
	require.Len(t, scored, 1)

	return scored[0].Breakdown
}

func TestScorer_PreferredCategoryOutranksUnmatchedOne(t *testing.T) {
	userID := uuid.New()
	start := testNow.Add(72 * time.Hour)
	music := newEvent("Jazz night", start, withCategory("music"))
	sports := newEvent("Derby", start, withCategory("sports"))

	scored := newTestScorer().score(usecase.ScoreInput{
		UserID:       userID,
		Candidates:   []*entity.Event{sports, music},
		Interactions: interactionsOf(userID, entity.InteractionFavoriteAdd, "music", 3),
		Now:          testNow,
	})

	require.Len(t, scored, 2)
	assert.Equal(t, music.ID, scored[0].Event.ID)
	assert.Greater(t, scored[0].RecommendationScore, scored[1].RecommendationScore)
	assert.InDelta(t, 20, scored[0].Breakdown.CategoryAffinity, 1e-9)
	assert.InDelta(t, 0, scored[1].Breakdown.CategoryAffinity, 1e-9)
}

func TestScorer_OutputHasEachEventOnce(t *testing.T) {
	a := newEvent("A", testNow.Add(time.Hour), withCategory("music"))
	b := newEvent("B", testNow.Add(2*time.Hour), withCategory("music"))
	aCopy := *a

	scored := newTestScorer().score(usecase.ScoreInput{
		Candidates: []*entity.Event{a, b, a, &aCopy, nil},
		Now:        testNow,
	})

	require.Len(t, scored, 2)
	ids := map[uuid.UUID]int{}
	for _, se := range scored {
		ids[se.Event.ID]++
	}
	assert.Equal(t, 1, ids[a.ID])
	assert.Equal(t, 1, ids[b.ID])
}

func TestScorer_TiesBreakByEventIDAndOrderIsStable(t *testing.T) {
	start := testNow.Add(48 * time.Hour)
	first := newEvent("first", start, withID("00000000-0000-0000-0000-000000000001"))
	second := newEvent("second", start, withID("00000000-0000-0000-0000-000000000002"))
	third := newEvent("third", start, withID("00000000-0000-0000-0000-000000000003"))

	for _, order := range [][]*entity.Event{
		{third, first, second},
		{second, third, first},
		{first, second, third},
	} {
		scored := newTestScorer().score(usecase.ScoreInput{Candidates: order, Now: testNow})

		require.Len(t, scored, 3)
		assert.Equal(t, first.ID, scored[0].Event.ID)
		assert.Equal(t, second.ID, scored[1].Event.ID)
		assert.Equal(t, third.ID, scored[2].Event.ID)
	}
}

func TestScorer_RecencyBonus(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		want  float64
	}{
		{name: "starting now", start: testNow, want: 15},
		{name: "ten days out", start: testNow.Add(10 * day), want: 10},
		{name: "thirty days out", start: testNow.Add(30 * day), want: 0},
		{name: "beyond horizon", start: testNow.Add(31 * day), want: 0},
		{name: "already started", start: testNow.Add(-time.Hour), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreOne(t, usecase.ScoreInput{
				Candidates: []*entity.Event{newEvent("e", tt.start)},
				Now:        testNow,
			})
			assert.InDelta(t, tt.want, got.Recency, 1e-9)
		})
	}
}

func TestScorer_CategoryAffinity(t *testing.T) {
	userID := uuid.New()
	candidate := newEvent("e", testNow.Add(day), withCategory("music"))

	tests := []struct {
		name         string
		interactions []*entity.Interaction
		want         float64
	}{
		{name: "single view", interactions: interactionsOf(userID, entity.InteractionView, "music", 1), want: 4},
		{name: "one click", interactions: interactionsOf(userID, entity.InteractionClick, "music", 1), want: 10},
		{name: "share hits the cap", interactions: interactionsOf(userID, entity.InteractionShare, "music", 1), want: 20},
		{name: "removals floor at zero", interactions: interactionsOf(userID, entity.InteractionFavoriteRemove, "music", 3), want: 0},
		{name: "searches carry no weight", interactions: interactionsOf(userID, entity.InteractionSearch, "music", 4), want: 0},
		{name: "other category", interactions: interactionsOf(userID, entity.InteractionShare, "art", 2), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreOne(t, usecase.ScoreInput{
				UserID:       userID,
				Candidates:   []*entity.Event{candidate},
				Interactions: tt.interactions,
				Now:          testNow,
			})
			assert.InDelta(t, tt.want, got.CategoryAffinity, 1e-9)
		})
	}
}

func TestScorer_CategoryResolvedFromCatalog(t *testing.T) {
	userID := uuid.New()
	past := newEvent("past gig", testNow.Add(-10*day), withCategory("music"))
	candidate := newEvent("e", testNow.Add(day), withCategory("music"))

	got := scoreOne(t, usecase.ScoreInput{
		UserID:     userID,
		Candidates: []*entity.Event{candidate},
		Catalog:    []*entity.Event{past},
		Interactions: []*entity.Interaction{
			{UserID: userID, EventID: past.ID, Type: entity.InteractionClick, OccurredAt: testNow.Add(-day)},
		},
		Now: testNow,
	})

	assert.InDelta(t, 10, got.CategoryAffinity, 1e-9)
}

func TestScorer_PriceAffinity(t *testing.T) {
	tests := []struct {
		price float64
		want  float64
	}{
		{price: 0, want: 10},
		{price: 15, want: 8},
		{price: 20, want: 8},
		{price: 35, want: 5},
		{price: 50, want: 5},
		{price: 120, want: 2},
	}

	for _, tt := range tests {
		got := scoreOne(t, usecase.ScoreInput{
			Candidates: []*entity.Event{newEvent("e", testNow.Add(day), withPrice(tt.price))},
			Now:        testNow,
		})
		assert.InDelta(t, tt.want, got.PriceAffinity, 1e-9, "price %v", tt.price)
	}
}

func TestScorer_Popularity(t *testing.T) {
	event := newEvent("e", testNow.Add(day))

	tests := []struct {
		count int
		want  float64
	}{
		{count: 75, want: 15},
		{count: 50, want: 15},
		{count: 20, want: 10},
		{count: 10, want: 5},
		{count: 9, want: 2},
		{count: 0, want: 2},
	}

	for _, tt := range tests {
		got := scoreOne(t, usecase.ScoreInput{
			Candidates:        []*entity.Event{event},
			InteractionCounts: map[uuid.UUID]int{event.ID: tt.count},
			Now:               testNow,
		})
		assert.InDelta(t, tt.want, got.Popularity, 1e-9, "count %d", tt.count)
	}
}

func TestScorer_PopularityFallsBackToWindow(t *testing.T) {
	userID := uuid.New()
	event := newEvent("e", testNow.Add(day))

	interactions := make([]*entity.Interaction, 10)
	for i := range interactions {
		interactions[i] = &entity.Interaction{UserID: uuid.New(), EventID: event.ID, Type: entity.InteractionClick}
	}

	got := scoreOne(t, usecase.ScoreInput{
		UserID:       userID,
		Candidates:   []*entity.Event{event},
		Interactions: interactions,
		Now:          testNow,
	})

	assert.InDelta(t, 5, got.Popularity, 1e-9)
}

func TestScorer_ViewFatigue(t *testing.T) {
	userID := uuid.New()
	event := newEvent("e", testNow.Add(day))

	views := func(user uuid.UUID, n int) []*entity.Interaction {
		records := make([]*entity.Interaction, n)
		for i := range records {
			records[i] = &entity.Interaction{UserID: user, EventID: event.ID, Type: entity.InteractionView}
		}

		return records
	}

	tests := []struct {
		name         string
		interactions []*entity.Interaction
		want         float64
	}{
		{name: "one view", interactions: views(userID, 1), want: 0},
		{name: "two views", interactions: views(userID, 2), want: -2},
		{name: "three views", interactions: views(userID, 3), want: -5},
		{name: "five views", interactions: views(userID, 5), want: -10},
		{name: "other users", interactions: views(uuid.New(), 6), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreOne(t, usecase.ScoreInput{
				UserID:            userID,
				Candidates:        []*entity.Event{event},
				Interactions:      tt.interactions,
				InteractionCounts: map[uuid.UUID]int{},
				Now:               testNow,
			})
			assert.InDelta(t, tt.want, got.ViewFatigue, 1e-9)
		})
	}
}

func TestScorer_FavoriteSimilarity(t *testing.T) {
	candidate := newEvent("candidate", testNow.Add(day), withCategory("music"), withPrice(40))

	similar := func(n int) []*entity.Event {
		events := make([]*entity.Event, n)
		for i := range events {
			events[i] = newEvent("fav", testNow.Add(-day), withCategory("music"), withPrice(45))
		}

		return events
	}

	t.Run("category and price", func(t *testing.T) {
		favs := similar(1)
		got := scoreOne(t, usecase.ScoreInput{
			Candidates: []*entity.Event{candidate},
			Catalog:    favs,
			Favorites:  entity.NewEventIDSet(favs[0].ID),
			Now:        testNow,
		})
		assert.InDelta(t, 8, got.FavoriteSimilarity, 1e-9)
	})

	t.Run("price outside tolerance", func(t *testing.T) {
		fav := newEvent("fav", testNow.Add(-day), withCategory("art"), withPrice(80))
		got := scoreOne(t, usecase.ScoreInput{
			Candidates: []*entity.Event{candidate},
			Catalog:    []*entity.Event{fav},
			Favorites:  entity.NewEventIDSet(fav.ID),
			Now:        testNow,
		})
		assert.InDelta(t, 0, got.FavoriteSimilarity, 1e-9)
	})

	t.Run("capped", func(t *testing.T) {
		favs := similar(4)
		set := entity.NewEventIDSet()
		for _, f := range favs {
			set.Add(f.ID)
		}
		got := scoreOne(t, usecase.ScoreInput{
			Candidates: []*entity.Event{candidate},
			Catalog:    favs,
			Favorites:  set,
			Now:        testNow,
		})
		assert.InDelta(t, 25, got.FavoriteSimilarity, 1e-9)
	})

	t.Run("candidate itself is ignored", func(t *testing.T) {
		got := scoreOne(t, usecase.ScoreInput{
			Candidates: []*entity.Event{candidate},
			Favorites:  entity.NewEventIDSet(candidate.ID),
			Now:        testNow,
		})
		assert.InDelta(t, 0, got.FavoriteSimilarity, 1e-9)
	})
}

func TestScorer_TrendingBonus(t *testing.T) {
	tests := []struct {
		name    string
		created time.Time
		want    float64
	}{
		{name: "three days old", created: testNow.Add(-3 * day), want: 8},
		{name: "ten days old", created: testNow.Add(-10 * day), want: 4},
		{name: "twenty days old", created: testNow.Add(-20 * day), want: 0},
		{name: "unknown", created: time.Time{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreOne(t, usecase.ScoreInput{
				Candidates: []*entity.Event{newEvent("e", testNow.Add(40*day), withCreatedAt(tt.created))},
				Now:        testNow,
			})
			assert.InDelta(t, tt.want, got.Trending, 1e-9)
		})
	}
}

func TestTopCategories(t *testing.T) {
	weights := map[string]float64{"music": 30, "art": 30, "food": 10, "sports": 5, "tech": -5}

	assert.Equal(t, []string{"art", "music", "food"}, topCategories(weights, 3))
	assert.Empty(t, topCategories(map[string]float64{"tech": -5}, 3))
}
