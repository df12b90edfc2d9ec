package impl

import (
	"cmp"
	"math"
	"slices"
	"time"

	"eventpulse/internal/domain/entity"
	"eventpulse/internal/usecase"

	"github.com/google/uuid"
)

const (
	recencyHorizonDays = 30.0
	recencyPerDay      = 0.5
	recencyCap         = 15.0

	categoryAffinityScale = 2.0
	categoryAffinityCap   = 20.0

	favoriteSameCategoryBonus = 5.0
	favoriteSimilarPriceBonus = 3.0
	favoritePriceTolerance    = 0.3
	favoriteSimilarityCap     = 25.0

	day = 24 * time.Hour
)

// scorer holds the tunable price tiers; everything else is fixed.
type scorer struct {
	lowPrice float64
	midPrice float64
}

// scoringContext is what every candidate is scored against
type scoringContext struct {
	now             time.Time
	categoryWeights map[string]float64
	viewCounts      map[uuid.UUID]int
	counts          map[uuid.UUID]int
	favorites       []*entity.Event
}

func (s scorer) score(input usecase.ScoreInput) []*entity.ScoredEvent {
	index := indexEvents(input.Catalog, input.Candidates)
	sc := scoringContext{
		now:             input.Now,
		categoryWeights: categoryWeights(input.Interactions, index),
		viewCounts:      viewCounts(input.UserID, input.Interactions),
		counts:          input.InteractionCounts,
		favorites:       favoriteEvents(input.Favorites, index),
	}
	if sc.counts == nil {
		sc.counts = windowCounts(input.Interactions)
	}

	seen := make(map[uuid.UUID]struct{}, len(input.Candidates))
	scored := make([]*entity.ScoredEvent, 0, len(input.Candidates))
	for _, event := range input.Candidates {
		if event == nil {
			continue
		}
		if _, dup := seen[event.ID]; dup {
			continue
		}
		seen[event.ID] = struct{}{}

		breakdown := s.breakdown(event, &sc)
		scored = append(scored, &entity.ScoredEvent{
			Event:               event,
			RecommendationScore: breakdown.Total(),
			Breakdown:           breakdown,
		})
	}

	slices.SortStableFunc(scored, func(a, b *entity.ScoredEvent) int {
		if c := cmp.Compare(b.RecommendationScore, a.RecommendationScore); c != 0 {
			return c
		}

		return cmp.Compare(a.Event.ID.String(), b.Event.ID.String())
	})

	return scored
}

func (s scorer) breakdown(event *entity.Event, sc *scoringContext) entity.ScoreBreakdown {
	return entity.ScoreBreakdown{
		Recency:            recencyBonus(event, sc.now),
		CategoryAffinity:   categoryAffinity(event, sc.categoryWeights),
		PriceAffinity:      s.priceAffinity(event),
		Popularity:         popularityBonus(sc.counts[event.ID]),
		ViewFatigue:        viewFatiguePenalty(sc.viewCounts[event.ID]),
		FavoriteSimilarity: favoriteSimilarity(event, sc.favorites),
		Trending:           trendingBonus(event, sc.now),
	}
}

func recencyBonus(event *entity.Event, now time.Time) float64 {
	days := float64(event.StartTime.Sub(now)) / float64(day)
	if days < 0 || days > recencyHorizonDays {
		return 0
	}

	return math.Min(recencyCap, math.Max(0, (recencyHorizonDays-days)*recencyPerDay))
}

func categoryAffinity(event *entity.Event, weights map[string]float64) float64 {
	if event.Category == "" {
		return 0
	}

	return clamp(weights[event.Category]*categoryAffinityScale, 0, categoryAffinityCap)
}

func (s scorer) priceAffinity(event *entity.Event) float64 {
	switch {
	case event.IsFree():
		return 10
	case event.Price <= s.lowPrice:
		return 8
	case event.Price <= s.midPrice:
		return 5
	default:
		return 2
	}
}

func popularityBonus(count int) float64 {
	switch {
	case count >= 50:
		return 15
	case count >= 20:
		return 10
	case count >= 10:
		return 5
	default:
		return 2
	}
}

func viewFatiguePenalty(views int) float64 {
	switch {
	case views >= 5:
		return -10
	case views >= 3:
		return -5
	case views >= 2:
		return -2
	default:
		return 0
	}
}

// favoriteSimilarity compares the event with the user's other favorites; a
// favorited event is never similar to itself
func favoriteSimilarity(event *entity.Event, favorites []*entity.Event) float64 {
	var bonus float64
	for _, fav := range favorites {
		if fav.ID == event.ID {
			continue
		}
		if fav.Category != "" && fav.Category == event.Category {
			bonus += favoriteSameCategoryBonus
		}
		if math.Abs(fav.Price-event.Price) <= favoritePriceTolerance*event.Price {
			bonus += favoriteSimilarPriceBonus
		}
	}

	return math.Min(bonus, favoriteSimilarityCap)
}

func trendingBonus(event *entity.Event, now time.Time) float64 {
	if event.CreatedAt.IsZero() {
		return 0
	}

	age := now.Sub(event.CreatedAt)
	switch {
	case age <= 7*day:
		return 8
	case age <= 14*day:
		return 4
	default:
		return 0
	}
}

// indexEvents maps ids to events; later slices override earlier ones
func indexEvents(groups ...[]*entity.Event) map[uuid.UUID]*entity.Event {
	index := make(map[uuid.UUID]*entity.Event)
	for _, group := range groups {
		for _, event := range group {
			if event != nil {
				index[event.ID] = event
			}
		}
	}

	return index
}

// interactionCategory prefers the category captured on the record and falls back to the event index
func interactionCategory(interaction *entity.Interaction, index map[uuid.UUID]*entity.Event) string {
	if interaction.EventCategory != "" {
		return interaction.EventCategory
	}
	if event, ok := index[interaction.EventID]; ok {
		return event.Category
	}

	return ""
}

func categoryWeights(interactions []*entity.Interaction, index map[uuid.UUID]*entity.Event) map[string]float64 {
	weights := make(map[string]float64)
	for _, interaction := range interactions {
		if interaction == nil {
			continue
		}
		category := interactionCategory(interaction, index)
		if category == "" {
			continue
		}
		weights[category] += interaction.Type.AffinityWeight()
	}

	return weights
}

func viewCounts(userID uuid.UUID, interactions []*entity.Interaction) map[uuid.UUID]int {
	counts := make(map[uuid.UUID]int)
	for _, interaction := range interactions {
		if interaction == nil || interaction.Type != entity.InteractionView {
			continue
		}
		if interaction.UserID != userID {
			continue
		}
		counts[interaction.EventID]++
	}

	return counts
}

func windowCounts(interactions []*entity.Interaction) map[uuid.UUID]int {
	counts := make(map[uuid.UUID]int)
	for _, interaction := range interactions {
		if interaction != nil {
			counts[interaction.EventID]++
		}
	}

	return counts
}

func favoriteEvents(favorites entity.EventIDSet, index map[uuid.UUID]*entity.Event) []*entity.Event {
	events := make([]*entity.Event, 0, len(favorites))
	for id := range favorites {
		if event, ok := index[id]; ok {
			events = append(events, event)
		}
	}

	return events
}

// topCategories returns up to n categories with positive weight, heaviest first
func topCategories(weights map[string]float64, n int) []string {
	categories := make([]string, 0, len(weights))
	for category, weight := range weights {
		if weight > 0 {
			categories = append(categories, category)
		}
	}

	slices.SortFunc(categories, func(a, b string) int {
		if c := cmp.Compare(weights[b], weights[a]); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})

	if len(categories) > n {
		categories = categories[:n]
	}

	return categories
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
