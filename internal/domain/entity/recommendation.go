package entity

// ScoreBreakdown keeps each additive term of a recommendation score.
type ScoreBreakdown struct {
	Recency            float64 `json:"recency"`
	CategoryAffinity   float64 `json:"category_affinity"`
	PriceAffinity      float64 `json:"price_affinity"`
	Popularity         float64 `json:"popularity"`
	ViewFatigue        float64 `json:"view_fatigue"`
	FavoriteSimilarity float64 `json:"favorite_similarity"`
	Trending           float64 `json:"trending"`
}

// Total sums every term.
func (b ScoreBreakdown) Total() float64 {
	return b.Recency + b.CategoryAffinity + b.PriceAffinity + b.Popularity +
		b.ViewFatigue + b.FavoriteSimilarity + b.Trending
}

// ScoredEvent is an event ranked for one user. It is recomputed per request.
type ScoredEvent struct {
	Event               *Event         `json:"event"`
	RecommendationScore float64        `json:"recommendation_score"`
	Breakdown           ScoreBreakdown `json:"breakdown"`
}
