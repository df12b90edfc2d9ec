package postgres

import (
	"strings"

	"eventpulse/internal/domain/entity"
	"eventpulse/internal/infra/persistence/model"
)

// toEventDomain normalises a stored event. A missing start time is kept as the
// zero time so the lifecycle classifier rejects the event; a missing end time
// is left zero and derived from the start downstream.
func toEventDomain(m *model.EventModel) *entity.Event {
	event := &entity.Event{
		ID:        m.ID,
		Title:     m.Title,
		Category:  categoryName(m),
		Price:     m.Price,
		Capacity:  m.Capacity,
		CreatedAt: m.CreatedAt,
	}
	if m.StartTime != nil {
		event.StartTime = *m.StartTime
	}
	if m.EndTime != nil {
		event.EndTime = *m.EndTime
	}
	if m.Latitude != nil && m.Longitude != nil {
		event.Location = &entity.Coordinate{Lat: *m.Latitude, Lng: *m.Longitude}
	}

	return event
}

func categoryName(m *model.EventModel) string {
	if m.Category != nil && m.Category.Name != "" {
		return strings.TrimSpace(m.Category.Name)
	}

	return strings.TrimSpace(m.CategoryName)
}

func toInteractionDomain(m *model.InteractionModel) *entity.Interaction {
	return &entity.Interaction{
		UserID:          m.UserID,
		EventID:         m.EventID,
		Type:            entity.InteractionType(m.InteractionType),
		EventCategory:   m.EventCategory,
		OccurredAt:      m.CreatedAt,
		DurationSeconds: m.DurationSeconds,
	}
}

func toTrendingScoreDomain(m *model.EventPopularityModel) *entity.TrendingScore {
	return &entity.TrendingScore{
		EventID: m.EventID,
		Score:   m.TrendingScore,
	}
}
