package impl

import (
	"io"
	"log/slog"
	"time"

	"eventpulse/config"
	"eventpulse/internal/domain/entity"
	mockSvc "eventpulse/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, 6, 12, 18, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngagementConfig() *config.EngagementConfig {
	return config.DefaultEngagementConfig()
}

// newQuietMetrics accepts any metric call
func newQuietMetrics(t mock.TestingT) *mockSvc.MockEngagementMetrics {
	m := &mockSvc.MockEngagementMetrics{}
	m.Test(t)
	m.EXPECT().NotificationSelected(mock.Anything).Return().Maybe()
	m.EXPECT().SourceFailed(mock.Anything).Return().Maybe()
	m.EXPECT().ProximityAlert().Return().Maybe()
	m.EXPECT().ReminderFired().Return().Maybe()
	m.EXPECT().ReminderSuppressed().Return().Maybe()
	m.EXPECT().HistoryPruned(mock.Anything).Return().Maybe()

	return m
}

type eventOption func(*entity.Event)

func withCategory(category string) eventOption {
	return func(e *entity.Event) { e.Category = category }
}

func withPrice(price float64) eventOption {
	return func(e *entity.Event) { e.Price = price }
}

func withCreatedAt(t time.Time) eventOption {
	return func(e *entity.Event) { e.CreatedAt = t }
}

func withLocation(lat, lng float64) eventOption {
	return func(e *entity.Event) { e.Location = &entity.Coordinate{Lat: lat, Lng: lng} }
}

func withID(id string) eventOption {
	return func(e *entity.Event) { e.ID = uuid.MustParse(id) }
}

// newEvent builds a valid event starting at start. It defaults to an
// uncategorised, expensive event published long ago so that no bonus applies
// unless asked for.
func newEvent(title string, start time.Time, opts ...eventOption) *entity.Event {
	e := &entity.Event{
		ID:        uuid.New(),
		Title:     title,
		Price:     100,
		StartTime: start,
		EndTime:   start.Add(entity.DefaultEventDuration),
		CreatedAt: start.Add(-60 * 24 * time.Hour),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

func interactionsOf(userID uuid.UUID, t entity.InteractionType, category string, n int) []*entity.Interaction {
	records := make([]*entity.Interaction, n)
	for i := range records {
		records[i] = &entity.Interaction{
			UserID:        userID,
			EventID:       uuid.New(),
			Type:          t,
			EventCategory: category,
			OccurredAt:    testNow.Add(-time.Duration(i+1) * time.Minute),
		}
	}

	return records
}
