package postgres

import (
	"testing"
	"time"

	"eventpulse/internal/domain/entity"
	"eventpulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestToEventDomain(t *testing.T) {
	start := time.Date(2026, 6, 12, 20, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	lat, lng := 25.033, 121.565

	tests := []struct {
		name  string
		model *model.EventModel
		check func(t *testing.T, event *entity.Event)
	}{
		{
			name: "nested category wins over flat column",
			model: &model.EventModel{
				StartTime:    &start,
				Category:     &model.CategoryModel{Name: " Music "},
				CategoryName: "legacy",
			},
			check: func(t *testing.T, event *entity.Event) {
				assert.Equal(t, "Music", event.Category)
			},
		},
		{
			name:  "flat category used when no reference",
			model: &model.EventModel{StartTime: &start, CategoryName: "Sports"},
			check: func(t *testing.T, event *entity.Event) {
				assert.Equal(t, "Sports", event.Category)
			},
		},
		{
			name:  "missing end time derives from start",
			model: &model.EventModel{StartTime: &start},
			check: func(t *testing.T, event *entity.Event) {
				assert.True(t, event.EndTime.IsZero())
				assert.Equal(t, start.Add(entity.DefaultEventDuration), event.EffectiveEndTime())
			},
		},
		{
			name:  "missing start stays zero",
			model: &model.EventModel{EndTime: &end},
			check: func(t *testing.T, event *entity.Event) {
				assert.True(t, event.StartTime.IsZero())
			},
		},
		{
			name:  "location needs both coordinates",
			model: &model.EventModel{StartTime: &start, Latitude: &lat},
			check: func(t *testing.T, event *entity.Event) {
				assert.Nil(t, event.Location)
			},
		},
		{
			name:  "full location",
			model: &model.EventModel{StartTime: &start, EndTime: &end, Latitude: &lat, Longitude: &lng},
			check: func(t *testing.T, event *entity.Event) {
				assert.Equal(t, &entity.Coordinate{Lat: lat, Lng: lng}, event.Location)
				assert.Equal(t, end, event.EndTime)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.model.ID = uuid.New()
			event := toEventDomain(tt.model)
			assert.Equal(t, tt.model.ID, event.ID)
			tt.check(t, event)
		})
	}
}

func TestToInteractionDomain(t *testing.T) {
	duration := 42
	m := &model.InteractionModel{
		UserID:          uuid.New(),
		EventID:         uuid.New(),
		InteractionType: "share",
		EventCategory:   "Music",
		DurationSeconds: &duration,
		CreatedAt:       time.Date(2026, 6, 12, 18, 0, 0, 0, time.UTC),
	}

	interaction := toInteractionDomain(m)

	assert.Equal(t, entity.InteractionShare, interaction.Type)
	assert.Equal(t, m.CreatedAt, interaction.OccurredAt)
	assert.Equal(t, &duration, interaction.DurationSeconds)
}
