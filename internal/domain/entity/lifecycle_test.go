package entity

import (
	"testing"
	"time"

	domainerrors "eventpulse/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLifecycle(t *testing.T) {
	now := time.Date(2026, 6, 12, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		want  LifecycleStatus
	}{
		{name: "starts in an hour", start: now.Add(time.Hour), want: LifecycleUpcoming},
		{name: "starts right now", start: now, want: LifecycleOngoing},
		{name: "started an hour ago", start: now.Add(-time.Hour), want: LifecycleOngoing},
		{name: "four hours ago", start: now.Add(-4 * time.Hour), want: LifecycleFinished},
		{name: "five hours ago", start: now.Add(-5 * time.Hour), want: LifecycleFinished},
		{name: "six hours ago", start: now.Add(-6 * time.Hour), want: LifecycleArchived},
		{name: "seven hours ago", start: now.Add(-7 * time.Hour), want: LifecycleArchived},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifyLifecycle(tt.start, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyLifecycle_MonotonicOverTime(t *testing.T) {
	start := time.Date(2026, 6, 12, 18, 0, 0, 0, time.UTC)

	prev := LifecycleUpcoming
	for offset := -2 * time.Hour; offset <= 8*time.Hour; offset += 7 * time.Minute {
		got, err := ClassifyLifecycle(start, start.Add(offset))
		require.NoError(t, err)
		assert.False(t, got.Before(prev), "%s went back to %s at %v", prev, got, offset)
		prev = got
	}
	assert.Equal(t, LifecycleArchived, prev)
}

func TestClassifyLifecycle_MissingStart(t *testing.T) {
	_, err := ClassifyLifecycle(time.Time{}, time.Now())

	var scheduleErr *domainerrors.InvalidScheduleError
	require.ErrorAs(t, err, &scheduleErr)
	assert.Equal(t, "INVALID_SCHEDULE", scheduleErr.ErrorCode())
}

func TestClassifyEvent(t *testing.T) {
	now := time.Date(2026, 6, 12, 18, 0, 0, 0, time.UTC)

	_, err := ClassifyEvent(nil, now)
	assert.Error(t, err)

	inverted := &Event{ID: uuid.New(), StartTime: now, EndTime: now.Add(-time.Minute)}
	_, err = ClassifyEvent(inverted, now)
	assert.Error(t, err)

	open := &Event{ID: uuid.New(), StartTime: now.Add(-time.Hour)}
	got, err := ClassifyEvent(open, now)
	require.NoError(t, err)
	assert.Equal(t, LifecycleOngoing, got)
	assert.Equal(t, open.StartTime.Add(DefaultEventDuration), open.EffectiveEndTime())
}

func TestTrackingID(t *testing.T) {
	id := uuid.MustParse("6f1f1c1e-8d7b-4c57-9a53-3f1f0d6c2b11")
	event := &Event{ID: id, Title: "Jazz"}

	candidate := NewNotificationCandidate(NotificationTrending, event, "Trending", "hot")

	assert.Equal(t, "trending_6f1f1c1e-8d7b-4c57-9a53-3f1f0d6c2b11", candidate.TrackingID)
	assert.Equal(t, 5, candidate.Priority)
	assert.Equal(t, candidate.TrackingID, TrackingID(NotificationTrending, id))
}
