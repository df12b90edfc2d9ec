package entity

import (
	"time"

	domainerrors "eventpulse/internal/domain/errors"
)

// LifecycleStatus is the derived state of an event relative to wall-clock time.
// It is never persisted.
type LifecycleStatus string

const (
	LifecycleUpcoming LifecycleStatus = "upcoming"
	LifecycleOngoing  LifecycleStatus = "ongoing"
	LifecycleFinished LifecycleStatus = "finished"
	LifecycleArchived LifecycleStatus = "archived"
)

const (
	// OngoingWindow is how long after its start an event counts as ongoing.
	OngoingWindow = 4 * time.Hour
	// ArchiveAfter is the elapsed time after which a finished event is archived.
	ArchiveAfter = 6 * time.Hour
)

// rank orders the states along the only legal direction of travel.
func (s LifecycleStatus) rank() int {
	switch s {
	case LifecycleUpcoming:
		return 0
	case LifecycleOngoing:
		return 1
	case LifecycleFinished:
		return 2
	case LifecycleArchived:
		return 3
	default:
		return -1
	}
}

// Before reports whether s comes strictly earlier than other in the lifecycle.
func (s LifecycleStatus) Before(other LifecycleStatus) bool {
	return s.rank() < other.rank()
}

// ClassifyLifecycle maps an event start time to its status at now.
// A zero start time is rejected rather than defaulted.
func ClassifyLifecycle(start, now time.Time) (LifecycleStatus, error) {
	if start.IsZero() {
		return "", domainerrors.NewInvalidScheduleError("start time is missing")
	}

	elapsed := now.Sub(start)
	switch {
	case elapsed < 0:
		return LifecycleUpcoming, nil
	case elapsed < OngoingWindow:
		return LifecycleOngoing, nil
	case elapsed < ArchiveAfter:
		return LifecycleFinished, nil
	default:
		return LifecycleArchived, nil
	}
}

// ClassifyEvent validates the event schedule and classifies it at now.
func ClassifyEvent(event *Event, now time.Time) (LifecycleStatus, error) {
	if event == nil {
		return "", domainerrors.NewInvalidScheduleError("event is nil")
	}
	if !event.EndTime.IsZero() && !event.EndTime.After(event.StartTime) {
		return "", domainerrors.NewInvalidScheduleError("end time must be after start time")
	}

	return ClassifyLifecycle(event.StartTime, now)
}
