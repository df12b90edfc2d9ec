package impl

import (
	"log/slog"
	"slices"
	"time"

	"eventpulse/internal/domain/entity"
)

// classifiedEvent pairs an event with its status at evaluation time
type classifiedEvent struct {
	event  *entity.Event
	status entity.LifecycleStatus
}

// lifecycleClassifier classifies event batches. An event with an invalid
// schedule is logged and left out; the rest of the batch is unaffected.
type lifecycleClassifier struct {
	logger *slog.Logger
}

func newLifecycleClassifier(logger *slog.Logger) *lifecycleClassifier {
	return &lifecycleClassifier{logger: logger}
}

// classify returns every valid event with its status, in input order
func (c *lifecycleClassifier) classify(events []*entity.Event, now time.Time) []classifiedEvent {
	classified := make([]classifiedEvent, 0, len(events))
	for _, event := range events {
		status, err := entity.ClassifyEvent(event, now)
		if err != nil {
			attrs := []any{slog.Any("error", err)}
			if event != nil {
				attrs = append(attrs, slog.String("event_id", event.ID.String()))
			}
			c.logger.Warn("Skipping event with invalid schedule", attrs...)

			continue
		}
		classified = append(classified, classifiedEvent{event: event, status: status})
	}

	return classified
}

// active drops archived events
func active(classified []classifiedEvent) []classifiedEvent {
	kept := make([]classifiedEvent, 0, len(classified))
	for _, c := range classified {
		if c.status != entity.LifecycleArchived {
			kept = append(kept, c)
		}
	}

	return kept
}

// inStatus keeps events whose status is one of statuses
func inStatus(classified []classifiedEvent, statuses ...entity.LifecycleStatus) []classifiedEvent {
	kept := make([]classifiedEvent, 0, len(classified))
	for _, c := range classified {
		if slices.Contains(statuses, c.status) {
			kept = append(kept, c)
		}
	}

	return kept
}

func eventsOf(classified []classifiedEvent) []*entity.Event {
	events := make([]*entity.Event, len(classified))
	for i, c := range classified {
		events[i] = c.event
	}

	return events
}
