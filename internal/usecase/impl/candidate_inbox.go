package impl

import (
	"slices"
	"strings"
	"sync"
	"time"

	"eventpulse/config"
	"eventpulse/internal/domain/entity"
	"eventpulse/internal/usecase"

	"github.com/google/uuid"
)

type inboxEntry struct {
	candidate *entity.NotificationCandidate
	queuedAt  time.Time
}

// candidateInbox holds proximity and reminder candidates per user until they
// win an arbitration or expire. A tracking ID is queued at most once per user.
type candidateInbox struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[uuid.UUID]map[string]inboxEntry
	now     func() time.Time
}

// NewCandidateInbox creates an in-memory inbox whose entries expire after the configured TTL
func NewCandidateInbox(cfg *config.EngagementConfig) usecase.CandidateInbox {
	return newCandidateInbox(cfg.InboxTTL, time.Now)
}

func newCandidateInbox(ttl time.Duration, now func() time.Time) *candidateInbox {
	return &candidateInbox{
		ttl:     ttl,
		entries: make(map[uuid.UUID]map[string]inboxEntry),
		now:     now,
	}
}

func (b *candidateInbox) Push(userID uuid.UUID, candidate *entity.NotificationCandidate) {
	if candidate == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.put(userID, candidate, b.now())
}

// Pending returns the user's unexpired candidates ordered by tracking ID
func (b *candidateInbox) Pending(userID uuid.UUID) []*entity.NotificationCandidate {
	b.mu.Lock()
	defer b.mu.Unlock()

	queued := b.entries[userID]
	cutoff := b.now().Add(-b.ttl)

	pending := make([]*entity.NotificationCandidate, 0, len(queued))
	for trackingID, entry := range queued {
		if entry.queuedAt.Before(cutoff) {
			delete(queued, trackingID)

			continue
		}
		pending = append(pending, entry.candidate)
	}
	if len(queued) == 0 {
		delete(b.entries, userID)
	}

	slices.SortFunc(pending, func(a, c *entity.NotificationCandidate) int {
		return strings.Compare(a.TrackingID, c.TrackingID)
	})

	return pending
}

func (b *candidateInbox) Remove(userID uuid.UUID, trackingID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	queued, ok := b.entries[userID]
	if !ok {
		return
	}
	delete(queued, trackingID)
	if len(queued) == 0 {
		delete(b.entries, userID)
	}
}

func (b *candidateInbox) put(userID uuid.UUID, candidate *entity.NotificationCandidate, at time.Time) {
	queued, ok := b.entries[userID]
	if !ok {
		queued = make(map[string]inboxEntry)
		b.entries[userID] = queued
	}
	if _, exists := queued[candidate.TrackingID]; exists {
		return
	}
	queued[candidate.TrackingID] = inboxEntry{candidate: candidate, queuedAt: at}
}
