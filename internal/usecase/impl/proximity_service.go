package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"eventpulse/config"
	"eventpulse/internal/domain/entity"
	domainerrors "eventpulse/internal/domain/errors"
	"eventpulse/internal/domain/repository"
	"eventpulse/internal/domain/service"
	"eventpulse/internal/errors"
	"eventpulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// proximitySession is the state of one watching session. Idle sessions have no entry.
type proximitySession struct {
	userID   uuid.UUID
	limiter  *rate.Limiter
	near     entity.EventIDSet
	notified entity.EventIDSet
}

type proximityService struct {
	logger    *slog.Logger
	cfg       *config.EngagementConfig
	eventRepo repository.EventRepository
	inbox     usecase.CandidateInbox
	metrics   service.EngagementMetrics
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*proximitySession
}

// ProximityServiceParams holds dependencies for ProximityService, injected by Fx.
type ProximityServiceParams struct {
	fx.In

	Logger    *slog.Logger
	Config    *config.EngagementConfig
	EventRepo repository.EventRepository
	Inbox     usecase.CandidateInbox
	Metrics   service.EngagementMetrics
}

// NewProximityService creates the proximity monitor
func NewProximityService(params ProximityServiceParams) usecase.ProximityUsecase {
	return &proximityService{
		logger:    params.Logger,
		cfg:       params.Config,
		eventRepo: params.EventRepo,
		inbox:     params.Inbox,
		metrics:   params.Metrics,
		now:       time.Now,
		sessions:  make(map[string]*proximitySession),
	}
}

// StartWatching checks ownership and creates the session under one lock, so
// two users racing for a session cannot both see it as theirs
func (s *proximityService) StartWatching(sessionID string, userID uuid.UUID) (*entity.ProximityState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, watching := s.sessions[sessionID]
	if watching && session.userID != userID {
		return nil, domainerrors.ErrSessionForbidden
	}

	if !watching {
		session = &proximitySession{
			userID:   userID,
			limiter:  rate.NewLimiter(rate.Every(s.cfg.ProximityInterval), 1),
			near:     entity.NewEventIDSet(),
			notified: entity.NewEventIDSet(),
		}
		s.sessions[sessionID] = session

		s.logger.Debug("Proximity watch started", slog.String("session_id", sessionID))
	}

	return session.state(sessionID), nil
}

func (s *proximityService) StopWatching(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)

	s.logger.Debug("Proximity watch stopped", slog.String("session_id", sessionID))
}

func (s *proximityService) UpdatePosition(
	ctx context.Context,
	sessionID string,
	position entity.Coordinate,
	events []*entity.Event,
	now time.Time,
) ([]*entity.NotificationCandidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, domainerrors.ErrSessionNotWatching
	}

	if !session.limiter.AllowN(now, 1) {
		return nil, nil
	}

	here := orb.Point{position.Lng, position.Lat}
	inRange := entity.NewEventIDSet()

	var alerts []*entity.NotificationCandidate
	for _, event := range events {
		if event == nil || event.Location == nil {
			continue
		}
		status, err := entity.ClassifyEvent(event, now)
		if err != nil || status == entity.LifecycleArchived || status == entity.LifecycleFinished {
			continue
		}

		distance := geo.DistanceHaversine(here, orb.Point{event.Location.Lng, event.Location.Lat})
		if distance > s.cfg.ProximityRadiusMeters {
			continue
		}

		inRange.Add(event.ID)
		if session.notified.Has(event.ID) {
			continue
		}

		session.notified.Add(event.ID)
		alerts = append(alerts, entity.NewNotificationCandidate(
			entity.NotificationProximity,
			event,
			"Nearby",
			fmt.Sprintf("%s is %.0f m away", event.Title, distance),
		))
	}

	// Leaving the radius retires the near entry; notified entries stay for the session
	session.near = inRange

	slices.SortStableFunc(alerts, func(a, b *entity.NotificationCandidate) int {
		return cmp.Compare(a.TrackingID, b.TrackingID)
	})

	for _, alert := range alerts {
		s.inbox.Push(session.userID, alert)
		s.metrics.ProximityAlert()
		s.logger.InfoContext(ctx, "Proximity alert raised",
			slog.String("session_id", sessionID),
			slog.String("event_id", alert.Event.ID.String()),
		)
	}

	return alerts, nil
}

func (s *proximityService) State(sessionID string) *entity.ProximityState {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return &entity.ProximityState{SessionID: sessionID, Near: []uuid.UUID{}, Notified: []uuid.UUID{}}
	}

	return session.state(sessionID)
}

// state snapshots a watching session; callers hold the service lock
func (p *proximitySession) state(sessionID string) *entity.ProximityState {
	return &entity.ProximityState{
		SessionID: sessionID,
		UserID:    p.userID,
		Watching:  true,
		Near:      sortedIDs(p.near),
		Notified:  sortedIDs(p.notified),
	}
}

// TrackPosition reads located events that are upcoming or ongoing and feeds them to UpdatePosition
func (s *proximityService) TrackPosition(ctx context.Context, sessionID string, position entity.Coordinate) ([]*entity.NotificationCandidate, error) {
	if !s.watching(sessionID) {
		return nil, domainerrors.ErrSessionNotWatching
	}

	now := s.now()
	startsAfter := now.Add(-entity.OngoingWindow)
	events, err := s.eventRepo.FindEvents(ctx, repository.EventFilter{
		StartsAfter:  &startsAfter,
		WithLocation: true,
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.NewDataSourceError(usecase.SourceEvents, err), "failed to load located events")
	}

	return s.UpdatePosition(ctx, sessionID, position, events, now)
}

func (s *proximityService) watching(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[sessionID]

	return ok
}

func sortedIDs(set entity.EventIDSet) []uuid.UUID {
	ids := slices.Collect(maps.Keys(set))
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return cmp.Compare(a.String(), b.String())
	})

	return ids
}
