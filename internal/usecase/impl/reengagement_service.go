package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"eventpulse/config"
	"eventpulse/internal/domain/entity"
	domainerrors "eventpulse/internal/domain/errors"
	"eventpulse/internal/domain/lifecycle"
	"eventpulse/internal/domain/repository"
	"eventpulse/internal/domain/service"
	"eventpulse/internal/errors"
	"eventpulse/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type viewKey struct {
	userID  uuid.UUID
	eventID uuid.UUID
}

func (k viewKey) taskKey() string {
	return "reminder:" + k.userID.String() + ":" + k.eventID.String()
}

func (k viewKey) expiryKey() string {
	return "conversion:" + k.userID.String() + ":" + k.eventID.String()
}

type viewRecord struct {
	viewedAt time.Time
	// archivesAt is when the event stops accepting views
	archivesAt time.Time
}

type reengagementService struct {
	logger           *slog.Logger
	cfg              *config.EngagementConfig
	scheduler        service.TaskScheduler
	eventRepo        repository.EventRepository
	favoriteRepo     repository.FavoriteRepository
	registrationRepo repository.RegistrationRepository
	inbox            usecase.CandidateInbox
	metrics          service.EngagementMetrics
	now              func() time.Time

	mu        sync.Mutex
	views     map[viewKey]viewRecord
	converted map[viewKey]struct{}
}

// ReengagementServiceParams holds dependencies for ReengagementService, injected by Fx.
type ReengagementServiceParams struct {
	fx.In

	Logger           *slog.Logger
	Config           *config.EngagementConfig
	Scheduler        service.TaskScheduler
	EventRepo        repository.EventRepository
	FavoriteRepo     repository.FavoriteRepository
	RegistrationRepo repository.RegistrationRepository
	Inbox            usecase.CandidateInbox
	Metrics          service.EngagementMetrics
}

// NewReengagementService creates the re-engagement scheduler
func NewReengagementService(params ReengagementServiceParams) usecase.ReengagementUsecase {
	return &reengagementService{
		logger:           params.Logger,
		cfg:              params.Config,
		scheduler:        params.Scheduler,
		eventRepo:        params.EventRepo,
		favoriteRepo:     params.FavoriteRepo,
		registrationRepo: params.RegistrationRepo,
		inbox:            params.Inbox,
		metrics:          params.Metrics,
		now:              time.Now,
		views:            make(map[viewKey]viewRecord),
		converted:        make(map[viewKey]struct{}),
	}
}

func (s *reengagementService) TrackEventView(ctx context.Context, userID uuid.UUID, event *entity.Event) error {
	now := s.now()

	status, err := entity.ClassifyEvent(event, now)
	if err != nil {
		return err
	}
	if status == entity.LifecycleFinished || status == entity.LifecycleArchived {
		s.logger.DebugContext(ctx, "Not scheduling reminder for past event", slog.String("event_id", event.ID.String()))

		return nil
	}

	key := viewKey{userID: userID, eventID: event.ID}

	s.mu.Lock()
	if _, done := s.converted[key]; done {
		s.mu.Unlock()

		return nil
	}
	s.views[key] = viewRecord{viewedAt: now, archivesAt: event.StartTime.Add(entity.ArchiveAfter)}
	s.mu.Unlock()

	s.scheduler.Schedule(key.taskKey(), s.cfg.ReminderDelay, func() {
		s.fire(key, event)
	})

	return nil
}

func (s *reengagementService) TrackEventViewByID(ctx context.Context, userID, eventID uuid.UUID) error {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if errors.Is(err, repository.ErrEventNotFound) {
		return domainerrors.ErrEventNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find viewed event")
	}

	return s.TrackEventView(ctx, userID, event)
}

func (s *reengagementService) MarkAsRegistered(userID, eventID uuid.UUID) {
	s.convert(viewKey{userID: userID, eventID: eventID})
}

func (s *reengagementService) MarkAsFavorited(userID, eventID uuid.UUID) {
	s.convert(viewKey{userID: userID, eventID: eventID})
}

func (s *reengagementService) HasPendingReminder(userID, eventID uuid.UUID) bool {
	return s.scheduler.Pending(viewKey{userID: userID, eventID: eventID}.taskKey())
}

// convert suppresses every later reminder for a viewed pair. The in-memory
// mark lives until the event archives, when no view can reach it anymore; a
// pair converted without a view is left to the store check at fire time.
func (s *reengagementService) convert(key viewKey) {
	s.mu.Lock()
	record, viewed := s.views[key]
	if viewed {
		s.converted[key] = struct{}{}
		delete(s.views, key)
	}
	s.mu.Unlock()

	if viewed {
		s.scheduler.Schedule(key.expiryKey(), max(record.archivesAt.Sub(s.now()), 0), func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			delete(s.converted, key)
		})
	}

	if s.scheduler.Cancel(key.taskKey()) {
		s.logger.Debug("Pending reminder cancelled on conversion",
			slog.String("user_id", key.userID.String()),
			slog.String("event_id", key.eventID.String()),
		)
	}
}

// pending reports whether the pair still has an unconverted view on record
func (s *reengagementService) pending(key viewKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, done := s.converted[key]; done {
		return false
	}
	_, viewed := s.views[key]

	return viewed
}

func (s *reengagementService) fire(key viewKey, event *entity.Event) {
	if !s.pending(key) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	logger := s.logger.With(
		slog.String("user_id", key.userID.String()),
		slog.String("event_id", key.eventID.String()),
	)

	if status, err := entity.ClassifyEvent(event, s.now()); err != nil || status == entity.LifecycleArchived {
		s.forget(key)

		return
	}

	converted, err := s.isConverted(ctx, key)
	if err != nil {
		logger.WarnContext(ctx, "Skipping reminder, conversion check failed", slog.Any("error", err))

		return
	}
	if converted {
		s.convert(key)
		s.metrics.ReminderSuppressed()

		return
	}

	s.mu.Lock()
	if _, done := s.converted[key]; done {
		s.mu.Unlock()
		s.metrics.ReminderSuppressed()

		return
	}
	delete(s.views, key)
	s.mu.Unlock()

	s.inbox.Push(key.userID, entity.NewNotificationCandidate(
		entity.NotificationReminder,
		event,
		"Still interested?",
		fmt.Sprintf("You looked at %s, spots may run out", event.Title),
	))
	s.metrics.ReminderFired()

	logger.InfoContext(ctx, "Re-engagement reminder sent")
}

func (s *reengagementService) isConverted(ctx context.Context, key viewKey) (bool, error) {
	registered, err := s.registrationRepo.IsRegistered(ctx, key.userID, key.eventID)
	if err != nil {
		return false, domainerrors.NewDataSourceError("registrations", err)
	}
	if registered {
		return true, nil
	}

	favorited, err := s.favoriteRepo.IsFavorite(ctx, key.userID, key.eventID)
	if err != nil {
		return false, domainerrors.NewDataSourceError(usecase.SourceFavorites, err)
	}

	return favorited, nil
}

func (s *reengagementService) forget(key viewKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.views, key)
}
