package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"eventpulse/config"
	"eventpulse/internal/domain/entity"
	domainerrors "eventpulse/internal/domain/errors"
	"eventpulse/internal/domain/repository"
	"eventpulse/internal/domain/service"
	"eventpulse/internal/errors"
	"eventpulse/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	// expiringSoonUntil closes the expiring-soon window, which opens when the event finishes
	expiringSoonUntil = 5*time.Hour + 30*time.Minute

	upcomingFavoriteFrom  = 2 * time.Hour
	upcomingFavoriteUntil = 24 * time.Hour

	newInCategoryMaxAge = 24 * time.Hour
	preferredCategories = 3
)

// candidateSource produces the eligible events of one signal in preference order
type candidateSource struct {
	notificationType entity.NotificationType
	dependsOn        []string
	eligible         func(snap *snapshot) []*entity.Event
}

// snapshot is one arbitration's view of the world
type snapshot struct {
	input      usecase.SelectionInput
	classified []classifiedEvent
	favorites  entity.EventIDSet

	// catalog is Events joined with the extra catalog events
	catalog []*entity.Event
}

type notificationService struct {
	logger          *slog.Logger
	cfg             *config.EngagementConfig
	scorer          scorer
	classifier      *lifecycleClassifier
	history         repository.ShownHistoryStore
	eventRepo       repository.EventRepository
	interactionRepo repository.InteractionRepository
	favoriteRepo    repository.FavoriteRepository
	popularityRepo  repository.PopularityRepository
	inbox           usecase.CandidateInbox
	emitter         service.NotificationEmitter
	metrics         service.EngagementMetrics
	guard           *sourceGuard
	sources         []candidateSource
	now             func() time.Time
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	Logger          *slog.Logger
	Config          *config.EngagementConfig
	History         repository.ShownHistoryStore
	EventRepo       repository.EventRepository
	InteractionRepo repository.InteractionRepository
	FavoriteRepo    repository.FavoriteRepository
	PopularityRepo  repository.PopularityRepository
	Inbox           usecase.CandidateInbox
	Emitter         service.NotificationEmitter
	Metrics         service.EngagementMetrics
}

// NewNotificationService creates the notification arbiter
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	s := &notificationService{
		logger:          params.Logger,
		cfg:             params.Config,
		scorer:          scorer{lowPrice: params.Config.LowPriceThreshold, midPrice: params.Config.MidPriceThreshold},
		classifier:      newLifecycleClassifier(params.Logger),
		history:         params.History,
		eventRepo:       params.EventRepo,
		interactionRepo: params.InteractionRepo,
		favoriteRepo:    params.FavoriteRepo,
		popularityRepo:  params.PopularityRepo,
		inbox:           params.Inbox,
		emitter:         params.Emitter,
		metrics:         params.Metrics,
		guard: newSourceGuard(params.Config, params.Logger,
			usecase.SourceEvents,
			usecase.SourceInteractions,
			usecase.SourceFavorites,
			usecase.SourcePopularity,
			usecase.SourceInteractionCounts,
			usecase.SourceCatalog,
		),
		now: time.Now,
	}
	s.sources = s.candidateSources()

	return s
}

func (s *notificationService) candidateSources() []candidateSource {
	return []candidateSource{
		{
			notificationType: entity.NotificationStartingNow,
			dependsOn:        []string{usecase.SourceEvents, usecase.SourceFavorites},
			eligible:         startingNowEvents,
		},
		{
			notificationType: entity.NotificationExpiringSoon,
			dependsOn:        []string{usecase.SourceEvents},
			eligible:         expiringSoonEvents,
		},
		{
			notificationType: entity.NotificationUpcomingFavorite,
			dependsOn:        []string{usecase.SourceEvents, usecase.SourceFavorites},
			eligible:         upcomingFavoriteEvents,
		},
		{
			notificationType: entity.NotificationNewInCategory,
			dependsOn:        []string{usecase.SourceEvents, usecase.SourceInteractions},
			eligible:         newInCategoryEvents,
		},
		{
			notificationType: entity.NotificationTrending,
			dependsOn:        []string{usecase.SourceEvents, usecase.SourcePopularity, usecase.SourceFavorites},
			eligible:         s.trendingEvents,
		},
		{
			notificationType: entity.NotificationPersonalized,
			dependsOn:        []string{usecase.SourceEvents, usecase.SourceInteractions, usecase.SourceFavorites},
			eligible:         s.personalizedEvents,
		},
	}
}

// SelectNotification runs one arbitration over the snapshot. Each source
// offers its first event not shown within the history TTL; the candidates are
// ranked by priority and the first one whose history record can be claimed
// wins. The fallback source only runs when nothing else could be claimed.
func (s *notificationService) SelectNotification(ctx context.Context, input usecase.SelectionInput) (*entity.NotificationCandidate, error) {
	snap := &snapshot{
		input:      input,
		classified: s.classifier.classify(input.Events, input.Now),
		favorites:  input.Favorites,
		catalog:    withCatalog(input.Events, input.Catalog),
	}
	if snap.favorites == nil {
		snap.favorites = entity.NewEventIDSet()
	}

	cutoff := input.Now.Add(-s.cfg.HistoryTTL)
	shown := func(trackingID string) bool {
		return s.wasShown(ctx, input.UserID, trackingID, cutoff)
	}

	candidates := make([]*entity.NotificationCandidate, 0, len(s.sources)+len(input.Extra))
	for _, source := range s.sources {
		if failed := s.failedDependency(ctx, source, input.Failures); failed {
			continue
		}

		for _, event := range source.eligible(snap) {
			if !shown(entity.TrackingID(source.notificationType, event.ID)) {
				candidates = append(candidates, newCandidate(source.notificationType, event))

				break
			}
		}
	}

	for _, extra := range input.Extra {
		if extra != nil && !shown(extra.TrackingID) {
			candidates = append(candidates, extra)
		}
	}

	winner, err := s.claimFirst(ctx, input, candidates, cutoff)
	if err != nil || winner != nil {
		return winner, err
	}

	if input.Failures[usecase.SourceEvents] != nil {
		return nil, nil
	}

	fallbacks := make([]*entity.NotificationCandidate, 0)
	for _, event := range fallbackEvents(snap) {
		trackingID := entity.TrackingID(entity.NotificationFallback, event.ID)
		if !shown(trackingID) {
			fallbacks = append(fallbacks, newCandidate(entity.NotificationFallback, event))
		}
	}

	return s.claimFirst(ctx, input, fallbacks, cutoff)
}

// claimFirst sorts candidates by priority, then tracking ID, and records the
// first one nobody else has claimed
func (s *notificationService) claimFirst(ctx context.Context, input usecase.SelectionInput, candidates []*entity.NotificationCandidate, cutoff time.Time) (*entity.NotificationCandidate, error) {
	slices.SortStableFunc(candidates, compareCandidates)

	for _, candidate := range candidates {
		claimed, err := s.history.Claim(ctx, input.UserID, candidate.TrackingID, input.Now, cutoff)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrHistoryUnavailable.WithDetails(err.Error()), "failed to record shown notification")
		}
		if !claimed {
			s.logger.DebugContext(ctx, "Candidate claimed concurrently",
				slog.String("tracking_id", candidate.TrackingID))

			continue
		}

		s.metrics.NotificationSelected(string(candidate.Type))

		return candidate, nil
	}

	return nil, nil
}

func compareCandidates(a, b *entity.NotificationCandidate) int {
	if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
		return c
	}

	return cmp.Compare(a.TrackingID, b.TrackingID)
}

// wasShown treats an unreadable record as unshown; the claim settles it
func (s *notificationService) wasShown(ctx context.Context, userID uuid.UUID, trackingID string, cutoff time.Time) bool {
	shownAt, found, err := s.history.Get(ctx, userID, trackingID)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to read shown history",
			slog.String("tracking_id", trackingID),
			slog.Any("error", err),
		)

		return false
	}

	return found && !shownAt.Before(cutoff)
}

func (s *notificationService) failedDependency(ctx context.Context, source candidateSource, failures map[string]error) bool {
	for _, dep := range source.dependsOn {
		err, failed := failures[dep]
		if !failed || err == nil {
			continue
		}

		var dsErr *domainerrors.DataSourceError
		if !errors.As(err, &dsErr) {
			dsErr = domainerrors.NewDataSourceError(dep, err)
		}
		s.logger.WarnContext(ctx, "Candidate source degraded",
			slog.String("notification_type", string(source.notificationType)),
			slog.String("source", dsErr.Source()),
			slog.Any("error", dsErr),
		)

		return true
	}

	return false
}

// EvaluateForUser gathers a snapshot behind the source breakers, prunes the
// history, arbitrates and emits the winner
func (s *notificationService) EvaluateForUser(ctx context.Context, userID uuid.UUID) (*entity.NotificationCandidate, error) {
	now := s.now()

	if _, err := s.pruneHistory(ctx, now); err != nil {
		s.logger.WarnContext(ctx, "Failed to prune shown history", slog.Any("error", err))
	}

	input := s.gatherSnapshot(ctx, userID, now)

	candidate, err := s.SelectNotification(ctx, input)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		s.logger.DebugContext(ctx, "No notification candidate available", slog.String("user_id", userID.String()))

		return nil, nil
	}

	s.inbox.Remove(userID, candidate.TrackingID)

	if err := s.emitter.Emit(ctx, userID, candidate); err != nil {
		s.logger.WarnContext(ctx, "Failed to emit notification",
			slog.String("tracking_id", candidate.TrackingID),
			slog.Any("error", err),
		)
	}

	s.logger.InfoContext(ctx, "Notification selected",
		slog.String("user_id", userID.String()),
		slog.String("tracking_id", candidate.TrackingID),
		slog.Int("priority", candidate.Priority),
	)

	return candidate, nil
}

func (s *notificationService) gatherSnapshot(ctx context.Context, userID uuid.UUID, now time.Time) usecase.SelectionInput {
	input := usecase.SelectionInput{
		UserID:   userID,
		Now:      now,
		Extra:    s.inbox.Pending(userID),
		Failures: make(map[string]error),
	}

	record := func(source string, err error) {
		input.Failures[source] = err
		s.metrics.SourceFailed(source)
	}

	var err error

	// Archived events can never produce a candidate, so the read starts at the archive horizon
	startsAfter := now.Add(-entity.ArchiveAfter)
	input.Events, err = guardedFetch(s.guard, usecase.SourceEvents, func() ([]*entity.Event, error) {
		return s.eventRepo.FindEvents(ctx, repository.EventFilter{StartsAfter: &startsAfter})
	})
	if err != nil {
		record(usecase.SourceEvents, err)
	}

	input.Interactions, err = guardedFetch(s.guard, usecase.SourceInteractions, func() ([]*entity.Interaction, error) {
		return s.interactionRepo.FindRecentByUser(ctx, userID, s.cfg.InteractionWindow)
	})
	if err != nil {
		record(usecase.SourceInteractions, err)
	}

	input.Favorites, err = guardedFetch(s.guard, usecase.SourceFavorites, func() (entity.EventIDSet, error) {
		return s.favoriteRepo.FindFavoriteEventIDs(ctx, userID)
	})
	if err != nil {
		record(usecase.SourceFavorites, err)
	}

	input.TrendingScores, err = guardedFetch(s.guard, usecase.SourcePopularity, func() ([]*entity.TrendingScore, error) {
		return s.popularityRepo.FindTrendingScores(ctx)
	})
	if err != nil {
		record(usecase.SourcePopularity, err)
	}

	if input.Failures[usecase.SourceEvents] == nil {
		input.Catalog, err = guardedFetch(s.guard, usecase.SourceCatalog, func() ([]*entity.Event, error) {
			return loadCatalogExtras(ctx, s.eventRepo, input.Events, input.Interactions, input.Favorites)
		})
		if err != nil {
			// Scoring and category preferences fall back to the events read
			record(usecase.SourceCatalog, err)
		}
	}

	if len(input.Events) > 0 {
		input.InteractionCounts, err = guardedFetch(s.guard, usecase.SourceInteractionCounts, func() (map[uuid.UUID]int, error) {
			return s.interactionRepo.CountByEvent(ctx, eventIDs(input.Events))
		})
		if err != nil {
			// Scoring falls back to counting the interaction window
			record(usecase.SourceInteractionCounts, err)
		}
	}

	return input
}

func (s *notificationService) PruneHistory(ctx context.Context) (int, error) {
	return s.pruneHistory(ctx, s.now())
}

func (s *notificationService) pruneHistory(ctx context.Context, now time.Time) (int, error) {
	pruned, err := s.history.PruneOlderThan(ctx, now.Add(-s.cfg.HistoryTTL))
	if err != nil {
		return 0, errors.Wrap(err, "failed to prune shown history")
	}
	s.metrics.HistoryPruned(pruned)

	return pruned, nil
}

// startingNowEvents are favorited ongoing events, most recently started first
func startingNowEvents(snap *snapshot) []*entity.Event {
	var events []*entity.Event
	for _, c := range snap.classified {
		if c.status == entity.LifecycleOngoing && snap.favorites.Has(c.event.ID) {
			events = append(events, c.event)
		}
	}

	slices.SortStableFunc(events, func(a, b *entity.Event) int {
		return byTimeThenID(b.StartTime, a.StartTime, a, b)
	})

	return events
}

// expiringSoonEvents are finished events still inside the expiring window, closest to archival first
func expiringSoonEvents(snap *snapshot) []*entity.Event {
	var events []*entity.Event
	for _, c := range snap.classified {
		if c.status == entity.LifecycleFinished && snap.input.Now.Sub(c.event.StartTime) < expiringSoonUntil {
			events = append(events, c.event)
		}
	}

	slices.SortStableFunc(events, func(a, b *entity.Event) int {
		return byTimeThenID(a.StartTime, b.StartTime, a, b)
	})

	return events
}

// upcomingFavoriteEvents are favorited events starting in (2h, 24h), soonest first
func upcomingFavoriteEvents(snap *snapshot) []*entity.Event {
	var events []*entity.Event
	for _, c := range snap.classified {
		if c.status != entity.LifecycleUpcoming || !snap.favorites.Has(c.event.ID) {
			continue
		}
		until := c.event.StartTime.Sub(snap.input.Now)
		if until > upcomingFavoriteFrom && until < upcomingFavoriteUntil {
			events = append(events, c.event)
		}
	}

	slices.SortStableFunc(events, func(a, b *entity.Event) int {
		return byTimeThenID(a.StartTime, b.StartTime, a, b)
	})

	return events
}

// newInCategoryEvents are events published in the last day in one of the
// user's top categories, newest first
func newInCategoryEvents(snap *snapshot) []*entity.Event {
	index := indexEvents(snap.catalog)
	top := topCategories(categoryWeights(snap.input.Interactions, index), preferredCategories)
	if len(top) == 0 {
		return nil
	}

	var events []*entity.Event
	for _, c := range inStatus(snap.classified, entity.LifecycleUpcoming, entity.LifecycleOngoing) {
		age := snap.input.Now.Sub(c.event.CreatedAt)
		if c.event.CreatedAt.IsZero() || age < 0 || age > newInCategoryMaxAge {
			continue
		}
		if slices.Contains(top, c.event.Category) {
			events = append(events, c.event)
		}
	}

	slices.SortStableFunc(events, func(a, b *entity.Event) int {
		return byTimeThenID(b.CreatedAt, a.CreatedAt, a, b)
	})

	return events
}

// trendingEvents are non-favorited events above the trending threshold, hottest first
func (s *notificationService) trendingEvents(snap *snapshot) []*entity.Event {
	index := make(map[uuid.UUID]*entity.Event, len(snap.classified))
	for _, c := range active(snap.classified) {
		index[c.event.ID] = c.event
	}

	scores := slices.Clone(snap.input.TrendingScores)
	slices.SortStableFunc(scores, func(a, b *entity.TrendingScore) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.EventID.String(), b.EventID.String())
	})

	var events []*entity.Event
	for _, score := range scores {
		if score == nil || score.Score <= s.cfg.TrendingThreshold || snap.favorites.Has(score.EventID) {
			continue
		}
		if event, ok := index[score.EventID]; ok {
			events = append(events, event)
		}
	}

	return events
}

// personalizedEvents are the scorer's ranking of non-favorited upcoming and
// ongoing events that reach the minimum score
func (s *notificationService) personalizedEvents(snap *snapshot) []*entity.Event {
	candidates := make([]*entity.Event, 0, len(snap.classified))
	for _, c := range inStatus(snap.classified, entity.LifecycleUpcoming, entity.LifecycleOngoing) {
		if !snap.favorites.Has(c.event.ID) {
			candidates = append(candidates, c.event)
		}
	}

	counts := snap.input.InteractionCounts
	if snap.input.Failures[usecase.SourceInteractionCounts] != nil {
		counts = nil
	}

	scored := s.scorer.score(usecase.ScoreInput{
		UserID:            snap.input.UserID,
		Candidates:        candidates,
		Catalog:           snap.catalog,
		Interactions:      snap.input.Interactions,
		Favorites:         snap.favorites,
		InteractionCounts: counts,
		Now:               snap.input.Now,
	})

	var events []*entity.Event
	for _, se := range scored {
		if se.RecommendationScore < s.cfg.PersonalizedMinScore {
			break
		}
		events = append(events, se.Event)
	}

	return events
}

// fallbackEvents are upcoming events, soonest first
func fallbackEvents(snap *snapshot) []*entity.Event {
	events := eventsOf(inStatus(snap.classified, entity.LifecycleUpcoming))
	slices.SortStableFunc(events, func(a, b *entity.Event) int {
		return byTimeThenID(a.StartTime, b.StartTime, a, b)
	})

	return events
}

// byTimeThenID compares x and y ascending, breaking ties by event id
func byTimeThenID(x, y time.Time, a, b *entity.Event) int {
	if c := x.Compare(y); c != 0 {
		return c
	}

	return cmp.Compare(a.ID.String(), b.ID.String())
}

func newCandidate(t entity.NotificationType, event *entity.Event) *entity.NotificationCandidate {
	var title, message string

	switch t {
	case entity.NotificationStartingNow:
		title = "Starting now"
		message = fmt.Sprintf("%s has just started", event.Title)
	case entity.NotificationExpiringSoon:
		title = "Last chance"
		message = fmt.Sprintf("%s is wrapping up soon", event.Title)
	case entity.NotificationUpcomingFavorite:
		title = "Coming up"
		message = fmt.Sprintf("%s starts at %s", event.Title, event.StartTime.Format(time.Kitchen))
	case entity.NotificationNewInCategory:
		title = "New in " + event.Category
		message = fmt.Sprintf("%s was just published", event.Title)
	case entity.NotificationTrending:
		title = "Trending"
		message = fmt.Sprintf("%s is popular right now", event.Title)
	case entity.NotificationPersonalized:
		title = "Picked for you"
		message = fmt.Sprintf("You might like %s", event.Title)
	default:
		title = "Discover"
		message = fmt.Sprintf("Check out %s", event.Title)
	}

	return entity.NewNotificationCandidate(t, event, title, message)
}
