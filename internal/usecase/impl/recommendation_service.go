package impl

import (
	"context"
	"log/slog"
	"time"

	"eventpulse/config"
	"eventpulse/internal/domain/entity"
	"eventpulse/internal/domain/repository"
	"eventpulse/internal/errors"
	"eventpulse/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultRecommendationLimit = 20
	maxRecommendationLimit     = 100
)

type recommendationService struct {
	logger          *slog.Logger
	scorer          scorer
	classifier      *lifecycleClassifier
	cfg             *config.EngagementConfig
	eventRepo       repository.EventRepository
	interactionRepo repository.InteractionRepository
	favoriteRepo    repository.FavoriteRepository
	now             func() time.Time
}

// RecommendationServiceParams holds dependencies for RecommendationService, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	Logger          *slog.Logger
	Config          *config.EngagementConfig
	EventRepo       repository.EventRepository
	InteractionRepo repository.InteractionRepository
	FavoriteRepo    repository.FavoriteRepository
}

// NewRecommendationService creates the recommendation scorer
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	return &recommendationService{
		logger:          params.Logger,
		scorer:          scorer{lowPrice: params.Config.LowPriceThreshold, midPrice: params.Config.MidPriceThreshold},
		classifier:      newLifecycleClassifier(params.Logger),
		cfg:             params.Config,
		eventRepo:       params.EventRepo,
		interactionRepo: params.InteractionRepo,
		favoriteRepo:    params.FavoriteRepo,
		now:             time.Now,
	}
}

func (s *recommendationService) Score(input usecase.ScoreInput) []*entity.ScoredEvent {
	return s.scorer.score(input)
}

// Recommend ranks the upcoming and ongoing events of the store for the user.
// Missing interactions or favorites only weaken the ranking; a failing event
// read fails the call.
func (s *recommendationService) Recommend(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ScoredEvent, error) {
	switch {
	case limit <= 0:
		limit = defaultRecommendationLimit
	case limit > maxRecommendationLimit:
		limit = maxRecommendationLimit
	}

	now := s.now()
	startsAfter := now.Add(-entity.OngoingWindow)

	events, err := s.eventRepo.FindEvents(ctx, repository.EventFilter{StartsAfter: &startsAfter})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find candidate events")
	}

	interactions, err := s.interactionRepo.FindRecentByUser(ctx, userID, s.cfg.InteractionWindow)
	if err != nil {
		s.logger.WarnContext(ctx, "Scoring without interactions", slog.Any("error", err))
		interactions = nil
	}

	favorites, err := s.favoriteRepo.FindFavoriteEventIDs(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "Scoring without favorites", slog.Any("error", err))
		favorites = nil
	}

	candidates := eventsOf(inStatus(s.classifier.classify(events, now), entity.LifecycleUpcoming, entity.LifecycleOngoing))

	counts, err := s.interactionRepo.CountByEvent(ctx, eventIDs(candidates))
	if err != nil {
		s.logger.WarnContext(ctx, "Falling back to windowed popularity", slog.Any("error", err))
		counts = nil
	}

	extra, err := loadCatalogExtras(ctx, s.eventRepo, events, interactions, favorites)
	if err != nil {
		s.logger.WarnContext(ctx, "Scoring without favorite and history events", slog.Any("error", err))
	}

	scored := s.scorer.score(usecase.ScoreInput{
		UserID:            userID,
		Candidates:        candidates,
		Catalog:           withCatalog(events, extra),
		Interactions:      interactions,
		Favorites:         favorites,
		InteractionCounts: counts,
		Now:               now,
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	return scored, nil
}

func eventIDs(events []*entity.Event) []uuid.UUID {
	ids := make([]uuid.UUID, len(events))
	for i, event := range events {
		ids[i] = event.ID
	}

	return ids
}
