package impl

import (
	"context"
	"testing"
	"time"

	"eventpulse/internal/domain/entity"
	"eventpulse/internal/domain/repository"
	mockRepo "eventpulse/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recommendationFixture struct {
	service         *recommendationService
	eventRepo       *mockRepo.MockEventRepository
	interactionRepo *mockRepo.MockInteractionRepository
	favoriteRepo    *mockRepo.MockFavoriteRepository
}

func createTestRecommendationService(t *testing.T) recommendationFixture {
	f := recommendationFixture{
		eventRepo:       mockRepo.NewMockEventRepository(t),
		interactionRepo: mockRepo.NewMockInteractionRepository(t),
		favoriteRepo:    mockRepo.NewMockFavoriteRepository(t),
	}

	f.service = NewRecommendationService(RecommendationServiceParams{
		Logger:          newDiscardLogger(),
		Config:          newTestEngagementConfig(),
		EventRepo:       f.eventRepo,
		InteractionRepo: f.interactionRepo,
		FavoriteRepo:    f.favoriteRepo,
	}).(*recommendationService)
	f.service.now = func() time.Time { return testNow }

	return f
}

func TestRecommendationService_Recommend_SkipsPastAndInvalidEvents(t *testing.T) {
	f := createTestRecommendationService(t)
	ctx := context.Background()
	userID := uuid.New()

	upcoming := newEvent("upcoming", testNow.Add(day))
	ongoing := newEvent("ongoing", testNow.Add(-time.Hour))
	finished := newEvent("finished", testNow.Add(-5*time.Hour))
	broken := newEvent("broken", testNow.Add(day))
	broken.EndTime = broken.StartTime.Add(-time.Hour)

	f.eventRepo.EXPECT().
		FindEvents(ctx, mock.MatchedBy(func(filter repository.EventFilter) bool {
			return filter.StartsAfter != nil && filter.StartsAfter.Equal(testNow.Add(-entity.OngoingWindow))
		})).
		Return([]*entity.Event{upcoming, ongoing, finished, broken}, nil)
	f.interactionRepo.EXPECT().FindRecentByUser(ctx, userID, 200).Return(nil, nil)
	f.favoriteRepo.EXPECT().FindFavoriteEventIDs(ctx, userID).Return(entity.NewEventIDSet(), nil)
	f.interactionRepo.EXPECT().
		CountByEvent(ctx, mock.MatchedBy(func(ids []uuid.UUID) bool { return len(ids) == 2 })).
		Return(map[uuid.UUID]int{}, nil)

	scored, err := f.service.Recommend(ctx, userID, 10)

	require.NoError(t, err)
	require.Len(t, scored, 2)
	got := []uuid.UUID{scored[0].Event.ID, scored[1].Event.ID}
	assert.ElementsMatch(t, []uuid.UUID{upcoming.ID, ongoing.ID}, got)
}

func TestRecommendationService_Recommend_DegradesWithoutUserSignals(t *testing.T) {
	f := createTestRecommendationService(t)
	ctx := context.Background()
	userID := uuid.New()

	first := newEvent("first", testNow.Add(2*day), withPrice(0))
	second := newEvent("second", testNow.Add(20*day))

	f.eventRepo.EXPECT().FindEvents(ctx, mock.Anything).Return([]*entity.Event{second, first}, nil)
	f.interactionRepo.EXPECT().FindRecentByUser(ctx, userID, 200).Return(nil, errors.New("timeout"))
	f.favoriteRepo.EXPECT().FindFavoriteEventIDs(ctx, userID).Return(nil, errors.New("timeout"))
	f.interactionRepo.EXPECT().CountByEvent(ctx, mock.Anything).Return(nil, errors.New("timeout"))

	scored, err := f.service.Recommend(ctx, userID, 1)

	require.NoError(t, err)
	require.Len(t, scored, 1)
	assert.Equal(t, first.ID, scored[0].Event.ID)
}

func TestRecommendationService_Recommend_LoadsFavoritesOutsideCandidates(t *testing.T) {
	f := createTestRecommendationService(t)
	ctx := context.Background()
	userID := uuid.New()

	candidate := newEvent("candidate", testNow.Add(day), withCategory("music"), withPrice(40))
	pastFavorite := newEvent("past", testNow.Add(-30*day), withCategory("music"), withPrice(42))

	f.eventRepo.EXPECT().
		FindEvents(ctx, mock.MatchedBy(func(filter repository.EventFilter) bool { return filter.StartsAfter != nil })).
		Return([]*entity.Event{candidate}, nil)
	f.eventRepo.EXPECT().
		FindEvents(ctx, repository.EventFilter{IDs: []uuid.UUID{pastFavorite.ID}}).
		Return([]*entity.Event{pastFavorite}, nil)
	f.interactionRepo.EXPECT().FindRecentByUser(ctx, userID, 200).Return(nil, nil)
	f.favoriteRepo.EXPECT().FindFavoriteEventIDs(ctx, userID).Return(entity.NewEventIDSet(pastFavorite.ID), nil)
	f.interactionRepo.EXPECT().CountByEvent(ctx, []uuid.UUID{candidate.ID}).Return(map[uuid.UUID]int{}, nil)

	scored, err := f.service.Recommend(ctx, userID, 0)

	require.NoError(t, err)
	require.Len(t, scored, 1)
	assert.InDelta(t, 8, scored[0].Breakdown.FavoriteSimilarity, 1e-9)
}

func TestRecommendationService_Recommend_EventStoreFailure(t *testing.T) {
	f := createTestRecommendationService(t)
	ctx := context.Background()

	f.eventRepo.EXPECT().FindEvents(ctx, mock.Anything).Return(nil, errors.New("connection refused"))

	scored, err := f.service.Recommend(ctx, uuid.New(), 10)

	require.Error(t, err)
	assert.Nil(t, scored)
}
