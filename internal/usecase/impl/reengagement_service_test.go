package impl

import (
	"context"
	"testing"
	"time"

	"eventpulse/internal/domain/entity"
	domainerrors "eventpulse/internal/domain/errors"
	"eventpulse/internal/domain/repository"
	"eventpulse/internal/infra/scheduler"
	mockRepo "eventpulse/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reengagementFixture struct {
	service          *reengagementService
	scheduler        *scheduler.ManualScheduler
	inbox            *candidateInbox
	eventRepo        *mockRepo.MockEventRepository
	favoriteRepo     *mockRepo.MockFavoriteRepository
	registrationRepo *mockRepo.MockRegistrationRepository
}

func createTestReengagementService(t *testing.T) reengagementFixture {
	cfg := newTestEngagementConfig()
	sched := scheduler.NewManual(testNow)

	f := reengagementFixture{
		scheduler:        sched,
		inbox:            newCandidateInbox(cfg.InboxTTL, sched.Now),
		eventRepo:        mockRepo.NewMockEventRepository(t),
		favoriteRepo:     mockRepo.NewMockFavoriteRepository(t),
		registrationRepo: mockRepo.NewMockRegistrationRepository(t),
	}

	f.service = NewReengagementService(ReengagementServiceParams{
		Logger:           newDiscardLogger(),
		Config:           cfg,
		Scheduler:        sched,
		EventRepo:        f.eventRepo,
		FavoriteRepo:     f.favoriteRepo,
		RegistrationRepo: f.registrationRepo,
		Inbox:            f.inbox,
		Metrics:          newQuietMetrics(t),
	}).(*reengagementService)
	f.service.now = sched.Now

	return f
}

func TestReengagement_ReminderFiresAfterDelay(t *testing.T) {
	f := createTestReengagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	event := newEvent("gig", testNow.Add(3*day))

	require.NoError(t, f.service.TrackEventView(ctx, userID, event))
	assert.True(t, f.service.HasPendingReminder(userID, event.ID))

	assert.Zero(t, f.scheduler.Advance(29*time.Minute))
	assert.Empty(t, f.inbox.Pending(userID))

	f.registrationRepo.EXPECT().IsRegistered(mock.Anything, userID, event.ID).Return(false, nil)
	f.favoriteRepo.EXPECT().IsFavorite(mock.Anything, userID, event.ID).Return(false, nil)

	assert.Equal(t, 1, f.scheduler.Advance(time.Minute))

	pending := f.inbox.Pending(userID)
	require.Len(t, pending, 1)
	assert.Equal(t, entity.NotificationReminder, pending[0].Type)
	assert.Equal(t, 7, pending[0].Priority)
	assert.Equal(t, event.ID, pending[0].Event.ID)
	assert.False(t, f.service.HasPendingReminder(userID, event.ID))
}

func TestReengagement_RegistrationBeforeFireCancelsReminder(t *testing.T) {
	f := createTestReengagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	event := newEvent("gig", testNow.Add(3*day))

	require.NoError(t, f.service.TrackEventView(ctx, userID, event))
	f.scheduler.Advance(10 * time.Minute)

	f.service.MarkAsRegistered(userID, event.ID)

	assert.False(t, f.service.HasPendingReminder(userID, event.ID))
	assert.Zero(t, f.scheduler.Advance(time.Hour))
	assert.Empty(t, f.inbox.Pending(userID))

	require.NoError(t, f.service.TrackEventView(ctx, userID, event))
	assert.False(t, f.service.HasPendingReminder(userID, event.ID), "conversion is permanent for the pair")
}

func TestReengagement_FavoriteBeforeFireCancelsReminder(t *testing.T) {
	f := createTestReengagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	event := newEvent("gig", testNow.Add(3*day))

	require.NoError(t, f.service.TrackEventView(ctx, userID, event))
	f.service.MarkAsFavorited(userID, event.ID)

	assert.Zero(t, f.scheduler.Advance(time.Hour))
	assert.Empty(t, f.inbox.Pending(userID))
}

func TestReengagement_ConversionWithoutViewKeepsNoState(t *testing.T) {
	f := createTestReengagementService(t)
	userID := uuid.New()

	for range 1000 {
		f.service.MarkAsFavorited(userID, uuid.New())
		f.service.MarkAsRegistered(uuid.New(), uuid.New())
	}

	assert.Empty(t, f.service.converted)
	assert.Empty(t, f.service.views)
	assert.Zero(t, f.scheduler.Advance(365*day))
}

func TestReengagement_ConversionIsReleasedOnceEventArchives(t *testing.T) {
	f := createTestReengagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	event := newEvent("gig", testNow.Add(3*day))

	require.NoError(t, f.service.TrackEventView(ctx, userID, event))
	f.service.MarkAsRegistered(userID, event.ID)
	require.Len(t, f.service.converted, 1)

	assert.Zero(t, f.scheduler.Advance(3*day+entity.ArchiveAfter-time.Minute))
	require.Len(t, f.service.converted, 1, "still guarding while the event accepts views")

	assert.Equal(t, 1, f.scheduler.Advance(time.Minute))
	assert.Empty(t, f.service.converted)
	assert.Empty(t, f.service.views)

	require.NoError(t, f.service.TrackEventView(ctx, userID, event))
	assert.False(t, f.service.HasPendingReminder(userID, event.ID), "archived events take no views")
}

func TestReengagement_RepeatedViewReplacesTimer(t *testing.T) {
	f := createTestReengagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	event := newEvent("gig", testNow.Add(3*day))

	require.NoError(t, f.service.TrackEventView(ctx, userID, event))
	f.scheduler.Advance(20 * time.Minute)
	require.NoError(t, f.service.TrackEventView(ctx, userID, event))

	assert.Zero(t, f.scheduler.Advance(20*time.Minute), "the first timer was replaced")

	f.registrationRepo.EXPECT().IsRegistered(mock.Anything, userID, event.ID).Return(false, nil).Once()
	f.favoriteRepo.EXPECT().IsFavorite(mock.Anything, userID, event.ID).Return(false, nil).Once()

	assert.Equal(t, 1, f.scheduler.Advance(10*time.Minute))
	assert.Len(t, f.inbox.Pending(userID), 1)
}

func TestReengagement_ConvertedElsewhereSuppressesReminder(t *testing.T) {
	f := createTestReengagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	event := newEvent("gig", testNow.Add(3*day))

	f.registrationRepo.EXPECT().IsRegistered(mock.Anything, userID, event.ID).Return(true, nil).Once()

	require.NoError(t, f.service.TrackEventView(ctx, userID, event))
	assert.Equal(t, 1, f.scheduler.Advance(30*time.Minute))
	assert.Empty(t, f.inbox.Pending(userID))

	require.NoError(t, f.service.TrackEventView(ctx, userID, event))
	assert.False(t, f.service.HasPendingReminder(userID, event.ID))
}

func TestReengagement_ConversionCheckFailureSkipsReminder(t *testing.T) {
	f := createTestReengagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	event := newEvent("gig", testNow.Add(3*day))

	f.registrationRepo.EXPECT().IsRegistered(mock.Anything, userID, event.ID).Return(false, errors.New("timeout"))

	require.NoError(t, f.service.TrackEventView(ctx, userID, event))
	assert.Equal(t, 1, f.scheduler.Advance(30*time.Minute))
	assert.Empty(t, f.inbox.Pending(userID))
}

func TestReengagement_PastEventsAreIgnored(t *testing.T) {
	f := createTestReengagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	finished := newEvent("done", testNow.Add(-5*time.Hour))

	require.NoError(t, f.service.TrackEventView(ctx, userID, finished))
	assert.False(t, f.service.HasPendingReminder(userID, finished.ID))

	broken := newEvent("broken", testNow.Add(day))
	broken.StartTime = time.Time{}

	var scheduleErr *domainerrors.InvalidScheduleError
	assert.ErrorAs(t, f.service.TrackEventView(ctx, userID, broken), &scheduleErr)
}

func TestReengagement_TrackEventViewByID(t *testing.T) {
	f := createTestReengagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	event := newEvent("gig", testNow.Add(3*day))
	missing := uuid.New()

	f.eventRepo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil)
	f.eventRepo.EXPECT().FindEventByID(ctx, missing).Return(nil, repository.ErrEventNotFound)

	require.NoError(t, f.service.TrackEventViewByID(ctx, userID, event.ID))
	assert.True(t, f.service.HasPendingReminder(userID, event.ID))

	err := f.service.TrackEventViewByID(ctx, userID, missing)
	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}
