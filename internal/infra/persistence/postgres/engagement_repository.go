package postgres

import (
	"context"

	"eventpulse/internal/domain/entity"
	"eventpulse/internal/domain/repository"
	"eventpulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// interactionRepository reads the user interaction stream.
type interactionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository is the constructor for interactionRepository.
func NewInteractionRepository(db *gorm.DB) repository.InteractionRepository {
	return &interactionRepository{db: db}
}

// FindRecentByUser returns the user's latest interactions, newest first.
func (repo *interactionRepository) FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Interaction, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var interactionModels []*model.InteractionModel
	if err := query.Find(&interactionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find interactions by user")
	}

	interactions := make([]*entity.Interaction, 0, len(interactionModels))
	for _, interactionM := range interactionModels {
		interactions = append(interactions, toInteractionDomain(interactionM))
	}

	return interactions, nil
}

type eventCount struct {
	EventID uuid.UUID
	Total   int
}

// CountByEvent returns the global interaction count of each requested event.
// Events without interactions are absent from the result.
func (repo *interactionRepository) CountByEvent(ctx context.Context, eventIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(eventIDs))
	if len(eventIDs) == 0 {
		return counts, nil
	}

	var rows []eventCount
	err := repo.db.WithContext(ctx).
		Model(&model.InteractionModel{}).
		Select("event_id, COUNT(*) AS total").
		Where("event_id IN ?", eventIDs).
		Group("event_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count interactions by event")
	}

	for _, row := range rows {
		counts[row.EventID] = row.Total
	}

	return counts, nil
}

// favoriteRepository reads user favorites.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// FindFavoriteEventIDs returns every event the user has favorited.
func (repo *favoriteRepository) FindFavoriteEventIDs(ctx context.Context, userID uuid.UUID) (entity.EventIDSet, error) {
	var eventIDs []uuid.UUID
	err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ?", userID).
		Pluck("event_id", &eventIDs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by user")
	}

	return entity.NewEventIDSet(eventIDs...), nil
}

// IsFavorite reports whether the user has favorited the event.
func (repo *favoriteRepository) IsFavorite(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return count > 0, nil
}

// registrationRepository reads event registrations.
type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository is the constructor for registrationRepository.
func NewRegistrationRepository(db *gorm.DB) repository.RegistrationRepository {
	return &registrationRepository{db: db}
}

// IsRegistered reports whether the user holds a registration that was not cancelled.
func (repo *registrationRepository) IsRegistered(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("user_id = ? AND event_id = ? AND status <> ?", userID, eventID, model.RegistrationStatusCancelled).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check registration")
	}

	return count > 0, nil
}
