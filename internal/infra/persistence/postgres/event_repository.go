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

// eventRepository reads events and their popularity from PostgreSQL.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// FindEvents returns the events matching filter ordered by start time.
func (repo *eventRepository) FindEvents(ctx context.Context, filter repository.EventFilter) ([]*entity.Event, error) {
	query := repo.db.WithContext(ctx).Model(&model.EventModel{}).Preload("Category")

	if len(filter.IDs) > 0 {
		query = query.Where("events.id IN ?", filter.IDs)
	}
	if filter.StartsAfter != nil {
		query = query.Where("events.start_time >= ?", *filter.StartsAfter)
	}
	if filter.StartsBefore != nil {
		query = query.Where("events.start_time < ?", *filter.StartsBefore)
	}
	if filter.Category != "" {
		query = query.
			Joins("LEFT JOIN event_categories ON event_categories.id = events.category_id").
			Where("COALESCE(event_categories.name, events.category) = ?", filter.Category)
	}
	if filter.WithLocation {
		query = query.Where("events.latitude IS NOT NULL AND events.longitude IS NOT NULL")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var eventModels []*model.EventModel
	if err := query.Order("events.start_time ASC").Order("events.id ASC").Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find events")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	return events, nil
}

// FindEventByID retrieves a single event.
func (repo *eventRepository) FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.EventModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&eventM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}

	return toEventDomain(&eventM), nil
}

// popularityRepository reads the analytics trending feed.
type popularityRepository struct {
	db *gorm.DB
}

// NewPopularityRepository is the constructor for popularityRepository.
func NewPopularityRepository(db *gorm.DB) repository.PopularityRepository {
	return &popularityRepository{db: db}
}

// FindTrendingScores returns every scored event, highest score first.
func (repo *popularityRepository) FindTrendingScores(ctx context.Context) ([]*entity.TrendingScore, error) {
	var popularityModels []*model.EventPopularityModel
	err := repo.db.WithContext(ctx).
		Order("trending_score DESC").
		Find(&popularityModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find trending scores")
	}

	scores := make([]*entity.TrendingScore, 0, len(popularityModels))
	for _, popularityM := range popularityModels {
		scores = append(scores, toTrendingScoreDomain(popularityM))
	}

	return scores, nil
}
