package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel is the GORM-specific struct for the 'event_categories' table.
type CategoryModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Name string    `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "event_categories"
}

// EventModel is the GORM-specific struct for the 'events' table.
// Older rows carry the category as a flat name, newer rows reference
// event_categories; the mapper reads whichever is present.
type EventModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key"`
	Title        string         `gorm:"type:varchar(255);not null"`
	CategoryID   *uuid.UUID     `gorm:"type:uuid;index"`
	Category     *CategoryModel `gorm:"foreignKey:CategoryID"`
	CategoryName string         `gorm:"column:category;type:varchar(100)"`
	Price        float64        `gorm:"type:numeric(10,2);not null;default:0"`
	Capacity     int            `gorm:"not null;default:0"`
	StartTime    *time.Time     `gorm:"index"`
	EndTime      *time.Time
	Latitude     *float64
	Longitude    *float64
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// EventPopularityModel is the GORM-specific struct for the 'event_popularity' table,
// refreshed by the analytics pipeline.
type EventPopularityModel struct {
	EventID       uuid.UUID `gorm:"type:uuid;primary_key"`
	TrendingScore float64   `gorm:"not null;default:0"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventPopularityModel) TableName() string {
	return "event_popularity"
}
