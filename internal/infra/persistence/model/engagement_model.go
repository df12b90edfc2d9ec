package model

import (
	"time"

	"github.com/google/uuid"
)

// InteractionModel is the GORM-specific struct for the append-only 'user_interactions' table.
type InteractionModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_interactions_user_created"`
	EventID         uuid.UUID `gorm:"type:uuid;not null;index"`
	InteractionType string    `gorm:"type:varchar(32);not null"`
	EventCategory   string    `gorm:"type:varchar(100)"`
	DurationSeconds *int
	CreatedAt       time.Time `gorm:"index:idx_interactions_user_created,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (InteractionModel) TableName() string {
	return "user_interactions"
}

// FavoriteModel is the GORM-specific struct for the 'event_favorites' table.
type FavoriteModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	EventID   uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "event_favorites"
}

// RegistrationStatusCancelled marks a registration the user withdrew.
const RegistrationStatusCancelled = "cancelled"

// RegistrationModel is the GORM-specific struct for the 'event_registrations' table.
type RegistrationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_registrations_user_event"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_registrations_user_event"`
	Status    string    `gorm:"type:varchar(32);not null;default:'confirmed'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegistrationModel) TableName() string {
	return "event_registrations"
}
