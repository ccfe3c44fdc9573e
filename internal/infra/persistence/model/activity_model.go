package model

import (
	"time"

	"github.com/google/uuid"
)

// NoteActivityModel is the database model for the note activity trail.
// Rows reference notes loosely so history survives deletion.
type NoteActivityModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MessageID  string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Type       string    `gorm:"type:varchar(50);not null"`
	NoteID     uuid.UUID `gorm:"type:uuid;not null;index:idx_note_activities_owner_note,priority:2"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_note_activities_owner_note,priority:1"`
	Status     string    `gorm:"type:varchar(20)"`
	Tags       []string  `gorm:"type:jsonb;serializer:json"`
	RequestID  string    `gorm:"type:varchar(128)"`
	OccurredAt time.Time `gorm:"not null;index"`
	ReceivedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (NoteActivityModel) TableName() string {
	return "note_activities"
}
