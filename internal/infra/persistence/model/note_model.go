package model

import (
	"time"

	"github.com/google/uuid"
)

// NoteModel is the GORM-specific struct for the 'notes' table.
type NoteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'draft';index"`
	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"index"`

	Tags []NoteTagModel `gorm:"foreignKey:NoteID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (NoteModel) TableName() string {
	return "notes"
}

// NoteTagModel is one tag of a note. Position keeps the order the user gave.
type NoteTagModel struct {
	NoteID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Tag      string    `gorm:"type:varchar(100);primaryKey;index"`
	Position int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (NoteTagModel) TableName() string {
	return "note_tags"
}

// AllModels lists the models managed by auto-migration, parents first.
func AllModels() []any {
	return []any{
		&UserModel{},
		&NoteModel{},
		&NoteTagModel{},
		&NoteActivityModel{},
	}
}
