package entity

import (
	"time"

	"github.com/google/uuid"
)

// NoteActivity is one recorded change to a note, as delivered by the event stream.
type NoteActivity struct {
	ID         uuid.UUID
	MessageID  string // Delivery ID from the message broker. Redeliveries share it.
	Type       string
	NoteID     uuid.UUID
	UserID     uuid.UUID
	Status     string
	Tags       []string
	RequestID  string
	OccurredAt time.Time
	ReceivedAt time.Time
}

// DefaultActivityListLimit bounds a note's activity listing.
const DefaultActivityListLimit = 50
