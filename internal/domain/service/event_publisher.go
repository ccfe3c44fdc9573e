package service

import (
	"context"
	"time"
)

// NoteEventType names a change to a note.
type NoteEventType string

const (
	NoteEventCreated NoteEventType = "note.created"
	NoteEventUpdated NoteEventType = "note.updated"
	NoteEventDeleted NoteEventType = "note.deleted"
)

// NoteEvent describes a change to a note for downstream consumers (search indexing, sync).
type NoteEvent struct {
	RequestID  string        `json:"request_id,omitempty"` // For distributed tracing
	Type       NoteEventType `json:"type"`
	NoteID     string        `json:"note_id"`
	UserID     string        `json:"user_id"`
	Status     string        `json:"status,omitempty"`
	Tags       []string      `json:"tags,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNoteEvent publishes a note change event
	PublishNoteEvent(ctx context.Context, event *NoteEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
