package handler

import (
	"time"

	"notesia/internal/domain/entity"

	"github.com/google/uuid"
)

// analysisDateLayout renders analysis dates as calendar days.
const analysisDateLayout = time.DateOnly

// UserResponse is the public view of an account. It never carries the password hash.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	Username  string    `json:"username,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Username:  user.Username,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// NoteResponse is the JSON view of a note.
type NoteResponse struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Tags      []string          `json:"tags"`
	Status    entity.NoteStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func newNoteResponse(note *entity.Note) *NoteResponse {
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}

	return &NoteResponse{
		ID:        note.ID,
		UserID:    note.UserID,
		Title:     note.Title,
		Content:   note.Content,
		Tags:      tags,
		Status:    note.Status,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func newNoteResponses(notes []*entity.Note) []*NoteResponse {
	out := make([]*NoteResponse, 0, len(notes))
	for _, note := range notes {
		out = append(out, newNoteResponse(note))
	}

	return out
}

// NoteInsightResponse is a note together with the assistant's output about it.
type NoteInsightResponse struct {
	*NoteResponse
	AISummary         string   `json:"ai_summary,omitempty"`
	AIEnhancedContent string   `json:"ai_enhanced_content,omitempty"`
	AISuggestions     []string `json:"ai_suggestions"`
}

func newNoteInsightResponse(insight *entity.NoteInsight) *NoteInsightResponse {
	suggestions := insight.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	return &NoteInsightResponse{
		NoteResponse:      newNoteResponse(insight.Note),
		AISummary:         insight.Summary,
		AIEnhancedContent: insight.EnhancedContent,
		AISuggestions:     suggestions,
	}
}

// MessageResponse acknowledges an operation without returning a resource.
type MessageResponse struct {
	Message string `json:"message"`
}

// NoteActivityResponse is one entry of a note's activity trail.
type NoteActivityResponse struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	NoteID     uuid.UUID `json:"note_id"`
	Status     string    `json:"status,omitempty"`
	Tags       []string  `json:"tags"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	ReceivedAt time.Time `json:"received_at"`
}

func newNoteActivityResponses(activities []*entity.NoteActivity) []*NoteActivityResponse {
	out := make([]*NoteActivityResponse, 0, len(activities))
	for _, a := range activities {
		tags := a.Tags
		if tags == nil {
			tags = []string{}
		}
		out = append(out, &NoteActivityResponse{
			ID:         a.ID,
			Type:       a.Type,
			NoteID:     a.NoteID,
			Status:     a.Status,
			Tags:       tags,
			RequestID:  a.RequestID,
			OccurredAt: a.OccurredAt,
			ReceivedAt: a.ReceivedAt,
		})
	}

	return out
}
