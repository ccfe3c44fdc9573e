package usecase

import (
	"context"

	"notesia/internal/domain/entity"

	"github.com/google/uuid"
)

// ChatInput is a free-form question to the note-taking assistant.
type ChatInput struct {
	Prompt  string
	Context string // Optional extra context, e.g. the note being edited.
}

// ChatOutput is the assistant's answer.
type ChatOutput struct {
	Response string
	Prompt   string
}

// GenerateInput asks the assistant to draft a note.
type GenerateInput struct {
	Prompt string
	Title  string // Optional. When empty a title is generated from the content.
}

// GenerateOutput is a drafted note. It is not persisted.
type GenerateOutput struct {
	Title               string
	Content             string
	GeneratedFromPrompt string
}

// AIUsecase defines the AI assistant operations.
type AIUsecase interface {
	Chat(ctx context.Context, input *ChatInput) (*ChatOutput, error)
	Summarize(ctx context.Context, userID, noteID uuid.UUID) (*entity.NoteInsight, error)
	Enhance(ctx context.Context, userID, noteID uuid.UUID, enhancementType entity.EnhancementType) (*entity.NoteInsight, error)
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
	// AnalyzeNotes reviews the user's most recent notes. A user without notes
	// gets an analysis with TotalNotesAnalyzed == 0 and no insights.
	AnalyzeNotes(ctx context.Context, userID uuid.UUID) (*entity.NotesAnalysis, error)
}
