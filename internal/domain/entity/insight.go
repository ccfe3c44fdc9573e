package entity

import "time"

// EnhancementType selects how the AI rewrites a note.
type EnhancementType string

const (
	EnhancementImprove  EnhancementType = "improve"
	EnhancementExpand   EnhancementType = "expand"
	EnhancementSimplify EnhancementType = "simplify"
)

// NormalizeEnhancementType falls back to EnhancementImprove for unknown values.
func NormalizeEnhancementType(t EnhancementType) EnhancementType {
	switch t {
	case EnhancementImprove, EnhancementExpand, EnhancementSimplify:
		return t
	default:
		return EnhancementImprove
	}
}

// NoteInsight is a note together with AI-produced output about it.
type NoteInsight struct {
	Note            *Note
	Summary         string
	EnhancedContent string
	Suggestions     []string
}

// NotesAnalysis is the AI review of a user's notes.
type NotesAnalysis struct {
	TotalNotesAnalyzed int
	Insights           string
	AnalysisDate       time.Time
}
