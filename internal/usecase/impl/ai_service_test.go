package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"notesia/internal/domain/entity"
	domainerrors "notesia/internal/domain/errors"
	"notesia/internal/domain/repository"
	mockRepo "notesia/internal/mocks/repository"
	mockSvc "notesia/internal/mocks/service"
	"notesia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type aiFixture struct {
	noteRepo  *mockRepo.MockNoteRepository
	generator *mockSvc.MockTextGenerator
	service   *aiService
	now       time.Time
}

func newAIFixture(t *testing.T) *aiFixture {
	f := &aiFixture{
		noteRepo:  mockRepo.NewMockNoteRepository(t),
		generator: mockSvc.NewMockTextGenerator(t),
		now:       time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC),
	}
	f.service = NewAIService(AIServiceParams{
		NoteRepo:  f.noteRepo,
		Generator: f.generator,
		Logger:    discardLogger(),
	}).(*aiService)
	f.service.now = func() time.Time { return f.now }

	return f
}

func promptContaining(substr string) any {
	return mock.MatchedBy(func(prompt string) bool { return strings.Contains(prompt, substr) })
}

func TestAIService_Chat(t *testing.T) {
	f := newAIFixture(t)
	ctx := context.Background()

	f.generator.EXPECT().GenerateText(ctx, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Context: my meeting notes") &&
			strings.HasSuffix(prompt, "User question: What did I decide?")
	})).Return("You decided to ship on Friday.", nil)

	out, err := f.service.Chat(ctx, &usecase.ChatInput{Prompt: "What did I decide?", Context: "my meeting notes"})

	require.NoError(t, err)
	assert.Equal(t, "You decided to ship on Friday.", out.Response)
	assert.Equal(t, "What did I decide?", out.Prompt)
}

func TestAIService_Chat_GeneratorFailure(t *testing.T) {
	f := newAIFixture(t)
	ctx := context.Background()

	f.generator.EXPECT().GenerateText(ctx, mock.Anything).Return("", errors.New("deadline exceeded"))

	_, err := f.service.Chat(ctx, &usecase.ChatInput{Prompt: "hi"})
	assert.True(t, errors.Is(err, domainerrors.ErrAIGenerationFailed))
}

func TestAIService_Chat_Unavailable(t *testing.T) {
	f := newAIFixture(t)
	ctx := context.Background()

	f.generator.EXPECT().GenerateText(ctx, mock.Anything).Return("", domainerrors.ErrAIUnavailable)

	_, err := f.service.Chat(ctx, &usecase.ChatInput{Prompt: "hi"})
	assert.True(t, errors.Is(err, domainerrors.ErrAIUnavailable))
}

func TestAIService_Summarize(t *testing.T) {
	f := newAIFixture(t)
	ctx := context.Background()
	note := &entity.Note{ID: uuid.New(), UserID: uuid.New(), Title: "Trip", Content: "Pack bags"}

	f.noteRepo.EXPECT().FindByID(ctx, note.UserID, note.ID).Return(note, nil)
	f.generator.EXPECT().GenerateText(ctx, promptContaining("Title: Trip")).Return("Packing list.", nil)

	insight, err := f.service.Summarize(ctx, note.UserID, note.ID)

	require.NoError(t, err)
	assert.Equal(t, note, insight.Note)
	assert.Equal(t, "Packing list.", insight.Summary)
	assert.NotNil(t, insight.Suggestions)
	assert.Empty(t, insight.Suggestions)
}

func TestAIService_Summarize_NotFound(t *testing.T) {
	f := newAIFixture(t)
	ctx := context.Background()

	f.noteRepo.EXPECT().FindByID(ctx, mock.Anything, mock.Anything).Return(nil, repository.ErrNoteNotFound)

	_, err := f.service.Summarize(ctx, uuid.New(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrNoteNotFound))
}

func TestAIService_Enhance(t *testing.T) {
	f := newAIFixture(t)
	ctx := context.Background()
	note := &entity.Note{ID: uuid.New(), UserID: uuid.New(), Title: "Essay", Content: "draft text"}

	f.noteRepo.EXPECT().FindByID(ctx, note.UserID, note.ID).Return(note, nil)
	// Unknown types fall back to "improve".
	f.generator.EXPECT().GenerateText(ctx, promptContaining("Improve the clarity")).Return("better text", nil)
	f.generator.EXPECT().GenerateText(ctx, promptContaining("suggestions")).
		Return("# Suggestions\n\n1. Add a conclusion\n2. Cite sources\n3. Shorten intro\n4. Add examples\n5. Fix tone\n6. Extra", nil)

	insight, err := f.service.Enhance(ctx, note.UserID, note.ID, "rewrite")

	require.NoError(t, err)
	assert.Equal(t, "better text", insight.EnhancedContent)
	assert.Equal(t, []string{
		"1. Add a conclusion",
		"2. Cite sources",
		"3. Shorten intro",
		"4. Add examples",
		"5. Fix tone",
	}, insight.Suggestions)
}

func TestAIService_Generate_DerivesTitle(t *testing.T) {
	f := newAIFixture(t)
	ctx := context.Background()
	content := strings.Repeat("x", 300)

	f.generator.EXPECT().GenerateText(ctx, promptContaining("Write the content of a note")).Return(content, nil)
	f.generator.EXPECT().GenerateText(ctx, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, strings.Repeat("x", 200)+"...") && !strings.Contains(prompt, strings.Repeat("x", 201))
	})).Return(`Title: "Weekly Plan"`, nil)

	out, err := f.service.Generate(ctx, &usecase.GenerateInput{Prompt: "plan my week"})

	require.NoError(t, err)
	assert.Equal(t, "Weekly Plan", out.Title)
	assert.Equal(t, content, out.Content)
	assert.Equal(t, "plan my week", out.GeneratedFromPrompt)
}

func TestAIService_Generate_KeepsGivenTitle(t *testing.T) {
	f := newAIFixture(t)
	ctx := context.Background()

	f.generator.EXPECT().GenerateText(ctx, mock.Anything).Return("content", nil).Once()

	out, err := f.service.Generate(ctx, &usecase.GenerateInput{Prompt: "plan", Title: "Mine"})

	require.NoError(t, err)
	assert.Equal(t, "Mine", out.Title)
}

func TestAIService_AnalyzeNotes_NoNotes(t *testing.T) {
	f := newAIFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.noteRepo.EXPECT().Count(ctx, userID).Return(int64(0), nil)

	analysis, err := f.service.AnalyzeNotes(ctx, userID)

	require.NoError(t, err)
	assert.Zero(t, analysis.TotalNotesAnalyzed)
	assert.Empty(t, analysis.Insights)
}

func TestAIService_AnalyzeNotes(t *testing.T) {
	f := newAIFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	notes := []*entity.Note{
		{Title: "Long", Content: strings.Repeat("y", 250)},
		{Title: "Short", Content: "tiny"},
	}

	f.noteRepo.EXPECT().Count(ctx, userID).Return(int64(12), nil)
	f.noteRepo.EXPECT().List(ctx, userID, entity.NoteFilter{Limit: 10}).Return(notes, nil)
	f.generator.EXPECT().GenerateText(ctx, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Title: Long") &&
			strings.Contains(prompt, "Title: Short\nContent: tiny...") &&
			!strings.Contains(prompt, strings.Repeat("y", 201))
	})).Return("You write about many things.", nil)

	analysis, err := f.service.AnalyzeNotes(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 12, analysis.TotalNotesAnalyzed)
	assert.Equal(t, "You write about many things.", analysis.Insights)
	assert.Equal(t, f.now, analysis.AnalysisDate)
}

func TestCleanTitle(t *testing.T) {
	assert.Equal(t, "Weekly Plan", cleanTitle(`  "Weekly Plan"  `))
	assert.Equal(t, "Weekly Plan", cleanTitle("Title: Weekly Plan"))
	assert.Equal(t, "Weekly Plan", cleanTitle(`"Title: Weekly Plan"`))
}

func TestParseSuggestions(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, parseSuggestions("\n# heading\na\n\n  b  \n", 5))
	assert.Len(t, parseSuggestions("1\n2\n3\n4\n5\n6\n7", 5), 5)
	assert.Empty(t, parseSuggestions("", 5))
}
