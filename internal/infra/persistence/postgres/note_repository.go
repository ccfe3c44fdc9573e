package postgres

import (
	"context"
	"strings"
	"time"

	"notesia/internal/domain/entity"
	domainerrors "notesia/internal/domain/errors"
	"notesia/internal/domain/repository"
	"notesia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// noteRepository implements the repository.NoteRepository interface using GORM.
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository is the constructor for noteRepository.
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

// Create persists a new note and its tags.
// Callers that need the note and tags written atomically run it inside TransactionManager.Execute.
func (repo *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	noteM := fromNoteDomain(note)

	if err := repo.db.WithContext(ctx).Create(noteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNoteCreationFailed.WrapMessage("owner does not exist")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrNoteCreationFailed.WrapMessage("invalid note data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create note")
	}

	note.CreatedAt = noteM.CreatedAt
	note.UpdatedAt = noteM.UpdatedAt

	return nil
}

// FindByID retrieves a note owned by userID.
func (repo *noteRepository) FindByID(ctx context.Context, userID, noteID uuid.UUID) (*entity.Note, error) {
	var noteM model.NoteModel
	err := repo.db.WithContext(ctx).
		Preload("Tags", orderTags).
		Where("id = ? AND user_id = ?", noteID, userID).
		First(&noteM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find note by id")
	}

	return toNoteDomain(&noteM), nil
}

// List returns a page of the user's notes, most recently updated first.
func (repo *noteRepository) List(ctx context.Context, userID uuid.UUID, filter entity.NoteFilter) ([]*entity.Note, error) {
	query := repo.db.WithContext(ctx).
		Preload("Tags", orderTags).
		Where("user_id = ?", userID)

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Search != "" {
		pattern := "%" + escapeLikePattern(filter.Search) + "%"
		query = query.Where("(title ILIKE ? OR content ILIKE ?)", pattern, pattern)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = entity.DefaultNoteListLimit
	}

	var notesM []model.NoteModel
	err := query.
		Order("updated_at DESC").
		Limit(limit).
		Offset(max(filter.Offset, 0)).
		Find(&notesM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notes")
	}

	notes := make([]*entity.Note, 0, len(notesM))
	for i := range notesM {
		notes = append(notes, toNoteDomain(&notesM[i]))
	}

	return notes, nil
}

// Count returns the number of notes owned by userID.
func (repo *noteRepository) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count notes")
	}

	return count, nil
}

// Update saves the mutable fields of a note and replaces its tag set.
func (repo *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	db := repo.db.WithContext(ctx)
	now := time.Now()

	result := db.Model(&model.NoteModel{}).
		Where("id = ? AND user_id = ?", note.ID, note.UserID).
		Updates(map[string]any{
			"title":      note.Title,
			"content":    note.Content,
			"status":     note.Status.String(),
			"updated_at": now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update note")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	if err := db.Where("note_id = ?", note.ID).Delete(&model.NoteTagModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear note tags")
	}
	if tags := fromTagsDomain(note.ID, note.Tags); len(tags) > 0 {
		if err := db.Create(&tags).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to save note tags")
		}
	}

	note.UpdatedAt = now

	return nil
}

// Delete removes a note owned by userID together with its tags.
func (repo *noteRepository) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	result := db.Where("id = ? AND user_id = ?", noteID, userID).Delete(&model.NoteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete note")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	// The FK cascades when the schema was auto-migrated; hand-made schemas may lack it.
	if err := db.Where("note_id = ?", noteID).Delete(&model.NoteTagModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete note tags")
	}

	return nil
}

// ListTags returns the distinct tags across the user's notes in ascending order.
func (repo *noteRepository) ListTags(ctx context.Context, userID uuid.UUID) ([]string, error) {
	tags := make([]string, 0)
	err := repo.db.WithContext(ctx).
		Model(&model.NoteTagModel{}).
		Joins("JOIN notes ON notes.id = note_tags.note_id").
		Where("notes.user_id = ?", userID).
		Distinct().
		Order("note_tags.tag ASC").
		Pluck("note_tags.tag", &tags).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	return tags, nil
}

func orderTags(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLikePattern makes user input match literally inside an ILIKE pattern.
func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}

func toNoteDomain(data *model.NoteModel) *entity.Note {
	if data == nil {
		return nil
	}

	tags := make([]string, 0, len(data.Tags))
	for _, tag := range data.Tags {
		tags = append(tags, tag.Tag)
	}

	return &entity.Note{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Content:   data.Content,
		Tags:      tags,
		Status:    entity.NoteStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromNoteDomain(data *entity.Note) *model.NoteModel {
	if data == nil {
		return nil
	}

	return &model.NoteModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Content:   data.Content,
		Status:    data.Status.String(),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		Tags:      fromTagsDomain(data.ID, data.Tags),
	}
}

func fromTagsDomain(noteID uuid.UUID, tags []string) []model.NoteTagModel {
	if len(tags) == 0 {
		return nil
	}

	out := make([]model.NoteTagModel, 0, len(tags))
	for i, tag := range tags {
		out = append(out, model.NoteTagModel{
			NoteID:   noteID,
			Tag:      tag,
			Position: i,
		})
	}

	return out
}
