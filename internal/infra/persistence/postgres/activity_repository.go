package postgres

import (
	"context"
	"time"

	"notesia/internal/domain/entity"
	"notesia/internal/domain/repository"
	"notesia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type noteActivityRepository struct {
	db *gorm.DB
}

// NewNoteActivityRepository is the constructor for noteActivityRepository.
func NewNoteActivityRepository(db *gorm.DB) repository.NoteActivityRepository {
	return &noteActivityRepository{db: db}
}

// Record inserts the activity, skipping rows whose message_id already exists.
func (repo *noteActivityRepository) Record(ctx context.Context, activity *entity.NoteActivity) (bool, error) {
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	if activity.ReceivedAt.IsZero() {
		activity.ReceivedAt = time.Now().UTC()
	}
	activityM := fromActivityDomain(activity)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "message_id"}},
			DoNothing: true,
		}).
		Create(activityM)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to record note activity")
	}

	return result.RowsAffected > 0, nil
}

// ListByNote returns the newest activity first.
func (repo *noteActivityRepository) ListByNote(ctx context.Context, userID, noteID uuid.UUID, limit int) ([]*entity.NoteActivity, error) {
	if limit <= 0 {
		limit = entity.DefaultActivityListLimit
	}

	var activityMs []*model.NoteActivityModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND note_id = ?", userID, noteID).
		Order("occurred_at DESC").
		Order("received_at DESC").
		Limit(limit).
		Find(&activityMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list note activity")
	}

	activities := make([]*entity.NoteActivity, 0, len(activityMs))
	for _, activityM := range activityMs {
		activities = append(activities, toActivityDomain(activityM))
	}

	return activities, nil
}

func toActivityDomain(data *model.NoteActivityModel) *entity.NoteActivity {
	tags := data.Tags
	if tags == nil {
		tags = []string{}
	}

	return &entity.NoteActivity{
		ID:         data.ID,
		MessageID:  data.MessageID,
		Type:       data.Type,
		NoteID:     data.NoteID,
		UserID:     data.UserID,
		Status:     data.Status,
		Tags:       tags,
		RequestID:  data.RequestID,
		OccurredAt: data.OccurredAt,
		ReceivedAt: data.ReceivedAt,
	}
}

func fromActivityDomain(data *entity.NoteActivity) *model.NoteActivityModel {
	return &model.NoteActivityModel{
		ID:         data.ID,
		MessageID:  data.MessageID,
		Type:       data.Type,
		NoteID:     data.NoteID,
		UserID:     data.UserID,
		Status:     data.Status,
		Tags:       data.Tags,
		RequestID:  data.RequestID,
		OccurredAt: data.OccurredAt,
		ReceivedAt: data.ReceivedAt,
	}
}
