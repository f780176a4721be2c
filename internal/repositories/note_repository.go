package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"paceline/internal/models/db_models"
)

type NoteRepository interface {
	Create(ctx context.Context, note *db_models.RunNote) (uuid.UUID, error)
	Update(ctx context.Context, note *db_models.RunNote) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*db_models.RunNote, error)
	GetByWorkoutID(ctx context.Context, workoutID uuid.UUID) (*db_models.RunNote, error)
	List(ctx context.Context) ([]db_models.RunNote, error)
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *db_models.RunNote) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return uuid.Nil, err
	}
	return note.ID, nil
}

func (r *noteRepository) Update(ctx context.Context, note *db_models.RunNote) error {
	result := r.db.WithContext(ctx).Save(note)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *noteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.RunNote{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *noteRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.RunNote, error) {
	var note db_models.RunNote
	err := r.db.WithContext(ctx).First(&note, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) GetByWorkoutID(ctx context.Context, workoutID uuid.UUID) (*db_models.RunNote, error) {
	var note db_models.RunNote
	err := r.db.WithContext(ctx).
		Where("planned_workout_id = ?", workoutID).
		First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) List(ctx context.Context) ([]db_models.RunNote, error) {
	var notes []db_models.RunNote
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}
