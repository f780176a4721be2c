package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"paceline/internal/models/db_models"
	"paceline/internal/models/request_models"
	"paceline/internal/repositories"
	"paceline/pkg/utils"
)

type NoteServiceInterface interface {
	ListNotes(ctx context.Context) ([]db_models.RunNote, error)
	CreateNote(ctx context.Context, req request_models.CreateNoteRequest) (*db_models.RunNote, error)
	GetNote(ctx context.Context, noteID uuid.UUID) (*db_models.RunNote, error)
	UpdateNote(ctx context.Context, noteID uuid.UUID, req request_models.UpdateNoteRequest) (*db_models.RunNote, error)
	DeleteNote(ctx context.Context, noteID uuid.UUID) error
}

type NoteService struct {
	noteRepo    repositories.NoteRepository
	workoutRepo repositories.WorkoutRepository
}

func NewNoteService(noteRepo repositories.NoteRepository, workoutRepo repositories.WorkoutRepository) NoteServiceInterface {
	return &NoteService{noteRepo: noteRepo, workoutRepo: workoutRepo}
}

func (n *NoteService) ListNotes(ctx context.Context) ([]db_models.RunNote, error) {
	notes, err := n.noteRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return notes, nil
}

func (n *NoteService) CreateNote(ctx context.Context, req request_models.CreateNoteRequest) (*db_models.RunNote, error) {
	workoutID, err := uuid.Parse(req.PlannedWorkoutID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	workout, err := n.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if workout == nil {
		return nil, utils.ErrWorkoutNotFound
	}

	existing, err := n.noteRepo.GetByWorkoutID(ctx, workoutID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrNoteExists
	}

	note := &db_models.RunNote{
		PlannedWorkoutID: workoutID,
		Content:          req.Content,
		MoodRating:       req.MoodRating,
		EffortRating:     req.EffortRating,
		Audio:            req.Audio,
	}
	if len(req.Tags) > 0 {
		note.Tags = datatypes.JSON(req.Tags)
	}
	if len(req.FuelingLog) > 0 {
		note.FuelingLog = datatypes.JSON(req.FuelingLog)
	}
	if _, err := n.noteRepo.Create(ctx, note); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return note, nil
}

func (n *NoteService) GetNote(ctx context.Context, noteID uuid.UUID) (*db_models.RunNote, error) {
	note, err := n.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if note == nil {
		return nil, utils.ErrNoteNotFound
	}
	return note, nil
}

func (n *NoteService) UpdateNote(ctx context.Context, noteID uuid.UUID, req request_models.UpdateNoteRequest) (*db_models.RunNote, error) {
	note, err := n.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if note == nil {
		return nil, utils.ErrNoteNotFound
	}

	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.MoodRating != nil {
		note.MoodRating = req.MoodRating
	}
	if req.EffortRating != nil {
		note.EffortRating = req.EffortRating
	}
	if req.Audio != nil {
		note.Audio = *req.Audio
	}
	if len(req.Tags) > 0 {
		note.Tags = datatypes.JSON(req.Tags)
	}
	if len(req.FuelingLog) > 0 {
		note.FuelingLog = datatypes.JSON(req.FuelingLog)
	}

	if err := n.noteRepo.Update(ctx, note); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return note, nil
}

func (n *NoteService) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
	note, err := n.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if note == nil {
		return utils.ErrNoteNotFound
	}
	if err := n.noteRepo.Delete(ctx, noteID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
