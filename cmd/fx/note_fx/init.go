package note_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"paceline/internal/repositories"
	"paceline/internal/services"
)

var Module = fx.Provide(
	provideNoteRepo, provideNoteService)

func provideNoteRepo(db *gorm.DB) repositories.NoteRepository {
	return repositories.NewNoteRepository(db)
}

func provideNoteService(
	noteRepo repositories.NoteRepository,
	workoutRepo repositories.WorkoutRepository,
) services.NoteServiceInterface {
	return services.NewNoteService(noteRepo, workoutRepo)
}
