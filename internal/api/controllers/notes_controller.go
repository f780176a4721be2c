package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"paceline/internal/models/request_models"
	"paceline/internal/services"
	"paceline/pkg/utils"
)

type NotesController struct {
	noteService services.NoteServiceInterface
}

func NewNotesController(noteService services.NoteServiceInterface) *NotesController {
	return &NotesController{noteService: noteService}
}

func (n *NotesController) ListNotes(c *gin.Context) {
	notes, err := n.noteService.ListNotes(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, notes, "Notes fetched successfully")
}

func (n *NotesController) CreateNote(c *gin.Context) {
	var req request_models.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	note, err := n.noteService.CreateNote(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, note, "Note created successfully")
}

func (n *NotesController) GetNote(c *gin.Context) {
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid note ID")
		return
	}

	note, err := n.noteService.GetNote(c.Request.Context(), noteID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, note, "Note fetched successfully")
}

func (n *NotesController) UpdateNote(c *gin.Context) {
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid note ID")
		return
	}

	var req request_models.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	note, err := n.noteService.UpdateNote(c.Request.Context(), noteID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, note, "Note updated successfully")
}

func (n *NotesController) DeleteNote(c *gin.Context) {
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid note ID")
		return
	}

	if err := n.noteService.DeleteNote(c.Request.Context(), noteID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Note deleted")
}
