package api

import (
	"errors"
	"net/http"
	"time"

	"dmytrok/workout-app/internal/domain"
	"dmytrok/workout-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgramHandler holds the program service dependency.
type ProgramHandler struct {
	programService service.ProgramService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// --- DTOs ---

// CreateProgramRequest defines the expected JSON for program creation.
// Frequency, split type, duration and start date are fixed once created.
type CreateProgramRequest struct {
	Name              string    `json:"name" binding:"required"`
	TrainingFrequency int       `json:"trainingFrequency" binding:"required,min=3,max=6"`
	SplitType         string    `json:"splitType" binding:"required,oneof=UPPER LOWER"`
	Duration          int       `json:"duration" binding:"required,min=4,max=12"`
	StartDate         time.Time `json:"startDate"`
}

// UpdateProgramRequest defines the only fields mutable after creation.
type UpdateProgramRequest struct {
	Name   *string `json:"name"`
	Status *string `json:"status" binding:"omitempty,oneof=active completed archived"`
}

// --- Handler Methods ---

// CreateProgram handles POST /workouts/programs. Generates the full training
// day skeleton along with the program.
func (h *ProgramHandler) CreateProgram(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	var req CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.programService.CreateProgram(c.Request.Context(), userID, service.CreateProgramInput{
		Name:              req.Name,
		TrainingFrequency: req.TrainingFrequency,
		SplitType:         domain.SplitType(req.SplitType),
		Duration:          req.Duration,
		StartDate:         req.StartDate,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create program.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    gin.H{"program": result.Program, "trainingDays": result.Days},
		"message": "Program created",
	})
}

// GetPrograms handles GET /workouts/programs.
func (h *ProgramHandler) GetPrograms(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	programs, err := h.programService.GetPrograms(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve programs.")
		return
	}
	if programs == nil {
		programs = []domain.WorkoutProgram{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": programs})
}

// GetProgram handles GET /workouts/programs/:id.
func (h *ProgramHandler) GetProgram(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	programID, err := pathObjectID(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid program ID format.")
		return
	}

	program, err := h.programService.GetProgram(c.Request.Context(), userID, programID)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve program.")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": program})
}

// UpdateProgram handles PATCH /workouts/programs/:id.
func (h *ProgramHandler) UpdateProgram(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	programID, err := pathObjectID(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid program ID format.")
		return
	}
	var req UpdateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	input := service.UpdateProgramInput{Name: req.Name}
	if req.Status != nil {
		status := domain.ProgramStatus(*req.Status)
		input.Status = &status
	}

	program, err := h.programService.UpdateProgram(c.Request.Context(), userID, programID, input)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update program.")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": program, "message": "Program updated"})
}

// DeleteProgram handles DELETE /workouts/programs/:id. Cascades to the
// program's training days and performance entries.
func (h *ProgramHandler) DeleteProgram(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	programID, err := pathObjectID(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid program ID format.")
		return
	}

	if err := h.programService.DeleteProgram(c.Request.Context(), userID, programID); err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete program.")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Program deleted"})
}
