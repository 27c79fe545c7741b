package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"dmytrok/workout-app/internal/domain"
	"dmytrok/workout-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PerformanceHandler holds the performance service dependency.
type PerformanceHandler struct {
	performanceService service.PerformanceService
}

// NewPerformanceHandler creates a new PerformanceHandler.
func NewPerformanceHandler(performanceService service.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{performanceService: performanceService}
}

// --- DTOs ---

// SetPerformanceRequest is one performed set. Weight and reps accept any JSON
// value; non-numeric input counts as 0 instead of failing the whole session.
type SetPerformanceRequest struct {
	Weight any `json:"weight"`
	Reps   any `json:"reps"`
}

// ExercisePerformanceRequest is the performed sets of one exercise.
type ExercisePerformanceRequest struct {
	ExerciseID string                  `json:"exerciseId" binding:"required"`
	Sets       []SetPerformanceRequest `json:"sets" binding:"required,min=1"`
}

// LogPerformanceRequest defines the expected JSON for logging a session.
// Date defaults to now when absent.
type LogPerformanceRequest struct {
	TrainingDayID   string                       `json:"trainingDayId" binding:"required"`
	Date            *time.Time                   `json:"date"`
	PerformanceData []ExercisePerformanceRequest `json:"performanceData" binding:"required,min=1"`
}

// respondPerformanceError maps performance errors onto HTTP statuses.
func respondPerformanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProgramNotFound),
		errors.Is(err, service.ErrTrainingDayNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrExerciseNotPlanned),
		errors.Is(err, service.ErrWeekOutOfRange):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrWeekNotReached):
		abortWithError(c, http.StatusForbidden, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to process performance data.")
	}
}

// --- Handler Methods ---

// LogPerformance handles POST /workouts/programs/:id/performance. Logging the
// same (day, date) twice replaces the earlier entry.
func (h *PerformanceHandler) LogPerformance(c *gin.Context) {
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
	var req LogPerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainingDayID, err := primitive.ObjectIDFromHex(req.TrainingDayID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid training day ID format.")
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	data := make([]service.ExercisePerformanceInput, 0, len(req.PerformanceData))
	for _, ex := range req.PerformanceData {
		exerciseID, err := primitive.ObjectIDFromHex(ex.ExerciseID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
			return
		}
		sets := make([]service.SetPerformanceInput, 0, len(ex.Sets))
		for _, set := range ex.Sets {
			sets = append(sets, service.SetPerformanceInput{Weight: set.Weight, Reps: set.Reps})
		}
		data = append(data, service.ExercisePerformanceInput{ExerciseID: exerciseID, Sets: sets})
	}

	entry, err := h.performanceService.LogPerformance(c.Request.Context(), userID, programID, trainingDayID, date, data)
	if err != nil {
		respondPerformanceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": entry, "message": "Performance logged"})
}

// GetEntries handles GET /workouts/programs/:id/performance.
func (h *PerformanceHandler) GetEntries(c *gin.Context) {
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

	entries, err := h.performanceService.GetEntries(c.Request.Context(), userID, programID)
	if err != nil {
		respondPerformanceError(c, err)
		return
	}
	if entries == nil {
		entries = []domain.PerformanceEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}

// GetWeekSummary handles GET /workouts/programs/:id/weeks/:week. The literal
// "current" selects whatever week the program is in right now.
func (h *PerformanceHandler) GetWeekSummary(c *gin.Context) {
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

	var summary *domain.WeekSummary
	if c.Param("week") == "current" {
		summary, err = h.performanceService.CurrentWeekSummary(c.Request.Context(), userID, programID)
	} else {
		weekNumber, convErr := strconv.Atoi(c.Param("week"))
		if convErr != nil {
			abortWithError(c, http.StatusBadRequest, "Week must be a number.")
			return
		}
		summary, err = h.performanceService.WeekSummary(c.Request.Context(), userID, programID, weekNumber)
	}
	if err != nil {
		respondPerformanceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}

// GetAllWeeksSummary handles GET /workouts/programs/:id/weeks.
func (h *PerformanceHandler) GetAllWeeksSummary(c *gin.Context) {
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

	summaries, err := h.performanceService.AllWeeksSummary(c.Request.Context(), userID, programID)
	if err != nil {
		respondPerformanceError(c, err)
		return
	}
	currentWeek, err := h.performanceService.CurrentWeekNumber(c.Request.Context(), userID, programID)
	if err != nil {
		respondPerformanceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"currentWeek": currentWeek, "weeks": summaries},
	})
}

// GetExerciseProgression handles GET
// /workouts/programs/:id/progression/:exerciseId.
func (h *PerformanceHandler) GetExerciseProgression(c *gin.Context) {
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
	exerciseID, err := pathObjectID(c, "exerciseId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	progression, err := h.performanceService.ExerciseProgression(c.Request.Context(), userID, programID, exerciseID)
	if err != nil {
		respondPerformanceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": progression})
}
