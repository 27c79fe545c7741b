package api

import (
	"errors"
	"net/http"

	"dmytrok/workout-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrainingDayHandler holds the training day service dependency.
type TrainingDayHandler struct {
	trainingDayService service.TrainingDayService
}

// NewTrainingDayHandler creates a new TrainingDayHandler.
func NewTrainingDayHandler(trainingDayService service.TrainingDayService) *TrainingDayHandler {
	return &TrainingDayHandler{trainingDayService: trainingDayService}
}

// --- DTOs ---

// ExerciseEntryRequest is one planned exercise in a request body. Order is a
// desired position; the server renumbers every list densely after a change.
type ExerciseEntryRequest struct {
	ExerciseID  string `json:"exerciseId" binding:"required"`
	Sets        int    `json:"sets" binding:"required,min=1"`
	Reps        int    `json:"reps" binding:"required,min=1"`
	RestSeconds int    `json:"restSeconds" binding:"min=0"`
	Order       int    `json:"order"`
}

// MuscleGroupRequest is one muscle group entry in a bulk replace body.
type MuscleGroupRequest struct {
	MuscleGroupID string                 `json:"muscleGroupId" binding:"required"`
	Exercises     []ExerciseEntryRequest `json:"exercises"`
}

// ReplaceMuscleGroupsRequest replaces a day's whole structure.
type ReplaceMuscleGroupsRequest struct {
	MuscleGroups []MuscleGroupRequest `json:"muscleGroups" binding:"required"`
}

// AddMuscleGroupRequest adds one muscle group (optionally with exercises).
type AddMuscleGroupRequest struct {
	MuscleGroupID string                 `json:"muscleGroupId" binding:"required"`
	Exercises     []ExerciseEntryRequest `json:"exercises"`
}

// UpdateMuscleGroupRequest replaces the exercises of one muscle group entry.
type UpdateMuscleGroupRequest struct {
	Exercises []ExerciseEntryRequest `json:"exercises"`
}

// UpdateExerciseRequest adjusts one planned exercise; all fields optional.
type UpdateExerciseRequest struct {
	Sets        *int `json:"sets" binding:"omitempty,min=1"`
	Reps        *int `json:"reps" binding:"omitempty,min=1"`
	RestSeconds *int `json:"restSeconds" binding:"omitempty,min=0"`
	Order       *int `json:"order" binding:"omitempty,min=1"`
}

func exerciseInputsFromRequest(reqs []ExerciseEntryRequest) ([]service.ExerciseEntryInput, error) {
	inputs := make([]service.ExerciseEntryInput, 0, len(reqs))
	for _, r := range reqs {
		exerciseID, err := primitive.ObjectIDFromHex(r.ExerciseID)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, service.ExerciseEntryInput{
			ExerciseID:  exerciseID,
			Sets:        r.Sets,
			Reps:        r.Reps,
			RestSeconds: r.RestSeconds,
			Order:       r.Order,
		})
	}
	return inputs, nil
}

// respondEditError maps training day editor errors onto HTTP statuses:
// missing targets are 404, duplicates 409, bad catalog references 400.
func respondEditError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProgramNotFound),
		errors.Is(err, service.ErrTrainingDayNotFound),
		errors.Is(err, service.ErrMuscleGroupNotInDay),
		errors.Is(err, service.ErrExerciseEntryNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateMuscleGroup),
		errors.Is(err, service.ErrDuplicateExercise):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrUnknownMuscleGroup),
		errors.Is(err, service.ErrInvalidExerciseForGroup):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to update training day.")
	}
}

// dayRouteIDs pulls the authenticated user plus the program/day ids every
// training day route carries.
func dayRouteIDs(c *gin.Context) (userID, programID, dayID primitive.ObjectID, ok bool) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return userID, programID, dayID, false
	}
	programID, err = pathObjectID(c, "id")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid program ID format.")
		return userID, programID, dayID, false
	}
	dayID, err = pathObjectID(c, "dayId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid training day ID format.")
		return userID, programID, dayID, false
	}
	return userID, programID, dayID, true
}

// --- Handler Methods ---

// GetTrainingDays handles GET /workouts/programs/:id/days.
func (h *TrainingDayHandler) GetTrainingDays(c *gin.Context) {
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

	days, err := h.trainingDayService.GetTrainingDays(c.Request.Context(), userID, programID)
	if err != nil {
		respondEditError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": days})
}

// GetTrainingDay handles GET /workouts/programs/:id/days/:dayId.
func (h *TrainingDayHandler) GetTrainingDay(c *gin.Context) {
	userID, programID, dayID, ok := dayRouteIDs(c)
	if !ok {
		return
	}

	day, err := h.trainingDayService.GetTrainingDay(c.Request.Context(), userID, programID, dayID)
	if err != nil {
		respondEditError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": day})
}

// ReplaceMuscleGroups handles PATCH /workouts/programs/:id/days/:dayId.
// The whole payload is validated before anything is written.
func (h *TrainingDayHandler) ReplaceMuscleGroups(c *gin.Context) {
	userID, programID, dayID, ok := dayRouteIDs(c)
	if !ok {
		return
	}
	var req ReplaceMuscleGroupsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	groups := make([]service.MuscleGroupInput, 0, len(req.MuscleGroups))
	for _, g := range req.MuscleGroups {
		muscleGroupID, err := primitive.ObjectIDFromHex(g.MuscleGroupID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid muscle group ID format.")
			return
		}
		exercises, err := exerciseInputsFromRequest(g.Exercises)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
			return
		}
		groups = append(groups, service.MuscleGroupInput{
			MuscleGroupID: muscleGroupID,
			Exercises:     exercises,
		})
	}

	day, err := h.trainingDayService.ReplaceMuscleGroups(c.Request.Context(), userID, programID, dayID, groups)
	if err != nil {
		respondEditError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": day, "message": "Training day updated"})
}

// AddMuscleGroup handles POST /workouts/programs/:id/days/:dayId/muscle-groups.
func (h *TrainingDayHandler) AddMuscleGroup(c *gin.Context) {
	userID, programID, dayID, ok := dayRouteIDs(c)
	if !ok {
		return
	}
	var req AddMuscleGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	muscleGroupID, err := primitive.ObjectIDFromHex(req.MuscleGroupID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid muscle group ID format.")
		return
	}
	exercises, err := exerciseInputsFromRequest(req.Exercises)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	day, err := h.trainingDayService.AddMuscleGroup(c.Request.Context(), userID, programID, dayID, muscleGroupID, exercises)
	if err != nil {
		respondEditError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": day, "message": "Muscle group added to training day"})
}

// UpdateMuscleGroup handles PATCH .../muscle-groups/:muscleGroupId.
func (h *TrainingDayHandler) UpdateMuscleGroup(c *gin.Context) {
	userID, programID, dayID, ok := dayRouteIDs(c)
	if !ok {
		return
	}
	muscleGroupID, err := pathObjectID(c, "muscleGroupId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid muscle group ID format.")
		return
	}
	var req UpdateMuscleGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	exercises, err := exerciseInputsFromRequest(req.Exercises)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	day, err := h.trainingDayService.UpdateMuscleGroup(c.Request.Context(), userID, programID, dayID, muscleGroupID, exercises)
	if err != nil {
		respondEditError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": day, "message": "Muscle group updated"})
}

// DeleteMuscleGroup handles DELETE .../muscle-groups/:muscleGroupId.
func (h *TrainingDayHandler) DeleteMuscleGroup(c *gin.Context) {
	userID, programID, dayID, ok := dayRouteIDs(c)
	if !ok {
		return
	}
	muscleGroupID, err := pathObjectID(c, "muscleGroupId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid muscle group ID format.")
		return
	}

	day, err := h.trainingDayService.RemoveMuscleGroup(c.Request.Context(), userID, programID, dayID, muscleGroupID)
	if err != nil {
		respondEditError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": day, "message": "Muscle group removed from training day"})
}

// AddExercise handles POST .../muscle-groups/:muscleGroupId/exercises.
func (h *TrainingDayHandler) AddExercise(c *gin.Context) {
	userID, programID, dayID, ok := dayRouteIDs(c)
	if !ok {
		return
	}
	muscleGroupID, err := pathObjectID(c, "muscleGroupId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid muscle group ID format.")
		return
	}
	var req ExerciseEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	exerciseID, err := primitive.ObjectIDFromHex(req.ExerciseID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	day, err := h.trainingDayService.AddExercise(c.Request.Context(), userID, programID, dayID, muscleGroupID, service.ExerciseEntryInput{
		ExerciseID:  exerciseID,
		Sets:        req.Sets,
		Reps:        req.Reps,
		RestSeconds: req.RestSeconds,
		Order:       req.Order,
	})
	if err != nil {
		respondEditError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": day, "message": "Exercise added to muscle group"})
}

// UpdateExercise handles PATCH .../exercises/:exerciseId.
func (h *TrainingDayHandler) UpdateExercise(c *gin.Context) {
	userID, programID, dayID, ok := dayRouteIDs(c)
	if !ok {
		return
	}
	muscleGroupID, err := pathObjectID(c, "muscleGroupId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid muscle group ID format.")
		return
	}
	exerciseID, err := pathObjectID(c, "exerciseId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}
	var req UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	day, err := h.trainingDayService.UpdateExercise(c.Request.Context(), userID, programID, dayID, muscleGroupID, exerciseID, service.ExerciseEntryUpdate{
		Sets:        req.Sets,
		Reps:        req.Reps,
		RestSeconds: req.RestSeconds,
		Order:       req.Order,
	})
	if err != nil {
		respondEditError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": day, "message": "Exercise updated"})
}

// DeleteExercise handles DELETE .../exercises/:exerciseId.
func (h *TrainingDayHandler) DeleteExercise(c *gin.Context) {
	userID, programID, dayID, ok := dayRouteIDs(c)
	if !ok {
		return
	}
	muscleGroupID, err := pathObjectID(c, "muscleGroupId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid muscle group ID format.")
		return
	}
	exerciseID, err := pathObjectID(c, "exerciseId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	day, err := h.trainingDayService.RemoveExercise(c.Request.Context(), userID, programID, dayID, muscleGroupID, exerciseID)
	if err != nil {
		respondEditError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": day, "message": "Exercise removed from muscle group"})
}
