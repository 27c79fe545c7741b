package api

import (
	"errors"
	"net/http"

	"dmytrok/workout-app/internal/domain"
	"dmytrok/workout-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogHandler holds the catalog service dependency.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// RequestVideoUploadRequest defines the expected JSON for requesting an
// exercise demo video upload slot.
type RequestVideoUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// GetMuscleGroups handles GET /catalog/muscle-groups.
func (h *CatalogHandler) GetMuscleGroups(c *gin.Context) {
	groups, err := h.catalogService.GetMuscleGroups(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve muscle groups.")
		return
	}
	if groups == nil {
		groups = []domain.MuscleGroup{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": groups})
}

// GetExercises handles GET /catalog/exercises. An optional muscleGroupId
// query parameter narrows the list to one group.
func (h *CatalogHandler) GetExercises(c *gin.Context) {
	var muscleGroupID *primitive.ObjectID
	if raw := c.Query("muscleGroupId"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid muscle group ID format.")
			return
		}
		muscleGroupID = &id
	}

	exercises, err := h.catalogService.GetExercises(c.Request.Context(), muscleGroupID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
		return
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": exercises})
}

// GetExercise handles GET /catalog/exercises/:exerciseId.
func (h *CatalogHandler) GetExercise(c *gin.Context) {
	exerciseID, err := pathObjectID(c, "exerciseId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	exercise, err := h.catalogService.GetExercise(c.Request.Context(), exerciseID)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercise.")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": exercise})
}

// GetExerciseVideoURL handles GET /catalog/exercises/:exerciseId/video. The
// returned URL is presigned and short-lived.
func (h *CatalogHandler) GetExerciseVideoURL(c *gin.Context) {
	exerciseID, err := pathObjectID(c, "exerciseId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	url, err := h.catalogService.GetExerciseVideoURL(c.Request.Context(), exerciseID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNoVideoAvailable):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to generate video URL.")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"url": url}})
}

// RequestVideoUpload handles POST /catalog/exercises/:exerciseId/video.
func (h *CatalogHandler) RequestVideoUpload(c *gin.Context) {
	exerciseID, err := pathObjectID(c, "exerciseId")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}
	var req RequestVideoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	upload, err := h.catalogService.RequestVideoUpload(c.Request.Context(), exerciseID, req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL.")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"objectKey": upload.ObjectKey, "uploadUrl": upload.UploadURL},
	})
}
