package api

import (
	"net/http"

	"dmytrok/workout-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRoutes registers every API route on the router. Everything except
// registration, login and the health endpoints sits behind JWT auth.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	dbClient *mongo.Client,
	authService service.AuthService,
	catalogService service.CatalogService,
	programService service.ProgramService,
	trainingDayService service.TrainingDayService,
	performanceService service.PerformanceService,
) {
	authHandler := NewAuthHandler(authService)
	catalogHandler := NewCatalogHandler(catalogService)
	programHandler := NewProgramHandler(programService)
	trainingDayHandler := NewTrainingDayHandler(trainingDayService)
	performanceHandler := NewPerformanceHandler(performanceService)
	healthHandler := NewHealthHandler(dbClient)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/health", healthHandler.Health)

		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Profile Routes ---
		protected.GET("/profile", authHandler.GetProfile)
		protected.PATCH("/profile", authHandler.UpdateProfile)
		protected.DELETE("/profile", authHandler.DeleteProfile)

		// --- Catalog Routes (shared reference data) ---
		catalogGroup := protected.Group("/catalog")
		{
			catalogGroup.GET("/muscle-groups", catalogHandler.GetMuscleGroups)
			catalogGroup.GET("/exercises", catalogHandler.GetExercises)
			catalogGroup.GET("/exercises/:exerciseId", catalogHandler.GetExercise)
			catalogGroup.GET("/exercises/:exerciseId/video", catalogHandler.GetExerciseVideoURL)
			catalogGroup.POST("/exercises/:exerciseId/video", catalogHandler.RequestVideoUpload)
		}

		// --- Program Routes ---
		programGroup := protected.Group("/workouts/programs")
		{
			programGroup.POST("", programHandler.CreateProgram)
			programGroup.GET("", programHandler.GetPrograms)
			programGroup.GET("/:id", programHandler.GetProgram)
			programGroup.PATCH("/:id", programHandler.UpdateProgram)
			programGroup.DELETE("/:id", programHandler.DeleteProgram)

			// --- Training Day Routes ---
			programGroup.GET("/:id/days", trainingDayHandler.GetTrainingDays)
			programGroup.GET("/:id/days/:dayId", trainingDayHandler.GetTrainingDay)
			programGroup.PATCH("/:id/days/:dayId", trainingDayHandler.ReplaceMuscleGroups)

			programGroup.POST("/:id/days/:dayId/muscle-groups", trainingDayHandler.AddMuscleGroup)
			programGroup.PATCH("/:id/days/:dayId/muscle-groups/:muscleGroupId", trainingDayHandler.UpdateMuscleGroup)
			programGroup.DELETE("/:id/days/:dayId/muscle-groups/:muscleGroupId", trainingDayHandler.DeleteMuscleGroup)

			programGroup.POST("/:id/days/:dayId/muscle-groups/:muscleGroupId/exercises", trainingDayHandler.AddExercise)
			programGroup.PATCH("/:id/days/:dayId/muscle-groups/:muscleGroupId/exercises/:exerciseId", trainingDayHandler.UpdateExercise)
			programGroup.DELETE("/:id/days/:dayId/muscle-groups/:muscleGroupId/exercises/:exerciseId", trainingDayHandler.DeleteExercise)

			// --- Performance & Aggregation Routes ---
			programGroup.POST("/:id/performance", performanceHandler.LogPerformance)
			programGroup.GET("/:id/performance", performanceHandler.GetEntries)
			programGroup.GET("/:id/weeks", performanceHandler.GetAllWeeksSummary)
			programGroup.GET("/:id/weeks/:week", performanceHandler.GetWeekSummary)
			programGroup.GET("/:id/progression/:exerciseId", performanceHandler.GetExerciseProgression)
		}
	}
}
