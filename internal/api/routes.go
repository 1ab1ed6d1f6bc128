package api

import (
	"academia/workout-app/internal/offline"
	"academia/workout-app/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	catalogService service.CatalogService,
	workoutService service.WorkoutService,
	logbookService service.LogbookService,
	userService service.UserService,
	transferService service.TransferService,
	queue *offline.Queue,
	monitor *offline.Monitor,
) {

	exerciseHandler := NewExerciseHandler(catalogService)
	workoutHandler := NewWorkoutHandler(workoutService)
	logHandler := NewLogHandler(logbookService)
	userHandler := NewUserHandler(userService)
	transferHandler := NewTransferHandler(transferService)
	syncHandler := NewSyncHandler(queue, monitor)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiV1 := router.Group("/api/v1")
	{
		exerciseGroup := apiV1.Group("/exercises")
		{
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
			exerciseGroup.PUT("/:id", exerciseHandler.UpdateExercise)
		}

		workoutGroup := apiV1.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
		}

		logGroup := apiV1.Group("/logs")
		{
			logGroup.POST("", logHandler.CreateLog)
			logGroup.GET("", logHandler.ListLogs)
			logGroup.GET("/stats", logHandler.GetStats)
			logGroup.GET("/:id", logHandler.GetLog)
		}

		userGroup := apiV1.Group("/users")
		{
			userGroup.POST("", userHandler.CreateUser)
			userGroup.GET("", userHandler.ListUsers)
			userGroup.GET("/:id", userHandler.GetUser)
			userGroup.PUT("/:id", userHandler.UpdateUser)
		}

		apiV1.GET("/export", transferHandler.Export)
		apiV1.POST("/import", transferHandler.Import)

		syncGroup := apiV1.Group("/sync")
		{
			syncGroup.POST("/online", syncHandler.SetOnline)
			syncGroup.POST("/offline", syncHandler.SetOffline)
			syncGroup.GET("/status", syncHandler.Status)
			syncGroup.GET("/queue", syncHandler.Queue)
		}
	}
}
