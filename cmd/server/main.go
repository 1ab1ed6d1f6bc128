package main

import (
	"academia/workout-app/internal/api"
	"academia/workout-app/internal/backup"
	"academia/workout-app/internal/config"
	"academia/workout-app/internal/offline"
	"academia/workout-app/internal/repository/sqlite"
	"academia/workout-app/internal/service"
	"academia/workout-app/internal/storage"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	log.Println("Starting Academia App Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	if cfg.Log.File != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAgeDays,
		})
	}

	// --- Document Store ---
	// One store per process; every collaborator below shares it.
	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("FATAL: Could not open database: %v", err)
	}
	defer func() {
		log.Println("Closing database...")
		if err := db.Close(); err != nil {
			log.Printf("ERROR: Failed to close database: %v", err)
		}
	}()
	if err := db.InitSchema(); err != nil {
		log.Fatalf("FATAL: Could not initialize schema: %v", err)
	}
	log.Println("Database ready.")

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	exerciseRepo := sqlite.NewExerciseRepository(db)
	workoutRepo := sqlite.NewWorkoutRepository(db)
	logRepo := sqlite.NewLogRepository(db)
	userRepo := sqlite.NewUserRepository(db)

	// --- Seed Catalog (first run only) ---
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err := service.SeedCatalog(seedCtx, exerciseRepo); err != nil {
		cancelSeed()
		log.Fatalf("FATAL: Could not seed catalog: %v", err)
	}
	cancelSeed()

	// --- Offline Sync ---
	log.Println("Initializing offline sync...")
	queue, err := offline.OpenQueue(cfg.Sync.QueuePath, nil)
	if err != nil {
		log.Fatalf("FATAL: Could not open sync queue: %v", err)
	}
	monitor := offline.NewMonitor(cfg.Sync.InitiallyOnline, nil)
	// Without a remote there is nothing to replay against, so mutations
	// are not mirrored into the queue either.
	var recorder service.MutationRecorder
	if cfg.Sync.RemoteURL != "" {
		replayer := offline.NewHTTPReplayer(cfg.Sync.RemoteURL, nil)
		monitor.OnOnline(func() {
			queue.Flush(context.Background(), replayer)
		})
		recorder = offline.NewMirror(queue, monitor)
	}

	// --- Initialize Services ---
	log.Println("Initializing services...")
	catalogService := service.NewCatalogService(exerciseRepo, recorder)
	workoutService := service.NewWorkoutService(workoutRepo, recorder)
	logbookService := service.NewLogbookService(logRepo, exerciseRepo, recorder)
	userService := service.NewUserService(userRepo)
	transferService := service.NewTransferService(exerciseRepo, workoutRepo, logRepo)

	// --- Snapshot Backups ---
	var snapshotStorage storage.SnapshotStorage
	if cfg.Backup.S3Enabled {
		snapshotStorage, err = storage.NewS3Storage(cfg.Backup.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize snapshot storage: %v", err)
		}
	}
	backupService := backup.NewService(transferService, monitor, snapshotStorage, cfg.Backup.Dir, nil)
	if cfg.Backup.Schedule != "" {
		scheduler, err := backupService.Schedule(cfg.Backup.Schedule)
		if err != nil {
			log.Fatalf("FATAL: Could not schedule backups: %v", err)
		}
		defer scheduler.Stop()
	}
	if cfg.Backup.ImportDir != "" {
		watcher := backup.NewWatcher(transferService, cfg.Backup.ImportDir, nil)
		if err := watcher.Start(); err != nil {
			log.Fatalf("FATAL: Could not watch import directory: %v", err)
		}
		defer watcher.Stop()
	}

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, catalogService, workoutService, logbookService, userService, transferService, queue, monitor)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
