package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"practicego/internal/ai"
	"practicego/internal/audio"
	"practicego/internal/config"
	"practicego/internal/database"
	"practicego/internal/handlers"
	"practicego/internal/progress"
	"practicego/internal/repository"
	"practicego/internal/security"
	"practicego/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Progress engine over the key-value store
	storeRepo := repository.NewStoreRepository(db)
	recordStore := progress.NewRecordStore(storeRepo)
	progressService := progress.NewService(recordStore, progress.SystemClock())

	// Generative AI client
	aiClient, err := ai.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to initialize AI client: %v", err)
	}

	// Services
	authService := service.NewAuthService(cfg.AppUsername, cfg.AppPassword, cfg.AppPasswordHash, cfg.SessionDuration)
	lessonService := service.NewLessonService(storeRepo, aiClient)
	chatService := service.NewChatService(aiClient, progressService)
	ttsService := audio.NewTTSService(cfg.AudioPath)

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	reminderService := service.NewReminderService(progressService, emailService, progress.SystemClock(), cfg.ReminderToEmail, cfg.ReminderAfterHour)

	// Handlers
	middleware := handlers.NewMiddleware(authService)
	loginLimiter := security.NewRateLimiter(5, time.Minute)
	authHandler := handlers.NewAuthHandler(authService)
	progressHandler := handlers.NewProgressHandler(progressService)
	lessonHandler := handlers.NewLessonHandler(lessonService, cfg.UploadMaxSize)
	chatHandler := handlers.NewChatHandler(chatService)
	practiceHandler := handlers.NewPracticeHandler(aiClient, ttsService)

	// Setup routes
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("POST /api/login", handlers.RateLimit(loginLimiter, authHandler.Login))

	// Protected routes
	mux.HandleFunc("POST /api/logout", middleware.RequireAuth(authHandler.Logout))
	mux.HandleFunc("GET /api/progress", middleware.RequireAuth(progressHandler.GetProgress))
	mux.HandleFunc("POST /api/progress/activity", middleware.RequireAuth(progressHandler.RecordActivity))
	mux.HandleFunc("GET /api/achievements", middleware.RequireAuth(progressHandler.GetAchievements))

	mux.HandleFunc("GET /api/lessons", middleware.RequireAuth(lessonHandler.ListLessons))
	mux.HandleFunc("POST /api/lessons", middleware.RequireAuth(lessonHandler.CreateLesson))
	mux.HandleFunc("POST /api/lessons/extract", middleware.RequireAuth(lessonHandler.ExtractLesson))
	mux.HandleFunc("DELETE /api/lessons/{id}", middleware.RequireAuth(lessonHandler.DeleteLesson))
	mux.HandleFunc("POST /api/lessons/{id}/materials", middleware.RequireAuth(lessonHandler.GenerateMaterials))
	mux.HandleFunc("POST /api/lessons/{id}/exercises", middleware.RequireAuth(lessonHandler.GenerateExercises))

	mux.HandleFunc("GET /api/practice/reading", middleware.RequireAuth(practiceHandler.GetReadingText))
	mux.HandleFunc("GET /api/practice/dictation", middleware.RequireAuth(practiceHandler.GetDictationText))
	mux.HandleFunc("GET /api/practice/dictation/audio", middleware.RequireAuth(practiceHandler.GetDictationAudio))
	mux.HandleFunc("POST /api/practice/pronunciation", middleware.RequireAuth(practiceHandler.GetPronunciationFeedback))
	mux.HandleFunc("GET /api/words/{word}", middleware.RequireAuth(practiceHandler.LookupWord))

	mux.HandleFunc("POST /api/chat", middleware.RequireAuth(chatHandler.Chat))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Background jobs
	go cleanupExpiredSessions(authService)
	go runStreakReminders(reminderService)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}

// cleanupExpiredSessions periodically removes expired sessions
func cleanupExpiredSessions(authService *service.AuthService) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		authService.CleanupExpiredSessions()
	}
}

// runStreakReminders checks hourly whether a streak reminder email is
// due.
func runStreakReminders(reminderService *service.ReminderService) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		sent, err := reminderService.Check(ctx)
		cancel()
		if err != nil {
			log.Printf("Error checking streak reminder: %v", err)
		} else if sent {
			log.Println("Streak reminder email sent")
		}
	}
}
