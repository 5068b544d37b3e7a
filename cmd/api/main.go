package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"studydeck/internal/adapter"
	"studydeck/internal/adapter/extractor"
	"studydeck/internal/adapter/textgen"
	"studydeck/internal/cache"
	"studydeck/internal/config"
	"studydeck/internal/handler"
	"studydeck/internal/logger"
	"studydeck/internal/middleware"
	"studydeck/internal/repository/mongodb"
	"studydeck/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to MongoDB
	ctx := context.Background()
	mongoClient, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		appLogger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			appLogger.Error("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}()
	db := mongoClient.Database(cfg.Mongo.Database)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		appLogger.Fatal("Failed to ensure MongoDB indexes", zap.Error(err))
	}
	appLogger.Info("Successfully connected to MongoDB", zap.String("database", cfg.Mongo.Database))

	// Initialize repositories
	quizRepository := mongodb.NewQuizRepository(db)
	flashcardSetRepository := mongodb.NewFlashcardSetRepository(db)
	attemptRepository := mongodb.NewQuizAttemptRepository(db)
	userRepository := mongodb.NewUserRepository(db)

	// Initialize Redis-backed text cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	textCache := service.NewTextCacheService(cacheAdapter, cfg.Cache)

	// Initialize the generation client
	generator, err := textgen.NewGroqGenerator(cfg.Groq)
	if err != nil {
		appLogger.Fatal("Failed to create generation client", zap.Error(err))
	}
	appLogger.Info("Generation client initialized", zap.String("model", cfg.Groq.Model))

	// Initialize services
	documentService := service.NewDocumentService(extractor.NewPDFExtractor(), textCache)
	quizService := service.NewQuizService(quizRepository, attemptRepository, textCache, generator)
	flashcardService := service.NewFlashcardService(flashcardSetRepository, textCache, generator)
	dashboardService := service.NewDashboardService(userRepository, attemptRepository, quizRepository, flashcardSetRepository)
	authService, err := service.NewAuthService(userRepository, cfg.JWT)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	quizHandler := handler.NewQuizHandler(documentService, quizService)
	flashcardHandler := handler.NewFlashcardHandler(documentService, flashcardService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("studydeck backend is running")
	})

	apiGroup := app.Group("/api")

	authGroup := apiGroup.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	quizGroup := apiGroup.Group("/quizzes", middleware.Protected(authService))
	quizGroup.Post("/upload", quizHandler.Upload)
	quizGroup.Post("/generate", quizHandler.Generate)
	quizGroup.Get("/", quizHandler.List)
	quizGroup.Get("/:quizId", quizHandler.Get)
	quizGroup.Post("/:quizId/submit", quizHandler.Submit)

	flashcardGroup := apiGroup.Group("/flashcards", middleware.Protected(authService))
	flashcardGroup.Post("/upload", flashcardHandler.Upload)
	flashcardGroup.Post("/generate", flashcardHandler.Generate)
	flashcardGroup.Get("/", flashcardHandler.List)

	dashboardGroup := apiGroup.Group("/dashboard", middleware.Protected(authService))
	dashboardGroup.Get("/", dashboardHandler.GetDashboard)
	dashboardGroup.Get("/stats", dashboardHandler.GetStats)
	dashboardGroup.Get("/activity", dashboardHandler.GetActivity)
	dashboardGroup.Get("/performance", dashboardHandler.GetPerformance)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
