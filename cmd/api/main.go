package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/question-bank/internal/config"
	"github.com/yourusername/question-bank/internal/domain/repository"
	"github.com/yourusername/question-bank/internal/handler"
	"github.com/yourusername/question-bank/internal/handler/dto"
	"github.com/yourusername/question-bank/internal/middleware"
	pgRepo "github.com/yourusername/question-bank/internal/repository/postgres"
	redisRepo "github.com/yourusername/question-bank/internal/repository/redis"
	"github.com/yourusername/question-bank/internal/service"
	"github.com/yourusername/question-bank/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)

	// Кеш опционален: без Redis сервисы прозрачно ходят в хранилище
	var cacheRepo repository.CacheRepository
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Redis недоступен, работаем без кеша: %v", err)
	} else {
		log.Println("Successfully connected to Redis")
		repo, err := redisRepo.NewCacheRepo(redisClient)
		if err != nil {
			log.Printf("Failed to initialize CacheRepo: %v", err)
			os.Exit(1)
		}
		cacheRepo = repo
	}

	// Инициализируем сервисы
	questionService := service.NewQuestionService(questionRepo, categoryRepo, cacheRepo)
	categoryService := service.NewCategoryService(categoryRepo, cacheRepo)
	quizService := service.NewQuizService(questionRepo, categoryRepo, nil)

	// Инициализируем обработчики
	questionHandler := handler.NewQuestionHandler(questionService, categoryService)
	categoryHandler := handler.NewCategoryHandler(categoryService, questionService)
	quizHandler := handler.NewQuizHandler(quizService)

	// Инициализируем роутер Gin
	router := gin.Default()

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS: API публичный, origins не ограничиваем
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Единые тела ошибок для несуществующих маршрутов и неверных методов
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound))
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(http.StatusMethodNotAllowed))
	})

	// Настраиваем маршруты API
	categories := router.Group("/categories")
	{
		categories.GET("", categoryHandler.ListCategories)

		categoryWithID := categories.Group("/:id")
		categoryWithID.Use(middleware.ExtractUintParam("id", "categoryID")) // Применяем middleware
		{
			categoryWithID.GET("/questions", categoryHandler.QuestionsByCategory)
		}
	}

	questions := router.Group("/questions")
	{
		questions.GET("", questionHandler.ListQuestions)
		questions.POST("", questionHandler.CreateQuestion)

		questionWithID := questions.Group("/:id")
		questionWithID.Use(middleware.ExtractUintParam("id", "questionID")) // Применяем middleware
		{
			questionWithID.DELETE("", questionHandler.DeleteQuestion)
		}
	}

	router.POST("/searchQuestions", questionHandler.SearchQuestions)
	router.POST("/quizzes", quizHandler.PlayQuiz)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Server.Port)

	// Ждем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
