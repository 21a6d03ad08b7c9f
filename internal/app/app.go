package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"edu_assessment_backend/internal/config"
	"edu_assessment_backend/internal/controller"
	"edu_assessment_backend/internal/repository"
	"edu_assessment_backend/internal/service"
	"edu_assessment_backend/pkg/configwatcher"
	"edu_assessment_backend/pkg/database"
	"edu_assessment_backend/pkg/logger"
	"edu_assessment_backend/pkg/monitoring"
	"edu_assessment_backend/pkg/security"
	"edu_assessment_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user       *repository.UserRepository
	assessment *repository.AssessmentRepository
	argument   *repository.ArgumentRepository
	question   *repository.QuestionRepository
	answer     *repository.AnswerRepository
	lesson     *repository.LessonRepository
}

type services struct {
	auth             *service.AuthService
	storage          *service.StorageService
	assessment       *service.AssessmentService
	assessmentDetail *service.AssessmentDetailService
	argument         *service.ArgumentService
	question         *service.QuestionService
	answer           *service.AnswerService
	lesson           *service.LessonService
}

type controllers struct {
	auth       *controller.AuthController
	assessment *controller.AssessmentController
	argument   *controller.ArgumentController
	question   *controller.QuestionController
	answer     *controller.AnswerController
	lesson     *controller.LessonController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		assessment: repository.NewAssessmentRepository(db),
		argument:   repository.NewArgumentRepository(db),
		question:   repository.NewQuestionRepository(db),
		answer:     repository.NewAnswerRepository(db),
		lesson:     repository.NewLessonRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	var cache *service.DetailCache
	if cfg.Cache.Enabled {
		cache = service.NewDetailCache(rdb, time.Duration(cfg.Cache.DetailTTLSeconds)*time.Second)
	}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.assessment = service.NewAssessmentService(repos.assessment, cache)
	s.assessmentDetail = service.NewAssessmentDetailService(
		repos.assessment,
		repos.lesson,
		repos.argument,
		repos.question,
		repos.answer,
		cache,
	)
	s.argument = service.NewArgumentService(repos.argument, repos.assessment, cache)
	s.question = service.NewQuestionService(repos.question, repos.assessment, repos.argument, cache)
	s.answer = service.NewAnswerService(repos.answer, repos.question, cache)
	s.lesson = service.NewLessonService(repos.lesson, s.storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		assessment: controller.NewAssessmentController(s.assessment, s.assessmentDetail),
		argument:   controller.NewArgumentController(s.argument),
		question:   controller.NewQuestionController(s.question),
		answer:     controller.NewAnswerController(s.answer),
		lesson:     controller.NewLessonController(s.lesson),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) watchConfig(configDir string) {
	configPath := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return
	}
	go configwatcher.WatchConfig(configPath, a.Config, func(cfg interface{}) {
		if newCfg, ok := cfg.(*config.Config); ok {
			a.Config.JWT = newCfg.JWT
			a.Config.Cache = newCfg.Cache
			a.Config.RateLimit = newCfg.RateLimit
			logger.Log.Info("Config reloaded")
		}
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("assessment-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.watchConfig("configs")

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
