package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidyai_backend/internal/config"
	"vidyai_backend/internal/controller"
	"vidyai_backend/internal/repository"
	"vidyai_backend/internal/service"
	"vidyai_backend/pkg/database"
	"vidyai_backend/pkg/logger"
	"vidyai_backend/pkg/monitoring"
	"vidyai_backend/pkg/security"
	"vidyai_backend/pkg/tracing"

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
	user        *repository.UserRepository
	profile     *repository.ProfileRepository
	content     *repository.ContentRepository
	activity    *repository.ActivityRepository
	mentor      *repository.MentorRepository
	achievement *repository.AchievementRepository
	emotion     *repository.EmotionRepository
	assessment  *repository.AssessmentRepository
	offline     *repository.OfflineRepository
}

type services struct {
	sessions    service.SessionStore
	storage     *service.StorageService
	translation *service.TranslationService
	vision      *service.VisionService
	ai          *service.AIService
	auth        *service.AuthService
	user        *service.UserService
	content     *service.ContentService
	progress    *service.ProgressService
	learning    *service.LearningService
	assessment  *service.AssessmentService
	mentor      *service.MentorService
	voice       *service.VoiceService
	offline     *service.OfflineService
	dashboard   *service.DashboardService
}

type controllers struct {
	auth       *controller.AuthController
	profile    *controller.ProfileController
	dashboard  *controller.DashboardController
	learning   *controller.LearningController
	assessment *controller.AssessmentController
	mentor     *controller.MentorController
	vision     *controller.VisionController
	voice      *controller.VoiceController
	offline    *controller.OfflineController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		profile:     repository.NewProfileRepository(db),
		content:     repository.NewContentRepository(db),
		activity:    repository.NewActivityRepository(db),
		mentor:      repository.NewMentorRepository(db),
		achievement: repository.NewAchievementRepository(db),
		emotion:     repository.NewEmotionRepository(db),
		assessment:  repository.NewAssessmentRepository(db),
		offline:     repository.NewOfflineRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.sessions = service.NewRedisSessionStore(rdb)
	s.storage = service.NewStorageService(cfg)
	s.translation = service.NewTranslationService(cfg.Translation)
	s.vision = service.NewVisionService(cfg.Vision)
	s.ai = service.NewAIService(cfg.AI)

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, repos.profile)
	s.content = service.NewContentService(repos.content, repos.activity, s.sessions, s.translation)
	s.progress = service.NewProgressService(repos.profile, repos.activity, repos.achievement)
	s.learning = service.NewLearningService(repos.activity, s.sessions, s.progress)
	s.assessment = service.NewAssessmentService(repos.assessment, repos.profile, repos.user, s.progress)
	s.mentor = service.NewMentorService(repos.mentor)
	s.voice = service.NewVoiceService()
	s.offline = service.NewOfflineService(repos.offline, repos.content, s.storage)
	s.dashboard = service.NewDashboardService(repos.profile, repos.activity, repos.achievement, repos.emotion, s.progress, s.content)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, repos *repositories) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth, s.sessions),
		profile:    controller.NewProfileController(s.user),
		dashboard:  controller.NewDashboardController(s.dashboard),
		learning:   controller.NewLearningController(s.auth, s.user, s.content, s.learning, s.ai),
		assessment: controller.NewAssessmentController(s.assessment),
		mentor:     controller.NewMentorController(s.mentor),
		vision:     controller.NewVisionController(s.vision, s.learning, repos.emotion),
		voice:      controller.NewVoiceController(s.voice),
		offline:    controller.NewOfflineController(s.offline),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

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
	controllers := app.initControllers(services, db, repos)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("vidyai-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

// ReloadConfig applies the settings that are safe to change at runtime.
// Connections and services built at startup keep their original settings.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config.CORS = cfg.CORS
	a.Config.RateLimit = cfg.RateLimit
	a.Config.Vision = cfg.Vision
	a.Config.AI = cfg.AI
	a.Config.Translation = cfg.Translation
	logger.Log.Info("Configuration reloaded")
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
