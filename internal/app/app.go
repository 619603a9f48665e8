package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"english_quest_backend/internal/config"
	"english_quest_backend/internal/controller"
	"english_quest_backend/internal/repository"
	"english_quest_backend/internal/service"
	"english_quest_backend/internal/util"
	"english_quest_backend/pkg/configwatcher"
	"english_quest_backend/pkg/database"
	"english_quest_backend/pkg/logger"
	"english_quest_backend/pkg/monitoring"
	"english_quest_backend/pkg/security"
	"english_quest_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config     *config.Config
	ConfigPath string
	Router     *gin.Engine
	DB         *gorm.DB
	Redis      *redis.Client
	Store      repository.KVStore

	repos           *repositories
	services        *services
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)

	// 后台任务（任务重置、配置监听、限流清理）的生命周期
	ctx    context.Context
	cancel context.CancelFunc
}

type repositories struct {
	user       *repository.UserRepository
	category   *repository.CategoryRepository
	progress   *repository.ProgressRepository
	session    *repository.SessionRepository
	completion *repository.CompletionRepository
	mission    *repository.MissionRepository
	preference *repository.PreferenceRepository
}

type services struct {
	auth        *service.AuthService
	user        *service.UserService
	storage     *service.StorageService
	content     *service.ContentService
	mission     *service.MissionService
	scoring     *service.ScoringService
	assessment  *service.AssessmentService
	analytics   *service.AnalyticsService
	leaderboard *service.LeaderboardService
	preference  *service.PreferenceService
	generator   *service.GeneratorService
}

type controllers struct {
	auth         *controller.AuthController
	content      *controller.ContentController
	assessment   *controller.AssessmentController
	analytics    *controller.AnalyticsController
	gamification *controller.GamificationController
	user         *controller.UserController
	preference   *controller.PreferenceController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// openStore connects the backends the configured store needs.
func (a *App) openStore(cfg *config.Config) error {
	backend := cfg.Store.Backend
	if backend == util.StoreGorm || cfg.MigrateOnly {
		db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == gin.DebugMode)
		if err != nil {
			return fmt.Errorf("initialize database: %w", err)
		}
		a.DB = db
	}
	if backend == util.StoreRedis || cfg.Redis.Enabled {
		rdb, err := database.InitRedis(a.ctx, &cfg.Redis)
		if err != nil {
			return fmt.Errorf("initialize redis: %w", err)
		}
		a.Redis = rdb
	}

	switch backend {
	case util.StoreGorm:
		a.Store = repository.NewGormKVStore(a.DB)
	case util.StoreRedis:
		a.Store = repository.NewRedisKVStore(a.Redis)
	case util.StoreMemory:
		logger.Log.Warn("Using in-memory store, data will not survive a restart")
		a.Store = repository.NewMemoryKVStore()
	default:
		return fmt.Errorf("unknown store backend %q", backend)
	}
	return nil
}

func (a *App) initRepositories(ctx context.Context, store repository.KVStore) (*repositories, error) {
	var (
		r   repositories
		err error
	)
	if r.user, err = repository.NewUserRepository(ctx, store); err != nil {
		return nil, err
	}
	if r.category, err = repository.NewCategoryRepository(ctx, store); err != nil {
		return nil, err
	}
	if r.progress, err = repository.NewProgressRepository(ctx, store); err != nil {
		return nil, err
	}
	if r.session, err = repository.NewSessionRepository(ctx, store); err != nil {
		return nil, err
	}
	if r.completion, err = repository.NewCompletionRepository(ctx, store); err != nil {
		return nil, err
	}
	if r.mission, err = repository.NewMissionRepository(ctx, store); err != nil {
		return nil, err
	}
	if r.preference, err = repository.NewPreferenceRepository(ctx, store); err != nil {
		return nil, err
	}
	return &r, nil
}

// ResetSeed overwrites every collection with the built-in defaults.
func (a *App) ResetSeed(ctx context.Context) error {
	resets := []struct {
		name  string
		reset func(context.Context) error
	}{
		{"users", a.repos.user.Reset},
		{"categories", a.repos.category.Reset},
		{"progress", a.repos.progress.Reset},
		{"sessions", a.repos.session.Reset},
		{"completions", a.repos.completion.Reset},
		{"missions", a.repos.mission.Reset},
		{"preferences", a.repos.preference.Reset},
	}
	for _, r := range resets {
		if err := r.reset(ctx); err != nil {
			return fmt.Errorf("reset %s: %w", r.name, err)
		}
	}
	logger.Log.Info("Store reset to built-in defaults")
	return nil
}

func (a *App) initServices(ctx context.Context, repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(ctx, cfg)
	s.mission = service.NewMissionService(repos.mission)
	s.auth = service.NewAuthService(repos.user, s.mission, cfg)
	s.user = service.NewUserService(repos.user)
	s.content = service.NewContentService(repos.category)
	s.scoring = service.NewScoringService(repos.user, repos.progress, repos.completion, s.mission)
	s.assessment = service.NewAssessmentService(
		repos.category,
		repos.user,
		repos.progress,
		repos.completion,
		repos.session,
		s.scoring,
	)
	s.analytics = service.NewAnalyticsService(repos.progress, repos.session, repos.user)
	s.leaderboard = service.NewLeaderboardService(repos.user)
	s.preference = service.NewPreferenceService(repos.preference)
	s.generator = service.NewGeneratorService(ctx, cfg.AI, s.storage, s.content)

	// 热更新 AI 配置
	a.RegisterConfigCallback(func(newCfg *config.Config) {
		s.generator.UpdateConfig(a.ctx, newCfg.AI)
	})

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		content:      controller.NewContentController(s.content, s.generator),
		assessment:   controller.NewAssessmentController(s.assessment, s.generator),
		analytics:    controller.NewAnalyticsController(s.analytics),
		gamification: controller.NewGamificationController(s.leaderboard, s.mission),
		user:         controller.NewUserController(s.user),
		preference:   controller.NewPreferenceController(s.preference),
		health:       controller.NewHealthController(a.DB, a.Redis),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(a.ctx, cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(s *services) {
	interval := time.Duration(a.Config.Missions.ResetIntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	if _, err := s.mission.ResetExpired(a.ctx); err != nil {
		logger.Log.Error("Initial mission reset failed", zap.Error(err))
	}
	go s.mission.RunResetLoop(a.ctx, interval)

	if a.ConfigPath != "" {
		go func() {
			err := configwatcher.WatchConfig(a.ctx, a.ConfigPath, func(newCfg *config.Config) {
				for _, cb := range a.configCallbacks {
					cb(newCfg)
				}
			})
			if err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}
}

// NewApp wires the whole service. With cfg.MigrateOnly it stops after the schema migration.
func NewApp(cfg *config.Config, configPath string) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		Config:     cfg,
		ConfigPath: configPath,
		ctx:        ctx,
		cancel:     cancel,
	}

	if err := app.openStore(cfg); err != nil {
		app.Close()
		return nil, err
	}
	if cfg.MigrateOnly {
		return app, nil
	}

	repos, err := app.initRepositories(ctx, app.Store)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("load collections: %w", err)
	}
	app.repos = repos
	if cfg.ResetSeed {
		if err := app.ResetSeed(ctx); err != nil {
			app.Close()
			return nil, err
		}
	}

	app.services = app.initServices(ctx, repos, cfg)
	controllers := app.initControllers(app.services)

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("english-quest", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Server.Mode == gin.DebugMode {
		router.Use(gin.Logger())
	}
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(app.services)
	return app, nil
}

// Close stops background tasks and releases connections.
func (a *App) Close() {
	a.cancel()
	if a.tracer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = logger.Log.Sync()
}

func (a *App) Run() error {
	defer a.Close()

	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Log.Info("Server exiting")
	return nil
}
