package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workload_survey/internal/config"
	"workload_survey/internal/controller"
	"workload_survey/internal/model"
	"workload_survey/internal/remote"
	"workload_survey/internal/repository"
	"workload_survey/internal/service"
	"workload_survey/internal/util"
	"workload_survey/pkg/configwatcher"
	"workload_survey/pkg/database"
	"workload_survey/pkg/logger"
	"workload_survey/pkg/monitoring"
	"workload_survey/pkg/security"
	"workload_survey/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const sessionSweepInterval = time.Minute

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Store           repository.KVStore
	services        *services
	configCallbacks []func(*config.Config)

	ctx    context.Context
	cancel context.CancelFunc
	tracer *sdktrace.TracerProvider
}

type services struct {
	remote   *remote.Client
	sync     *service.SyncService
	state    *service.StateService
	sessions *service.SessionService
	storage  *service.StorageService
	reports  *service.ReportService
	auth     *service.AuthService
}

type controllers struct {
	survey *controller.SurveyController
	admin  *controller.AdminController
	report *controller.ReportController
	auth   *controller.AuthController
	health *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

// openStore connects the local snapshot mirror selected by store.type.
func openStore(cfg *config.Config) (repository.KVStore, error) {
	switch cfg.Store.Type {
	case util.StoreSQLite, "":
		db, err := database.InitSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		return repository.NewSQLiteKVStore(db), nil
	case util.StoreMySQL:
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return repository.NewGormKVStore(db), nil
	case util.StoreRedis:
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return repository.NewRedisKVStore(rdb), nil
	}
	return nil, fmt.Errorf("unknown store type %q", cfg.Store.Type)
}

func (a *App) initServices(cfg *config.Config, store repository.KVStore, client *remote.Client) (*services, error) {
	s := &services{remote: client}

	s.sync = service.NewSyncService(client, cfg.Remote.QueueSize, cfg.Remote.PushTimeout)
	s.state = service.NewStateService(repository.NewAppDataRepository(store, cfg.Store.SnapshotKey), s.sync)
	s.sessions = service.NewSessionService(s.state, cfg.Survey.SessionTTL)
	s.storage = service.NewStorageService(&cfg.Storage)
	s.reports = service.NewReportService(s.state, s.storage, model.DefaultAircraft)

	auth, err := service.NewAuthService(&cfg.Admin)
	if err != nil {
		return nil, err
	}
	s.auth = auth
	return s, nil
}

func (a *App) initControllers(s *services, store repository.KVStore, cfg *config.Config) *controllers {
	return &controllers{
		survey: controller.NewSurveyController(s.state, s.sessions),
		admin:  controller.NewAdminController(s.state, s.remote, cfg.Remote.FetchTimeout),
		report: controller.NewReportController(s.reports),
		auth:   controller.NewAuthController(s.auth),
		health: controller.NewHealthController(store, s.remote.Enabled),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if cfg.RateLimit.MaxRequests > 0 && window > 0 {
		router.Use(security.RateLimiter(a.ctx, cfg.RateLimit.MaxRequests, window))
	}

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// bootstrap loads the local mirror and then awaits one bounded remote fetch.
func (a *App) bootstrap(s *services, cfg *config.Config) {
	s.state.Load(a.ctx)

	if cfg.SkipSync || !s.remote.Enabled() {
		logger.Log.Info("Remote sync disabled, running on local data")
		return
	}
	res, err := s.state.Bootstrap(a.ctx, s.remote, cfg.Remote.FetchTimeout)
	if err != nil {
		logger.Log.Warn("Remote fetch failed, continuing with local data", zap.Error(err))
		return
	}
	logger.Log.Info("Remote data merged",
		zap.Int("personnel", res.Personnel),
		zap.Int("responses", res.Responses),
		zap.Int("weights", res.WeightsApplied),
		zap.Int("skipped", res.Skipped))
}

func (a *App) startBackgroundTasks(s *services) {
	s.sync.Start()
	go s.sessions.Run(a.ctx, sessionSweepInterval)

	if a.Config.ConfigFile != "" {
		go func() {
			if err := configwatcher.WatchConfig(a.ctx, a.Config.ConfigFile, config.LoadConfig, a.applyConfig); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}
}

// New wires the application around an already opened store. It is what NewApp uses after
// connecting, and what tests use with a temporary database.
func New(cfg *config.Config, store repository.KVStore, client *remote.Client) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		Config: cfg,
		Store:  store,
		ctx:    ctx,
		cancel: cancel,
	}

	s, err := app.initServices(cfg, store, client)
	if err != nil {
		cancel()
		return nil, err
	}
	app.services = s
	c := app.initControllers(s, store, cfg)

	app.RegisterConfigCallback(logger.ApplyConfig)
	app.RegisterConfigCallback(func(next *config.Config) {
		if err := s.auth.Reload(&next.Admin); err != nil {
			logger.Log.Error("Failed to apply admin config", zap.Error(err))
		}
	})

	// 监控初始化
	monitoring.Init()

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Server.Mode == gin.DebugMode {
		router.Use(gin.Logger())
	}
	app.Router = router
	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, c, s)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/exports", cfg.Storage.LocalPath)
	}

	app.bootstrap(s, cfg)
	app.startBackgroundTasks(s)
	return app, nil
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	switch cfg.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	}

	store, err := openStore(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize local store", zap.String("type", cfg.Store.Type), zap.Error(err))
	}

	var tp *sdktrace.TracerProvider
	if cfg.Tracing.Enabled {
		tp, err = tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	client := remote.NewClient(cfg.Remote.URL, &http.Client{Timeout: 2 * max(cfg.Remote.FetchTimeout, cfg.Remote.PushTimeout)})
	app, err := New(cfg, store, client)
	if err != nil {
		logger.Log.Fatal("Failed to initialize application", zap.Error(err))
	}
	app.tracer = tp
	return app
}

// Close stops background work, drains the sync queue and releases the store.
func (a *App) Close(ctx context.Context) {
	a.cancel()
	if err := a.services.sync.Stop(ctx); err != nil {
		logger.Log.Warn("Sync queue not drained before shutdown", zap.Error(err))
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if err := a.Store.Close(); err != nil {
		logger.Log.Error("Failed to close local store", zap.Error(err))
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置10秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}
	a.Close(ctx)

	log.Println("Server exiting")
}

