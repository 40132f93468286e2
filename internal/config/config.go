package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Admin     AdminConfig
	Store     StoreConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Remote    RemoteConfig
	Storage   StorageConfig
	Survey    SurveyConfig
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	SkipSync   bool   `mapstructure:"-"` // 启动时不拉取远端数据
	ConfigFile string `mapstructure:"-"` // 实际读取的配置文件，为空表示仅使用默认值与环境变量
}

type ServerConfig struct {
	Port string
	Mode string
}

type AdminConfig struct {
	Password  string        `mapstructure:"password"`
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl_hours"`
}

// StoreConfig selects the backend of the local snapshot mirror.
type StoreConfig struct {
	Type        string `mapstructure:"type"`
	SQLitePath  string `mapstructure:"sqlite_path"`
	SnapshotKey string `mapstructure:"snapshot_key"`
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RemoteConfig struct {
	URL          string        `mapstructure:"url"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout_seconds"`
	PushTimeout  time.Duration `mapstructure:"push_timeout_seconds"`
	QueueSize    int           `mapstructure:"queue_size"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	OSSEndpoint   string `mapstructure:"oss_endpoint"`
	OSSAccessKey  string `mapstructure:"oss_access_key"`
	OSSSecretKey  string `mapstructure:"oss_secret_key"`
	OSSBucket     string `mapstructure:"oss_bucket"`
}

type SurveyConfig struct {
	SessionTTL time.Duration `mapstructure:"session_ttl_minutes"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("admin.password", "1839")
	v.SetDefault("admin.jwt_secret", "change-me")
	v.SetDefault("admin.token_ttl_hours", 12)
	v.SetDefault("store.type", "sqlite")
	v.SetDefault("store.sqlite_path", "data/survey.db")
	v.SetDefault("store.snapshot_key", "survey_app_data")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parsetime", true)
	v.SetDefault("remote.fetch_timeout_seconds", 10)
	v.SetDefault("remote.push_timeout_seconds", 10)
	v.SetDefault("remote.queue_size", 64)
	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.local_path", "exports")
	v.SetDefault("survey.session_ttl_minutes", 60)
	v.SetDefault("rate_limit.max_requests", 300)
	v.SetDefault("rate_limit.window_minutes", 1)
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("SURVEY")
	v.AutomaticEnv()
	setDefaults(v)

	// Admin
	v.BindEnv("admin.password", "ADMIN_PASSWORD")
	v.BindEnv("admin.jwt_secret", "JWT_SECRET")

	// Store
	v.BindEnv("store.type", "STORE_TYPE")
	v.BindEnv("store.sqlite_path", "SQLITE_PATH")

	// Database
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	v.BindEnv("server.mode", "SERVER_MODE")
	v.BindEnv("server.port", "SERVER_PORT")

	// Remote sync
	v.BindEnv("remote.url", "REMOTE_URL")

	// Storage / OSS
	v.BindEnv("storage.type", "STORAGE_TYPE")
	v.BindEnv("storage.oss_endpoint", "OSS_ENDPOINT")
	v.BindEnv("storage.oss_access_key", "OSS_ACCESS_KEY")
	v.BindEnv("storage.oss_secret_key", "OSS_SECRET_KEY")
	v.BindEnv("storage.oss_bucket", "OSS_BUCKET")
	v.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	v.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	v.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	v.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.ConfigFile = v.ConfigFileUsed()
	cfg.Admin.TokenTTL = cfg.Admin.TokenTTL * time.Hour
	cfg.Remote.FetchTimeout = cfg.Remote.FetchTimeout * time.Second
	cfg.Remote.PushTimeout = cfg.Remote.PushTimeout * time.Second
	cfg.Survey.SessionTTL = cfg.Survey.SessionTTL * time.Minute

	if cfg.Admin.Password == "" {
		return nil, fmt.Errorf("admin password must not be empty")
	}
	// 生产环境校验 JWT Secret 强度
	if cfg.Server.Mode == "release" && len(cfg.Admin.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.Admin.JWTSecret))
	}
	if cfg.Remote.QueueSize <= 0 {
		return nil, fmt.Errorf("remote queue size must be positive, got %d", cfg.Remote.QueueSize)
	}

	if cfg.Storage.Type == "local" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}
