package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	App struct {
		Env         string `env:"APP_ENV"      envDefault:"development"`
		Port        string `env:"PORT"         envDefault:"8088"`
		FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	}
	DB struct {
		Host     string `env:"DB_HOST"     envDefault:"localhost"`
		Port     string `env:"DB_PORT"     envDefault:"5432"`
		User     string `env:"DB_USER"     envDefault:"postgres"`
		Password string `env:"DB_PASSWORD" envDefault:"password"`
		Name     string `env:"DB_NAME"     envDefault:"squadhub_db"`
		SSLMode  string `env:"DB_SSLMODE"  envDefault:"disable"`
		TimeZone string `env:"DB_TIMEZONE" envDefault:"UTC"`
		// Isolation level for membership and registration transactions.
		TxIsolation string `env:"DB_TX_ISOLATION" envDefault:"serializable"`
	}
	JWT struct {
		AccessTokenSecret        string `env:"JWT_ACCESS_TOKEN_SECRET"         envDefault:"your-very-strong-access-secret"`
		AccessTokenExpiryMinutes int    `env:"JWT_ACCESS_TOKEN_EXPIRY_MINUTES" envDefault:"60"`
		Issuer                   string `env:"JWT_ISSUER"                      envDefault:"squadhub"`
	}
	Storage struct {
		Endpoint        string `env:"STORAGE_ENDPOINT"`
		Region          string `env:"STORAGE_REGION"            envDefault:"auto"`
		Bucket          string `env:"STORAGE_BUCKET"`
		AccessKeyID     string `env:"STORAGE_ACCESS_KEY_ID"`
		SecretAccessKey string `env:"STORAGE_SECRET_ACCESS_KEY"`
		PublicBaseURL   string `env:"STORAGE_PUBLIC_BASE_URL"`
	}
	Squad struct {
		DefaultMinSize int `env:"SQUAD_DEFAULT_MIN_SIZE" envDefault:"4"`
		DefaultMaxSize int `env:"SQUAD_DEFAULT_MAX_SIZE" envDefault:"6"`
		MaxCapacity    int `env:"SQUAD_MAX_CAPACITY"     envDefault:"10"`
	}
}

// StorageEnabled reports whether enough settings exist to talk to the bucket.
func (c *Config) StorageEnabled() bool {
	return c.Storage.Bucket != "" && c.Storage.AccessKeyID != "" && c.Storage.SecretAccessKey != ""
}

// Global DB instance, accessible after ConnectDB() is called via Initialize.
var DB *gorm.DB

var appConfig *Config
var once sync.Once

// LoadConfig loads configuration from the environment into the Config struct.
func LoadConfig() (*Config, error) {
	// It's okay if .env doesn't exist, production sets env vars directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.Squad.DefaultMinSize < 1 || cfg.Squad.DefaultMinSize > cfg.Squad.DefaultMaxSize {
		return nil, fmt.Errorf("invalid squad size defaults: min %d, max %d", cfg.Squad.DefaultMinSize, cfg.Squad.DefaultMaxSize)
	}
	if cfg.Squad.MaxCapacity < cfg.Squad.DefaultMaxSize {
		return nil, fmt.Errorf("SQUAD_MAX_CAPACITY %d is below SQUAD_DEFAULT_MAX_SIZE %d", cfg.Squad.MaxCapacity, cfg.Squad.DefaultMaxSize)
	}

	if cfg.JWT.AccessTokenSecret == "your-very-strong-access-secret" {
		log.Println("WARNING: Using default JWT secret. Please set JWT_ACCESS_TOKEN_SECRET for production.")
	}
	if cfg.DB.Password == "password" && cfg.App.Env == "production" {
		log.Println("WARNING: Using default DB password in production. Please set DB_PASSWORD environment variable.")
	}

	appConfig = cfg
	return cfg, nil
}

// ConnectDB establishes a connection to the database and sets the global DB.
func ConnectDB(dbCfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		dbCfg.DB.Host,
		dbCfg.DB.User,
		dbCfg.DB.Password,
		dbCfg.DB.Name,
		dbCfg.DB.Port,
		dbCfg.DB.SSLMode,
		dbCfg.DB.TimeZone,
	)

	// TranslateError turns unique violations into gorm.ErrDuplicatedKey.
	gormConfig := &gorm.Config{TranslateError: true}
	if dbCfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB
	log.Println("Successfully connected to database!")
	return gormDB, nil
}

// Initialize loads all configurations and connects to the database.
// This should be called once at the start of the application.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg

		_, err = ConnectDB(*appConfig)
		if err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}
