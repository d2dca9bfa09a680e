package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Monitor  MonitorConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	SentinelCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// MonitorConfig - окна выборки для диспатча объявлений
type MonitorConfig struct {
	SendingFrequencyMinutes int
	LastMinutesGetting      int
}

// WorkerConfig - настройки фонового воркера очистки
type WorkerConfig struct {
	Enabled           bool
	RetentionDays     int
	RetentionSchedule string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			SentinelCacheTTL: time.Duration(viper.GetInt("SENTINEL_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Monitor: MonitorConfig{
			SendingFrequencyMinutes: viper.GetInt("SENDING_FREQUENCY_MINUTES"),
			LastMinutesGetting:      viper.GetInt("LAST_MINUTES_GETTING"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			RetentionDays:     viper.GetInt("RETENTION_DAYS"),
			RetentionSchedule: viper.GetString("RETENTION_SCHEDULE"),
		},
	}

	// Set default values if not provided
	if cfg.Monitor.SendingFrequencyMinutes == 0 {
		cfg.Monitor.SendingFrequencyMinutes = 60
	}
	if cfg.Monitor.LastMinutesGetting == 0 {
		cfg.Monitor.LastMinutesGetting = 30
	}
	if cfg.Cache.SentinelCacheTTL == 0 {
		cfg.Cache.SentinelCacheTTL = 300 * time.Second
	}
	if cfg.Worker.RetentionDays == 0 {
		cfg.Worker.RetentionDays = 30
	}
	if cfg.Worker.RetentionSchedule == "" {
		cfg.Worker.RetentionSchedule = "0 3 * * *"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
