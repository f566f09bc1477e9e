package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Search   SearchConfig
}

type ServerConfig struct {
	Host             string
	Port             int
	Env              string
	CORSAllowOrigins string
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

type LogConfig struct {
	Level string
}

// SearchConfig - параметры страниц и таймаут запросов к хранилищу
type SearchConfig struct {
	DefaultPageSize int
	MaxPageSize     int
	QueryTimeout    time.Duration
}

// Load читает конфигурацию из окружения. Файл .env необязателен:
// если он есть, его значения дополняют окружение, но не перекрывают его.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config %s: %w", f, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Host:             v.GetString("API_HOST"),
			Port:             v.GetInt("API_PORT"),
			Env:              v.GetString("API_ENV"),
			CORSAllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Log: LogConfig{
			Level: strings.ToLower(v.GetString("LOG_LEVEL")),
		},
		Search: SearchConfig{
			DefaultPageSize: v.GetInt("PAGE_DEFAULT_SIZE"),
			MaxPageSize:     v.GetInt("PAGE_MAX_SIZE"),
			QueryTimeout:    time.Duration(v.GetInt("QUERY_TIMEOUT")) * time.Second,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "cadastre")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("PAGE_DEFAULT_SIZE", 50)
	v.SetDefault("PAGE_MAX_SIZE", 100)
	v.SetDefault("QUERY_TIMEOUT", 30)
}

func (c *Config) validate() error {
	if c.Search.DefaultPageSize < 1 {
		return fmt.Errorf("PAGE_DEFAULT_SIZE must be positive, got %d", c.Search.DefaultPageSize)
	}
	if c.Search.MaxPageSize < c.Search.DefaultPageSize {
		return fmt.Errorf("PAGE_MAX_SIZE (%d) is less than PAGE_DEFAULT_SIZE (%d)",
			c.Search.MaxPageSize, c.Search.DefaultPageSize)
	}
	return nil
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
