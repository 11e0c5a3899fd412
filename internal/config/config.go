// Package config 提供配置管理
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	App    AppConfig    `yaml:"app"`
	Ledger LedgerConfig `yaml:"ledger"`
	Engine EngineConfig `yaml:"engine"`
}

// AppConfig 应用基础配置
type AppConfig struct {
	Name     string `yaml:"name"`
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`
}

// LedgerConfig 历史台账存储配置
// Driver 为 sqlite 时只用 Path；为 postgres 时使用 DB_* 连接参数
type LedgerConfig struct {
	Driver   string         `yaml:"driver"`
	Path     string         `yaml:"path"`
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	Name            string        `yaml:"name"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	SSLMode         string        `yaml:"ssl_mode"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// DSN 返回数据库连接字符串
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// EngineConfig 值班引擎配置
type EngineConfig struct {
	RebalanceIterations int    `yaml:"rebalance_iterations"`
	Seed                int64  `yaml:"seed"` // 0 表示按时间取种子
	PeopleFile          string `yaml:"people_file"`
	OutDir              string `yaml:"out_dir"`
}

// Load 从环境变量加载配置
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:     getEnv("APP_NAME", "zhiban"),
			Env:      getEnv("APP_ENV", "development"),
			LogLevel: getEnv("APP_LOG_LEVEL", "info"),
		},
		Ledger: LedgerConfig{
			Driver: getEnv("LEDGER_DRIVER", "sqlite"),
			Path:   getEnv("LEDGER_PATH", "keyvaluestore.db"),
			Database: DatabaseConfig{
				Host:            getEnv("DB_HOST", "localhost"),
				Port:            getEnvInt("DB_PORT", 5432),
				Name:            getEnv("DB_NAME", "zhiban"),
				User:            getEnv("DB_USER", "zhiban"),
				Password:        getEnv("DB_PASSWORD", "zhiban123"),
				SSLMode:         getEnv("DB_SSL_MODE", "disable"),
				MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
				ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			},
		},
		Engine: EngineConfig{
			RebalanceIterations: getEnvInt("ENGINE_REBALANCE_ITERATIONS", 10),
			Seed:                getEnvInt64("ENGINE_SEED", 0),
			PeopleFile:          getEnv("ENGINE_PEOPLE_FILE", "config.csv"),
			OutDir:              getEnv("ENGINE_OUT_DIR", "."),
		},
	}

	return cfg, nil
}

// IsDevelopment 检查是否为开发环境
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction 检查是否为生产环境
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// 辅助函数
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
