// Package logger 提供统一的日志框架
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	logger zerolog.Logger
)

// Level 日志级别
type Level = zerolog.Level

const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
)

// Config 日志配置
type Config struct {
	Level      string `yaml:"level" json:"level"`
	Format     string `yaml:"format" json:"format"` // json/console
	Output     string `yaml:"output" json:"output"` // stdout/stderr/file
	FilePath   string `yaml:"file_path,omitempty" json:"file_path,omitempty"`
	TimeFormat string `yaml:"time_format,omitempty" json:"time_format,omitempty"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     "console",
		Output:     "stdout",
		TimeFormat: time.RFC3339,
	}
}

// Init 初始化日志器
func Init(cfg Config) {
	once.Do(func() {
		level := parseLevel(cfg.Level)
		zerolog.SetGlobalLevel(level)

		var output io.Writer
		switch cfg.Output {
		case "stderr":
			output = os.Stderr
		case "file":
			if cfg.FilePath != "" {
				f, err := os.OpenFile(cfg.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
				if err == nil {
					output = f
				} else {
					output = os.Stdout
				}
			} else {
				output = os.Stdout
			}
		default:
			output = os.Stdout
		}

		if cfg.Format == "console" {
			output = zerolog.ConsoleWriter{
				Out:        output,
				TimeFormat: cfg.TimeFormat,
			}
		}

		logger = zerolog.New(output).With().Timestamp().Logger()
	})
}

// parseLevel 解析日志级别
func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Get 获取日志器
func Get() *zerolog.Logger {
	if logger.GetLevel() == zerolog.Disabled {
		Init(DefaultConfig())
	}
	return &logger
}

// Debug 记录调试日志
func Debug() *zerolog.Event {
	return Get().Debug()
}

// Info 记录信息日志
func Info() *zerolog.Event {
	return Get().Info()
}

// Warn 记录警告日志
func Warn() *zerolog.Event {
	return Get().Warn()
}

// Error 记录错误日志
func Error() *zerolog.Event {
	return Get().Error()
}

// Fatal 记录致命错误日志
func Fatal() *zerolog.Event {
	return Get().Fatal()
}

// WithError 添加错误信息
func WithError(err error) *zerolog.Event {
	return Get().Error().Err(err)
}

// EngineLogger 值班引擎专用日志器
type EngineLogger struct {
	base *zerolog.Logger
}

// NewEngineLogger 创建值班引擎日志器
func NewEngineLogger() *EngineLogger {
	l := Get().With().Str("component", "roster").Logger()
	return &EngineLogger{base: &l}
}

// StartRun 记录排班开始
func (l *EngineLogger) StartRun(runID string, year, month, people, days int) {
	l.base.Info().
		Str("run_id", runID).
		Int("year", year).
		Int("month", month).
		Int("people", people).
		Int("days", days).
		Msg("开始生成值班表")
}

// ForcedAssignment 记录强制指派
func (l *EngineLogger) ForcedAssignment(day int, names []string) {
	l.base.Info().
		Int("day", day).
		Strs("names", names).
		Msg("其余人都讨厌该日，强制指派仅剩的两人")
}

// QuotaPlacement 记录配额预指派
func (l *EngineLogger) QuotaPlacement(name, category string, day int) {
	l.base.Debug().
		Str("name", name).
		Str("category", category).
		Int("day", day).
		Msg("按意愿配额预指派")
}

// LeadSwap 记录主值角色交换
func (l *EngineLogger) LeadSwap(day int, from, to string) {
	l.base.Debug().
		Int("day", day).
		Str("from", from).
		Str("to", to).
		Msg("配平交换主值角色")
}

// RunComplete 记录排班完成
func (l *EngineLogger) RunComplete(runID string, duration time.Duration, assignments, swaps int) {
	l.base.Info().
		Str("run_id", runID).
		Dur("duration", duration).
		Int("assignments", assignments).
		Int("lead_swaps", swaps).
		Msg("值班表生成完成")
}
