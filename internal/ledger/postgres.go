package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/zhiban/zhiban/internal/config"
	"github.com/zhiban/zhiban/pkg/logger"

	_ "github.com/lib/pq" // PostgreSQL 驱动
)

// openPostgres 连接 PostgreSQL 台账库
func openPostgres(cfg *config.DatabaseConfig) (Store, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("打开数据库连接失败: %w", err)
	}

	// 配置连接池
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// 测试连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Name).
		Msg("台账数据库连接成功")

	return newSQLStore(db, pqRebind)
}
