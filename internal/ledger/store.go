package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/zhiban/zhiban/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS duty_ledger (
    name  VARCHAR(128) NOT NULL,
    year  INTEGER      NOT NULL,
    month INTEGER      NOT NULL,
    type  VARCHAR(8)   NOT NULL,
    value INTEGER      NOT NULL,
    PRIMARY KEY (name, year, month, type)
)`

// sqlStore 基于 database/sql 的台账实现，SQL 用 ? 占位符书写，
// 由 rebind 转成各方言的形式
type sqlStore struct {
	db     *sql.DB
	rebind func(string) string
}

func newSQLStore(db *sql.DB, rebind func(string) string) (*sqlStore, error) {
	s := &sqlStore{db: db, rebind: rebind}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("初始化台账表失败: %w", err)
	}
	return s, nil
}

func (s *sqlStore) Sum(ctx context.Context, name string, category Category, year, month int) (int, error) {
	query := s.rebind(`
		SELECT COALESCE(SUM(value), 0) FROM duty_ledger
		WHERE name = ? AND type = ?
		  AND (year < ? OR (year = ? AND month < ?))`)

	var total int
	err := s.db.QueryRowContext(ctx, query, name, string(category), year, year, month).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("汇总台账失败: %w", err)
	}
	return total, nil
}

func (s *sqlStore) Write(ctx context.Context, name string, year, month int, category Category, value int) error {
	query := s.rebind(`
		INSERT INTO duty_ledger (name, year, month, type, value)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (name, year, month, type) DO UPDATE SET value = excluded.value`)

	start := time.Now()
	_, err := s.db.ExecContext(ctx, query, name, year, month, string(category), value)
	if d := time.Since(start); d > 100*time.Millisecond {
		logger.Warn().Dur("duration", d).Msg("慢SQL查询")
	}
	if err != nil {
		return fmt.Errorf("写入台账失败: %w", err)
	}
	return nil
}

func (s *sqlStore) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT name FROM duty_ledger ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("查询台账人名失败: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("读取台账人名失败: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}

// noRebind SQLite 直接使用 ? 占位符
func noRebind(query string) string {
	return query
}

// pqRebind 把 ? 占位符改写成 PostgreSQL 的 $1、$2 形式
func pqRebind(query string) string {
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
