package ledger

import (
	"database/sql"
	"fmt"

	"github.com/zhiban/zhiban/pkg/logger"

	_ "github.com/mattn/go-sqlite3" // SQLite 驱动
)

// openSQLite 打开本地 SQLite 台账文件，不存在时自动创建
func openSQLite(path string) (Store, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("打开台账文件失败: %w", err)
	}
	// SQLite 单写者，连接池收敛到 1
	db.SetMaxOpenConns(1)

	logger.Info().Str("path", path).Msg("台账存储就绪")
	return newSQLStore(db, noRebind)
}
