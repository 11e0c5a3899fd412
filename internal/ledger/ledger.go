// Package ledger 提供跨月的值班台账存储
//
// 台账以 (姓名, 年, 月, 类别) 四元组为主键记录每人每月各类别的
// 值班次数，用于跨月的负荷均衡参考。默认用本地 SQLite 文件，
// 也可以配置成 PostgreSQL。
package ledger

import (
	"context"
	"fmt"

	"github.com/zhiban/zhiban/internal/config"
)

// Category 台账统计类别
type Category string

const (
	CategoryAll             Category = "ALL"  // 全部值班天
	CategoryWeekend         Category = "WE"   // 非节假日的周六加周日
	CategoryFriday          Category = "FR"   // 非节假日的周五
	CategorySunday          Category = "SU"   // 非节假日的周日
	CategoryHolidayWeekday  Category = "NHWD" // 落在周一到周四的节假日
	CategoryHolidayFriday   Category = "NHFR" // 落在周五的节假日
	CategoryHolidaySaturday Category = "NHSA" // 落在周六的节假日
	CategoryHolidaySunday   Category = "NHSU" // 落在周日的节假日
)

// Categories 全部类别，写入和汇总时按此顺序遍历
var Categories = []Category{
	CategoryAll,
	CategoryWeekend,
	CategoryFriday,
	CategorySunday,
	CategoryHolidayWeekday,
	CategoryHolidayFriday,
	CategoryHolidaySaturday,
	CategoryHolidaySunday,
}

// Store 台账存储
type Store interface {
	// Sum 汇总某人某类别在指定年月之前（不含当月）的累计值
	Sum(ctx context.Context, name string, category Category, year, month int) (int, error)
	// Write 写入某人某年月某类别的值，同键覆盖
	Write(ctx context.Context, name string, year, month int, category Category, value int) error
	// Names 返回台账里出现过的所有人名，字母序
	Names(ctx context.Context) ([]string, error)
	Close() error
}

// Open 按配置打开台账存储
func Open(cfg *config.LedgerConfig) (Store, error) {
	switch cfg.Driver {
	case "sqlite", "":
		return openSQLite(cfg.Path)
	case "postgres":
		return openPostgres(&cfg.Database)
	default:
		return nil, fmt.Errorf("不支持的台账驱动: %s", cfg.Driver)
	}
}
