// Package report 负责把排班结果渲染成对外产物
//
// 包含月度文本报告、可再次被偏好解析器读取的 CSV、台账回写，
// 以及带跨月累计和补偿系数的汇总行。
package report

import (
	"sort"
	"time"

	"github.com/zhiban/zhiban/internal/ledger"
	"github.com/zhiban/zhiban/pkg/roster"
)

// Counts 一个人在单个月里各类别的值班天数
// 周五/周六/周日只统计非节假日的；落在节假日的天单独归类
type Counts struct {
	All             int
	Friday          int
	Saturday        int
	Sunday          int
	HolidayWeekday  int
	HolidaySaturday int
	HolidaySunday   int
	HolidayFriday   int
}

// Category 按台账类别取值，WE 为非节假日的周六加周日
func (c Counts) Category(cat ledger.Category) int {
	switch cat {
	case ledger.CategoryAll:
		return c.All
	case ledger.CategoryWeekend:
		return c.Saturday + c.Sunday
	case ledger.CategoryFriday:
		return c.Friday
	case ledger.CategorySunday:
		return c.Sunday
	case ledger.CategoryHolidayWeekday:
		return c.HolidayWeekday
	case ledger.CategoryHolidayFriday:
		return c.HolidayFriday
	case ledger.CategoryHolidaySaturday:
		return c.HolidaySaturday
	case ledger.CategoryHolidaySunday:
		return c.HolidaySunday
	default:
		return 0
	}
}

// Summarize 按人统计当月各类别的值班天数
func Summarize(result *roster.Result) map[string]Counts {
	summary := make(map[string]Counts)
	for day, names := range result.Scheduled {
		weekday := time.Date(result.Year, result.Month, day, 0, 0, 0, 0, time.UTC).Weekday()
		holiday := result.IsHoliday(day)

		for _, name := range names {
			c := summary[name]
			c.All++
			switch {
			case holiday && weekday == time.Friday:
				c.HolidayFriday++
			case holiday && weekday == time.Saturday:
				c.HolidaySaturday++
			case holiday && weekday == time.Sunday:
				c.HolidaySunday++
			case holiday:
				c.HolidayWeekday++
			case weekday == time.Friday:
				c.Friday++
			case weekday == time.Saturday:
				c.Saturday++
			case weekday == time.Sunday:
				c.Sunday++
			}
			summary[name] = c
		}
	}
	return summary
}

// sortedKeys 汇总表的人名按字母序
func sortedKeys(summary map[string]Counts) []string {
	names := make([]string, 0, len(summary))
	for name := range summary {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
