package report

import (
	"context"
	"sort"

	"github.com/zhiban/zhiban/internal/ledger"
	"github.com/zhiban/zhiban/pkg/roster"
)

// 补偿系数，周末和节假日的权重高于工作日
const (
	sbWeekendFriday   = 3.6
	sbWeekendSaturday = 9.6
	sbWeekendSunday   = 6.0
	sbWeekendHoliday  = 9.6

	sbWeekdayMonThu = 3.2
	sbWeekdayFriday = 1.4
	sbWeekdaySunday = 1.8
)

// CumulativeRow 一个人的跨月累计汇总
type CumulativeRow struct {
	Name      string
	MonToThu  int
	Friday    int
	Saturday  int
	Sunday    int
	Holiday   int
	WeekendSB float64
	WeekdaySB float64
	TotalSB   float64
}

// UpdateLedger 把当月各人各类别的天数回写台账
func UpdateLedger(ctx context.Context, store ledger.Store, result *roster.Result) error {
	summary := Summarize(result)
	for _, name := range sortedKeys(summary) {
		counts := summary[name]
		for _, cat := range ledger.Categories {
			err := store.Write(ctx, name, result.Year, int(result.Month), cat, counts.Category(cat))
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Cumulative 生成截至当月（含当月）的累计汇总
// 覆盖当月值班的人和台账里出现过的所有人
func Cumulative(ctx context.Context, store ledger.Store, result *roster.Result) ([]CumulativeRow, error) {
	summary := Summarize(result)

	nameSet := make(map[string]struct{}, len(summary))
	for name := range summary {
		nameSet[name] = struct{}{}
	}
	ledgerNames, err := store.Names(ctx)
	if err != nil {
		return nil, err
	}
	for _, name := range ledgerNames {
		nameSet[name] = struct{}{}
	}

	names := make([]string, 0, len(nameSet))
	for name := range nameSet {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]CumulativeRow, 0, len(names))
	for _, name := range names {
		counts := summary[name]

		prior := make(map[ledger.Category]int, len(ledger.Categories))
		for _, cat := range ledger.Categories {
			v, err := store.Sum(ctx, name, cat, result.Year, int(result.Month))
			if err != nil {
				return nil, err
			}
			prior[cat] = v
		}

		all := prior[ledger.CategoryAll] + counts.Category(ledger.CategoryAll)
		fr := prior[ledger.CategoryFriday] + counts.Category(ledger.CategoryFriday)
		su := prior[ledger.CategorySunday] + counts.Category(ledger.CategorySunday)
		we := prior[ledger.CategoryWeekend] + counts.Category(ledger.CategoryWeekend)
		nhwd := prior[ledger.CategoryHolidayWeekday] + counts.Category(ledger.CategoryHolidayWeekday)
		nhfr := prior[ledger.CategoryHolidayFriday] + counts.Category(ledger.CategoryHolidayFriday)
		nhsa := prior[ledger.CategoryHolidaySaturday] + counts.Category(ledger.CategoryHolidaySaturday)
		nhsu := prior[ledger.CategoryHolidaySunday] + counts.Category(ledger.CategoryHolidaySunday)

		nh := nhwd + nhfr + nhsa + nhsu
		monToThu := all - (we + nhsa + nhsu) - (fr + nhfr) - nhwd
		sa := we - su

		weekendSB := sbWeekendFriday*float64(fr) +
			sbWeekendSaturday*float64(sa) +
			sbWeekendSunday*float64(su) +
			sbWeekendHoliday*float64(nh)
		weekdaySB := sbWeekdayMonThu*float64(monToThu) +
			sbWeekdayFriday*float64(fr) +
			sbWeekdaySunday*float64(su)

		rows = append(rows, CumulativeRow{
			Name:      name,
			MonToThu:  monToThu,
			Friday:    fr,
			Saturday:  sa,
			Sunday:    su,
			Holiday:   nh,
			WeekendSB: weekendSB,
			WeekdaySB: weekdaySB,
			TotalSB:   weekendSB + weekdaySB,
		})
	}
	return rows, nil
}
