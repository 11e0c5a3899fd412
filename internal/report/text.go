package report

import (
	"fmt"
	"io"

	"github.com/zhiban/zhiban/pkg/roster"
)

// WriteText 写出月度文本报告
// 每天一行 "日 -> 主值 - 副值"，节假日追加标记；
// 末尾附每人的当月值班总天数
func WriteText(w io.Writer, result *roster.Result) error {
	for day := 1; day <= result.NumDays; day++ {
		names := result.Scheduled[day]
		if len(names) != 2 {
			continue
		}
		lead := result.Leads[day]
		support := names[0]
		if support == lead {
			support = names[1]
		}

		line := fmt.Sprintf("%d -> %s - %s", day, lead, support)
		if result.IsHoliday(day) {
			line += " - Official Holiday"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	summary := Summarize(result)
	for _, name := range sortedKeys(summary) {
		if _, err := fmt.Fprintf(w, "%s - %d\n", name, summary[name].All); err != nil {
			return err
		}
	}
	return nil
}
