package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/zhiban/zhiban/pkg/roster"
)

// WriteCSV 写出偏好格式的结果文件
// 每人一行：下划线化的人名、按日序的 w 标记、再按日序的
// f/b 角色标记。该文件可直接被偏好解析器重新读入
func WriteCSV(w io.Writer, result *roster.Result) error {
	days := make(map[string][]int)
	for day, names := range result.Scheduled {
		for _, name := range names {
			days[name] = append(days[name], day)
		}
	}

	names := make([]string, 0, len(days))
	for name := range days {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sort.Ints(days[name])

		fields := []string{strings.ReplaceAll(name, " ", "_")}
		for _, d := range days[name] {
			fields = append(fields, fmt.Sprintf("w%d", d))
		}
		for _, d := range days[name] {
			mark := "b"
			if result.Leads[d] == name {
				mark = "f"
			}
			fields = append(fields, fmt.Sprintf("%s%d", mark, d))
		}

		if _, err := fmt.Fprintln(w, strings.Join(fields, " ")); err != nil {
			return err
		}
	}
	return nil
}
