// Package prefs 解析文本偏好文件，产出值班偏好记录
//
// 每行一条记录：人名在前（下划线代表空格），其后是空白分隔的标记。
// 关键字标记：nofo hend hweek hmon htue hwen hthu hfri wtue
// 编码标记：w/h/f/b 加单日或区间（如 w3、h10-12），u/p/s/v 加数量，
// +n/-n 设置手工公平偏移。
package prefs

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zhiban/zhiban/pkg/errors"
	"github.com/zhiban/zhiban/pkg/model"
)

// Parse 解析偏好文件，返回人名到偏好记录的映射
func Parse(r io.Reader) (map[string]*model.Person, error) {
	people := make(map[string]*model.Person)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		name := strings.ReplaceAll(fields[0], "_", " ")
		if _, exists := people[name]; exists {
			return nil, errors.InvalidInput("name",
				fmt.Sprintf("第 %d 行: %s 重复定义", lineNo, name))
		}

		person := model.NewPerson(name)
		for _, token := range fields[1:] {
			if err := applyToken(person, token); err != nil {
				// 分类错误码原样上浮，只补行号；其余按输入无效处理
				var appErr *errors.AppError
				if stderrors.As(err, &appErr) {
					return nil, appErr.WithDetails(fmt.Sprintf("第 %d 行", lineNo))
				}
				return nil, errors.Wrap(err, errors.CodeInvalidInput,
					fmt.Sprintf("第 %d 行解析失败", lineNo))
			}
		}
		people[name] = person
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "读取偏好文件失败")
	}

	return people, nil
}

// applyToken 把单个标记应用到偏好记录
func applyToken(p *model.Person, token string) error {
	switch strings.ToLower(token) {
	case "nofo":
		p.SetJunior()
		return nil
	case "hend":
		p.HatesWeekends = true
		return nil
	case "hweek":
		p.HatesWeekdays = true
		return nil
	case "hmon":
		p.HatesMondays = true
		return nil
	case "htue":
		p.HatesTuesdays = true
		return nil
	case "hwen":
		p.HatesWednesdays = true
		return nil
	case "hthu":
		p.HatesThursdays = true
		return nil
	case "hfri":
		p.HatesFridays = true
		return nil
	case "wtue":
		p.WantsTuesdays = true
		return nil
	}

	code := token[0]
	days, err := parseDays(token[1:])
	if err != nil {
		return fmt.Errorf("标记 %q: %w", token, err)
	}

	switch code {
	case 'w':
		for _, d := range days {
			if p.HatesDay(d) {
				return errors.ContradictoryPreference(p.Name, d)
			}
			p.AddWantedDay(d)
		}
	case 'h':
		for _, d := range days {
			if p.WantsDay(d) {
				return errors.ContradictoryPreference(p.Name, d)
			}
			p.AddHatedDay(d)
		}
	case 'f':
		for _, d := range days {
			p.SetRole(d, model.RoleLead)
		}
	case 'b':
		for _, d := range days {
			p.SetRole(d, model.RoleSupport)
		}
	case 'u':
		p.WantedHolidays = days[0]
	case 'p':
		p.WantedFridays = days[0]
	case 's':
		p.WantedSaturdays = days[0]
	case 'v':
		p.WantedSundays = days[0]
	case '+':
		p.ManualOffset = days[0]
	case '-':
		p.ManualOffset = -days[0]
	default:
		return fmt.Errorf("无法识别的标记 %q", token)
	}

	return nil
}

// parseDays 解析单日或 n-m 区间为日期列表
func parseDays(s string) ([]int, error) {
	if from, to, ok := strings.Cut(s, "-"); ok {
		start, err := strconv.Atoi(from)
		if err != nil {
			return nil, fmt.Errorf("区间起点无效: %q", from)
		}
		end, err := strconv.Atoi(to)
		if err != nil {
			return nil, fmt.Errorf("区间终点无效: %q", to)
		}
		if end < start {
			return nil, fmt.Errorf("区间终点 %d 小于起点 %d", end, start)
		}
		days := make([]int, 0, end-start+1)
		for d := start; d <= end; d++ {
			days = append(days, d)
		}
		return days, nil
	}

	day, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("日期无效: %q", s)
	}
	return []int{day}, nil
}
