// Package calendar 提供月历分类和匈牙利法定节假日计算
package calendar

import "time"

// Category 日期类别
type Category string

const (
	CategoryWeekday  Category = "weekday"  // 周一至周五
	CategorySaturday Category = "saturday" // 周六
	CategorySunday   Category = "sunday"   // 周日
	CategoryHoliday  Category = "holiday"  // 法定节假日（优先于周末）
)

// Month 某年某月的日历分类结果
type Month struct {
	Year    int
	Month   time.Month
	NumDays int

	Mondays    []int
	Tuesdays   []int
	Wednesdays []int
	Thursdays  []int
	Fridays    []int
	Saturdays  []int
	Sundays    []int
	Holidays   []int
}

// NewMonth 构建某年某月的日历分类，纯函数，结果可复现
func NewMonth(year int, month time.Month) *Month {
	m := &Month{
		Year:    year,
		Month:   month,
		NumDays: DaysInMonth(year, month),
	}

	for _, h := range HolidaysForMonth(year, month) {
		m.Holidays = append(m.Holidays, h.Day())
	}

	for day := 1; day <= m.NumDays; day++ {
		switch time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday() {
		case time.Monday:
			m.Mondays = append(m.Mondays, day)
		case time.Tuesday:
			m.Tuesdays = append(m.Tuesdays, day)
		case time.Wednesday:
			m.Wednesdays = append(m.Wednesdays, day)
		case time.Thursday:
			m.Thursdays = append(m.Thursdays, day)
		case time.Friday:
			m.Fridays = append(m.Fridays, day)
		case time.Saturday:
			m.Saturdays = append(m.Saturdays, day)
		case time.Sunday:
			m.Sundays = append(m.Sundays, day)
		}
	}

	return m
}

// Weekdays 返回所有工作日（周一至周五）
func (m *Month) Weekdays() []int {
	var days []int
	days = append(days, m.Mondays...)
	days = append(days, m.Tuesdays...)
	days = append(days, m.Wednesdays...)
	days = append(days, m.Thursdays...)
	days = append(days, m.Fridays...)
	return days
}

// IsHoliday 判断某天是否为法定节假日
func (m *Month) IsHoliday(day int) bool {
	return containsDay(m.Holidays, day)
}

// Category 返回某天的类别，节假日优先于周末
func (m *Month) Category(day int) Category {
	switch {
	case containsDay(m.Holidays, day):
		return CategoryHoliday
	case containsDay(m.Saturdays, day):
		return CategorySaturday
	case containsDay(m.Sundays, day):
		return CategorySunday
	default:
		return CategoryWeekday
	}
}

// Weekday 返回某天是星期几
func (m *Month) Weekday(day int) time.Weekday {
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC).Weekday()
}

// DaysInMonth 返回某年某月的天数
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// HolidaysForYear 返回某年全部匈牙利法定节假日
// 固定日期节日，加上以复活节为基准推算的三个浮动节日
func HolidaysForYear(year int) []time.Time {
	easter := EasterDate(year)

	return []time.Time{
		date(year, time.January, 1),   // 元旦
		date(year, time.March, 15),    // 国庆纪念日
		easter.AddDate(0, 0, -2),      // 耶稣受难日
		easter,                        // 复活节
		easter.AddDate(0, 0, 1),       // 复活节星期一
		date(year, time.May, 1),       // 劳动节
		easter.AddDate(0, 0, 49),      // 圣灵降临节星期一
		date(year, time.August, 20),   // 建国纪念日
		date(year, time.October, 23),  // 共和国纪念日
		date(year, time.November, 1),  // 万圣节
		date(year, time.December, 25), // 圣诞节
		date(year, time.December, 26), // 圣诞节次日
	}
}

// HolidaysForMonth 返回某年某月内的法定节假日
func HolidaysForMonth(year int, month time.Month) []time.Time {
	var result []time.Time
	for _, h := range HolidaysForYear(year) {
		if h.Month() == month {
			result = append(result, h)
		}
	}
	return result
}

// EasterDate 用匿名格里高利算法计算复活节日期，仅整数运算
func EasterDate(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return date(year, time.Month(month), day)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
