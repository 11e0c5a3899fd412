package model

import (
	"fmt"
	"sort"
)

// MaxOccupants 每天的值班人数上限，达到后该天关闭
const MaxOccupants = 2

// Assignment 日期到值班人集合与主值的映射
// 人名集合无序，上限两人；主值必须是当天的值班人之一
type Assignment struct {
	occupants map[int]map[string]struct{}
	leads     map[int]string
}

// NewAssignment 创建空的排班结果
func NewAssignment() *Assignment {
	return &Assignment{
		occupants: make(map[int]map[string]struct{}),
		leads:     make(map[int]string),
	}
}

// Add 把某人加到某天，超过两人上限时返回错误
func (a *Assignment) Add(day int, name string) error {
	set, ok := a.occupants[day]
	if !ok {
		set = make(map[string]struct{}, MaxOccupants)
		a.occupants[day] = set
	}
	if _, exists := set[name]; exists {
		return nil
	}
	if len(set) >= MaxOccupants {
		return fmt.Errorf("第 %d 天已满两人，无法再加入 %s", day, name)
	}
	set[name] = struct{}{}
	return nil
}

// Has 判断某人是否已在某天值班
func (a *Assignment) Has(day int, name string) bool {
	_, ok := a.occupants[day][name]
	return ok
}

// Count 返回某天的值班人数
func (a *Assignment) Count(day int) int {
	return len(a.occupants[day])
}

// Occupants 返回某天的值班人，按字母序
func (a *Assignment) Occupants(day int) []string {
	set, ok := a.occupants[day]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetLead 指定某天的主值，必须是当天的值班人
func (a *Assignment) SetLead(day int, name string) error {
	if !a.Has(day, name) {
		return fmt.Errorf("%s 不是第 %d 天的值班人，不能担任主值", name, day)
	}
	a.leads[day] = name
	return nil
}

// Lead 返回某天的主值，未指定时为空串
func (a *Assignment) Lead(day int) string {
	return a.leads[day]
}

// Days 返回有人值班的天，升序
func (a *Assignment) Days() []int {
	days := make([]int, 0, len(a.occupants))
	for d, set := range a.occupants {
		if len(set) > 0 {
			days = append(days, d)
		}
	}
	sort.Ints(days)
	return days
}

// CountFor 返回某人整月的值班总次数
func (a *Assignment) CountFor(name string) int {
	count := 0
	for _, set := range a.occupants {
		if _, ok := set[name]; ok {
			count++
		}
	}
	return count
}

// LeadCountFor 返回某人整月担任主值的次数
func (a *Assignment) LeadCountFor(name string) int {
	count := 0
	for _, lead := range a.leads {
		if lead == name {
			count++
		}
	}
	return count
}

// Partner 返回某人在某天的搭档，无搭档时为空串
func (a *Assignment) Partner(day int, name string) string {
	for other := range a.occupants[day] {
		if other != name {
			return other
		}
	}
	return ""
}
