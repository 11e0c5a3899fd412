// Package stats 提供值班公平性分析
package stats

import (
	"math"
	"sort"

	"github.com/zhiban/zhiban/pkg/roster"
)

// FairnessMetrics 公平性指标
type FairnessMetrics struct {
	TotalGini   float64 `json:"total_gini"`   // 总天数基尼系数 (0=完全公平, 1=完全不公平)
	WeekendGini float64 `json:"weekend_gini"` // 周末天数基尼系数
	LeadGini    float64 `json:"lead_gini"`    // 主值天数基尼系数
	AvgPerDuty  float64 `json:"avg_per_duty"` // 人均值班天数
	MaxDuty     int     `json:"max_duty"`     // 最多值班天数
	MinDuty     int     `json:"min_duty"`     // 最少值班天数

	PersonStats []PersonStat `json:"person_stats"`

	// 综合评分 (0-100)
	OverallScore float64 `json:"overall_score"`
}

// PersonStat 单人统计
type PersonStat struct {
	Name    string `json:"name"`
	Total   int    `json:"total"`
	Weekend int    `json:"weekend"`
	Lead    int    `json:"lead"`
}

// Fairness 分析一份排班结果的公平性
func Fairness(result *roster.Result) *FairnessMetrics {
	weekend := make(map[int]struct{})
	for _, d := range result.Saturdays {
		weekend[d] = struct{}{}
	}
	for _, d := range result.Sundays {
		weekend[d] = struct{}{}
	}

	byName := make(map[string]*PersonStat)
	for day, names := range result.Scheduled {
		for _, name := range names {
			ps, ok := byName[name]
			if !ok {
				ps = &PersonStat{Name: name}
				byName[name] = ps
			}
			ps.Total++
			if _, ok := weekend[day]; ok {
				ps.Weekend++
			}
			if result.Leads[day] == name {
				ps.Lead++
			}
		}
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	m := &FairnessMetrics{MinDuty: math.MaxInt}
	totals := make([]float64, 0, len(names))
	weekends := make([]float64, 0, len(names))
	leads := make([]float64, 0, len(names))
	sum := 0

	for _, name := range names {
		ps := byName[name]
		m.PersonStats = append(m.PersonStats, *ps)
		totals = append(totals, float64(ps.Total))
		weekends = append(weekends, float64(ps.Weekend))
		leads = append(leads, float64(ps.Lead))
		sum += ps.Total
		if ps.Total > m.MaxDuty {
			m.MaxDuty = ps.Total
		}
		if ps.Total < m.MinDuty {
			m.MinDuty = ps.Total
		}
	}
	if len(names) == 0 {
		m.MinDuty = 0
		return m
	}

	m.AvgPerDuty = float64(sum) / float64(len(names))
	m.TotalGini = gini(totals)
	m.WeekendGini = gini(weekends)
	m.LeadGini = gini(leads)
	m.OverallScore = overallScore(m.TotalGini, m.WeekendGini, m.LeadGini)
	return m
}

// gini 基尼系数，输入无需有序
func gini(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	if sum == 0 {
		return 0
	}

	g := 0.0
	for i, v := range sorted {
		g += (2*float64(i+1) - float64(n) - 1) * v
	}
	g = g / (float64(n) * sum)
	return math.Max(0, math.Min(1, g))
}

// overallScore 基尼系数加权转换为 0-100 的评分
func overallScore(totalGini, weekendGini, leadGini float64) float64 {
	const (
		totalWeight   = 0.5
		weekendWeight = 0.3
		leadWeight    = 0.2
	)

	score := totalWeight*(1-totalGini)*100 +
		weekendWeight*(1-weekendGini)*100 +
		leadWeight*(1-leadGini)*100
	return math.Max(0, math.Min(100, score))
}
