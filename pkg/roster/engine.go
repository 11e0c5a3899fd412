// Package roster 实现值班表生成引擎
//
// 引擎按固定顺序执行多个阶段：约束传播（展开星期级标记、强制指派、
// 种子想要日）、配额预指派、周末与节假日贪心指派、工作日贪心指派、
// 主值角色配平。各阶段依赖前一阶段的结果，全程单线程，失败即终止，
// 不做回溯。
package roster

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/zhiban/zhiban/pkg/calendar"
	"github.com/zhiban/zhiban/pkg/logger"
	"github.com/zhiban/zhiban/pkg/model"
)

// DefaultRebalanceIterations 配平阶段的默认迭代上限
const DefaultRebalanceIterations = 10

// Engine 值班表生成引擎
type Engine struct {
	people map[string]*model.Person
	names  []string // 字母序人名，所有遍历的稳定兜底顺序
	month  *calendar.Month
	assign *model.Assignment
	hated  map[int]map[string]struct{} // 日期 -> 讨厌该日的人

	rng          *rand.Rand
	log          *logger.EngineLogger
	rebalanceCap int
	leadSwaps    int
}

// Option 引擎配置项
type Option func(*Engine)

// WithSeed 注入随机种子，相同输入加相同种子保证结果可复现
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand 注入随机源
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithLogger 注入组件日志器
func WithLogger(l *logger.EngineLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRebalanceIterations 设置配平阶段的迭代上限
func WithRebalanceIterations(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.rebalanceCap = n
		}
	}
}

// New 创建引擎
func New(people map[string]*model.Person, year int, month time.Month, opts ...Option) *Engine {
	e := &Engine{
		people:       people,
		names:        model.SortedNames(people),
		month:        calendar.NewMonth(year, month),
		assign:       model.NewAssignment(),
		hated:        make(map[int]map[string]struct{}),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		log:          logger.NewEngineLogger(),
		rebalanceCap: DefaultRebalanceIterations,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result 引擎输出，足以支撑任何下游渲染，无需重算排班逻辑
type Result struct {
	RunID   uuid.UUID      `json:"run_id"`
	Year    int            `json:"year"`
	Month   time.Month     `json:"month"`
	NumDays int            `json:"num_days"`

	Scheduled map[int][]string `json:"scheduled"` // 日期 -> 值班人（字母序）
	Leads     map[int]string   `json:"leads"`     // 日期 -> 主值

	Saturdays []int `json:"saturdays"`
	Sundays   []int `json:"sundays"`
	Holidays  []int `json:"holidays"`

	Duration   time.Duration `json:"duration"`
	Statistics *Statistics   `json:"statistics"`
}

// Statistics 排班统计
type Statistics struct {
	TotalAssignments int `json:"total_assignments"`
	FilledDays       int `json:"filled_days"`
	LeadSwaps        int `json:"lead_swaps"`
}

// IsHoliday 判断某天是否为节假日
func (r *Result) IsHoliday(day int) bool {
	for _, h := range r.Holidays {
		if h == day {
			return true
		}
	}
	return false
}

// Run 生成值班表
// 阶段之间检查 ctx 取消；阶段内部无并发，也无挂起点
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	runID := uuid.New()
	e.log.StartRun(runID.String(), e.month.Year, int(e.month.Month), len(e.people), e.month.NumDays)

	passes := []func() error{
		e.propagate,
		e.scheduleQuotas,
		e.assignWeekendsAndHolidays,
		e.assignWeekdays,
		e.rebalance,
	}
	for _, pass := range passes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := pass(); err != nil {
			return nil, err
		}
	}

	result := e.buildResult(runID, time.Since(start))
	e.log.RunComplete(runID.String(), result.Duration, result.Statistics.TotalAssignments, result.Statistics.LeadSwaps)
	return result, nil
}

// buildResult 从内部状态构建输出
func (e *Engine) buildResult(runID uuid.UUID, duration time.Duration) *Result {
	scheduled := make(map[int][]string, e.month.NumDays)
	leads := make(map[int]string)
	total := 0
	filled := 0

	for day := 1; day <= e.month.NumDays; day++ {
		occupants := e.assign.Occupants(day)
		if len(occupants) == 0 {
			continue
		}
		scheduled[day] = occupants
		total += len(occupants)
		if len(occupants) == model.MaxOccupants {
			filled++
		}
		if lead := e.assign.Lead(day); lead != "" {
			leads[day] = lead
		}
	}

	return &Result{
		RunID:     runID,
		Year:      e.month.Year,
		Month:     e.month.Month,
		NumDays:   e.month.NumDays,
		Scheduled: scheduled,
		Leads:     leads,
		Saturdays: append([]int(nil), e.month.Saturdays...),
		Sundays:   append([]int(nil), e.month.Sundays...),
		Holidays:  append([]int(nil), e.month.Holidays...),
		Duration:  duration,
		Statistics: &Statistics{
			TotalAssignments: total,
			FilledDays:       filled,
			LeadSwaps:        e.leadSwaps,
		},
	}
}

// hatedBy 返回讨厌某天的人集合，未初始化时为 nil
func (e *Engine) hatedBy(day int) map[string]struct{} {
	return e.hated[day]
}

// addHater 把某人登记到某天的讨厌索引
func (e *Engine) addHater(day int, name string) {
	set, ok := e.hated[day]
	if !ok {
		set = make(map[string]struct{})
		e.hated[day] = set
	}
	set[name] = struct{}{}
}

// imbalance 某人的主值失衡值：2×主值次数 − 总值班次数
// 正值越大表示主值占比越高
func (e *Engine) imbalance(name string) int {
	return 2*e.assign.LeadCountFor(name) - e.assign.CountFor(name)
}
