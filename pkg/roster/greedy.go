package roster

import (
	"sort"

	"github.com/zhiban/zhiban/pkg/errors"
	"github.com/zhiban/zhiban/pkg/model"
)

// 贪心打分权重
// 周末/节假日组的基础权重更高，抑制周末扎堆；±7 天附近的
// 巨额罚分避免连续两个周末值班
const (
	weekendBaseWeight  = 14
	weekendNearPenalty = 4    // 距离 -2/+3 天
	weekendFarPenalty  = 2    // 距离 -3/+4 天
	sameWeekendPenalty = 1000 // 距离 ±7 以及 -6/+8 天

	weekdayBaseWeight  = 7
	weekdayNearPenalty = 2 // 距离 ±2 天
	weekdayFarPenalty  = 1 // 距离 ±3 天

	manualOffsetWeight = 7
)

// passConfig 一次贪心遍历的参数
type passConfig struct {
	days     []int // 本组的候选天
	prevOff  int   // 排除集的前邻日偏移
	nextOff  int   // 排除集的后邻日偏移
	score    func(e *Engine, day, candidateDay int) int
	weekday  bool // 是否工作日遍历（计入手工偏移）
}

// assignWeekendsAndHolidays 周末与节假日遍历
// 按周六、周日、节假日三个子组依次排满
func (e *Engine) assignWeekendsAndHolidays() error {
	groups := [][]int{e.month.Saturdays, e.month.Sundays, e.month.Holidays}
	for _, days := range groups {
		cfg := passConfig{
			days:    days,
			prevOff: -1,
			nextOff: 2,
			score:   weekendScore,
		}
		if err := e.runPass(cfg); err != nil {
			return err
		}
	}
	return nil
}

// assignWeekdays 工作日遍历，覆盖所有未排满的天
func (e *Engine) assignWeekdays() error {
	all := make([]int, e.month.NumDays)
	for i := range all {
		all[i] = i + 1
	}
	cfg := passConfig{
		days:    all,
		prevOff: -1,
		nextOff: 1,
		score:   weekdayScore,
		weekday: true,
	}
	return e.runPass(cfg)
}

// runPass 反复挑出本组里最受限的未满天并排满，直到无天可排
func (e *Engine) runPass(cfg passConfig) error {
	for {
		day, candidates, ok := e.mostConstrainedDay(cfg)
		if !ok {
			return nil
		}
		ordered := e.orderCandidates(day, candidates, cfg)
		if err := e.fillDay(day, ordered); err != nil {
			return err
		}
	}
}

// mostConstrainedDay 在本组未满的天里找排除集最大的那天
// 排除集 = 讨厌该日的人 ∪ 当日已值班的人 ∪ 邻日值班的人；
// 并列时取日序靠前者。返回该天与排除集的补集
func (e *Engine) mostConstrainedDay(cfg passConfig) (int, map[string]struct{}, bool) {
	inGroup := make(map[int]struct{}, len(cfg.days))
	for _, d := range cfg.days {
		inGroup[d] = struct{}{}
	}

	best := -1
	bestDay := 0
	var bestCandidates map[string]struct{}

	for day := 1; day <= e.month.NumDays; day++ {
		if _, ok := inGroup[day]; !ok {
			continue
		}
		if e.assign.Count(day) >= model.MaxOccupants {
			continue
		}

		excluded := make(map[string]struct{})
		for name := range e.hatedBy(day) {
			excluded[name] = struct{}{}
		}
		for _, name := range e.assign.Occupants(day) {
			excluded[name] = struct{}{}
		}
		for _, name := range e.assign.Occupants(day + cfg.prevOff) {
			excluded[name] = struct{}{}
		}
		for _, name := range e.assign.Occupants(day + cfg.nextOff) {
			excluded[name] = struct{}{}
		}

		if len(excluded) > best {
			best = len(excluded)
			bestDay = day
			candidates := make(map[string]struct{}, len(e.people))
			for _, name := range e.names {
				if _, ok := excluded[name]; !ok {
					candidates[name] = struct{}{}
				}
			}
			bestCandidates = candidates
		}
	}

	if best < 0 {
		return 0, nil, false
	}
	return bestDay, bestCandidates, true
}

// orderCandidates 计算每个候选人的负荷分并按升序排列
// 分数相同的按字母序，保证确定性
func (e *Engine) orderCandidates(day int, candidates map[string]struct{}, cfg passConfig) []string {
	scores := make(map[string]int, len(candidates))
	for name := range candidates {
		scores[name] = 0
	}

	for d := 1; d <= e.month.NumDays; d++ {
		for _, name := range e.assign.Occupants(d) {
			if _, ok := scores[name]; !ok {
				continue
			}
			scores[name] += cfg.score(e, day, d)
		}
	}
	if cfg.weekday {
		for name := range scores {
			scores[name] -= manualOffsetWeight * e.people[name].ManualOffset
		}
	}

	ordered := make([]string, 0, len(scores))
	for name := range scores {
		ordered = append(ordered, name)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if scores[ordered[i]] != scores[ordered[j]] {
			return scores[ordered[i]] < scores[ordered[j]]
		}
		return ordered[i] < ordered[j]
	})
	return ordered
}

// weekendScore 周末/节假日遍历中，候选人在 candidateDay 已有值班
// 对目标天 day 贡献的负荷分
func weekendScore(_ *Engine, day, candidateDay int) int {
	score := weekendBaseWeight
	if candidateDay == day-2 || candidateDay == day+3 {
		score += weekendNearPenalty
	}
	if candidateDay == day-3 || candidateDay == day+4 {
		score += weekendFarPenalty
	}
	if candidateDay == day-7 || candidateDay == day+7 {
		score += sameWeekendPenalty
	}
	if candidateDay == day-6 || candidateDay == day+8 {
		score += sameWeekendPenalty
	}
	return score
}

// weekdayScore 工作日遍历的负荷分
func weekdayScore(_ *Engine, day, candidateDay int) int {
	score := weekdayBaseWeight
	if candidateDay == day-2 || candidateDay == day+2 {
		score += weekdayNearPenalty
	}
	if candidateDay == day-3 || candidateDay == day+3 {
		score += weekdayFarPenalty
	}
	return score
}

// fillDay 把某天补到两人：先排第一人，再找角色相容的第二人，
// 最后选主值。找不到合法人选即为致命错误
func (e *Engine) fillDay(day int, ordered []string) error {
	if e.assign.Count(day) == 0 {
		if len(ordered) == 0 {
			return errors.NoEligibleCandidate(day, ordered)
		}
		if err := e.assign.Add(day, ordered[0]); err != nil {
			return errors.Wrap(err, errors.CodeInternal, "贪心指派失败")
		}
	}

	first := e.assign.Occupants(day)[0]
	if e.assign.Count(day) < model.MaxOccupants {
		if err := e.addPartner(day, first, ordered); err != nil {
			return err
		}
	}

	if e.assign.Count(day) == model.MaxOccupants {
		return e.selectLead(day)
	}
	return nil
}

// addPartner 按优先顺序找第一个与现有值班人相容的候选人
func (e *Engine) addPartner(day int, occupant string, ordered []string) error {
	for _, name := range ordered {
		if !e.compatibleWith(day, occupant, name) {
			continue
		}
		if err := e.assign.Add(day, name); err != nil {
			return errors.Wrap(err, errors.CodeInternal, "贪心指派失败")
		}
		return nil
	}
	return errors.NoEligibleCandidate(day, ordered)
}

// setToSorted 集合转升序切片
func setToSorted(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
