package roster

import (
	"github.com/zhiban/zhiban/pkg/errors"
	"github.com/zhiban/zhiban/pkg/model"
)

// propagate 约束传播阶段
// 顺序固定：先展开星期级标记再校验矛盾（展开产生的想要/讨厌日
// 同样参与校验），然后建讨厌索引并处理退化日（讨厌者过多的天），
// 最后种子想要日。强制指派必须先于种子，因为它可能抢先占满某个
// 想要日。
func (e *Engine) propagate() error {
	e.expandWeekdayFlags()
	if err := e.validatePreferences(); err != nil {
		return err
	}

	e.buildHatedIndex()

	if err := e.forceDegenerateDays(); err != nil {
		return err
	}
	return e.seedWantedDays()
}

// validatePreferences 校验偏好无矛盾，含星期级标记展开出的日期
func (e *Engine) validatePreferences() error {
	for _, name := range e.names {
		p := e.people[name]
		for _, d := range p.WantedDays() {
			if p.HatesDay(d) {
				return errors.ContradictoryPreference(name, d)
			}
		}
	}
	return nil
}

// expandWeekdayFlags 把星期级别的讨厌/想要标记展开为当月的具体日期
func (e *Engine) expandWeekdayFlags() {
	m := e.month
	for _, name := range e.names {
		p := e.people[name]
		if p.HatesMondays {
			addAll(p.AddHatedDay, m.Mondays)
		}
		if p.HatesTuesdays {
			addAll(p.AddHatedDay, m.Tuesdays)
		}
		if p.WantsTuesdays {
			addAll(p.AddWantedDay, m.Tuesdays)
		}
		if p.HatesWednesdays {
			addAll(p.AddHatedDay, m.Wednesdays)
		}
		if p.HatesThursdays {
			addAll(p.AddHatedDay, m.Thursdays)
		}
		if p.HatesFridays {
			addAll(p.AddHatedDay, m.Fridays)
		}
		if p.HatesWeekends {
			addAll(p.AddHatedDay, m.Saturdays)
			addAll(p.AddHatedDay, m.Sundays)
		}
		if p.HatesWeekdays {
			addAll(p.AddHatedDay, m.Weekdays())
		}
	}
}

func addAll(add func(int), days []int) {
	for _, d := range days {
		add(d)
	}
}

// buildHatedIndex 建立日期到讨厌者集合的索引
func (e *Engine) buildHatedIndex() {
	for _, name := range e.names {
		for _, d := range e.people[name].HatedDays() {
			e.addHater(d, name)
		}
	}
}

// forceDegenerateDays 处理讨厌者过多的天
// 讨厌者超过 N-2 人时该天无法排满，报错；恰好 N-2 人时
// 剩下的两人别无选择，立即强制指派并选主值
func (e *Engine) forceDegenerateDays() error {
	n := len(e.people)
	for day := 1; day <= e.month.NumDays; day++ {
		haters := e.hatedBy(day)
		if len(haters) > n-2 {
			return errors.OverHatedDay(day, setToSorted(haters))
		}
		if len(haters) != n-2 {
			continue
		}

		var pair []string
		for _, name := range e.names {
			if _, hates := haters[name]; !hates {
				pair = append(pair, name)
			}
		}
		for _, name := range pair {
			if err := e.assign.Add(day, name); err != nil {
				return errors.Wrap(err, errors.CodeInternal, "强制指派失败")
			}
		}
		e.log.ForcedAssignment(day, pair)

		if e.assign.Count(day) == model.MaxOccupants {
			if err := e.selectLead(day); err != nil {
				return err
			}
		}
	}
	return nil
}

// seedWantedDays 把显式想要日种子到排班结果
func (e *Engine) seedWantedDays() error {
	for _, name := range e.names {
		for _, day := range e.people[name].WantedDays() {
			if day < 1 || day > e.month.NumDays {
				continue
			}
			if e.assign.Has(day, name) {
				continue
			}
			if e.assign.Count(day) >= model.MaxOccupants {
				wanters := append(e.assign.Occupants(day), name)
				return errors.OverWantedDay(day, wanters)
			}
			if err := e.assign.Add(day, name); err != nil {
				return errors.Wrap(err, errors.CodeInternal, "种子想要日失败")
			}

			if e.assign.Count(day) < model.MaxOccupants {
				continue
			}

			// 满两人时校验角色兼容，再选主值
			occupants := e.assign.Occupants(day)
			r1 := e.people[occupants[0]].RoleOn(day)
			r2 := e.people[occupants[1]].RoleOn(day)
			if r1 == model.RoleSupport && r2 == model.RoleSupport {
				return errors.RoleConflict(day, occupants, string(model.RoleSupport))
			}
			if r1 == model.RoleLead && r2 == model.RoleLead {
				return errors.RoleConflict(day, occupants, string(model.RoleLead))
			}
			if err := e.selectLead(day); err != nil {
				return err
			}
		}
	}
	return nil
}
