package roster

import (
	"github.com/zhiban/zhiban/pkg/errors"
	"github.com/zhiban/zhiban/pkg/model"
)

// scheduleQuotas 配额预指派阶段
// 在贪心阶段之前，把每人声明的节假日/周五/周六/周日配额
// 随机落到对应类别还有空位的天上
func (e *Engine) scheduleQuotas() error {
	for _, name := range e.names {
		p := e.people[name]
		quotas := []struct {
			count    int
			days     []int
			category string
		}{
			{p.WantedHolidays, e.month.Holidays, "节假日"},
			{p.WantedFridays, e.month.Fridays, "周五"},
			{p.WantedSaturdays, e.month.Saturdays, "周六"},
			{p.WantedSundays, e.month.Sundays, "周日"},
		}
		for _, q := range quotas {
			if q.count <= 0 {
				continue
			}
			if err := e.placeQuota(p, q.count, q.days, q.category); err != nil {
				return err
			}
		}
	}
	return nil
}

// placeQuota 为一个人落一类配额
// 已持有的同类天先抵扣配额；剩余部分从未满的天里均匀随机挑选
func (e *Engine) placeQuota(p *model.Person, count int, days []int, category string) error {
	var open []int
	for _, d := range days {
		if e.assign.Has(d, p.Name) {
			count--
			continue
		}
		if e.assign.Count(d) < model.MaxOccupants {
			open = append(open, d)
		}
	}
	if count <= 0 {
		return nil
	}
	if len(open) < count {
		return errors.InsufficientCapacity(p.Name, category, count, len(open))
	}

	for count > 0 {
		idx := e.rng.Intn(len(open))
		day := open[idx]
		open = append(open[:idx], open[idx+1:]...)

		if err := e.assign.Add(day, p.Name); err != nil {
			return errors.Wrap(err, errors.CodeInternal, "配额指派失败")
		}
		if e.assign.Count(day) == model.MaxOccupants {
			// 满两人的天按规则链重选主值，同时暴露角色冲突
			if err := e.selectLead(day); err != nil {
				return err
			}
		} else if e.assign.Lead(day) == "" {
			// 该天尚无主值时，新加入者默认担任主值
			if err := e.assign.SetLead(day, p.Name); err != nil {
				return errors.Wrap(err, errors.CodeInternal, "配额指派设置主值失败")
			}
		}
		e.log.QuotaPlacement(p.Name, category, day)
		count--
	}
	return nil
}
