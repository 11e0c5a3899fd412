package roster

import "github.com/zhiban/zhiban/pkg/model"

// rebalance 主值角色配平阶段
// 有界迭代：每轮找主值失衡最严重的人，在其主值日里寻找一次
// 能显著降低差距的角色交换。只改主值标记，不动值班人集合，
// 永不报错，属于对已合法结果的尽力优化
func (e *Engine) rebalance() error {
	for i := 0; i < e.rebalanceCap; i++ {
		if !e.rebalanceOnce() {
			break
		}
	}
	return nil
}

// rebalanceOnce 执行至多一次交换，返回是否发生了交换
func (e *Engine) rebalanceOnce() bool {
	// 找失衡值最大的非 junior，需大于 1 才值得处理
	maxVal := 1
	maxName := ""
	for _, name := range e.names {
		if e.people[name].Junior {
			continue
		}
		if v := e.imbalance(name); v > maxVal {
			maxVal = v
			maxName = name
		}
	}
	if maxName == "" {
		return false
	}

	// 在其担任主值的天里找失衡值最低的可接替搭档
	minVal := maxVal
	swapDay := 0
	swapTo := ""
	for _, day := range e.assign.Days() {
		if e.assign.Lead(day) != maxName {
			continue
		}
		// 当日被限定为主值的人不能让出角色
		if e.people[maxName].RoleOn(day) == model.RoleLead {
			continue
		}
		partner := e.assign.Partner(day, maxName)
		if partner == "" {
			continue
		}
		// junior 或当日限定为副值的搭档不能接任主值
		if e.people[partner].Junior || e.people[partner].RoleOn(day) == model.RoleSupport {
			continue
		}
		if v := e.imbalance(partner); v < minVal {
			minVal = v
			swapDay = day
			swapTo = partner
		}
	}

	if swapTo == "" || maxVal-minVal <= 1 {
		return false
	}
	if err := e.assign.SetLead(swapDay, swapTo); err != nil {
		return false
	}
	e.leadSwaps++
	e.log.LeadSwap(swapDay, maxName, swapTo)
	return true
}
