package roster

import (
	"github.com/zhiban/zhiban/pkg/errors"
	"github.com/zhiban/zhiban/pkg/model"
)

// leadRule 主值选择规则：命名的谓词，按声明顺序依次生效
// decided 为真时 lead 即为结果；否则落到下一条规则
type leadRule struct {
	name  string
	apply func(e *Engine, day int, a, b string) (lead string, decided bool, err error)
}

// leadRules 规则链，优先级由排列顺序决定：
// 资历规则 > 当日角色规则 > 失衡兜底
var leadRules = []leadRule{
	{name: "junior", apply: juniorRule},
	{name: "day-role", apply: dayRoleRule},
	{name: "imbalance", apply: imbalanceRule},
}

// selectLead 为已满两人的天决定主值
func (e *Engine) selectLead(day int) error {
	occupants := e.assign.Occupants(day)
	if len(occupants) == 1 {
		// 单人的天没有可比较对象，暂由该人担任主值
		return e.assign.SetLead(day, occupants[0])
	}

	a, b := occupants[0], occupants[1]
	for _, rule := range leadRules {
		lead, decided, err := rule.apply(e, day, a, b)
		if err != nil {
			return err
		}
		if decided {
			return e.assign.SetLead(day, lead)
		}
	}
	// 规则链以失衡兜底收尾，不会落空
	return errors.New(errors.CodeInternal, "主值规则链未能给出结果")
}

// juniorRule 资历规则：恰有一人不能担任主值时另一人为主值；
// 两人都不能担任主值是配置错误
func juniorRule(e *Engine, day int, a, b string) (string, bool, error) {
	ja, jb := e.people[a].Junior, e.people[b].Junior
	switch {
	case ja && jb:
		return "", false, errors.BothJunior(day, []string{a, b})
	case ja:
		return b, true, nil
	case jb:
		return a, true, nil
	default:
		return "", false, nil
	}
}

// dayRoleRule 当日角色规则：一方被限定为副值时，另一方为主值，
// 反之亦然；两人同为独占角色是致命配置错误
func dayRoleRule(e *Engine, day int, a, b string) (string, bool, error) {
	ra := e.people[a].RoleOn(day)
	rb := e.people[b].RoleOn(day)

	switch {
	case ra == model.RoleLead && rb == model.RoleLead:
		return "", false, errors.RoleConflict(day, []string{a, b}, string(model.RoleLead))
	case ra == model.RoleSupport && rb == model.RoleSupport:
		return "", false, errors.RoleConflict(day, []string{a, b}, string(model.RoleSupport))
	case ra == model.RoleLead, rb == model.RoleSupport:
		return a, true, nil
	case rb == model.RoleLead, ra == model.RoleSupport:
		return b, true, nil
	default:
		return "", false, nil
	}
}

// imbalanceRule 失衡兜底：主值失衡值低者担任主值，持平时随机
func imbalanceRule(e *Engine, day int, a, b string) (string, bool, error) {
	va, vb := e.imbalance(a), e.imbalance(b)
	switch {
	case va < vb:
		return a, true, nil
	case vb < va:
		return b, true, nil
	case e.rng.Intn(2) == 0:
		return a, true, nil
	default:
		return b, true, nil
	}
}

// compatibleWith 为已有一人的天挑选第二人时的相容判定
func (e *Engine) compatibleWith(day int, occupant, candidate string) bool {
	if candidate == occupant {
		return false
	}
	return e.people[candidate].RoleOn(day).GoodWith(e.people[occupant].RoleOn(day))
}
