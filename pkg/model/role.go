// Package model 定义值班引擎的核心数据模型
package model

// Role 某人在某一天可以担任的值班角色
type Role string

const (
	RoleLead    Role = "IMS1" // 只能担任主值
	RoleSupport Role = "IMS2" // 只能担任副值
	RoleEither  Role = "IMS"  // 主副皆可（默认）
)

// GoodWith 判断两个角色能否搭配在同一天
// 只要有一方是 RoleEither 即可搭配；两个相同的独占角色互斥
func (r Role) GoodWith(other Role) bool {
	if r == RoleEither || other == RoleEither {
		return true
	}
	return r != other
}

// IsFirstLead 报表输出时判断第一人是否为主值
func IsFirstLead(a, b Role) bool {
	return a == RoleLead || b == RoleSupport
}
