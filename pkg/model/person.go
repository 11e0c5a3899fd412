package model

import "sort"

// 角色表覆盖的日序号范围：整月加上前后少量护栏天，
// 护栏天只用于邻日查询，永远不会被指派
const (
	RoleDayMin = -5
	RoleDayMax = 35
)

// Person 一个人的值班偏好记录
// 由输入构建一次，之后只有约束传播阶段会追加派生的讨厌日
type Person struct {
	Name string

	hatedDays  map[int]struct{}
	wantedDays map[int]struct{}
	roles      map[int]Role

	// 星期级别的讨厌/想要标记，传播阶段展开为具体日期
	HatesWeekends   bool
	HatesWeekdays   bool
	HatesMondays    bool
	HatesTuesdays   bool
	HatesWednesdays bool
	HatesThursdays  bool
	HatesFridays    bool
	WantsTuesdays   bool

	// Junior 不能担任主值（旧称 nofo）
	Junior bool

	// ManualOffset 手工公平偏移，工作日打分时乘以7计入
	ManualOffset int

	// 想要预先指派的特殊日配额
	WantedHolidays  int
	WantedFridays   int
	WantedSaturdays int
	WantedSundays   int
}

// NewPerson 创建一个偏好记录，所有天的角色默认为主副皆可
func NewPerson(name string) *Person {
	p := &Person{
		Name:       name,
		hatedDays:  make(map[int]struct{}),
		wantedDays: make(map[int]struct{}),
		roles:      make(map[int]Role, RoleDayMax-RoleDayMin+1),
	}
	for d := RoleDayMin; d <= RoleDayMax; d++ {
		p.roles[d] = RoleEither
	}
	return p
}

// RoleOn 返回某天的角色限制
func (p *Person) RoleOn(day int) Role {
	if r, ok := p.roles[day]; ok {
		return r
	}
	return RoleEither
}

// SetRole 设置某天的角色限制
func (p *Person) SetRole(day int, r Role) {
	p.roles[day] = r
}

// SetJunior 标记此人不能担任主值，所有天的角色降为副值
func (p *Person) SetJunior() {
	p.Junior = true
	for d := range p.roles {
		p.roles[d] = RoleSupport
	}
}

// AddHatedDay 追加讨厌日（允许重复，读取时已去重）
func (p *Person) AddHatedDay(day int) {
	p.hatedDays[day] = struct{}{}
}

// AddWantedDay 追加想要日
func (p *Person) AddWantedDay(day int) {
	p.wantedDays[day] = struct{}{}
}

// HatesDay 判断是否讨厌某天
func (p *Person) HatesDay(day int) bool {
	_, ok := p.hatedDays[day]
	return ok
}

// WantsDay 判断是否想要某天
func (p *Person) WantsDay(day int) bool {
	_, ok := p.wantedDays[day]
	return ok
}

// HatedDays 返回升序的讨厌日列表
func (p *Person) HatedDays() []int {
	return sortedDays(p.hatedDays)
}

// WantedDays 返回升序的想要日列表
func (p *Person) WantedDays() []int {
	return sortedDays(p.wantedDays)
}

func sortedDays(set map[int]struct{}) []int {
	days := make([]int, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// SortedNames 返回按字母序排列的人名列表，用作稳定的兜底排序
func SortedNames(people map[string]*Person) []string {
	names := make([]string, 0, len(people))
	for name := range people {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
