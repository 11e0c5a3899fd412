package model

import (
	"reflect"
	"testing"
)

func TestAssignmentTwoPersonCap(t *testing.T) {
	a := NewAssignment()

	if err := a.Add(5, "张三"); err != nil {
		t.Fatalf("第一人加入失败: %v", err)
	}
	if err := a.Add(5, "李四"); err != nil {
		t.Fatalf("第二人加入失败: %v", err)
	}
	// 重复加入同一人不报错，也不改变人数
	if err := a.Add(5, "张三"); err != nil {
		t.Fatalf("重复加入不应报错: %v", err)
	}
	if a.Count(5) != 2 {
		t.Errorf("人数 = %d, 期望 2", a.Count(5))
	}
	// 满两人后关闭
	if err := a.Add(5, "王五"); err == nil {
		t.Error("满两人后加入第三人应报错")
	}
}

func TestAssignmentLead(t *testing.T) {
	a := NewAssignment()
	a.Add(3, "张三")
	a.Add(3, "李四")

	if err := a.SetLead(3, "王五"); err == nil {
		t.Error("主值必须是当天的值班人")
	}
	if err := a.SetLead(3, "李四"); err != nil {
		t.Fatalf("指定主值失败: %v", err)
	}
	if a.Lead(3) != "李四" {
		t.Errorf("主值 = %s, 期望 李四", a.Lead(3))
	}
	if a.Lead(4) != "" {
		t.Error("未指定主值的天应返回空串")
	}
}

func TestAssignmentCounts(t *testing.T) {
	a := NewAssignment()
	a.Add(1, "张三")
	a.Add(1, "李四")
	a.Add(2, "张三")
	a.SetLead(1, "张三")

	if a.CountFor("张三") != 2 {
		t.Errorf("张三总次数 = %d, 期望 2", a.CountFor("张三"))
	}
	if a.LeadCountFor("张三") != 1 {
		t.Errorf("张三主值次数 = %d, 期望 1", a.LeadCountFor("张三"))
	}
	if a.Partner(1, "张三") != "李四" {
		t.Errorf("搭档 = %s, 期望 李四", a.Partner(1, "张三"))
	}
	if a.Partner(2, "张三") != "" {
		t.Error("无搭档时应返回空串")
	}

	if !reflect.DeepEqual(a.Days(), []int{1, 2}) {
		t.Errorf("Days = %v, 期望 [1 2]", a.Days())
	}
}

func TestPersonDefaults(t *testing.T) {
	p := NewPerson("张三")

	// 整月加护栏天默认主副皆可
	for _, d := range []int{RoleDayMin, 1, 15, 31, RoleDayMax} {
		if p.RoleOn(d) != RoleEither {
			t.Errorf("第 %d 天默认角色 = %s, 期望 IMS", d, p.RoleOn(d))
		}
	}

	p.SetRole(10, RoleLead)
	if p.RoleOn(10) != RoleLead {
		t.Error("SetRole 未生效")
	}

	p.SetJunior()
	if p.RoleOn(10) != RoleSupport {
		t.Error("SetJunior 应把所有天的角色降为副值")
	}
}

func TestPersonDaySets(t *testing.T) {
	p := NewPerson("张三")
	p.AddHatedDay(7)
	p.AddHatedDay(3)
	p.AddHatedDay(7) // 重复追加

	if !reflect.DeepEqual(p.HatedDays(), []int{3, 7}) {
		t.Errorf("HatedDays = %v, 期望 [3 7]", p.HatedDays())
	}
	if !p.HatesDay(7) || p.HatesDay(8) {
		t.Error("HatesDay 判断错误")
	}

	p.AddWantedDay(12)
	if !p.WantsDay(12) {
		t.Error("WantsDay 判断错误")
	}
}
