package model

import "testing"

func TestRoleGoodWith(t *testing.T) {
	cases := []struct {
		a, b Role
		want bool
	}{
		{RoleEither, RoleEither, true},
		{RoleEither, RoleLead, true},
		{RoleEither, RoleSupport, true},
		{RoleLead, RoleSupport, true},
		{RoleSupport, RoleLead, true},
		{RoleLead, RoleLead, false},
		{RoleSupport, RoleSupport, false},
	}

	for _, c := range cases {
		if got := c.a.GoodWith(c.b); got != c.want {
			t.Errorf("%s.GoodWith(%s) = %v, 期望 %v", c.a, c.b, got, c.want)
		}
	}
}

func TestIsFirstLead(t *testing.T) {
	if !IsFirstLead(RoleLead, RoleEither) {
		t.Error("第一人是主值角色时应判定为主值在前")
	}
	if !IsFirstLead(RoleEither, RoleSupport) {
		t.Error("第二人是副值角色时应判定为主值在前")
	}
	if IsFirstLead(RoleSupport, RoleEither) {
		t.Error("第一人是副值且第二人非副值时，主值不在前")
	}
}
