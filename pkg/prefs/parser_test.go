package prefs

import (
	"reflect"
	"strings"
	"testing"

	"github.com/zhiban/zhiban/pkg/errors"
	"github.com/zhiban/zhiban/pkg/model"
)

func TestParseKeywords(t *testing.T) {
	input := "Kovacs_Peter nofo hend wtue\nSzabo_Anna hmon hfri\n"

	people, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if len(people) != 2 {
		t.Fatalf("人数 = %d, 期望 2", len(people))
	}

	p := people["Kovacs Peter"]
	if p == nil {
		t.Fatal("下划线应转换为空格")
	}
	if !p.Junior || !p.HatesWeekends || !p.WantsTuesdays {
		t.Error("关键字标记未生效")
	}
	if p.RoleOn(10) != model.RoleSupport {
		t.Error("nofo 应把所有天的角色降为副值")
	}

	q := people["Szabo Anna"]
	if !q.HatesMondays || !q.HatesFridays {
		t.Error("星期讨厌标记未生效")
	}
}

func TestParseCodedRanges(t *testing.T) {
	input := "Nagy_Janos w3 h10-12 f20 b21-22 u1 p2 s3 v4 +2\n"

	people, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}

	p := people["Nagy Janos"]
	if !p.WantsDay(3) {
		t.Error("w3 未生效")
	}
	if !reflect.DeepEqual(p.HatedDays(), []int{10, 11, 12}) {
		t.Errorf("讨厌区间 = %v, 期望 [10 11 12]", p.HatedDays())
	}
	if p.RoleOn(20) != model.RoleLead {
		t.Error("f20 未生效")
	}
	if p.RoleOn(21) != model.RoleSupport || p.RoleOn(22) != model.RoleSupport {
		t.Error("b21-22 未生效")
	}
	if p.WantedHolidays != 1 || p.WantedFridays != 2 || p.WantedSaturdays != 3 || p.WantedSundays != 4 {
		t.Error("配额标记未生效")
	}
	if p.ManualOffset != 2 {
		t.Errorf("手工偏移 = %d, 期望 2", p.ManualOffset)
	}
}

func TestParseNegativeOffset(t *testing.T) {
	people, err := Parse(strings.NewReader("Toth_Gabor -3\n"))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if people["Toth Gabor"].ManualOffset != -3 {
		t.Errorf("手工偏移 = %d, 期望 -3", people["Toth Gabor"].ManualOffset)
	}
}

func TestParseContradictoryPreference(t *testing.T) {
	// 同一天既想要又讨厌：两个方向都要报错
	for _, input := range []string{
		"Kiss_Laszlo w5 h5\n",
		"Kiss_Laszlo h5 w5\n",
	} {
		_, err := Parse(strings.NewReader(input))
		if !errors.Is(err, errors.CodeContradictoryPreference) {
			t.Errorf("输入 %q 应报 CONTRADICTORY_PREFERENCE，实际 %v", input, err)
		}
	}
}

func TestParseInvalidToken(t *testing.T) {
	for _, input := range []string{
		"Nagy_Janos x5\n",
		"Nagy_Janos w\n",
		"Nagy_Janos h12-10\n",
	} {
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Errorf("输入 %q 应解析失败", input)
		}
	}
}

func TestParseSkipsCommentsAndBlankLines(t *testing.T) {
	input := "# 八月值班偏好\n\nNagy_Janos w3\n"
	people, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if len(people) != 1 {
		t.Errorf("人数 = %d, 期望 1", len(people))
	}
}

func TestParseDuplicateName(t *testing.T) {
	input := "Nagy_Janos w3\nNagy_Janos h5\n"
	if _, err := Parse(strings.NewReader(input)); err == nil {
		t.Error("重复人名应报错")
	}
}
