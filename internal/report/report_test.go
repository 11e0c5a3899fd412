package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/zhiban/zhiban/pkg/prefs"
	"github.com/zhiban/zhiban/pkg/roster"
)

// fixtureResult 2026年8月的小型结果
// 1 日是周六，2 日是周日，7 日是周五，20 日是周四且为节假日
func fixtureResult() *roster.Result {
	return &roster.Result{
		Year:    2026,
		Month:   time.August,
		NumDays: 31,
		Scheduled: map[int][]string{
			1:  {"A", "B"},
			2:  {"C", "D"},
			7:  {"A", "C"},
			20: {"B", "D"},
		},
		Leads: map[int]string{
			1:  "A",
			2:  "C",
			7:  "C",
			20: "D",
		},
		Saturdays: []int{1, 8, 15, 22, 29},
		Sundays:   []int{2, 9, 16, 23, 30},
		Holidays:  []int{20},
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(fixtureResult())

	tests := []struct {
		name string
		want Counts
	}{
		{"A", Counts{All: 2, Saturday: 1, Friday: 1}},
		{"B", Counts{All: 2, Saturday: 1, HolidayWeekday: 1}},
		{"C", Counts{All: 2, Sunday: 1, Friday: 1}},
		{"D", Counts{All: 2, Sunday: 1, HolidayWeekday: 1}},
	}
	for _, tt := range tests {
		if got := summary[tt.name]; got != tt.want {
			t.Errorf("%s 的统计 = %+v, 期望 %+v", tt.name, got, tt.want)
		}
	}
}

func TestSummarizeHolidayBeatsWeekend(t *testing.T) {
	// 节假日落在周六时只记节假日周六，不记普通周末
	result := &roster.Result{
		Year:    2026,
		Month:   time.December,
		NumDays: 31,
		Scheduled: map[int][]string{
			26: {"A", "B"}, // 2026-12-26 周六，节假日
		},
		Leads:    map[int]string{26: "A"},
		Holidays: []int{25, 26},
	}

	got := Summarize(result)["A"]
	want := Counts{All: 1, HolidaySaturday: 1}
	if got != want {
		t.Errorf("统计 = %+v, 期望 %+v", got, want)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, fixtureResult()); err != nil {
		t.Fatalf("写文本报告失败: %v", err)
	}

	want := []string{
		"1 -> A - B",
		"2 -> C - D",
		"7 -> C - A",
		"20 -> D - B - Official Holiday",
		"A - 2",
		"B - 2",
		"C - 2",
		"D - 2",
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(want) {
		t.Fatalf("行数 = %d, 期望 %d:\n%s", len(lines), len(want), buf.String())
	}
	for i, line := range want {
		if lines[i] != line {
			t.Errorf("第 %d 行 = %q, 期望 %q", i+1, lines[i], line)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, fixtureResult()); err != nil {
		t.Fatalf("写 CSV 失败: %v", err)
	}

	want := []string{
		"A w1 w7 f1 b7",
		"B w1 w20 b1 b20",
		"C w2 w7 f2 f7",
		"D w2 w20 b2 f20",
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(want) {
		t.Fatalf("行数 = %d, 期望 %d:\n%s", len(lines), len(want), buf.String())
	}
	for i, line := range want {
		if lines[i] != line {
			t.Errorf("第 %d 行 = %q, 期望 %q", i+1, lines[i], line)
		}
	}
}

func TestWriteCSVUnderscoresNames(t *testing.T) {
	result := &roster.Result{
		Year:    2026,
		Month:   time.August,
		NumDays: 31,
		Scheduled: map[int][]string{
			3: {"王 五", "张 三"},
		},
		Leads: map[int]string{3: "王 五"},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, result); err != nil {
		t.Fatalf("写 CSV 失败: %v", err)
	}
	if !strings.Contains(buf.String(), "王_五 w3 f3") {
		t.Errorf("人名里的空格应转成下划线:\n%s", buf.String())
	}
}

func TestCSVRoundTripsThroughParser(t *testing.T) {
	// 结果文件可以被偏好解析器直接读回
	var buf bytes.Buffer
	if err := WriteCSV(&buf, fixtureResult()); err != nil {
		t.Fatalf("写 CSV 失败: %v", err)
	}

	people, err := prefs.Parse(&buf)
	if err != nil {
		t.Fatalf("回读失败: %v", err)
	}
	if len(people) != 4 {
		t.Fatalf("回读人数 = %d, 期望 4", len(people))
	}
	if !people["A"].WantsDay(1) || !people["A"].WantsDay(7) {
		t.Error("A 的值班日应回读为想要日")
	}
}
