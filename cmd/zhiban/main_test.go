package main

import (
	"testing"
	"time"
)

func TestTargetMonth(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		args      []string
		wantYear  int
		wantMonth time.Month
		wantErr   bool
	}{
		{"缺省为下个月", nil, 2026, time.September, false},
		{"显式指定", []string{"2611"}, 2026, time.November, false},
		{"位数不对", []string{"26111"}, 0, 0, true},
		{"月份越界", []string{"2613"}, 0, 0, true},
		{"非数字", []string{"26ab"}, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month, err := targetMonth(tt.args, now)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("期望报错，实际得到 %d-%d", year, month)
				}
				return
			}
			if err != nil {
				t.Fatalf("解析失败: %v", err)
			}
			if year != tt.wantYear || month != tt.wantMonth {
				t.Errorf("目标月份 = %d-%d, 期望 %d-%d", year, month, tt.wantYear, tt.wantMonth)
			}
		})
	}
}

func TestTargetMonthYearRollover(t *testing.T) {
	now := time.Date(2026, time.December, 15, 0, 0, 0, 0, time.UTC)
	year, month, err := targetMonth(nil, now)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if year != 2027 || month != time.January {
		t.Errorf("目标月份 = %d-%d, 期望 2027-1", year, month)
	}
}
