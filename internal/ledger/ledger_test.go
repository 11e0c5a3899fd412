package ledger

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/zhiban/zhiban/internal/config"
)

func openTestStore(t *testing.T) Store {
	t.Helper()
	cfg := &config.LedgerConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "ledger.db"),
	}
	store, err := Open(cfg)
	if err != nil {
		t.Fatalf("打开台账失败: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestWriteAndSum(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	// 写入三个月的数据，汇总 2026-08 之前的部分
	if err := store.Write(ctx, "张三", 2026, 6, CategoryWeekend, 3); err != nil {
		t.Fatalf("写入失败: %v", err)
	}
	if err := store.Write(ctx, "张三", 2026, 7, CategoryWeekend, 2); err != nil {
		t.Fatalf("写入失败: %v", err)
	}
	if err := store.Write(ctx, "张三", 2026, 8, CategoryWeekend, 4); err != nil {
		t.Fatalf("写入失败: %v", err)
	}

	got, err := store.Sum(ctx, "张三", CategoryWeekend, 2026, 8)
	if err != nil {
		t.Fatalf("汇总失败: %v", err)
	}
	// 当月不计入
	if got != 5 {
		t.Errorf("累计值 = %d, 期望 5", got)
	}
}

func TestSumSpansYears(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Write(ctx, "李四", 2025, 12, CategoryAll, 6); err != nil {
		t.Fatalf("写入失败: %v", err)
	}
	if err := store.Write(ctx, "李四", 2026, 1, CategoryAll, 5); err != nil {
		t.Fatalf("写入失败: %v", err)
	}

	got, err := store.Sum(ctx, "李四", CategoryAll, 2026, 2)
	if err != nil {
		t.Fatalf("汇总失败: %v", err)
	}
	if got != 11 {
		t.Errorf("跨年累计值 = %d, 期望 11", got)
	}
}

func TestWriteOverwritesSameKey(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Write(ctx, "王五", 2026, 7, CategoryFriday, 1); err != nil {
		t.Fatalf("写入失败: %v", err)
	}
	if err := store.Write(ctx, "王五", 2026, 7, CategoryFriday, 3); err != nil {
		t.Fatalf("覆盖写入失败: %v", err)
	}

	got, err := store.Sum(ctx, "王五", CategoryFriday, 2026, 8)
	if err != nil {
		t.Fatalf("汇总失败: %v", err)
	}
	if got != 3 {
		t.Errorf("同键覆盖后累计值 = %d, 期望 3", got)
	}
}

func TestSumEmptyStore(t *testing.T) {
	store := openTestStore(t)

	got, err := store.Sum(context.Background(), "不存在", CategoryAll, 2026, 8)
	if err != nil {
		t.Fatalf("汇总失败: %v", err)
	}
	if got != 0 {
		t.Errorf("空台账累计值 = %d, 期望 0", got)
	}
}

func TestNames(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"赵六", "张三", "张三"} {
		if err := store.Write(ctx, name, 2026, 7, CategoryAll, 1); err != nil {
			t.Fatalf("写入失败: %v", err)
		}
	}

	names, err := store.Names(ctx)
	if err != nil {
		t.Fatalf("查询人名失败: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"张三", "赵六"}) {
		t.Errorf("人名列表 = %v, 期望去重且有序", names)
	}
}

func TestUnknownDriver(t *testing.T) {
	if _, err := Open(&config.LedgerConfig{Driver: "oracle"}); err == nil {
		t.Fatal("未知驱动应当报错")
	}
}

func TestPQRebind(t *testing.T) {
	got := pqRebind("INSERT INTO t VALUES (?, ?, ?)")
	want := "INSERT INTO t VALUES ($1, $2, $3)"
	if got != want {
		t.Errorf("改写结果 = %q, 期望 %q", got, want)
	}
}
