// ZhiBan 值班表生成器
// 主程序入口
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/zhiban/zhiban/internal/config"
	"github.com/zhiban/zhiban/internal/ledger"
	"github.com/zhiban/zhiban/internal/report"
	"github.com/zhiban/zhiban/pkg/logger"
	"github.com/zhiban/zhiban/pkg/prefs"
	"github.com/zhiban/zhiban/pkg/roster"
	"github.com/zhiban/zhiban/pkg/stats"
)

// 构建信息（通过 ldflags 注入）
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	peopleFile string
	outDir     string
	seed       int64
)

func main() {
	// .env 不存在时静默跳过
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	logger.Init(logger.Config{
		Level:  cfg.App.LogLevel,
		Format: "console",
	})

	root := &cobra.Command{
		Use:   "zhiban [yymm]",
		Short: "月度值班表生成器",
		Long: "读取人员偏好文件，为指定月份（默认下个月）生成每天两人的\n" +
			"值班表，输出文本报告和可回读的 CSV，并维护跨月台账。",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg, args)
		},
	}
	root.Flags().StringVar(&peopleFile, "people", cfg.Engine.PeopleFile, "人员偏好文件")
	root.Flags().StringVar(&outDir, "out-dir", cfg.Engine.OutDir, "输出目录")
	root.Flags().Int64Var(&seed, "seed", cfg.Engine.Seed, "随机种子，0 表示按时间取")

	fmt.Printf("ZhiBan 值班表生成器 v%s\n", Version)
	fmt.Printf("Build: %s (%s)\n\n", BuildTime, GitCommit)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, args []string) error {
	year, month, err := targetMonth(args, time.Now())
	if err != nil {
		return err
	}

	f, err := os.Open(peopleFile)
	if err != nil {
		return fmt.Errorf("打开偏好文件失败: %w", err)
	}
	people, err := prefs.Parse(f)
	f.Close()
	if err != nil {
		return err
	}

	opts := []roster.Option{
		roster.WithRebalanceIterations(cfg.Engine.RebalanceIterations),
	}
	if seed != 0 {
		opts = append(opts, roster.WithSeed(seed))
	}

	ctx := context.Background()
	result, err := roster.New(people, year, month, opts...).Run(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("生成值班表失败")
		return err
	}

	fairness := stats.Fairness(result)
	logger.Info().
		Float64("score", fairness.OverallScore).
		Float64("total_gini", fairness.TotalGini).
		Float64("lead_gini", fairness.LeadGini).
		Msg("公平性评分")

	if err := writeOutputs(result); err != nil {
		return err
	}

	store, err := ledger.Open(&cfg.Ledger)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := report.UpdateLedger(ctx, store, result); err != nil {
		return err
	}
	rows, err := report.Cumulative(ctx, store, result)
	if err != nil {
		return err
	}
	printCumulative(rows)
	return nil
}

// targetMonth 解析目标月份参数，yymm 四位数字，缺省为下个月
func targetMonth(args []string, now time.Time) (int, time.Month, error) {
	if len(args) == 0 {
		next := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
		return next.Year(), next.Month(), nil
	}

	s := args[0]
	if len(s) != 4 {
		return 0, 0, fmt.Errorf("月份参数 %q 无效，应为 yymm 四位数字", s)
	}
	yy, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, 0, fmt.Errorf("月份参数 %q 无效: %w", s, err)
	}
	mm, err := strconv.Atoi(s[2:])
	if err != nil {
		return 0, 0, fmt.Errorf("月份参数 %q 无效: %w", s, err)
	}
	if mm < 1 || mm > 12 {
		return 0, 0, fmt.Errorf("月份 %d 超出 1-12", mm)
	}
	return 2000 + yy, time.Month(mm), nil
}

// writeOutputs 写出文本报告和 CSV 结果
func writeOutputs(result *roster.Result) error {
	txtPath := filepath.Join(outDir, fmt.Sprintf("schedule-%d-%d.txt", result.Year, int(result.Month)))
	if err := writeFile(txtPath, result, report.WriteText); err != nil {
		return err
	}

	csvPath := filepath.Join(outDir, fmt.Sprintf("schedule-%d-%d.csv", result.Year, int(result.Month)))
	if err := writeFile(csvPath, result, report.WriteCSV); err != nil {
		return err
	}

	logger.Info().
		Str("txt", txtPath).
		Str("csv", csvPath).
		Int("days", result.Statistics.FilledDays).
		Msg("值班表已写出")
	return nil
}

func writeFile(path string, result *roster.Result, render func(w io.Writer, r *roster.Result) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建 %s 失败: %w", path, err)
	}
	if err := render(f, result); err != nil {
		f.Close()
		return fmt.Errorf("写入 %s 失败: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("关闭 %s 失败: %w", path, err)
	}
	return nil
}

// printCumulative 打印跨月累计汇总表
func printCumulative(rows []report.CumulativeRow) {
	fmt.Printf("%-16s %8s %4s %4s %4s %4s %10s %10s %10s\n",
		"姓名", "周一至四", "周五", "周六", "周日", "节日", "周末补偿", "平日补偿", "合计")
	for _, row := range rows {
		fmt.Printf("%-16s %8d %4d %4d %4d %4d %10.1f %10.1f %10.1f\n",
			row.Name, row.MonToThu, row.Friday, row.Saturday, row.Sunday, row.Holiday,
			row.WeekendSB, row.WeekdaySB, row.TotalSB)
	}
}
