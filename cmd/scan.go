package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Sarthak1642/file-organization/classifier"
	"github.com/Sarthak1642/file-organization/config"
	"github.com/Sarthak1642/file-organization/logger"
	"github.com/Sarthak1642/file-organization/organizer"
)

var (
	scanFolder  string
	scanWorkers int
	scanVerbose bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "预览目录的类别分布和重复文件",
	Long: `只读扫描指定目录的直接子文件，不移动任何文件:
- 并发计算每个文件的内容哈希
- 统计各类别的文件数量
- 列出内容完全相同的文件组以及可节省的空间`,
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logLevel := cfg.Logging.Level
	if scanVerbose {
		logLevel = "debug"
	}
	if err := logger.Init(logLevel, cfg.Logging.File); err != nil {
		return err
	}

	workers := scanWorkers
	if workers <= 0 {
		workers = cfg.Performance.Workers
	}

	org := organizer.New(scanFolder, organizer.ModeCategoryOnly, true,
		organizer.WithClassifier(classifier.New(categoryTable(cfg))),
	)

	result, err := org.Preview(workers)
	if err != nil {
		return err
	}

	printScanResult(result)
	return nil
}

func printScanResult(result *organizer.PreviewResult) {
	fmt.Println("========== 扫描结果 ==========")
	fmt.Printf("总文件数: %d\n", result.TotalFiles)
	fmt.Printf("总大小: %s\n", organizer.FormatBytes(result.TotalSizeBytes))

	if len(result.Categories) > 0 {
		names := make([]string, 0, len(result.Categories))
		for name := range result.Categories {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Println("各类别文件数:")
		for _, name := range names {
			fmt.Printf("  - %s: %d\n", name, result.Categories[name])
		}
	}

	if len(result.DuplicateGroups) > 0 {
		fmt.Printf("重复文件组: %d\n", len(result.DuplicateGroups))
		for hex, names := range result.DuplicateGroups {
			fmt.Printf("  [%s] %v\n", hex, names)
		}
		fmt.Printf("可节省空间: %s\n", organizer.FormatBytes(result.PotentialSavings))
	} else {
		fmt.Println("未发现重复文件")
	}

	if len(result.Unreadable) > 0 {
		fmt.Printf("无法读取的文件: %v\n", result.Unreadable)
	}
	fmt.Println("============================")
}

func init() {
	scanCmd.Flags().StringVarP(&scanFolder, "folder", "f", "", "待扫描的目录路径 (必需)")
	scanCmd.Flags().IntVarP(&scanWorkers, "workers", "w", 0, "哈希计算的工作线程数（默认取配置值）")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "显示详细日志")

	if err := scanCmd.MarkFlagRequired("folder"); err != nil {
		fmt.Println("待扫描目录需要给出")
	}

	rootCmd.AddCommand(scanCmd)
}
