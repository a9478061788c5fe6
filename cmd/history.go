package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sarthak1642/file-organization/config"
	"github.com/Sarthak1642/file-organization/history"
	"github.com/Sarthak1642/file-organization/logger"
	"github.com/Sarthak1642/file-organization/organizer"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "查看最近的整理运行记录",
	Long:  `从历史数据库读取最近的整理运行，按时间倒序输出每次运行的统计摘要。`,
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return err
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(historyLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("暂无运行记录")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("[%s] %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"), run.Root)
		fmt.Printf("  模式: %s  文件: %d  大小: %s  重复: %d  节省: %s  耗时: %v\n",
			run.Mode,
			run.TotalFiles,
			organizer.FormatBytes(run.TotalSizeBytes),
			run.DuplicatesRemoved,
			organizer.FormatBytes(run.SpaceSavedBytes),
			run.TimeTaken,
		)
	}

	return nil
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "显示的记录条数")

	rootCmd.AddCommand(historyCmd)
}
