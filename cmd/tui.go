package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Sarthak1642/file-organization/config"
	"github.com/Sarthak1642/file-organization/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "启动交互式界面",
	Long:  `启动终端交互界面：选择目录、整理模式和是否检测重复文件，实时查看整理进度和最终报告。`,
	RunE:  runTui,
}

func runTui(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// TUI 接管终端，这里不初始化控制台日志（logger 默认丢弃输出）
	return tui.Run(&tui.Config{
		HistoryPath:  cfg.History.Path,
		DefaultMode:  cfg.Organize.Mode,
		DefaultDedup: cfg.Organize.CheckDuplicates,
	})
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
