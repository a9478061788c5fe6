package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "file-organization",
	Short: "按类别和日期整理单个目录中的文件",
	Long: `File Organization 是一个命令行工具，对指定目录的直接子文件进行分类整理。

主要功能:
- 按扩展名和 MIME 推断对文件分类（Documents/Images/Videos/Music/Archives/Others）
- 按"类别 / 年份 / 年-月"三种模式生成目标目录
- 基于内容哈希检测重复文件并移入 Duplicates (Removed) 目录
- 输出逐文件整理日志和汇总统计
- 将运行记录归档到 SQLite 历史数据库`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
