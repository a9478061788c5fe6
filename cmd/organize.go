package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sarthak1642/file-organization/classifier"
	"github.com/Sarthak1642/file-organization/config"
	"github.com/Sarthak1642/file-organization/history"
	"github.com/Sarthak1642/file-organization/logger"
	"github.com/Sarthak1642/file-organization/organizer"
)

var (
	organizeFolder  string
	organizeMode    string
	organizeDedup   bool
	organizeVerbose bool
	noHistory       bool
)

var organizeCmd = &cobra.Command{
	Use:   "organize",
	Short: "整理目录中的文件",
	Long: `对指定目录的直接子文件执行一次整理:
1. 按文件名顺序逐个处理（不递归子目录）
2. 开启重复检测时，内容哈希重复的文件移入 Duplicates (Removed)
3. 其余文件按类别（和可选的日期层级）移入对应子目录
4. 目标目录已有同名文件时自动追加 _N 序号，不覆盖
5. 单个文件失败只记入日志，整次运行继续`,
	RunE: runOrganize,
}

func runOrganize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logLevel := cfg.Logging.Level
	if organizeVerbose {
		logLevel = "debug"
	}
	if err := logger.Init(logLevel, cfg.Logging.File); err != nil {
		return err
	}

	modeStr := organizeMode
	if modeStr == "" {
		modeStr = cfg.Organize.Mode
	}
	mode := organizer.ParseMode(modeStr)

	checkDup := organizeDedup
	if !cmd.Flags().Changed("duplicates") {
		checkDup = cfg.Organize.CheckDuplicates
	}

	logger.Get().Info().Msgf("目录: %s", organizeFolder)
	logger.Get().Info().Msgf("整理模式: %s", mode)
	logger.Get().Info().Msgf("重复检测: %v", checkDup)

	org := organizer.New(organizeFolder, mode, checkDup,
		organizer.WithClassifier(classifier.New(categoryTable(cfg))),
		organizer.WithProgress(organizer.SinkFunc(func(percent int, message string) {
			logger.Get().Info().Int("percent", percent).Msg(message)
		})),
	)

	logs, report, err := org.Run()
	if err != nil {
		return err
	}

	for _, line := range logs {
		fmt.Println(line)
	}
	fmt.Println(report.Summary())

	if !noHistory {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			logger.Get().Warn().Err(err).Msg("打开历史数据库失败，跳过归档")
			return nil
		}
		defer store.Close()

		if err := store.Save(report); err != nil {
			logger.Get().Warn().Err(err).Msg("归档运行记录失败")
		}
	}

	return nil
}

// categoryTable 配置文件中定义了类别表时使用配置的表，否则使用内置表
func categoryTable(cfg *config.Config) []classifier.Category {
	if len(cfg.Categories) == 0 {
		return classifier.DefaultTable()
	}
	table := make([]classifier.Category, 0, len(cfg.Categories))
	for _, rule := range cfg.Categories {
		table = append(table, classifier.Category{
			Name:       rule.Name,
			Extensions: rule.Extensions,
		})
	}
	return table
}

func init() {
	organizeCmd.Flags().StringVarP(&organizeFolder, "folder", "f", "", "待整理的目录路径 (必需)")
	organizeCmd.Flags().StringVarP(&organizeMode, "mode", "m", "",
		`整理模式: "Category Only"、"Category / Year" 或 "Category / Year-Month"`)
	organizeCmd.Flags().BoolVarP(&organizeDedup, "duplicates", "d", false, "开启重复文件检测")
	organizeCmd.Flags().BoolVarP(&organizeVerbose, "verbose", "v", false, "显示详细日志")
	organizeCmd.Flags().BoolVar(&noHistory, "no-history", false, "不将本次运行记入历史数据库")

	if err := organizeCmd.MarkFlagRequired("folder"); err != nil {
		fmt.Println("待整理目录需要给出")
	}

	rootCmd.AddCommand(organizeCmd)
}
