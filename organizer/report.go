package organizer

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Report 一次整理运行的汇总统计
// 由 Organizer 在运行期间增量填充，运行结束后随日志一起返回
type Report struct {
	RunID             string
	Root              string
	Mode              Mode
	StartedAt         time.Time
	TotalFiles        int
	TotalSizeBytes    int64
	Categories        map[string]int
	DuplicatesRemoved int
	SpaceSavedBytes   int64
	TimeTaken         time.Duration
	Logs              []string
}

func NewReport(root string, mode Mode) *Report {
	return &Report{
		RunID:      uuid.New().String(),
		Root:       root,
		Mode:       mode,
		StartedAt:  time.Now(),
		Categories: make(map[string]int),
	}
}

// Summary 渲染人类可读的汇总信息
func (r *Report) Summary() string {
	var b strings.Builder

	b.WriteString("========== 整理完成 ==========\n")
	b.WriteString(fmt.Sprintf("运行 ID: %s\n", r.RunID))
	b.WriteString(fmt.Sprintf("目录: %s\n", r.Root))
	b.WriteString(fmt.Sprintf("模式: %s\n", r.Mode))
	b.WriteString(fmt.Sprintf("总文件数: %d\n", r.TotalFiles))
	b.WriteString(fmt.Sprintf("总大小: %s\n", FormatBytes(r.TotalSizeBytes)))

	if len(r.Categories) > 0 {
		names := make([]string, 0, len(r.Categories))
		for name := range r.Categories {
			names = append(names, name)
		}
		sort.Strings(names)
		b.WriteString("各类别文件数:\n")
		for _, name := range names {
			b.WriteString(fmt.Sprintf("  - %s: %d\n", name, r.Categories[name]))
		}
	}

	b.WriteString(fmt.Sprintf("移出重复文件: %d 个\n", r.DuplicatesRemoved))
	b.WriteString(fmt.Sprintf("节省空间: %s\n", FormatBytes(r.SpaceSavedBytes)))
	b.WriteString(fmt.Sprintf("总耗时: %v\n", r.TimeTaken.Round(time.Millisecond)))
	b.WriteString("============================")

	return b.String()
}

// FormatBytes 以人类可读的单位渲染字节数
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
