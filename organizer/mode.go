package organizer

import (
	"path/filepath"
	"time"
)

// Mode 整理模式，决定类别目录下追加多少层日期目录
type Mode string

const (
	ModeCategoryOnly      Mode = "Category Only"
	ModeCategoryYear      Mode = "Category / Year"
	ModeCategoryYearMonth Mode = "Category / Year-Month"
)

// ParseMode 解析整理模式
// 无法识别的值回退到 Category Only，这是防御性默认值而不是错误
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeCategoryYear, ModeCategoryYearMonth:
		return Mode(s)
	default:
		return ModeCategoryOnly
	}
}

// DestinationDir 根据整理模式推导目标目录
// 返回的目录可能尚不存在，创建由调用方负责
func DestinationDir(root, category string, mtime time.Time, mode Mode) string {
	switch mode {
	case ModeCategoryYear:
		return filepath.Join(root, category, mtime.Format("2006"))
	case ModeCategoryYearMonth:
		return filepath.Join(root, category, mtime.Format("2006-01"))
	default:
		return filepath.Join(root, category)
	}
}
