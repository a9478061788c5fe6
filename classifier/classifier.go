package classifier

import (
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
)

// CategoryOthers 未能识别的文件归入的兜底类别
const CategoryOthers = "Others"

// Category 一个文件类别及其识别的扩展名集合
type Category struct {
	Name       string
	Extensions []string
}

// DefaultTable 返回内置类别表
// 表的顺序即匹配顺序，扩展名在各类别间不重复
func DefaultTable() []Category {
	return []Category{
		{Name: "Documents", Extensions: []string{".pdf", ".docx", ".txt", ".pptx", ".xlsx", ".csv"}},
		{Name: "Images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg"}},
		{Name: "Videos", Extensions: []string{".mp4", ".mkv", ".avi", ".mov"}},
		{Name: "Music", Extensions: []string{".mp3", ".wav", ".aac", ".flac"}},
		{Name: "Archives", Extensions: []string{".zip", ".rar", ".tar", ".gz"}},
	}
}

// Classifier 按扩展名对文件分类
// 类别表在构造时传入且之后不再修改，便于测试时替换
type Classifier struct {
	table []Category
}

func New(table []Category) *Classifier {
	normalized := make([]Category, 0, len(table))
	for _, cat := range table {
		exts := make([]string, 0, len(cat.Extensions))
		for _, ext := range cat.Extensions {
			exts = append(exts, strings.ToLower(ext))
		}
		normalized = append(normalized, Category{Name: cat.Name, Extensions: exts})
	}
	return &Classifier{table: normalized}
}

// Categorize 返回扩展名对应的类别名
// 先按类别表顺序查找（首个匹配生效），未命中时根据扩展名推断媒体类型，
// image/video/audio 分别归入 Images/Videos/Audios，其余归入 Others
func (c *Classifier) Categorize(ext string) string {
	lower := strings.ToLower(ext)

	for _, cat := range c.table {
		for _, known := range cat.Extensions {
			if known == lower {
				return cat.Name
			}
		}
	}

	kind := filetype.GetType(strings.TrimPrefix(lower, "."))
	if kind != types.Unknown {
		switch kind.MIME.Type {
		case "image":
			return "Images"
		case "video":
			return "Videos"
		case "audio":
			// 与 Images/Videos 的复数约定保持一致
			return "Audios"
		}
	}

	return CategoryOthers
}
