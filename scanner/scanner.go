package scanner

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/Sarthak1642/file-organization/internal"
	"github.com/Sarthak1642/file-organization/logger"
)

// Lister 列出目录的直接子文件
// 不做递归遍历，子目录原样保留
type Lister struct {
	fs      afero.Fs
	exclude map[string]bool
}

func NewLister(fs afero.Fs) *Lister {
	exclude := make(map[string]bool, len(internal.SelfFileNames))
	for _, name := range internal.SelfFileNames {
		exclude[name] = true
	}
	return &Lister{fs: fs, exclude: exclude}
}

// ListFiles 返回 root 下的常规子文件，按文件名排序
// 跳过目录、非常规文件和工具自身的文件
// 枚举失败是一次运行中唯一向上传播的硬错误
func (l *Lister) ListFiles(root string) ([]os.FileInfo, error) {
	infos, err := afero.ReadDir(l.fs, root)
	if err != nil {
		return nil, fmt.Errorf("读取目录失败: %w", err)
	}

	files := make([]os.FileInfo, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		if info.Mode()&os.ModeType != 0 {
			// 符号链接、设备文件等一律跳过
			logger.Get().Debug().Str("file", info.Name()).Msg("跳过非常规文件")
			continue
		}
		if l.exclude[info.Name()] {
			logger.Get().Debug().Str("file", info.Name()).Msg("跳过工具自身文件")
			continue
		}
		files = append(files, info)
	}

	return files, nil
}
