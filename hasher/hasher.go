package hasher

import (
	"io"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"

	"github.com/Sarthak1642/file-organization/internal"
	"github.com/Sarthak1642/file-organization/logger"
)

// Digest 文件内容摘要的计算结果
// 文件不可读时 Readable 为 false，调用方必须显式分支处理，
// 不可读的文件永远不会被判定为重复
type Digest struct {
	Hex      string
	Readable bool
}

// Sum 以固定大小的块读取文件并计算 xxHash 摘要
// 任何读取失败（权限不足、文件被移除、I/O 错误）都返回不可读结果而不是错误
func Sum(fs afero.Fs, filePath string) Digest {
	file, err := fs.Open(filePath)
	if err != nil {
		logger.Get().Warn().Err(err).Str("file", filePath).Msg("无法打开文件，跳过哈希计算")
		return Digest{}
	}
	defer file.Close()

	h := xxhash.New()
	buf := make([]byte, internal.HashBlockSize)
	for {
		n, err := file.Read(buf)
		if n > 0 {
			// xxhash 的 Write 不会返回错误
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Get().Warn().Err(err).Str("file", filePath).Msg("读取文件失败，跳过哈希计算")
			return Digest{}
		}
	}

	return Digest{
		Hex:      strconv.FormatUint(h.Sum64(), 16),
		Readable: true,
	}
}
