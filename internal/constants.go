package internal

const (
	// DuplicatesDirName 重复文件移出后的存放目录名（位于被整理目录下）
	DuplicatesDirName = "Duplicates (Removed)"

	// HashBlockSize 计算文件哈希时的读取块大小
	HashBlockSize = 64 * 1024

	// DefaultWorkers 只读扫描时哈希计算池的默认工作线程数
	DefaultWorkers = 4

	// DefaultBufferSize 哈希任务通道的缓冲区大小
	DefaultBufferSize = 1000

	// DefaultHistoryPath 运行历史数据库的默认路径
	DefaultHistoryPath = "~/.file-organization/history.db"

	// DefaultConfigPath 配置文件默认路径
	DefaultConfigPath = "~/.file-organization/config.yaml"
)

// SelfFileNames 工具自身相关的文件名，整理时跳过且不移动
var SelfFileNames = []string{
	"file-organization",
	"file-organization.exe",
	"history.db",
}
