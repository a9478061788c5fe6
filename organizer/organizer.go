package organizer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/Sarthak1642/file-organization/classifier"
	"github.com/Sarthak1642/file-organization/hasher"
	"github.com/Sarthak1642/file-organization/internal"
	"github.com/Sarthak1642/file-organization/logger"
	"github.com/Sarthak1642/file-organization/scanner"
)

// Organizer 对单个目录的直接子文件执行分类整理
// 文件严格逐个处理，保证重复检测顺序确定
type Organizer struct {
	fs       afero.Fs
	root     string
	mode     Mode
	checkDup bool
	cls      *classifier.Classifier
	sink     ProgressSink
}

type Option func(*Organizer)

// WithFs 替换底层文件系统，测试时传入内存文件系统
func WithFs(fs afero.Fs) Option {
	return func(o *Organizer) { o.fs = fs }
}

// WithClassifier 替换分类器（例如使用配置文件中的类别表）
func WithClassifier(cls *classifier.Classifier) Option {
	return func(o *Organizer) { o.cls = cls }
}

// WithProgress 设置进度接收方
func WithProgress(sink ProgressSink) Option {
	return func(o *Organizer) { o.sink = sink }
}

func New(root string, mode Mode, checkDuplicates bool, opts ...Option) *Organizer {
	o := &Organizer{
		fs:       afero.NewOsFs(),
		root:     root,
		mode:     mode,
		checkDup: checkDuplicates,
		cls:      classifier.New(classifier.DefaultTable()),
		sink:     NopSink{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run 执行整理，返回日志行序列和汇总报告
// 返回的日志和 report.Logs 是同一个序列
// 单个文件的失败只产生日志行，不会中断运行；
// 唯一向调用方传播的硬错误是目录枚举失败
func (o *Organizer) Run() ([]string, *Report, error) {
	start := time.Now()
	report := NewReport(o.root, o.mode)

	files, err := scanner.NewLister(o.fs).ListFiles(o.root)
	if err != nil {
		return nil, nil, err
	}

	total := len(files)
	report.TotalFiles = total
	logger.Get().Info().Int("total", total).Str("root", o.root).Msg("开始整理文件")

	if total == 0 {
		report.TimeTaken = time.Since(start)
		o.sink.Emit(100, "No files to organize")
		return report.Logs, report, nil
	}

	// 本次运行内见过的内容摘要，摘要 -> 首个文件名
	seen := make(map[string]string)

	for i, info := range files {
		name := info.Name()
		path := filepath.Join(o.root, name)
		size := info.Size()
		percent := (i + 1) * 100 / total

		report.TotalSizeBytes += size

		if o.checkDup {
			digest := hasher.Sum(o.fs, path)
			switch {
			case !digest.Readable:
				// 无法读取内容的文件只跳过重复检测，仍然正常分类移动
				line := fmt.Sprintf("Warning: Could not read hash for %s. Skipping duplicate check.", name)
				report.Logs = append(report.Logs, line)
			case seen[digest.Hex] != "":
				report.DuplicatesRemoved++
				report.SpaceSavedBytes += size

				line := o.removeDuplicate(path, name)
				report.Logs = append(report.Logs, line)
				o.sink.Emit(percent, line)
				continue
			default:
				seen[digest.Hex] = name
			}
		}

		category := o.cls.Categorize(filepath.Ext(name))
		report.Categories[category]++

		destDir := DestinationDir(o.root, category, info.ModTime(), o.mode)

		var line string
		if err := o.moveInto(path, destDir); err != nil {
			line = fmt.Sprintf("ERROR moving %s: %v", name, err)
			logger.Get().Error().Err(err).Str("file", name).Msg("移动文件失败")
		} else {
			rel, relErr := filepath.Rel(o.root, destDir)
			if relErr != nil {
				rel = destDir
			}
			line = fmt.Sprintf("Moved: %s → %s", name, rel)
			logger.Get().Debug().Str("file", name).Str("dest", rel).Msg("文件已移动")
		}

		report.Logs = append(report.Logs, line)
		o.sink.Emit(percent, fmt.Sprintf("Processing %s (%d/%d)", name, i+1, total))
	}

	report.TimeTaken = time.Since(start)
	o.sink.Emit(100, fmt.Sprintf("Completed — %d files organized.", report.TotalFiles))
	logger.Get().Info().
		Int("total", report.TotalFiles).
		Int("duplicates", report.DuplicatesRemoved).
		Dur("duration", report.TimeTaken).
		Msg("整理完成")

	return report.Logs, report, nil
}

// removeDuplicate 将重复文件移入 Duplicates (Removed) 目录，返回日志行
func (o *Organizer) removeDuplicate(path, name string) string {
	dupDir := filepath.Join(o.root, internal.DuplicatesDirName)
	if err := o.fs.MkdirAll(dupDir, 0755); err != nil {
		logger.Get().Error().Err(err).Str("file", name).Msg("创建重复文件目录失败")
		return fmt.Sprintf("ERROR moving %s: %v", name, err)
	}
	if err := o.moveFile(path, filepath.Join(dupDir, name)); err != nil {
		logger.Get().Error().Err(err).Str("file", name).Msg("移动重复文件失败")
		return fmt.Sprintf("ERROR moving %s: %v", name, err)
	}

	logger.Get().Debug().Str("file", name).Msg("重复文件已移出")
	return fmt.Sprintf("DUPLICATE REMOVED: %s -> Duplicates", name)
}

// moveInto 确保目标目录（含缺失的中间目录）存在后移动文件，保留原文件名
func (o *Organizer) moveInto(src, destDir string) error {
	if err := o.fs.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("创建目标目录失败: %w", err)
	}
	return o.moveFile(src, filepath.Join(destDir, filepath.Base(src)))
}

// moveFile 移动文件
// 目标已存在同名文件时追加 _N 序号自动改名，不继承底层移动原语的静默覆盖
func (o *Organizer) moveFile(src, dst string) error {
	dst, err := o.resolveCollision(dst)
	if err != nil {
		return err
	}

	if err := o.fs.Rename(src, dst); err == nil {
		return nil
	}

	// Rename 失败（可能是跨卷移动），退化为复制后删除
	logger.Get().Debug().Str("source", src).Str("destination", dst).Msg("直接重命名失败，尝试复制后删除")

	sourceFile, err := o.fs.Open(src)
	if err != nil {
		return fmt.Errorf("打开源文件失败: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := o.fs.Create(dst)
	if err != nil {
		return fmt.Errorf("创建目标文件失败: %w", err)
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return fmt.Errorf("复制文件内容失败: %w", err)
	}

	if err := o.fs.Remove(src); err != nil {
		return fmt.Errorf("删除原文件失败: %w", err)
	}

	return nil
}

// resolveCollision 目标路径已被占用时，在扩展名前追加 _N 序号找到空闲路径
func (o *Organizer) resolveCollision(dst string) (string, error) {
	exists, err := afero.Exists(o.fs, dst)
	if err != nil {
		return "", fmt.Errorf("检查文件是否存在失败: %w", err)
	}
	if !exists {
		return dst, nil
	}

	ext := filepath.Ext(dst)
	baseName := strings.TrimSuffix(dst, ext)

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", baseName, i, ext)
		exists, err := afero.Exists(o.fs, candidate)
		if err != nil {
			return "", fmt.Errorf("检查文件是否存在失败: %w", err)
		}
		if !exists {
			logger.Get().Debug().Str("original_path", dst).Str("new_path", candidate).Msg("文件名冲突，自动重命名")
			return candidate, nil
		}
	}
}
