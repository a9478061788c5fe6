package organizer

import (
	"path/filepath"
	"sort"

	"github.com/Sarthak1642/file-organization/hasher"
	"github.com/Sarthak1642/file-organization/logger"
	"github.com/Sarthak1642/file-organization/scanner"
)

// PreviewResult 只读扫描的结果，扫描过程不移动任何文件
type PreviewResult struct {
	TotalFiles     int
	TotalSizeBytes int64
	Categories     map[string]int
	// DuplicateGroups 摘要 -> 内容相同的文件名列表（已排序），仅包含出现两次以上的组
	DuplicateGroups map[string][]string
	// PotentialSavings 移除每组多余副本可节省的字节数
	PotentialSavings int64
	// Unreadable 无法计算哈希的文件名
	Unreadable []string
}

// Preview 并发计算目录直接子文件的哈希，统计类别分布和重复组
// 整理流程本身始终是单线程的，只有这个只读扫描使用哈希计算池
func (o *Organizer) Preview(workers int) (*PreviewResult, error) {
	files, err := scanner.NewLister(o.fs).ListFiles(o.root)
	if err != nil {
		return nil, err
	}

	result := &PreviewResult{
		Categories:      make(map[string]int),
		DuplicateGroups: make(map[string][]string),
	}

	sizes := make(map[string]int64, len(files))
	for _, info := range files {
		result.TotalFiles++
		result.TotalSizeBytes += info.Size()
		result.Categories[o.cls.Categorize(filepath.Ext(info.Name()))]++
		sizes[info.Name()] = info.Size()
	}

	if result.TotalFiles == 0 {
		return result, nil
	}

	pool := hasher.NewPool(o.fs, workers)
	if err := pool.Start(); err != nil {
		return nil, err
	}

	go func() {
		for _, info := range files {
			pool.AddTask(hasher.Task{
				Path: filepath.Join(o.root, info.Name()),
				Size: info.Size(),
			})
		}
		pool.Wait()
	}()

	groups := make(map[string][]string)
	for res := range pool.Results() {
		name := filepath.Base(res.Path)
		if !res.Digest.Readable {
			result.Unreadable = append(result.Unreadable, name)
			continue
		}
		groups[res.Digest.Hex] = append(groups[res.Digest.Hex], name)
	}

	for hex, names := range groups {
		if len(names) < 2 {
			continue
		}
		sort.Strings(names)
		result.DuplicateGroups[hex] = names
		// 每组保留一份，其余副本都是可节省的空间
		for _, name := range names[1:] {
			result.PotentialSavings += sizes[name]
		}
	}
	sort.Strings(result.Unreadable)

	logger.Get().Info().
		Int("total", result.TotalFiles).
		Int("duplicate_groups", len(result.DuplicateGroups)).
		Msg("扫描完成")

	return result, nil
}
