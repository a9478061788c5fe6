package hasher

import (
	"fmt"
	"testing"

	"github.com/spf13/afero"
)

func TestPool_Process(t *testing.T) {
	fs := afero.NewMemMapFs()

	var tasks []Task
	for i := 0; i < 20; i++ {
		path := fmt.Sprintf("/file%d.txt", i)
		content := []byte(fmt.Sprintf("content-%d", i))
		if err := afero.WriteFile(fs, path, content, 0644); err != nil {
			t.Fatalf("创建测试文件失败: %v", err)
		}
		tasks = append(tasks, Task{Path: path, Size: int64(len(content))})
	}

	pool := NewPool(fs, 4)
	if err := pool.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	go func() {
		for _, task := range tasks {
			pool.AddTask(task)
		}
		pool.Wait()
	}()

	seen := make(map[string]string)
	for result := range pool.Results() {
		if !result.Digest.Readable {
			t.Errorf("Expected readable digest for %s", result.Path)
			continue
		}
		seen[result.Path] = result.Digest.Hex
	}

	if len(seen) != len(tasks) {
		t.Errorf("Expected %d results, got %d", len(tasks), len(seen))
	}

	// 不同内容应产生不同哈希
	unique := make(map[string]bool)
	for _, hex := range seen {
		unique[hex] = true
	}
	if len(unique) != len(tasks) {
		t.Errorf("Expected %d unique hashes, got %d", len(tasks), len(unique))
	}
}

func TestPool_UnreadableTask(t *testing.T) {
	fs := afero.NewMemMapFs()

	pool := NewPool(fs, 2)
	if err := pool.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	go func() {
		pool.AddTask(Task{Path: "/missing.txt", Size: 0})
		pool.Wait()
	}()

	count := 0
	for result := range pool.Results() {
		count++
		if result.Digest.Readable {
			t.Error("Expected unreadable digest for missing file")
		}
	}

	if count != 1 {
		t.Errorf("Expected 1 result, got %d", count)
	}
}
