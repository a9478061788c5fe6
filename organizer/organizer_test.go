package organizer

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
)

type progressEvent struct {
	percent int
	message string
}

func collectProgress(events *[]progressEvent) ProgressSink {
	return SinkFunc(func(percent int, message string) {
		*events = append(*events, progressEvent{percent, message})
	})
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("创建测试文件失败: %v", err)
	}
}

func mustExist(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	exists, err := afero.Exists(fs, path)
	if err != nil {
		t.Fatalf("检查文件失败: %v", err)
	}
	if !exists {
		t.Errorf("Expected %s to exist", path)
	}
}

func mustNotExist(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	exists, err := afero.Exists(fs, path)
	if err != nil {
		t.Fatalf("检查文件失败: %v", err)
	}
	if exists {
		t.Errorf("Expected %s to be gone", path)
	}
}

func TestRun_CategoryOnly(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/folder/report.pdf", "pdf body")
	writeFile(t, fs, "/folder/photo.jpg", "jpg body")
	writeFile(t, fs, "/folder/movie.mp4", "mp4 body")
	writeFile(t, fs, "/folder/song.mp3", "mp3 body")
	writeFile(t, fs, "/folder/bundle.zip", "zip body")
	writeFile(t, fs, "/folder/notes.xyz", "mystery")

	org := New("/folder", ModeCategoryOnly, false, WithFs(fs))
	logs, report, err := org.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	mustExist(t, fs, "/folder/Documents/report.pdf")
	mustExist(t, fs, "/folder/Images/photo.jpg")
	mustExist(t, fs, "/folder/Videos/movie.mp4")
	mustExist(t, fs, "/folder/Music/song.mp3")
	mustExist(t, fs, "/folder/Archives/bundle.zip")
	mustExist(t, fs, "/folder/Others/notes.xyz")
	mustNotExist(t, fs, "/folder/report.pdf")

	if report.TotalFiles != 6 {
		t.Errorf("TotalFiles = %d, want 6", report.TotalFiles)
	}
	wantCategories := map[string]int{
		"Documents": 1, "Images": 1, "Videos": 1, "Music": 1, "Archives": 1, "Others": 1,
	}
	for name, want := range wantCategories {
		if got := report.Categories[name]; got != want {
			t.Errorf("Categories[%q] = %d, want %d", name, got, want)
		}
	}
	if report.DuplicatesRemoved != 0 {
		t.Errorf("DuplicatesRemoved = %d, want 0", report.DuplicatesRemoved)
	}

	if len(logs) != 6 {
		t.Fatalf("Expected 6 log lines, got %d", len(logs))
	}
	for _, line := range logs {
		if !strings.HasPrefix(line, "Moved: ") {
			t.Errorf("Unexpected log line %q", line)
		}
	}

	// 返回的日志和报告中的日志是同一个序列
	if len(logs) != len(report.Logs) {
		t.Fatalf("logs and report.Logs diverge in length")
	}
	for i := range logs {
		if logs[i] != report.Logs[i] {
			t.Errorf("logs[%d] = %q, report.Logs[%d] = %q", i, logs[i], i, report.Logs[i])
		}
	}
}

func TestRun_YearMonthMode(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/folder/photo.jpg", "jpg body")

	mtime := time.Date(2024, 7, 15, 12, 0, 0, 0, time.Local)
	if err := fs.Chtimes("/folder/photo.jpg", mtime, mtime); err != nil {
		t.Fatalf("设置修改时间失败: %v", err)
	}

	org := New("/folder", ModeCategoryYearMonth, false, WithFs(fs))
	if _, _, err := org.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	mustExist(t, fs, "/folder/Images/2024-07/photo.jpg")
}

func TestRun_EmptyFolder(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/empty", 0755); err != nil {
		t.Fatalf("创建目录失败: %v", err)
	}

	var events []progressEvent
	org := New("/empty", ModeCategoryOnly, true, WithFs(fs), WithProgress(collectProgress(&events)))
	logs, report, err := org.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(logs) != 0 {
		t.Errorf("Expected empty log, got %d lines", len(logs))
	}
	if report.TotalFiles != 0 || report.TotalSizeBytes != 0 ||
		report.DuplicatesRemoved != 0 || report.SpaceSavedBytes != 0 {
		t.Errorf("Expected zeroed report, got %+v", report)
	}
	if len(report.Categories) != 0 {
		t.Errorf("Expected no category counts, got %v", report.Categories)
	}
	if report.TimeTaken < 0 {
		t.Error("Expected elapsed time to be recorded")
	}

	if len(events) != 1 {
		t.Fatalf("Expected exactly 1 progress event, got %d", len(events))
	}
	if events[0].percent != 100 || events[0].message != "No files to organize" {
		t.Errorf("Unexpected event %+v", events[0])
	}
}

func TestRun_DuplicateRemoval(t *testing.T) {
	fs := afero.NewMemMapFs()
	// 内容相同但文件名不同；按文件名枚举，first.jpg 先被看到
	writeFile(t, fs, "/folder/first.jpg", "identical bytes")
	writeFile(t, fs, "/folder/second.jpg", "identical bytes")

	org := New("/folder", ModeCategoryOnly, true, WithFs(fs))
	logs, report, err := org.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	mustExist(t, fs, "/folder/Images/first.jpg")
	mustExist(t, fs, "/folder/Duplicates (Removed)/second.jpg")
	mustNotExist(t, fs, "/folder/Images/second.jpg")

	if report.DuplicatesRemoved != 1 {
		t.Errorf("DuplicatesRemoved = %d, want 1", report.DuplicatesRemoved)
	}
	if want := int64(len("identical bytes")); report.SpaceSavedBytes != want {
		t.Errorf("SpaceSavedBytes = %d, want %d", report.SpaceSavedBytes, want)
	}
	// 重复文件不参与分类计数
	if got := report.Categories["Images"]; got != 1 {
		t.Errorf("Categories[Images] = %d, want 1", got)
	}

	foundDupLine := false
	for _, line := range logs {
		if line == "DUPLICATE REMOVED: second.jpg -> Duplicates" {
			foundDupLine = true
		}
	}
	if !foundDupLine {
		t.Errorf("Missing DUPLICATE REMOVED log line, logs = %v", logs)
	}
}

func TestRun_DuplicateCheckDisabled(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/folder/first.jpg", "identical bytes")
	writeFile(t, fs, "/folder/second.jpg", "identical bytes")

	org := New("/folder", ModeCategoryOnly, false, WithFs(fs))
	_, report, err := org.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	mustExist(t, fs, "/folder/Images/first.jpg")
	mustExist(t, fs, "/folder/Images/second.jpg")
	if report.DuplicatesRemoved != 0 {
		t.Errorf("DuplicatesRemoved = %d, want 0", report.DuplicatesRemoved)
	}
}

// openFailFs 对特定文件名的 Open 调用返回错误，其余操作透传
type openFailFs struct {
	afero.Fs
	failName string
}

func (f *openFailFs) Open(name string) (afero.File, error) {
	if filepath.Base(name) == f.failName {
		return nil, fmt.Errorf("permission denied")
	}
	return f.Fs.Open(name)
}

func TestRun_UnreadableFileStillMoved(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeFile(t, mem, "/folder/locked.pdf", "secret")
	writeFile(t, mem, "/folder/open.pdf", "public")

	fs := &openFailFs{Fs: mem, failName: "locked.pdf"}

	org := New("/folder", ModeCategoryOnly, true, WithFs(fs))
	logs, report, err := org.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// 哈希不可读的文件仍然被分类移动，只是跳过重复检测
	mustExist(t, mem, "/folder/Documents/locked.pdf")
	mustExist(t, mem, "/folder/Documents/open.pdf")

	if report.DuplicatesRemoved != 0 {
		t.Errorf("DuplicatesRemoved = %d, want 0", report.DuplicatesRemoved)
	}
	if got := report.Categories["Documents"]; got != 2 {
		t.Errorf("Categories[Documents] = %d, want 2", got)
	}

	foundWarning := false
	for _, line := range logs {
		if line == "Warning: Could not read hash for locked.pdf. Skipping duplicate check." {
			foundWarning = true
		}
	}
	if !foundWarning {
		t.Errorf("Missing hash warning log line, logs = %v", logs)
	}
}

func TestRun_SecondRunIsIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/folder/a.txt", "aaa")
	writeFile(t, fs, "/folder/b.jpg", "bbb")

	first := New("/folder", ModeCategoryOnly, true, WithFs(fs))
	if _, _, err := first.Run(); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}

	var events []progressEvent
	second := New("/folder", ModeCategoryOnly, true, WithFs(fs), WithProgress(collectProgress(&events)))
	logs, report, err := second.Run()
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}

	// 第一次运行已把所有文件移入子目录，第二次运行找不到任何待整理文件
	if report.TotalFiles != 0 {
		t.Errorf("second run TotalFiles = %d, want 0", report.TotalFiles)
	}
	if len(logs) != 0 {
		t.Errorf("second run produced %d log lines, want 0", len(logs))
	}
	if len(events) != 1 || events[0].message != "No files to organize" {
		t.Errorf("Unexpected second run events %+v", events)
	}
}

func TestRun_ProgressMonotone(t *testing.T) {
	fs := afero.NewMemMapFs()
	for i := 0; i < 7; i++ {
		writeFile(t, fs, fmt.Sprintf("/folder/file%d.txt", i), fmt.Sprintf("content-%d", i))
	}

	var events []progressEvent
	org := New("/folder", ModeCategoryOnly, true, WithFs(fs), WithProgress(collectProgress(&events)))
	if _, _, err := org.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(events) == 0 {
		t.Fatal("Expected progress events")
	}

	last := -1
	for _, ev := range events {
		if ev.percent < last {
			t.Errorf("Progress went backwards: %d after %d", ev.percent, last)
		}
		if ev.percent < 0 || ev.percent > 100 {
			t.Errorf("Progress out of range: %d", ev.percent)
		}
		last = ev.percent
	}

	final := events[len(events)-1]
	if final.percent != 100 {
		t.Errorf("Final event percent = %d, want 100", final.percent)
	}
	if !strings.Contains(final.message, "7 files organized") {
		t.Errorf("Final event message = %q", final.message)
	}
}

func TestRun_CollisionAutoRename(t *testing.T) {
	fs := afero.NewMemMapFs()
	// 目标目录中已有同名文件
	writeFile(t, fs, "/folder/Documents/notes.txt", "already there")
	writeFile(t, fs, "/folder/notes.txt", "incoming")

	org := New("/folder", ModeCategoryOnly, false, WithFs(fs))
	if _, _, err := org.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	mustExist(t, fs, "/folder/Documents/notes.txt")
	mustExist(t, fs, "/folder/Documents/notes_1.txt")

	moved, err := afero.ReadFile(fs, "/folder/Documents/notes_1.txt")
	if err != nil {
		t.Fatalf("读取文件失败: %v", err)
	}
	if string(moved) != "incoming" {
		t.Errorf("Renamed file content = %q, want %q", moved, "incoming")
	}
	original, err := afero.ReadFile(fs, "/folder/Documents/notes.txt")
	if err != nil {
		t.Fatalf("读取文件失败: %v", err)
	}
	if string(original) != "already there" {
		t.Error("Pre-existing destination file must not be overwritten")
	}
}

func TestRun_MissingRootPropagates(t *testing.T) {
	fs := afero.NewMemMapFs()

	org := New("/nope", ModeCategoryOnly, false, WithFs(fs))
	if _, _, err := org.Run(); err == nil {
		t.Error("Expected hard error for missing root folder")
	}
}
