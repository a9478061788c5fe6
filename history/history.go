package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Sarthak1642/file-organization/organizer"
)

// Store 运行历史数据库
// 只用于归档已完成的运行报告，重复检测从不读取它
type Store struct {
	conn *sql.DB
}

// Run 一条历史运行记录
type Run struct {
	ID                string
	Root              string
	Mode              string
	TotalFiles        int
	TotalSizeBytes    int64
	DuplicatesRemoved int
	SpaceSavedBytes   int64
	TimeTaken         time.Duration
	CreatedAt         time.Time
}

// Open 打开或创建历史数据库
func Open(dbPath string) (*Store, error) {
	expanded, err := expandPath(dbPath)
	if err != nil {
		return nil, fmt.Errorf("扩展数据库路径失败: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(expanded), 0755); err != nil {
		return nil, fmt.Errorf("创建数据库目录失败: %w", err)
	}

	conn, err := sql.Open("sqlite", expanded)
	if err != nil {
		return nil, fmt.Errorf("打开数据库失败: %w", err)
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		root TEXT NOT NULL,
		mode TEXT NOT NULL,
		total_files INTEGER NOT NULL,
		total_size_bytes INTEGER NOT NULL,
		duplicates_removed INTEGER NOT NULL,
		space_saved_bytes INTEGER NOT NULL,
		time_taken_ms INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`

	if _, err := conn.Exec(createTableSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("创建表失败: %w", err)
	}

	return &Store{conn: conn}, nil
}

func expandPath(path string) (string, error) {
	if len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == '\\') {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

// Close 关闭数据库连接
func (s *Store) Close() error {
	return s.conn.Close()
}

// Save 归档一条运行报告
func (s *Store) Save(report *organizer.Report) error {
	_, err := s.conn.Exec(
		`INSERT INTO runs (id, root, mode, total_files, total_size_bytes,
			duplicates_removed, space_saved_bytes, time_taken_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		report.RunID,
		report.Root,
		string(report.Mode),
		report.TotalFiles,
		report.TotalSizeBytes,
		report.DuplicatesRemoved,
		report.SpaceSavedBytes,
		report.TimeTaken.Milliseconds(),
		report.StartedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("插入运行记录失败: %w", err)
	}
	return nil
}

// List 返回最近的运行记录，按时间倒序
func (s *Store) List(limit int) ([]Run, error) {
	rows, err := s.conn.Query(
		`SELECT id, root, mode, total_files, total_size_bytes,
			duplicates_removed, space_saved_bytes, time_taken_ms, created_at
		FROM runs ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("查询运行记录失败: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var takenMs, createdAt int64
		if err := rows.Scan(
			&run.ID, &run.Root, &run.Mode,
			&run.TotalFiles, &run.TotalSizeBytes,
			&run.DuplicatesRemoved, &run.SpaceSavedBytes,
			&takenMs, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("读取行数据失败: %w", err)
		}
		run.TimeTaken = time.Duration(takenMs) * time.Millisecond
		run.CreatedAt = time.Unix(createdAt, 0)
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("遍历结果集失败: %w", err)
	}

	return runs, nil
}
