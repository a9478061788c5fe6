package tui

import "github.com/Sarthak1642/file-organization/organizer"

// progressEventMsg 整理过程中的一次进度事件
type progressEventMsg struct {
	percent int
	message string
}

// runDoneMsg 整理运行结束
type runDoneMsg struct {
	report *organizer.Report
	err    error
}
