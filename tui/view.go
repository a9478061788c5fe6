package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Sarthak1642/file-organization/organizer"
)

func (m *model) View() string {
	switch m.state {
	case StateConfig:
		return m.configView()
	case StateProcessing:
		return m.processingView()
	case StateComplete:
		return m.completeView()
	default:
		return "未知状态"
	}
}

func (m *model) configView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("📦 文件整理工具") + "\n\n")

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n\n")

	b.WriteString(labelStyle.Render("1. 输入要整理的目录：") + "\n")
	if m.focus == FocusFolder {
		b.WriteString(focusedStyle.Render(m.folderInput.View()) + "\n\n")
	} else {
		b.WriteString(normalStyle.Render(m.folderInput.View()) + "\n\n")
	}

	b.WriteString(labelStyle.Render("2. 选择整理模式：") + "\n")
	if m.focus == FocusMode {
		b.WriteString(focusedStyle.Render(m.modeList.View()) + "\n\n")
	} else {
		b.WriteString(normalStyle.Render(m.modeList.View()) + "\n\n")
	}

	dedupLabel := "[ ] 检测并移出重复文件"
	if m.checkDup {
		dedupLabel = "[x] 检测并移出重复文件"
	}
	b.WriteString(labelStyle.Render("3. 重复文件检测：") + "\n")
	if m.focus == FocusDedup {
		b.WriteString(focusedStyle.Render(dedupLabel) + "\n\n")
	} else {
		b.WriteString(normalStyle.Render(dedupLabel) + "\n\n")
	}

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("操作提示：") + "\n")
	b.WriteString("  • Tab 键切换焦点\n")
	b.WriteString("  • Space 切换重复检测开关\n")
	b.WriteString("  • 在第 3 项上按 Enter 开始整理\n")
	b.WriteString("  • Ctrl+C 退出程序\n")

	return lipgloss.NewStyle().
		Padding(1).
		Render(b.String())
}

func (m *model) processingView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🔄 正在整理文件...") + "\n\n")

	b.WriteString(m.spinner.View() + " " + m.folder + "\n\n")

	b.WriteString(labelStyle.Render("整理进度：") + "\n")
	b.WriteString(m.progressBar.ViewAs(float64(m.percent)/100) + "\n\n")

	b.WriteString(labelStyle.Render("当前状态：") + "\n")
	b.WriteString(filePathStyle.Render(m.message) + "\n\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m *model) completeView() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(titleStyle.Render("❌ 整理失败") + "\n\n")
		b.WriteString(fmt.Sprintf("错误: %v\n\n", m.err))
	} else {
		b.WriteString(successTitleStyle.Render("✅ 整理完成！") + "\n\n")
		b.WriteString(statsBoxStyle.Render(m.renderReport()) + "\n\n")
	}

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("按 Enter 继续整理其他目录，Ctrl+C 退出") + "\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m *model) renderReport() string {
	if m.report == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("📊 最终统计：\n\n")
	b.WriteString(fmt.Sprintf("  • 目录：        %s\n", m.report.Root))
	b.WriteString(fmt.Sprintf("  • 整理模式：    %s\n", m.report.Mode))
	b.WriteString(fmt.Sprintf("  • 总文件数：    %d 个\n", m.report.TotalFiles))
	b.WriteString(fmt.Sprintf("  • 总大小：      %s\n", organizer.FormatBytes(m.report.TotalSizeBytes)))
	b.WriteString(fmt.Sprintf("  • 移出重复：    %d 个\n", m.report.DuplicatesRemoved))
	b.WriteString(fmt.Sprintf("  • 节省空间：    %s\n", organizer.FormatBytes(m.report.SpaceSavedBytes)))
	b.WriteString(fmt.Sprintf("  • 总耗时：      %s\n", m.report.TimeTaken.String()))

	return b.String()
}
