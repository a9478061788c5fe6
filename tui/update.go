package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sarthak1642/file-organization/history"
	"github.com/Sarthak1642/file-organization/logger"
	"github.com/Sarthak1642/file-organization/organizer"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.state {
		case StateConfig:
			return m.updateConfigPhase(msg)
		case StateComplete:
			if msg.String() == "enter" {
				// 重新开始：回到配置界面
				m.state = StateConfig
				m.focus = FocusFolder
				m.folderInput.Focus()
				m.percent = 0
				m.message = ""
				m.report = nil
				m.err = nil
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.handleResize(msg)

	case progressEventMsg:
		m.percent = msg.percent
		m.message = msg.message
		return m, m.waitForEvent()

	case runDoneMsg:
		m.state = StateComplete
		m.report = msg.report
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if m.state == StateProcessing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	if m.state == StateConfig {
		var cmd tea.Cmd
		m.folderInput, cmd = m.folderInput.Update(msg)
		cmds = append(cmds, cmd)

		m.modeList, cmd = m.modeList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) updateConfigPhase(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.nextFocus()
		m.updateFocusState()
		return m, nil

	case " ":
		if m.focus == FocusDedup {
			m.checkDup = !m.checkDup
			return m, nil
		}

	case "enter":
		return m.handleEnterKey()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.folderInput, cmd = m.folderInput.Update(msg)
	cmds = append(cmds, cmd)
	m.modeList, cmd = m.modeList.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *model) nextFocus() {
	switch m.focus {
	case FocusFolder:
		m.focus = FocusMode
	case FocusMode:
		m.focus = FocusDedup
	case FocusDedup:
		m.focus = FocusFolder
	}
}

func (m *model) updateFocusState() {
	if m.focus == FocusFolder {
		m.folderInput.Focus()
	} else {
		m.folderInput.Blur()
	}

	m.modeList.KeyMap.CursorUp.SetEnabled(m.focus == FocusMode)
	m.modeList.KeyMap.CursorDown.SetEnabled(m.focus == FocusMode)
}

func (m *model) handleEnterKey() (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusFolder:
		m.folder = m.folderInput.Value()
		return m, nil

	case FocusMode:
		if item, ok := m.modeList.SelectedItem().(modeItem); ok {
			m.mode = item.mode
		}
		return m, nil

	case FocusDedup:
		// 最后一个焦点上按回车开始整理
		m.folder = m.folderInput.Value()
		if m.folder == "" {
			return m, nil
		}
		m.state = StateProcessing
		return m, tea.Batch(
			m.startRun(),
			m.waitForEvent(),
			m.spinner.Tick,
		)
	}

	return m, nil
}

func (m *model) handleResize(msg tea.WindowSizeMsg) {
	m.folderInput.Width = msg.Width - 10
	m.modeList.SetWidth(msg.Width - 4)
	m.progressBar.Width = msg.Width - 10
}

// startRun 在后台执行整理，进度事件通过通道送回 UI 循环
func (m *model) startRun() tea.Cmd {
	m.events = make(chan progressEventMsg, 100)
	m.done = make(chan runDoneMsg, 1)

	events := m.events
	folder := m.folder
	mode := m.mode
	checkDup := m.checkDup
	historyPath := m.cfg.HistoryPath

	return func() tea.Msg {
		org := organizer.New(folder, mode, checkDup,
			organizer.WithProgress(organizer.SinkFunc(func(percent int, message string) {
				// 进度回调不能阻塞整理流程，UI 跟不上时丢弃事件
				select {
				case events <- progressEventMsg{percent: percent, message: message}:
				default:
				}
			})),
		)

		_, report, err := org.Run()

		if err == nil && historyPath != "" {
			if store, herr := history.Open(historyPath); herr == nil {
				if serr := store.Save(report); serr != nil {
					logger.Get().Warn().Err(serr).Msg("归档运行记录失败")
				}
				store.Close()
			}
		}

		close(events)
		return runDoneMsg{report: report, err: err}
	}
}

// waitForEvent 等待下一条进度事件；通道关闭后不再产生消息
func (m *model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return ev
	}
}
