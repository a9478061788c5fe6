package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sarthak1642/file-organization/logger"
)

type Config struct {
	HistoryPath  string
	DefaultMode  string
	DefaultDedup bool
}

type teaModel struct {
	m *model
}

func (tm teaModel) Init() tea.Cmd {
	return nil
}

func (tm teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return tm.m.Update(msg)
}

func (tm teaModel) View() string {
	return tm.m.View()
}

func Run(config *Config) error {
	logger.Get().Info().Msg("启动 TUI 界面")

	m := initialModel(config)
	p := tea.NewProgram(teaModel{m: &m}, tea.WithAltScreen())

	_, err := p.Run()
	if err != nil {
		logger.Get().Error().Err(err).Msg("TUI 运行错误")
	} else {
		logger.Get().Info().Msg("TUI 正常退出")
	}

	return err
}
