package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Sarthak1642/file-organization/organizer"
)

type State int

const (
	StateConfig State = iota
	StateProcessing
	StateComplete
)

type Focus int

const (
	FocusFolder Focus = iota
	FocusMode
	FocusDedup
)

type model struct {
	cfg   *Config
	state State
	focus Focus

	folder   string
	mode     organizer.Mode
	checkDup bool

	folderInput textinput.Model
	modeList    list.Model
	progressBar progress.Model
	spinner     spinner.Model

	percent int
	message string

	report *organizer.Report
	err    error

	events chan progressEventMsg
	done   chan runDoneMsg
}

func initialModel(cfg *Config) model {
	folderInput := textinput.New()
	folderInput.Placeholder = "请输入要整理的目录（例如：~/Downloads）"
	folderInput.Prompt = "> "
	folderInput.PromptStyle = focusedPromptStyle
	folderInput.TextStyle = textStyle
	folderInput.Focus()

	modeList := list.New([]list.Item{
		modeItem{mode: organizer.ModeCategoryOnly, desc: "只按类别分目录"},
		modeItem{mode: organizer.ModeCategoryYear, desc: "类别下再按年份分目录"},
		modeItem{mode: organizer.ModeCategoryYearMonth, desc: "类别下再按年-月分目录"},
	}, list.NewDefaultDelegate(), 0, 8)

	modeList.Title = "选择整理模式"
	modeList.SetShowStatusBar(false)
	modeList.SetFilteringEnabled(false)
	modeList.Styles.Title = titleStyle

	progressBar := progress.New(progress.WithDefaultGradient())
	progressBar.PercentageStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Width(4)

	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		FPS:    time.Second / 10,
	}
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return model{
		cfg:         cfg,
		state:       StateConfig,
		focus:       FocusFolder,
		mode:        organizer.ParseMode(cfg.DefaultMode),
		checkDup:    cfg.DefaultDedup,
		folderInput: folderInput,
		modeList:    modeList,
		progressBar: progressBar,
		spinner:     s,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

type modeItem struct {
	mode organizer.Mode
	desc string
}

func (m modeItem) Title() string       { return string(m.mode) }
func (m modeItem) Description() string { return m.desc }
func (m modeItem) FilterValue() string { return string(m.mode) }
