package cli

import (
	"context"

	"github.com/alexanderramin/activitylog/internal/cli/formatter"
	"github.com/alexanderramin/activitylog/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type logsLoadedMsg struct {
	logs []domain.SessionLog
	err  error
}

type loadFunc func(ctx context.Context) ([]domain.SessionLog, error)

// logsView shows a spinner while the session list loads, then quits.
// Once the user leaves, the view is inactive and a late load result is
// dropped instead of being applied.
type logsView struct {
	ctx     context.Context
	cancel  context.CancelFunc
	load    loadFunc
	spinner spinner.Model

	active  bool
	loading bool
	logs    []domain.SessionLog
	err     error
}

func newLogsView(parent context.Context, load loadFunc) *logsView {
	ctx, cancel := context.WithCancel(parent)
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = formatter.StylePurple
	return &logsView{
		ctx:     ctx,
		cancel:  cancel,
		load:    load,
		spinner: s,
		active:  true,
		loading: true,
	}
}

func (v *logsView) Init() tea.Cmd {
	return tea.Batch(v.spinner.Tick, v.loadCmd())
}

func (v *logsView) loadCmd() tea.Cmd {
	ctx, load := v.ctx, v.load
	return func() tea.Msg {
		logs, err := load(ctx)
		return logsLoadedMsg{logs: logs, err: err}
	}
}

func (v *logsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case logsLoadedMsg:
		if !v.active {
			return v, nil
		}
		v.loading = false
		v.active = false
		v.logs, v.err = msg.logs, msg.err
		v.cancel()
		return v, tea.Quit

	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			v.teardown()
			return v, tea.Quit
		}
	}
	return v, nil
}

// teardown marks the view inactive and cancels a pending load.
func (v *logsView) teardown() {
	v.active = false
	v.loading = false
	if v.err == nil && v.logs == nil {
		v.err = context.Canceled
	}
	v.cancel()
}

func (v *logsView) View() string {
	if !v.loading {
		return ""
	}
	return v.spinner.View() + " " + formatter.Dim("Loading sessions…") + "\n"
}

// result returns the loaded logs, or the load error. A view closed before
// the load finished reports context.Canceled.
func (v *logsView) result() ([]domain.SessionLog, error) {
	return v.logs, v.err
}
