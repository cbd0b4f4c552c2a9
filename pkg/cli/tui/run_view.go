package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"link-refresh-go/pkg/cli/logger"
	"link-refresh-go/pkg/models"
	"link-refresh-go/pkg/refresher"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// RunFunc performs one refresh pass, reporting progress as it goes.
type RunFunc func(ctx context.Context, progress refresher.ProgressCallback) models.RunResult

// runModel runs a refresh pass in the background and streams its log.
type runModel struct {
	run       RunFunc
	linksFile string

	spinner  spinner.Model
	viewport viewport.Model
	ready    bool

	lines    []string
	current  string
	total    int
	success  int
	failed   int
	finished bool
	result   *models.RunResult

	progressChan chan progressMsg
	ctx          context.Context
	cancel       context.CancelFunc
}

type progressMsg struct {
	stage   refresher.Stage
	outcome *models.Outcome
	line    string
}

type runDoneMsg struct {
	result models.RunResult
}

// NewRunModel constructs the run view. The pass starts on Init.
func NewRunModel(run RunFunc, linksFile string) tea.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = infoStyle

	ctx, cancel := context.WithCancel(context.Background())
	return &runModel{
		run:          run,
		linksFile:    linksFile,
		spinner:      s,
		progressChan: make(chan progressMsg, 16),
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (m *runModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runCommand(), m.waitForProgress())
}

// runCommand performs the pass and reports progress back to the TUI.
func (m *runModel) runCommand() tea.Cmd {
	return func() tea.Msg {
		cb := func(stage refresher.Stage, outcome *models.Outcome, line string) {
			select {
			case m.progressChan <- progressMsg{stage: stage, outcome: outcome, line: line}:
			case <-m.ctx.Done():
			}
		}

		result := m.run(m.ctx, cb)
		close(m.progressChan)
		return runDoneMsg{result: result}
	}
}

// waitForProgress blocks until the next progress event. It yields nil once
// the channel is closed.
func (m *runModel) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-m.progressChan
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - 6
		if height < 3 {
			height = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.refreshViewport()
		return m, nil

	case progressMsg:
		m.applyProgress(msg)
		return m, m.waitForProgress()

	case runDoneMsg:
		m.finished = true
		m.current = ""
		m.result = &msg.result
		logger.Log("run %s finished: success=%d failed=%d duration=%s",
			msg.result.ID, msg.result.Success, msg.result.Failed, msg.result.Duration)
		if m.ctx.Err() != nil {
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if handleQuitKeys(msg.String()) {
			m.cancel()
			if m.finished {
				return m, tea.Quit
			}
			logger.Log("run cancelled by user")
			// Quit once the runner has unwound.
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *runModel) applyProgress(msg progressMsg) {
	switch msg.stage {
	case refresher.StageStarted:
		if _, err := fmt.Sscanf(msg.line, "Starting to refresh %d videos", &m.total); err != nil {
			logger.LogError(err, "could not read link count from header")
		}
	case refresher.StageFetching:
		if msg.outcome != nil {
			m.current = msg.outcome.Link
		}
	case refresher.StageRecorded:
		if msg.outcome != nil {
			if msg.outcome.OK() {
				m.success++
			} else {
				m.failed++
				logger.Log("refresh failed for %s: status=%d err=%v", msg.outcome.Link, msg.outcome.StatusCode, msg.outcome.Err)
			}
		}
	}

	if msg.line != "" {
		m.lines = append(m.lines, styleLog(msg.line)...)
		m.refreshViewport()
	}
}

func (m *runModel) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

func (m *runModel) View() string {
	var b strings.Builder

	b.WriteString(renderTitle("Link Refresher"))
	b.WriteString(mutedStyle.Render(m.linksFile) + "\n")
	b.WriteString(renderDivider(60) + "\n")

	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(strings.Join(m.lines, "\n"))
	}
	b.WriteString("\n")

	switch {
	case m.finished:
		b.WriteString(renderCounts(m.result.Success, m.result.Failed, m.result.Total()))
		b.WriteString("  " + mutedStyle.Render(m.result.Duration.Round(time.Second).String()) + "\n")
		b.WriteString(helpStyle.Render("↑/↓ to scroll, q to quit"))
	case m.ctx.Err() != nil:
		b.WriteString(warningStyle.Render("Cancelling...") + "\n")
	default:
		status := "Loading links..."
		if m.current != "" {
			status = "Refreshing " + linkURLStyle.Render(truncateURL(m.current, 60))
		}
		b.WriteString(m.spinner.View() + " " + status + "  " + renderCounts(m.success, m.failed, m.total) + "\n")
		b.WriteString(helpStyle.Render("q / Esc to cancel"))
	}

	return b.String()
}
