package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

type progressModel struct {
	progress   progress.Model
	label      string
	total      int64
	downloaded int64
	startTime  time.Time
	message    string
	done       bool
}

type progressMsg int64

type progressDoneMsg struct {
	message string
}

func initialProgressModel(label string, total int64) progressModel {
	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)
	return progressModel{
		progress:  p,
		label:     label,
		total:     total,
		startTime: time.Now(),
	}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case progressMsg:
		m.downloaded = int64(msg)
		return m, nil
	case progressDoneMsg:
		m.done = true
		m.message = msg.message
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		if m.message == "" {
			// Clear the line and stay on it (no newline)
			return "\r\033[K"
		}
		return m.message + "\n"
	}

	percent := 0.0
	if m.total > 0 {
		percent = float64(m.downloaded) / float64(m.total)
	}

	speed := 0.0
	if elapsed := time.Since(m.startTime).Seconds(); elapsed > 0 {
		speed = float64(m.downloaded) / elapsed
	}

	line := fmt.Sprintf("%s  %3.0f%% │ %s / %s │ %s/s",
		m.progress.ViewAs(percent),
		percent*100,
		FormatBytes(m.downloaded),
		FormatBytes(m.total),
		FormatBytes(int64(speed)),
	)
	if m.label != "" {
		line = Muted(m.label) + "\n  " + line
	}
	return "  " + line + "\n"
}

// FormatBytes renders a byte count in binary units.
func FormatBytes(b int64) string {
	if b < 0 {
		b = 0
	}
	return humanize.IBytes(uint64(b))
}

// ProgressBar displays download progress on the terminal. Updates are sent
// into the running bubbletea program rather than through shared state.
type ProgressBar struct {
	program *tea.Program
}

func NewProgressBar() *ProgressBar {
	return &ProgressBar{}
}

func (p *ProgressBar) Start(label string, total int64) {
	m := initialProgressModel(label, total)
	p.program = tea.NewProgram(m)
	go func() {
		p.program.Run()
	}()
}

func (p *ProgressBar) Update(downloaded int64) {
	if p.program != nil {
		p.program.Send(progressMsg(downloaded))
	}
}

// Finish stops the bar, replacing it with a success message.
func (p *ProgressBar) Finish(message string) {
	p.stop(Success(message))
}

// Stop stops the bar without a completion message.
func (p *ProgressBar) Stop() {
	p.stop("")
}

func (p *ProgressBar) stop(message string) {
	if p.program == nil {
		return
	}
	p.program.Send(progressDoneMsg{message: message})
	p.program.Wait()
	p.program = nil
}
