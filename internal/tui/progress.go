package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressUpdate is one step of a long-running load.
type ProgressUpdate struct {
	Pct   int
	Label string
}

// progressMsg carries an update; a closed channel sends done.
type progressMsg struct {
	update ProgressUpdate
	done   bool
}

// tickMsg refreshes the UI periodically so the bar animates between
// updates.
type tickMsg time.Time

type progressModel struct {
	progress  progress.Model
	title     string
	current   ProgressUpdate
	done      bool
	cancelled bool
	ch        <-chan ProgressUpdate
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(), waitForUpdate(m.ch))
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitForUpdate(ch <-chan ProgressUpdate) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return progressMsg{done: true}
		}
		return progressMsg{update: u}
	}
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			m.cancelled = true
			return m, tea.Quit
		}

	case tickMsg:
		if m.done {
			return m, tea.Quit
		}
		return m, tickCmd()

	case progressMsg:
		if msg.done {
			m.done = true
			return m, tea.Quit
		}
		m.current = msg.update
		return m, waitForUpdate(m.ch)

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		return m, nil
	}

	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf(
		"%s\n%s\n%s\n",
		m.title,
		m.progress.ViewAs(float64(m.current.Pct)/100),
		StyleDim.Render(m.current.Label),
	)
}

// ShowProgress displays a progress bar fed by updates on ch; the producer
// closes ch when done. Returns an error if the user cancelled.
func ShowProgress(title string, ch <-chan ProgressUpdate) error {
	m := progressModel{
		progress: progress.New(progress.WithDefaultGradient()),
		title:    title,
		ch:       ch,
	}
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := finalModel.(progressModel); ok && fm.cancelled {
		return fmt.Errorf("cancelled by user")
	}
	return nil
}
