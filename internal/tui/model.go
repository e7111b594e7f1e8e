package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"supercharge/internal/engine"
	"supercharge/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	state engine.State

	selected int

	lastLog    string
	generating bool
	err        error
}

type loadedMsg struct {
	state engine.State
}

type completedMsg struct {
	id  string
	res *engine.CompleteResult
	err error
}

type routineMsg struct {
	res *engine.GenerateRoutineResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{state: m.svc.State()}
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteTask(m.ctx, id)
		return completedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) generateCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.GenerateRoutine(m.ctx)
		return routineMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.state = msg.state
		if m.selected >= len(m.state.Routine) {
			m.selected = len(m.state.Routine) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res == nil {
			m.lastLog = "Already completed today."
			return m, nil
		}
		m.lastLog = summarizeNotices(msg.res.Notices)
		return m, m.loadCmd()
	case routineMsg:
		m.generating = false
		if msg.err != nil {
			m.lastLog = "Routine generation failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("New routine with %d tasks.", len(msg.res.Tasks))
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "g":
			if m.generating {
				return m, nil
			}
			m.generating = true
			m.lastLog = "Generating routine…"
			return m, m.generateCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.state.Routine)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if m.selected < 0 || m.selected >= len(m.state.Routine) {
				return m, nil
			}
			t := m.state.Routine[m.selected]
			if t.Completed {
				m.lastLog = "Already completed today."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing %q…", t.Task)
			return m, m.completeCmd(t.ID)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 26
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	name := "—"
	if m.state.User != nil {
		name = m.state.User.Name
	}
	p := m.state.Progress
	bar := ui.ProgressBar(p.XP, engine.XPForNextLevel(p.Level), 30)
	streak := engine.StreakLength(m.state.CompletedTasksLog, time.Now())
	return fmt.Sprintf("Supercharge | %s | Level %d | XP %d/%d %s | %s %d-day streak",
		name, p.Level, p.XP, engine.XPForNextLevel(p.Level), bar, ui.IconFlame, streak)
}

func (m boardModel) renderSidebar() string {
	lines := []string{"Categories"}
	for _, cat := range engine.Categories() {
		lines = append(lines, fmt.Sprintf("- %s: %d", cat, m.state.Progress.CategoryCounts[cat]))
	}
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Achievements: %d/%d", len(m.state.UnlockedAchievements), len(engine.Catalog())))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- g: new routine")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	var out []string
	out = append(out, "Today's Routine")
	if len(m.state.Routine) == 0 {
		out = append(out, "(no routine yet — press g to generate one)")
		return strings.Join(out, "\n")
	}
	for i, t := range m.state.Routine {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		out = append(out, fmt.Sprintf("%s%s %s — %s (%s, %s)", cursor, mark, t.Task, t.Description, t.Category, t.SuggestedTime))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func summarizeNotices(notices []engine.Notice) string {
	if len(notices) == 0 {
		return "Done."
	}
	parts := make([]string, 0, len(notices))
	for _, n := range notices {
		parts = append(parts, n.Title)
	}
	return strings.Join(parts, " ")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
