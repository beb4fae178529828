package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

// History panel layout constants
const (
	historyRows  = 5  // Runs listed under the game-over box
	minPlayRows  = 12 // The panel is hidden if the game would get fewer rows
	historyTitle = "This session"
)

var (
	historyBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	historyTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	historyStatStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// historyPanel shows the best runs of the current process.
type historyPanel struct {
	table table.Model
	runs  []storage.Run
	best  int
	count int
}

func newHistoryPanel() historyPanel {
	return historyPanel{table: newHistoryTable()}
}

// newHistoryTable creates the run table with its columns and styles.
func newHistoryTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Score", Width: 8},
		{Title: "Speed", Width: 6},
		{Title: "Hit by", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(historyRows),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

// load refreshes the panel from the store.
func (h *historyPanel) load(store *storage.Store) error {
	if store == nil {
		return nil
	}

	runs, err := store.TopRuns(historyRows)
	if err != nil {
		return err
	}
	best, err := store.BestScore()
	if err != nil {
		return err
	}
	count, err := store.RunCount()
	if err != nil {
		return err
	}

	h.runs = runs
	h.best = best
	h.count = count
	h.table.SetRows(runsToRows(runs))
	return nil
}

// runsToRows converts runs to table rows.
func runsToRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, 0, len(runs))
	for i, r := range runs {
		hit := r.HitBy
		if hit == "" {
			hit = "-"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			fmt.Sprintf("%.2f", r.MaxSpeed),
			hit,
		})
	}
	return rows
}

// View renders the panel, or an empty string when there is nothing to show.
func (h historyPanel) View() string {
	if h.count == 0 {
		return ""
	}
	title := historyTitleStyle.Render(historyTitle)
	stats := historyStatStyle.Render(fmt.Sprintf("Best: %d  Runs: %d", h.best, h.count))
	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", stats),
		h.table.View(),
	)
	return historyBorder.Render(body)
}
