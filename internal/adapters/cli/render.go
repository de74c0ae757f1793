package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/example/gridboard/internal/models"
)

// columnWidth fits a uuid item id plus indent and padding.
const columnWidth = 42

var (
	gridTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5f9fb0")).MarginBottom(1)
	columnStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6c757d")).
			Padding(0, 1).
			Width(columnWidth)
	listTitleStyle = lipgloss.NewStyle().Bold(true)
	itemIDStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c757d"))
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c757d")).Italic(true)
)

// renderGrid lays the lists of a grid out side by side.
func renderGrid(grid *models.Grid) string {
	header := gridTitleStyle.Render(fmt.Sprintf("%s  (%s)", grid.Title, grid.ID))
	if len(grid.Lists) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, emptyStyle.Render("no lists yet"))
	}

	columns := make([]string, len(grid.Lists))
	for i, list := range grid.Lists {
		columns[i] = renderList(list)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinHorizontal(lipgloss.Top, columns...))
}

func renderList(list models.List) string {
	var b strings.Builder
	b.WriteString(listTitleStyle.Render(list.Title))
	b.WriteString("\n")
	b.WriteString(itemIDStyle.Render(list.ID))
	b.WriteString("\n")
	if len(list.Items) == 0 {
		b.WriteString(emptyStyle.Render("empty"))
	}
	for i, item := range list.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "• %s\n  %s", item.Title, itemIDStyle.Render(item.ID))
	}
	return columnStyle.Render(b.String())
}
