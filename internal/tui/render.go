package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/jasktodo/internal/service"
	"github.com/jask/jasktodo/internal/task"
)

const defaultWidth = 80

// chromeLines is the number of lines View spends outside the task list.
const chromeLines = 8

func (a *App) View() string {
	snap := a.ctrl.Snapshot()
	width := a.width
	if width <= 0 {
		width = defaultWidth
	}

	sections := []string{
		titleStyle.Render("📝 jasktodo"),
		a.renderStats(snap.Summary),
		a.renderControls(snap.Query),
	}
	switch a.mode {
	case modeAdd:
		sections = append(sections, a.renderForm(width))
	case modeSearch:
		sections = append(sections, a.search.View())
	}
	sections = append(sections, "", a.renderList(snap), "", a.renderStatusBar(width), a.renderFooter(width))
	return strings.Join(sections, "\n")
}

func (a *App) renderStats(sum task.Summary) string {
	return strings.Join([]string{
		statLabelStyle.Render("Total ") + statTotalStyle.Render(fmt.Sprint(sum.Total)),
		statLabelStyle.Render("Completed ") + statDoneStyle.Render(fmt.Sprint(sum.Completed)),
		statLabelStyle.Render("Pending ") + statOpenStyle.Render(fmt.Sprint(sum.Pending)),
	}, "   ")
}

func (a *App) renderControls(q task.Query) string {
	search := q.Search
	if search == "" {
		search = "-"
	}
	filter := q.Category
	if !q.ShowsAll() {
		filter = a.ctrl.Icon(filter) + " " + filter
	}
	return strings.Join([]string{
		controlLabelStyle.Render("Search: ") + controlValueStyle.Render(search),
		controlLabelStyle.Render("Filter: ") + controlValueStyle.Render(filter),
		controlLabelStyle.Render("Sort: ") + controlValueStyle.Render(sortLabel(q.Sort)),
	}, "   ")
}

func sortLabel(d task.SortDirection) string {
	if d == task.Descending {
		return "Z→A"
	}
	return "A→Z"
}

func (a *App) renderForm(width int) string {
	cats := a.ctrl.FormCategories()
	parts := make([]string, 0, len(cats)+1)
	if a.formCategory == noCategory {
		parts = append(parts, controlActiveStyle.Render("[select]"))
	} else {
		parts = append(parts, controlLabelStyle.Render("select"))
	}
	for i, c := range cats {
		label := a.ctrl.Icon(c) + " " + c
		if i == a.formCategory {
			parts = append(parts, controlActiveStyle.Render("["+label+"]"))
			continue
		}
		parts = append(parts, controlValueStyle.Render(label))
	}
	body := a.title.View() + "\n" + controlLabelStyle.Render("Category: ") + strings.Join(parts, " ")
	return formStyle.Width(max(20, width-2)).Render(body)
}

func (a *App) renderList(snap service.Snapshot) string {
	if len(snap.View) == 0 {
		return renderEmpty(snap)
	}
	start, end := listWindow(len(snap.View), a.cursor, a.listRows())
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, a.renderRow(snap.View[i], i == a.cursor))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderRow(t task.Task, selected bool) string {
	pointer, check := "  ", "[ ]"
	if selected {
		pointer = "› "
	}
	if t.Completed {
		check = "[x]"
	}
	text := rowStyle.Render(t.Text)
	switch {
	case t.Completed:
		text = rowDoneStyle.Render(t.Text)
	case selected:
		text = rowSelectedStyle.Render(t.Text)
	}
	return pointer + check + " " + text + "  " + categoryStyle.Render(a.ctrl.Icon(t.Category)+" "+t.Category)
}

func renderEmpty(snap service.Snapshot) string {
	hint := "Try adjusting your search or filter criteria."
	if snap.IsCollectionEmpty {
		hint = "Add your first task to get started!"
	}
	lines := []string{
		emptyTitleStyle.Render(task.DefaultIcon + " No tasks found"),
		emptyHintStyle.Render(hint),
	}
	if snap.Suggestion != "" {
		lines = append(lines, emptyHintStyle.Render(fmt.Sprintf("Did you mean %q?", snap.Suggestion)))
	}
	return strings.Join(lines, "\n")
}

// listRows is how many task rows fit; 0 means no limit.
func (a *App) listRows() int {
	if a.height <= 0 {
		return 0
	}
	rows := a.height - chromeLines
	if a.mode == modeAdd {
		rows -= 4
	} else if a.mode == modeSearch {
		rows--
	}
	return max(1, rows)
}

// listWindow returns the [start, end) slice of n rows to show so that cursor
// stays visible.
func listWindow(n, cursor, rows int) (int, int) {
	if rows <= 0 || n <= rows {
		return 0, n
	}
	start := cursor - rows/2
	start = max(0, min(start, n-rows))
	return start, start + rows
}

func (a *App) renderStatusBar(width int) string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "Ready"
	}
	return renderBar(statusBarStyle, width, msg, colorSurface0)
}

func (a *App) renderFooter(width int) string {
	bindings := a.keys.Help(string(a.mode))
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	return renderBar(footerStyle, width, strings.Join(parts, sep), bg)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}
