package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/jasktodo/internal/service"
	"github.com/jask/jasktodo/internal/task"
)

func newTestApp(t *testing.T, seed ...task.Task) (*App, *service.Controller) {
	t.Helper()
	ctrl := service.NewController(service.Options{IDs: task.NewCounter("t"), Seed: seed})
	return New(ctrl, nil), ctrl
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, a *App, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		next, c := a.Update(msg)
		require.Same(t, a, next)
		cmd = c
	}
	return cmd
}

func viewTexts(c *service.Controller) []string {
	snap := c.Snapshot()
	out := make([]string, 0, len(snap.View))
	for _, tk := range snap.View {
		out = append(out, tk.Text)
	}
	return out
}

func milkAndMom() []task.Task {
	return []task.Task{
		{Text: "Call mom", Category: "work"},
		{Text: "Buy milk", Category: "personal"},
	}
}

func TestAddFormRequiresTitleAndCategory(t *testing.T) {
	a, ctrl := newTestApp(t)

	send(t, a, runes("a"))
	require.Equal(t, modeAdd, a.mode)

	send(t, a, runes("Buy milk"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 0, ctrl.Snapshot().Summary.Total, "no category selected")
	require.Equal(t, "Buy milk", a.title.Value(), "rejected form is not cleared")
	require.Equal(t, modeAdd, a.mode)

	send(t, a, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "work", a.selectedFormCategory())
	send(t, a, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "personal", a.selectedFormCategory())

	send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	snap := ctrl.Snapshot()
	require.Equal(t, 1, snap.Summary.Total)
	require.Equal(t, "Buy milk", snap.View[0].Text)
	require.Equal(t, "personal", snap.View[0].Category)
	require.Empty(t, a.title.Value())
	require.Equal(t, noCategory, a.formCategory)
	require.Equal(t, modeAdd, a.mode, "form stays open for the next task")
	require.Contains(t, a.status, "added: Buy milk")

	send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, modeBrowse, a.mode)
}

func TestAddFormRejectsBlankTitle(t *testing.T) {
	a, ctrl := newTestApp(t)

	send(t, a, tea.KeyMsg{Type: tea.KeyCtrlN}, runes("   "), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, modeAdd, a.mode)
	require.Equal(t, 0, ctrl.Snapshot().Summary.Total)
	require.Equal(t, "work", a.selectedFormCategory())
}

func TestFormCategoryCyclesThroughUnselected(t *testing.T) {
	a, _ := newTestApp(t)
	send(t, a, runes("a"))

	send(t, a, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, "study", a.selectedFormCategory())
	send(t, a, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "", a.selectedFormCategory())
	send(t, a, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "", a.selectedFormCategory())
}

func TestSearchUpdatesViewAsYouType(t *testing.T) {
	a, ctrl := newTestApp(t, milkAndMom()...)

	send(t, a, runes("/"))
	require.Equal(t, modeSearch, a.mode)

	send(t, a, runes("M"), runes("I"), runes("L"), runes("K"))
	require.Equal(t, "MILK", ctrl.Query().Search)
	require.Equal(t, []string{"Buy milk"}, viewTexts(ctrl))

	send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, modeBrowse, a.mode)
	require.Equal(t, "MILK", ctrl.Query().Search, "enter keeps the term")

	send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	require.Empty(t, ctrl.Query().Search)
	require.Len(t, viewTexts(ctrl), 2)
}

func TestEscInSearchClearsTerm(t *testing.T) {
	a, ctrl := newTestApp(t, milkAndMom()...)

	send(t, a, runes("/"), runes("mom"))
	require.Equal(t, []string{"Call mom"}, viewTexts(ctrl))

	send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, modeBrowse, a.mode)
	require.Empty(t, ctrl.Query().Search)
	require.Empty(t, a.search.Value())
}

func TestCategoryFilterCycles(t *testing.T) {
	a, ctrl := newTestApp(t, milkAndMom()...)

	send(t, a, runes("c"))
	require.Equal(t, "work", ctrl.Query().Category)
	require.Equal(t, []string{"Call mom"}, viewTexts(ctrl))

	send(t, a, runes("c"))
	require.Equal(t, "personal", ctrl.Query().Category)

	send(t, a, runes("C"), runes("C"))
	require.Equal(t, task.AllCategories, ctrl.Query().Category)

	send(t, a, runes("C"))
	require.Equal(t, "study", ctrl.Query().Category)
	snap := ctrl.Snapshot()
	require.Empty(t, snap.View)
	require.False(t, snap.IsCollectionEmpty)
}

func TestSortKeys(t *testing.T) {
	a, ctrl := newTestApp(t,
		task.Task{Text: "Banana task", Category: "work"},
		task.Task{Text: "Apple task", Category: "work"},
	)
	require.Equal(t, []string{"Apple task", "Banana task"}, viewTexts(ctrl))

	send(t, a, runes("r"))
	require.Equal(t, task.Descending, ctrl.Query().Sort)
	require.Equal(t, []string{"Banana task", "Apple task"}, viewTexts(ctrl))

	send(t, a, runes("s"))
	require.Equal(t, []string{"Apple task", "Banana task"}, viewTexts(ctrl))
}

func TestToggleAndDeleteAtCursor(t *testing.T) {
	a, ctrl := newTestApp(t, milkAndMom()...)

	send(t, a, runes("j"), runes("x"))
	snap := ctrl.Snapshot()
	require.Equal(t, "Call mom", snap.View[1].Text)
	require.True(t, snap.View[1].Completed)
	require.Equal(t, task.Summary{Total: 2, Completed: 1, Pending: 1}, snap.Summary)
	require.Contains(t, a.status, "completed: Call mom")

	send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, ctrl.Snapshot().View[1].Completed)
	require.Contains(t, a.status, "reopened: Call mom")

	send(t, a, runes("d"))
	require.Equal(t, []string{"Buy milk"}, viewTexts(ctrl))
	require.Equal(t, 0, a.cursor, "cursor is clamped after delete")

	send(t, a, runes("j"), runes("j"), runes("k"), runes("k"))
	require.Equal(t, 0, a.cursor)

	send(t, a, tea.KeyMsg{Type: tea.KeyDelete}, runes("d"), runes("x"))
	require.True(t, ctrl.Snapshot().IsCollectionEmpty)
}

func TestQuitKeys(t *testing.T) {
	a, _ := newTestApp(t)

	cmd := send(t, a, runes("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	send(t, a, runes("/"))
	cmd = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTypingInFormDoesNotTriggerBrowseKeys(t *testing.T) {
	a, ctrl := newTestApp(t, milkAndMom()...)

	send(t, a, runes("a"), runes("q"), runes("d"), runes("x"))
	require.Equal(t, modeAdd, a.mode)
	require.Equal(t, "qdx", a.title.Value())
	require.Equal(t, 2, ctrl.Snapshot().Summary.Total)
}

func TestViewRendersSummaryAndRows(t *testing.T) {
	a, _ := newTestApp(t,
		task.Task{Text: "Complete portfolio", Category: "work"},
		task.Task{Text: "Read a book", Category: "hobby", Completed: true},
	)
	send(t, a, tea.WindowSizeMsg{Width: 100, Height: 30})

	out := a.View()
	require.Contains(t, out, "Total 2")
	require.Contains(t, out, "Completed 1")
	require.Contains(t, out, "Pending 1")
	require.Contains(t, out, "Filter: All")
	require.Contains(t, out, "Sort: A→Z")
	require.Contains(t, out, "› [ ] Complete portfolio")
	require.Contains(t, out, "💼 work")
	require.Contains(t, out, "[x] Read a book")
	require.Contains(t, out, task.DefaultIcon+" hobby")
	require.Contains(t, out, "Ready")
}

func TestViewEmptyStates(t *testing.T) {
	a, ctrl := newTestApp(t)
	out := a.View()
	require.Contains(t, out, "No tasks found")
	require.Contains(t, out, "Add your first task to get started!")

	ctrl.Submit("Buy milk", "personal")
	ctrl.SetSearch("mlk")
	out = a.View()
	require.Contains(t, out, "No tasks found")
	require.Contains(t, out, "Try adjusting your search or filter criteria.")
	require.Contains(t, out, `Did you mean "milk"?`)
	require.NotContains(t, out, "Add your first task")
}

func TestViewShowsFormAndSearch(t *testing.T) {
	a, _ := newTestApp(t)

	send(t, a, runes("a"), tea.KeyMsg{Type: tea.KeyTab})
	out := a.View()
	require.Contains(t, out, "Title:")
	require.Contains(t, out, "[💼 work]")
	require.True(t, strings.Contains(out, "save"), "footer lists add-form keys")

	send(t, a, tea.KeyMsg{Type: tea.KeyEsc}, runes("/"), runes("abc"))
	out = a.View()
	require.Contains(t, out, "Search: abc")
}

func TestListWindow(t *testing.T) {
	cases := []struct {
		n, cursor, rows int
		start, end      int
	}{
		{5, 0, 0, 0, 5},
		{5, 4, 10, 0, 5},
		{10, 0, 4, 0, 4},
		{10, 5, 4, 3, 7},
		{10, 9, 4, 6, 10},
	}
	for _, tc := range cases {
		start, end := listWindow(tc.n, tc.cursor, tc.rows)
		require.Equal(t, tc.start, start, "%+v", tc)
		require.Equal(t, tc.end, end, "%+v", tc)
	}
}

func TestListScrollsWithCursor(t *testing.T) {
	seed := make([]task.Task, 0, 20)
	for i := range 20 {
		seed = append(seed, task.Task{Text: "task " + string(rune('a'+i)), Category: "work"})
	}
	a, _ := newTestApp(t, seed...)
	send(t, a, tea.WindowSizeMsg{Width: 80, Height: chromeLines + 5})

	out := a.View()
	require.Contains(t, out, "task a")
	require.NotContains(t, out, "task t")

	for range 19 {
		send(t, a, runes("j"))
	}
	out = a.View()
	require.Contains(t, out, "› [ ] task t")
	require.NotContains(t, out, "task a ")
}
