// Package tui is the terminal front end: it turns key presses into controller
// events and renders the controller's snapshot.
package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jasktodo/internal/service"
	"github.com/jask/jasktodo/internal/task"
)

type mode string

const (
	modeBrowse mode = "browse"
	modeAdd    mode = "add"
	modeSearch mode = "search"
)

// noCategory marks the add form's category selector as unselected.
const noCategory = -1

// App is the bubbletea model.
type App struct {
	ctrl *service.Controller
	keys *KeyRegistry

	mode   mode
	title  textinput.Model
	search textinput.Model
	// formCategory indexes ctrl.FormCategories(), or noCategory.
	formCategory int
	cursor       int

	width  int
	height int
	status string
}

// New returns the UI bound to ctrl. A nil registry uses DefaultKeyBindings.
func New(ctrl *service.Controller, keys *KeyRegistry) *App {
	if keys == nil {
		keys = NewKeyRegistry(DefaultKeyBindings())
	}

	title := textinput.New()
	title.Placeholder = "What needs to be done?"
	title.Prompt = "Title: "
	title.CharLimit = 200

	search := textinput.New()
	search.Placeholder = "search tasks"
	search.Prompt = "/ "
	search.SetValue(ctrl.Query().Search)

	return &App{
		ctrl:         ctrl,
		keys:         keys,
		mode:         modeBrowse,
		title:        title,
		search:       search,
		formCategory: noCategory,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.title.Width = max(10, m.Width-len(a.title.Prompt)-6)
		a.search.Width = max(10, m.Width-len(a.search.Prompt)-2)
		return a, nil
	case tea.KeyMsg:
		switch a.mode {
		case modeAdd:
			return a, a.updateAdd(m)
		case modeSearch:
			return a, a.updateSearch(m)
		default:
			return a, a.updateBrowse(m)
		}
	}

	// cursor blink and similar input housekeeping
	var cmd tea.Cmd
	switch a.mode {
	case modeAdd:
		a.title, cmd = a.title.Update(msg)
	case modeSearch:
		a.search, cmd = a.search.Update(msg)
	}
	return a, cmd
}

func (a *App) updateBrowse(msg tea.KeyMsg) tea.Cmd {
	switch a.keys.Action(msg, scopeBrowse) {
	case actionQuit:
		return tea.Quit
	case actionAdd:
		a.mode = modeAdd
		a.setStatus("")
		return a.title.Focus()
	case actionSearch:
		a.mode = modeSearch
		a.search.SetValue(a.ctrl.Query().Search)
		a.search.CursorEnd()
		return a.search.Focus()
	case actionFilterNext:
		a.cycleFilter(1)
	case actionFilterPrev:
		a.cycleFilter(-1)
	case actionSortAsc:
		a.ctrl.SetSortDirection(task.Ascending)
	case actionSortDesc:
		a.ctrl.SetSortDirection(task.Descending)
	case actionUp:
		if a.cursor > 0 {
			a.cursor--
		}
	case actionDown:
		a.cursor++
	case actionToggle:
		if t, ok := a.selected(); ok {
			a.ctrl.ToggleComplete(t.ID)
			if t.Completed {
				a.setStatus("reopened: " + t.Text)
			} else {
				a.setStatus("completed: " + t.Text)
			}
		}
	case actionDelete:
		if t, ok := a.selected(); ok {
			a.ctrl.Delete(t.ID)
			a.setStatus("deleted: " + t.Text)
		}
	case actionClearSearch:
		a.ctrl.ClearSearch()
		a.search.Reset()
	}
	a.clampCursor()
	return nil
}

func (a *App) updateAdd(msg tea.KeyMsg) tea.Cmd {
	switch a.keys.Action(msg, scopeAdd) {
	case actionQuit:
		return tea.Quit
	case actionClose:
		a.mode = modeBrowse
		a.title.Blur()
		return nil
	case actionCategoryNext:
		a.cycleFormCategory(1)
		return nil
	case actionCategoryPrev:
		a.cycleFormCategory(-1)
		return nil
	case actionSubmit:
		// A rejected submission leaves the form as it is.
		id, ok := a.ctrl.Submit(a.title.Value(), a.selectedFormCategory())
		if !ok {
			return nil
		}
		a.setStatus("added: " + strings.TrimSpace(a.title.Value()))
		a.title.Reset()
		a.formCategory = noCategory
		a.moveCursorTo(id)
		return nil
	}
	var cmd tea.Cmd
	a.title, cmd = a.title.Update(msg)
	return cmd
}

func (a *App) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch a.keys.Action(msg, scopeSearch) {
	case actionQuit:
		return tea.Quit
	case actionClearSearch:
		a.ctrl.ClearSearch()
		a.search.Reset()
		a.search.Blur()
		a.mode = modeBrowse
		a.clampCursor()
		return nil
	case actionClose:
		a.search.Blur()
		a.mode = modeBrowse
		return nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	if a.search.Value() != a.ctrl.Query().Search {
		a.ctrl.SetSearch(a.search.Value())
		a.cursor = 0
	}
	return cmd
}

func (a *App) cycleFilter(step int) {
	cats := a.ctrl.Categories()
	current := a.ctrl.Query().Category
	idx := slices.Index(cats, current)
	if idx < 0 {
		idx = max(0, slices.IndexFunc(cats, func(c string) bool { return strings.EqualFold(c, current) }))
	}
	next := cats[(idx+step+len(cats))%len(cats)]
	a.ctrl.SetCategoryFilter(next)
	a.cursor = 0
}

func (a *App) cycleFormCategory(step int) {
	n := len(a.ctrl.FormCategories())
	if n == 0 {
		return
	}
	// positions: noCategory, 0..n-1
	pos := (a.formCategory + 1 + step + n + 1) % (n + 1)
	a.formCategory = pos - 1
}

func (a *App) selectedFormCategory() string {
	cats := a.ctrl.FormCategories()
	if a.formCategory < 0 || a.formCategory >= len(cats) {
		return ""
	}
	return cats[a.formCategory]
}

func (a *App) selected() (task.Task, bool) {
	view := a.ctrl.Snapshot().View
	if a.cursor < 0 || a.cursor >= len(view) {
		return task.Task{}, false
	}
	return view[a.cursor], true
}

func (a *App) moveCursorTo(id task.ID) {
	for i, t := range a.ctrl.Snapshot().View {
		if t.ID == id {
			a.cursor = i
			return
		}
	}
	a.clampCursor()
}

func (a *App) clampCursor() {
	n := len(a.ctrl.Snapshot().View)
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) setStatus(text string) {
	a.status = text
}
