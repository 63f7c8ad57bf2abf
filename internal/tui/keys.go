package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Scopes a binding can apply to.
const (
	scopeBrowse = "browse"
	scopeAdd    = "add"
	scopeSearch = "search"
)

// Actions.
const (
	actionQuit         = "quit"
	actionAdd          = "add"
	actionSearch       = "search"
	actionFilterNext   = "filter-next"
	actionFilterPrev   = "filter-prev"
	actionSortAsc      = "sort-asc"
	actionSortDesc     = "sort-desc"
	actionUp           = "up"
	actionDown         = "down"
	actionToggle       = "toggle"
	actionDelete       = "delete"
	actionClearSearch  = "clear-search"
	actionSubmit       = "submit"
	actionCategoryNext = "category-next"
	actionCategoryPrev = "category-prev"
	actionClose        = "close"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
	// Hidden bindings work but are left out of the footer.
	Hidden bool
}

type KeyRegistry struct {
	bindings []scopedBinding
}

type scopedBinding struct {
	KeyBinding
	key key.Binding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	out := make([]scopedBinding, 0, len(bindings))
	for _, b := range bindings {
		help := ""
		if len(b.Keys) > 0 {
			help = b.Keys[0]
		}
		out = append(out, scopedBinding{
			KeyBinding: b,
			key:        key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(help, b.Description)),
		})
	}
	return &KeyRegistry{bindings: out}
}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"a", "ctrl+n"}, Action: actionAdd, Description: "add", Scopes: []string{scopeBrowse}},
		{Keys: []string{"/"}, Action: actionSearch, Description: "search", Scopes: []string{scopeBrowse}},
		{Keys: []string{"c"}, Action: actionFilterNext, Description: "filter", Scopes: []string{scopeBrowse}},
		{Keys: []string{"C"}, Action: actionFilterPrev, Description: "filter back", Scopes: []string{scopeBrowse}, Hidden: true},
		{Keys: []string{"s"}, Action: actionSortAsc, Description: "A→Z", Scopes: []string{scopeBrowse}},
		{Keys: []string{"r"}, Action: actionSortDesc, Description: "Z→A", Scopes: []string{scopeBrowse}},
		{Keys: []string{"k", "up"}, Action: actionUp, Description: "up", Scopes: []string{scopeBrowse}, Hidden: true},
		{Keys: []string{"j", "down"}, Action: actionDown, Description: "down", Scopes: []string{scopeBrowse}, Hidden: true},
		{Keys: []string{"x", "enter"}, Action: actionToggle, Description: "complete/undo", Scopes: []string{scopeBrowse}},
		{Keys: []string{"d", "delete"}, Action: actionDelete, Description: "delete", Scopes: []string{scopeBrowse}},
		{Keys: []string{"esc"}, Action: actionClearSearch, Description: "clear search", Scopes: []string{scopeBrowse, scopeSearch}},
		{Keys: []string{"q", "ctrl+c"}, Action: actionQuit, Description: "quit", Scopes: []string{scopeBrowse}},
		{Keys: []string{"ctrl+c"}, Action: actionQuit, Description: "quit", Scopes: []string{scopeAdd, scopeSearch}, Hidden: true},
		{Keys: []string{"enter"}, Action: actionSubmit, Description: "save", Scopes: []string{scopeAdd}},
		{Keys: []string{"enter"}, Action: actionClose, Description: "done", Scopes: []string{scopeSearch}},
		{Keys: []string{"tab"}, Action: actionCategoryNext, Description: "category", Scopes: []string{scopeAdd}},
		{Keys: []string{"shift+tab"}, Action: actionCategoryPrev, Description: "category back", Scopes: []string{scopeAdd}, Hidden: true},
		{Keys: []string{"esc"}, Action: actionClose, Description: "close", Scopes: []string{scopeAdd}},
	}
}

// Help returns the footer bindings for scope, leaving out hidden ones.
func (r *KeyRegistry) Help(scope string) []key.Binding {
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if b.Hidden || !b.key.Enabled() || !scopeMatch(scope, b.Scopes) {
			continue
		}
		out = append(out, b.key)
	}
	return out
}

// Action returns the first action bound to msg in scope, or "". Keys are
// case-sensitive: "c" and "C" are different bindings.
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) string {
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) && key.Matches(msg, b.key) {
			return b.Action
		}
	}
	return ""
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
