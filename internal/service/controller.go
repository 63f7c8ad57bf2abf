// Package service owns the session state and turns UI input events into
// store mutations and view-control changes.
package service

import (
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"github.com/jask/jasktodo/internal/logging"
	"github.com/jask/jasktodo/internal/task"
)

// Options configure a Controller. Zero values fall back to defaults.
type Options struct {
	IDs        task.IDGenerator
	Seed       []task.Task
	Locale     language.Tag
	Query      task.Query
	Categories []string
	Icons      task.Icons
	Logger     *log.Logger
}

// Snapshot is everything the presentation layer needs after a change.
type Snapshot struct {
	View              []task.Task
	IsCollectionEmpty bool
	Summary           task.Summary
	Query             task.Query
	// Suggestion is a near-miss word for an empty search result, or "".
	Suggestion string
}

// Controller is the single writer of the task collection and view controls.
// It is not safe for concurrent use.
type Controller struct {
	store      *task.Store
	query      task.Query
	sorter     *task.Sorter
	categories []string
	icons      task.Icons
	log        *log.Logger
}

// NewController builds the session state.
func NewController(opts Options) *Controller {
	locale := opts.Locale
	if locale == language.Und {
		locale = language.English
	}
	icons := opts.Icons
	if icons == nil {
		icons = task.DefaultIcons()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	categories := opts.Categories
	if categories == nil {
		categories = []string{task.CategoryWork, task.CategoryPersonal, task.CategoryStudy}
	}

	q := opts.Query
	if q.ShowsAll() {
		q.Category = task.AllCategories
	}

	c := &Controller{
		store:      task.NewStore(opts.IDs, opts.Seed...),
		query:      q,
		sorter:     task.NewSorter(locale),
		categories: cleanCategories(categories),
		icons:      icons,
		log:        logger,
	}
	c.log.Info("session started", "tasks", c.store.Len(), "locale", locale.String(), "sort", q.Sort)
	return c
}

// Submit adds a task from the add form. It reports false, leaving the
// collection unchanged, when text or category is blank.
func (c *Controller) Submit(text, category string) (task.ID, bool) {
	id, ok := c.store.Add(text, category)
	if !ok {
		c.log.Debug("submit rejected", "text_empty", strings.TrimSpace(text) == "", "category_empty", strings.TrimSpace(category) == "")
		return "", false
	}
	c.log.Debug("task added", "id", id, "category", strings.TrimSpace(category), "total", c.store.Len())
	return id, true
}

// Delete removes a task. Unknown IDs are ignored.
func (c *Controller) Delete(id task.ID) {
	if !c.store.Remove(id) {
		c.log.Debug("delete ignored", "id", id)
		return
	}
	c.log.Debug("task deleted", "id", id, "total", c.store.Len())
}

// ToggleComplete flips a task's completion. Unknown IDs are ignored.
func (c *Controller) ToggleComplete(id task.ID) {
	if !c.store.Toggle(id) {
		c.log.Debug("toggle ignored", "id", id)
		return
	}
	t, _ := c.store.Get(id)
	c.log.Debug("task toggled", "id", id, "completed", t.Completed)
}

// SetSearch sets the search term.
func (c *Controller) SetSearch(term string) {
	c.query.Search = term
	c.log.Debug("search changed", "term", term)
}

// ClearSearch empties the search term.
func (c *Controller) ClearSearch() {
	c.query.Search = ""
	c.log.Debug("search cleared")
}

// SetCategoryFilter selects a category; blank selects task.AllCategories.
func (c *Controller) SetCategoryFilter(category string) {
	category = strings.TrimSpace(category)
	if category == "" {
		category = task.AllCategories
	}
	c.query.Category = category
	c.log.Debug("filter changed", "category", category)
}

// SetSortDirection sets the display order.
func (c *Controller) SetSortDirection(dir task.SortDirection) {
	c.query.Sort = dir
	c.log.Debug("sort changed", "direction", dir)
}

// Query returns the current view controls.
func (c *Controller) Query() task.Query {
	return c.query
}

// Snapshot derives the current view and summary.
func (c *Controller) Snapshot() Snapshot {
	all := c.store.Tasks()
	view := task.Compute(all, c.query, c.sorter)
	snap := Snapshot{
		View:              view.Tasks,
		IsCollectionEmpty: view.IsCollectionEmpty,
		Summary:           task.Summarize(all),
		Query:             c.query,
	}
	if len(view.Tasks) == 0 && !view.IsCollectionEmpty {
		snap.Suggestion = task.Suggest(task.Filter(all, task.Query{Category: c.query.Category}), c.query.Search)
	}
	return snap
}

// Categories lists the filter choices: task.AllCategories, the configured
// categories, then any other categories in use, collated.
func (c *Controller) Categories() []string {
	var extra []string
	for _, t := range c.store.Tasks() {
		if t.Category == task.AllCategories || containsFold(c.categories, t.Category) || containsFold(extra, t.Category) {
			continue
		}
		extra = append(extra, t.Category)
	}
	slices.SortFunc(extra, c.sorter.Compare)
	out := append([]string{task.AllCategories}, c.categories...)
	return append(out, extra...)
}

// FormCategories lists the categories offered by the add form.
func (c *Controller) FormCategories() []string {
	return slices.Clone(c.categories)
}

// Icon returns the display icon for a category.
func (c *Controller) Icon(category string) string {
	return c.icons.Icon(category)
}

func cleanCategories(in []string) []string {
	out := make([]string, 0, len(in))
	for _, cat := range in {
		cat = strings.TrimSpace(cat)
		if cat == "" || cat == task.AllCategories || containsFold(out, cat) {
			continue
		}
		out = append(out, cat)
	}
	return out
}

func containsFold(list []string, s string) bool {
	return slices.ContainsFunc(list, func(v string) bool { return strings.EqualFold(v, s) })
}
