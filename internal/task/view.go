package task

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// AllCategories is the category filter value that disables category filtering.
const AllCategories = "All"

// SortDirection orders the view by task text.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

func (d SortDirection) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ParseSortDirection accepts "asc" or "desc" in any case.
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("invalid sort direction %q", s)
}

// Query holds the view controls: search term, category filter and sort.
type Query struct {
	Search   string
	Category string
	Sort     SortDirection
}

// ShowsAll reports whether the category filter is off. Only the exact
// AllCategories value (or a blank one) does that, so a real category named
// "all" stays selectable.
func (q Query) ShowsAll() bool {
	c := strings.TrimSpace(q.Category)
	return c == "" || c == AllCategories
}

// View is the display-ready subset of the collection.
type View struct {
	Tasks []Task
	// IsCollectionEmpty distinguishes "nothing stored" from "nothing matches".
	IsCollectionEmpty bool
}

// Summary counts are taken over the whole collection, ignoring the query.
type Summary struct {
	Total     int
	Completed int
	Pending   int
}

// Filter returns the tasks matching q's search term and category, in input
// order. The input slice is not modified.
func Filter(tasks []Task, q Query) []Task {
	term := fold(q.Search)
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !matchesSearch(t, term) {
			continue
		}
		if !matchesCategory(t, q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesSearch(t Task, foldedTerm string) bool {
	if foldedTerm == "" {
		return true
	}
	return strings.Contains(fold(t.Text), foldedTerm)
}

func matchesCategory(t Task, q Query) bool {
	if q.ShowsAll() {
		return true
	}
	return fold(t.Category) == fold(q.Category)
}

func fold(s string) string {
	return cases.Fold().String(s)
}

// Sorter orders tasks by text using the collation rules of a language.
type Sorter struct {
	col *collate.Collator
}

// NewSorter returns a sorter for tag.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{col: collate.New(tag)}
}

// Compare returns the collation order of a and b.
func (s *Sorter) Compare(a, b string) int {
	return s.col.CompareString(a, b)
}

// Sort orders tasks in place by text. Equal texts keep their relative order.
func (s *Sorter) Sort(tasks []Task, dir SortDirection) {
	slices.SortStableFunc(tasks, func(a, b Task) int {
		c := s.col.CompareString(a.Text, b.Text)
		if dir == Descending {
			return -c
		}
		return c
	})
}

// Compute filters then sorts the collection for display. The input slice is
// left untouched.
func Compute(tasks []Task, q Query, s *Sorter) View {
	out := Filter(tasks, q)
	s.Sort(out, q.Sort)
	return View{Tasks: out, IsCollectionEmpty: len(tasks) == 0}
}

// Summarize counts the collection.
func Summarize(tasks []Task) Summary {
	sum := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			sum.Completed++
		}
	}
	sum.Pending = sum.Total - sum.Completed
	return sum
}
