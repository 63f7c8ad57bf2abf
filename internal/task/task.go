// Package task holds the in-memory task collection and the pure functions that
// derive what the UI shows from it: the filtered and sorted view, the summary
// counts and the per-category icon.
package task

import "strings"

// ID identifies a task. IDs are never reused within a Store.
type ID string

// Task is a single to-do entry.
type Task struct {
	ID        ID
	Text      string
	Category  string
	Completed bool
}

// Known categories offered by the add form.
const (
	CategoryWork     = "work"
	CategoryPersonal = "personal"
	CategoryStudy    = "study"
)

// DefaultIcon is shown for any category without an icon of its own.
const DefaultIcon = "📝"

// Icons maps a category label to its display icon.
type Icons map[string]string

// DefaultIcons returns the built-in icon set.
func DefaultIcons() Icons {
	return Icons{
		CategoryWork:     "💼",
		CategoryPersonal: "🏠",
		CategoryStudy:    "📚",
	}
}

// With returns a copy of i with extra merged over it. Keys are normalised to
// lower case; blank keys or icons are ignored.
func (i Icons) With(extra map[string]string) Icons {
	out := make(Icons, len(i)+len(extra))
	for k, v := range i {
		out[normalizeCategory(k)] = v
	}
	for k, v := range extra {
		k = normalizeCategory(k)
		v = strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// Icon returns the icon for category, or DefaultIcon when it is unknown.
func (i Icons) Icon(category string) string {
	if icon, ok := i[normalizeCategory(category)]; ok && icon != "" {
		return icon
	}
	return DefaultIcon
}

func normalizeCategory(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}
