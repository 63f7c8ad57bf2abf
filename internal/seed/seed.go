// Package seed supplies the tasks a session starts with: the built-in samples
// or a read-only TOML fixture.
package seed

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/jask/jasktodo/internal/task"
)

// entry is one [[task]] block of a seed file.
type entry struct {
	ID        string `toml:"id"`
	Text      string `toml:"text"`
	Category  string `toml:"category"`
	Completed bool   `toml:"completed"`
}

type file struct {
	Task []entry `toml:"task"`
}

// Samples returns the demo tasks shown on first launch.
func Samples() []task.Task {
	return []task.Task{
		{ID: "1", Text: "Complete portfolio website development", Category: task.CategoryWork},
		{ID: "2", Text: "Study advanced React concepts and hooks", Category: task.CategoryStudy},
		{ID: "3", Text: "Prepare for upcoming job interviews", Category: task.CategoryWork, Completed: true},
		{ID: "4", Text: "Buy groceries and meal prep for the week", Category: task.CategoryPersonal},
	}
}

// Load reads tasks from a TOML seed file. A missing file yields no tasks.
func Load(path string) ([]task.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes seed TOML. Unknown keys are rejected so typos surface early.
func Parse(data string) ([]task.Task, error) {
	var f file
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse seed file: unknown key %q", undecoded[0].String())
	}
	out := make([]task.Task, 0, len(f.Task))
	for _, e := range f.Task {
		out = append(out, task.Task{
			ID:        task.ID(e.ID),
			Text:      e.Text,
			Category:  e.Category,
			Completed: e.Completed,
		})
	}
	return out, nil
}
