package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/jask/jasktodo/internal/task"
)

// Config holds application configuration.
type Config struct {
	Tasks TasksConfig
	UI    UIConfig
	Log   LogConfig
}

// TasksConfig controls how the session's task list starts out.
type TasksConfig struct {
	SeedFile string `mapstructure:"seed_file"`
	Samples  bool
	IDs      string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Locale     string
	Sort       string
	Filter     string
	Categories []string
	Icons      map[string]string
}

// LogConfig holds logger settings. An empty Path discards log output.
type LogConfig struct {
	Path  string
	Level string
}

// ID schemes accepted by tasks.ids.
const (
	IDsUUID    = "uuid"
	IDsCounter = "counter"
)

// Load reads configuration from file and env. Env var overrides use prefix JASKTODO_.
func Load() (Config, error) {
	path := os.Getenv("JASKTODO_CONFIG")
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = filepath.Join(os.Getenv("HOME"), ".config")
		}
		path = filepath.Join(dir, "jasktodo", "config.toml")
	}
	return LoadFrom(path)
}

// LoadFrom reads configuration from path. A missing file leaves the defaults
// in place; a malformed one is an error.
func LoadFrom(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("tasks.seed_file", "")
	v.SetDefault("tasks.samples", true)
	v.SetDefault("tasks.ids", IDsUUID)
	v.SetDefault("ui.locale", "en")
	v.SetDefault("ui.sort", "asc")
	v.SetDefault("ui.filter", task.AllCategories)
	v.SetDefault("ui.categories", []string{task.CategoryWork, task.CategoryPersonal, task.CategoryStudy})
	v.SetDefault("ui.icons", map[string]string{})
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("JASKTODO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, os.ErrNotExist) && !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that the rest of the program parses later.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Tasks.IDs)) {
	case IDsUUID, IDsCounter:
	default:
		return fmt.Errorf("config: tasks.ids must be %q or %q, got %q", IDsUUID, IDsCounter, c.Tasks.IDs)
	}
	if _, err := task.ParseSortDirection(c.UI.Sort); err != nil {
		return fmt.Errorf("config: ui.sort: %w", err)
	}
	if _, err := language.Parse(c.UI.Locale); err != nil {
		return fmt.Errorf("config: ui.locale: %w", err)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}

// SortDirection returns the configured initial sort direction.
func (c Config) SortDirection() task.SortDirection {
	d, _ := task.ParseSortDirection(c.UI.Sort)
	return d
}

// Locale returns the configured collation language, falling back to English.
func (c Config) Locale() language.Tag {
	tag, err := language.Parse(c.UI.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// IDGenerator returns the configured task ID source.
func (c Config) IDGenerator() task.IDGenerator {
	if strings.EqualFold(strings.TrimSpace(c.Tasks.IDs), IDsCounter) {
		return task.NewCounter("")
	}
	return task.UUIDGenerator{}
}
