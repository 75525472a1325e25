package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"termnav/internal/input"
	"termnav/internal/input/types"
	"termnav/internal/ui/services/navigation"
)

// MaxPages is the number of pages reachable with the digit keys 1-9
const MaxPages = 9

// Config represents the application configuration
type Config struct {
	Version int               `toml:"version"`
	Input   InputSettings     `toml:"input"`
	UI      UISettings        `toml:"ui"`
	Log     LogSettings       `toml:"log"`
	Screens map[string]Screen `toml:"screens"`
}

// InputSettings controls how key presses are read and decoded
type InputSettings struct {
	Keymap         string `toml:"keymap"` // auto, csi or vk
	Mode           string `toml:"mode"`   // auto, raw or cooked
	PollIntervalMs int    `toml:"poll_interval_ms"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ViewportHeight int    `toml:"viewport_height"` // 0 fits the terminal
	Title          string `toml:"title"`
}

// LogSettings controls the log file
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Screen is a named set of pages, e.g. the router or the help screen
type Screen struct {
	Title string       `toml:"title"`
	Pages []PageConfig `toml:"pages"`
}

// PageConfig describes one page of a screen
type PageConfig struct {
	ID         string          `toml:"id"`
	Title      string          `toml:"title"`
	Scrollable bool            `toml:"scrollable"`
	Sections   []SectionConfig `toml:"sections"`
}

// SectionConfig describes one section. Content is either inline Text or
// read from File, relative to the config file's directory.
type SectionConfig struct {
	Label string `toml:"label"`
	Text  string `toml:"text,multiline,omitempty"`
	File  string `toml:"file,omitempty"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service for the default config file
func NewConfigService() ConfigService {
	return NewConfigServiceAt(DefaultPath())
}

// NewConfigServiceAt creates a config service for a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// DefaultPath returns the user config location of config.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "termnav", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to the defaults when the
// file does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// PollInterval returns the input poll timeout
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Input.PollIntervalMs) * time.Millisecond
}

// Screen returns the named screen
func (c *Config) Screen(name string) (Screen, error) {
	s, ok := c.Screens[name]
	if !ok {
		return Screen{}, errors.Errorf("unknown screen %q", name)
	}
	return s, nil
}

// Validate checks the values the rest of the program relies on
func (c *Config) Validate() error {
	switch c.Input.Keymap {
	case input.KeymapAuto, input.KeymapCSI, input.KeymapVirtualKey, input.KeymapVirtualKeyAlias:
	default:
		return errors.Errorf("input.keymap: unknown keymap %q", c.Input.Keymap)
	}

	if _, err := types.ParseMode(c.Input.Mode); err != nil {
		return errors.Wrap(err, "input.mode")
	}

	if c.Input.PollIntervalMs <= 0 {
		return errors.Errorf("input.poll_interval_ms must be positive, got %d", c.Input.PollIntervalMs)
	}

	if c.UI.ViewportHeight < 0 {
		return errors.Errorf("ui.viewport_height must not be negative, got %d", c.UI.ViewportHeight)
	}

	for name, screen := range c.Screens {
		if err := screen.validate(); err != nil {
			return errors.Wrapf(err, "screens.%s", name)
		}
	}

	return nil
}

func (s Screen) validate() error {
	if len(s.Pages) == 0 {
		return navigation.ErrNoPages
	}
	if len(s.Pages) > MaxPages {
		return errors.Errorf("%d pages, at most %d can be reached with the digit keys", len(s.Pages), MaxPages)
	}

	seen := make(map[string]bool, len(s.Pages))
	for i, p := range s.Pages {
		if p.ID == "" {
			return errors.Errorf("page %d has no id", i+1)
		}
		if seen[p.ID] {
			return errors.Errorf("duplicate page id %q", p.ID)
		}
		seen[p.ID] = true

		if len(p.Sections) == 0 {
			return errors.Wrapf(navigation.ErrEmptyPage, "page %q", p.ID)
		}
		for j, sec := range p.Sections {
			if sec.Text != "" && sec.File != "" {
				return errors.Errorf("page %q section %d sets both text and file", p.ID, j+1)
			}
		}
	}

	return nil
}
