package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Backend names accepted in Config.Backend.
const (
	BackendSheets   = "sheets"
	BackendWorkbook = "workbook"
	BackendMemory   = "memory"
)

// Config holds everything the server and CLI need. Values come from
// TRACKER_* environment variables, optionally overridden by a TOML file.
type Config struct {
	ListenAddress string `toml:"listen_address" envconfig:"LISTEN_ADDRESS" default:":8080"`
	Backend       string `toml:"backend" envconfig:"BACKEND" default:"sheets"`

	// Google Sheets backend
	CredentialsFile string `toml:"credentials_file" envconfig:"CREDENTIALS_FILE"`
	SpreadsheetID   string `toml:"spreadsheet_id" envconfig:"SPREADSHEET_ID"`

	// Workbook backend
	WorkbookPath string `toml:"workbook_path" envconfig:"WORKBOOK_PATH" default:"tracker.xlsx"`

	SheetName string `toml:"sheet_name" envconfig:"SHEET_NAME" default:"Project Tracker"`
}

// Load builds the config from the environment, then applies the TOML file
// on top when it exists. A missing file is not an error.
func Load(filename string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process("TRACKER", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if filename != "" {
		if err := cfg.loadFile(filename); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the current config out to a toml file.
func (c *Config) Save(filename string) error {
	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

func (c *Config) loadFile(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return toml.Unmarshal(b, c)
}

// validate checks the fields every mode needs. Backend-specific fields are
// checked where the store is built, so -demo works without Sheets settings.
func (c *Config) validate() error {
	switch c.Backend {
	case BackendSheets, BackendWorkbook, BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.SheetName == "" {
		return fmt.Errorf("sheet name must not be empty")
	}
	return nil
}
