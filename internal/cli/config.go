package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoSheet is returned by commands that need a sheet when none is known
var ErrNoSheet = errors.New("no sheet selected: run 'scoresheet sheet create' or pass --sheet")

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Sheet     string
	SheetFile string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("SCORESHEET_SERVER", "http://localhost:8080"),
		Sheet:     os.Getenv("SCORESHEET_SHEET"),
		SheetFile: getEnvOrDefault("SCORESHEET_SHEET_FILE", defaultSheetFile()),
		Output:    "text",
		Verbose:   false,
	}
}

// LoadSheet loads the sheet code from file if not already set
func (c *Config) LoadSheet() error {
	if c.Sheet != "" {
		return nil
	}

	data, err := os.ReadFile(c.SheetFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No sheet file is fine
		}
		return err
	}

	c.Sheet = strings.TrimSpace(string(data))
	return nil
}

// SaveSheet saves the sheet code to the sheet file
func (c *Config) SaveSheet(code string) error {
	c.Sheet = code

	dir := filepath.Dir(c.SheetFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.SheetFile, []byte(code), 0600)
}

// ForgetSheet removes the sheet file if it still points at code
func (c *Config) ForgetSheet(code string) error {
	data, err := os.ReadFile(c.SheetFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if strings.TrimSpace(string(data)) != code {
		return nil
	}
	return os.Remove(c.SheetFile)
}

// RequireSheet returns the selected sheet code
func (c *Config) RequireSheet() (string, error) {
	if c.Sheet == "" {
		return "", ErrNoSheet
	}
	return c.Sheet, nil
}

func defaultSheetFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".scoresheet/sheet"
	}
	return filepath.Join(home, ".scoresheet", "sheet")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
