package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"flywaydeck/deck"
)

// DefaultPath is looked up in the working directory.
const DefaultPath = "flywaydeck.json"

// Handouts selects the optional companion files.
type Handouts struct {
	Excel bool `json:"excel"` // comparison table as .xlsx
	Word  bool `json:"word"`  // speaker handout as .docx
	PDF   bool `json:"pdf"`   // printable handout as .pdf
}

// Any reports whether at least one handout is enabled.
func (h Handouts) Any() bool {
	return h.Excel || h.Word || h.PDF
}

// Config structure
type Config struct {
	OutputDir string   `json:"outputDir"`
	FileName  string   `json:"fileName"`
	LogDir    string   `json:"logDir,omitempty"` // empty disables logging
	Handouts  Handouts `json:"handouts"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		OutputDir: ".",
		FileName:  deck.FileName,
	}
}

// Load reads path, falling back to defaults when it does not exist. Fields
// left empty in the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	if c.FileName == "" {
		c.FileName = def.FileName
	}
}
