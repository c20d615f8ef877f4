package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/micr0-dev/prose/pkg/reflow"
)

const configDir = ".prose"
const configFile = "config.json"

// ErrCorruptConfig is returned when the defaults file exists but cannot be
// used.
var ErrCorruptConfig = errors.New("config: invalid defaults file")

// Defaults are the settings used when no flag overrides them.
type Defaults struct {
	Width     int  `json:"width"`
	LastLine  bool `json:"last_line"`
	BetterFit bool `json:"better_fit"`
}

// BuiltinDefaults mirrors reflow.DefaultOptions.
func BuiltinDefaults() Defaults {
	return FromOptions(reflow.DefaultOptions())
}

func FromOptions(opts reflow.Options) Defaults {
	return Defaults{
		Width:     opts.MaxLength,
		LastLine:  opts.LastLine,
		BetterFit: opts.ReduceJaggedness,
	}
}

func (d Defaults) Options() reflow.Options {
	return reflow.Options{
		MaxLength:        d.Width,
		LastLine:         d.LastLine,
		ReduceJaggedness: d.BetterFit,
	}
}

func GetFilePath(file string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configDir, file), nil
}

// LoadDefaults reads ~/.prose/config.json. The built-in defaults are always
// returned alongside any error, so callers can warn and carry on.
func LoadDefaults() (Defaults, error) {
	filePath, err := GetFilePath(configFile)
	if err != nil {
		return BuiltinDefaults(), err
	}
	return LoadDefaultsFrom(filePath)
}

// LoadDefaultsFrom reads defaults from filePath. A missing file is not an
// error. Fields absent from the file keep their built-in values.
func LoadDefaultsFrom(filePath string) (Defaults, error) {
	builtin := BuiltinDefaults()

	file, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return builtin, nil
	}
	if err != nil {
		return builtin, err
	}

	data := builtin
	if err := json.Unmarshal(file, &data); err != nil {
		return builtin, fmt.Errorf("%w: %s: %v", ErrCorruptConfig, filePath, err)
	}
	if err := data.Options().Validate(); err != nil {
		return builtin, fmt.Errorf("%w: %s: %v", ErrCorruptConfig, filePath, err)
	}
	return data, nil
}

// SaveDefaults writes d to ~/.prose/config.json.
func SaveDefaults(d Defaults) error {
	filePath, err := GetFilePath(configFile)
	if err != nil {
		return err
	}
	return SaveDefaultsTo(filePath, d)
}

func SaveDefaultsTo(filePath string, d Defaults) error {
	if err := d.Options().Validate(); err != nil {
		return err
	}

	// Ensure the .prose directory exists
	err := os.MkdirAll(filepath.Dir(filePath), 0700)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(d, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0600)
}
