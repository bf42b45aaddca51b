// Package levels reads and writes generated layouts so a level can be
// inspected or diffed outside the game. It stores no progress.
package levels

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/sketchjump/world"
	"gopkg.in/yaml.v3"
)

const Version = 1

var ErrUnknownFormat = errors.New("unknown level format")

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("levels: format %q: %w", s, ErrUnknownFormat)
}

// FormatFor picks a format from a file extension.
func FormatFor(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// File is one exported level: the layout plus the run seed it came from.
type File struct {
	Version int          `json:"version" yaml:"version"`
	Seed    uint64       `json:"seed" yaml:"seed"`
	Layout  world.Layout `json:"layout" yaml:"layout"`
}

func NewFile(seed uint64, l world.Layout) File {
	return File{Version: Version, Seed: seed, Layout: l}
}

func Encode(w io.Writer, f File, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("levels: encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("levels: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("levels: encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("levels: encode %q: %w", format, ErrUnknownFormat)
	}
	return nil
}

// Decode reads a level file and validates its layout.
func Decode(r io.Reader, format Format) (File, error) {
	var f File
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&f); err != nil {
			return File{}, fmt.Errorf("levels: decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&f); err != nil {
			return File{}, fmt.Errorf("levels: decode yaml: %w", err)
		}
	default:
		return File{}, fmt.Errorf("levels: decode %q: %w", format, ErrUnknownFormat)
	}
	if f.Version != Version {
		return File{}, fmt.Errorf("levels: unsupported version %d", f.Version)
	}
	if err := f.Layout.Validate(); err != nil {
		return File{}, fmt.Errorf("levels: %w", err)
	}
	return f, nil
}

func Save(path string, f File) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("levels: save: %w", err)
	}
	if err := Encode(out, f, format); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("levels: save: %w", err)
	}
	return nil
}

func Load(path string) (File, error) {
	format, err := FormatFor(path)
	if err != nil {
		return File{}, err
	}
	in, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("levels: load: %w", err)
	}
	defer in.Close()
	return Decode(in, format)
}
