// Package config loads huegrid settings files.
//
// A settings file seeds the grid configuration and picks the clipboard
// backend and server options. TOML, YAML and JSON are supported, chosen by
// file extension:
//
//	# ~/.config/huegrid/config.toml
//	clipboard = "auto"
//
//	[grid]
//	rows = 12
//	cols = 24
//	show_label = true
//	format = "hsla"
//
//	[server]
//	addr = ":8080"
//	redis = "redis://localhost:6379/0"
//
// Files are read only; huegrid never writes settings back. [Watch] reloads
// a file when it changes on disk.
package config

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/huegrid/pkg/clipboard"
	"github.com/matzehuels/huegrid/pkg/color"
	"github.com/matzehuels/huegrid/pkg/errors"
	"github.com/matzehuels/huegrid/pkg/grid"
)

const (
	appName         = "huegrid"
	defaultFileName = "config.toml"
)

// File is the content of a settings file.
type File struct {
	Grid      grid.Config `json:"grid" toml:"grid" yaml:"grid"`
	Clipboard string      `json:"clipboard" toml:"clipboard" yaml:"clipboard"`
	Server    Server      `json:"server" toml:"server" yaml:"server"`
}

// Server holds `huegrid serve` settings.
type Server struct {
	Addr  string `json:"addr" toml:"addr" yaml:"addr"`
	Redis string `json:"redis,omitempty" toml:"redis,omitempty" yaml:"redis,omitempty"`
}

// Default returns the settings used when no file exists.
func Default() File {
	return File{
		Grid:      grid.DefaultConfig(),
		Clipboard: clipboard.BackendAuto,
		Server:    Server{Addr: "localhost:8080"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/huegrid/config.toml, falling back to
// ~/.config/huegrid/config.toml.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, defaultFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, defaultFileName), nil
}

// Resolve loads the file at path. An empty path means the default location,
// where a missing file is not an error and yields Default(). An explicit path
// that does not exist is reported as FILE_NOT_FOUND.
//
// The returned path is the file that was (or would have been) read.
func Resolve(path string) (File, string, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), "", nil
		}
		path = p
	}

	f, err := Load(path)
	if !explicit && errors.Is(err, errors.ErrCodeFileNotFound) {
		return Default(), path, nil
	}
	return f, path, err
}

// Load reads and validates the settings file at path. Fields missing from
// the file keep their Default() values.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return File{}, errors.New(errors.ErrCodeFileNotFound, "settings file %s does not exist", path)
	}
	if err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	f, err := Parse(data, formatOf(path))
	if err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return f, nil
}

// Syntax names a settings file syntax.
type Syntax string

const (
	SyntaxTOML Syntax = "toml"
	SyntaxYAML Syntax = "yaml"
	SyntaxJSON Syntax = "json"
)

func formatOf(path string) Syntax {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return SyntaxYAML
	case ".json":
		return SyntaxJSON
	default:
		return SyntaxTOML
	}
}

// Parse decodes data in the given syntax on top of Default() and validates
// the result. The color format is matched case-insensitively.
func Parse(data []byte, syntax Syntax) (File, error) {
	f := Default()

	var err error
	switch syntax {
	case SyntaxTOML:
		err = toml.Unmarshal(data, &f)
	case SyntaxYAML:
		err = yaml.Unmarshal(data, &f)
	case SyntaxJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	default:
		return File{}, errors.New(errors.ErrCodeUnsupported, "unsupported settings syntax %q", syntax)
	}
	if err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", syntax)
	}

	if err := f.normalize(); err != nil {
		return File{}, err
	}
	return f, nil
}

func (f *File) normalize() error {
	format, err := color.ParseFormat(string(f.Grid.Format))
	if err != nil {
		return err
	}
	f.Grid.Format = format

	if err := f.Grid.Validate(); err != nil {
		return err
	}

	switch f.Clipboard {
	case "":
		f.Clipboard = clipboard.BackendAuto
	case clipboard.BackendAuto, clipboard.BackendSystem, clipboard.BackendOSC52:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown clipboard backend %q (must be auto, system or osc52)", f.Clipboard)
	}

	if f.Server.Addr != "" {
		if err := errors.ValidateListenAddr(f.Server.Addr); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes f as TOML.
func Encode(w io.Writer, f File) error {
	return toml.NewEncoder(w).Encode(f)
}
