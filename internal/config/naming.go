package config

// This file loads and writes naming config files. TOML and YAML decode over
// naming.DefaultConfig so a file only needs the keys it changes.

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/backmassage/namewright/internal/naming"
)

var (
	// ErrUnsupportedFormat is returned for a naming file whose extension is
	// not .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("unsupported naming config format")
	// ErrExists is returned by [WriteNamingSample] when the target exists.
	ErrExists = errors.New("file already exists")
)

type fileFormat int

const (
	formatTOML fileFormat = iota
	formatYAML
)

func formatOf(path string) (fileFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// LoadNaming reads the naming config at path from fs. An empty path returns
// the defaults. Unknown keys are rejected and the result is always validated.
func LoadNaming(fs afero.Fs, path string) (naming.Config, error) {
	cfg := naming.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	format, err := formatOf(path)
	if err != nil {
		return naming.Config{}, err
	}

	file, err := fs.Open(path)
	if err != nil {
		return naming.Config{}, fmt.Errorf("open naming config: %w", err)
	}
	defer file.Close()

	switch format {
	case formatTOML:
		dec := toml.NewDecoder(file)
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	case formatYAML:
		dec := yaml.NewDecoder(file)
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
		if errors.Is(err, io.EOF) {
			err = nil // empty file keeps the defaults
		}
	}
	if err != nil {
		return naming.Config{}, fmt.Errorf("parse naming config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return naming.Config{}, fmt.Errorf("naming config %s: %w", path, err)
	}
	return cfg, nil
}

const sampleHeader = `# namewright naming config.
#
# Tokens: {Series Title} {Season} {Episode} {Episode Title} {Air Date}
#         {Absolute} {Quality} {Release Group} {Scene Title}
# Names match case-insensitively; spaces, dots, dashes and underscores are ignored.
#
# multi_episode_style: extend-range | repeat-marker | duplicate-format
# separator:           space | dot | underscore
# title_case:          original | title | lower
# number_padding:      1 to 3

`

// WriteNamingSample writes the default naming config to path, as TOML or YAML
// depending on the extension. It refuses to replace an existing file unless
// overwrite is set.
func WriteNamingSample(fs afero.Fs, path string, overwrite bool) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}
	if !overwrite {
		exists, err := afero.Exists(fs, path)
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
	}

	var buf bytes.Buffer
	buf.WriteString(sampleHeader)
	cfg := naming.DefaultConfig()
	switch format {
	case formatTOML:
		err = toml.NewEncoder(&buf).Encode(cfg)
	case formatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		err = enc.Encode(cfg)
		if err == nil {
			err = enc.Close()
		}
	}
	if err != nil {
		return fmt.Errorf("encode naming config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(fs, path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
