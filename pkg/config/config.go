package config

import (
	"io/fs"
	"strconv"
	"strings"

	"github.com/ccid-tools/readerlist/pkg/errors"
	"github.com/ccid-tools/readerlist/pkg/readers"
	toml "github.com/pelletier/go-toml/v2"
)

// Config is the complete readerlist configuration
type Config struct {
	Sections Sections `koanf:"sections" toml:"sections"`
	Output   Output   `koanf:"output" toml:"output"`
}

// Sections describes how the CCID config is split into sections
type Sections struct {
	Marker        string   `koanf:"marker" toml:"marker"`
	CommentPrefix string   `koanf:"comment_prefix" toml:"comment_prefix"`
	Accepted      []string `koanf:"accepted" toml:"accepted"`
}

// Output controls the generated file and the run summary
type Output struct {
	FileMode      string `koanf:"file_mode" toml:"file_mode"`
	SummaryFormat string `koanf:"summary_format" toml:"summary_format"`
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Sections.Marker) == "" {
		return errors.New(errors.ErrConfigValid, "sections.marker must not be empty")
	}
	if c.Sections.CommentPrefix == "" {
		return errors.New(errors.ErrConfigValid, "sections.comment_prefix must not be empty")
	}
	if len(c.Sections.Accepted) == 0 {
		return errors.New(errors.ErrConfigValid, "sections.accepted must list at least one section")
	}
	for _, section := range c.Sections.Accepted {
		if strings.TrimSpace(section) == "" {
			return errors.New(errors.ErrConfigValid, "sections.accepted must not contain empty names")
		}
	}
	if _, err := c.Mode(); err != nil {
		return err
	}
	return nil
}

// Mode returns the parsed output file permissions
func (c *Config) Mode() (fs.FileMode, error) {
	mode, err := strconv.ParseUint(c.Output.FileMode, 8, 32)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrConfigValid,
			"output.file_mode %q is not an octal file mode", c.Output.FileMode)
	}
	return fs.FileMode(mode).Perm(), nil
}

// ReaderOptions converts the section settings into extractor options
func (c *Config) ReaderOptions() readers.Options {
	accepted := make([]string, 0, len(c.Sections.Accepted))
	for _, section := range c.Sections.Accepted {
		accepted = append(accepted, strings.TrimSpace(section))
	}
	return readers.Options{
		SectionMarker:    c.Sections.Marker,
		CommentPrefix:    c.Sections.CommentPrefix,
		AcceptedSections: accepted,
	}
}

// ToTOML renders the configuration as a TOML document
func (c *Config) ToTOML() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return data, nil
}
