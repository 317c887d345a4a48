// Package codec implements the manifest loader/saver collaborators. The
// merge engine is format-agnostic; these codecs only promise a lossless
// round-trip of GUIDs, scalar and set fields, the link map, and nested
// instructions and options.
//
// Codec behavior is configured by explicit options injected by the caller;
// the package reads no ambient or global state.
package codec

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/modsmith/modmerge/pkg/components"
	"github.com/modsmith/modmerge/pkg/constants"
	"github.com/modsmith/modmerge/pkg/errors"
)

// Format identifies a manifest encoding.
type Format string

// String returns the string representation of a Format.
func (f Format) String() string {
	return string(f)
}

// Supported manifest formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Document is the on-disk manifest shape: one ordered component list.
type Document struct {
	Components []*components.Component `json:"components" yaml:"components" toml:"components"`
}

// Loader reads an ordered component list from a manifest stream.
type Loader interface {
	Load(r io.Reader) ([]*components.Component, error)
}

// Saver writes an ordered component list as manifest text.
type Saver interface {
	Save(w io.Writer, list []*components.Component) error
}

// Codec is a Loader and Saver for one format.
type Codec interface {
	Loader
	Saver
	Format() Format
}

// config holds codec settings.
type config struct {
	indent int
}

// Option configures a codec.
type Option func(*config)

// WithIndent sets the indentation width for encoders that support it.
func WithIndent(n int) Option {
	return func(c *config) {
		c.indent = n
	}
}

// New creates a codec for the given format.
func New(format Format, opts ...Option) (Codec, error) {
	cfg := &config{indent: 2}
	for _, opt := range opts {
		opt(cfg)
	}

	switch format {
	case FormatYAML:
		return &yamlCodec{cfg: cfg}, nil
	case FormatTOML:
		return &tomlCodec{cfg: cfg}, nil
	default:
		return nil, errors.NewValidationError("format", format, fmt.Sprintf("unsupported manifest format %q", format))
	}
}

// FormatForPath infers the manifest format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.NewValidationError("path", path, "cannot infer manifest format from extension")
	}
}

// LoadFile loads a manifest from disk, inferring the format from the path.
func LoadFile(path string, opts ...Option) ([]*components.Component, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	c, err := New(format, opts...)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	return c.Load(f)
}

// SaveFile writes a manifest to disk, inferring the format from the path.
func SaveFile(path string, list []*components.Component, opts ...Option) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	c, err := New(format, opts...)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer f.Close()

	if err := c.Save(f, list); err != nil {
		return err
	}
	return errors.WrapIO("close", path, f.Sync())
}
