package codec

import (
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/modsmith/modmerge/pkg/components"
	"github.com/modsmith/modmerge/pkg/errors"
)

// tomlCodec reads and writes TOML manifests.
type tomlCodec struct {
	cfg *config
}

// Format returns FormatTOML.
func (c *tomlCodec) Format() Format {
	return FormatTOML
}

// Load decodes a TOML manifest. An empty stream yields an empty list.
func (c *tomlCodec) Load(r io.Reader) ([]*components.Component, error) {
	var doc Document
	if err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.WrapParse("toml", "", err)
	}
	if doc.Components == nil {
		return []*components.Component{}, nil
	}
	return doc.Components, nil
}

// Save encodes the component list as a TOML manifest.
func (c *tomlCodec) Save(w io.Writer, list []*components.Component) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)

	if err := enc.Encode(Document{Components: list}); err != nil {
		return errors.WrapParse("toml", "", err)
	}
	return nil
}
