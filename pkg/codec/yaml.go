package codec

import (
	"io"

	goyaml "github.com/goccy/go-yaml"

	"github.com/modsmith/modmerge/pkg/components"
	"github.com/modsmith/modmerge/pkg/errors"
)

// yamlCodec reads and writes YAML manifests.
type yamlCodec struct {
	cfg *config
}

// Format returns FormatYAML.
func (c *yamlCodec) Format() Format {
	return FormatYAML
}

// Load decodes a YAML manifest. An empty stream yields an empty list.
func (c *yamlCodec) Load(r io.Reader) ([]*components.Component, error) {
	var doc Document
	if err := goyaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return []*components.Component{}, nil
		}
		return nil, errors.WrapParse("yaml", "", err)
	}
	if doc.Components == nil {
		return []*components.Component{}, nil
	}
	return doc.Components, nil
}

// Save encodes the component list as a YAML manifest.
func (c *yamlCodec) Save(w io.Writer, list []*components.Component) error {
	enc := goyaml.NewEncoder(w, goyaml.Indent(c.cfg.indent))
	defer enc.Close()

	if err := enc.Encode(Document{Components: list}); err != nil {
		return errors.WrapParse("yaml", "", err)
	}
	return nil
}
