package breaks

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/chillmcp/pkg/domain"
)

// overrideFile is the YAML schema for catalog overrides. Every field is
// optional; omitted fields keep the built-in value.
type overrideFile struct {
	Breaks map[string]profileOverride `yaml:"breaks"`
}

type profileOverride struct {
	Description *string `yaml:"description"`
	Summary     *string `yaml:"summary"`
	Flavor      *string `yaml:"flavor"`
	MinRelief   *int    `yaml:"min_relief"`
	MaxRelief   *int    `yaml:"max_relief"`
}

// Load builds the catalog from the built-ins overlaid with the YAML override
// file at path. An empty path returns the built-ins untouched.
func Load(path string) (*Catalog, error) {
	c := Builtin()
	if path == "" {
		return c, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog overrides: %w", err)
	}
	defer f.Close()

	if err := c.ApplyOverrides(f); err != nil {
		return nil, fmt.Errorf("catalog overrides %s: %w", path, err)
	}
	return c, nil
}

// ApplyOverrides merges a YAML override document into the catalog. Names that
// do not exist in the built-in set are rejected: overrides tune the stock
// tools, they do not invent new ones.
func (c *Catalog) ApplyOverrides(r io.Reader) error {
	var file overrideFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("decode: %w", err)
	}

	for name, o := range file.Breaks {
		p, ok := c.profiles[name]
		if !ok {
			return fmt.Errorf("%w: %q", domain.ErrUnknownBreak, name)
		}
		if o.Description != nil {
			p.Description = *o.Description
		}
		if o.Summary != nil {
			p.Summary = *o.Summary
		}
		if o.Flavor != nil {
			p.Flavor = *o.Flavor
		}
		if o.MinRelief != nil {
			p.MinRelief = *o.MinRelief
		}
		if o.MaxRelief != nil {
			p.MaxRelief = *o.MaxRelief
		}
		c.profiles[name] = p
	}

	return c.validate()
}
