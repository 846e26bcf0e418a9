package chipdecl

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed nrf.yaml
var defaultCatalog []byte

// DefaultFilename is reported as the source of the embedded catalog.
const DefaultFilename = "nrf.yaml"

// Parse decodes a catalog from YAML and checks that it is internally
// consistent. Per-target problems are reported by Resolve.
func Parse(data []byte) (*CatalogDef, error) {
	var def CatalogDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Load reads and parses a catalog file.
func Load(path string) (*CatalogDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	def.SourceFilename = path
	return def, nil
}

// Default returns the catalog compiled into this package.
func Default() (*CatalogDef, error) {
	def, err := Parse(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", DefaultFilename, err)
	}
	def.SourceFilename = DefaultFilename
	return def, nil
}

// LoadOrDefault loads path, or the embedded catalog when path is empty.
func LoadOrDefault(path string) (*CatalogDef, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

func (c *CatalogDef) validate() error {
	if c.Package == "" {
		return fmt.Errorf("%w: no package name", ErrDeclaration)
	}
	if len(c.Families) == 0 {
		return fmt.Errorf("%w: no register families", ErrDeclaration)
	}

	features := map[string]bool{}
	for _, f := range c.Features {
		if f.Name == "" {
			return fmt.Errorf("%w: feature without a name", ErrDeclaration)
		}
		if features[f.Name] {
			return fmt.Errorf("%w: feature %s declared twice", ErrDeclaration, f.Name)
		}
		features[f.Name] = true
	}

	owner := map[string]string{}
	claim := func(symbol, family string) error {
		if prev, ok := owner[symbol]; ok {
			return fmt.Errorf("%w: capability %s claimed by %s and %s",
				ErrDeclaration, symbol, prev, family)
		}
		owner[symbol] = family
		return nil
	}
	for _, fam := range c.Families {
		if fam.Name == "" || fam.GoName == "" || fam.Selector == "" {
			return fmt.Errorf("%w: family %q needs name, goName and selector",
				ErrDeclaration, fam.Name)
		}
		if err := claim(fam.Selector, fam.Name); err != nil {
			return err
		}
		for _, sym := range fam.Capabilities {
			if err := claim(sym, fam.Name); err != nil {
				return err
			}
		}
		names := map[string]bool{}
		for _, cause := range fam.Causes {
			if cause.Feature != "" && !features[cause.Feature] {
				return fmt.Errorf("%w: cause %s.%s uses undeclared feature %s",
					ErrDeclaration, fam.Name, cause.Name, cause.Feature)
			}
			ids := []string{cause.Name}
			for _, a := range cause.Aliases {
				ids = append(ids, a.Name)
			}
			for _, id := range ids {
				if id == "" {
					return fmt.Errorf("%w: unnamed cause in family %s", ErrDeclaration, fam.Name)
				}
				if names[id] {
					return fmt.Errorf("%w: %s declared twice in family %s",
						ErrDeclaration, id, fam.Name)
				}
				names[id] = true
			}
		}
	}

	for _, f := range c.Features {
		for _, sym := range f.When {
			if _, ok := owner[sym]; !ok {
				return fmt.Errorf("%w: feature %s depends on unknown capability %s",
					ErrDeclaration, f.Name, sym)
			}
		}
	}

	tags := map[string]bool{}
	for _, t := range c.Targets {
		if t.Tag == "" {
			return fmt.Errorf("%w: target %q has no build tag", ErrDeclaration, t.Name)
		}
		if tags[t.Tag] {
			return fmt.Errorf("%w: build tag %s used twice", ErrDeclaration, t.Tag)
		}
		tags[t.Tag] = true
	}
	return nil
}
