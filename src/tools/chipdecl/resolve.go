package chipdecl

import (
	"fmt"
	"sort"
	"strings"
)

// Feature is one optional feature flag as it resolved for a target.
type Feature struct {
	Name        string
	GoName      string
	Description string
	Enabled     bool
}

// Cause is a cause, or an alias of one, placed at its bit for a target.
type Cause struct {
	Name        string
	Description string
	Bit         int
	Feature     string //empty when always present
	AliasOf     string //empty for primary names
	Deprecated  string
}

func (c Cause) Mask() uint32 {
	return 1 << uint(c.Bit)
}

func (c Cause) IsAlias() bool {
	return c.AliasOf != ""
}

// Catalog is everything the generator needs for one target: the family it
// landed in, every feature flag and the causes that exist on it, in bit
// order with each alias right after its primary.
type Catalog struct {
	Package  string
	Source   string
	Target   *TargetDef
	Family   *FamilyDef
	Features []Feature
	Causes   []Cause
}

// Tags lists the build tags of every declared target, in declaration order.
func (c *CatalogDef) Tags() []string {
	result := make([]string, 0, len(c.Targets))
	for _, t := range c.Targets {
		result = append(result, t.Tag)
	}
	return result
}

func (c *CatalogDef) target(tag string) (*TargetDef, bool) {
	for _, t := range c.Targets {
		if t.Tag == tag {
			return t, true
		}
	}
	return nil, false
}

// ResolveAll resolves every declared target.
func (c *CatalogDef) ResolveAll() ([]*Catalog, error) {
	result := make([]*Catalog, 0, len(c.Targets))
	for _, t := range c.Targets {
		cat, err := c.Resolve(t.Tag)
		if err != nil {
			return nil, err
		}
		result = append(result, cat)
	}
	return result, nil
}

// Resolve classifies the target with build tag tag: exactly one register
// family, a value for every feature flag, and a bit for every cause that
// exists. Anything ambiguous is an error; there are no defaults.
func (c *CatalogDef) Resolve(tag string) (*Catalog, error) {
	t, ok := c.target(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, tag)
	}

	owner := map[string]*FamilyDef{}
	for _, fam := range c.Families {
		owner[fam.Selector] = fam
		for _, sym := range fam.Capabilities {
			owner[sym] = fam
		}
	}

	declared := map[string]bool{}
	var family *FamilyDef
	for _, sym := range t.Capabilities {
		fam, ok := owner[sym]
		if !ok {
			return nil, fmt.Errorf("%s: %w %s", tag, ErrUnknownCapability, sym)
		}
		declared[sym] = true
		if sym != fam.Selector {
			continue
		}
		if family != nil && family != fam {
			return nil, fmt.Errorf("%s: %w: both %s and %s", tag, ErrContradictory,
				family.Selector, fam.Selector)
		}
		family = fam
	}
	if family == nil {
		selectors := make([]string, 0, len(c.Families))
		for _, fam := range c.Families {
			selectors = append(selectors, fam.Selector)
		}
		return nil, fmt.Errorf("%s: %w: none of %s declared", tag, ErrContradictory,
			strings.Join(selectors, ", "))
	}
	for _, sym := range t.Capabilities {
		if owner[sym] != family {
			return nil, fmt.Errorf("%s: %w: %s belongs to the %s family, target is %s",
				tag, ErrContradictory, sym, owner[sym].Name, family.Name)
		}
	}

	enabled := map[string]bool{}
	features := make([]Feature, 0, len(c.Features))
	for _, f := range c.Features {
		on := false
		for _, sym := range f.When {
			if declared[sym] {
				on = true
				break
			}
		}
		enabled[f.Name] = on
		features = append(features, Feature{
			Name:        f.Name,
			GoName:      f.GoName(),
			Description: f.Description,
			Enabled:     on,
		})
	}

	known := map[string]bool{}
	for _, cause := range family.Causes {
		known[cause.Name] = true
	}
	for name := range t.Bits {
		if !known[name] {
			return nil, fmt.Errorf("%s: %w: bit override for %s, not a %s cause",
				tag, ErrDeclaration, name, family.Name)
		}
	}

	byBit := map[int]string{}
	causes := []Cause{}
	for _, def := range family.Causes {
		if def.Feature != "" && !enabled[def.Feature] {
			continue
		}
		bit, ok := t.Bits[def.Name]
		if !ok {
			if def.Bit == nil {
				return nil, fmt.Errorf("%s: %w: %s", tag, ErrMissingBit, def.Name)
			}
			bit = *def.Bit
		}
		if bit < 0 || bit >= RegisterBits {
			return nil, fmt.Errorf("%s: %w: %s at bit %d", tag, ErrBitRange, def.Name, bit)
		}
		if prev, ok := byBit[bit]; ok {
			return nil, fmt.Errorf("%s: %w: %s and %s at bit %d", tag, ErrBitOverlap,
				prev, def.Name, bit)
		}
		byBit[bit] = def.Name
		causes = append(causes, Cause{
			Name:        def.Name,
			Description: def.Description,
			Bit:         bit,
			Feature:     def.Feature,
		})
		for _, a := range def.Aliases {
			causes = append(causes, Cause{
				Name:       a.Name,
				Bit:        bit,
				Feature:    def.Feature,
				AliasOf:    def.Name,
				Deprecated: a.Deprecated,
			})
		}
	}
	sort.SliceStable(causes, func(i, j int) bool {
		return causes[i].Bit < causes[j].Bit
	})

	return &Catalog{
		Package:  c.Package,
		Source:   c.SourceFilename,
		Target:   t,
		Family:   family,
		Features: features,
		Causes:   causes,
	}, nil
}

// Primaries returns the causes without their aliases.
func (c *Catalog) Primaries() []Cause {
	result := make([]Cause, 0, len(c.Causes))
	for _, cause := range c.Causes {
		if !cause.IsAlias() {
			result = append(result, cause)
		}
	}
	return result
}

// Lookup finds a cause or alias by name.
func (c *Catalog) Lookup(name string) (Cause, bool) {
	for _, cause := range c.Causes {
		if cause.Name == name {
			return cause, true
		}
	}
	return Cause{}, false
}

// All is the union of every cause on the target.
func (c *Catalog) All() uint32 {
	var mask uint32
	for _, cause := range c.Causes {
		mask |= cause.Mask()
	}
	return mask
}

// Enabled reports the value of a feature flag by feature name.
func (c *Catalog) Enabled(feature string) bool {
	for _, f := range c.Features {
		if f.Name == feature {
			return f.Enabled
		}
	}
	return false
}

// Decoded is a raw RESETREAS value split into the target's causes.
type Decoded struct {
	Raw     uint32
	Causes  []string
	Unknown uint32
}

// PowerOn reports the absence of every bit: the reset came from the
// power-on or brown-out reset generator.
func (d Decoded) PowerOn() bool {
	return d.Raw == 0
}

func (d Decoded) String() string {
	if d.PowerOn() {
		return fmt.Sprintf("0x%08x PowerOn", d.Raw)
	}
	parts := append([]string{}, d.Causes...)
	if d.Unknown != 0 {
		parts = append(parts, fmt.Sprintf("unknown=0x%08x", d.Unknown))
	}
	return fmt.Sprintf("0x%08x %s", d.Raw, strings.Join(parts, "|"))
}

// Decode names the bits set in raw, using primary names only.
func (c *Catalog) Decode(raw uint32) Decoded {
	d := Decoded{Raw: raw, Unknown: raw &^ c.All()}
	for _, cause := range c.Primaries() {
		if raw&cause.Mask() != 0 {
			d.Causes = append(d.Causes, cause.Name)
		}
	}
	return d
}
