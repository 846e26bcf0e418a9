package chipdecl

// CatalogDef is one declaration file: the register families, the optional
// features and every target that can be built.
type CatalogDef struct {
	Package  string        `yaml:"package"`
	Families []*FamilyDef  `yaml:"families"`
	Features []*FeatureDef `yaml:"features"`
	Targets  []*TargetDef  `yaml:"targets"`

	SourceFilename string `yaml:"-"` //set by the loader
}

// FamilyDef is a register layout. Selector is the capability symbol that
// puts a target in this family, Capabilities are the symbols only this
// family may declare.
type FamilyDef struct {
	Name         string      `yaml:"name"`
	GoName       string      `yaml:"goName"`
	Peripheral   string      `yaml:"peripheral"`
	Register     string      `yaml:"register"`
	Selector     string      `yaml:"selector"`
	Capabilities []string    `yaml:"capabilities"`
	Causes       []*CauseDef `yaml:"causes"`
}

type CauseDef struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Bit         *int       `yaml:"bit"`     //nil when every target must place it
	Feature     string     `yaml:"feature"` //empty means always present
	Aliases     []AliasDef `yaml:"aliases"`
}

type AliasDef struct {
	Name       string `yaml:"name"`
	Deprecated string `yaml:"deprecated"`
}

type FeatureDef struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	When        []string `yaml:"when"`
}

// GoName is the name of the generated feature flag.
func (f *FeatureDef) GoName() string {
	return "Has" + f.Name
}

type TargetDef struct {
	Name         string         `yaml:"name"`
	Tag          string         `yaml:"tag"`
	Address      uint32         `yaml:"address"`
	Capabilities []string       `yaml:"capabilities"`
	Bits         map[string]int `yaml:"bits"` //cause name -> bit, overrides the family layout
}

// RegisterBits is the width of RESETREAS on every family.
const RegisterBits = 32
