package chipdecl

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
)

var funcMap = template.FuncMap{
	"hex32": func(v uint32) string { return fmt.Sprintf("0x%08x", v) },
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
	"base":  filepath.Base,
	"orTags": func(tags []string) string {
		return strings.Join(tags, " || ")
	},
	"union": func(causes []Cause) string {
		names := []string{}
		for _, c := range causes {
			if !c.IsAlias() {
				names = append(names, c.Name)
			}
		}
		return strings.Join(names, " |\n\t")
	},
}

var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	headerTmpl + targetTmpl + unsupportedTmpl,
))

const headerTmpl = `
{{define "header"}}// Code generated by resetgen from {{base .}}; DO NOT EDIT.
{{end}}`

const targetTmpl = `
{{define "target"}}{{template "header" .Source}}
//go:build {{.Target.Tag}}

package {{.Package}}

// Target is the build tag this catalog was generated for ({{.Target.Name}}).
const Target = {{quote .Target.Tag}}

// Family is the register family recording the reset reason on {{.Target.Name}}.
const Family = {{.Family.GoName}}

// registerAddress is {{.Family.Peripheral}}.{{.Family.Register}}.
const registerAddress = {{hex32 .Target.Address}}

// Optional features of {{.Target.Name}}. A cause gated by a feature that is
// false here is not declared at all.
const (
{{- range .Features}}
	// {{.GoName}} is true when {{.Description}}
	{{.GoName}} = {{.Enabled}}
{{- end}}
)

// Reset causes recorded by {{.Target.Name}}.
const (
{{- range .Causes}}
{{- if .IsAlias}}
	// {{.Name}} is an alias of {{.AliasOf}}.
{{- if .Deprecated}}
	//
	// Deprecated: {{.Deprecated}}
{{- end}}
	{{.Name}} = {{.AliasOf}}
{{- else}}
	// {{.Name}} {{.Description}}
	{{.Name}} Cause = {{hex32 .Mask}}
{{- end}}
{{- end}}
)

// AllCauses is the union of every cause {{.Target.Name}} records.
const AllCauses = {{union .Causes}}

var causeNames = [...]causeName{
{{- range .Causes}}{{if not .IsAlias}}
	{ {{- .Name}}, {{quote .Name -}} },
{{- end}}{{end}}
}
{{end}}`

const unsupportedTmpl = `
{{define "unsupported"}}{{template "header" .Source}}
//go:build !({{orTags .Tags}})

package {{.Package}}

// No register layout is assumed: build with exactly one of the target tags
// above.
var _ = resetreasonNeedsATargetBuildTag
{{end}}`

type unsupportedData struct {
	Source  string
	Package string
	Tags    []string
}

// GenerateTarget renders the Go source for one resolved target. The output
// is not formatted.
func GenerateTarget(c *Catalog) (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, "target", c); err != nil {
		return "", fmt.Errorf("template target %s: %w", c.Target.Tag, err)
	}
	return b.String(), nil
}

// GenerateUnsupported renders the file that breaks the build when no
// declared target tag is set.
func GenerateUnsupported(def *CatalogDef) (string, error) {
	var b strings.Builder
	data := unsupportedData{
		Source:  def.SourceFilename,
		Package: def.Package,
		Tags:    def.Tags(),
	}
	if err := templates.ExecuteTemplate(&b, "unsupported", data); err != nil {
		return "", fmt.Errorf("template unsupported: %w", err)
	}
	return b.String(), nil
}

// TargetFilename is the name of the generated file for a build tag.
func TargetFilename(tag string) string {
	return "zz_" + tag + "_gen.go"
}

// UnsupportedFilename is the name of the generated guard file.
const UnsupportedFilename = "zz_unsupported_gen.go"
