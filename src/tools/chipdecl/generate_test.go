package chipdecl

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/imports"
)

// the package the checked-in output lives in, relative to this directory
var generatedDir = filepath.Join("..", "..", "hardware", "resetreason")

// squeeze collapses the alignment gofmt puts into const blocks.
func squeeze(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.Join(strings.Fields(l), " ")
	}
	return strings.Join(lines, "\n")
}

func mustContain(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(squeeze(output), want) {
		t.Errorf("output does not contain %q", want)
	}
}

func mustNotContain(t *testing.T, output, unwanted string) {
	t.Helper()
	if strings.Contains(squeeze(output), unwanted) {
		t.Errorf("output unexpectedly contains %q", unwanted)
	}
}

func generate(t *testing.T, def *CatalogDef, tag string) string {
	t.Helper()
	c, err := def.Resolve(tag)
	require.NoError(t, err)
	code, err := GenerateTarget(c)
	require.NoError(t, err)
	formatted, err := imports.Process(TargetFilename(tag), []byte(code), nil)
	require.NoError(t, err, "generated code must be valid Go:\n%s", code)
	return string(formatted)
}

func TestGenerateTargetHeader(t *testing.T) {
	def := mustParse(t, miniCatalog)
	def.SourceFilename = "testdata/mini.yaml"
	out := generate(t, def, "chipa")

	mustContain(t, out, "// Code generated by resetgen from mini.yaml; DO NOT EDIT.")
	mustContain(t, out, "//go:build chipa\n")
	mustContain(t, out, "package resetreason")
	mustContain(t, out, `const Target = "chipa"`)
	mustContain(t, out, "const Family = FamilyA")
	mustContain(t, out, "const registerAddress = 0x40000400")
}

func TestGenerateFeatureFlags(t *testing.T) {
	def := mustParse(t, miniCatalog)

	out := generate(t, def, "chipa")
	mustContain(t, out, "HasExtra = false")
	mustContain(t, out, "HasMoved = false")
	mustNotContain(t, out, "Extra Cause")

	out = generate(t, def, "chipaplus")
	mustContain(t, out, "HasExtra = true")
	mustContain(t, out, "Extra Cause = 0x00000010")
}

func TestGenerateCauses(t *testing.T) {
	def := mustParse(t, miniCatalog)
	out := generate(t, def, "chipb")

	mustContain(t, out, "// ResetPin reports a pin reset.")
	mustContain(t, out, "ResetPin Cause = 0x00000001")
	mustContain(t, out, "WatchdogTimer0 Cause = 0x00000002")
	mustContain(t, out, "// Watchdog is an alias of WatchdogTimer0.")
	mustContain(t, out, "Watchdog = WatchdogTimer0")
	mustContain(t, out, "Moved Cause = 0x00000080")
	mustContain(t, out, `{WatchdogTimer0, "WatchdogTimer0"},`)
	mustNotContain(t, out, `{Watchdog, "Watchdog"}`)
}

func TestGenerateDeprecatedAlias(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)
	out := generate(t, def, "nrf5340_app")

	mustContain(t, out, "SoftResetRequest = SoftReset")
	mustContain(t, out, "// Deprecated: use SoftReset.")
	mustContain(t, out, "NetworkCpuLockup Cause = 0x00000200")
}

func TestGenerateUnsupported(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)
	code, err := GenerateUnsupported(def)
	require.NoError(t, err)
	_, err = parser.ParseFile(token.NewFileSet(), UnsupportedFilename, code, parser.ParseComments)
	require.NoError(t, err)

	mustContain(t, code, "//go:build !(nrf51 || nrf52810 || nrf52 || nrf52833 || nrf52840 || nrf9160 || nrf5340_app || nrf5340_net || nrf54l15)")
	mustContain(t, code, "var _ = resetreasonNeedsATargetBuildTag")
}

// declarations reduces a generated file to its top level const values,
// keyed by name, so formatting differences do not matter.
func declarations(t *testing.T, filename string, src any) (map[string]string, int) {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), filename, src, parser.ParseComments)
	require.NoError(t, err)

	values := map[string]string{}
	names := -1
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, s := range gen.Specs {
			vs, ok := s.(*ast.ValueSpec)
			if !ok || len(vs.Names) != 1 || len(vs.Values) != 1 {
				continue
			}
			if gen.Tok == token.VAR {
				if lit, ok := vs.Values[0].(*ast.CompositeLit); ok && vs.Names[0].Name == "causeNames" {
					names = len(lit.Elts)
				}
				continue
			}
			values[vs.Names[0].Name] = types.ExprString(vs.Values[0])
		}
	}
	return values, names
}

func TestCheckedInFilesMatchGenerator(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)
	all, err := def.ResolveAll()
	require.NoError(t, err)

	for _, c := range all {
		t.Run(c.Target.Tag, func(t *testing.T) {
			path := filepath.Join(generatedDir, TargetFilename(c.Target.Tag))
			onDisk, err := os.ReadFile(path)
			require.NoError(t, err)
			mustContain(t, string(onDisk), "//go:build "+c.Target.Tag+"\n")

			code, err := GenerateTarget(c)
			require.NoError(t, err)
			want, wantNames := declarations(t, "generated.go", code)
			got, gotNames := declarations(t, path, onDisk)
			assert.Equal(t, want, got, "re-run go generate in %s", generatedDir)
			assert.Equal(t, wantNames, gotNames)
			assert.Equal(t, len(c.Primaries()), gotNames)
		})
	}
}

func TestCheckedInFilesMatchCatalog(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)
	all, err := def.ResolveAll()
	require.NoError(t, err)

	for _, c := range all {
		path := filepath.Join(generatedDir, TargetFilename(c.Target.Tag))
		got, _ := declarations(t, path, nil)

		assert.Equal(t, `"`+c.Target.Tag+`"`, got["Target"], path)
		assert.Equal(t, c.Family.GoName, got["Family"], path)
		for _, f := range c.Features {
			want := "false"
			if f.Enabled {
				want = "true"
			}
			assert.Equal(t, want, got[f.GoName], "%s %s", path, f.GoName)
		}
		for _, cause := range c.Causes {
			if cause.IsAlias() {
				assert.Equal(t, cause.AliasOf, got[cause.Name], "%s %s", path, cause.Name)
				continue
			}
			assert.Equal(t, funcMap["hex32"].(func(uint32) string)(cause.Mask()), got[cause.Name],
				"%s %s", path, cause.Name)
		}
	}
}

func TestCheckedInUnsupportedGuard(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)
	onDisk, err := os.ReadFile(filepath.Join(generatedDir, UnsupportedFilename))
	require.NoError(t, err)
	code, err := GenerateUnsupported(def)
	require.NoError(t, err)
	assert.Equal(t, code, string(onDisk))
}
