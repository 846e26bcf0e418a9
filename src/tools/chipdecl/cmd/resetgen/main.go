package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"nrfreset/src/lib/trust"
	"nrfreset/src/tools/chipdecl"
)

var catalog = flag.String("catalog", "", "catalog yaml (default: the catalog built into chipdecl)")
var outdir = flag.String("o", ".", "directory to write the generated files into")
var only = flag.String("t", "", "generate only this target tag")
var dump = flag.Bool("d", false, "dump the resolved catalog to stdout instead of writing files")
var verbose = flag.Bool("v", false, "debug output")

func main() {
	flag.Parse()
	trust.SetOutput(os.Stderr, "resetgen: ")
	if *verbose {
		trust.SetLevel(trust.Default | trust.DebugMask)
	}

	def, err := chipdecl.LoadOrDefault(*catalog)
	if err != nil {
		trust.Fatalf(1, "%v", err)
	}
	if err := run(def); err != nil {
		trust.Fatalf(1, "%v", err)
	}
}

func run(def *chipdecl.CatalogDef) error {
	// resolve everything first, a bad target must not leave a half written package
	var all []*chipdecl.Catalog
	if *only != "" {
		c, err := def.Resolve(*only)
		if err != nil {
			return err
		}
		all = append(all, c)
	} else {
		var err error
		all, err = def.ResolveAll()
		if err != nil {
			return err
		}
	}
	if *dump {
		for _, c := range all {
			dumpCatalog(c)
		}
		return nil
	}

	for _, c := range all {
		trust.Debugf("%s: %s family, %d causes", c.Target.Tag, c.Family.Name, len(c.Primaries()))
		code, err := chipdecl.GenerateTarget(c)
		if err != nil {
			return err
		}
		if err := writeFormatted(filepath.Join(*outdir, chipdecl.TargetFilename(c.Target.Tag)), code); err != nil {
			return err
		}
	}
	if *only != "" {
		return nil
	}
	code, err := chipdecl.GenerateUnsupported(def)
	if err != nil {
		return err
	}
	return writeFormatted(filepath.Join(*outdir, chipdecl.UnsupportedFilename), code)
}

// writeFormatted runs goimports over code and writes it to path. On failure
// the unformatted text is kept next to it for debugging the templates.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return err
	}
	trust.Infof("wrote %s", path)
	return nil
}

func dumpCatalog(c *chipdecl.Catalog) {
	fmt.Printf("%s (%s) family=%s register=%s.%s @ 0x%08x\n", c.Target.Tag, c.Target.Name,
		c.Family.Name, c.Family.Peripheral, c.Family.Register, c.Target.Address)
	for _, f := range c.Features {
		fmt.Printf("  %-26s %v\n", f.GoName, f.Enabled)
	}
	for _, cause := range c.Causes {
		if cause.IsAlias() {
			fmt.Printf("  bit %2d %s -> %s\n", cause.Bit, cause.Name, cause.AliasOf)
			continue
		}
		fmt.Printf("  bit %2d %s\n", cause.Bit, cause.Name)
	}
}
