package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"nrfreset/src/lib/trust"
	"nrfreset/src/tools/chipdecl"
)

var targetFlag = flag.String("t", "", "target build tag, e.g. nrf52840")
var listFlag = flag.Bool("list", false, "print the target's feature flags and causes")
var catalogFlag = flag.String("catalog", "", "catalog yaml (default: built in)")

func main() {
	flag.Parse()
	trust.SetOutput(os.Stderr, "resetdecode: ")
	if *targetFlag == "" {
		fmt.Fprintf(os.Stderr, "usage: resetdecode -t <target> [-list] [value ...]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	def, err := chipdecl.LoadOrDefault(*catalogFlag)
	if err != nil {
		trust.Fatalf(1, "%v", err)
	}
	c, err := def.Resolve(*targetFlag)
	if err != nil {
		trust.Fatalf(1, "%v", err)
	}

	if *listFlag {
		list(os.Stdout, c)
		return
	}
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			if err := decode(os.Stdout, c, arg); err != nil {
				trust.Fatalf(1, "%v", err)
			}
		}
		return
	}
	if err := interactive(c); err != nil {
		trust.Fatalf(1, "%v", err)
	}
}

func decode(w io.Writer, c *chipdecl.Catalog, text string) error {
	raw, err := strconv.ParseUint(strings.TrimSpace(text), 0, 32)
	if err != nil {
		return fmt.Errorf("%q is not a 32 bit value: %w", text, err)
	}
	fmt.Fprintln(w, c.Decode(uint32(raw)))
	return nil
}

func list(w io.Writer, c *chipdecl.Catalog) {
	fmt.Fprintf(w, "%s: %s.%s at 0x%08x\n", c.Target.Name, c.Family.Peripheral, c.Family.Register, c.Target.Address)
	for _, f := range c.Features {
		fmt.Fprintf(w, "  %-26s %v\n", f.GoName, f.Enabled)
	}
	for _, cause := range c.Causes {
		if cause.IsAlias() {
			fmt.Fprintf(w, "  0x%08x %s (alias of %s)\n", cause.Mask(), cause.Name, cause.AliasOf)
			continue
		}
		fmt.Fprintf(w, "  0x%08x %s\n", cause.Mask(), cause.Name)
	}
}

func interactive(c *chipdecl.Catalog) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          c.Target.Tag + "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			return nil
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "list":
			list(rl.Stdout(), c)
			continue
		case "help", "?":
			fmt.Fprintln(rl.Stdout(), "enter a RESETREAS value (0x..., 0b... or decimal), list, or exit")
			continue
		case "quit", "exit":
			return nil
		}
		if err := decode(rl.Stdout(), c, line); err != nil {
			fmt.Fprintln(rl.Stderr(), err)
		}
	}
}
