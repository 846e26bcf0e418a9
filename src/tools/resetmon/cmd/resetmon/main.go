package main

import (
	"flag"
	"fmt"
	"os"

	tty "github.com/mattn/go-tty"

	"nrfreset/src/lib/eventlog"
	"nrfreset/src/lib/trust"
	"nrfreset/src/tools/chipdecl"
	"nrfreset/src/tools/resetmon"
)

var helpFlag = flag.Bool("h", false, "get usage info")
var devFlag = flag.String("p", "", "device tty the firmware prints its reset report on")
var logFlag = flag.String("log", "", "append every reset seen to this CBOR event log")
var replayFlag = flag.String("replay", "", "print the events in a CBOR event log and exit")
var catalogFlag = flag.String("catalog", "", "catalog yaml (default: built in)")
var verboseFlag = flag.Bool("v", false, "debug output")

func main() {
	flag.Parse()
	trust.SetOutput(os.Stderr, "resetmon: ")
	if *verboseFlag {
		trust.SetLevel(trust.Default | trust.DebugMask)
	}
	if *helpFlag {
		usage()
	}
	if *replayFlag != "" {
		if err := replay(*replayFlag); err != nil {
			trust.Fatalf(1, "%v", err)
		}
		return
	}
	if *devFlag == "" {
		usage()
	}

	def, err := chipdecl.LoadOrDefault(*catalogFlag)
	if err != nil {
		trust.Fatalf(1, "%v", err)
	}

	var enc interface{ Encode(any) error }
	if *logFlag != "" {
		fp, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			trust.Fatalf(1, "opening event log: %v", err)
		}
		defer fp.Close()
		enc = eventlog.NewEncoder(fp)
	}

	ttyObj, err := tty.OpenDevice(*devFlag)
	if err != nil {
		trust.Fatalf(1, "opening %s: %v", *devFlag, err)
	}
	defer ttyObj.Close()
	restore := ttyObj.MustRaw()
	defer restore()

	sink := func(e eventlog.Event) error {
		fmt.Println(resetmon.Describe(e))
		if enc == nil {
			return nil
		}
		return enc.Encode(e)
	}
	trust.Infof("watching %s", *devFlag)
	if err := resetmon.Watch(ttyObj.Input(), *devFlag, resetmon.NewDecoder(def), sink); err != nil {
		trust.Errorf("%v", err)
	}
}

func replay(path string) error {
	fp, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	events, err := eventlog.ReadAll(fp)
	for _, e := range events {
		fmt.Println(resetmon.Describe(e))
	}
	return err
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: resetmon -p <device tty> [-log events.cbor] [-catalog nrf.yaml]\n")
	fmt.Fprintf(os.Stderr, "       resetmon -replay events.cbor\n")
	flag.PrintDefaults()
	os.Exit(1)
}
