//go:build tinygo

// Reports why the chip last reset, once a second, in the line format
// resetmon understands. Flash with e.g.
//
//	tinygo flash -target=pca10056 -tags nrf52840 ./samples/resetreason
package main

import (
	"runtime/interrupt"
	"time"

	"nrfreset/src/hardware/resetreason"
	"nrfreset/src/lib/report"
)

func main() {
	// read and clear as one step so a reset between the two is not lost
	state := interrupt.Disable()
	cause := resetreason.Get()
	resetreason.Clear(cause)
	interrupt.Restore(state)

	var line [64]byte
	for {
		println(string(report.Append(line[:0], resetreason.Target, uint32(cause))))
		if cause.IsPowerOn() {
			println("power-on or brown-out reset")
		}
		if cause.Has(resetreason.Watchdog) {
			println("watchdog fired")
		}
		explain(cause)
		time.Sleep(time.Second)
	}
}
