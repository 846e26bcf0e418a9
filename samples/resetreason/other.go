//go:build tinygo && !(nrf5340_app || nrf5340_net)

package main

import "nrfreset/src/hardware/resetreason"

func explain(cause resetreason.Cause) {
	if cause.Has(resetreason.SoftReset) {
		println("soft reset")
	}
	if u := cause.Unknown(); u != 0 {
		println("bits this target does not document:", uint32(u))
	}
}
