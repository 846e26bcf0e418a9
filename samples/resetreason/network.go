//go:build tinygo && (nrf5340_app || nrf5340_net)

package main

import "nrfreset/src/hardware/resetreason"

func explain(cause resetreason.Cause) {
	if cause.Has(resetreason.NetworkWatchdog) {
		println("network core watchdog fired")
	}
	if cause.Has(resetreason.NetworkSoftReset) {
		println("network core soft reset")
	}
}
