//go:build !tinygo

package resetreason

import "sync/atomic"

// simulated stands in for RESETREAS on the host. Bits latch on like the
// hardware's and stay until cleared.
var simulated atomic.Uint32

func readRaw() uint32 {
	return simulated.Load()
}

func clearRaw(mask uint32) {
	simulated.And(^mask)
}
