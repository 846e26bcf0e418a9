//go:build tinygo

package resetreason

import (
	"runtime/volatile"
	"unsafe"
)

var resetreas = (*volatile.Register32)(unsafe.Pointer(uintptr(registerAddress)))

func readRaw() uint32 {
	return resetreas.Get()
}

// RESETREAS is write-one-to-clear, zeros in mask leave their bit alone.
func clearRaw(mask uint32) {
	resetreas.Set(mask)
}
