package resetreason

// Get returns RESETREAS as is. Bits accumulate over resets until cleared.
func Get() Cause {
	return Cause(readRaw())
}

// Clear acknowledges the causes in mask. Other bits are left alone, and
// bits the target does not implement are ignored by the hardware.
func Clear(mask Cause) {
	clearRaw(uint32(mask))
}
