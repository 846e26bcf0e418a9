//go:build !tinygo

package resetreason

// latch records causes the way a reset would.
func latch(c Cause) {
	simulated.Or(uint32(c))
}
