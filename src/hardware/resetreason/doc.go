// Package resetreason reports why the chip last reset and acknowledges
// those causes.
//
// The reset reason lives in one of two registers, POWER.RESETREAS or
// RESET.RESETREAS, depending on the chip. Which one, and which optional
// causes it records, is fixed by the build tag of the target (nrf52840,
// nrf5340_app, ...). Each target gets a generated file declaring the same
// Go names at that target's bit positions, so code written against
// ResetPin or Lockup builds unchanged everywhere. A cause the target does
// not record is not declared: using it is a compile error. Check the Has*
// constants to see what a target offers, and put code that names optional
// causes in files with matching build tags.
//
// The register is cumulative. Bits stay set across resets until Clear
// removes them, and a value with no bits set (PowerOn) means the reset
// came from the power-on or brown-out reset generator. Get and Clear do
// no locking; a read-then-clear that must not lose a cause raised in
// between needs interrupts disabled around it.
//
// Outside TinyGo the register is simulated, so the package and its tests
// build on the host with a target tag:
//
//	go test -tags nrf52840 ./src/hardware/resetreason
package resetreason

//go:generate go run nrfreset/src/tools/chipdecl/cmd/resetgen -o .
