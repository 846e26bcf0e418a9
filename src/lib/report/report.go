// Package report is the one-line text form firmware uses to tell a host
// why it reset:
//
//	resetreas target=nrf52840 raw=0x0000000a
//
// Append has no allocations and no fmt dependency so it can run on the
// device; Parse is for the host.
package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const Prefix = "resetreas"

var (
	ErrNotReport = errors.New("not a reset reason report")
	ErrMalformed = errors.New("malformed reset reason report")
)

// Line is one parsed report.
type Line struct {
	Target string
	Raw    uint32
}

const hexDigits = "0123456789abcdef"

// Append formats a report line, without newline, onto dst.
func Append(dst []byte, target string, raw uint32) []byte {
	dst = append(dst, Prefix...)
	dst = append(dst, " target="...)
	dst = append(dst, target...)
	dst = append(dst, " raw=0x"...)
	for shift := 28; shift >= 0; shift -= 4 {
		dst = append(dst, hexDigits[(raw>>uint(shift))&0xf])
	}
	return dst
}

func (l Line) String() string {
	return string(Append(nil, l.Target, l.Raw))
}

// Parse reads a report line. Lines from other console output give
// ErrNotReport; a line with the prefix but missing or bad fields gives
// ErrMalformed. Keys it does not know are skipped.
func Parse(s string) (Line, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || fields[0] != Prefix {
		return Line{}, ErrNotReport
	}
	var l Line
	haveRaw := false
	for _, f := range fields[1:] {
		key, value, ok := strings.Cut(f, "=")
		if !ok {
			return Line{}, fmt.Errorf("%w: field %q", ErrMalformed, f)
		}
		switch key {
		case "target":
			l.Target = value
		case "raw":
			v, err := strconv.ParseUint(value, 0, 32)
			if err != nil {
				return Line{}, fmt.Errorf("%w: raw %q: %v", ErrMalformed, value, err)
			}
			l.Raw = uint32(v)
			haveRaw = true
		}
	}
	if l.Target == "" || !haveRaw {
		return Line{}, fmt.Errorf("%w: need target and raw in %q", ErrMalformed, s)
	}
	return l, nil
}
