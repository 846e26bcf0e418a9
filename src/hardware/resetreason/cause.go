package resetreason

import (
	"strconv"
	"strings"
)

// Cause is one reset cause, or several of them ORed together as Get
// returns them and Clear accepts them.
type Cause uint32

// PowerOn is the empty set. RESETREAS has no bit for the power-on and
// brown-out reset generator; a reset from it leaves every bit clear.
const PowerOn Cause = 0

// RegisterFamily says which peripheral holds RESETREAS.
type RegisterFamily uint8

const (
	FamilyPower RegisterFamily = iota + 1 //POWER.RESETREAS
	FamilyReset                           //RESET.RESETREAS
)

func (f RegisterFamily) String() string {
	switch f {
	case FamilyPower:
		return "POWER"
	case FamilyReset:
		return "RESET"
	}
	return "RegisterFamily(" + strconv.Itoa(int(f)) + ")"
}

type causeName struct {
	cause Cause
	name  string
}

// Has reports whether every cause in mask is set in c.
func (c Cause) Has(mask Cause) bool {
	return mask != 0 && c&mask == mask
}

// IsPowerOn reports whether no cause is recorded at all.
func (c Cause) IsPowerOn() bool {
	return c == PowerOn
}

// Unknown returns the bits of c this target does not define.
func (c Cause) Unknown() Cause {
	return c &^ AllCauses
}

// Each calls fn for every known cause in c, lowest bit first.
func (c Cause) Each(fn func(Cause)) {
	for _, n := range causeNames {
		if c&n.cause != 0 {
			fn(n.cause)
		}
	}
}

// String names the causes in c, e.g. "Watchdog|Lockup". Bits this target
// does not define are printed in hex at the end.
func (c Cause) String() string {
	if c == PowerOn {
		return "PowerOn"
	}
	var b strings.Builder
	for _, n := range causeNames {
		if c&n.cause == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(n.name)
	}
	if rest := c.Unknown(); rest != 0 {
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString("0x")
		b.WriteString(strconv.FormatUint(uint64(rest), 16))
	}
	return b.String()
}
