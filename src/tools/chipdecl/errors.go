package chipdecl

import "errors"

var (
	ErrDeclaration       = errors.New("invalid catalog declaration")
	ErrUnknownTarget     = errors.New("unknown target")
	ErrUnknownCapability = errors.New("unrecognized capability symbol")
	ErrContradictory     = errors.New("contradictory capabilities")
	ErrMissingBit        = errors.New("cause has no bit position")
	ErrBitRange          = errors.New("bit position outside the register")
	ErrBitOverlap        = errors.New("causes share a bit")
)
