package syslog

import (
	"fmt"
)

// Mask is a set of permitted levels: bit N set lets level N through.
type Mask int

const (
	// NoMask asks SetLogMask for nothing. The mask is left alone and
	// QueryPlaceholder is returned instead of the mask in effect.
	NoMask Mask = -1

	// QueryPlaceholder is what SetLogMask answers to NoMask.
	QueryPlaceholder Mask = 0xff

	// DefaultMask lets INFO and everything more severe through.
	DefaultMask = Mask(1<<(Info+1) - 1)
)

// MaskExact returns the mask permitting only level. Levels outside 0-7 are
// not checked and give an unusable mask.
func MaskExact(level int) Mask {
	return Mask(1) << uint(level)
}

// MaskUpTo returns the mask permitting level and every more severe level.
func MaskUpTo(level int) Mask {
	return Mask(1)<<uint(level+1) - 1
}

// Passes reports whether level is permitted by mask.
func Passes(level int, mask Mask) bool {
	return mask&MaskExact(level) != 0
}

// Allows is Passes with the receiver as the mask.
func (m Mask) Allows(level int) bool {
	return Passes(level, m)
}

func (m Mask) String() string {
	return fmt.Sprintf("%#02x", int(m))
}
