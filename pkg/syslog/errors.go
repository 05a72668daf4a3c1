package syslog

import (
	"github.com/pkg/errors"
)

// Errors reported in strict mode. They are wrapped with the offending input;
// use errors.Cause to compare.
var (
	ErrUnknownLevelName    = errors.New("unknown level name")
	ErrUnknownFacilityName = errors.New("unknown facility name")
	ErrLevelOutOfRange     = errors.New("level out of range")
)

// CheckLevel returns ErrLevelOutOfRange unless level is within 0-7.
func CheckLevel(level int) error {
	if level < int(Emergency) || level > int(Debug) {
		return errors.Wrapf(ErrLevelOutOfRange, "level %d", level)
	}
	return nil
}

func unknownLevel(v Value) error {
	return errors.Wrapf(ErrUnknownLevelName, "level %q", v.Name())
}

func unknownFacility(v Value) error {
	return errors.Wrapf(ErrUnknownFacilityName, "facility %q", v.Name())
}
