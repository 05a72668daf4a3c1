package syslog

import (
	"strings"

	"github.com/pkg/errors"
)

// ParsePriority parses "facility.level" notation, e.g. "local0.err" or
// "LOG_DAEMON.LOG_WARNING". A bare level uses the User facility.
func ParsePriority(s string) (Priority, error) {
	facility, level := "user", s
	if i := strings.LastIndex(s, "."); i >= 0 {
		facility, level = s[:i], s[i+1:]
	}
	lv, ok := Levels.Code(level)
	if !ok {
		return 0, errors.Wrapf(ErrUnknownLevelName, "priority %q: level %q", s, level)
	}
	fac, ok := Facilities.Code(facility)
	if !ok {
		return 0, errors.Wrapf(ErrUnknownFacilityName, "priority %q: facility %q", s, facility)
	}
	return Priority(fac | lv), nil
}

// String renders p in "facility.level" notation.
func (p Priority) String() string {
	facility := FacilityName(p.Facility())
	if facility == "" {
		facility = "user"
	}
	return facility + "." + LevelName(p.Level())
}
