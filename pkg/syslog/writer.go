package syslog

import (
	"strings"
)

// Writer is an io.Writer that logs every chunk written to it at a fixed
// facility|level priority.
type Writer struct {
	logger   *Logger
	priority Value
}

// NewWriter returns a Writer logging through l at facility|level.
func NewWriter(l *Logger, level, facility Value) (*Writer, error) {
	code, err := l.levelCode(level)
	if err != nil {
		return nil, err
	}
	fac := ResolveFacility(facility)
	if l.strict && !fac.IsNumeric() && !fac.IsZero() {
		return nil, unknownFacility(facility)
	}
	return &Writer{
		logger:   l,
		priority: Numeric(fac.Code()&facilityMask | code&severityMask),
	}, nil
}

// Write logs p as one message. A single trailing newline is dropped since
// every rendered line already ends in one.
func (w *Writer) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")
	if err := w.logger.Log(w.priority, msg); err != nil {
		return 0, err
	}
	return len(p), nil
}
