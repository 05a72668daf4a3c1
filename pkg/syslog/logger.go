package syslog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Logger is a syslog-style logger writing to a local sink. The zero value
// is not usable; create one with New.
//
// All state (mask, ident, facility, options) is guarded by one mutex, so a
// Logger may be shared between goroutines.
type Logger struct {
	mu        sync.Mutex
	ident     string
	facility  Value
	options   Option
	opened    bool
	mask      Mask
	strict    bool
	out       io.Writer
	formatter Formatter
	now       func() time.Time
}

// LoggerOption configures a Logger.
type LoggerOption func(*Logger)

// WithOutput sets the sink lines are written to. Defaults to os.Stdout.
func WithOutput(w io.Writer) LoggerOption {
	return func(l *Logger) {
		l.out = w
	}
}

// WithFormatter sets the line formatter. Defaults to TextFormatter.
func WithFormatter(f Formatter) LoggerOption {
	return func(l *Logger) {
		l.formatter = f
	}
}

// WithStrict makes unknown names and out-of-range levels errors instead of
// passing them through.
func WithStrict(strict bool) LoggerOption {
	return func(l *Logger) {
		l.strict = strict
	}
}

// WithMask sets the initial mask. Defaults to DefaultMask.
func WithMask(m Mask) LoggerOption {
	return func(l *Logger) {
		l.mask = m
	}
}

// New returns a Logger with no identity and the default mask.
func New(options ...LoggerOption) *Logger {
	l := &Logger{
		mask:      DefaultMask,
		out:       os.Stdout,
		formatter: TextFormatter{},
		now:       time.Now,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// Open sets the identity and default facility written with every line.
// The options are stored but do not change the text output.
func (l *Logger) Open(ident string, options Option, facility Value) error {
	resolved := ResolveFacility(facility)
	if l.strict && !resolved.IsNumeric() && !resolved.IsZero() {
		return unknownFacility(facility)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.ident = ident
	l.options = options
	l.facility = resolved
	l.opened = true
	return nil
}

// Opened reports whether Open has been called.
func (l *Logger) Opened() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.opened
}

// Close exists for API parity. It has no effect; identity stays set.
func (l *Logger) Close() error {
	return nil
}

// Log writes msg at level if the current mask permits it. level may be a
// level name, a level code or a full facility|level priority word.
func (l *Logger) Log(level Value, msg string) error {
	p, err := l.priority(level)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.mask.Allows(p.Level()) {
		return nil
	}

	entry := &Entry{
		Priority:  p,
		Ident:     l.ident,
		Level:     LevelName(p.Level()),
		Options:   l.options,
		Message:   msg,
		Timestamp: l.now(),
	}
	if name := FacilityName(p.Facility()); p.Facility() != 0 && name != "" {
		entry.Facility = name
	} else {
		entry.Facility, entry.Priority = l.contextFacility(p)
	}

	line, err := l.formatter.Format(entry)
	if err != nil {
		return errors.Wrap(err, "format log line")
	}
	if _, err := l.out.Write(line); err != nil {
		return errors.Wrap(err, "write log line")
	}
	return nil
}

// contextFacility returns the facility set by Open for rendering and the
// priority word carrying it. An unrecognised facility name is shown as given
// and encoded as User.
func (l *Logger) contextFacility(p Priority) (string, Priority) {
	level := Priority(p.Level())
	switch {
	case l.facility.IsZero():
		return "", User | level
	case l.facility.IsNumeric():
		return FacilityName(l.facility.Code()), Priority(l.facility.Code()&facilityMask) | level
	default:
		return DisplayName(l.facility.Name()), User | level
	}
}

func (l *Logger) priority(level Value) (Priority, error) {
	resolved := ResolveLevel(level)
	if !resolved.IsNumeric() && l.strict {
		return 0, unknownLevel(level)
	}
	p := Priority(resolved.Code())
	if l.strict && !p.valid() {
		return 0, errors.Wrapf(ErrLevelOutOfRange, "priority %d", int(p))
	}
	return p, nil
}

// LogThen logs msg and then calls done, whether or not the message passed
// the mask. done may be nil.
func (l *Logger) LogThen(level Value, msg string, done func()) error {
	err := l.Log(level, msg)
	if done != nil {
		done()
	}
	return err
}

func sprintf(format string, args []interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

func (l *Logger) logf(p Priority, format string, args []interface{}) error {
	return l.Log(Numeric(int(p)), sprintf(format, args))
}

// Emerg logs at Emergency.
func (l *Logger) Emerg(format string, args ...interface{}) error {
	return l.logf(Emergency, format, args)
}

// Alert logs at Alert.
func (l *Logger) Alert(format string, args ...interface{}) error {
	return l.logf(Alert, format, args)
}

// Crit logs at Crit.
func (l *Logger) Crit(format string, args ...interface{}) error {
	return l.logf(Crit, format, args)
}

// Err logs at Error.
func (l *Logger) Err(format string, args ...interface{}) error {
	return l.logf(Error, format, args)
}

// Error is Err.
func (l *Logger) Error(format string, args ...interface{}) error {
	return l.logf(Error, format, args)
}

// Warn logs at Warning.
func (l *Logger) Warn(format string, args ...interface{}) error {
	return l.logf(Warning, format, args)
}

// Warning is Warn.
func (l *Logger) Warning(format string, args ...interface{}) error {
	return l.logf(Warning, format, args)
}

// Note logs at Notice.
func (l *Logger) Note(format string, args ...interface{}) error {
	return l.logf(Notice, format, args)
}

// Notice is Note.
func (l *Logger) Notice(format string, args ...interface{}) error {
	return l.logf(Notice, format, args)
}

// Info logs at Info.
func (l *Logger) Info(format string, args ...interface{}) error {
	return l.logf(Info, format, args)
}

// Debug logs at Debug.
func (l *Logger) Debug(format string, args ...interface{}) error {
	return l.logf(Debug, format, args)
}

// SetLogMask replaces the mask and returns the one in effect before.
// A zero mask changes nothing and returns the current mask. NoMask changes
// nothing and returns QueryPlaceholder.
func (l *Logger) SetLogMask(mask Mask) Mask {
	if mask == NoMask {
		return QueryPlaceholder
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.setLogMaskLocked(mask)
}

// setLogMaskLocked is SetLogMask for callers holding l.mu.
func (l *Logger) setLogMaskLocked(mask Mask) Mask {
	prev := l.mask
	if mask != 0 {
		l.mask = mask
	}
	return prev
}

// CurrentMask returns the mask in effect without changing it. The mask is
// read by setting and restoring it under one lock, so a concurrent
// SetLogMask is never overwritten.
func (l *Logger) CurrentMask() Mask {
	l.mu.Lock()
	defer l.mu.Unlock()
	old := l.setLogMaskLocked(0)
	l.setLogMaskLocked(old)
	return old
}

// Upto permits level and everything more severe, returning the previous
// mask.
func (l *Logger) Upto(level Value) (Mask, error) {
	return l.SetMask(level, true)
}

// SetMask sets an exact-level mask, or an up-to-level mask when upTo is
// set, and returns the previous mask.
func (l *Logger) SetMask(level Value, upTo bool) (Mask, error) {
	code, err := l.levelCode(level)
	if err != nil {
		return 0, err
	}
	if upTo {
		return l.SetLogMask(MaskUpTo(code)), nil
	}
	return l.SetLogMask(MaskExact(code)), nil
}

func (l *Logger) levelCode(level Value) (int, error) {
	resolved := ResolveLevel(level)
	if !l.strict {
		return resolved.Code(), nil
	}
	if !resolved.IsNumeric() {
		return 0, unknownLevel(level)
	}
	if err := CheckLevel(resolved.Code()); err != nil {
		return 0, err
	}
	return resolved.Code(), nil
}
