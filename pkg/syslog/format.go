package syslog

import (
	"bytes"
	"os"
	"strconv"
	"time"

	"code.cloudfoundry.org/rfc5424"
)

// Entry is one accepted message as handed to a Formatter.
type Entry struct {
	Priority  Priority
	Ident     string
	Facility  string
	Level     string
	Options   Option
	Message   string
	Timestamp time.Time
}

// Formatter renders an Entry as one output line, newline included.
type Formatter interface {
	Format(e *Entry) ([]byte, error)
}

// TextFormatter renders
//
//	[syslog][i:<ident>][f:<facility>][l:<level>] <message>
//
// leaving out the ident and facility segments when they are empty.
type TextFormatter struct{}

func (TextFormatter) Format(e *Entry) ([]byte, error) {
	var b bytes.Buffer
	b.Grow(len(e.Message) + 48)
	b.WriteString("[syslog]")
	if e.Ident != "" {
		b.WriteString("[i:")
		b.WriteString(e.Ident)
		b.WriteByte(']')
	}
	if e.Facility != "" {
		b.WriteString("[f:")
		b.WriteString(e.Facility)
		b.WriteByte(']')
	}
	b.WriteString("[l:")
	b.WriteString(e.Level)
	b.WriteString("] ")
	b.WriteString(e.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// RFC5424Formatter renders entries as RFC 5424 messages, one per line.
// The process id is included when the logger was opened with OptionPID.
type RFC5424Formatter struct {
	Hostname string
	UseUTC   bool
}

func (f RFC5424Formatter) Format(e *Entry) ([]byte, error) {
	hostname := f.Hostname
	if hostname == "" {
		hostname, _ = os.Hostname()
	}
	ts := e.Timestamp
	if f.UseUTC {
		ts = ts.UTC()
	}
	msg := rfc5424.Message{
		Priority:  rfc5424.Priority(e.Priority),
		Timestamp: ts,
		Hostname:  hostname,
		AppName:   e.Ident,
		Message:   []byte(e.Message),
	}
	if e.Options.Has(OptionPID) {
		msg.ProcessID = strconv.Itoa(os.Getpid())
	}
	line, err := msg.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(line, '\n'), nil
}
