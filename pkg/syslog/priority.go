// Package syslog provides a syslog style logger with priority levels,
// facilities and a level mask, writing lines to a local sink instead of a
// syslog daemon.
package syslog

const severityMask = 0x07
const facilityMask = 0x03f8

// Priority is a facility and a level packed into one word, facility|level.
type Priority int

const (
	Emergency Priority = iota
	Alert
	Crit
	Error
	Warning
	Notice
	Info
	Debug
)

const (
	Kern Priority = iota << 3
	User
	Mail
	Daemon
	Auth
	Syslog
	Lpr
	News
	Uucp
	Cron
	Authpriv
	Ftp
	Ntp
	LogAudit
	LogAlert
	Clock
	Local0
	Local1
	Local2
	Local3
	Local4
	Local5
	Local6
	Local7
)

// Level returns the level bits of p.
func (p Priority) Level() int {
	return int(p & severityMask)
}

// Facility returns the facility bits of p.
func (p Priority) Facility() int {
	return int(p & facilityMask)
}

// valid reports whether p carries no bits outside the level and facility
// fields.
func (p Priority) valid() bool {
	return p >= 0 && p&^(severityMask|facilityMask) == 0
}

// Option is a flag accepted by Open. Options combine with bitwise OR.
type Option int

const (
	OptionPID    Option = 0x01
	OptionCons   Option = 0x02
	OptionODelay Option = 0x04
	OptionNDelay Option = 0x08
	OptionNoWait Option = 0x10
	OptionPError Option = 0x20
)

// Has reports whether every flag in f is set in o.
func (o Option) Has(f Option) bool {
	return o&f == f
}
