package syslog

import (
	"sort"
	"strings"
)

const namePrefix = "LOG_"

// Table maps symbolic names to codes and back. The two directions are
// separate maps built once and never written afterwards.
type Table struct {
	byName  map[string]int
	byCode  map[int]string
	aliases map[string]string
}

type tableEntry struct {
	name string
	code int
}

func newTable(entries []tableEntry, aliases map[string]string) *Table {
	t := &Table{
		byName:  make(map[string]int, len(entries)),
		byCode:  make(map[int]string, len(entries)),
		aliases: aliases,
	}
	for _, e := range entries {
		t.byName[e.name] = e.code
		t.byCode[e.code] = e.name
	}
	return t
}

// Levels, Facilities and Options are the name tables of the three
// enumerations accepted by the Logger.
var (
	Levels = newTable([]tableEntry{
		{"LOG_EMERG", int(Emergency)},
		{"LOG_ALERT", int(Alert)},
		{"LOG_CRIT", int(Crit)},
		{"LOG_ERR", int(Error)},
		{"LOG_WARNING", int(Warning)},
		{"LOG_NOTICE", int(Notice)},
		{"LOG_INFO", int(Info)},
		{"LOG_DEBUG", int(Debug)},
	}, map[string]string{
		"EMERGENCY": "LOG_EMERG",
		"CRITICAL":  "LOG_CRIT",
		"ERROR":     "LOG_ERR",
		"WARN":      "LOG_WARNING",
	})

	Facilities = newTable([]tableEntry{
		{"LOG_KERN", int(Kern)},
		{"LOG_USER", int(User)},
		{"LOG_MAIL", int(Mail)},
		{"LOG_DAEMON", int(Daemon)},
		{"LOG_AUTH", int(Auth)},
		{"LOG_SYSLOG", int(Syslog)},
		{"LOG_LPR", int(Lpr)},
		{"LOG_NEWS", int(News)},
		{"LOG_UUCP", int(Uucp)},
		{"LOG_CRON", int(Cron)},
		{"LOG_AUTHPRIV", int(Authpriv)},
		{"LOG_FTP", int(Ftp)},
		{"LOG_NTP", int(Ntp)},
		{"LOG_LOGAUDIT", int(LogAudit)},
		{"LOG_LOGALERT", int(LogAlert)},
		{"LOG_CLOCK", int(Clock)},
		{"LOG_LOCAL0", int(Local0)},
		{"LOG_LOCAL1", int(Local1)},
		{"LOG_LOCAL2", int(Local2)},
		{"LOG_LOCAL3", int(Local3)},
		{"LOG_LOCAL4", int(Local4)},
		{"LOG_LOCAL5", int(Local5)},
		{"LOG_LOCAL6", int(Local6)},
		{"LOG_LOCAL7", int(Local7)},
	}, map[string]string{
		"KERNEL": "LOG_KERN",
	})

	Options = newTable([]tableEntry{
		{"LOG_PID", int(OptionPID)},
		{"LOG_CONS", int(OptionCons)},
		{"LOG_ODELAY", int(OptionODelay)},
		{"LOG_NDELAY", int(OptionNDelay)},
		{"LOG_NOWAIT", int(OptionNoWait)},
		{"LOG_PERROR", int(OptionPError)},
	}, nil)
)

// Code returns the code for name. Canonical names ("LOG_ERR") and their
// short forms ("err", "ERR") are accepted.
func (t *Table) Code(name string) (int, bool) {
	key := strings.ToUpper(name)
	if code, ok := t.byName[key]; ok {
		return code, true
	}
	if code, ok := t.byName[namePrefix+key]; ok {
		return code, true
	}
	if canonical, ok := t.aliases[key]; ok {
		code, ok := t.byName[canonical]
		return code, ok
	}
	return 0, false
}

// Name returns the canonical name for code.
func (t *Table) Name(code int) (string, bool) {
	name, ok := t.byCode[code]
	return name, ok
}

// Names returns the canonical names ordered by code.
func (t *Table) Names() []string {
	codes := make([]int, 0, len(t.byCode))
	for code := range t.byCode {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	names := make([]string, len(codes))
	for i, code := range codes {
		names[i] = t.byCode[code]
	}
	return names
}

// Map returns a copy of the name to code direction.
func (t *Table) Map() map[string]int {
	m := make(map[string]int, len(t.byName))
	for k, v := range t.byName {
		m[k] = v
	}
	return m
}

// Inverse returns a copy of the code to name direction.
func (t *Table) Inverse() map[int]string {
	m := make(map[int]string, len(t.byCode))
	for k, v := range t.byCode {
		m[k] = v
	}
	return m
}

// DisplayName strips the LOG_ prefix from name and lower-cases the rest:
// "LOG_WARNING" becomes "warning".
func DisplayName(name string) string {
	if len(name) >= len(namePrefix) && strings.EqualFold(name[:len(namePrefix)], namePrefix) {
		name = name[len(namePrefix):]
	}
	return strings.ToLower(name)
}

// LevelName returns the display name of a level code. Codes outside the
// table fall back to "info".
func LevelName(code int) string {
	if name, ok := Levels.Name(code); ok {
		return DisplayName(name)
	}
	return DisplayName("LOG_INFO")
}

// FacilityName returns the display name of a facility code, or "" when the
// code is not a known facility.
func FacilityName(code int) string {
	if name, ok := Facilities.Name(code); ok {
		return DisplayName(name)
	}
	return ""
}

// ResolveLevel turns a known level name into its numeric code. Numeric
// values and names that are not levels are returned unchanged.
func ResolveLevel(v Value) Value {
	return resolve(Levels, v)
}

// ResolveFacility is ResolveLevel over the facility names.
func ResolveFacility(v Value) Value {
	return resolve(Facilities, v)
}

func resolve(t *Table, v Value) Value {
	if v.numeric {
		return v
	}
	if code, ok := t.Code(v.name); ok {
		return Numeric(code)
	}
	return v
}
