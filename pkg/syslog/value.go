package syslog

import (
	"strconv"
)

// Value is a level, facility or priority given either by name or by code.
// The zero Value is an empty name and means "not set".
type Value struct {
	name    string
	code    int
	numeric bool
}

// Symbolic returns a Value holding a name such as "LOG_ERR" or "err".
func Symbolic(name string) Value {
	return Value{name: name}
}

// Numeric returns a Value holding an already encoded code.
func Numeric(code int) Value {
	return Value{code: code, numeric: true}
}

// IsNumeric reports whether v holds a code.
func (v Value) IsNumeric() bool {
	return v.numeric
}

// IsZero reports whether v is unset.
func (v Value) IsZero() bool {
	return !v.numeric && v.name == ""
}

// Name returns the name held by v, or "" for a numeric Value.
func (v Value) Name() string {
	return v.name
}

// Code returns the code held by v. A name is coerced the way an integer
// conversion would: decimal text parses, anything else is 0.
func (v Value) Code() int {
	if v.numeric {
		return v.code
	}
	n, err := strconv.Atoi(v.name)
	if err != nil {
		return 0
	}
	return n
}

func (v Value) String() string {
	if v.numeric {
		return strconv.Itoa(v.code)
	}
	return v.name
}
