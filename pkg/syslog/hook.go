package syslog

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Hook forwards logrus entries to a Logger.
type Hook struct {
	logger *Logger
	levels []logrus.Level
}

// NewHook returns a Hook firing for levels, or for every logrus level when
// none are given.
func NewHook(l *Logger, levels ...logrus.Level) *Hook {
	if len(levels) == 0 {
		levels = logrus.AllLevels
	}
	return &Hook{logger: l, levels: levels}
}

func (h *Hook) Levels() []logrus.Level {
	return h.levels
}

func (h *Hook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}
	return h.logger.Log(Numeric(int(fromLogrusLevel(entry.Level))), strings.TrimSuffix(line, "\n"))
}

func fromLogrusLevel(level logrus.Level) Priority {
	switch level {
	case logrus.PanicLevel:
		return Emergency
	case logrus.FatalLevel:
		return Crit
	case logrus.ErrorLevel:
		return Error
	case logrus.WarnLevel:
		return Warning
	case logrus.InfoLevel:
		return Info
	default:
		return Debug
	}
}
