package syslog

// Names kept from the C API for callers ported from other syslog bindings.
//
//nolint:golint,stylecheck
const (
	LOG_EMERG   = Emergency
	LOG_ALERT   = Alert
	LOG_CRIT    = Crit
	LOG_ERR     = Error
	LOG_WARNING = Warning
	LOG_NOTICE  = Notice
	LOG_INFO    = Info
	LOG_DEBUG   = Debug

	LOG_KERN     = Kern
	LOG_USER     = User
	LOG_MAIL     = Mail
	LOG_DAEMON   = Daemon
	LOG_AUTH     = Auth
	LOG_SYSLOG   = Syslog
	LOG_LPR      = Lpr
	LOG_NEWS     = News
	LOG_UUCP     = Uucp
	LOG_CRON     = Cron
	LOG_AUTHPRIV = Authpriv
	LOG_FTP      = Ftp
	LOG_LOCAL0   = Local0
	LOG_LOCAL1   = Local1
	LOG_LOCAL2   = Local2
	LOG_LOCAL3   = Local3
	LOG_LOCAL4   = Local4
	LOG_LOCAL5   = Local5
	LOG_LOCAL6   = Local6
	LOG_LOCAL7   = Local7

	LOG_PID    = OptionPID
	LOG_CONS   = OptionCons
	LOG_ODELAY = OptionODelay
	LOG_NDELAY = OptionNDelay
	LOG_NOWAIT = OptionNoWait
	LOG_PERROR = OptionPError
)
