package main

import (
	"C"
	"os"
	"runtime"
	"strconv"
	"unsafe"

	"github.com/fluent/fluent-bit-go/output"
	"github.com/sirupsen/logrus"

	"github.com/allanhung/stdout-syslog/pkg/config"
	"github.com/allanhung/stdout-syslog/pkg/record"
	"github.com/allanhung/stdout-syslog/pkg/syslog"
)

// out is the per-instance state handed to fluent-bit as plugin context.
type out struct {
	logger     *syslog.Logger
	level      syslog.Value
	messageKey string
	levelKey   string
}

//export FLBPluginRegister
func FLBPluginRegister(def unsafe.Pointer) int {
	return output.FLBPluginRegister(
		def,
		"stdout_syslog",
		"syslog style output plugin writing to stdout",
	)
}

//export FLBPluginInit
func FLBPluginInit(plugin unsafe.Pointer) int {
	cfg, err := config.Get()
	if err != nil {
		logrus.Errorf("[out_syslog] ERROR: Unable to read environment: %s", err)
		return output.FLB_ERROR
	}

	override := func(dst *string, key string) {
		if v := output.FLBPluginConfigKey(plugin, key); v != "" {
			*dst = v
		}
	}
	override(&cfg.Ident, "ident")
	override(&cfg.Facility, "facility")
	override(&cfg.Level, "severity")
	override(&cfg.Upto, "upto")
	override(&cfg.Format, "format")
	override(&cfg.Hostname, "hostname")
	override(&cfg.MessageKey, "messagekey")
	override(&cfg.LevelKey, "levelkey")

	for key, dst := range map[string]*bool{"strict": &cfg.Strict, "pid": &cfg.PID} {
		v := output.FLBPluginConfigKey(plugin, key)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			logrus.Errorf("[out_syslog] ERROR: Unable to parse %s: %s", key, err)
			return output.FLB_ERROR
		}
		*dst = b
	}

	logger, err := cfg.NewLogger(os.Stdout)
	if err != nil {
		logrus.Errorf("[out_syslog] ERROR: Invalid configuration: %s", err)
		return output.FLB_ERROR
	}

	o := &out{
		logger:     logger,
		level:      syslog.Symbolic(cfg.Level),
		messageKey: cfg.MessageKey,
		levelKey:   cfg.LevelKey,
	}

	// The context pointer is kept alive for the lifetime of the plugin, as
	// fluent-bit holds it on the C side.
	output.FLBPluginSetContext(plugin, unsafe.Pointer(o))
	runtime.KeepAlive(o)
	logrus.Infof("[out_syslog] Initializing plugin with %s", cfg)
	return output.FLB_OK
}

//export FLBPluginFlushCtx
func FLBPluginFlushCtx(ctx, data unsafe.Pointer, length C.int, tag *C.char) int {
	var (
		ret int
		rec map[interface{}]interface{}
	)

	o := (*out)(ctx)

	dec := output.NewDecoder(data, int(length))
	for {
		ret, _, rec = output.GetRecord(dec)
		if ret != 0 {
			break
		}
		if err := o.write(rec); err != nil {
			logrus.Errorf("[out_syslog] ERROR: tag %s: %s", C.GoString(tag), err)
			return output.FLB_RETRY
		}
	}

	return output.FLB_OK
}

func (o *out) write(rec map[interface{}]interface{}) error {
	level := o.level
	if o.levelKey != "" {
		if v, ok := record.Field(rec, o.levelKey); ok {
			if resolved := syslog.ResolveLevel(syslog.Symbolic(v)); resolved.IsNumeric() {
				level = resolved
			}
		}
	}
	msg, ok := record.Field(rec, o.messageKey)
	if !ok {
		msg = record.Flatten(rec)
	}
	return o.logger.Log(level, msg)
}

//export FLBPluginExit
func FLBPluginExit() int {
	return output.FLB_OK
}

func main() {
}
