package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is a logger verbosity threshold; messages below it are dropped.
type Level logging.Level

// The levels that can be passed to SetLevel and SetModuleLevel.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// ModuleServer is the module name used by the HTTP query server.
const ModuleServer = "server"

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger is the leveled logger handed out by New.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New creates a logger for module.
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink redirects all output to sink. The default level is kept; module
// overrides are reset.
func SetSink(sink io.Writer) {
	level := logging.NOTICE
	if leveledBackend != nil {
		level = leveledBackend.GetLevel("")
	}

	backend := logging.NewLogBackend(sink, "", 0)
	leveledBackend = logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveledBackend.SetLevel(level, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets the default verbosity.
func SetLevel(level Level) {
	leveledBackend.SetLevel(level.toLogging(), "")
}

// SetModuleLevel sets the verbosity of a single module.
func SetModuleLevel(module string, level Level) {
	leveledBackend.SetLevel(level.toLogging(), module)
}

func (l Level) toLogging() logging.Level {
	switch l {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Warning:
		return logging.WARNING
	case Error:
		return logging.ERROR
	}
	return logging.NOTICE
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
