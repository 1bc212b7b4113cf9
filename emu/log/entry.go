package log

import (
	"fmt"
	"io"
	"maps"
	"sync/atomic"

	"gopkg.in/Sirupsen/logrus.v0"
)

type Level = logrus.Level

const (
	PanicLevel = logrus.PanicLevel
	FatalLevel = logrus.FatalLevel
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
)

type Fields logrus.Fields

// modField is the field holding the module name of every entry.
const modField = "_mod"

var disabled atomic.Bool

func init() {
	// Filtering is done per module, logrus lets everything through.
	logrus.SetLevel(logrus.DebugLevel)
}

// SetOutput redirects all log output to w.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// Disable turns off all logging, warnings and errors included.
func Disable() { disabled.Store(true) }

// Enable reverts a previous call to Disable.
func Enable() { disabled.Store(false) }

// Entry is a printf-style log entry bound to a module.
type Entry struct {
	mod    Module
	fields Fields
}

// WithField returns a copy of entry with an additional field.
func (entry Entry) WithField(key string, value any) Entry {
	fields := make(Fields, len(entry.fields)+1)
	maps.Copy(fields, entry.fields)
	fields[key] = value
	entry.fields = fields
	return entry
}

func (entry Entry) logf(lvl Level, format string, args ...any) {
	if !entry.mod.Enabled(lvl) {
		return
	}
	e := logrus.StandardLogger().WithField(modField, entry.mod.String())
	if len(entry.fields) != 0 {
		e = e.WithFields(logrus.Fields(entry.fields))
	}
	emit(e, lvl, fmt.Sprintf(format, args...))
}

func (entry Entry) Debugf(format string, args ...any) { entry.logf(DebugLevel, format, args...) }
func (entry Entry) Infof(format string, args ...any)  { entry.logf(InfoLevel, format, args...) }
func (entry Entry) Warnf(format string, args ...any)  { entry.logf(WarnLevel, format, args...) }
func (entry Entry) Errorf(format string, args ...any) { entry.logf(ErrorLevel, format, args...) }
func (entry Entry) Fatalf(format string, args ...any) { entry.logf(FatalLevel, format, args...) }

func emit(e *logrus.Entry, lvl Level, msg string) {
	switch lvl {
	case DebugLevel:
		e.Debug(msg)
	case InfoLevel:
		e.Info(msg)
	case WarnLevel:
		e.Warn(msg)
	case ErrorLevel:
		e.Error(msg)
	case FatalLevel:
		e.Fatal(msg)
	case PanicLevel:
		e.Panic(msg)
	}
}
