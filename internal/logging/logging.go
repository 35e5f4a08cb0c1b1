// Package logging configures the process logger and adapts it to the
// calculation engine's Logger interface.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/businessthis/finplan/internal/calculation"
)

// Format selects how log lines are rendered
const (
	FormatJSON = "json"
	FormatText = "text"
)

// New builds a logrus logger writing to out. An unrecognised level falls back
// to info.
func New(out io.Writer, level, format string) *logrus.Logger {
	if out == nil {
		out = os.Stderr
	}

	logger := logrus.New()
	logger.SetOutput(out)
	if strings.EqualFold(format, FormatText) {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
		logger.WithField("level", level).Warn("unknown log level, using info")
	}
	logger.SetLevel(lvl)
	return logger
}

// EngineLogger satisfies calculation.Logger on top of a logrus field logger.
type EngineLogger struct {
	entry logrus.FieldLogger
}

var _ calculation.Logger = EngineLogger{}

// ForEngine returns a calculation.Logger that writes through l
func ForEngine(l logrus.FieldLogger) EngineLogger {
	return EngineLogger{entry: l.WithField("subsystem", "engine")}
}

func (e EngineLogger) Debugf(format string, args ...any) { e.entry.Debugf(format, args...) }
func (e EngineLogger) Infof(format string, args ...any)  { e.entry.Infof(format, args...) }
func (e EngineLogger) Warnf(format string, args ...any)  { e.entry.Warnf(format, args...) }
func (e EngineLogger) Errorf(format string, args ...any) { e.entry.Errorf(format, args...) }
