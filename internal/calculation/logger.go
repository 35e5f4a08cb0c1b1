package calculation

// Logger is a minimal logging interface for the planning engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// componentLogger tags every message with the calculator that produced it.
type componentLogger struct {
	component string
	next      Logger
}

func withComponent(l Logger, component string) Logger {
	if l == nil {
		l = NopLogger{}
	}
	return componentLogger{component: component, next: l}
}

func (c componentLogger) Debugf(format string, args ...any) {
	c.next.Debugf("["+c.component+"] "+format, args...)
}

func (c componentLogger) Infof(format string, args ...any) {
	c.next.Infof("["+c.component+"] "+format, args...)
}

func (c componentLogger) Warnf(format string, args ...any) {
	c.next.Warnf("["+c.component+"] "+format, args...)
}

func (c componentLogger) Errorf(format string, args ...any) {
	c.next.Errorf("["+c.component+"] "+format, args...)
}
