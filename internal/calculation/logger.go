package calculation

import "fmt"

// Logger is a minimal logging interface for the projection engine.
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

// PrintfLogger adapts a printf-style function to the Logger interface.
// The CLI installs one when --verbose is set.
type PrintfLogger struct {
	Printf func(format string, args ...any)
}

func (l PrintfLogger) logf(level, format string, args ...any) {
	if l.Printf == nil {
		return
	}
	l.Printf("%s %s\n", level, fmt.Sprintf(format, args...))
}

func (l PrintfLogger) Debugf(format string, args ...any) { l.logf("DEBUG", format, args...) }
func (l PrintfLogger) Infof(format string, args ...any)  { l.logf("INFO", format, args...) }
func (l PrintfLogger) Warnf(format string, args ...any)  { l.logf("WARN", format, args...) }
func (l PrintfLogger) Errorf(format string, args ...any) { l.logf("ERROR", format, args...) }
