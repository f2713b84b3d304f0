package logger

import "sync/atomic"

var global atomic.Pointer[Logger]

func init() {
	global.Store(Nop())
}

// InitGlobalLogger replaces the process wide logger. On a bad config the
// previous logger is kept and the error returned.
func InitGlobalLogger(cfg *Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}

	SetGlobal(l)

	return nil
}

func SetGlobal(l *Logger) {
	global.Store(l)
}

func Global() *Logger {
	return global.Load()
}

func Info(msg string, keysAndValues ...any)  { Global().Info(msg, keysAndValues...) }
func Warn(msg string, keysAndValues ...any)  { Global().Warn(msg, keysAndValues...) }
func Error(msg string, keysAndValues ...any) { Global().Error(msg, keysAndValues...) }
