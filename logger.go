package swrcache

import (
	"context"

	"github.com/bool64/ctxd"
)

var _ ctxd.Logger = LoggerFunc(nil)

// LoggerFunc adapts a plain callback to ctxd.Logger.
//
// The callback receives message and the value of "error" field if there is one,
// other fields and levels are discarded. It may be called concurrently from any goroutine.
type LoggerFunc func(message string, err error)

// Debug logs a message.
func (f LoggerFunc) Debug(_ context.Context, msg string, keysAndValues ...interface{}) {
	f.log(msg, keysAndValues)
}

// Info logs a message.
func (f LoggerFunc) Info(_ context.Context, msg string, keysAndValues ...interface{}) {
	f.log(msg, keysAndValues)
}

// Important logs a message.
func (f LoggerFunc) Important(_ context.Context, msg string, keysAndValues ...interface{}) {
	f.log(msg, keysAndValues)
}

// Warn logs a message.
func (f LoggerFunc) Warn(_ context.Context, msg string, keysAndValues ...interface{}) {
	f.log(msg, keysAndValues)
}

// Error logs a message.
func (f LoggerFunc) Error(_ context.Context, msg string, keysAndValues ...interface{}) {
	f.log(msg, keysAndValues)
}

func (f LoggerFunc) log(msg string, keysAndValues []interface{}) {
	if f == nil {
		return
	}

	var err error

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if k, ok := keysAndValues[i].(string); ok && k == "error" {
			err, _ = keysAndValues[i+1].(error)
		}
	}

	f(msg, err)
}
