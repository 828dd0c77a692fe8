package recordstore

import "github.com/rs/zerolog"

// zerologLogger adapts a zerolog.Logger to the Logger interface. This
// wires github.com/rs/zerolog, a dependency the teacher repo declares
// in go.mod but never actually imports anywhere in its retrieved
// source.
type zerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger returns a Logger backed by the given zerolog.Logger.
func NewZerologLogger(log zerolog.Logger) Logger {
	return &zerologLogger{log: log}
}

func logEvent(e *zerolog.Event, msg string, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, kv[i+1])
	}
	e.Msg(msg)
}

func (z *zerologLogger) Errorw(msg string, kv ...any) { logEvent(z.log.Error(), msg, kv) }
func (z *zerologLogger) Warnw(msg string, kv ...any)  { logEvent(z.log.Warn(), msg, kv) }
func (z *zerologLogger) Infow(msg string, kv ...any)  { logEvent(z.log.Info(), msg, kv) }
func (z *zerologLogger) Debugw(msg string, kv ...any) { logEvent(z.log.Debug(), msg, kv) }
