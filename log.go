package recordstore

// Logger is a small structured-logging interface, trimmed from the
// teacher's full Panic/Fatal/Error/Warn/Info/Debug/Trace ladder down to
// the levels a storage library actually has a use for. A library
// should never reach for Panic or Fatal on a caller's behalf, so those
// two are dropped rather than carried along for symmetry.
type Logger interface {
	Errorw(msg string, kv ...any)
	Warnw(msg string, kv ...any)
	Infow(msg string, kv ...any)
	Debugw(msg string, kv ...any)
}
