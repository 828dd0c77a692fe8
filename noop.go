package recordstore

// noopLogger discards everything. It is the default logger used when
// Config.Logger is nil, mirroring the logger.NewNoOp() call site in the
// teacher's storage/mmap/store.go (whose NewNoOp constructor itself
// wasn't present in the retrieved source — this is a reconstruction of
// what it must have returned).
type noopLogger struct{}

func (noopLogger) Errorw(string, ...any) {}
func (noopLogger) Warnw(string, ...any)  {}
func (noopLogger) Infow(string, ...any)  {}
func (noopLogger) Debugw(string, ...any) {}
