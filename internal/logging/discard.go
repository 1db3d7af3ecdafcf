package logging

// discardLogger drops every message. It backs the package-level Discard
// value for callers (benchmarks, tests building Options without a real
// logger) that want the Logger contract satisfied without any output.
type discardLogger struct{}

// Discard is a Logger that does nothing at every level, including Fatalf.
// A caller that needs FatalHandler behavior should install a DefaultLogger
// instead.
var Discard Logger = discardLogger{}

func (discardLogger) Errorf(string, ...any) {}
func (discardLogger) Warnf(string, ...any)  {}
func (discardLogger) Infof(string, ...any)  {}
func (discardLogger) Debugf(string, ...any) {}
func (discardLogger) Fatalf(string, ...any) {}
