package report

import "sync"

// Sink receives fully-formed diagnostics.  Rendering is external to the core
// pass: the default sink prints to the terminal, tests install a collector.
type Sink interface {
	Emit(d *Diagnostic)
}

// Reporter is responsible for routing errors, warnings, and other kinds of
// messages produced during a compilation.  The reporter respects the set log
// level and is synchronized: its methods can be safely called from multiple
// goroutines, though a single compilation never does so.
type Reporter struct {
	// The mutex used to synchronize reporting calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// The sink diagnostics are routed to.
	sink Sink

	// The number of errors reported so far.
	errorCount int
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages (default).
)

// rep is the global reporter instance.
var rep *Reporter

// InitReporter initializes the global error reporter to the given log level
// with the default console sink.  Re-initializing discards all prior state.
func InitReporter(logLevel int) {
	rep = &Reporter{
		m:        &sync.Mutex{},
		logLevel: logLevel,
		sink:     &consoleSink{},
	}
}

// SetSink replaces the reporter's diagnostic sink.
func SetSink(sink Sink) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.sink = sink
}

// AnyErrors returns whether or not any errors were reported.
func AnyErrors() bool {
	return rep.errorCount > 0
}

// ErrorCount returns the number of errors reported so far.
func ErrorCount() int {
	return rep.errorCount
}

// handle routes a diagnostic through the log-level filter to the sink.
func (r *Reporter) handle(d *Diagnostic) {
	r.m.Lock()
	defer r.m.Unlock()

	if d.Severity == SevError {
		r.errorCount++

		if r.logLevel > LogLevelSilent {
			r.sink.Emit(d)
		}
	} else if r.logLevel > LogLevelError {
		r.sink.Emit(d)
	}
}
