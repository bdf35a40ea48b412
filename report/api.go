package report

import (
	"fmt"
	"os"
)

// ReportError reports a compilation error.  The span may be nil in which case
// no position information is attached.
func ReportError(span *TextSpan, msg string, args ...interface{}) {
	rep.handle(&Diagnostic{
		Severity: SevError,
		Message:  fmt.Sprintf(msg, args...),
		Span:     span,
	})
}

// ReportWarning reports a compilation warning.  The arguments are of the same
// form as those to ReportError.
func ReportWarning(span *TextSpan, msg string, args ...interface{}) {
	rep.handle(&Diagnostic{
		Severity: SevWarning,
		Message:  fmt.Sprintf(msg, args...),
		Span:     span,
	})
}

// ReportViolation reports a restricted-subset violation at the offending
// expression or statement, with optional secondary notes such as the
// declaration site of a recursive callee.
func ReportViolation(kind RestrictKind, span *TextSpan, notes ...Note) {
	rep.handle(&Diagnostic{
		Severity:  SevError,
		Violation: kind,
		Message:   kind.Message(),
		Span:      span,
		Notes:     notes,
	})
}

// ReportConflict reports an error with secondary notes: used for attribute
// conflicts where both declaration sites must be surfaced.
func ReportConflict(span *TextSpan, msg string, notes ...Note) {
	rep.handle(&Diagnostic{
		Severity: SevError,
		Message:  msg,
		Span:     span,
		Notes:    notes,
	})
}

// ReportICE reports an internal compiler error.  These are errors that
// specifically result from a bug or unexpected condition occurring within the
// compiler: they are not intended to ever happen.  These errors are always
// displayed regardless of log level.
func ReportICE(msg string, args ...interface{}) {
	displayICE(fmt.Sprintf(msg, args...))
	os.Exit(-1)
}

// ReportFatal reports a fatal error.  These are errors that should cause all
// compilation to stop immediately; they are expected errors that generally
// result from invalid configuration of some form.
func ReportFatal(msg string, args ...interface{}) {
	displayFatal(fmt.Sprintf(msg, args...))
	os.Exit(1)
}
