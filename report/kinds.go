package report

// RestrictKind identifies which rule of the restricted device subset a
// diagnostic refers to.  Every function reachable from a kernel entry must
// stay inside the subset; each kind below is independently discoverable.
type RestrictKind int

// Enumeration of restricted-subset violation kinds.  ViolationNone marks
// diagnostics that are not subset violations.
const (
	ViolationNone RestrictKind = iota
	ViolationGlobalVariable
	ViolationRTTI
	ViolationNonConstStaticMember
	ViolationVirtualCall
	ViolationRecursion
	ViolationFunctionPointerCall
	ViolationHeapAllocation
	ViolationException
	ViolationInlineAssembly
)

// Message returns the user-facing message for a violation kind.
func (rk RestrictKind) Message() string {
	switch rk {
	case ViolationGlobalVariable:
		return "device code cannot read a non-const global variable"
	case ViolationRTTI:
		return "device code cannot use runtime type information"
	case ViolationNonConstStaticMember:
		return "device code cannot read a non-const static member"
	case ViolationVirtualCall:
		return "device code cannot call a virtual function"
	case ViolationRecursion:
		return "device code cannot call a recursive function"
	case ViolationFunctionPointerCall:
		return "device code cannot call through a function pointer"
	case ViolationHeapAllocation:
		return "device code cannot allocate heap storage"
	case ViolationException:
		return "device code cannot use exceptions"
	case ViolationInlineAssembly:
		return "device code cannot use inline assembly"
	default:
		return "unknown device restriction"
	}
}

// Severity classifies a diagnostic.
type Severity int

// Enumeration of diagnostic severities.
const (
	SevError Severity = iota
	SevWarning
)

// Note is a secondary message attached to a diagnostic: eg. the declaration
// site of a recursive function or the other half of an attribute conflict.
type Note struct {
	Message string
	Span    *TextSpan
}

// Diagnostic is a single reported condition together with its locations.
// Diagnostics are produced once and never mutated.
type Diagnostic struct {
	Severity  Severity
	Violation RestrictKind
	Message   string
	Span      *TextSpan
	Notes     []Note
}
