package common

import "kernelc/report"

// AttrKind identifies a device tuning attribute recognized by the attribute
// propagation pass.  The set is closed: every switch over attribute kinds must
// be exhaustive, with an ICE default, so that adding a kind is compile-visible
// at each handler.
type AttrKind int

// Enumeration of recognized device tuning attribute kinds.
const (
	AttrSubGroupSize  AttrKind = iota // Required sub-group size hint.
	AttrWorkGroupSize                 // Required work-group size hint.
)

// Repr returns the source-facing name of the attribute kind.
func (ak AttrKind) Repr() string {
	switch ak {
	case AttrSubGroupSize:
		return "sub_group_size"
	case AttrWorkGroupSize:
		return "work_group_size"
	default:
		report.ReportICE("unknown attribute kind: %d", ak)
		return ""
	}
}

// TuningAttr is one device tuning attribute attached to a function
// declaration.  Attributes found on functions reachable from a kernel entry
// are propagated onto the entry itself.
type TuningAttr struct {
	// The kind of the attribute.
	Kind AttrKind

	// The attribute's integer arguments: one value for sub_group_size, three
	// for work_group_size.
	Values []int

	// Where the attribute was written.
	Span *report.TextSpan
}

// SameValues returns whether two attributes of the same kind carry identical
// values.
func (ta *TuningAttr) SameValues(other *TuningAttr) bool {
	if len(ta.Values) != len(other.Values) {
		return false
	}

	for i, v := range ta.Values {
		if other.Values[i] != v {
			return false
		}
	}

	return true
}
