// Package emit serializes per-kernel parameter descriptor tables into the
// integration artifact consumed by the runtime loader.  Output order is
// strictly kernel-discovery order, then declaration order within each kernel:
// the artifact is diffed and cached externally, so emission must be
// byte-for-byte deterministic.
package emit

import (
	"kernelc/report"
	"kernelc/types"
)

// ParamKind identifies the kind of one flat kernel parameter descriptor.
type ParamKind int

// Enumeration of descriptor kinds.  The names are part of the ABI shared
// with the runtime loader.
const (
	KindAccessor ParamKind = iota
	KindStdLayout
	KindSampler
	KindPointer
)

// String returns the ABI identifier of a parameter kind.
func (pk ParamKind) String() string {
	switch pk {
	case KindAccessor:
		return "kind_accessor"
	case KindStdLayout:
		return "kind_std_layout"
	case KindSampler:
		return "kind_sampler"
	case KindPointer:
		return "kind_pointer"
	default:
		return "<ERROR>"
	}
}

// ParamDesc is one flat parameter descriptor: its kind, an integer payload
// (packed accessor info or a byte size), and the parameter's byte offset
// within the kernel object.
type ParamDesc struct {
	Kind   ParamKind
	Info   int
	Offset int
}

// KernelDesc collects the descriptors of one kernel in declaration order.
type KernelDesc struct {
	// The kernel's mangled name.
	Name string

	// The kernel's name type.
	NameType types.Type

	// The kernel's parameter descriptors in declaration order.
	Params []ParamDesc
}

// Table accumulates kernel descriptors across one compilation.  It is owned
// by the compilation's pipeline: each kernel's descriptors are appended
// during that kernel's lowering and are immutable afterwards.
type Table struct {
	// The accumulated kernel descriptors in discovery order.
	Kernels []KernelDesc
}

// NewTable creates an empty descriptor table.
func NewTable() *Table {
	return &Table{}
}

// StartKernel begins accumulation of a new kernel's descriptors.
func (t *Table) StartKernel(name string, nameType types.Type) {
	t.Kernels = append(t.Kernels, KernelDesc{Name: name, NameType: nameType})
}

// AddParamDesc appends one parameter descriptor to the kernel currently
// being accumulated.
func (t *Table) AddParamDesc(kind ParamKind, info, offset int) {
	if len(t.Kernels) == 0 {
		report.ReportICE("descriptor added before any kernel was started")
	}

	k := &t.Kernels[len(t.Kernels)-1]
	k.Params = append(k.Params, ParamDesc{Kind: kind, Info: info, Offset: offset})
}

// EndKernel finishes accumulation of the current kernel's descriptors.
func (t *Table) EndKernel() {
	// Nothing to finalize for now.
}
