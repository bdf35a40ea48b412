package ast

import (
	"kernelc/common"
	"kernelc/types"
)

// FuncDecl represents a function declaration together with its definition.
// Kernel entry functions are FuncDecls whose single parameter is the kernel
// object; synthesized device entries are FuncDecls built by the lowering pass.
type FuncDecl struct {
	ASTBase

	// The name of the function.
	Name string

	// The parameters of the function in order.
	Params []*common.Symbol

	// The return type of the function.
	ReturnType types.Type

	// The body of the function.  Nil for functions without a visible
	// definition.
	Body *Block

	// The device tuning attributes written on the declaration.
	Attrs []*common.TuningAttr

	// Whether the function is a virtual method.
	Virtual bool

	// Whether the function has been marked callable from device code.  Set
	// exactly once by the validator; never set by the frontend.
	DeviceEligible bool

	// Whether the function participates in a call cycle.  Set by the
	// validator's recursion pass.
	Recursive bool

	// Whether the function has been invalidated, eg. by an attribute
	// conflict.  Invalid kernel entries are still emitted into the artifact
	// but are expected to be rejected downstream.
	Invalid bool
}

// AttrOfKind returns the function's attribute of the given kind, if any.
func (fd *FuncDecl) AttrOfKind(kind common.AttrKind) *common.TuningAttr {
	for _, attr := range fd.Attrs {
		if attr.Kind == kind {
			return attr
		}
	}

	return nil
}

// KernelObjectType returns the record type of a kernel entry's single kernel
// object parameter, or nil if the function does not have the expected shape.
func (fd *FuncDecl) KernelObjectType() *types.RecordType {
	if len(fd.Params) != 1 {
		return nil
	}

	rt, _ := fd.Params[0].Type.(*types.RecordType)
	return rt
}
