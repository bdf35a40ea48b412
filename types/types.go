package types

import (
	"fmt"
	"strings"

	"kernelc/util"
)

// Type represents a data type of the unit being compiled.  Types are produced
// by the frontend and are never mutated by the lowering pass; sizes, alignment,
// and field offsets are authoritative inputs from the frontend's record layout.
type Type interface {
	// Returns whether this type is equal to the other type.  This should only
	// be called within methods of type instances: use Equals externally.
	equals(other Type) bool

	// Returns the size of this type in bytes.
	Size() int

	// Returns the alignment of this type in bytes.
	Align() int

	// Returns the representative string for this type.
	Repr() string
}

// Equals returns whether two types are equal.
func Equals(a, b Type) bool {
	return a.equals(b)
}

// -----------------------------------------------------------------------------

// PrimitiveType represents a primitive type.  This must be one of the
// enumerated primitive type values below.
type PrimitiveType int

// Enumeration of the different primitive types.
const (
	PrimTypeUnit = PrimitiveType(iota)
	PrimTypeBool
	PrimTypeI8
	PrimTypeU8
	PrimTypeI16
	PrimTypeU16
	PrimTypeI32
	PrimTypeU32
	PrimTypeI64
	PrimTypeU64
	PrimTypeF32
	PrimTypeF64
)

func (pt PrimitiveType) equals(other Type) bool {
	if opt, ok := other.(PrimitiveType); ok {
		return pt == opt
	}

	return false
}

func (pt PrimitiveType) Size() int {
	switch pt {
	case PrimTypeUnit:
		return 0
	case PrimTypeBool, PrimTypeI8, PrimTypeU8:
		return 1
	case PrimTypeI16, PrimTypeU16:
		return 2
	case PrimTypeI32, PrimTypeU32, PrimTypeF32:
		return 4
	default:
		return 8
	}
}

func (pt PrimitiveType) Align() int {
	return pt.Size()
}

func (pt PrimitiveType) Repr() string {
	switch pt {
	case PrimTypeUnit:
		return "unit"
	case PrimTypeBool:
		return "bool"
	case PrimTypeI8:
		return "i8"
	case PrimTypeU8:
		return "u8"
	case PrimTypeI16:
		return "i16"
	case PrimTypeU16:
		return "u16"
	case PrimTypeI32:
		return "i32"
	case PrimTypeU32:
		return "u32"
	case PrimTypeI64:
		return "i64"
	case PrimTypeU64:
		return "u64"
	case PrimTypeF32:
		return "f32"
	default:
		return "f64"
	}
}

// -----------------------------------------------------------------------------

// AddrSpace identifies the address space a pointer points into.  Device
// pointers passed as kernel arguments are assumed device-global unless
// otherwise qualified.
type AddrSpace int

// Enumeration of pointer address spaces.
const (
	AddrSpaceDefault AddrSpace = iota
	AddrSpaceGlobal
	AddrSpaceConstant
	AddrSpaceLocal
	AddrSpacePrivate
)

func (as AddrSpace) Repr() string {
	switch as {
	case AddrSpaceGlobal:
		return "global"
	case AddrSpaceConstant:
		return "constant"
	case AddrSpaceLocal:
		return "local"
	case AddrSpacePrivate:
		return "private"
	default:
		return ""
	}
}

// PointerType represents a pointer type.
type PointerType struct {
	// The element (content) type of the pointer.
	ElemType Type

	// The address space of the pointee.
	Space AddrSpace

	// Whether the pointer points to an immutable value.
	Const bool
}

func (pt *PointerType) equals(other Type) bool {
	if opt, ok := other.(*PointerType); ok {
		return Equals(pt.ElemType, opt.ElemType) && pt.Space == opt.Space
	}

	return false
}

func (pt *PointerType) Size() int {
	return util.PointerSize
}

func (pt *PointerType) Align() int {
	return util.PointerSize
}

func (pt *PointerType) Repr() string {
	sb := strings.Builder{}
	sb.WriteRune('*')

	if space := pt.Space.Repr(); space != "" {
		sb.WriteString(space)
		sb.WriteRune(' ')
	}

	if pt.Const {
		sb.WriteString("const ")
	}

	sb.WriteString(pt.ElemType.Repr())
	return sb.String()
}

// GlobalizePointer returns a copy of the given pointer type with its pointee
// rewritten into the global address space.  The original type is not mutated.
func GlobalizePointer(pt *PointerType) *PointerType {
	return &PointerType{
		ElemType: pt.ElemType,
		Space:    AddrSpaceGlobal,
		Const:    pt.Const,
	}
}

// -----------------------------------------------------------------------------

// ArrayType represents a fixed-length array type.  Arrays whose length is not
// a compile-time constant are variable-length and never valid in device code.
type ArrayType struct {
	// The element type of the array.
	ElemType Type

	// The number of elements.  Meaningless if the array is variable-length.
	Len int

	// Whether the array's length is only known at runtime.
	Dynamic bool
}

func (at *ArrayType) equals(other Type) bool {
	if oat, ok := other.(*ArrayType); ok {
		return Equals(at.ElemType, oat.ElemType) && at.Len == oat.Len &&
			at.Dynamic == oat.Dynamic
	}

	return false
}

func (at *ArrayType) Size() int {
	return at.Len * at.ElemType.Size()
}

func (at *ArrayType) Align() int {
	return at.ElemType.Align()
}

func (at *ArrayType) Repr() string {
	if at.Dynamic {
		return "[?]" + at.ElemType.Repr()
	}

	return fmt.Sprintf("[%d]%s", at.Len, at.ElemType.Repr())
}

// -----------------------------------------------------------------------------

// FuncType represents a function type.
type FuncType struct {
	// The parameter types of the function.
	ParamTypes []Type

	// The return type of the function.
	ReturnType Type
}

func (ft *FuncType) equals(other Type) bool {
	if oft, ok := other.(*FuncType); ok {
		if len(ft.ParamTypes) != len(oft.ParamTypes) {
			return false
		}

		for i, paramtyp := range ft.ParamTypes {
			if !Equals(paramtyp, oft.ParamTypes[i]) {
				return false
			}
		}

		return Equals(ft.ReturnType, oft.ReturnType)
	}

	return false
}

func (ft *FuncType) Size() int {
	return util.PointerSize
}

func (ft *FuncType) Align() int {
	return util.PointerSize
}

func (ft *FuncType) Repr() string {
	sb := strings.Builder{}
	sb.WriteRune('(')

	for i, paramtyp := range ft.ParamTypes {
		if i != 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(paramtyp.Repr())
	}

	sb.WriteString(") -> ")
	sb.WriteString(ft.ReturnType.Repr())

	return sb.String()
}
