package types

import (
	"fmt"
	"strings"

	"kernelc/report"

	lltypes "github.com/llir/llvm/ir/types"
)

// NamedType represents a user-defined type associated with a declaration.
type NamedType interface {
	Type

	// The named type's name, unqualified.
	Name() string

	// LLType returns the LLVM type currently associated with this named type.
	LLType() lltypes.Type

	// SetLLType sets the LLVM type of the named type.
	SetLLType(llType lltypes.Type)
}

// NamedTypeBase is the base type for all named types.
type NamedTypeBase struct {
	// The named type's name.
	name string

	// The LLVM type reference associated with this named type.  Set lazily by
	// the stub module generator.
	llType lltypes.Type
}

// NewNamedTypeBase creates a new named type base.
func NewNamedTypeBase(name string) NamedTypeBase {
	return NamedTypeBase{name: name}
}

func (nt *NamedTypeBase) Name() string {
	return nt.name
}

func (nt *NamedTypeBase) Repr() string {
	return nt.name
}

func (nt *NamedTypeBase) Size() int {
	report.ReportICE("Size() not overridden on NamedType")
	return 0
}

func (nt *NamedTypeBase) Align() int {
	report.ReportICE("Align() not overridden on NamedType")
	return 0
}

func (nt *NamedTypeBase) LLType() lltypes.Type {
	return nt.llType
}

func (nt *NamedTypeBase) SetLLType(llType lltypes.Type) {
	nt.llType = llType
}

/* -------------------------------------------------------------------------- */

// ScopeKind identifies the kind of an enclosing declaration scope.
type ScopeKind int

// Enumeration of scope kinds.
const (
	ScopeNamespace ScopeKind = iota
	ScopeRecord
)

// ScopeDesc describes one level of the declaration scope chain enclosing a
// type, from the outermost scope inward, excluding the unit scope itself.
type ScopeDesc struct {
	Kind ScopeKind
	Name string
}

// TypeArg is one argument of a generic record instance: either a type or a
// compile-time integer value.
type TypeArg struct {
	// The argument type.  Nil for value arguments.
	Type Type

	// The integer value of a value argument.
	Value int64
}

// IsType returns whether the argument is a type argument.
func (ta TypeArg) IsType() bool {
	return ta.Type != nil
}

// MethodParam is a single parameter of a record method.
type MethodParam struct {
	Name string
	Type Type
}

// Method is a method signature attached to a record type.  The lowering pass
// only ever inspects resource initialization protocol members; method bodies
// belong to the frontend.
type Method struct {
	Name   string
	Params []MethodParam
}

/* -------------------------------------------------------------------------- */

// RecordType represents a record (struct or class) type.  All layout
// information is provided by the frontend and treated as authoritative.
type RecordType struct {
	NamedTypeBase

	// The declaration scope chain enclosing the record, outermost first.
	Scopes []ScopeDesc

	// The list of fields of the record in declaration order.
	Fields []RecordField

	// The methods declared on the record.
	Methods []*Method

	// The arguments of a generic record instance.  Empty for plain records.
	TypeArgs []TypeArg

	// The record's total size in bytes, from the frontend's layout.
	ByteSize int

	// The record's alignment in bytes, from the frontend's layout.
	ByteAlign int

	// Whether host and device representations of the record are guaranteed to
	// have identical layout.
	StandardLayout bool

	// Whether the record declares or inherits a virtual member.
	Polymorphic bool
}

// RecordField represents a field of a record type.
type RecordField struct {
	// The field's name.
	Name string

	// The field's type.
	Type Type

	// The field's byte offset within the record, from the frontend's layout.
	Offset int
}

func (rt *RecordType) equals(other Type) bool {
	ort, ok := other.(*RecordType)
	return ok && rt == ort
}

func (rt *RecordType) Size() int {
	return rt.ByteSize
}

func (rt *RecordType) Align() int {
	if rt.ByteAlign == 0 {
		return 1
	}

	return rt.ByteAlign
}

// Repr returns the fully qualified representative string of the record,
// including its scope chain and any type arguments.
func (rt *RecordType) Repr() string {
	sb := strings.Builder{}

	for _, scope := range rt.Scopes {
		sb.WriteString(scope.Name)
		sb.WriteString("::")
	}

	sb.WriteString(rt.Name())

	if len(rt.TypeArgs) > 0 {
		sb.WriteRune('<')

		for i, arg := range rt.TypeArgs {
			if i != 0 {
				sb.WriteString(", ")
			}

			if arg.IsType() {
				sb.WriteString(arg.Type.Repr())
			} else {
				sb.WriteString(fmt.Sprintf("%d", arg.Value))
			}
		}

		sb.WriteRune('>')
	}

	return sb.String()
}

// FieldByName returns the record field corresponding to the given name if it
// exists in the record.
func (rt *RecordType) FieldByName(name string) (RecordField, bool) {
	for _, field := range rt.Fields {
		if field.Name == name {
			return field, true
		}
	}

	return RecordField{}, false
}

// MethodByName returns the method with the given name if the record has one.
func (rt *RecordType) MethodByName(name string) (*Method, bool) {
	for _, method := range rt.Methods {
		if method.Name == name {
			return method, true
		}
	}

	return nil, false
}
