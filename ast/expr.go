package ast

import (
	"kernelc/common"
	"kernelc/types"
)

// ASTExpr represents an expression, simple or complex.  All expression nodes
// implement the ASTExpr interface.
type ASTExpr interface {
	ASTNode

	// Type is the yielded type of the expression.
	Type() types.Type
}

// ExprBase is the base struct for all expressions.
type ExprBase struct {
	typ types.Type
}

// NewExprBase creates a new expression base with the given type.
func NewExprBase(typ types.Type) ExprBase {
	return ExprBase{typ: typ}
}

func (eb *ExprBase) Type() types.Type {
	return eb.typ
}

// -----------------------------------------------------------------------------

// IdentExpr represents a reference to a named symbol.
type IdentExpr struct {
	ASTBase
	ExprBase

	// The referenced symbol.
	Sym *common.Symbol
}

// NewIdentExpr creates a new identifier expression referencing the given
// symbol with no source position.
func NewIdentExpr(sym *common.Symbol) *IdentExpr {
	return &IdentExpr{ExprBase: NewExprBase(sym.Type), Sym: sym}
}

// FieldExpr represents a field access on a record value.
type FieldExpr struct {
	ASTBase
	ExprBase

	// The accessed value.
	Base ASTExpr

	// The name of the accessed field.
	FieldName string
}

// NewFieldExpr creates a new field access on the given base with no source
// position.
func NewFieldExpr(base ASTExpr, field types.RecordField) *FieldExpr {
	return &FieldExpr{
		ExprBase:  NewExprBase(field.Type),
		Base:      base,
		FieldName: field.Name,
	}
}

// Literal represents a literal constant.
type Literal struct {
	ASTBase
	ExprBase

	// The literal's source text.
	Value string
}

// -----------------------------------------------------------------------------

// CallExpr represents a function call.  Direct calls resolve Callee; calls
// through a function value leave Callee nil and use CalleeExpr.
type CallExpr struct {
	ASTBase
	ExprBase

	// The called function, if the call is direct.
	Callee *FuncDecl

	// The called expression, if the call is indirect.
	CalleeExpr ASTExpr

	// The call arguments in order.
	Args []ASTExpr
}

// MethodCallExpr represents a method call on a record value.  Calls to a
// resource's initialization protocol leave Callee nil: the protocol member is
// an opaque part of the device ABI with no frontend definition.
type MethodCallExpr struct {
	ASTBase
	ExprBase

	// The receiver value.
	Base ASTExpr

	// The name of the called method.
	MethodName string

	// The called method's declaration, if the frontend has one.
	Callee *FuncDecl

	// The call arguments in order.
	Args []ASTExpr
}

// ConstructExpr represents the construction of a record value.
type ConstructExpr struct {
	ASTBase
	ExprBase

	// The constructed record type.
	Record *types.RecordType

	// The invoked constructor.
	Ctor *FuncDecl

	// The record's user-declared destructor, if any.
	Dtor *FuncDecl

	// The constructor arguments in order.
	Args []ASTExpr
}

// AllocExpr represents a heap allocation expression.
type AllocExpr struct {
	ASTBase
	ExprBase

	// The allocation operator overload in use.  Nil for the replaceable
	// global allocator.
	Operator *FuncDecl

	// Whether the operator is a replaceable storage-allocating function.
	// Placement and non-allocating overloads are not replaceable.
	Replaceable bool

	// The allocation arguments in order.
	Args []ASTExpr
}

// -----------------------------------------------------------------------------

// TypeQueryExpr represents a runtime type-identity query.
type TypeQueryExpr struct {
	ASTBase
	ExprBase

	// The queried operand.
	Operand ASTExpr
}

// DynCastExpr represents a dynamic downcast.
type DynCastExpr struct {
	ASTBase
	ExprBase

	// The cast operand.
	Operand ASTExpr
}

// -----------------------------------------------------------------------------

// BinaryOp represents a binary operator application.
type BinaryOp struct {
	ASTBase
	ExprBase

	// The operator's source spelling.
	Op string

	// The operands.
	Lhs, Rhs ASTExpr
}

// UnaryOp represents a unary operator application.
type UnaryOp struct {
	ASTBase
	ExprBase

	// The operator's source spelling.
	Op string

	// The operand.
	Operand ASTExpr
}
