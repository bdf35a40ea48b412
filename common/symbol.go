package common

import (
	"kernelc/report"
	"kernelc/types"
)

// Symbol represents a semantic symbol: a named value produced by the frontend
// or synthesized by the lowering pass.
type Symbol struct {
	// The name of the symbol.
	Name string

	// The type of the value stored in the symbol.
	Type types.Type

	// Where the symbol was declared.
	DefSpan *report.TextSpan

	// The symbol's kind.  This must be one of the enumerated symbol kinds.
	Kind int

	// Whether or not the symbol is constant.
	Constant bool
}

// Enumeration of symbol kinds.
const (
	SymKindParam = iota // A function parameter.
	SymKindLocal        // A function-local variable.
	SymKindGlobal       // A unit-level variable with static storage.
	SymKindStaticMember // A static member of a record.
)
