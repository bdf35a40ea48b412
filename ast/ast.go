package ast

import "kernelc/report"

// The abstract interface for all AST nodes.  The tree is produced by the
// frontend, already resolved and typed; the lowering pass reads it and
// synthesizes new nodes, but never mutates frontend-owned nodes in place.
type ASTNode interface {
	// The text span of the AST node.  Synthesized nodes have no span.
	Span() *report.TextSpan
}

// A utility base struct for all AST nodes.
type ASTBase struct {
	// The span over which the AST node occurs.
	span *report.TextSpan
}

// NewASTBaseOn creates a new AST base with the given span.
func NewASTBaseOn(span *report.TextSpan) ASTBase {
	return ASTBase{span: span}
}

func (ab ASTBase) Span() *report.TextSpan {
	return ab.span
}
