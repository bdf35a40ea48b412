package ast

import "kernelc/common"

// Block represents a list of AST statements.
type Block struct {
	ASTBase

	// The statements of the block.
	Stmts []ASTNode
}

// -----------------------------------------------------------------------------

// VarDecl represents a variable declaration.
type VarDecl struct {
	ASTBase

	// The declared variable.
	Sym *common.Symbol

	// The (optional) initializer.
	Init ASTExpr
}

// Assign represents a simple assignment statement.
type Assign struct {
	ASTBase

	// The assignment target.
	LHS ASTExpr

	// The assigned value.
	RHS ASTExpr
}

// ReturnStmt represents a return statement.
type ReturnStmt struct {
	ASTBase

	// The (optional) returned expression.
	Value ASTExpr
}

// -----------------------------------------------------------------------------

// IfStmt represents an if/else statement.
type IfStmt struct {
	ASTBase

	// The condition of the branch.
	Cond ASTExpr

	// The body of the branch.
	Then *Block

	// The (optional) else block.
	Else *Block
}

// WhileLoop represents a while loop.
type WhileLoop struct {
	ASTBase

	// The condition of the loop.
	Cond ASTExpr

	// The body of the loop.
	Body *Block
}

// -----------------------------------------------------------------------------

// ThrowStmt represents an exception throw.  Never valid in device code.
type ThrowStmt struct {
	ASTBase

	// The thrown value.
	Value ASTExpr
}

// TryStmt represents a try statement with catch clauses.  Never valid in
// device code.
type TryStmt struct {
	ASTBase

	// The guarded block.
	Body *Block

	// The catch clauses in order.
	Catches []CatchClause
}

// CatchClause is a single catch clause of a try statement.
type CatchClause struct {
	// The (optional) caught variable.
	Sym *common.Symbol

	// The handler block.
	Body *Block
}

// AsmStmt represents an inline machine-code block.  Never valid in device
// code.
type AsmStmt struct {
	ASTBase

	// The raw assembly text.
	Text string
}
