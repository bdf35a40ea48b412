// Package validate checks that the device-reachable portion of a unit stays
// inside the restricted device subset.  It builds a call graph over the unit's
// functions, collects everything reachable from each synthesized kernel entry,
// detects recursion, propagates tuning attributes onto entries, and flags
// every restricted construct with a diagnostic.
package validate

import (
	"kernelc/ast"
	"kernelc/report"
)

// CallGraphNode is one function in the call graph together with its direct
// callees in first-call order.
type CallGraphNode struct {
	// The function the node stands for.
	Func *ast.FuncDecl

	// The functions directly called by Func, deduplicated, in the order their
	// first call site appears in the body.
	Callees []*CallGraphNode
}

// CallGraph maps every function of a unit to its direct callees.  Nodes are
// canonical: each FuncDecl has exactly one node, so graph walks can key on
// node identity.
type CallGraph struct {
	nodes map[*ast.FuncDecl]*CallGraphNode
}

// BuildCallGraph builds the call graph of the given functions.  Callees
// without a visible definition still get nodes so attribute collection can
// see their declarations.
func BuildCallGraph(funcs []*ast.FuncDecl) *CallGraph {
	cg := &CallGraph{nodes: make(map[*ast.FuncDecl]*CallGraphNode)}

	for _, fn := range funcs {
		cg.nodeOf(fn)
	}

	for _, fn := range funcs {
		if fn.Body != nil {
			cg.collectBlock(cg.nodeOf(fn), fn.Body)
		}
	}

	return cg
}

// NodeOf returns the node of the given function, or nil if the function is
// not part of the graph.
func (cg *CallGraph) NodeOf(fn *ast.FuncDecl) *CallGraphNode {
	return cg.nodes[fn]
}

func (cg *CallGraph) nodeOf(fn *ast.FuncDecl) *CallGraphNode {
	if node, ok := cg.nodes[fn]; ok {
		return node
	}

	node := &CallGraphNode{Func: fn}
	cg.nodes[fn] = node
	return node
}

// addCallee records a direct call edge, skipping duplicates and nil callees.
func (cg *CallGraph) addCallee(caller *CallGraphNode, callee *ast.FuncDecl) {
	if callee == nil {
		return
	}

	calleeNode := cg.nodeOf(callee)
	for _, existing := range caller.Callees {
		if existing == calleeNode {
			return
		}
	}

	caller.Callees = append(caller.Callees, calleeNode)

	// Callees discovered only through call sites (constructors, destructors,
	// allocation operators) may not have been registered up front; their own
	// bodies still contribute edges.
	if callee.Body != nil && len(calleeNode.Callees) == 0 {
		cg.collectBlock(calleeNode, callee.Body)
	}
}

func (cg *CallGraph) collectBlock(caller *CallGraphNode, b *ast.Block) {
	for _, stmt := range b.Stmts {
		cg.collectStmt(caller, stmt)
	}
}

func (cg *CallGraph) collectStmt(caller *CallGraphNode, stmt ast.ASTNode) {
	switch v := stmt.(type) {
	case *ast.Block:
		cg.collectBlock(caller, v)
	case *ast.VarDecl:
		cg.collectOptExpr(caller, v.Init)
	case *ast.Assign:
		cg.collectExpr(caller, v.LHS)
		cg.collectExpr(caller, v.RHS)
	case *ast.ReturnStmt:
		cg.collectOptExpr(caller, v.Value)
	case *ast.IfStmt:
		cg.collectExpr(caller, v.Cond)
		cg.collectBlock(caller, v.Then)

		if v.Else != nil {
			cg.collectBlock(caller, v.Else)
		}
	case *ast.WhileLoop:
		cg.collectExpr(caller, v.Cond)
		cg.collectBlock(caller, v.Body)
	case *ast.ThrowStmt:
		cg.collectOptExpr(caller, v.Value)
	case *ast.TryStmt:
		cg.collectBlock(caller, v.Body)

		for _, c := range v.Catches {
			cg.collectBlock(caller, c.Body)
		}
	case *ast.AsmStmt:
		// No calls inside inline assembly.
	case ast.ASTExpr:
		cg.collectExpr(caller, v)
	default:
		report.ReportICE("unsupported statement in call graph construction")
	}
}

func (cg *CallGraph) collectExpr(caller *CallGraphNode, expr ast.ASTExpr) {
	switch v := expr.(type) {
	case *ast.IdentExpr, *ast.Literal:
		// No calls.
	case *ast.FieldExpr:
		cg.collectExpr(caller, v.Base)
	case *ast.CallExpr:
		cg.addCallee(caller, v.Callee)
		cg.collectOptExpr(caller, v.CalleeExpr)
		cg.collectExprs(caller, v.Args)
	case *ast.MethodCallExpr:
		cg.addCallee(caller, v.Callee)
		cg.collectExpr(caller, v.Base)
		cg.collectExprs(caller, v.Args)
	case *ast.ConstructExpr:
		cg.addCallee(caller, v.Ctor)
		cg.addCallee(caller, v.Dtor)
		cg.collectExprs(caller, v.Args)
	case *ast.AllocExpr:
		cg.addCallee(caller, v.Operator)
		cg.collectExprs(caller, v.Args)
	case *ast.TypeQueryExpr:
		cg.collectExpr(caller, v.Operand)
	case *ast.DynCastExpr:
		cg.collectExpr(caller, v.Operand)
	case *ast.BinaryOp:
		cg.collectExpr(caller, v.Lhs)
		cg.collectExpr(caller, v.Rhs)
	case *ast.UnaryOp:
		cg.collectExpr(caller, v.Operand)
	default:
		report.ReportICE("unsupported expression in call graph construction")
	}
}

func (cg *CallGraph) collectOptExpr(caller *CallGraphNode, expr ast.ASTExpr) {
	if expr != nil {
		cg.collectExpr(caller, expr)
	}
}

func (cg *CallGraph) collectExprs(caller *CallGraphNode, exprs []ast.ASTExpr) {
	for _, e := range exprs {
		cg.collectExpr(caller, e)
	}
}
