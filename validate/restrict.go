package validate

import (
	"fmt"

	"kernelc/ast"
	"kernelc/common"
	"kernelc/report"
	"kernelc/types"
)

// checkFunction checks one device-reachable function body against the
// restricted device subset, reporting a violation at every offending
// construct.  Checking continues past violations so one pass surfaces all of
// them.
func (m *Marker) checkFunction(fn *ast.FuncDecl) {
	for _, param := range fn.Params {
		checkDeviceType(param.Type, param.DefSpan, make(map[*types.RecordType]struct{}))
	}

	checkDeviceType(fn.ReturnType, fn.Span(), make(map[*types.RecordType]struct{}))

	m.checkBlock(fn.Body)
}

func (m *Marker) checkBlock(b *ast.Block) {
	for _, stmt := range b.Stmts {
		m.checkStmt(stmt)
	}
}

func (m *Marker) checkStmt(stmt ast.ASTNode) {
	switch v := stmt.(type) {
	case *ast.Block:
		m.checkBlock(v)
	case *ast.VarDecl:
		checkDeviceType(v.Sym.Type, v.Sym.DefSpan, make(map[*types.RecordType]struct{}))
		m.checkOptExpr(v.Init)
	case *ast.Assign:
		m.checkExpr(v.LHS)
		m.checkExpr(v.RHS)
	case *ast.ReturnStmt:
		m.checkOptExpr(v.Value)
	case *ast.IfStmt:
		m.checkExpr(v.Cond)
		m.checkBlock(v.Then)

		if v.Else != nil {
			m.checkBlock(v.Else)
		}
	case *ast.WhileLoop:
		m.checkExpr(v.Cond)
		m.checkBlock(v.Body)
	case *ast.ThrowStmt:
		report.ReportViolation(report.ViolationException, v.Span())
		m.checkOptExpr(v.Value)
	case *ast.TryStmt:
		report.ReportViolation(report.ViolationException, v.Span())
		m.checkBlock(v.Body)

		for _, c := range v.Catches {
			m.checkBlock(c.Body)
		}
	case *ast.AsmStmt:
		report.ReportViolation(report.ViolationInlineAssembly, v.Span())
	case ast.ASTExpr:
		m.checkExpr(v)
	default:
		report.ReportICE("unsupported statement in device subset check")
	}
}

func (m *Marker) checkExpr(expr ast.ASTExpr) {
	switch v := expr.(type) {
	case *ast.IdentExpr:
		m.checkIdent(v)
	case *ast.Literal:
		// Always fine.
	case *ast.FieldExpr:
		m.checkExpr(v.Base)
	case *ast.CallExpr:
		if v.Callee == nil && !m.allowFuncPtr {
			report.ReportViolation(report.ViolationFunctionPointerCall, v.Span())
		}

		m.checkDirectCallee(v.Callee, v.Span())
		m.checkCallTypes(v.Callee, v.Args, v.Span())
		m.checkOptExpr(v.CalleeExpr)
		m.checkExprs(v.Args)
	case *ast.MethodCallExpr:
		if v.Callee != nil && v.Callee.Virtual {
			report.ReportViolation(report.ViolationVirtualCall, v.Span())
		}

		m.checkDirectCallee(v.Callee, v.Span())
		m.checkCallTypes(v.Callee, v.Args, v.Span())
		m.checkExpr(v.Base)
		m.checkExprs(v.Args)
	case *ast.ConstructExpr:
		checkDeviceType(v.Record, v.Span(), make(map[*types.RecordType]struct{}))
		m.checkDirectCallee(v.Ctor, v.Span())
		m.checkDirectCallee(v.Dtor, v.Span())
		m.checkCallTypes(nil, v.Args, v.Span())
		m.checkExprs(v.Args)
	case *ast.AllocExpr:
		// Placement and non-allocating overloads are exempt: they do not
		// touch the heap.
		if v.Replaceable {
			report.ReportViolation(report.ViolationHeapAllocation, v.Span())
		}

		m.checkDirectCallee(v.Operator, v.Span())
		m.checkExprs(v.Args)
	case *ast.TypeQueryExpr:
		report.ReportViolation(report.ViolationRTTI, v.Span())
		m.checkExpr(v.Operand)
	case *ast.DynCastExpr:
		report.ReportViolation(report.ViolationRTTI, v.Span())
		m.checkExpr(v.Operand)
	case *ast.BinaryOp:
		m.checkExpr(v.Lhs)
		m.checkExpr(v.Rhs)
	case *ast.UnaryOp:
		m.checkExpr(v.Operand)
	default:
		report.ReportICE("unsupported expression in device subset check")
	}
}

// checkIdent flags references to mutable static storage.
func (m *Marker) checkIdent(ident *ast.IdentExpr) {
	sym := ident.Sym

	switch sym.Kind {
	case common.SymKindGlobal:
		if !sym.Constant {
			report.ReportViolation(report.ViolationGlobalVariable, ident.Span(),
				report.Note{
					Message: fmt.Sprintf("%s declared here", sym.Name),
					Span:    sym.DefSpan,
				})
		}
	case common.SymKindStaticMember:
		if !sym.Constant {
			report.ReportViolation(report.ViolationNonConstStaticMember, ident.Span(),
				report.Note{
					Message: fmt.Sprintf("%s declared here", sym.Name),
					Span:    sym.DefSpan,
				})
		}
	}
}

// checkCallTypes checks the types flowing through one call site: the callee's
// return type and each argument's type.  The return-type check here covers
// declaration-only callees, which never pass through checkFunction.
func (m *Marker) checkCallTypes(callee *ast.FuncDecl, args []ast.ASTExpr, span *report.TextSpan) {
	if callee != nil {
		checkDeviceType(callee.ReturnType, span, make(map[*types.RecordType]struct{}))
	}

	for _, arg := range args {
		checkDeviceType(arg.Type(), span, make(map[*types.RecordType]struct{}))
	}
}

// checkDirectCallee flags direct calls into a call cycle.
func (m *Marker) checkDirectCallee(callee *ast.FuncDecl, span *report.TextSpan) {
	if callee == nil {
		return
	}

	if _, ok := m.recursiveSet[callee]; ok {
		report.ReportViolation(report.ViolationRecursion, span,
			report.Note{
				Message: fmt.Sprintf("%s is part of a call cycle", callee.Name),
				Span:    callee.Span(),
			})
	}
}

func (m *Marker) checkOptExpr(expr ast.ASTExpr) {
	if expr != nil {
		m.checkExpr(expr)
	}
}

func (m *Marker) checkExprs(exprs []ast.ASTExpr) {
	for _, e := range exprs {
		m.checkExpr(e)
	}
}
