package lower

import (
	"kernelc/ast"
	"kernelc/common"
	"kernelc/report"
	"kernelc/util"
)

// The functions below implement the kernel object rename: a structural copy
// of the original entry body in which every reference to the kernel object
// parameter is replaced by a reference to the synthesized local.  All other
// statement structure is preserved; copied blocks drop their source spans
// since the result is synthetic.

func substituteBlock(b *ast.Block, old, new *common.Symbol) *ast.Block {
	return &ast.Block{
		Stmts: util.Map(b.Stmts, func(stmt ast.ASTNode) ast.ASTNode {
			return substituteStmt(stmt, old, new)
		}),
	}
}

func substituteStmt(stmt ast.ASTNode, old, new *common.Symbol) ast.ASTNode {
	switch v := stmt.(type) {
	case *ast.Block:
		return substituteBlock(v, old, new)
	case *ast.VarDecl:
		return &ast.VarDecl{
			ASTBase: v.ASTBase,
			Sym:     v.Sym,
			Init:    substituteOptExpr(v.Init, old, new),
		}
	case *ast.Assign:
		return &ast.Assign{
			ASTBase: v.ASTBase,
			LHS:     substituteExpr(v.LHS, old, new),
			RHS:     substituteExpr(v.RHS, old, new),
		}
	case *ast.ReturnStmt:
		return &ast.ReturnStmt{
			ASTBase: v.ASTBase,
			Value:   substituteOptExpr(v.Value, old, new),
		}
	case *ast.IfStmt:
		ifStmt := &ast.IfStmt{
			ASTBase: v.ASTBase,
			Cond:    substituteExpr(v.Cond, old, new),
			Then:    substituteBlock(v.Then, old, new),
		}

		if v.Else != nil {
			ifStmt.Else = substituteBlock(v.Else, old, new)
		}

		return ifStmt
	case *ast.WhileLoop:
		return &ast.WhileLoop{
			ASTBase: v.ASTBase,
			Cond:    substituteExpr(v.Cond, old, new),
			Body:    substituteBlock(v.Body, old, new),
		}
	case *ast.ThrowStmt:
		return &ast.ThrowStmt{
			ASTBase: v.ASTBase,
			Value:   substituteOptExpr(v.Value, old, new),
		}
	case *ast.TryStmt:
		return &ast.TryStmt{
			ASTBase: v.ASTBase,
			Body:    substituteBlock(v.Body, old, new),
			Catches: util.Map(v.Catches, func(c ast.CatchClause) ast.CatchClause {
				return ast.CatchClause{Sym: c.Sym, Body: substituteBlock(c.Body, old, new)}
			}),
		}
	case *ast.AsmStmt:
		return v
	case ast.ASTExpr:
		return substituteExpr(v, old, new)
	default:
		report.ReportICE("unsupported statement in kernel entry body")
		return nil
	}
}

func substituteExpr(expr ast.ASTExpr, old, new *common.Symbol) ast.ASTExpr {
	switch v := expr.(type) {
	case *ast.IdentExpr:
		if v.Sym == old {
			return ast.NewIdentExpr(new)
		}

		return v
	case *ast.FieldExpr:
		return &ast.FieldExpr{
			ASTBase:   v.ASTBase,
			ExprBase:  v.ExprBase,
			Base:      substituteExpr(v.Base, old, new),
			FieldName: v.FieldName,
		}
	case *ast.CallExpr:
		return &ast.CallExpr{
			ASTBase:    v.ASTBase,
			ExprBase:   v.ExprBase,
			Callee:     v.Callee,
			CalleeExpr: substituteOptExpr(v.CalleeExpr, old, new),
			Args:       substituteExprs(v.Args, old, new),
		}
	case *ast.MethodCallExpr:
		return &ast.MethodCallExpr{
			ASTBase:    v.ASTBase,
			ExprBase:   v.ExprBase,
			Base:       substituteExpr(v.Base, old, new),
			MethodName: v.MethodName,
			Callee:     v.Callee,
			Args:       substituteExprs(v.Args, old, new),
		}
	case *ast.ConstructExpr:
		return &ast.ConstructExpr{
			ASTBase:  v.ASTBase,
			ExprBase: v.ExprBase,
			Record:   v.Record,
			Ctor:     v.Ctor,
			Dtor:     v.Dtor,
			Args:     substituteExprs(v.Args, old, new),
		}
	case *ast.AllocExpr:
		return &ast.AllocExpr{
			ASTBase:     v.ASTBase,
			ExprBase:    v.ExprBase,
			Operator:    v.Operator,
			Replaceable: v.Replaceable,
			Args:        substituteExprs(v.Args, old, new),
		}
	case *ast.TypeQueryExpr:
		return &ast.TypeQueryExpr{
			ASTBase:  v.ASTBase,
			ExprBase: v.ExprBase,
			Operand:  substituteExpr(v.Operand, old, new),
		}
	case *ast.DynCastExpr:
		return &ast.DynCastExpr{
			ASTBase:  v.ASTBase,
			ExprBase: v.ExprBase,
			Operand:  substituteExpr(v.Operand, old, new),
		}
	case *ast.BinaryOp:
		return &ast.BinaryOp{
			ASTBase:  v.ASTBase,
			ExprBase: v.ExprBase,
			Op:       v.Op,
			Lhs:      substituteExpr(v.Lhs, old, new),
			Rhs:      substituteExpr(v.Rhs, old, new),
		}
	case *ast.UnaryOp:
		return &ast.UnaryOp{
			ASTBase:  v.ASTBase,
			ExprBase: v.ExprBase,
			Op:       v.Op,
			Operand:  substituteExpr(v.Operand, old, new),
		}
	case *ast.Literal:
		return v
	default:
		report.ReportICE("unsupported expression in kernel entry body")
		return nil
	}
}

func substituteOptExpr(expr ast.ASTExpr, old, new *common.Symbol) ast.ASTExpr {
	if expr == nil {
		return nil
	}

	return substituteExpr(expr, old, new)
}

func substituteExprs(exprs []ast.ASTExpr, old, new *common.Symbol) []ast.ASTExpr {
	return util.Map(exprs, func(e ast.ASTExpr) ast.ASTExpr {
		return substituteExpr(e, old, new)
	})
}
