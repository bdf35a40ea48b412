package lower

import (
	"kernelc/ast"
	"kernelc/common"
	"kernelc/report"
	"kernelc/types"
	"kernelc/util"
)

// synthesizeEntry builds the device entry function for one kernel.  The entry
// takes the flattened parameter list, declares a local kernel object, replays
// the flattening traversal to initialize it from the parameters, and then
// runs the original entry body with the kernel object parameter renamed to
// the local.
func synthesizeEntry(caller *ast.FuncDecl, kernelObj *types.RecordType, name string, flatParams []ParamDesc) *ast.FuncDecl {
	params := util.Map(flatParams, func(pd ParamDesc) *common.Symbol {
		return &common.Symbol{Name: pd.Name, Type: pd.Type, Kind: common.SymKindParam}
	})

	// Assemble a local kernel object from the incoming formal parameters.
	local := &common.Symbol{Name: "_obj", Type: kernelObj, Kind: common.SymKindLocal}
	stmts := []ast.ASTNode{&ast.VarDecl{Sym: local}}

	localRef := ast.NewIdentExpr(local)
	next := 0 // index of the next unconsumed synthetic parameter

	for _, field := range kernelObj.Fields {
		switch types.Classify(field.Type) {
		case types.ClassAccessor, types.ClassSampler:
			stmts = append(stmts, initResourceStmt(params, &next, localRef, field))
		case types.ClassPointer, types.ClassScalar, types.ClassAggregate:
			// _obj.field = _arg_field
			lhs := ast.NewFieldExpr(localRef, field)
			stmts = append(stmts, &ast.Assign{LHS: lhs, RHS: ast.NewIdentExpr(params[next])})
			next++

			// Resources nested inside an aggregate are initialized through
			// their protocol on top of the bytewise copy above.
			if rt, ok := field.Type.(*types.RecordType); ok {
				stmts = initWrappedResources(stmts, params, &next, lhs, rt)
			}
		default:
			report.ReportICE("unsupported kernel parameter type %s", field.Type.Repr())
		}
	}

	if next != len(params) {
		report.ReportICE("kernel %s: initialization walk consumed %d of %d flat parameters", name, next, len(params))
	}

	// Splice in the original body with the kernel object parameter renamed to
	// the local clone.
	stmts = append(stmts, substituteBlock(caller.Body, caller.Params[0], local))

	// Device eligibility is not set here: the validator marks every function
	// it collects, synthesized entries included, and checks it exactly once.
	return &ast.FuncDecl{
		Name:       name,
		Params:     params,
		ReturnType: types.PrimTypeUnit,
		Body:       &ast.Block{Stmts: stmts},
	}
}

// initResourceStmt builds the protocol call initializing one resource field,
// consuming the protocol's worth of synthetic parameters.
func initResourceStmt(params []*common.Symbol, next *int, base ast.ASTExpr, field types.RecordField) ast.ASTNode {
	rt := field.Type.(*types.RecordType)
	proto := types.InitProtocol(rt)

	args := make([]ast.ASTExpr, len(proto.Params))
	for i := range proto.Params {
		args[i] = ast.NewIdentExpr(params[*next])
		*next++
	}

	// [obj or wrapper].resource.__init(args...)
	return &ast.MethodCallExpr{
		ExprBase:   ast.NewExprBase(types.PrimTypeUnit),
		Base:       ast.NewFieldExpr(base, field),
		MethodName: types.InitProtocolName,
		Args:       args,
	}
}

// initWrappedResources appends protocol calls for resource fields nested in
// an aggregate at arbitrary depth, mirroring appendWrappedResourceParams.
func initWrappedResources(stmts []ast.ASTNode, params []*common.Symbol, next *int, base ast.ASTExpr, wrapper *types.RecordType) []ast.ASTNode {
	for _, field := range wrapper.Fields {
		nested, ok := field.Type.(*types.RecordType)
		if !ok {
			continue
		}

		if types.IsSpecialResource(nested) {
			stmts = append(stmts, initResourceStmt(params, next, base, field))
		} else {
			stmts = initWrappedResources(stmts, params, next, ast.NewFieldExpr(base, field), nested)
		}
	}

	return stmts
}
