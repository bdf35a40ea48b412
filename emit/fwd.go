package emit

import (
	"strconv"
	"strings"

	"kernelc/report"
	"kernelc/types"
)

// emitFwdDecls emits forward declarations for every record type the given
// kernel name type depends on, recursing into generic arguments depth-first.
// Each distinct record or generic record is declared exactly once across the
// whole artifact, tracked by the printed set.
func emitFwdDecls(aw *artifactWriter, typ types.Type, printed map[string]struct{}) {
	// Peel off pointer types and get to the record type.
	for {
		pt, ok := typ.(*types.PointerType)
		if !ok {
			break
		}

		typ = pt.ElemType
	}

	rt, ok := typ.(*types.RecordType)
	if !ok {
		return
	}

	// Declare the generic arguments' own records first.
	for _, arg := range rt.TypeArgs {
		if arg.IsType() {
			emitFwdDecls(aw, arg.Type, printed)
		}
	}

	if _, ok := printed[qualifiedName(rt)]; ok {
		return
	}
	printed[qualifiedName(rt)] = struct{}{}

	emitFwdDecl(aw, rt)
}

// emitFwdDecl emits one forward declaration, wrapped in the record's
// namespace chain.  The whole chain is validated before anything is printed
// so a rejected declaration never leaves an unbalanced namespace behind.
func emitFwdDecl(aw *artifactWriter, rt *types.RecordType) {
	for _, scope := range rt.Scopes {
		if scope.Kind != types.ScopeNamespace {
			// A kernel name type nested inside another record is not globally
			// accessible: the runtime loader cannot spell it.
			report.ReportError(nil, "kernel name type %s is not declared at unit scope", rt.Repr())
			return
		}
	}

	for _, scope := range rt.Scopes {
		aw.printf("namespace %s { ", scope.Name)
	}

	if len(rt.TypeArgs) > 0 {
		aw.printf("template <%s> class %s;", templateParams(rt), rt.Name())
	} else {
		aw.printf("class %s;", rt.Name())
	}

	aw.printf(strings.Repeat(" }", len(rt.Scopes)))
	aw.printf("\n")
}

// templateParams renders placeholder template parameters for a generic
// record's forward declaration: one type parameter per type argument, one
// integer parameter per value argument.
func templateParams(rt *types.RecordType) string {
	sb := strings.Builder{}

	for i, arg := range rt.TypeArgs {
		if i != 0 {
			sb.WriteString(", ")
		}

		if arg.IsType() {
			sb.WriteString("class T")
		} else {
			sb.WriteString("int V")
		}

		sb.WriteString(strconv.Itoa(i))
	}

	return sb.String()
}

// qualifiedName returns the record's scope-qualified name without generic
// arguments, used as the dedup key for forward declarations.
func qualifiedName(rt *types.RecordType) string {
	sb := strings.Builder{}

	for _, scope := range rt.Scopes {
		sb.WriteString(scope.Name)
		sb.WriteString("::")
	}

	sb.WriteString(rt.Name())
	return sb.String()
}
