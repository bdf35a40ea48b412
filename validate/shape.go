package validate

import (
	"kernelc/report"
	"kernelc/types"
)

// checkDeviceType checks the shape of a type used in device code: no
// variable-length arrays and no polymorphic records anywhere in it.  The
// visited set carries the records already seen on this check so recursive
// record graphs (through pointer members) terminate, each record being
// checked once.
func checkDeviceType(typ types.Type, span *report.TextSpan, visited map[*types.RecordType]struct{}) {
	switch v := typ.(type) {
	case *types.ArrayType:
		if v.Dynamic {
			report.ReportError(span, "variable length arrays are unsupported in device code")
			return
		}

		checkDeviceType(v.ElemType, span, visited)
	case *types.PointerType:
		checkDeviceType(v.ElemType, span, visited)
	case *types.RecordType:
		if _, ok := visited[v]; ok {
			return
		}
		visited[v] = struct{}{}

		if v.Polymorphic {
			report.ReportError(span, "polymorphic record type %s is unsupported in device code", v.Repr())
		}

		for _, field := range v.Fields {
			checkDeviceType(field.Type, span, visited)
		}
	case *types.FuncType:
		for _, param := range v.ParamTypes {
			checkDeviceType(param, span, visited)
		}

		checkDeviceType(v.ReturnType, span, visited)
	}
}

// CheckDeviceType checks one type against the device shape rules.  Used by
// drivers to validate kernel object types before lowering.
func CheckDeviceType(typ types.Type, span *report.TextSpan) {
	checkDeviceType(typ, span, make(map[*types.RecordType]struct{}))
}
