package lower

import (
	"kernelc/report"
	"kernelc/types"
)

// ParamDesc describes one flat kernel parameter: its synthetic name and type.
type ParamDesc struct {
	// The parameter's name, derived from the kernel object field it loads.
	Name string

	// The parameter's type.
	Type types.Type
}

// makeParamDesc creates a flat parameter descriptor for the given source
// field name and desired parameter type.
func makeParamDesc(fieldName string, typ types.Type) ParamDesc {
	return ParamDesc{Name: "_arg_" + fieldName, Type: typ}
}

// BuildFlatParams flattens a kernel object type into its ordered flat
// parameter list.  Fields are visited in declaration order:
//
//   - A special resource contributes one parameter per parameter of its
//     initialization protocol, in protocol declaration order.
//   - A pointer contributes one parameter with its pointee rewritten into the
//     global address space.
//   - An aggregate contributes one parameter for the whole field, then is
//     searched recursively for nested resource fields, each of which
//     contributes its protocol's parameters.
//   - A scalar contributes one parameter.
func BuildFlatParams(kernelObj *types.RecordType) []ParamDesc {
	var descs []ParamDesc

	for _, field := range kernelObj.Fields {
		switch types.Classify(field.Type) {
		case types.ClassAccessor, types.ClassSampler:
			descs = appendResourceParams(descs, field)
		case types.ClassAggregate:
			rt := field.Type.(*types.RecordType)

			// Host and device layout of the aggregate may differ; the runtime
			// loader copies it byte-for-byte, so this is surfaced but does not
			// stop the lowering.
			if !rt.StandardLayout {
				report.ReportWarning(nil, "kernel argument %s has non-standard-layout type %s", field.Name, rt.Repr())
			}

			descs = append(descs, makeParamDesc(field.Name, field.Type))
			descs = appendWrappedResourceParams(descs, rt)
		case types.ClassPointer:
			pt := field.Type.(*types.PointerType)
			descs = append(descs, makeParamDesc(field.Name, types.GlobalizePointer(pt)))
		case types.ClassScalar:
			descs = append(descs, makeParamDesc(field.Name, field.Type))
		default:
			report.ReportICE("unsupported kernel parameter type %s", field.Type.Repr())
		}
	}

	return descs
}

// appendResourceParams appends one flat parameter per parameter of the
// resource field's initialization protocol.
func appendResourceParams(descs []ParamDesc, field types.RecordField) []ParamDesc {
	rt := field.Type.(*types.RecordType)

	for _, param := range types.InitProtocol(rt).Params {
		descs = append(descs, makeParamDesc(field.Name, param.Type))
	}

	return descs
}

// appendWrappedResourceParams searches an aggregate for resource fields at
// arbitrary depth and appends their protocol parameters.  Non-resource nested
// fields do not contribute parameters of their own: they ride along inside
// the aggregate's single by-value parameter.
func appendWrappedResourceParams(descs []ParamDesc, wrapper *types.RecordType) []ParamDesc {
	for _, field := range wrapper.Fields {
		if nested, ok := field.Type.(*types.RecordType); ok {
			if types.IsSpecialResource(nested) {
				descs = appendResourceParams(descs, field)
			} else {
				descs = appendWrappedResourceParams(descs, nested)
			}
		}
	}

	return descs
}
