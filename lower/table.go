package lower

import (
	"kernelc/emit"
	"kernelc/report"
	"kernelc/types"
)

// accessorDimsShift is where the accessor's dimension count is packed into
// the descriptor info field, above the target enumeration.  Part of the ABI
// shared with the runtime loader.
const accessorDimsShift = 11

// PopulateTable records one kernel's parameter descriptors into the
// integration table.  The walk mirrors BuildFlatParams exactly: the i-th
// table descriptor describes the i-th flat parameter.
func PopulateTable(tbl *emit.Table, name string, nameType types.Type, kernelObj *types.RecordType) {
	tbl.StartKernel(name, nameType)

	for _, field := range kernelObj.Fields {
		offset := field.Offset

		switch types.Classify(field.Type) {
		case types.ClassAccessor:
			addAccessorDesc(tbl, field.Type.(*types.RecordType), offset)
		case types.ClassSampler:
			addSamplerDesc(tbl, field.Type.(*types.RecordType), offset)
		case types.ClassPointer:
			tbl.AddParamDesc(emit.KindPointer, field.Type.Size(), offset)
		case types.ClassAggregate:
			tbl.AddParamDesc(emit.KindStdLayout, field.Type.Size(), offset)
			addWrappedResourceDescs(tbl, field.Type.(*types.RecordType), offset)
		case types.ClassScalar:
			tbl.AddParamDesc(emit.KindStdLayout, field.Type.Size(), offset)
		default:
			report.ReportICE("unsupported kernel parameter type %s", field.Type.Repr())
		}
	}

	tbl.EndKernel()
}

// addAccessorDesc records an accessor's descriptors: one per parameter of its
// initialization protocol, so the table stays in lock-step with the flat
// parameter list.  The info field packs the accessor's two integral template
// arguments: the access target and the dimension count.
func addAccessorDesc(tbl *emit.Table, acc *types.RecordType, offset int) {
	info := int(types.AccessorTarget(acc)) | int(types.AccessorDims(acc))<<accessorDimsShift

	for range types.InitProtocol(acc).Params {
		tbl.AddParamDesc(emit.KindAccessor, info, offset)
	}
}

// addSamplerDesc records a sampler descriptor.  The payload is the byte size
// of the protocol's single sampler parameter.
func addSamplerDesc(tbl *emit.Table, sampler *types.RecordType, offset int) {
	params := types.InitProtocol(sampler).Params
	if len(params) != 1 {
		report.ReportICE("sampler %s protocol must take exactly one parameter", sampler.Repr())
	}

	tbl.AddParamDesc(emit.KindSampler, params[0].Type.Size(), offset)
}

// addWrappedResourceDescs records descriptors for resource fields nested in
// an aggregate at arbitrary depth.  A resource nested at intra-aggregate
// offset Ro inside an aggregate at offset Fo is described at Fo + Ro.
func addWrappedResourceDescs(tbl *emit.Table, wrapper *types.RecordType, base int) {
	for _, field := range wrapper.Fields {
		nested, ok := field.Type.(*types.RecordType)
		if !ok {
			continue
		}

		switch {
		case types.IsAccessorType(nested):
			addAccessorDesc(tbl, nested, base+field.Offset)
		case types.IsSamplerType(nested):
			addSamplerDesc(tbl, nested, base+field.Offset)
		default:
			addWrappedResourceDescs(tbl, nested, base+field.Offset)
		}
	}
}
