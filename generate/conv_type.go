package generate

import (
	"kernelc/report"
	"kernelc/types"
	"kernelc/util"

	lltypes "github.com/llir/llvm/ir/types"
)

func (g *Generator) convType(typ types.Type) lltypes.Type {
	switch v := typ.(type) {
	case types.PrimitiveType:
		return convPrimType(v)
	case *types.PointerType:
		pt := lltypes.NewPointer(g.convType(v.ElemType))
		pt.AddrSpace = convAddrSpace(v.Space)
		return pt
	case *types.ArrayType:
		return lltypes.NewArray(uint64(v.Len), g.convType(v.ElemType))
	case *types.RecordType:
		return g.convRecordType(v)
	case *types.FuncType:
		ft := lltypes.NewFunc(
			g.convType(v.ReturnType),
			util.Map(v.ParamTypes, g.convType)...,
		)
		return lltypes.NewPointer(ft)
	}

	report.ReportICE("type not supported in stub module generation: %s", typ.Repr())
	return nil
}

// convRecordType converts a record into a named struct definition, defining
// it in the module on first use and caching the definition on the record.
// The cache is installed before fields are converted so self-referential
// records terminate.
func (g *Generator) convRecordType(rt *types.RecordType) lltypes.Type {
	if llTyp := rt.LLType(); llTyp != nil {
		return llTyp
	}

	st := lltypes.NewStruct()
	def := g.mod.NewTypeDef(rt.Repr(), st)
	rt.SetLLType(def)

	for _, field := range rt.Fields {
		st.Fields = append(st.Fields, g.convType(field.Type))
	}

	return def
}

func convPrimType(pt types.PrimitiveType) lltypes.Type {
	switch pt {
	case types.PrimTypeUnit:
		return lltypes.Void
	case types.PrimTypeBool:
		return lltypes.I1
	case types.PrimTypeI8, types.PrimTypeU8:
		return lltypes.I8
	case types.PrimTypeI16, types.PrimTypeU16:
		return lltypes.I16
	case types.PrimTypeI32, types.PrimTypeU32:
		return lltypes.I32
	case types.PrimTypeI64, types.PrimTypeU64:
		return lltypes.I64
	case types.PrimTypeF32:
		return lltypes.Float
	case types.PrimTypeF64:
		return lltypes.Double
	}

	// unreachable
	return nil
}

// convAddrSpace maps pointer address spaces onto the SPIR numbering used by
// the device back end.
func convAddrSpace(space types.AddrSpace) lltypes.AddrSpace {
	switch space {
	case types.AddrSpaceGlobal:
		return 1
	case types.AddrSpaceConstant:
		return 2
	case types.AddrSpaceLocal:
		return 3
	default:
		return 0
	}
}
