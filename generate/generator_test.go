package generate

import (
	"testing"

	"github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kernelc/ast"
	"kernelc/common"
	"kernelc/types"
)

func TestDeclareKernel_Signature(t *testing.T) {
	entry := &ast.FuncDecl{
		Name:       "_KVecAdd",
		ReturnType: types.PrimTypeUnit,
		Params: []*common.Symbol{
			{Name: "_arg_x", Type: types.PrimTypeI32, Kind: common.SymKindParam},
			{Name: "_arg_acc", Type: &types.PointerType{
				ElemType: types.PrimTypeF32,
				Space:    types.AddrSpaceGlobal,
			}, Kind: common.SymKindParam},
		},
	}

	g := NewGenerator()
	fn := g.DeclareKernel(entry)

	assert.Equal(t, "_KVecAdd", fn.Name())
	assert.Equal(t, enum.CallingConvSPIRKernel, fn.CallingConv)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, lltypes.I32, fn.Params[0].Typ)

	pt, ok := fn.Params[1].Typ.(*lltypes.PointerType)
	require.True(t, ok)
	assert.Equal(t, lltypes.AddrSpace(1), pt.AddrSpace)

	out := g.Module().String()
	assert.Contains(t, out, "_KVecAdd")
	assert.Contains(t, out, "spir_kernel")
	assert.Contains(t, out, "addrspace(1)")
}

func TestConvType_RecordDefinedOnce(t *testing.T) {
	record := &types.RecordType{
		NamedTypeBase: types.NewNamedTypeBase("pair"),
		Fields: []types.RecordField{
			{Name: "a", Type: types.PrimTypeI64},
			{Name: "b", Type: types.PrimTypeF64},
		},
		ByteSize:  16,
		ByteAlign: 8,
	}

	g := NewGenerator()

	first := g.convType(record)
	second := g.convType(record)

	assert.Same(t, record.LLType(), first)
	assert.Equal(t, first, second)
	assert.Len(t, g.Module().TypeDefs, 1)
}

func TestConvType_SelfReferentialRecordTerminates(t *testing.T) {
	node := &types.RecordType{
		NamedTypeBase: types.NewNamedTypeBase("node"),
		ByteSize:      16,
		ByteAlign:     8,
	}
	node.Fields = []types.RecordField{
		{Name: "value", Type: types.PrimTypeI32},
		{Name: "next", Type: &types.PointerType{ElemType: node}},
	}

	g := NewGenerator()
	g.convType(node)

	assert.Len(t, g.Module().TypeDefs, 1)
}
