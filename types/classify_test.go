package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deviceScopes() []ScopeDesc {
	return []ScopeDesc{
		{Kind: ScopeNamespace, Name: "hal"},
		{Kind: ScopeNamespace, Name: "device"},
	}
}

func makeAccessor(elem Type, dims, target int64) *RecordType {
	return &RecordType{
		NamedTypeBase: NewNamedTypeBase("accessor"),
		Scopes:        deviceScopes(),
		TypeArgs: []TypeArg{
			{Type: elem},
			{Value: dims},
			{Value: 0},
			{Value: target},
		},
		Methods: []*Method{{
			Name: InitProtocolName,
			Params: []MethodParam{
				{Name: "ptr", Type: &PointerType{ElemType: elem, Space: AddrSpaceGlobal}},
				{Name: "access_range", Type: PrimTypeU64},
				{Name: "offset", Type: PrimTypeU64},
			},
		}},
		ByteSize:  32,
		ByteAlign: 8,
	}
}

func makeSampler() *RecordType {
	return &RecordType{
		NamedTypeBase: NewNamedTypeBase("sampler"),
		Scopes:        deviceScopes(),
		Methods: []*Method{{
			Name:   InitProtocolName,
			Params: []MethodParam{{Name: "impl", Type: &PointerType{ElemType: PrimTypeU8}}},
		}},
		ByteSize:  8,
		ByteAlign: 8,
	}
}

func TestClassify_AccessorRecognized(t *testing.T) {
	acc := makeAccessor(PrimTypeF32, 1, int64(TargetGlobalBuffer))

	assert.True(t, IsAccessorType(acc))
	assert.True(t, IsSpecialResource(acc))
	assert.Equal(t, ClassAccessor, Classify(acc))
}

func TestClassify_SamplerRecognized(t *testing.T) {
	sampler := makeSampler()

	assert.True(t, IsSamplerType(sampler))
	assert.Equal(t, ClassSampler, Classify(sampler))
}

func TestClassify_ScopeChainMustMatchExactly(t *testing.T) {
	// Same name, wrong outer namespace.
	acc := makeAccessor(PrimTypeF32, 1, int64(TargetGlobalBuffer))
	acc.Scopes[0].Name = "mylib"
	assert.Equal(t, ClassAggregate, Classify(acc))

	// Same names, one level too deep.
	acc = makeAccessor(PrimTypeF32, 1, int64(TargetGlobalBuffer))
	acc.Scopes = append(acc.Scopes, ScopeDesc{Kind: ScopeNamespace, Name: "detail"})
	assert.Equal(t, ClassAggregate, Classify(acc))

	// Same names, namespace where a record is expected does not promote an
	// unrelated record.
	acc = makeAccessor(PrimTypeF32, 1, int64(TargetGlobalBuffer))
	acc.Scopes[1].Kind = ScopeRecord
	assert.Equal(t, ClassAggregate, Classify(acc))
}

func TestClassify_AccessorRequiresTypeArgs(t *testing.T) {
	// A plain record spelled `accessor` in the right scopes is not a resource.
	acc := makeAccessor(PrimTypeF32, 1, int64(TargetGlobalBuffer))
	acc.TypeArgs = nil

	assert.False(t, IsAccessorType(acc))
	assert.Equal(t, ClassAggregate, Classify(acc))
}

func TestClassify_SamplerMustNotBeGeneric(t *testing.T) {
	sampler := makeSampler()
	sampler.TypeArgs = []TypeArg{{Type: PrimTypeF32}}

	assert.False(t, IsSamplerType(sampler))
}

func TestClassify_ShapeCategories(t *testing.T) {
	assert.Equal(t, ClassScalar, Classify(PrimTypeI32))
	assert.Equal(t, ClassPointer, Classify(&PointerType{ElemType: PrimTypeF32}))
	assert.Equal(t, ClassInvalid, Classify(PrimTypeUnit))

	record := &RecordType{
		NamedTypeBase: NewNamedTypeBase("wrapper"),
		Fields:        []RecordField{{Name: "x", Type: PrimTypeI32}},
	}
	assert.Equal(t, ClassAggregate, Classify(record))
}

func TestAccessorArgs(t *testing.T) {
	acc := makeAccessor(PrimTypeF32, 2, int64(TargetConstantBuffer))

	assert.Equal(t, int64(2), AccessorDims(acc))
	assert.Equal(t, TargetConstantBuffer, AccessorTarget(acc))
}

func TestInitProtocol_Lookup(t *testing.T) {
	acc := makeAccessor(PrimTypeF32, 1, int64(TargetGlobalBuffer))

	proto := InitProtocol(acc)
	require.NotNil(t, proto)
	assert.Len(t, proto.Params, 3)
}

func TestGlobalizePointer(t *testing.T) {
	pt := &PointerType{ElemType: PrimTypeF32, Space: AddrSpaceDefault, Const: true}
	global := GlobalizePointer(pt)

	assert.Equal(t, AddrSpaceGlobal, global.Space)
	assert.True(t, global.Const)
	assert.Equal(t, AddrSpaceDefault, pt.Space, "original type must not be mutated")
}
