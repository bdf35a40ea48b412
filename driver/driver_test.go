package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kernelc/ast"
	"kernelc/common"
	"kernelc/report"
	"kernelc/types"
)

type reprMangler struct{}

func (reprMangler) MangleName(typ types.Type) string {
	return "_K" + typ.Repr()
}

func setupCollector() *report.Collector {
	report.InitReporter(report.LogLevelVerbose)
	c := &report.Collector{}
	report.SetSink(c)
	return c
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.toml")
	content := `
artifact-path = "out/kernels.hpp"
stub-module = "out/kernels.ll"
allow-function-pointers = true
log-level = "warn"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	prof, err := LoadProfile(path)
	require.NoError(t, err)

	assert.Equal(t, "out/kernels.hpp", prof.ArtifactPath)
	assert.Equal(t, "out/kernels.ll", prof.StubModulePath)
	assert.True(t, prof.AllowFuncPtr)
	assert.Equal(t, report.LogLevelWarn, prof.ReporterLogLevel())
}

func TestLoadProfile_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	prof, err := LoadProfile(path)
	require.NoError(t, err)

	assert.Empty(t, prof.ArtifactPath)
	assert.False(t, prof.AllowFuncPtr)
	assert.Equal(t, report.LogLevelVerbose, prof.ReporterLogLevel())
}

func TestLoadProfile_BadLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.toml")
	require.NoError(t, os.WriteFile(path, []byte(`log-level = "debug"`), 0644))

	_, err := LoadProfile(path)
	assert.Error(t, err)
}

func TestLoadProfile_MissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

/* -------------------------------------------------------------------------- */

func makeAccessor(elem types.Type) *types.RecordType {
	return &types.RecordType{
		NamedTypeBase: types.NewNamedTypeBase("accessor"),
		Scopes: []types.ScopeDesc{
			{Kind: types.ScopeNamespace, Name: "hal"},
			{Kind: types.ScopeNamespace, Name: "device"},
		},
		TypeArgs: []types.TypeArg{
			{Type: elem},
			{Value: 1},
			{Value: 0},
			{Value: int64(types.TargetGlobalBuffer)},
		},
		Methods: []*types.Method{{
			Name: types.InitProtocolName,
			Params: []types.MethodParam{
				{Name: "ptr", Type: &types.PointerType{ElemType: elem, Space: types.AddrSpaceGlobal}},
				{Name: "access_range", Type: types.PrimTypeU64},
				{Name: "offset", Type: types.PrimTypeU64},
			},
		}},
		ByteSize:       32,
		ByteAlign:      8,
		StandardLayout: true,
	}
}

func TestPipeline_EndToEnd(t *testing.T) {
	setupCollector()

	tmpDir := t.TempDir()
	prof := &Profile{
		ArtifactPath:   filepath.Join(tmpDir, "kernels.hpp"),
		StubModulePath: filepath.Join(tmpDir, "kernels.ll"),
	}

	kernelObj := &types.RecordType{
		NamedTypeBase: types.NewNamedTypeBase("capture"),
		Fields: []types.RecordField{
			{Name: "x", Type: types.PrimTypeI32, Offset: 0},
			{Name: "acc", Type: makeAccessor(types.PrimTypeF32), Offset: 8},
		},
		ByteSize:       40,
		ByteAlign:      8,
		StandardLayout: true,
	}

	objParam := &common.Symbol{Name: "k", Type: kernelObj, Kind: common.SymKindParam}
	helper := &ast.FuncDecl{
		Name:       "helper",
		ReturnType: types.PrimTypeUnit,
		Body:       &ast.Block{},
	}
	caller := &ast.FuncDecl{
		Name:       "run_kernel",
		Params:     []*common.Symbol{objParam},
		ReturnType: types.PrimTypeUnit,
		Body: &ast.Block{Stmts: []ast.ASTNode{
			&ast.CallExpr{ExprBase: ast.NewExprBase(types.PrimTypeUnit), Callee: helper},
		}},
	}

	nameType := &types.RecordType{NamedTypeBase: types.NewNamedTypeBase("VecAdd")}

	p := NewPipeline(prof, reprMangler{})
	p.AddFunction(helper)
	p.AddKernelEntry(caller, nameType)

	require.True(t, p.Run())

	// One kernel, four descriptors in lock-step with the flat parameters.
	require.Len(t, p.Table().Kernels, 1)
	assert.Len(t, p.Table().Kernels[0].Params, 4)

	require.Len(t, p.Synthesized(), 1)
	entry := p.Synthesized()[0]
	assert.Equal(t, "_KVecAdd", entry.Name)
	assert.Len(t, entry.Params, 4)
	assert.True(t, entry.DeviceEligible)

	// The helper reached through the original body is device code now.
	assert.True(t, helper.DeviceEligible)

	// Both outputs were written.
	artifact, err := os.ReadFile(prof.ArtifactPath)
	require.NoError(t, err)
	assert.Contains(t, string(artifact), "_KVecAdd")
	assert.Contains(t, string(artifact), "kernel_param_kind_t::kind_accessor")

	stub, err := os.ReadFile(prof.StubModulePath)
	require.NoError(t, err)
	assert.Contains(t, string(stub), "_KVecAdd")
	assert.Contains(t, string(stub), "spir_kernel")
}

func TestPipeline_ViolationFailsRun(t *testing.T) {
	collector := setupCollector()

	kernelObj := &types.RecordType{
		NamedTypeBase:  types.NewNamedTypeBase("capture"),
		Fields:         []types.RecordField{{Name: "x", Type: types.PrimTypeI32, Offset: 0}},
		ByteSize:       4,
		ByteAlign:      4,
		StandardLayout: true,
	}

	objParam := &common.Symbol{Name: "k", Type: kernelObj, Kind: common.SymKindParam}
	caller := &ast.FuncDecl{
		Name:       "run_kernel",
		Params:     []*common.Symbol{objParam},
		ReturnType: types.PrimTypeUnit,
		Body: &ast.Block{Stmts: []ast.ASTNode{
			&ast.ThrowStmt{},
		}},
	}

	nameType := &types.RecordType{NamedTypeBase: types.NewNamedTypeBase("Bad")}

	p := NewPipeline(&Profile{}, reprMangler{})
	p.AddKernelEntry(caller, nameType)

	assert.False(t, p.Run())
	require.Len(t, collector.Violations(report.ViolationException), 1)
}
