// Package driver is the embedding surface of the device compiler: the host
// compiler driver constructs a Pipeline, feeds it the unit's functions and
// kernel entries, and runs it.  Command-line handling, source parsing, and
// diagnostic presentation all belong to the embedding driver.
package driver

import (
	"kernelc/ast"
	"kernelc/emit"
	"kernelc/generate"
	"kernelc/lower"
	"kernelc/report"
	"kernelc/types"
	"kernelc/validate"
)

// KernelEntry pairs a frontend kernel entry function with the name type the
// host runtime names the kernel by.
type KernelEntry struct {
	Caller   *ast.FuncDecl
	NameType types.Type
}

// Pipeline runs the device passes for one unit: lowering each kernel entry,
// validating everything device-reachable, and emitting the integration
// artifact and the stub module.
type Pipeline struct {
	// The compilation profile in effect.
	profile *Profile

	// The frontend's name mangler.
	mangler lower.Mangler

	// The unit's functions and kernel entries, in frontend order.
	funcs   []*ast.FuncDecl
	entries []KernelEntry

	// The descriptor table accumulated across all lowered kernels.
	table *emit.Table

	// The synthesized device entries, one per kernel entry.
	synthesized []*ast.FuncDecl
}

// NewPipeline creates an empty pipeline for the given profile and mangler.
func NewPipeline(profile *Profile, mangler lower.Mangler) *Pipeline {
	return &Pipeline{
		profile: profile,
		mangler: mangler,
		table:   emit.NewTable(),
	}
}

// AddFunction registers one unit function with the pipeline.  Kernel entries
// must be registered through AddKernelEntry instead.
func (p *Pipeline) AddFunction(fn *ast.FuncDecl) {
	p.funcs = append(p.funcs, fn)
}

// AddKernelEntry registers one kernel entry and its name type.
func (p *Pipeline) AddKernelEntry(caller *ast.FuncDecl, nameType types.Type) {
	p.entries = append(p.entries, KernelEntry{Caller: caller, NameType: nameType})
}

// Run executes the device passes over everything registered so far and writes
// the configured outputs.  It returns whether the unit compiled without
// errors; output files may still have been written for a failed unit so the
// embedding driver can inspect them.
func (p *Pipeline) Run() bool {
	// Lower each kernel entry, accumulating descriptors in registration order.
	for _, entry := range p.entries {
		if kernelObj := entry.Caller.KernelObjectType(); kernelObj != nil {
			validate.CheckDeviceType(kernelObj, entry.Caller.Span())
		}

		devKernel := lower.ConstructDeviceKernel(entry.Caller, entry.NameType, p.table, p.mangler)
		p.synthesized = append(p.synthesized, devKernel)
	}

	// Validate everything reachable from the synthesized entries.
	all := make([]*ast.FuncDecl, 0, len(p.funcs)+len(p.synthesized))
	all = append(all, p.funcs...)
	all = append(all, p.synthesized...)

	graph := validate.BuildCallGraph(all)
	validate.MarkDevice(graph, p.synthesized, p.profile.AllowFuncPtr)

	// Output failures are reported but do not stop the remaining outputs.
	if _, err := p.table.WriteFile(p.profile.ArtifactPath); err != nil {
		report.ReportError(nil, "failed to write integration artifact: %s", err.Error())
	}

	gen := generate.NewGenerator()
	for _, devKernel := range p.synthesized {
		gen.DeclareKernel(devKernel)
	}

	if _, err := gen.WriteFile(p.profile.StubModulePath); err != nil {
		report.ReportError(nil, "failed to write stub module: %s", err.Error())
	}

	return !report.AnyErrors()
}

// Table returns the accumulated descriptor table.
func (p *Pipeline) Table() *emit.Table {
	return p.table
}

// Synthesized returns the synthesized device entries in registration order.
func (p *Pipeline) Synthesized() []*ast.FuncDecl {
	return p.synthesized
}
