package lower

import (
	"kernelc/ast"
	"kernelc/emit"
	"kernelc/report"
	"kernelc/types"
)

// Mangler derives a stable external name from a kernel name type.  Name
// mangling belongs to the frontend; the lowering pass only consumes it.
type Mangler interface {
	MangleName(typ types.Type) string
}

// ConstructDeviceKernel lowers one kernel entry: it flattens the entry's
// kernel object into an ABI-stable parameter list, records the kernel's
// descriptors into the integration table, and synthesizes the device entry
// function that reconstructs the kernel object from the flat list and runs
// the original body.  The descriptor list and the synthesized initialization
// statements are produced by lock-step traversals of the same object type:
// the runtime loader indexes the flat parameter list purely by position, so
// their order is the load-bearing contract of this package.
func ConstructDeviceKernel(caller *ast.FuncDecl, nameType types.Type, tbl *emit.Table, mangler Mangler) *ast.FuncDecl {
	kernelObj := caller.KernelObjectType()
	if kernelObj == nil {
		report.ReportICE("kernel entry %s does not take a single kernel object parameter", caller.Name)
	}

	flatParams := BuildFlatParams(kernelObj)

	name := mangler.MangleName(nameType)

	PopulateTable(tbl, name, nameType, kernelObj)

	return synthesizeEntry(caller, kernelObj, name, flatParams)
}
