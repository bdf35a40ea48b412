package generate

import (
	"os"

	"kernelc/ast"
	"kernelc/common"
	"kernelc/util"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"
)

// Generator is responsible for converting synthesized kernel entries into the
// LLVM stub module handed to the device back end.  The stub carries one
// declaration per kernel with the flat parameter signature and the SPIR
// kernel calling convention: it is the ABI contract, not executable code, so
// no bodies are generated.
type Generator struct {
	// mod is the LLVM module being generated.
	mod *ir.Module
}

// NewGenerator creates a generator with an empty module.
func NewGenerator() *Generator {
	return &Generator{mod: ir.NewModule()}
}

// DeclareKernel adds the declaration of one synthesized kernel entry to the
// module.
func (g *Generator) DeclareKernel(entry *ast.FuncDecl) *ir.Func {
	params := util.Map(entry.Params, func(sym *common.Symbol) *ir.Param {
		return ir.NewParam(sym.Name, g.convType(sym.Type))
	})

	fn := g.mod.NewFunc(entry.Name, lltypes.Void, params...)
	fn.CallingConv = enum.CallingConvSPIRKernel
	return fn
}

// Module returns the generated module.
func (g *Generator) Module() *ir.Module {
	return g.mod
}

// WriteFile writes the module's textual IR to the given path.  An empty path
// disables stub emission; the boolean result reports whether a file was
// actually written.
func (g *Generator) WriteFile(path string) (bool, error) {
	if path == "" {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(g.mod.String()), 0666); err != nil {
		return false, err
	}

	return true, nil
}
