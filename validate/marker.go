package validate

import (
	"fmt"

	"kernelc/ast"
	"kernelc/common"
	"kernelc/report"
)

// Marker collects the device-reachable function set of a unit and marks and
// checks every function in it.
type Marker struct {
	// The call graph of the unit.
	graph *CallGraph

	// The set of device-reachable functions, with its insertion order kept so
	// marking and checking are deterministic.
	kernelSet map[*ast.FuncDecl]struct{}
	order     []*ast.FuncDecl

	// The set of functions that participate in a call cycle.
	recursiveSet map[*ast.FuncDecl]struct{}

	// Whether calls through function values are tolerated.
	allowFuncPtr bool
}

// MarkDevice collects everything reachable from the given kernel entries,
// propagates tuning attributes onto each entry, marks every collected function
// device-eligible, and checks its body against the device subset.  Functions
// already marked on entry are assumed checked and are not revisited, so the
// pass is safe to run again over an extended entry list.
func MarkDevice(graph *CallGraph, entries []*ast.FuncDecl, allowFuncPtr bool) {
	m := &Marker{
		graph:        graph,
		kernelSet:    make(map[*ast.FuncDecl]struct{}),
		recursiveSet: make(map[*ast.FuncDecl]struct{}),
		allowFuncPtr: allowFuncPtr,
	}

	for _, entry := range entries {
		m.collectKernelSet(entry, nil)
		m.applyTuningAttrs(entry, m.collectTuningAttrs(entry))
	}

	for _, fn := range m.order {
		if fn.DeviceEligible {
			continue
		}

		fn.DeviceEligible = true

		if _, ok := m.recursiveSet[fn]; ok {
			fn.Recursive = true
		}

		if fn.Body != nil {
			m.checkFunction(fn)
		}
	}
}

/* -------------------------------------------------------------------------- */

// collectKernelSet adds fn and everything it transitively calls to the kernel
// set.  The path holds the functions on the current call chain in order:
// finding an already-collected callee on the chain means the chain closes a
// cycle, and every function from that callee onward is recorded as recursive.
func (m *Marker) collectKernelSet(fn *ast.FuncDecl, path []*ast.FuncDecl) {
	m.addToKernelSet(fn)
	path = append(path, fn)

	if node := m.graph.NodeOf(fn); node != nil {
		for _, callee := range node.Callees {
			if _, collected := m.kernelSet[callee.Func]; !collected {
				m.collectKernelSet(callee.Func, path)
			} else {
				m.markCycle(path, callee.Func)
			}
		}
	}
}

// markCycle records every member of the cycle closed by a back edge from the
// end of path to target, if target is on the path at all.
func (m *Marker) markCycle(path []*ast.FuncDecl, target *ast.FuncDecl) {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == target {
			for _, member := range path[i:] {
				m.recursiveSet[member] = struct{}{}
			}

			return
		}
	}
}

func (m *Marker) addToKernelSet(fn *ast.FuncDecl) {
	if _, ok := m.kernelSet[fn]; ok {
		return
	}

	m.kernelSet[fn] = struct{}{}
	m.order = append(m.order, fn)
}

/* -------------------------------------------------------------------------- */

// collectTuningAttrs gathers every tuning attribute written anywhere in the
// entry's call graph, breadth-first from the entry so nearer declarations win
// ties in diagnostic ordering.
func (m *Marker) collectTuningAttrs(entry *ast.FuncDecl) []*common.TuningAttr {
	var attrs []*common.TuningAttr

	seen := map[*ast.FuncDecl]struct{}{entry: {}}
	worklist := []*ast.FuncDecl{entry}

	for len(worklist) > 0 {
		fn := worklist[0]
		worklist = worklist[1:]

		attrs = append(attrs, fn.Attrs...)

		if node := m.graph.NodeOf(fn); node != nil {
			for _, callee := range node.Callees {
				if _, ok := seen[callee.Func]; !ok {
					seen[callee.Func] = struct{}{}
					worklist = append(worklist, callee.Func)
				}
			}
		}
	}

	return attrs
}

// applyTuningAttrs propagates the collected attributes onto the entry.  The
// first attribute of each kind wins; a later attribute of the same kind with
// different values is a conflict that invalidates the entry.
func (m *Marker) applyTuningAttrs(entry *ast.FuncDecl, attrs []*common.TuningAttr) {
	for _, attr := range attrs {
		switch attr.Kind {
		case common.AttrSubGroupSize, common.AttrWorkGroupSize:
			existing := entry.AttrOfKind(attr.Kind)
			if existing == nil {
				copied := *attr
				entry.Attrs = append(entry.Attrs, &copied)
			} else if existing != attr && !existing.SameValues(attr) {
				report.ReportConflict(
					attr.Span,
					fmt.Sprintf("conflicting %s attributes in the call graph of kernel %s",
						attr.Kind.Repr(), entry.Name),
					report.Note{Message: "first applied here", Span: existing.Span},
					report.Note{Message: "conflicting attribute here", Span: attr.Span},
				)

				entry.Invalid = true
			}
		default:
			report.ReportICE("unknown attribute kind: %d", attr.Kind)
		}
	}
}
