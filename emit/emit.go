package emit

import (
	"fmt"
	"io"
	"strings"
)

// artifactWriter wraps an io.Writer, remembering the first write error so the
// emission code can stay free of per-line error plumbing.
type artifactWriter struct {
	w   io.Writer
	err error
}

func (aw *artifactWriter) printf(format string, args ...interface{}) {
	if aw.err == nil {
		_, aw.err = fmt.Fprintf(aw.w, format, args...)
	}
}

// Emit writes the integration artifact for all accumulated kernels.
func (t *Table) Emit(w io.Writer) error {
	aw := &artifactWriter{w: w}

	aw.printf("// Generated device kernel integration artifact. Do not edit.\n")
	aw.printf("\n")
	aw.printf("#include <hal/device/detail/kernel_desc.hpp>\n")
	aw.printf("\n")

	aw.printf("// Forward declarations of kernel name types:\n")
	printed := make(map[string]struct{})
	for _, k := range t.Kernels {
		emitFwdDecls(aw, k.NameType, printed)
	}
	aw.printf("\n")

	aw.printf("namespace hal {\n")
	aw.printf("namespace device {\n")
	aw.printf("namespace detail {\n")
	aw.printf("\n")

	aw.printf("// names of all kernels defined in the corresponding source\n")
	aw.printf("static constexpr\n")
	aw.printf("const char* const kernel_names[] = {\n")
	for i, k := range t.Kernels {
		aw.printf("  \"%s\"", k.Name)

		if i < len(t.Kernels)-1 {
			aw.printf(",")
		}
		aw.printf("\n")
	}
	aw.printf("};\n\n")

	aw.printf("// array representing signatures of all kernels defined in the\n")
	aw.printf("// corresponding source\n")
	aw.printf("static constexpr\n")
	aw.printf("const kernel_param_desc_t kernel_signatures[] = {\n")
	for _, k := range t.Kernels {
		aw.printf("  //--- %s\n", k.Name)

		for _, p := range k.Params {
			aw.printf("  { kernel_param_kind_t::%s, %d, %d },\n", p.Kind, p.Info, p.Offset)
		}
		aw.printf("\n")
	}
	aw.printf("};\n\n")

	aw.printf("// indices into the kernel_signatures array, each representing a start of\n")
	aw.printf("// kernel signature descriptor subarray of the kernel_signatures array;\n")
	aw.printf("// the index order in this array corresponds to the kernel name order in the\n")
	aw.printf("// kernel_names array\n")
	aw.printf("static constexpr\n")
	aw.printf("const unsigned kernel_signature_start[] = {\n")
	curStart := 0
	for i, k := range t.Kernels {
		aw.printf("  %d", curStart)

		if i < len(t.Kernels)-1 {
			aw.printf(",")
		}
		aw.printf(" // %s\n", k.Name)
		curStart += len(k.Params)
	}
	aw.printf("};\n\n")

	aw.printf("// Specializations of this template class encompass information\n")
	aw.printf("// about a kernel. The kernel is identified by the template\n")
	aw.printf("// parameter type.\n")
	aw.printf("template <class KernelNameType> struct KernelInfo;\n")
	aw.printf("\n")

	aw.printf("// Specializations of KernelInfo for kernel function types:\n")
	curStart = 0
	for _, k := range t.Kernels {
		aw.printf("template <> struct KernelInfo<%s> {\n", eraseAnonNamespace(k.NameType.Repr()))
		aw.printf("  static constexpr const char* getName() { return \"%s\"; }\n", k.Name)
		aw.printf("  static constexpr unsigned getNumParams() { return %d; }\n", len(k.Params))
		aw.printf("  static constexpr const kernel_param_desc_t& getParamDesc(unsigned i) {\n")
		aw.printf("    return kernel_signatures[i+%d];\n", curStart)
		aw.printf("  }\n")
		aw.printf("};\n")
		curStart += len(k.Params)
	}
	aw.printf("\n")
	aw.printf("} // namespace detail\n")
	aw.printf("} // namespace device\n")
	aw.printf("} // namespace hal\n")

	return aw.err
}

// eraseAnonNamespace removes all anonymous-namespace qualifiers from a
// rendered type name.
func eraseAnonNamespace(s string) string {
	return strings.ReplaceAll(s, "(anonymous namespace)::", "")
}
