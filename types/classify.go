package types

import "kernelc/report"

// Classification is the shape category the lowering pass assigns to a kernel
// object field type.
type Classification int

// Enumeration of field type classifications.
const (
	ClassScalar Classification = iota
	ClassPointer
	ClassAggregate
	ClassAccessor
	ClassSampler
	ClassInvalid
)

// InitProtocolName is the name of the designated member whose parameter list
// defines how a special resource decomposes into flat kernel parameters.
const InitProtocolName = "__init"

// Recognized special-resource scope chains.  A type qualifies as a resource
// only if its enclosing scope chain matches one of these exactly, outermost
// scope first, with the type itself as the final link.
var (
	accessorScopes = []ScopeDesc{
		{Kind: ScopeNamespace, Name: "hal"},
		{Kind: ScopeNamespace, Name: "device"},
		{Kind: ScopeRecord, Name: "accessor"},
	}

	samplerScopes = []ScopeDesc{
		{Kind: ScopeNamespace, Name: "hal"},
		{Kind: ScopeNamespace, Name: "device"},
		{Kind: ScopeRecord, Name: "sampler"},
	}
)

// Classify decides the shape category of a type.  It is a pure predicate: no
// diagnostics are produced here.
func Classify(typ Type) Classification {
	switch v := typ.(type) {
	case PrimitiveType:
		if v == PrimTypeUnit {
			return ClassInvalid
		}

		return ClassScalar
	case *PointerType:
		return ClassPointer
	case *RecordType:
		if IsAccessorType(v) {
			return ClassAccessor
		} else if IsSamplerType(v) {
			return ClassSampler
		}

		return ClassAggregate
	default:
		return ClassInvalid
	}
}

// IsAccessorType returns whether the given type is an instance of the
// recognized buffer accessor template.
func IsAccessorType(typ Type) bool {
	rt, ok := typ.(*RecordType)

	// Accessors are always generic instances: a record spelled `accessor`
	// without arguments does not qualify.
	return ok && len(rt.TypeArgs) > 0 && matchQualifiedTypeName(rt, accessorScopes)
}

// IsSamplerType returns whether the given type is the recognized sampler
// record.
func IsSamplerType(typ Type) bool {
	rt, ok := typ.(*RecordType)
	return ok && len(rt.TypeArgs) == 0 && matchQualifiedTypeName(rt, samplerScopes)
}

// IsSpecialResource returns whether the given type is any recognized special
// resource.
func IsSpecialResource(typ Type) bool {
	return IsAccessorType(typ) || IsSamplerType(typ)
}

// matchQualifiedTypeName checks the declaration scope chain of a record
// against an expected chain whose final link names the record itself.  A
// mismatched kind or name at any level fails the match, as does a record that
// is not declared at the expected depth.
func matchQualifiedTypeName(rt *RecordType, scopes []ScopeDesc) bool {
	if len(rt.Scopes) != len(scopes)-1 {
		return false
	}

	last := scopes[len(scopes)-1]
	if last.Kind != ScopeRecord || rt.Name() != last.Name {
		return false
	}

	for i, scope := range scopes[:len(scopes)-1] {
		if rt.Scopes[i].Kind != scope.Kind || rt.Scopes[i].Name != scope.Name {
			return false
		}
	}

	return true
}

/* -------------------------------------------------------------------------- */

// InitProtocol returns the initialization protocol member of a recognized
// resource type.  Its absence indicates a contract breach in the upstream
// producer of kernel objects, not a recoverable condition.
func InitProtocol(rt *RecordType) *Method {
	if method, ok := rt.MethodByName(InitProtocolName); ok {
		return method
	}

	report.ReportICE("resource type %s is missing its %s member", rt.Repr(), InitProtocolName)
	return nil
}

/* -------------------------------------------------------------------------- */

// AccessTarget identifies what kind of memory a buffer accessor accesses.
// The values are part of the ABI shared with the runtime loader.
type AccessTarget int64

// Enumeration of accessor targets.
const (
	TargetGlobalBuffer AccessTarget = 2014 + iota
	TargetConstantBuffer
	TargetLocal
	TargetImage
	TargetHostBuffer
	TargetHostImage
	TargetImageArray
)

// AccessorDims returns the dimension count of an accessor instance.
func AccessorDims(rt *RecordType) int64 {
	return rt.TypeArgs[1].Value
}

// AccessorTarget returns the access target of an accessor instance.
func AccessorTarget(rt *RecordType) AccessTarget {
	return AccessTarget(rt.TypeArgs[3].Value)
}
