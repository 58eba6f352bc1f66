package tsgen

import (
	"fmt"
	"strings"

	"github.com/wasmcomponents/wit-ts-stub/wit"
)

// printType prints a WIT type as a TypeScript type expression under ctx,
// recording any cross-interface references it encounters along the way.
// octx selects which of the two option-printing rules applies (see
// [optionContext]); it only matters for the type immediately being
// printed, not for its children, which get their own context as the
// recursion requires.
func printType(ctx *emitCtx, t wit.Type, octx optionContext) (string, error) {
	switch v := t.(type) {
	case wit.Bool:
		return "boolean", nil
	case wit.S8, wit.S16, wit.S32, wit.U8, wit.U16, wit.U32, wit.F32, wit.F64:
		return "number", nil
	case wit.S64, wit.U64:
		return "bigint", nil
	case wit.Char, wit.String:
		return "string", nil
	case *wit.TypeDef:
		return printTypeDef(ctx, v, octx)
	default:
		return "", errUnsupportedConstruct(fmt.Sprintf("%T", t))
	}
}

func printTypeDef(ctx *emitCtx, t *wit.TypeDef, octx optionContext) (string, error) {
	// A named type def — record, variant, enum, flags, resource, or named
	// type alias — always prints as a reference to its own declared name.
	// What that name expands to (a union of per-case interfaces, a class,
	// ...) is the concern of the declaration emitter, not the printer.
	if t.Name != nil {
		return namedTypeRef(ctx, t)
	}
	switch kind := t.Kind.(type) {
	case *wit.Own:
		return namedTypeRef(ctx, kind.Type)
	case *wit.Borrow:
		return namedTypeRef(ctx, kind.Type)
	case *wit.Tuple:
		return printTuple(ctx, kind)
	case *wit.Option:
		return printOption(ctx, kind, octx)
	case *wit.Result:
		return printResult(ctx, kind)
	case *wit.List:
		return printList(ctx, kind)
	case *wit.TypeDef:
		// Anonymous wrapper around a further alias target (decode.go
		// produces these for unnamed type references); recurse.
		return printTypeDef(ctx, kind, octx)
	default:
		return "", errUnsupportedConstruct(describeKind(t.Kind))
	}
}

// namedTypeRef prints a reference to a named record, variant, enum, flags,
// or resource type, recording a cross-interface import if t is owned by an
// interface other than ctx's.
func namedTypeRef(ctx *emitCtx, t *wit.TypeDef) (string, error) {
	if t.Name == nil {
		return "", errUnsupportedConstruct("anonymous " + describeKind(t.Kind))
	}
	name := TypeName(*t.Name)
	if _, ok := t.Kind.(*wit.Resource); ok && ctx.resourceInstanceMode {
		name += "Instance"
	}
	module := ""
	if iface, ok := t.Owner.(*wit.Interface); ok {
		module = ifaceModuleSpecifier(iface)
	}
	ctx.imports.Record(name, module)
	return name, nil
}

func printTuple(ctx *emitCtx, tup *wit.Tuple) (string, error) {
	parts := make([]string, len(tup.Types))
	for i, et := range tup.Types {
		s, err := printType(ctx, et, Nested)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

// asOption reports whether t is itself (possibly through an alias) an
// option type, returning its [wit.Option] kind.
func asOption(t wit.Type) (*wit.Option, bool) {
	td, ok := t.(*wit.TypeDef)
	if !ok {
		return nil, false
	}
	switch kind := td.Kind.(type) {
	case *wit.Option:
		return kind, true
	case *wit.TypeDef:
		return asOption(kind)
	default:
		return nil, false
	}
}

// printOption implements the option-disambiguation rule of §4.2: a
// top-level option<T> prints as "T | undefined"; an option nested inside
// another generic constructor prints as "Option<T | undefined>". A run of
// directly nested options (option<option<T>>) collapses into a single use
// of the helper alias around the innermost non-option payload, matching
// the single combined example in the mapping table rather than stacking
// Option<Option<...>>.
func printOption(ctx *emitCtx, opt *wit.Option, octx optionContext) (string, error) {
	if inner, ok := asOption(opt.Type); ok {
		return printOption(ctx, inner, Nested)
	}
	payload, err := printType(ctx, opt.Type, Nested)
	if err != nil {
		return "", err
	}
	if octx == TopLevel {
		return payload + " | undefined", nil
	}
	ctx.helpers.option = true
	return fmt.Sprintf("Option<%s | undefined>", payload), nil
}

func printResult(ctx *emitCtx, res *wit.Result) (string, error) {
	okStr, err := printResultArm(ctx, res.OK)
	if err != nil {
		return "", err
	}
	errStr, err := printResultArm(ctx, res.Err)
	if err != nil {
		return "", err
	}
	ctx.helpers.result = true
	return fmt.Sprintf("Result<%s, %s>", okStr, errStr), nil
}

func printResultArm(ctx *emitCtx, t wit.Type) (string, error) {
	if t == nil {
		return "void", nil
	}
	return printType(ctx, t, Nested)
}

var typedArrayNames = map[string]string{
	"u8":  "Uint8Array",
	"s8":  "Int8Array",
	"s16": "Int16Array",
	"u16": "Uint16Array",
	"s32": "Int32Array",
	"u32": "Uint32Array",
	"s64": "BigInt64Array",
	"u64": "BigUint64Array",
	"f32": "Float32Array",
	"f64": "Float64Array",
}

func printList(ctx *emitCtx, l *wit.List) (string, error) {
	if prim := primitiveName(l.Type); prim != "" {
		if arr, ok := typedArrayNames[prim]; ok {
			return arr, nil
		}
	}
	elem, err := printType(ctx, l.Type, Nested)
	if err != nil {
		return "", err
	}
	return elem + "[]", nil
}

// primitiveName returns the WIT primitive name for t, or "" if t is not a
// bare primitive (an alias to a primitive does not count).
func primitiveName(t wit.Type) string {
	switch t.(type) {
	case wit.Bool:
		return "bool"
	case wit.S8:
		return "s8"
	case wit.U8:
		return "u8"
	case wit.S16:
		return "s16"
	case wit.U16:
		return "u16"
	case wit.S32:
		return "s32"
	case wit.U32:
		return "u32"
	case wit.S64:
		return "s64"
	case wit.U64:
		return "u64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	default:
		return ""
	}
}

func describeKind(k wit.TypeDefKind) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", k), "*wit.")
}
