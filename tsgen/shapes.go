package tsgen

import (
	"strings"

	"github.com/wasmcomponents/wit-ts-stub/wit"
)

// emitTypeDecl writes the full declaration for a named, non-resource type
// def into ctx.file: a record interface, a variant/enum discriminated
// union plus its per-case interfaces, a flags interface, or a type alias.
// Resources are handled separately by [emitResourceClass] and the world
// emitter's two-interface split, since their shape depends on whether
// they are imported or exported.
func emitTypeDecl(ctx *emitCtx, t *wit.TypeDef) error {
	switch kind := t.Kind.(type) {
	case *wit.Record:
		return emitRecord(ctx, t, kind)
	case *wit.Variant:
		return emitVariant(ctx, t, kind)
	case *wit.Enum:
		return emitEnum(ctx, t, kind)
	case *wit.Flags:
		return emitFlags(ctx, t, kind)
	case *wit.Resource:
		return nil // emitted by the caller via emitResourceClass
	default:
		return emitAlias(ctx, t)
	}
}

func emitRecord(ctx *emitCtx, t *wit.TypeDef, rec *wit.Record) error {
	ctx.file.printf("export interface %s {\n", TypeName(*t.Name))
	for _, f := range rec.Fields {
		name, _ := EscapedValueName(f.Name)
		if opt, ok := asOption(f.Type); ok {
			payload, err := printType(ctx, opt.Type, TopLevel)
			if err != nil {
				return err
			}
			ctx.file.printf("  %s?: %s;\n", name, payload)
			continue
		}
		typ, err := printType(ctx, f.Type, TopLevel)
		if err != nil {
			return err
		}
		ctx.file.printf("  %s: %s;\n", name, typ)
	}
	ctx.file.writeString("}\n")
	return nil
}

// variantArm is a single case of a variant or enum, generalized so both
// share one discriminated-union emitter.
type variantArm struct {
	name string
	typ  wit.Type // nil for a payload-less case
}

func emitVariant(ctx *emitCtx, t *wit.TypeDef, v *wit.Variant) error {
	arms := make([]variantArm, len(v.Cases))
	for i, c := range v.Cases {
		arms[i] = variantArm{name: c.Name, typ: c.Type}
	}
	return emitVariantShape(ctx, t, arms)
}

func emitEnum(ctx *emitCtx, t *wit.TypeDef, e *wit.Enum) error {
	arms := make([]variantArm, len(e.Cases))
	for i, c := range e.Cases {
		arms[i] = variantArm{name: c.Name}
	}
	return emitVariantShape(ctx, t, arms)
}

func emitVariantShape(ctx *emitCtx, t *wit.TypeDef, arms []variantArm) error {
	typeName := TypeName(*t.Name)
	armNames := make([]string, len(arms))
	for i, a := range arms {
		armNames[i] = typeName + TypeName(a.name)
	}
	ctx.file.printf("export type %s = %s;\n", typeName, strings.Join(armNames, " | "))
	for i, a := range arms {
		tag := caseTagLiteral(a.name)
		if a.typ == nil {
			ctx.file.printf("export interface %s { tag: %s }\n", armNames[i], tag)
			continue
		}
		val, err := printType(ctx, a.typ, Nested)
		if err != nil {
			return err
		}
		ctx.file.printf("export interface %s { tag: %s, val: %s }\n", armNames[i], tag, val)
	}
	return nil
}

func emitFlags(ctx *emitCtx, t *wit.TypeDef, f *wit.Flags) error {
	fields := make([]string, len(f.Flags))
	for i, fl := range f.Flags {
		name, _ := EscapedValueName(fl.Name)
		fields[i] = name + "?: boolean"
	}
	ctx.file.printf("export interface %s { %s }\n", TypeName(*t.Name), strings.Join(fields, ", "))
	return nil
}

// emitAlias handles a named type def whose Kind is neither a structural
// shape nor a resource: a plain `type foo = bar` alias, or a named wrapper
// around an anonymous composite (list, tuple, option, result).
func emitAlias(ctx *emitCtx, t *wit.TypeDef) error {
	target, err := printTypeDefAliasTarget(ctx, t.Kind)
	if err != nil {
		return err
	}
	ctx.file.printf("export type %s = %s;\n", TypeName(*t.Name), target)
	return nil
}

// printTypeDefAliasTarget prints the right-hand side of a `type foo = ...`
// declaration: the structure kind aliased by t's Kind, not t itself (t
// already has its own name; printTypeDef(t, ...) would just echo it back).
func printTypeDefAliasTarget(ctx *emitCtx, kind wit.TypeDefKind) (string, error) {
	switch k := kind.(type) {
	case *wit.Own:
		return namedTypeRef(ctx, k.Type)
	case *wit.Borrow:
		return namedTypeRef(ctx, k.Type)
	case *wit.Tuple:
		return printTuple(ctx, k)
	case *wit.Option:
		return printOption(ctx, k, TopLevel)
	case *wit.Result:
		return printResult(ctx, k)
	case *wit.List:
		return printList(ctx, k)
	case *wit.TypeDef:
		return printTypeDef(ctx, k, TopLevel)
	default:
		return "", errUnsupportedConstruct(describeKind(kind))
	}
}

// emitResourceClass emits a resource as an ambient-module (or freestanding
// imported) TypeScript class: constructor, instance methods, static
// methods. This is the shape used for imported resources and for
// resources declared inside an interface's ambient module (§4.3).
func emitResourceClass(ctx *emitCtx, t *wit.TypeDef) error {
	name := TypeName(*t.Name)
	ctx.file.printf("export class %s {\n", name)
	if ctor := t.Constructor(); ctor != nil {
		params, err := printParams(ctx, ctor.Params, false)
		if err != nil {
			return err
		}
		ctx.file.printf("  constructor(%s);\n", params)
	}
	for _, sm := range t.StaticFunctions() {
		sig, err := printMethodSig(ctx, sm, false)
		if err != nil {
			return err
		}
		ctx.file.printf("  static %s;\n", sig)
	}
	for _, m := range t.Methods() {
		sig, err := printMethodSig(ctx, m, true)
		if err != nil {
			return err
		}
		ctx.file.printf("  %s;\n", sig)
	}
	ctx.file.writeString("}\n")
	return nil
}

// emitExportedResourceSplit emits the two-interface form used for a
// resource exported from the world's top-level file (§4.3): a Static
// interface carrying the constructor (as `new`) and static methods, and an
// Instance interface carrying instance methods. Resource handle references
// encountered while printing these signatures resolve to the Instance name
// via ctx.resourceInstanceMode.
func emitExportedResourceSplit(ctx *emitCtx, t *wit.TypeDef) error {
	name := TypeName(*t.Name)
	staticName := name + "Static"
	instanceName := name + "Instance"

	ctx.file.printf("export interface %s {\n", staticName)
	if ctor := t.Constructor(); ctor != nil {
		params, err := printParams(ctx, ctor.Params, false)
		if err != nil {
			return err
		}
		ctx.file.printf("  new(%s): %s;\n", params, instanceName)
	}
	for _, sm := range t.StaticFunctions() {
		sig, err := printMethodSig(ctx, sm, false)
		if err != nil {
			return err
		}
		ctx.file.printf("  %s;\n", sig)
	}
	ctx.file.writeString("}\n")

	ctx.file.printf("export interface %s {\n", instanceName)
	for _, m := range t.Methods() {
		sig, err := printMethodSig(ctx, m, true)
		if err != nil {
			return err
		}
		ctx.file.printf("  %s;\n", sig)
	}
	ctx.file.writeString("}\n")
	return nil
}
