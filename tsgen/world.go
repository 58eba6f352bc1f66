package tsgen

import (
	"slices"
	"strings"

	"github.com/wasmcomponents/wit-ts-stub/wit"
)

// EmitWorldFile emits the top-level `.d.ts` for w: its own type
// declarations, one umbrella interface per exported interface referenced
// by name, the two-interface split for any exported resource, method
// signatures for exported freestanding functions, and a single umbrella
// `<World>World` interface with one field per export.
func EmitWorldFile(file *OutputFile, w *wit.World) error {
	ctx := newEmitCtx(file, nil)
	ctx.resourceInstanceMode = true

	var body strings.Builder
	var umbrella []string

	var names []string
	w.Exports.All()(func(name string, _ wit.WorldItem) bool {
		names = append(names, name)
		return true
	})

	for _, name := range names {
		item, _ := w.Exports.GetOK(name)
		switch v := item.(type) {
		case *wit.Function:
			sig, err := printMethodSig(ctx, v, false)
			if err != nil {
				return err
			}
			umbrella = append(umbrella, sig+",")
		case *wit.TypeDef:
			if _, ok := v.Kind.(*wit.Resource); ok {
				if err := emitExportedResourceSplitTo(ctx, &body, v); err != nil {
					return err
				}
				umbrella = append(umbrella, TypeName(*v.Name)+": "+TypeName(*v.Name)+"Static,")
				continue
			}
			if err := emitTypeDeclTo(ctx, &body, v); err != nil {
				return err
			}
		case *wit.InterfaceRef:
			iface := v.Interface
			if iface.Name == nil {
				fields, err := emitInlineInterfaceBody(ctx, &body, iface)
				if err != nil {
					return err
				}
				umbrella = append(umbrella, fields...)
			} else {
				if err := emitNamedExportInterface(ctx, &body, iface); err != nil {
					return err
				}
				umbrella = append(umbrella, ValueName(name)+": "+TypeName(*iface.Name)+",")
			}
		}
	}

	umbrellaName := TypeName(w.Name) + "World"
	body.WriteString("export interface " + umbrellaName + " {\n")
	for _, f := range umbrella {
		body.WriteString("  " + f + "\n")
	}
	body.WriteString("}\n")

	if ctx.helpers.option {
		file.writeString(optionHelperDecl)
	}
	if ctx.helpers.result {
		file.writeString(resultHelperDecl)
	}
	// The world file never emits import type lines of its own (see the
	// Open Question decision in SPEC_FULL.md/DESIGN.md): every named type
	// it references either lives in an already-emitted ambient module
	// (globally visible once included, so no import is needed) or is
	// declared inline in this very file by the loop above, in which case
	// an import would collide with the local declaration. ctx.imports is
	// still populated by the type printer (its ownModule is "" for the
	// world), but it is deliberately left unrendered here.
	file.writeString(body.String())
	return nil
}

// emitNamedExportInterface emits the umbrella interface for a named
// interface exported by reference from the world: `export interface
// TypeName(iface) { <method sig>, ... }`, plus the two-interface split for
// any resources it declares (§4.3), whose fields land on this umbrella
// rather than the world's top-level one.
func emitNamedExportInterface(ctx *emitCtx, body *strings.Builder, iface *wit.Interface) error {
	fields, err := collectInterfaceExportFields(ctx, body, iface)
	if err != nil {
		return err
	}
	body.WriteString("export interface " + TypeName(*iface.Name) + " {\n")
	for _, f := range fields {
		body.WriteString("  " + f + "\n")
	}
	body.WriteString("}\n")
	return nil
}

// emitInlineInterfaceBody handles an interface exported inline (no name of
// its own): its types, resources, and functions are treated as if the
// world declared them directly, so the caller folds the returned fields
// straight into the world's top-level umbrella.
func emitInlineInterfaceBody(ctx *emitCtx, body *strings.Builder, iface *wit.Interface) ([]string, error) {
	return collectInterfaceExportFields(ctx, body, iface)
}

func collectInterfaceExportFields(ctx *emitCtx, body *strings.Builder, iface *wit.Interface) ([]string, error) {
	var fields []string

	var typeNames []string
	iface.TypeDefs.All()(func(n string, _ *wit.TypeDef) bool {
		typeNames = append(typeNames, n)
		return true
	})
	for _, n := range typeNames {
		t, _ := iface.TypeDefs.GetOK(n)
		if _, ok := t.Kind.(*wit.Resource); ok {
			if err := emitExportedResourceSplitTo(ctx, body, t); err != nil {
				return nil, err
			}
			fields = append(fields, TypeName(*t.Name)+": "+TypeName(*t.Name)+"Static,")
			continue
		}
		if err := emitTypeDeclTo(ctx, body, t); err != nil {
			return nil, err
		}
	}

	var fnNames []string
	iface.Functions.All()(func(n string, f *wit.Function) bool {
		if f.IsFreestanding() {
			fnNames = append(fnNames, n)
		}
		return true
	})
	slices.Sort(fnNames)
	for _, n := range fnNames {
		f, _ := iface.Functions.GetOK(n)
		sig, err := printMethodSig(ctx, f, false)
		if err != nil {
			return nil, err
		}
		fields = append(fields, sig+",")
	}
	return fields, nil
}

func emitExportedResourceSplitTo(ctx *emitCtx, w *strings.Builder, t *wit.TypeDef) error {
	swap := ctx.file
	tmp := &OutputFile{}
	ctx.file = tmp
	err := emitExportedResourceSplit(ctx, t)
	ctx.file = swap
	w.Write(tmp.Bytes())
	return err
}

const optionHelperDecl = "export type Option<T> = { tag: 'none' } | { tag: 'some', val: T };\n"
const resultHelperDecl = "export type Result<T, E> = { tag: 'ok', val: T } | { tag: 'err', val: E };\n"
