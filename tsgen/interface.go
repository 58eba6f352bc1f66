package tsgen

import (
	"slices"
	"strings"

	"github.com/wasmcomponents/wit-ts-stub/wit"
)

// EmitInterfaceModule emits iface as a self-contained ambient module
// declaration file: `declare module "ns:pkg/iface@ver" { ... }` containing
// its type declarations (in declaration order), resource classes, and
// freestanding function declarations.
func EmitInterfaceModule(file *OutputFile, iface *wit.Interface) error {
	ctx := newEmitCtx(file, iface)
	var body strings.Builder

	var typeNames []string
	iface.TypeDefs.All()(func(name string, t *wit.TypeDef) bool {
		typeNames = append(typeNames, name)
		return true
	})

	for _, name := range typeNames {
		t, _ := iface.TypeDefs.GetOK(name)
		if _, ok := t.Kind.(*wit.Resource); ok {
			continue
		}
		if err := emitTypeDeclTo(ctx, &body, t); err != nil {
			return err
		}
	}
	for _, name := range typeNames {
		t, _ := iface.TypeDefs.GetOK(name)
		if _, ok := t.Kind.(*wit.Resource); !ok {
			continue
		}
		if err := emitResourceClassTo(ctx, &body, t); err != nil {
			return err
		}
	}

	var fnNames []string
	iface.Functions.All()(func(name string, f *wit.Function) bool {
		if f.IsFreestanding() {
			fnNames = append(fnNames, name)
		}
		return true
	})
	slices.Sort(fnNames)
	for _, name := range fnNames {
		f, _ := iface.Functions.GetOK(name)
		decl, err := printFreestandingDecl(ctx, f)
		if err != nil {
			return err
		}
		body.WriteString(decl)
	}

	var full strings.Builder
	if ctx.helpers.option {
		full.WriteString(optionHelperDecl)
	}
	if ctx.helpers.result {
		full.WriteString(resultHelperDecl)
	}
	if !ctx.imports.Empty() {
		full.WriteString(ctx.imports.Render())
	}
	full.WriteString(body.String())

	file.printf("declare module %q {\n", ifaceModuleSpecifier(iface))
	file.writeString(indentLines(full.String()))
	file.writeString("}\n")
	return nil
}

func emitTypeDeclTo(ctx *emitCtx, w *strings.Builder, t *wit.TypeDef) error {
	swap := ctx.file
	tmp := &OutputFile{}
	ctx.file = tmp
	err := emitTypeDecl(ctx, t)
	ctx.file = swap
	w.Write(tmp.Bytes())
	return err
}

func emitResourceClassTo(ctx *emitCtx, w *strings.Builder, t *wit.TypeDef) error {
	swap := ctx.file
	tmp := &OutputFile{}
	ctx.file = tmp
	err := emitResourceClass(ctx, t)
	ctx.file = swap
	w.Write(tmp.Bytes())
	return err
}

func indentLines(s string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		if l == "" {
			continue
		}
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n") + "\n"
}
