package tsgen

import (
	"strings"
	"testing"

	"github.com/wasmcomponents/wit-ts-stub/wit"
)

func TestEmitRecord(t *testing.T) {
	pkg := newTestPackage("test", "scenario")
	iface := pkg.iface("types")
	point := record(iface, "point",
		wit.Field{Name: "x", Type: wit.U32{}},
		wit.Field{Name: "y", Type: wit.U32{}},
	)
	ctx, f := newCtx(iface)
	if err := emitTypeDecl(ctx, point); err != nil {
		t.Fatal(err)
	}
	want := "export interface Point {\n  x: number;\n  y: number;\n}\n"
	if got := f.Bytes(); string(got) != want {
		t.Errorf("emitRecord = %q, want %q", got, want)
	}
}

func TestEmitRecordOptionalField(t *testing.T) {
	pkg := newTestPackage("test", "scenario")
	iface := pkg.iface("types")
	rec := record(iface, "named-point",
		wit.Field{Name: "label", Type: optionOf(wit.String{})},
	)
	ctx, f := newCtx(iface)
	if err := emitTypeDecl(ctx, rec); err != nil {
		t.Fatal(err)
	}
	want := "export interface NamedPoint {\n  label?: string;\n}\n"
	if got := f.Bytes(); string(got) != want {
		t.Errorf("emitRecord(optional field) = %q, want %q", got, want)
	}
}

// TestEmitVariant covers property 5: every variant case gets its own
// per-case interface alongside the discriminated-union alias.
func TestEmitVariant(t *testing.T) {
	pkg := newTestPackage("test", "scenario")
	iface := pkg.iface("types")
	v := variant(iface, "shape",
		wit.Case{Name: "circle", Type: wit.U32{}},
		wit.Case{Name: "square", Type: wit.U32{}},
		wit.Case{Name: "point"},
	)
	ctx, f := newCtx(iface)
	if err := emitTypeDecl(ctx, v); err != nil {
		t.Fatal(err)
	}
	out := string(f.Bytes())

	wantUnion := "export type Shape = ShapeCircle | ShapeSquare | ShapePoint;\n"
	if !strings.Contains(out, wantUnion) {
		t.Errorf("emitVariant union line missing; got:\n%s", out)
	}
	for _, want := range []string{
		"export interface ShapeCircle { tag: 'circle', val: number }\n",
		"export interface ShapeSquare { tag: 'square', val: number }\n",
		"export interface ShapePoint { tag: 'point' }\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("emitVariant missing case interface %q; got:\n%s", want, out)
		}
	}
}

func TestEmitEnum(t *testing.T) {
	pkg := newTestPackage("test", "scenario")
	iface := pkg.iface("types")
	e := enum(iface, "color", wit.EnumCase{Name: "red"}, wit.EnumCase{Name: "green"}, wit.EnumCase{Name: "blue"})
	ctx, f := newCtx(iface)
	if err := emitTypeDecl(ctx, e); err != nil {
		t.Fatal(err)
	}
	out := string(f.Bytes())
	if !strings.Contains(out, "export type Color = ColorRed | ColorGreen | ColorBlue;\n") {
		t.Errorf("emitEnum union line missing; got:\n%s", out)
	}
	if !strings.Contains(out, "export interface ColorRed { tag: 'red' }\n") {
		t.Errorf("emitEnum case interface missing; got:\n%s", out)
	}
}

func TestEmitFlags(t *testing.T) {
	pkg := newTestPackage("test", "scenario")
	iface := pkg.iface("types")
	fl := flags(iface, "permissions", wit.Flag{Name: "read"}, wit.Flag{Name: "write"})
	ctx, f := newCtx(iface)
	if err := emitTypeDecl(ctx, fl); err != nil {
		t.Fatal(err)
	}
	want := "export interface Permissions { read?: boolean, write?: boolean }\n"
	if got := string(f.Bytes()); got != want {
		t.Errorf("emitFlags = %q, want %q", got, want)
	}
}

// TestEmitResourceClassConstructorKeepsFirstParam guards against dropping a
// resource constructor's first (and only non-implicit) parameter: unlike a
// method, a constructor has no self receiver to skip.
func TestEmitResourceClassConstructorKeepsFirstParam(t *testing.T) {
	pkg := newTestPackage("test", "scenario")
	iface := pkg.iface("types")
	blob := resource(iface, "blob")
	addConstructor(iface, blob, wit.Param{Name: "init", Type: listOf(wit.U8{})})
	addMethod(iface, blob, "write", []wit.Param{{Name: "bytes", Type: listOf(wit.U8{})}}, nil)
	addStatic(iface, blob, "merge",
		[]wit.Param{{Name: "lhs", Type: own(blob)}, {Name: "rhs", Type: own(blob)}},
		[]wit.Param{{Name: "", Type: own(blob)}})

	ctx, f := newCtx(iface)
	if err := emitResourceClass(ctx, blob); err != nil {
		t.Fatal(err)
	}
	out := string(f.Bytes())
	if !strings.Contains(out, "constructor(init: Uint8Array);\n") {
		t.Errorf("resource constructor dropped its parameter; got:\n%s", out)
	}
	if !strings.Contains(out, "write(bytes: Uint8Array): void;\n") {
		t.Errorf("resource method signature wrong; got:\n%s", out)
	}
	if !strings.Contains(out, "static merge(lhs: Blob, rhs: Blob): Blob;\n") {
		t.Errorf("resource static method signature wrong; got:\n%s", out)
	}
}

// TestEmitExportedResourceSplit runs under the same ctx shape [EmitWorldFile]
// actually uses (iface == nil, so ownModule == "", matching a world file,
// which owns no ambient module of its own) rather than an interface ctx.
// The static "merge" method's self-referencing params exercise the path
// that used to make the printer record a bogus cross-module import for
// BlobInstance even though it's declared inline by this very split.
func TestEmitExportedResourceSplit(t *testing.T) {
	pkg := newTestPackage("test", "scenario")
	iface := pkg.iface("storage")
	blob := resource(iface, "blob")
	addConstructor(iface, blob, wit.Param{Name: "init", Type: listOf(wit.U8{})})
	addMethod(iface, blob, "write", []wit.Param{{Name: "bytes", Type: listOf(wit.U8{})}}, nil)
	addStatic(iface, blob, "merge",
		[]wit.Param{{Name: "lhs", Type: own(blob)}, {Name: "rhs", Type: own(blob)}},
		[]wit.Param{{Name: "", Type: own(blob)}})

	ctx, f := newCtx(nil)
	ctx.resourceInstanceMode = true
	if err := emitExportedResourceSplit(ctx, blob); err != nil {
		t.Fatal(err)
	}
	out := string(f.Bytes())
	if !strings.Contains(out, "new(init: Uint8Array): BlobInstance;\n") {
		t.Errorf("exported resource constructor wrong; got:\n%s", out)
	}
	if !strings.Contains(out, "merge(lhs: BlobInstance, rhs: BlobInstance): BlobInstance;\n") {
		t.Errorf("exported resource static merge signature wrong; got:\n%s", out)
	}
	if !strings.Contains(out, "export interface BlobInstance {\n  write(bytes: Uint8Array): void;\n}\n") {
		t.Errorf("exported resource instance interface wrong; got:\n%s", out)
	}
	// The split is self-contained: even though the printer recorded a
	// cross-module reference for BlobInstance (ctx.ownModule == "" accepts
	// any owning interface), the caller (EmitWorldFile) must never render
	// ctx.imports for the world file, since BlobInstance is declared right
	// here and "test:scenario/storage" only ever exports class Blob.
	if ctx.imports.Empty() {
		t.Errorf("expected the printer to record the BlobInstance reference even though it must never be rendered")
	}
}
