package tsgen

import (
	"testing"

	"github.com/wasmcomponents/wit-ts-stub/wit"
)

func TestPrintTypePrimitives(t *testing.T) {
	pkg := newTestPackage("test", "scenario")
	iface := pkg.iface("types")
	ctx, _ := newCtx(iface)

	cases := []struct {
		typ  wit.Type
		want string
	}{
		{wit.Bool{}, "boolean"},
		{wit.U32{}, "number"},
		{wit.S64{}, "bigint"},
		{wit.U64{}, "bigint"},
		{wit.String{}, "string"},
		{wit.Char{}, "string"},
	}
	for _, c := range cases {
		got, err := printType(ctx, c.typ, TopLevel)
		if err != nil {
			t.Fatalf("printType(%#v): %v", c.typ, err)
		}
		if got != c.want {
			t.Errorf("printType(%#v) = %q, want %q", c.typ, got, c.want)
		}
	}
}

func TestPrintListTypedArray(t *testing.T) {
	pkg := newTestPackage("test", "scenario")
	iface := pkg.iface("types")
	ctx, _ := newCtx(iface)

	got, err := printType(ctx, listOf(wit.U8{}), TopLevel)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Uint8Array" {
		t.Errorf("printType(list<u8>) = %q, want Uint8Array", got)
	}

	got, err = printType(ctx, listOf(wit.String{}), TopLevel)
	if err != nil {
		t.Fatal(err)
	}
	if got != "string[]" {
		t.Errorf("printType(list<string>) = %q, want string[]", got)
	}
}

func TestPrintOptionTopLevel(t *testing.T) {
	pkg := newTestPackage("test", "scenario")
	iface := pkg.iface("types")
	ctx, _ := newCtx(iface)

	got, err := printType(ctx, optionOf(wit.U32{}), TopLevel)
	if err != nil {
		t.Fatal(err)
	}
	if got != "number | undefined" {
		t.Errorf("printType(option<u32>, TopLevel) = %q, want %q", got, "number | undefined")
	}
	if ctx.helpers.option {
		t.Errorf("top-level option must not require the Option<T> helper")
	}
}

// TestPrintOptionNested covers the nested-option rule: an option<T> nested inside
// another generic constructor (here, a list) must print using the Option<T>
// helper alias rather than collapsing to "T | undefined", since "absent
// list element" and "present element holding undefined" need to stay
// distinguishable once the option is no longer the outermost type.
func TestPrintOptionNested(t *testing.T) {
	pkg := newTestPackage("test", "scenario")
	iface := pkg.iface("types")
	ctx, _ := newCtx(iface)

	got, err := printType(ctx, listOf(optionOf(wit.U32{})), TopLevel)
	if err != nil {
		t.Fatal(err)
	}
	want := "Option<number | undefined>[]"
	if got != want {
		t.Errorf("printType(list<option<u32>>) = %q, want %q", got, want)
	}
	if !ctx.helpers.option {
		t.Errorf("nested option must set ctx.helpers.option")
	}
}

func TestPrintOptionOfOptionCollapses(t *testing.T) {
	pkg := newTestPackage("test", "scenario")
	iface := pkg.iface("types")
	ctx, _ := newCtx(iface)

	got, err := printType(ctx, optionOf(optionOf(wit.U32{})), TopLevel)
	if err != nil {
		t.Fatal(err)
	}
	want := "Option<number | undefined>"
	if got != want {
		t.Errorf("printType(option<option<u32>>) = %q, want %q", got, want)
	}
}

func TestPrintResult(t *testing.T) {
	pkg := newTestPackage("test", "scenario")
	iface := pkg.iface("types")
	ctx, _ := newCtx(iface)

	got, err := printType(ctx, resultOf(wit.String{}, wit.U32{}), TopLevel)
	if err != nil {
		t.Fatal(err)
	}
	want := "Result<string, number>"
	if got != want {
		t.Errorf("printType(result<string, u32>) = %q, want %q", got, want)
	}
	if !ctx.helpers.result {
		t.Errorf("result type must set ctx.helpers.result")
	}
}

func TestPrintResultNoError(t *testing.T) {
	pkg := newTestPackage("test", "scenario")
	iface := pkg.iface("types")
	ctx, _ := newCtx(iface)

	got, err := printType(ctx, resultOf(wit.String{}, nil), TopLevel)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Result<string, void>" {
		t.Errorf("printType(result<string>) = %q, want %q", got, "Result<string, void>")
	}
}

func TestPrintTupleAndNamedRef(t *testing.T) {
	pkg := newTestPackage("test", "scenario")
	iface := pkg.iface("types")
	point := record(iface, "point", wit.Field{Name: "x", Type: wit.U32{}}, wit.Field{Name: "y", Type: wit.U32{}})
	ctx, _ := newCtx(iface)

	got, err := printType(ctx, tupleOf(point, wit.Bool{}), TopLevel)
	if err != nil {
		t.Fatal(err)
	}
	if got != "[Point, boolean]" {
		t.Errorf("printType(tuple<point, bool>) = %q, want %q", got, "[Point, boolean]")
	}
}

func TestNamedTypeRefCrossInterfaceImport(t *testing.T) {
	pkg := newTestPackage("test", "scenario")
	typesIface := pkg.iface("types")
	point := record(typesIface, "point", wit.Field{Name: "x", Type: wit.U32{}})

	greeterIface := pkg.iface("greeter")
	ctx, _ := newCtx(greeterIface)

	got, err := printType(ctx, point, TopLevel)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Point" {
		t.Errorf("printType(point) from another interface = %q, want Point", got)
	}
	if ctx.imports.Empty() {
		t.Errorf("expected a cross-interface import to be recorded for Point")
	}
}
