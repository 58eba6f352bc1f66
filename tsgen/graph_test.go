package tsgen

import "github.com/wasmcomponents/wit-ts-stub/wit"

// The core treats a resolved WIT graph as a read-only collaborator (spec.md
// §1); these helpers build minimal graphs by hand, standing in for a real
// resolver, so the emitters can be exercised without a WIT parser.

func strptr(s string) *string { return &s }

// testPackage creates a [wit.Package] under a fresh [wit.Resolve].
type testPackage struct {
	res *wit.Resolve
	pkg *wit.Package
}

func newTestPackage(namespace, name string) *testPackage {
	pkg := &wit.Package{Name: wit.Ident{Namespace: namespace, Package: name}}
	return &testPackage{res: &wit.Resolve{Packages: []*wit.Package{pkg}}, pkg: pkg}
}

// iface creates a named [wit.Interface] owned by p, registered in both the
// package and the resolve's flat Interfaces slice.
func (p *testPackage) iface(name string) *wit.Interface {
	i := &wit.Interface{Name: strptr(name), Package: p.pkg}
	p.pkg.Interfaces.Set(name, i)
	p.res.Interfaces = append(p.res.Interfaces, i)
	return i
}

// world creates a [wit.World] owned by p.
func (p *testPackage) world(name string) *wit.World {
	w := &wit.World{Name: name, Package: p.pkg}
	p.pkg.Worlds.Set(name, w)
	p.res.Worlds = append(p.res.Worlds, w)
	return w
}

// record adds a named record TypeDef to iface with the given fields.
func record(iface *wit.Interface, name string, fields ...wit.Field) *wit.TypeDef {
	td := &wit.TypeDef{Name: strptr(name), Kind: &wit.Record{Fields: fields}, Owner: iface}
	iface.TypeDefs.Set(name, td)
	return td
}

func variant(iface *wit.Interface, name string, cases ...wit.Case) *wit.TypeDef {
	td := &wit.TypeDef{Name: strptr(name), Kind: &wit.Variant{Cases: cases}, Owner: iface}
	iface.TypeDefs.Set(name, td)
	return td
}

func enum(iface *wit.Interface, name string, cases ...wit.EnumCase) *wit.TypeDef {
	td := &wit.TypeDef{Name: strptr(name), Kind: &wit.Enum{Cases: cases}, Owner: iface}
	iface.TypeDefs.Set(name, td)
	return td
}

func flags(iface *wit.Interface, name string, fl ...wit.Flag) *wit.TypeDef {
	td := &wit.TypeDef{Name: strptr(name), Kind: &wit.Flags{Flags: fl}, Owner: iface}
	iface.TypeDefs.Set(name, td)
	return td
}

// resource adds a named, empty resource TypeDef to iface. Constructors,
// methods, and static functions are registered separately via
// [addConstructor], [addMethod], and [addStatic] since they live in the
// owning interface's Functions map, keyed by their own WIT names.
func resource(iface *wit.Interface, name string) *wit.TypeDef {
	td := &wit.TypeDef{Name: strptr(name), Kind: &wit.Resource{}, Owner: iface}
	iface.TypeDefs.Set(name, td)
	return td
}

func addConstructor(iface *wit.Interface, res *wit.TypeDef, params ...wit.Param) *wit.Function {
	f := &wit.Function{
		Name:   "[constructor]" + *res.Name,
		Kind:   &wit.Constructor{Type: res},
		Params: params,
	}
	iface.Functions.Set(f.Name, f)
	return f
}

func addMethod(iface *wit.Interface, res *wit.TypeDef, name string, params []wit.Param, results []wit.Param) *wit.Function {
	fullName := "[method]" + *res.Name + "." + name
	self := wit.Param{Name: "self", Type: &wit.TypeDef{Kind: &wit.Borrow{Type: res}}}
	f := &wit.Function{
		Name:    fullName,
		Kind:    &wit.Method{Type: res},
		Params:  append([]wit.Param{self}, params...),
		Results: results,
	}
	iface.Functions.Set(fullName, f)
	return f
}

func addStatic(iface *wit.Interface, res *wit.TypeDef, name string, params []wit.Param, results []wit.Param) *wit.Function {
	fullName := "[static]" + *res.Name + "." + name
	f := &wit.Function{
		Name:    fullName,
		Kind:    &wit.Static{Type: res},
		Params:  params,
		Results: results,
	}
	iface.Functions.Set(fullName, f)
	return f
}

func addFreestanding(iface *wit.Interface, name string, params []wit.Param, results []wit.Param) *wit.Function {
	f := &wit.Function{Name: name, Kind: &wit.Freestanding{}, Params: params, Results: results}
	iface.Functions.Set(name, f)
	return f
}

// own returns an anonymous handle TypeDef wrapping res by value, the Type
// used for a by-value resource reference ("blob" in WIT source).
func own(res *wit.TypeDef) wit.Type {
	return &wit.TypeDef{Kind: &wit.Own{Type: res}}
}

func listOf(t wit.Type) wit.Type {
	return &wit.TypeDef{Kind: &wit.List{Type: t}}
}

func tupleOf(ts ...wit.Type) wit.Type {
	return &wit.TypeDef{Kind: &wit.Tuple{Types: ts}}
}

func optionOf(t wit.Type) wit.Type {
	return &wit.TypeDef{Kind: &wit.Option{Type: t}}
}

func resultOf(ok, errT wit.Type) wit.Type {
	return &wit.TypeDef{Kind: &wit.Result{OK: ok, Err: errT}}
}

func newCtx(iface *wit.Interface) (*emitCtx, *OutputFile) {
	f := &OutputFile{}
	return newEmitCtx(f, iface), f
}

// importIface registers iface as a named import of w, keyed by its WIT name.
func importIface(w *wit.World, iface *wit.Interface) {
	w.Imports.Set(*iface.Name, &wit.InterfaceRef{Interface: iface})
}

// exportIface registers iface as a named export of w, keyed by its WIT name.
func exportIface(w *wit.World, iface *wit.Interface) {
	w.Exports.Set(*iface.Name, &wit.InterfaceRef{Interface: iface})
}

// exportFunc registers a freestanding function as a direct world export.
func exportFunc(w *wit.World, f *wit.Function) {
	w.Exports.Set(f.Name, f)
}

// exportResource registers a resource TypeDef as a direct, inline world
// export (not behind a named interface) — the case [emitExportedResourceSplit]
// targets when building the world file's own declarations.
func exportResource(w *wit.World, t *wit.TypeDef) {
	w.Exports.Set(*t.Name, t)
}
