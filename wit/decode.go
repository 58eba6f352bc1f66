package wit

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/coreos/go-semver/semver"
)

// DecodeJSON decodes a resolved WIT graph from r into a [Resolve].
//
// The wire format is a flat, index-addressed encoding of the same graph
// [Resolve] represents in memory: top-level arrays of packages,
// interfaces, type definitions, functions and worlds, with cross-references
// expressed as integer indexes into those arrays rather than nested values.
// This keeps decoding a two-pass process (allocate, then link) instead of
// needing forward-reference tricks for the cycles a resolved WIT graph
// routinely contains (a type referring to an interface that contains it).
func DecodeJSON(r io.Reader) (*Resolve, error) {
	var doc wireResolve
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding WIT JSON: %w", err)
	}
	return doc.build()
}

type wireResolve struct {
	Packages   []wirePackage   `json:"packages"`
	Interfaces []wireInterface `json:"interfaces"`
	Types      []wireTypeDef   `json:"types"`
	Functions  []wireFunction  `json:"functions"`
	Worlds     []wireWorld     `json:"worlds"`
}

type wirePackage struct {
	Name       string   `json:"name"`
	Interfaces map[string]int `json:"interfaces"`
	Worlds     map[string]int `json:"worlds"`
	Docs       string   `json:"docs,omitempty"`
}

type wireInterface struct {
	Name      *string        `json:"name,omitempty"`
	Package   *int           `json:"package,omitempty"`
	Types     map[string]int `json:"types"`
	Functions map[string]int `json:"functions"`
	Stability *wireStability `json:"stability,omitempty"`
	Docs      string         `json:"docs,omitempty"`
}

type wireWorld struct {
	Name      string                `json:"name"`
	Package   *int                  `json:"package,omitempty"`
	Imports   map[string]wireItem   `json:"imports"`
	Exports   map[string]wireItem   `json:"exports"`
	Stability *wireStability        `json:"stability,omitempty"`
	Docs      string                `json:"docs,omitempty"`
}

// wireItem is a tagged reference to whatever a world imports or exports:
// an interface (by index), a freestanding function (by index), or a
// standalone type (by index).
type wireItem struct {
	Interface *int           `json:"interface,omitempty"`
	Function  *int           `json:"function,omitempty"`
	Type      *int           `json:"type,omitempty"`
	Stability *wireStability `json:"stability,omitempty"`
}

type wireTypeDef struct {
	Name      *string        `json:"name,omitempty"`
	Kind      wireKind       `json:"kind"`
	Owner     *wireOwner     `json:"owner,omitempty"`
	Stability *wireStability `json:"stability,omitempty"`
	Docs      string         `json:"docs,omitempty"`
}

type wireOwner struct {
	World     *int `json:"world,omitempty"`
	Interface *int `json:"interface,omitempty"`
}

// wireKind is a single-key tagged object naming a [TypeDefKind] variant.
// Exactly one field is populated.
type wireKind struct {
	Prim      *string          `json:"prim,omitempty"`
	Record    *wireRecord      `json:"record,omitempty"`
	Resource  *struct{}        `json:"resource,omitempty"`
	Own       *wireRef         `json:"own,omitempty"`
	Borrow    *wireRef         `json:"borrow,omitempty"`
	Flags     *wireFlags       `json:"flags,omitempty"`
	Tuple     *wireTuple       `json:"tuple,omitempty"`
	Variant   *wireVariant     `json:"variant,omitempty"`
	Enum      *wireEnum        `json:"enum,omitempty"`
	Option    *wireRef         `json:"option,omitempty"`
	Result    *wireResult      `json:"result,omitempty"`
	List      *wireRef         `json:"list,omitempty"`
	Future    *wireRef         `json:"future,omitempty"`
	Stream    *wireStream      `json:"stream,omitempty"`
	TypeAlias *wireRef         `json:"type,omitempty"`
}

// wireRef names a [Type]: either a named reference to types[Index], or an
// inline kind for anonymous types (list<T>, option<T>, tuple<...>, etc).
type wireRef struct {
	Index *int      `json:"index,omitempty"`
	Prim  *string   `json:"prim,omitempty"`
	Kind  *wireKind `json:"kind,omitempty"`
}

type wireRecord struct {
	Fields []wireField `json:"fields"`
}

type wireField struct {
	Name string  `json:"name"`
	Type wireRef `json:"type"`
	Docs string  `json:"docs,omitempty"`
}

type wireFlags struct {
	Flags []wireFlag `json:"flags"`
}

type wireFlag struct {
	Name string `json:"name"`
	Docs string `json:"docs,omitempty"`
}

type wireTuple struct {
	Types []wireRef `json:"types"`
}

type wireVariant struct {
	Cases []wireCase `json:"cases"`
}

type wireCase struct {
	Name string   `json:"name"`
	Type *wireRef `json:"type,omitempty"`
	Docs string   `json:"docs,omitempty"`
}

type wireEnum struct {
	Cases []wireEnumCase `json:"cases"`
}

type wireEnumCase struct {
	Name string `json:"name"`
	Docs string `json:"docs,omitempty"`
}

type wireResult struct {
	OK  *wireRef `json:"ok,omitempty"`
	Err *wireRef `json:"err,omitempty"`
}

type wireStream struct {
	Element *wireRef `json:"element,omitempty"`
	End     *wireRef `json:"end,omitempty"`
}

type wireFunction struct {
	Name      string         `json:"name"`
	Kind      wireFuncKind   `json:"kind"`
	Params    []wireParam    `json:"params"`
	Results   []wireParam    `json:"results"`
	Stability *wireStability `json:"stability,omitempty"`
	Docs      string         `json:"docs,omitempty"`
}

type wireFuncKind struct {
	Freestanding bool `json:"freestanding,omitempty"`
	Method       *int `json:"method,omitempty"`
	Static       *int `json:"static,omitempty"`
	Constructor  *int `json:"constructor,omitempty"`
}

type wireParam struct {
	Name string  `json:"name"`
	Type wireRef `json:"type"`
}

type wireStability struct {
	Since      string `json:"since,omitempty"`
	Unstable   string `json:"unstable,omitempty"`
	Deprecated string `json:"deprecated,omitempty"`
}

// build links a decoded wire document into a [Resolve]. It allocates every
// addressable node (package, interface, type, world) up front, then fills in
// their fields, so that cyclic references (a field whose type is the record
// that contains it, transitively) resolve to the same pointer identity the
// in-memory graph relies on for cycle-safe traversal.
func (doc *wireResolve) build() (*Resolve, error) {
	b := &builder{doc: doc}
	b.packages = make([]*Package, len(doc.Packages))
	for i := range doc.Packages {
		b.packages[i] = &Package{}
	}
	b.interfaces = make([]*Interface, len(doc.Interfaces))
	for i := range doc.Interfaces {
		b.interfaces[i] = &Interface{}
	}
	b.types = make([]*TypeDef, len(doc.Types))
	for i := range doc.Types {
		b.types[i] = &TypeDef{}
	}
	b.functions = make([]*Function, len(doc.Functions))
	for i := range doc.Functions {
		b.functions[i] = &Function{}
	}
	b.worlds = make([]*World, len(doc.Worlds))
	for i := range doc.Worlds {
		b.worlds[i] = &World{}
	}

	for i, w := range doc.Packages {
		if err := b.linkPackage(i, w); err != nil {
			return nil, err
		}
	}
	for i, w := range doc.Interfaces {
		if err := b.linkInterface(i, w); err != nil {
			return nil, err
		}
	}
	for i, w := range doc.Types {
		if err := b.linkType(i, w); err != nil {
			return nil, err
		}
	}
	for i, w := range doc.Functions {
		if err := b.linkFunction(i, w); err != nil {
			return nil, err
		}
	}
	for i, w := range doc.Worlds {
		if err := b.linkWorld(i, w); err != nil {
			return nil, err
		}
	}

	return &Resolve{
		Worlds:     b.worlds,
		Interfaces: b.interfaces,
		TypeDefs:   b.types,
		Packages:   b.packages,
	}, nil
}

type builder struct {
	doc        *wireResolve
	packages   []*Package
	interfaces []*Interface
	types      []*TypeDef
	functions  []*Function
	worlds     []*World
}

func (b *builder) linkPackage(i int, w wirePackage) error {
	id, err := ParseIdent(w.Name)
	if err != nil {
		return fmt.Errorf("package %d: %w", i, err)
	}
	p := b.packages[i]
	p.Name = id
	p.Docs = Docs{Contents: w.Docs}
	for name, idx := range w.Interfaces {
		p.Interfaces.Set(name, b.interfaces[idx])
	}
	for name, idx := range w.Worlds {
		p.Worlds.Set(name, b.worlds[idx])
	}
	return nil
}

func (b *builder) linkInterface(i int, w wireInterface) error {
	iface := b.interfaces[i]
	iface.Name = w.Name
	if w.Package != nil {
		iface.Package = b.packages[*w.Package]
	}
	stability, err := b.stability(w.Stability)
	if err != nil {
		return fmt.Errorf("interface %d: %w", i, err)
	}
	iface.Stability = stability
	iface.Docs = Docs{Contents: w.Docs}
	for name, idx := range w.Types {
		iface.TypeDefs.Set(name, b.types[idx])
	}
	for name, idx := range w.Functions {
		iface.Functions.Set(name, b.functions[idx])
	}
	return nil
}

func (b *builder) linkWorld(i int, w wireWorld) error {
	world := b.worlds[i]
	world.Name = w.Name
	if w.Package != nil {
		world.Package = b.packages[*w.Package]
	}
	stability, err := b.stability(w.Stability)
	if err != nil {
		return fmt.Errorf("world %d: %w", i, err)
	}
	world.Stability = stability
	world.Docs = Docs{Contents: w.Docs}
	for name, item := range w.Imports {
		wi, err := b.worldItem(item)
		if err != nil {
			return fmt.Errorf("world %d import %q: %w", i, name, err)
		}
		world.Imports.Set(name, wi)
	}
	for name, item := range w.Exports {
		wi, err := b.worldItem(item)
		if err != nil {
			return fmt.Errorf("world %d export %q: %w", i, name, err)
		}
		world.Exports.Set(name, wi)
	}
	return nil
}

func (b *builder) worldItem(item wireItem) (WorldItem, error) {
	switch {
	case item.Interface != nil:
		stability, err := b.stability(item.Stability)
		if err != nil {
			return nil, err
		}
		return &InterfaceRef{Interface: b.interfaces[*item.Interface], Stability: stability}, nil
	case item.Function != nil:
		return b.functions[*item.Function], nil
	case item.Type != nil:
		return b.types[*item.Type], nil
	default:
		return nil, fmt.Errorf("world item has no interface, function, or type reference")
	}
}

func (b *builder) linkType(i int, w wireTypeDef) error {
	t := b.types[i]
	t.Name = w.Name
	kind, err := b.kind(w.Kind)
	if err != nil {
		return fmt.Errorf("type %d: %w", i, err)
	}
	t.Kind = kind
	if w.Owner != nil {
		switch {
		case w.Owner.World != nil:
			t.Owner = b.worlds[*w.Owner.World]
		case w.Owner.Interface != nil:
			t.Owner = b.interfaces[*w.Owner.Interface]
		}
	}
	stability, err := b.stability(w.Stability)
	if err != nil {
		return fmt.Errorf("type %d: %w", i, err)
	}
	t.Stability = stability
	t.Docs = Docs{Contents: w.Docs}
	return nil
}

func (b *builder) linkFunction(i int, w wireFunction) error {
	f := b.functions[i]
	f.Name = w.Name
	switch {
	case w.Kind.Method != nil:
		f.Kind = &Method{Type: b.types[*w.Kind.Method]}
	case w.Kind.Static != nil:
		f.Kind = &Static{Type: b.types[*w.Kind.Static]}
	case w.Kind.Constructor != nil:
		f.Kind = &Constructor{Type: b.types[*w.Kind.Constructor]}
	default:
		f.Kind = &Freestanding{}
	}
	for _, p := range w.Params {
		t, err := b.ref(p.Type)
		if err != nil {
			return fmt.Errorf("function %d param %q: %w", i, p.Name, err)
		}
		f.Params = append(f.Params, Param{Name: p.Name, Type: t})
	}
	for _, p := range w.Results {
		t, err := b.ref(p.Type)
		if err != nil {
			return fmt.Errorf("function %d result %q: %w", i, p.Name, err)
		}
		f.Results = append(f.Results, Param{Name: p.Name, Type: t})
	}
	stability, err := b.stability(w.Stability)
	if err != nil {
		return fmt.Errorf("function %d: %w", i, err)
	}
	f.Stability = stability
	f.Docs = Docs{Contents: w.Docs}
	return nil
}

// ref resolves a [wireRef] to a [Type]: a named reference into the types
// table, a primitive, or an inline anonymous kind.
func (b *builder) ref(r wireRef) (Type, error) {
	switch {
	case r.Index != nil:
		return b.types[*r.Index], nil
	case r.Prim != nil:
		return ParseType(*r.Prim)
	case r.Kind != nil:
		kind, err := b.kind(*r.Kind)
		if err != nil {
			return nil, err
		}
		// A named type alias already resolves to a *TypeDef, which
		// satisfies Type directly. Every other anonymous kind (list,
		// tuple, option, result, record, flags, variant, enum,
		// resource, own/borrow) needs an anonymous TypeDef wrapper to
		// be usable as a Type.
		if t, ok := kind.(Type); ok {
			return t, nil
		}
		return &TypeDef{Kind: kind}, nil
	default:
		return nil, fmt.Errorf("empty type reference")
	}
}

func (b *builder) optRef(r *wireRef) (Type, error) {
	if r == nil {
		return nil, nil
	}
	return b.ref(*r)
}

func (b *builder) kind(w wireKind) (TypeDefKind, error) {
	switch {
	case w.Prim != nil:
		return ParseType(*w.Prim)
	case w.Record != nil:
		fields := make([]Field, len(w.Record.Fields))
		for i, f := range w.Record.Fields {
			t, err := b.ref(f.Type)
			if err != nil {
				return nil, fmt.Errorf("record field %q: %w", f.Name, err)
			}
			fields[i] = Field{Name: f.Name, Type: t, Docs: Docs{Contents: f.Docs}}
		}
		return &Record{Fields: fields}, nil
	case w.Resource != nil:
		return &Resource{}, nil
	case w.Own != nil:
		t, err := b.ref(*w.Own)
		if err != nil {
			return nil, err
		}
		td, ok := t.(*TypeDef)
		if !ok {
			return nil, fmt.Errorf("own handle must reference a named resource type")
		}
		return &Own{Type: td}, nil
	case w.Borrow != nil:
		t, err := b.ref(*w.Borrow)
		if err != nil {
			return nil, err
		}
		td, ok := t.(*TypeDef)
		if !ok {
			return nil, fmt.Errorf("borrow handle must reference a named resource type")
		}
		return &Borrow{Type: td}, nil
	case w.Flags != nil:
		flags := make([]Flag, len(w.Flags.Flags))
		for i, f := range w.Flags.Flags {
			flags[i] = Flag{Name: f.Name, Docs: Docs{Contents: f.Docs}}
		}
		return &Flags{Flags: flags}, nil
	case w.Tuple != nil:
		types := make([]Type, len(w.Tuple.Types))
		for i, r := range w.Tuple.Types {
			t, err := b.ref(r)
			if err != nil {
				return nil, fmt.Errorf("tuple element %d: %w", i, err)
			}
			types[i] = t
		}
		return &Tuple{Types: types}, nil
	case w.Variant != nil:
		cases := make([]Case, len(w.Variant.Cases))
		for i, c := range w.Variant.Cases {
			t, err := b.optRef(c.Type)
			if err != nil {
				return nil, fmt.Errorf("variant case %q: %w", c.Name, err)
			}
			cases[i] = Case{Name: c.Name, Type: t, Docs: Docs{Contents: c.Docs}}
		}
		return &Variant{Cases: cases}, nil
	case w.Enum != nil:
		cases := make([]EnumCase, len(w.Enum.Cases))
		for i, c := range w.Enum.Cases {
			cases[i] = EnumCase{Name: c.Name, Docs: Docs{Contents: c.Docs}}
		}
		return &Enum{Cases: cases}, nil
	case w.Option != nil:
		t, err := b.ref(*w.Option)
		if err != nil {
			return nil, err
		}
		return &Option{Type: t}, nil
	case w.Result != nil:
		ok, err := b.optRef(w.Result.OK)
		if err != nil {
			return nil, fmt.Errorf("result ok: %w", err)
		}
		errT, err := b.optRef(w.Result.Err)
		if err != nil {
			return nil, fmt.Errorf("result err: %w", err)
		}
		return &Result{OK: ok, Err: errT}, nil
	case w.List != nil:
		t, err := b.ref(*w.List)
		if err != nil {
			return nil, err
		}
		return &List{Type: t}, nil
	case w.Future != nil:
		t, err := b.optRef(w.Future)
		if err != nil {
			return nil, err
		}
		return &Future{Type: t}, nil
	case w.Stream != nil:
		elem, err := b.optRef(w.Stream.Element)
		if err != nil {
			return nil, fmt.Errorf("stream element: %w", err)
		}
		end, err := b.optRef(w.Stream.End)
		if err != nil {
			return nil, fmt.Errorf("stream end: %w", err)
		}
		return &Stream{Element: elem, End: end}, nil
	case w.TypeAlias != nil:
		t, err := b.ref(*w.TypeAlias)
		if err != nil {
			return nil, err
		}
		td, ok := t.(*TypeDef)
		if !ok {
			return nil, fmt.Errorf("type alias must reference a named type")
		}
		return td, nil
	default:
		return nil, fmt.Errorf("type kind has no recognized variant")
	}
}

func (b *builder) stability(w *wireStability) (Stability, error) {
	if w == nil {
		return nil, nil
	}
	var deprecated *semver.Version
	if w.Deprecated != "" {
		v, err := semver.NewVersion(w.Deprecated)
		if err != nil {
			return nil, fmt.Errorf("deprecated version: %w", err)
		}
		deprecated = v
	}
	switch {
	case w.Since != "":
		v, err := semver.NewVersion(w.Since)
		if err != nil {
			return nil, fmt.Errorf("since version: %w", err)
		}
		return &Stable{Since: *v, Deprecated: deprecated}, nil
	case w.Unstable != "":
		return &Unstable{Feature: w.Unstable, Deprecated: deprecated}, nil
	default:
		return nil, nil
	}
}
