package tsgen

import (
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/wasmcomponents/wit-ts-stub/internal/visitor"
	"github.com/wasmcomponents/wit-ts-stub/wit"
	"github.com/wasmcomponents/wit-ts-stub/wit/logging"
)

// GenerateOption configures a [Generate] call.
type GenerateOption func(*generateConfig)

type generateConfig struct {
	logger logging.Logger
}

// WithLogger routes the driver's per-file progress/classification messages
// (§4.7) to logger instead of discarding them.
func WithLogger(logger logging.Logger) GenerateOption {
	return func(cfg *generateConfig) { cfg.logger = logger }
}

// Generate is the package's primary operation: given a fully resolved WIT
// graph and a world identifier (either the bare world name, its fully
// qualified "ns:pkg/world@ver" form, or "" to select the graph's sole
// world), it produces the complete set of TypeScript declaration files
// describing that world's imports and exports.
func Generate(r *wit.Resolve, worldID string, opts ...GenerateOption) (*FileSet, error) {
	cfg := &generateConfig{logger: logging.DiscardLogger()}
	for _, opt := range opts {
		opt(cfg)
	}

	w, err := resolveWorld(r, worldID)
	if err != nil {
		return nil, err
	}
	cfg.logger.Infof("generating world %q", w.Name)

	_, order := collectReachableInterfaces(w)

	named := make([]*wit.Interface, 0, len(order))
	for _, iface := range order {
		if iface.Name != nil {
			named = append(named, iface)
		}
	}
	slices.SortFunc(named, func(a, b *wit.Interface) int {
		return strings.Compare(ifaceModuleSpecifier(a), ifaceModuleSpecifier(b))
	})

	// File paths are assigned up front, sequentially, since [FileSet.File]
	// mutates the fileset's shared ordered map (§5's sole piece of shared
	// state). Once each interface owns a distinct *OutputFile, emission
	// itself (which only appends to that file's private buffer) may run
	// concurrently, as §5 explicitly allows.
	fs := &FileSet{}
	files := make([]*OutputFile, len(named))
	for i, iface := range named {
		path := "interfaces/" + FileStem(ifaceIdent(iface)) + ".d.ts"
		files[i] = fs.File(path)
	}
	worldFile := fs.File(strings.ToLower(w.Name) + ".d.ts")

	var g errgroup.Group
	for i, iface := range named {
		i, iface := i, iface
		g.Go(func() error {
			cfg.logger.Debugf("emit-as-module: %s -> %s", ifaceModuleSpecifier(iface), files[i].Path)
			return EmitInterfaceModule(files[i], iface)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cfg.logger.Debugf("emitting world file %s", worldFile.Path)
	if err := EmitWorldFile(worldFile, w); err != nil {
		return nil, err
	}
	return fs, nil
}

// resolveWorld looks up worldID in r. An empty worldID selects the graph's
// sole world if there is exactly one, matching the real jco tool's
// select-by-name-or-default behavior over a resolved package.
func resolveWorld(r *wit.Resolve, worldID string) (*wit.World, error) {
	if worldID == "" {
		if len(r.Worlds) == 1 {
			return r.Worlds[0], nil
		}
		return nil, errWorldNotFound("", worldNames(r))
	}
	if w := findWorld(r, worldID); w != nil {
		return w, nil
	}
	return nil, errWorldNotFound(worldID, worldNames(r))
}

func worldNames(r *wit.Resolve) []string {
	names := make([]string, len(r.Worlds))
	for i, w := range r.Worlds {
		names[i] = w.Name
	}
	return names
}

func findWorld(r *wit.Resolve, worldID string) *wit.World {
	for _, w := range r.Worlds {
		if w.Name == worldID {
			return w
		}
		if w.Package != nil {
			id := w.Package.Name
			id.Extension = w.Name
			if ModuleSpecifier(id) == worldID || id.UnversionedString() == worldID {
				return w
			}
		}
	}
	return nil
}

// collectReachableInterfaces performs the driver's reachability pass
// (§4.7 step 2): every interface transitively referenced by the world's
// imports, exports, or the types/functions of interfaces already found,
// starting from the world itself. order preserves first-discovery order;
// reachable allows O(1) membership tests.
func collectReachableInterfaces(w *wit.World) (map[*wit.Interface]bool, []*wit.Interface) {
	reachable := map[*wit.Interface]bool{}
	var order []*wit.Interface
	ifaces := visitor.New(func(iface *wit.Interface) bool {
		reachable[iface] = true
		order = append(order, iface)
		return true
	})
	mark := func(iface *wit.Interface) {
		if iface != nil {
			ifaces.Yield(iface)
		}
	}

	types := visitor.New(func(*wit.TypeDef) bool { return true })

	walkItem := func(item wit.WorldItem) {
		switch v := item.(type) {
		case *wit.InterfaceRef:
			mark(v.Interface)
		case *wit.TypeDef:
			walkTypeDef(v, types, mark)
		case *wit.Function:
			walkFunction(v, types, mark)
		}
	}
	w.Imports.All()(func(_ string, item wit.WorldItem) bool { walkItem(item); return true })
	w.Exports.All()(func(_ string, item wit.WorldItem) bool { walkItem(item); return true })

	for i := 0; i < len(order); i++ {
		iface := order[i]
		iface.TypeDefs.All()(func(_ string, t *wit.TypeDef) bool {
			walkTypeDef(t, types, mark)
			return true
		})
		iface.Functions.All()(func(_ string, f *wit.Function) bool {
			walkFunction(f, types, mark)
			return true
		})
	}
	return reachable, order
}

func walkFunction(f *wit.Function, seen visitor.Visitor[*wit.TypeDef], mark func(*wit.Interface)) {
	for _, p := range f.Params {
		walkType(p.Type, seen, mark)
	}
	for _, res := range f.Results {
		walkType(res.Type, seen, mark)
	}
}

func walkType(t wit.Type, seen visitor.Visitor[*wit.TypeDef], mark func(*wit.Interface)) {
	if td, ok := t.(*wit.TypeDef); ok {
		walkTypeDef(td, seen, mark)
	}
}

func walkTypeDef(t *wit.TypeDef, seen visitor.Visitor[*wit.TypeDef], mark func(*wit.Interface)) {
	if t == nil || seen.Visited(t) {
		return
	}
	seen.Yield(t)
	if iface, ok := t.Owner.(*wit.Interface); ok && t.Name != nil {
		mark(iface)
	}
	switch kind := t.Kind.(type) {
	case *wit.Record:
		for _, f := range kind.Fields {
			walkType(f.Type, seen, mark)
		}
	case *wit.Variant:
		for _, c := range kind.Cases {
			if c.Type != nil {
				walkType(c.Type, seen, mark)
			}
		}
	case *wit.Tuple:
		for _, et := range kind.Types {
			walkType(et, seen, mark)
		}
	case *wit.Option:
		walkType(kind.Type, seen, mark)
	case *wit.Result:
		if kind.OK != nil {
			walkType(kind.OK, seen, mark)
		}
		if kind.Err != nil {
			walkType(kind.Err, seen, mark)
		}
	case *wit.List:
		walkType(kind.Type, seen, mark)
	case *wit.Own:
		walkTypeDef(kind.Type, seen, mark)
	case *wit.Borrow:
		walkTypeDef(kind.Type, seen, mark)
	case *wit.TypeDef:
		walkTypeDef(kind, seen, mark)
	}
}
