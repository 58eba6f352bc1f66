package tsgen

import "github.com/wasmcomponents/wit-ts-stub/wit"

// optionContext selects which of the two `option<T>` printing rules
// applies at a given point in the type tree. See the type printer's
// [printType].
type optionContext int

const (
	// TopLevel is a function parameter, function result, or record
	// field position: `option<T>` prints as `T | undefined` (or, for a
	// record field, `field?: T`).
	TopLevel optionContext = iota
	// Nested is any position inside another generic type constructor
	// (list, tuple, option, result, variant case payload): `option<T>`
	// prints as `Option<T | undefined>` using the helper alias, so the
	// "absent outer" and "present-but-undefined" cases stay
	// distinguishable.
	Nested
)

// emitCtx is the emission context threaded through the type printer and
// shape emitters for a single [OutputFile]: which interface (if any) owns
// the declarations being printed, and the file's [ImportTracker].
type emitCtx struct {
	file      *OutputFile
	iface     *wit.Interface // nil when emitting the world file
	ownModule string         // "" for the world file
	imports   *ImportTracker
	helpers   *helperUsage
	// resourceInstanceMode is true while emitting the world file, where
	// every resource handle crossing the export boundary is an instance
	// handle: references print as "<Name>Instance" rather than the bare
	// class name used by the ambient-module (imported) form.
	resourceInstanceMode bool
}

// helperUsage records whether a file needs the `Option<T>`/`Result<T, E>`
// helper aliases emitted (see §4.6 of the grammar): they appear in a file
// only if that file actually uses them.
type helperUsage struct {
	option bool
	result bool
}

func newEmitCtx(file *OutputFile, iface *wit.Interface) *emitCtx {
	ownModule := ""
	if iface != nil {
		ownModule = ifaceModuleSpecifier(iface)
	}
	return &emitCtx{
		file:      file,
		iface:     iface,
		ownModule: ownModule,
		imports:   NewImportTracker(ownModule),
		helpers:   &helperUsage{},
	}
}

// ifaceIdent returns the fully qualified [wit.Ident] for a named interface:
// its owning package's namespace/name/version plus the interface name as
// the Extension. Callers must ensure iface.Name != nil.
func ifaceIdent(iface *wit.Interface) wit.Ident {
	id := wit.Ident{Namespace: "local", Package: "iface"}
	if pkg := iface.WITPackage(); pkg != nil {
		id = pkg.Name
	}
	id.Extension = *iface.Name
	return id
}

// ifaceModuleSpecifier returns the ambient module specifier for iface, or
// "" if iface is nil or anonymous (an inline world export has no
// specifier).
func ifaceModuleSpecifier(iface *wit.Interface) string {
	if iface == nil || iface.Name == nil {
		return ""
	}
	return ModuleSpecifier(ifaceIdent(iface))
}
