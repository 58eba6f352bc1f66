package tsgen

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// importRef is a single cross-interface type reference recorded by the
// type printer: the projected name of the referenced type, and the module
// specifier of the interface that owns it.
type importRef struct {
	typeName string
	module   string
}

// ImportTracker accumulates the cross-interface type references a single
// emitted file makes, for later rendering as `import type` statements.
// References to the file's own module are never recorded in the first
// place (see [ImportTracker.Record]).
type ImportTracker struct {
	ownModule string
	seen      map[importRef]bool
	refs      []importRef
}

// NewImportTracker returns a tracker for a file whose own ambient module
// specifier is ownModule (may be "" for a world file, which owns no
// module).
func NewImportTracker(ownModule string) *ImportTracker {
	return &ImportTracker{ownModule: ownModule}
}

// Record notes that the current file references typeName, owned by module.
// A reference to the current file's own module, or to a type with no
// module (a built-in or locally declared type), is a no-op.
func (t *ImportTracker) Record(typeName, module string) {
	if module == "" || module == t.ownModule {
		return
	}
	ref := importRef{typeName: typeName, module: module}
	if t.seen == nil {
		t.seen = make(map[importRef]bool)
	}
	if t.seen[ref] {
		return
	}
	t.seen[ref] = true
	t.refs = append(t.refs, ref)
}

// Empty reports whether no cross-interface references were recorded.
func (t *ImportTracker) Empty() bool {
	return len(t.refs) == 0
}

// Render returns the deduplicated `import type` statements for the file,
// one per referenced module, types listed in sorted order for determinism.
func (t *ImportTracker) Render() string {
	if len(t.refs) == 0 {
		return ""
	}
	byModule := make(map[string][]string)
	for _, ref := range t.refs {
		byModule[ref.module] = append(byModule[ref.module], ref.typeName)
	}
	modules := make([]string, 0, len(byModule))
	for m := range byModule {
		modules = append(modules, m)
	}
	slices.Sort(modules)

	var b strings.Builder
	for _, m := range modules {
		names := byModule[m]
		slices.SortFunc(names, func(a, c string) int { return cmp.Compare(a, c) })
		names = slices.Compact(names)
		fmt.Fprintf(&b, "import type { %s } from %q;\n", strings.Join(names, ", "), m)
	}
	return b.String()
}
