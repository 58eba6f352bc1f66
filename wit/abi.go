package wit

// Node is the interface implemented by every resolved WIT AST node
// (packages, worlds, interfaces, type definitions, functions, and their
// sub-parts). It carries no methods of its own; it exists so interfaces
// like [WorldItem] and [TypeOwner] can require "any node" without pinning
// down which concrete shape.
type Node interface{}

// ABI is the interface implemented by any [TypeDefKind] that can report its
// Canonical ABI byte size, alignment, and flattened core Wasm representation.
type ABI interface {
	Size() uintptr
	Align() uintptr
	Flat() []Type
}

// Align aligns ptr with alignment align.
func Align(ptr, align uintptr) uintptr {
	// (dividend + divisor - 1) / divisor
	// http://www.cs.nott.ac.uk/~rcb/G51MPC/slides/NumberLogic.pdf
	return ((ptr + align - 1) / align) * align
}

// Discriminant returns the smallest integer type that can represent the
// case indexes 0...n-1 of a type with n cases.
func Discriminant(n int) Type {
	switch {
	case n <= 1<<8:
		return U8{}
	case n <= 1<<16:
		return U16{}
	}
	return U32{}
}

// Sized is the interface implemented by any type that reports its [ABI byte size] and [alignment].
//
// [ABI byte size]: https://github.com/WebAssembly/component-model/blob/main/design/mvp/CanonicalABI.md#size
// [alignment]: https://github.com/WebAssembly/component-model/blob/main/design/mvp/CanonicalABI.md#alignment
type Sized interface {
	Size() uintptr
	Align() uintptr
}

type _sized struct{}

func (_sized) Size() uintptr  { panic("BUG: unimplemented") }
func (_sized) Align() uintptr { panic("BUG: unimplemented") }

// Despecializer is the interface implemented by any [TypeDefKind] that can
// [despecialize] itself into another TypeDefKind. Examples include [Result],
// which despecializes into a [Variant] with two cases, "ok" and "error".
// See the [canonical ABI documentation] for more information.
//
// [despecialize]: https://github.com/WebAssembly/component-model/blob/main/design/mvp/CanonicalABI.md#despecialization
// [canonical ABI documentation]: https://github.com/WebAssembly/component-model/blob/main/design/mvp/CanonicalABI.md#despecialization
type Despecializer interface {
	Despecialize() TypeDefKind
}

// Despecialize [despecializes] k if k implements [Despecializer].
// Otherwise, it returns k unmodified.
// See the [canonical ABI documentation] for more information.
//
// [despecializes]: https://github.com/WebAssembly/component-model/blob/main/design/mvp/CanonicalABI.md#despecialization
// [canonical ABI documentation]: https://github.com/WebAssembly/component-model/blob/main/design/mvp/CanonicalABI.md#despecialization
func Despecialize(k TypeDefKind) TypeDefKind {
	if d, ok := k.(Despecializer); ok {
		return d.Despecialize()
	}
	return k
}

type hasPointerer interface{ hasPointer() bool }
type hasBorrower interface{ hasBorrow() bool }
type hasResourcer interface{ hasResource() bool }

// HasPointer returns true if t contains a pointer in its [flattened] ABI representation.
//
// [flattened]: https://github.com/WebAssembly/component-model/blob/main/design/mvp/CanonicalABI.md#flattening
func HasPointer(t Type) bool {
	hp, ok := t.(hasPointerer)
	return ok && hp.hasPointer()
}

// HasBorrow returns true if t contains a [Borrow] handle, directly or transitively.
func HasBorrow(t Type) bool {
	hb, ok := t.(hasBorrower)
	return ok && hb.hasBorrow()
}

// HasResource returns true if t contains a [Resource], [Own], or [Borrow] handle, directly or transitively.
func HasResource(t Type) bool {
	hr, ok := t.(hasResourcer)
	return ok && hr.hasResource()
}
