package tsgen

import (
	"strings"
	"unicode"

	"github.com/wasmcomponents/wit-ts-stub/wit"
)

// TypeName projects a WIT identifier into a TypeScript PascalCase type name.
// Segments are split on "-" and "_", each is capitalized, and the result is
// concatenated: "wit-node" -> "WitNode".
func TypeName(name string) string {
	var b strings.Builder
	for _, word := range words(name) {
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// ValueName projects a WIT identifier into a TypeScript camelCase value
// name (used for functions, fields, and parameters): "inc-by" -> "incBy".
func ValueName(name string) string {
	ws := words(name)
	var b strings.Builder
	for i, word := range ws {
		if i == 0 {
			b.WriteString(strings.ToLower(word))
		} else {
			b.WriteString(capitalize(word))
		}
	}
	return b.String()
}

// ModuleSpecifier returns the raw WIT fully qualified name for id, e.g.
// "ns:pkg/iface@ver", unchanged.
func ModuleSpecifier(id wit.Ident) string {
	return id.String()
}

// FileStem projects a WIT fully qualified identifier into a file-safe stem:
// the version and its "@" are dropped, dots are stripped, and "/" and ":"
// become "-".
func FileStem(id wit.Ident) string {
	s := id.UnversionedString()
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == ':' || r == '/':
			b.WriteByte('-')
		case r == '.':
			// dots are stripped entirely
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EscapedValueName applies the reserved-keyword escape policy to a
// [ValueName]-projected identifier. It returns the name to declare under,
// and whether the caller must additionally emit a
// `export { _name as name }` re-export.
func EscapedValueName(name string) (declName string, escaped bool) {
	v := ValueName(name)
	if isReserved(v) {
		return "_" + v, true
	}
	return v, false
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// words splits a kebab-case or snake_case WIT identifier into lowercase
// word segments. Digits immediately following letters start a new segment
// only at the existing "-"/"_" boundaries; no further digit-based
// splitting is performed, matching WIT's own naming convention ("u8-test"
// splits into "u8" and "test", not "u", "8", "test").
func words(name string) []string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return parts
}

// caseTagLiteral returns the single-quoted TypeScript string literal for a
// raw WIT case name used as a discriminant tag, e.g. "some" -> "'some'".
func caseTagLiteral(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "\\'") + "'"
}
