package tsgen

// reservedWords is the set of TypeScript keywords the name projector's
// escape policy applies to. A [ValueName] colliding with one of these is
// declared as "_name" and re-exported as "export { _name as name }".
var reservedWords = map[string]bool{
	"delete":     true,
	"default":    true,
	"class":      true,
	"function":   true,
	"new":        true,
	"return":     true,
	"var":        true,
	"let":        true,
	"const":      true,
	"switch":     true,
	"case":       true,
	"if":         true,
	"else":       true,
	"for":        true,
	"while":      true,
	"do":         true,
	"break":      true,
	"continue":   true,
	"import":     true,
	"export":     true,
	"extends":    true,
	"implements": true,
	"interface":  true,
	"this":       true,
	"super":      true,
	"typeof":     true,
	"instanceof": true,
	"void":       true,
	"null":       true,
	"true":       true,
	"false":      true,
}

// isReserved reports whether name is a reserved TypeScript word subject to
// the escape policy.
func isReserved(name string) bool {
	return reservedWords[name]
}
