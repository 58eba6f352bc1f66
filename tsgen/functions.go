package tsgen

import (
	"strings"

	"github.com/wasmcomponents/wit-ts-stub/wit"
)

// printParams prints a parameter list as `name: Type, name2: Type2`.
// skipSelf drops the first parameter, used for resource methods whose first
// WIT parameter is the implicit self/borrow<T>; constructors have no such
// parameter and are printed with skipSelf false.
func printParams(ctx *emitCtx, params []wit.Param, skipSelf bool) (string, error) {
	if skipSelf && len(params) > 0 {
		params = params[1:]
	}
	parts := make([]string, len(params))
	for i, p := range params {
		name, _ := EscapedValueName(p.Name)
		typ, err := printType(ctx, p.Type, TopLevel)
		if err != nil {
			return "", err
		}
		parts[i] = name + ": " + typ
	}
	return strings.Join(parts, ", "), nil
}

// printResultType prints a function's result list as a single TypeScript
// return type: void for no results, the bare type for exactly one
// (anonymous or named, WIT only allows multiple results to be named), or
// an inline object type for more than one named result.
func printResultType(ctx *emitCtx, results []wit.Param) (string, error) {
	switch len(results) {
	case 0:
		return "void", nil
	case 1:
		return printType(ctx, results[0].Type, TopLevel)
	default:
		fields := make([]string, len(results))
		for i, r := range results {
			name, _ := EscapedValueName(r.Name)
			typ, err := printType(ctx, r.Type, TopLevel)
			if err != nil {
				return "", err
			}
			fields[i] = name + ": " + typ
		}
		return "{ " + strings.Join(fields, "; ") + " }", nil
	}
}

// printMethodSig prints an interface-style method signature for f: `name(params): Result`.
// isMethod drops f's implicit self parameter.
func printMethodSig(ctx *emitCtx, f *wit.Function, isMethod bool) (string, error) {
	name, _ := EscapedValueName(f.BaseName())
	params, err := printParams(ctx, f.Params, isMethod)
	if err != nil {
		return "", err
	}
	result, err := printResultType(ctx, f.Results)
	if err != nil {
		return "", err
	}
	return name + "(" + params + "): " + result, nil
}

// printFreestandingDecl prints a freestanding function as an ambient
// declaration statement: `export function name(params): Result;`, or, for a
// reserved-word name, `declare function _name(params): Result;` followed by
// `export { _name as name };`.
func printFreestandingDecl(ctx *emitCtx, f *wit.Function) (string, error) {
	declName, escaped := EscapedValueName(f.Name)
	params, err := printParams(ctx, f.Params, false)
	if err != nil {
		return "", err
	}
	result, err := printResultType(ctx, f.Results)
	if err != nil {
		return "", err
	}
	if escaped {
		return "declare function " + declName + "(" + params + "): " + result + ";\n" +
			"export { " + declName + " as " + ValueName(f.Name) + " };\n", nil
	}
	return "export function " + declName + "(" + params + "): " + result + ";\n", nil
}
