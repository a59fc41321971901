package expr

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"runtime"
	"sync"
)

// Call describes one check call recovered from the caller's source file.
type Call struct {
	// Args holds the source text of each value argument, in order.
	Args []string
	// TypeArgs holds the source text of explicit generic type arguments,
	// if the call spells any.
	TypeArgs []string
}

// parsedSource caches one parsed source file. Files are parsed at most
// once per process; assertion call sites cluster in few files.
type parsedSource struct {
	fset *token.FileSet
	file *ast.File
}

var (
	sourceMu    sync.Mutex
	sourceCache = map[string]*parsedSource{}
)

// parsedFile returns the parsed AST for path, caching the result.
// A nil return means the source is unavailable or does not parse.
func parsedFile(path string) *parsedSource {
	sourceMu.Lock()
	defer sourceMu.Unlock()

	if cached, ok := sourceCache[path]; ok {
		return cached
	}

	var src *parsedSource
	if data, err := os.ReadFile(path); err == nil {
		fset := token.NewFileSet()
		if file, err := parser.ParseFile(fset, path, data, 0); err == nil {
			src = &parsedSource{fset: fset, file: file}
		}
	}
	// Negative results are cached too, so a stripped binary pays the
	// stat cost once per file.
	sourceCache[path] = src
	return src
}

// Capture locates the call to fn at the given stack depth and returns
// the source text of its arguments. skip counts frames above Capture's
// caller, as in runtime.Caller.
//
// ok is false when the source is unavailable (stripped or relocated
// binaries) or the call cannot be located; callers fall back to
// placeholder operand names.
func Capture(skip int, fn string) (Call, bool) {
	_, path, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Call{}, false
	}

	src := parsedFile(path)
	if src == nil {
		return Call{}, false
	}

	call := findCall(src, line, fn)
	if call == nil {
		return Call{}, false
	}

	out := Call{Args: make([]string, 0, len(call.Args))}
	for _, arg := range call.Args {
		out.Args = append(out.Args, nodeText(src.fset, arg))
	}
	out.TypeArgs = typeArgs(src.fset, call.Fun)
	return out, true
}

// findCall returns the first call to fn whose source range covers line.
// The runtime reports the line of the call instruction, which for a
// multi-line call may be any line inside the call expression.
func findCall(src *parsedSource, line int, fn string) *ast.CallExpr {
	var found *ast.CallExpr
	ast.Inspect(src.file, func(n ast.Node) bool {
		if found != nil {
			return false
		}
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		start := src.fset.Position(call.Pos()).Line
		end := src.fset.Position(call.End()).Line
		if line < start || line > end {
			return true
		}
		if calleeName(call.Fun) != fn {
			return true
		}
		found = call
		return false
	})
	return found
}

// calleeName extracts the bare function name from a call target,
// unwrapping generic instantiation and package selectors.
func calleeName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		return calleeName(f.X)
	case *ast.IndexListExpr:
		return calleeName(f.X)
	default:
		return ""
	}
}

// typeArgs returns the source text of explicit type arguments on a
// generic call target, or nil when type arguments are inferred.
func typeArgs(fset *token.FileSet, fun ast.Expr) []string {
	switch f := fun.(type) {
	case *ast.IndexExpr:
		return []string{nodeText(fset, f.Index)}
	case *ast.IndexListExpr:
		args := make([]string, 0, len(f.Indices))
		for _, idx := range f.Indices {
			args = append(args, nodeText(fset, idx))
		}
		return args
	default:
		return nil
	}
}
