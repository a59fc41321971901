// Package expr performs static analysis of checked expressions: it
// classifies the top-level operator of an expression, splits it into
// operand source texts, and recovers argument source text from call
// sites. It never looks at runtime values.
package expr

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
)

// Kind identifies the top-level operator form of a checked expression.
// Exactly one kind is selected per check, and selection depends only on
// the shape of the expression.
type Kind int

const (
	// Boolean means no recognized operator tops the expression; the
	// whole expression is treated as a plain condition.
	Boolean Kind = iota
	Eq
	Ne
	Gt
	Ge
	Lt
	Le
	// Match is the pattern-match form: the right side is matched against
	// a type pattern rather than compared against a value.
	Match
)

// Operator returns the source token for the kind ("==", "<", ...).
// Boolean has no operator and returns the empty string; Match uses "="
// like a pattern binding.
func (k Kind) Operator() string {
	switch k {
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Gt:
		return ">"
	case Ge:
		return ">="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Match:
		return "="
	default:
		return ""
	}
}

// String returns a short label for the kind, suitable for metric
// attributes and journal columns.
func (k Kind) String() string {
	switch k {
	case Eq:
		return "eq"
	case Ne:
		return "ne"
	case Gt:
		return "gt"
	case Ge:
		return "ge"
	case Lt:
		return "lt"
	case Le:
		return "le"
	case Match:
		return "match"
	default:
		return "bool"
	}
}

// Classification is the result of classifying one expression.
type Classification struct {
	Kind Kind
	Expr string // whole expression, normalized
	Lhs  string // left operand text; empty for Boolean
	Rhs  string // right operand text; empty for Boolean
}

// kindForToken maps the six comparison tokens to their kinds.
var kindForToken = map[token.Token]Kind{
	token.EQL: Eq,
	token.NEQ: Ne,
	token.GTR: Gt,
	token.GEQ: Ge,
	token.LSS: Lt,
	token.LEQ: Le,
}

// Classify inspects the top syntactic level of src and determines which
// operator form, if any, tops it. An expression whose top-level node is
// a binary comparison yields that comparison's kind plus the two operand
// texts; anything else is Boolean with the whole text as the condition.
//
// Explicit grouping hides an operator from top-level scanning, so
// "(a < b)" classifies as Boolean. Input that does not parse as a Go
// expression is an error; classification never guesses.
func Classify(src string) (Classification, error) {
	fset := token.NewFileSet()
	node, err := parser.ParseExprFrom(fset, "", src, 0)
	if err != nil {
		return Classification{}, fmt.Errorf("classify %q: %w", src, err)
	}

	if bin, ok := node.(*ast.BinaryExpr); ok {
		if kind, ok := kindForToken[bin.Op]; ok {
			return Classification{
				Kind: kind,
				Expr: nodeText(fset, node),
				Lhs:  nodeText(fset, bin.X),
				Rhs:  nodeText(fset, bin.Y),
			}, nil
		}
	}
	return Classification{Kind: Boolean, Expr: nodeText(fset, node)}, nil
}

// nodeText renders a node back to source text. go/printer reproduces
// the expression as written modulo canonical spacing, and keeps
// explicit parentheses.
func nodeText(fset *token.FileSet, node ast.Node) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, node); err != nil {
		return ""
	}
	return buf.String()
}
