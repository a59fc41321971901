// Package report defines the failure report assembled for a failed
// check and renders it into the diagnostic message.
package report

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/bassert/pkg/bassert/expr"
)

// Operand pairs the source text of one side of a check with its
// debug-rendered value. The text is captured before evaluation and
// never altered; the value is rendered from the single evaluation of
// the operand expression.
type Operand struct {
	Text  string
	Value string
}

// Report is the full context of one failed check. It is transient:
// built in the failure branch, rendered once, and carried out of the
// program inside the panic payload (and optionally a journal row).
type Report struct {
	// ID uniquely identifies this failure for journal and trace
	// correlation.
	ID string
	// Time is when the failure was observed, in UTC.
	Time time.Time
	// Expr is the source text of the whole checked expression.
	Expr string
	// Kind is the classified operator form.
	Kind expr.Kind
	// Operands holds the one or two operands; empty for the Boolean
	// form, where no operand values are available.
	Operands []Operand
	// Message is the formatted custom message, or empty.
	Message string
	// Stack optionally holds a stack trace. It is recorded to the
	// journal and span event but never included in the rendered
	// message.
	Stack []byte
}

// New creates a report with a fresh ID and timestamp.
func New(kind expr.Kind, exprText string, operands []Operand, message string) *Report {
	return &Report{
		ID:       uuid.NewString(),
		Time:     time.Now().UTC(),
		Expr:     exprText,
		Kind:     kind,
		Operands: operands,
		Message:  message,
	}
}

// Render builds the diagnostic message:
//
//	assertion failed: `<expression>`
//	<lhs text>: `<lhs value>`,
//	<rhs text>: `<rhs value>`: <custom message>
//
// Operand lines end in a comma except the last. The custom message, if
// present, is appended after the final operand (or after the header
// when there are no operands) separated by ": ". The layout is
// deterministic: rendering the same report twice yields identical text.
func (r *Report) Render() string {
	var sb strings.Builder
	sb.WriteString("assertion failed: `")
	sb.WriteString(r.Expr)
	sb.WriteString("`")

	for i, op := range r.Operands {
		sb.WriteString("\n")
		sb.WriteString(op.Text)
		sb.WriteString(": `")
		sb.WriteString(op.Value)
		sb.WriteString("`")
		if i < len(r.Operands)-1 {
			sb.WriteString(",")
		}
	}

	if r.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(r.Message)
	}

	return sb.String()
}
