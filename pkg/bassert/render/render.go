// Package render produces the debug-rendered textual form of operand
// values for diagnostic messages. Rendering is deterministic: the same
// value always renders to the same text.
package render

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

// spewConfig renders composite values on one line with deterministic
// map ordering and without pointer addresses, so repeated failures of
// the same check produce identical messages.
var spewConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Value renders v for inclusion in a diagnostic message. Strings and
// byte slices are quoted so whitespace and emptiness are visible; basic
// scalar kinds use their plain representation; composite and pointer
// values go through go-spew, which dereferences pointers and sorts map
// keys.
func Value(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return strconv.Quote(x)
	case []byte:
		return strconv.Quote(string(x))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		// Named string types quote like plain strings.
		return strconv.Quote(rv.String())
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return fmt.Sprintf("%v", v)
	}

	return spewConfig.Sprintf("%v", v)
}

// Truncate caps s at max bytes, appending an explicit truncation
// marker. max <= 0 disables truncation. Long operand values would
// otherwise bloat logs and journals.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "... (truncated " + strconv.Itoa(len(s)-max) + " chars)"
}
