package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Value is a single cell. It keeps the original text and, when the text is a
// finite floating-point literal, its numeric interpretation.
//
// A Value is either text-only or numeric. Float reports 0 for text-only
// values so that they contribute nothing to sums.
type Value struct {
	raw     string
	num     float64
	numeric bool
}

// NewValue creates a Value from raw cell text.
// Text that does not parse as a finite number yields a non-numeric Value;
// that is a normal outcome, not an error.
func NewValue(raw string) Value {
	v := Value{raw: raw}
	if raw == "" {
		return v
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return v
	}
	v.num = f
	v.numeric = true
	return v
}

// NumberValue creates a numeric Value. Its raw text is the shortest decimal
// rendering of n. NaN and infinities keep their text ("NaN", "+Inf", "-Inf")
// but are not numeric, the same as NewValue on that text.
func NumberValue(n float64) Value {
	raw := strconv.FormatFloat(n, 'f', -1, 64)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Value{raw: raw}
	}
	return Value{raw: raw, num: n, numeric: true}
}

// Null returns the empty Value, identical to NewValue("").
func Null() Value {
	return Value{}
}

// Raw returns the original cell text.
func (v Value) Raw() string {
	return v.raw
}

// Float returns the numeric interpretation, or 0 when the value is not numeric.
func (v Value) Float() float64 {
	return v.num
}

// IsNumeric reports whether the raw text parsed as a finite number.
func (v Value) IsNumeric() bool {
	return v.numeric
}

// IsBlank reports whether the raw text is empty.
func (v Value) IsBlank() bool {
	return v.raw == ""
}

// Trimmed returns a new Value parsed from the raw text with surrounding
// whitespace removed.
func (v Value) Trimmed() Value {
	return NewValue(strings.TrimSpace(v.raw))
}

// Equal reports whether both values have the same text, number and kind.
func (v Value) Equal(o Value) bool {
	return v == o
}

// String implements fmt.Stringer.
func (v Value) String() string {
	return v.raw
}
