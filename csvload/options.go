package csvload

import (
	"fmt"
	"strconv"
)

// Terminator selects the byte sequence that ends a record.
// The zero value is CRLF.
type Terminator struct {
	b   byte
	set bool
}

// CRLF ends a record at "\r\n", "\r" or "\n".
var CRLF = Terminator{}

// Any ends a record at the single byte b and nowhere else.
func Any(b byte) Terminator {
	return Terminator{b: b, set: true}
}

// IsCRLF reports whether t is the CRLF terminator.
func (t Terminator) IsCRLF() bool {
	return !t.set
}

// Byte returns the terminator byte. ok is false for CRLF.
func (t Terminator) Byte() (b byte, ok bool) {
	return t.b, t.set
}

func (t Terminator) matches(c byte) bool {
	if t.set {
		return c == t.b
	}
	return c == '\r' || c == '\n'
}

// String implements fmt.Stringer.
func (t Terminator) String() string {
	if !t.set {
		return "CRLF"
	}
	return strconv.QuoteRune(rune(t.b))
}

// Options controls how delimited text is converted to a dataset.
type Options struct {
	SkipLines  int        // Physical lines ("\n"-terminated) discarded before parsing
	Quote      byte       // Quote byte (default: '"')
	Delimiter  byte       // Field delimiter (default: ',')
	Terminator Terminator // Record terminator (default: CRLF)
	HasHeader  bool       // Whether the first record holds column labels (default: true)
}

// DefaultOptions returns default options for CSV conversion.
func DefaultOptions() *Options {
	return &Options{
		Quote:      '"',
		Delimiter:  ',',
		Terminator: CRLF,
		HasHeader:  true,
	}
}

// WithSkipLines returns a copy of o with SkipLines set to n.
func (o *Options) WithSkipLines(n int) *Options {
	c := *o
	c.SkipLines = n
	return &c
}

// WithQuote returns a copy of o with Quote set to q.
func (o *Options) WithQuote(q byte) *Options {
	c := *o
	c.Quote = q
	return &c
}

// WithDelimiter returns a copy of o with Delimiter set to d.
func (o *Options) WithDelimiter(d byte) *Options {
	c := *o
	c.Delimiter = d
	return &c
}

// WithTerminator returns a copy of o with Terminator set to Any(b).
func (o *Options) WithTerminator(b byte) *Options {
	c := *o
	c.Terminator = Any(b)
	return &c
}

// WithHeaders returns a copy of o with HasHeader set to h.
func (o *Options) WithHeaders(h bool) *Options {
	c := *o
	c.HasHeader = h
	return &c
}

// Validate checks that the options describe an unambiguous format.
func (o *Options) Validate() error {
	if o.SkipLines < 0 {
		return fmt.Errorf("%w: negative skip lines %d", ErrInvalidOptions, o.SkipLines)
	}
	if o.Delimiter == o.Quote {
		return fmt.Errorf("%w: delimiter and quote are both %q", ErrInvalidOptions, o.Delimiter)
	}
	if o.Terminator.matches(o.Delimiter) {
		return fmt.Errorf("%w: delimiter %q is also the terminator", ErrInvalidOptions, o.Delimiter)
	}
	if o.Terminator.matches(o.Quote) {
		return fmt.Errorf("%w: quote %q is also the terminator", ErrInvalidOptions, o.Quote)
	}
	// Line breaks are reserved for line counting and skipping.
	if isLineBreak(o.Delimiter) {
		return fmt.Errorf("%w: delimiter %q is a line break", ErrInvalidOptions, o.Delimiter)
	}
	if isLineBreak(o.Quote) {
		return fmt.Errorf("%w: quote %q is a line break", ErrInvalidOptions, o.Quote)
	}
	return nil
}

func isLineBreak(c byte) bool {
	return c == '\n' || c == '\r'
}
