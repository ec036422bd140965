package csvload

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOptions is returned when delimiter, quote and terminator collide.
	ErrInvalidOptions = errors.New("csvload: invalid options")

	// ErrUnterminatedQuote is returned when the input ends inside a quoted field.
	ErrUnterminatedQuote = errors.New("csvload: unterminated quoted field")

	// ErrFieldCount is returned when a record's width differs from the first record.
	ErrFieldCount = errors.New("csvload: wrong number of fields")

	// ErrEncoding is returned when a field is not valid UTF-8.
	ErrEncoding = errors.New("csvload: invalid UTF-8 in field")
)

// ParseError reports where in the input a record failed to parse.
type ParseError struct {
	Record int   // 1-based record number, counting the header
	Line   int   // 1-based line where the record starts; under CRLF a lone "\r" also ends a line
	Err    error // Underlying error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("csvload: record %d (line %d): %v", e.Record, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
