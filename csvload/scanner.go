package csvload

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// scanner splits text into records in a single forward pass.
type scanner struct {
	text  string
	pos   int
	line  int
	quote byte
	delim byte
	term  Terminator

	record          int
	fieldsPerRecord int
	field           strings.Builder
}

func newScanner(text string, opts *Options, firstLine int) *scanner {
	return &scanner{
		text:  text,
		line:  firstLine,
		quote: opts.Quote,
		delim: opts.Delimiter,
		term:  opts.Terminator,
	}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.text)
}

// advance moves past one byte. Lines end at "\n", and under CRLF also at a
// "\r" that is not followed by "\n".
func (s *scanner) advance() {
	switch c := s.text[s.pos]; {
	case c == '\n':
		s.line++
	case c == '\r' && s.term.IsCRLF() && (s.pos+1 == len(s.text) || s.text[s.pos+1] != '\n'):
		s.line++
	}
	s.pos++
}

func (s *scanner) atTerminator() bool {
	return !s.eof() && s.term.matches(s.text[s.pos])
}

func (s *scanner) skipTerminator() {
	if s.term.IsCRLF() && s.text[s.pos] == '\r' && s.pos+1 < len(s.text) && s.text[s.pos+1] == '\n' {
		s.pos++
	}
	s.advance()
}

// next returns the fields of the next non-empty record, or io.EOF.
// Every record must have as many fields as the first one.
func (s *scanner) next() ([]string, error) {
	for s.atTerminator() {
		s.skipTerminator()
	}
	if s.eof() {
		return nil, io.EOF
	}

	s.record++
	startLine := s.line
	var fields []string
	for {
		field, err := s.readField()
		if err != nil {
			return nil, &ParseError{Record: s.record, Line: startLine, Err: err}
		}
		if !utf8.ValidString(field) {
			return nil, &ParseError{Record: s.record, Line: startLine, Err: ErrEncoding}
		}
		fields = append(fields, field)

		if s.eof() {
			break
		}
		if s.text[s.pos] == s.delim {
			s.pos++
			continue
		}
		s.skipTerminator()
		break
	}

	if s.fieldsPerRecord == 0 {
		s.fieldsPerRecord = len(fields)
	} else if len(fields) != s.fieldsPerRecord {
		return nil, &ParseError{
			Record: s.record,
			Line:   startLine,
			Err:    fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), s.fieldsPerRecord),
		}
	}
	return fields, nil
}

// readField reads one field and stops in front of the following delimiter,
// terminator or end of input.
func (s *scanner) readField() (string, error) {
	s.field.Reset()

	if !s.eof() && s.text[s.pos] == s.quote {
		s.pos++
		for {
			if s.eof() {
				return "", ErrUnterminatedQuote
			}
			c := s.text[s.pos]
			if c == s.quote {
				if s.pos+1 < len(s.text) && s.text[s.pos+1] == s.quote {
					s.field.WriteByte(c)
					s.pos += 2
					continue
				}
				s.pos++
				break
			}
			s.field.WriteByte(c)
			s.advance()
		}
	}

	// Unquoted text, or anything after a closing quote, is kept literally.
	for !s.eof() && s.text[s.pos] != s.delim && !s.atTerminator() {
		s.field.WriteByte(s.text[s.pos])
		s.advance()
	}
	return s.field.String(), nil
}

// skipLines drops the first n "\n"-terminated lines of text and reports how
// many were dropped.
func skipLines(text string, n int) (string, int) {
	skipped := 0
	for ; skipped < n && text != ""; skipped++ {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			return "", skipped + 1
		}
		text = text[i+1:]
	}
	return text, skipped
}
