// Package scanner provides a buffered character source with arbitrary
// lookahead and line/column tracking for the lexer.
package scanner

import (
	"bufio"
	"io"
)

// EOF is returned by Peek and Getc once the input is exhausted.
const EOF rune = -1

// Scanner reads runes from an input stream with unbounded lookahead.
type Scanner struct {
	r    *bufio.Reader
	name string
	buf  []rune
	eof  bool
	line int
	col  int
}

// New creates a scanner over r. The name is reported in source locations.
func New(r io.Reader, name string) *Scanner {
	return &Scanner{
		r:    bufio.NewReader(r),
		name: name,
		line: 1,
		col:  1,
	}
}

// Name returns the input name used for diagnostics.
func (s *Scanner) Name() string {
	return s.name
}

// Line returns the 1-based line of the next unread character.
func (s *Scanner) Line() int {
	return s.line
}

// Col returns the 1-based column of the next unread character.
func (s *Scanner) Col() int {
	return s.col
}

func (s *Scanner) fill(n int) {
	for len(s.buf) < n && !s.eof {
		r, _, err := s.r.ReadRune()
		if err != nil {
			s.eof = true
			return
		}
		s.buf = append(s.buf, r)
	}
}

// Peek returns the nth character of lookahead without consuming input.
// Peek(1) is the next character. Positions past the end yield EOF.
func (s *Scanner) Peek(n int) rune {
	if n < 1 {
		return EOF
	}
	s.fill(n)
	if len(s.buf) < n {
		return EOF
	}
	return s.buf[n-1]
}

// Getc consumes and returns the next character, updating line and column
// tracking. It returns EOF once the input is exhausted.
func (s *Scanner) Getc() rune {
	s.fill(1)
	if len(s.buf) == 0 {
		return EOF
	}
	c := s.buf[0]
	s.buf = s.buf[1:]
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return c
}

// Advance consumes n characters.
func (s *Scanner) Advance(n int) {
	for i := 0; i < n; i++ {
		if s.Getc() == EOF {
			return
		}
	}
}

// ScanEq reports whether the upcoming input starts with lit, without
// consuming anything.
func (s *Scanner) ScanEq(lit string) bool {
	for i, want := range []rune(lit) {
		if s.Peek(i+1) != want {
			return false
		}
	}
	return true
}
