package compiler

import "github.com/jotdown-lang/jotdown/token"

// TokenSource yields tokens one at a time. The lexer satisfies it; a stream
// ends with an End token repeated on further calls.
type TokenSource interface {
	Next() (token.Token, error)
}

// sliceSource adapts a pre-lexed token slice to a TokenSource.
type sliceSource struct {
	tokens []token.Token
	pos    int
}

func (s *sliceSource) Next() (token.Token, error) {
	if s.pos >= len(s.tokens) {
		if n := len(s.tokens); n > 0 && s.tokens[n-1].Kind == token.End {
			return s.tokens[n-1], nil
		}
		return token.Token{Kind: token.End}, nil
	}
	tk := s.tokens[s.pos]
	s.pos++
	return tk, nil
}

// TokenBuffer adds arbitrary lookahead on top of a TokenSource. A source
// error is sticky: once observed it is returned by every later call.
type TokenBuffer struct {
	src TokenSource
	buf []token.Token
	err error
}

// NewTokenBuffer creates a buffer over src.
func NewTokenBuffer(src TokenSource) *TokenBuffer {
	return &TokenBuffer{src: src}
}

func (b *TokenBuffer) fill(n int) {
	for len(b.buf) < n && b.err == nil {
		tk, err := b.src.Next()
		if err != nil {
			b.err = err
			return
		}
		b.buf = append(b.buf, tk)
	}
}

// Peek returns the nth token of lookahead without consuming it. Peek(1) is
// the next token.
func (b *TokenBuffer) Peek(n int) (token.Token, error) {
	b.fill(n)
	if len(b.buf) < n {
		return token.Token{}, b.err
	}
	return b.buf[n-1], nil
}

// Get consumes and returns the next token.
func (b *TokenBuffer) Get() (token.Token, error) {
	b.fill(1)
	if len(b.buf) == 0 {
		return token.Token{}, b.err
	}
	tk := b.buf[0]
	b.buf = b.buf[1:]
	return tk, nil
}

// Advance consumes n tokens.
func (b *TokenBuffer) Advance(n int) {
	for i := 0; i < n; i++ {
		if _, err := b.Get(); err != nil {
			return
		}
	}
}
