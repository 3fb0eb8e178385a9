package lexer

import (
	"strings"

	"github.com/jotdown-lang/jotdown/internal/scanner"
	"github.com/jotdown-lang/jotdown/token"
)

// stateEmbeddedLang consumes the opening fence of an embedded document and
// the language specifier on the same line. The "```" fence opens a code
// block, the "---" fence front matter.
type stateEmbeddedLang struct {
	fence string
	begin token.Location
}

func (s *stateEmbeddedLang) Run(m *machine, ctx *context) error {
	ctx.in.Advance(len(s.fence))
	var lang strings.Builder
	for {
		c := ctx.in.Peek(1)
		if c == scanner.EOF {
			return lexError("unterminated embedded document", s.begin)
		}
		if c == '\n' {
			ctx.in.Advance(1)
			break
		}
		lang.WriteRune(ctx.in.Getc())
	}
	m.Transition(&stateEmbeddedBody{
		fence:     s.fence,
		language:  strings.TrimSpace(lang.String()),
		begin:     s.begin,
		lineBegin: true,
	})
	return nil
}

// stateEmbeddedBody accumulates the embedded document's raw content until a
// matching fence opens a line. Running out of input before the closing fence
// is unrecoverable.
type stateEmbeddedBody struct {
	fence     string
	language  string
	begin     token.Location
	sb        strings.Builder
	lineBegin bool
}

func (s *stateEmbeddedBody) Run(m *machine, ctx *context) error {
	if s.lineBegin && ctx.in.ScanEq(s.fence) {
		ctx.in.Advance(len(s.fence))
		ctx.push(token.Token{
			Kind:     token.EmbeddedDocument,
			Text:     s.sb.String(),
			Language: s.language,
			Fence:    s.fence,
			Range:    token.Range{Begin: s.begin, End: ctx.location()},
		})
		m.Transition(&statePostFence{})
		return nil
	}
	c := ctx.in.Peek(1)
	if c == scanner.EOF {
		return lexError("unterminated embedded document", s.begin)
	}
	ch := ctx.in.Getc()
	s.sb.WriteRune(ch)
	s.lineBegin = ch == '\n'
	return nil
}

// statePostFence discards the remainder of the closing fence's line,
// reporting anything other than whitespace after the fence.
type statePostFence struct {
	junk  bool
	begin token.Location
}

func (s *statePostFence) Run(m *machine, ctx *context) error {
	c := ctx.in.Peek(1)
	switch {
	case isLineEnd(c):
		if c == '\n' {
			ctx.in.Advance(1)
		}
		if s.junk {
			ctx.pushError("unexpected text after closing fence", s.begin)
		}
		m.Pop()
	case isBlank(c):
		ctx.in.Advance(1)
	default:
		if !s.junk {
			s.junk = true
			s.begin = ctx.location()
		}
		ctx.in.Advance(1)
	}
	return nil
}
