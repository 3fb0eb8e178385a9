package lexer

import (
	"strings"
	"unicode"

	"github.com/jotdown-lang/jotdown/internal/automaton"
	"github.com/jotdown-lang/jotdown/internal/scanner"
	"github.com/jotdown-lang/jotdown/token"
)

type state = automaton.State[*context]

type machine = automaton.Machine[*context]

func isLineEnd(c rune) bool {
	return c == '\n' || c == scanner.EOF
}

func isBlank(c rune) bool {
	return c == ' ' || c == '\t'
}

// isTrailingPunct reports whether c, followed by next, ends a tag or bare
// link: trailing punctuation before whitespace is left out of the construct.
func isTrailingPunct(c, next rune) bool {
	if !unicode.IsPunct(c) && !unicode.IsSymbol(c) {
		return false
	}
	return isBlank(next) || isLineEnd(next)
}

// stateBegin dispatches at the start of a line in column one. It is the
// bottom of the stack for the whole run.
type stateBegin struct{}

func (s *stateBegin) Run(m *machine, ctx *context) error {
	switch c := ctx.in.Peek(1); {
	case c == scanner.EOF:
		ctx.closeListIfOpen()
		loc := ctx.location()
		ctx.pushAt(token.End, "", loc)
		m.Terminate()

	case c == '#':
		ctx.closeListIfOpen()
		m.Push(&stateMaybeHeader{level: 1, begin: ctx.location()})

	case c == '`' && ctx.in.ScanEq("```"):
		ctx.closeListIfOpen()
		m.Push(&stateEmbeddedLang{fence: "```", begin: ctx.location()})

	case c == '-' && !ctx.started && ctx.in.ScanEq("---") && ctx.in.Peek(4) == '\n':
		m.Push(&stateEmbeddedLang{fence: "---", begin: ctx.location()})

	default:
		m.Push(&stateLineScan{})
	}
	return nil
}

// stateMaybeHeader counts leading '#' characters. A space after them makes
// the line a header; anything else demotes it to ordinary text.
type stateMaybeHeader struct {
	level int
	begin token.Location
}

func (s *stateMaybeHeader) Run(m *machine, ctx *context) error {
	switch c := ctx.in.Peek(s.level + 1); {
	case c == '#':
		s.level++
	case isBlank(c):
		ctx.in.Advance(s.level + 1)
		ctx.push(token.Token{
			Kind:  token.HeaderStart,
			Level: s.level,
			Range: token.Range{Begin: s.begin, End: ctx.location()},
		})
		ctx.terminal = token.HeaderEnd
		m.Transition(&stateTextLine{})
	default:
		m.Transition(&stateTextLine{})
	}
	return nil
}

// stateLineScan measures a line's indentation without consuming it, then
// decides between a blank line, a list item, a list continuation, and a
// plain text line.
type stateLineScan struct{}

func (s *stateLineScan) Run(m *machine, ctx *context) error {
	x := 1
	for isBlank(ctx.in.Peek(x)) {
		x++
	}
	c := ctx.in.Peek(x)

	switch {
	case c == '\n':
		ctx.closeListIfOpen()
		begin := ctx.location()
		ctx.in.Advance(x)
		ctx.pushAt(token.Newline, "\n", begin)
		m.Pop()
		return nil

	case c == scanner.EOF:
		ctx.in.Advance(x - 1)
		m.Pop()
		return nil
	}

	if kind, width, ordinal := scanListMarker(ctx.in, x); kind != token.None {
		s.lexListItem(m, ctx, x, kind, width, ordinal)
		return nil
	}

	if ctx.listLevel != 0 && x == ctx.textCol {
		// Continuation of the open item's text.
		ctx.in.Advance(x - 1)
		m.Transition(&stateTextLine{})
		return nil
	}
	ctx.closeListIfOpen()
	ctx.in.Advance(x - 1)
	m.Transition(&stateTextLine{})
	return nil
}

// scanListMarker looks for a list item marker at column x. It returns the
// marker kind, its width in characters including the trailing space, and the
// ordinal text for ordered items.
func scanListMarker(in *scanner.Scanner, x int) (token.Kind, int, string) {
	c := in.Peek(x)
	if c == '-' {
		if in.Peek(x+1) == ' ' {
			return token.UnorderedListItem, 2, ""
		}
		return token.None, 0, ""
	}
	if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
		return token.None, 0, ""
	}
	var ordinal strings.Builder
	y := x
	for unicode.IsLetter(in.Peek(y)) || unicode.IsDigit(in.Peek(y)) {
		ordinal.WriteRune(in.Peek(y))
		y++
	}
	if in.Peek(y) == '.' && in.Peek(y+1) == ' ' {
		return token.OrderedListItem, y + 2 - x, ordinal.String()
	}
	return token.None, 0, ""
}

func (s *stateLineScan) lexListItem(m *machine, ctx *context, x int, kind token.Kind, width int, ordinal string) {
	if ctx.listLevel == x && ctx.listKind != kind {
		// Close the open item first so the error surfaces at list
		// level, not inside a label.
		ctx.closeListIfOpen()
		begin := ctx.location()
		skipLine(ctx.in)
		ctx.pushError("ordered and unordered items mixed in one list", begin)
		m.Pop()
		return
	}
	ctx.closeListIfOpen()

	ctx.in.Advance(x - 1)
	begin := ctx.location()
	ctx.in.Advance(width)
	ctx.push(token.Token{
		Kind:    kind,
		Ordinal: ordinal,
		Level:   x,
		Range:   token.Range{Begin: begin, End: ctx.location()},
	})

	if status, ok := scanStatus(ctx.in); ok {
		sb := ctx.location()
		ctx.in.Advance(len([]rune(status)) + 3)
		ctx.pushAt(token.Status, status, sb)
	}

	ctx.listLevel = x
	ctx.listKind = kind
	ctx.textCol = ctx.in.Col()
	m.Transition(&stateTextLine{})
}

// scanStatus matches a "[status] " annotation directly after a list item
// crown, without consuming input.
func scanStatus(in *scanner.Scanner) (string, bool) {
	if in.Peek(1) != '[' {
		return "", false
	}
	var sb strings.Builder
	y := 2
	for {
		c := in.Peek(y)
		if c == ']' {
			break
		}
		if isLineEnd(c) || c == '[' {
			return "", false
		}
		sb.WriteRune(c)
		y++
	}
	if in.Peek(y+1) != ' ' {
		return "", false
	}
	return sb.String(), true
}

func skipLine(in *scanner.Scanner) {
	for !isLineEnd(in.Peek(1)) {
		in.Getc()
	}
}

// stateTextLine lexes one line of inline content, splitting out code spans,
// hashtags, anchors and link forms. Plain text between them accumulates into
// Text tokens; outside of header text the closing newline is part of the
// token.
type stateTextLine struct {
	sb      strings.Builder
	begin   token.Location
	newWord bool
	primed  bool
}

func (s *stateTextLine) ingest(ctx *context) {
	if s.sb.Len() == 0 {
		s.begin = ctx.location()
	}
	c := ctx.in.Getc()
	s.sb.WriteRune(c)
	s.newWord = isBlank(c)
}

func (s *stateTextLine) digest(ctx *context) {
	if s.sb.Len() == 0 {
		return
	}
	ctx.pushAt(token.Text, s.sb.String(), s.begin)
	s.sb.Reset()
}

func (s *stateTextLine) Run(m *machine, ctx *context) error {
	if !s.primed {
		s.primed = true
		s.newWord = true
	}
	c := ctx.in.Peek(1)

	switch {
	case c == scanner.EOF:
		s.digest(ctx)
		s.finish(ctx)
		m.Pop()

	case c == '\n':
		if ctx.terminal != token.None {
			s.digest(ctx)
			ctx.in.Advance(1)
			s.finish(ctx)
		} else {
			s.ingest(ctx)
			s.digest(ctx)
		}
		m.Pop()

	case c == '\\':
		// Escapes that are not significant here stay in the text
		// verbatim; the escaped character can no longer open a
		// construct.
		s.ingest(ctx)
		if !isLineEnd(ctx.in.Peek(1)) {
			s.ingest(ctx)
		}

	case c == '`' && s.newWord:
		s.digest(ctx)
		begin := ctx.location()
		ctx.in.Advance(1)
		s.newWord = false
		m.Push(&stateCodeSpan{begin: begin})

	case c == '#' && s.newWord && !isBlank(ctx.in.Peek(2)) && !isLineEnd(ctx.in.Peek(2)):
		s.digest(ctx)
		begin := ctx.location()
		ctx.in.Advance(1)
		s.newWord = false
		m.Push(&stateTag{kind: token.Hashtag, begin: begin})

	case c == '&' && s.newWord && !isBlank(ctx.in.Peek(2)) && !isLineEnd(ctx.in.Peek(2)):
		s.digest(ctx)
		begin := ctx.location()
		ctx.in.Advance(1)
		s.newWord = false
		m.Push(&stateTag{kind: token.Anchor, begin: begin})

	case c == '@' && s.newWord && !isBlank(ctx.in.Peek(2)) && !isLineEnd(ctx.in.Peek(2)):
		s.digest(ctx)
		begin := ctx.location()
		ctx.in.Advance(1)
		s.newWord = false
		m.Push(&stateRef{begin: begin})

	case c == '[' && s.newWord:
		s.digest(ctx)
		s.newWord = false
		s.lexBracket(ctx)

	case c == '<' && s.newWord && !isBlank(ctx.in.Peek(2)) && !isLineEnd(ctx.in.Peek(2)):
		s.digest(ctx)
		s.newWord = false
		s.lexAngle(ctx)

	default:
		s.ingest(ctx)
	}
	return nil
}

// finish emits the pending terminal token, if the enclosing construct
// requested one.
func (s *stateTextLine) finish(ctx *context) {
	if ctx.terminal == token.None {
		return
	}
	loc := ctx.location()
	ctx.pushAt(ctx.terminal, "", loc)
	ctx.terminal = token.None
}

// lexBracket consumes a bracketed link form: [text](link), [text][index],
// [name]: link, or the bare [link]. A missing closing delimiter yields an
// Error token and discards the rest of the line.
func (s *stateTextLine) lexBracket(ctx *context) {
	begin := ctx.location()
	ctx.in.Advance(1)
	text, ok := scanDelimited(ctx.in, ']')
	if !ok {
		skipLine(ctx.in)
		ctx.pushError("unterminated link text", begin)
		return
	}

	switch ctx.in.Peek(1) {
	case '(':
		ctx.in.Advance(1)
		link, ok := scanDelimited(ctx.in, ')')
		if !ok {
			skipLine(ctx.in)
			ctx.pushError("unterminated link", begin)
			return
		}
		ctx.push(token.Token{
			Kind:  token.Ref,
			Text:  text,
			Link:  link,
			Range: token.Range{Begin: begin, End: ctx.location()},
		})

	case '[':
		ctx.in.Advance(1)
		index, ok := scanDelimited(ctx.in, ']')
		if !ok {
			skipLine(ctx.in)
			ctx.pushError("unterminated link index", begin)
			return
		}
		ctx.push(token.Token{
			Kind:  token.IndexedRef,
			Text:  text,
			Index: index,
			Range: token.Range{Begin: begin, End: ctx.location()},
		})

	case ':':
		ctx.in.Advance(1)
		for isBlank(ctx.in.Peek(1)) {
			ctx.in.Advance(1)
		}
		var link strings.Builder
		for !isBlank(ctx.in.Peek(1)) && !isLineEnd(ctx.in.Peek(1)) {
			link.WriteRune(ctx.in.Getc())
		}
		ctx.push(token.Token{
			Kind:  token.RefIndex,
			Text:  text,
			Link:  link.String(),
			Range: token.Range{Begin: begin, End: ctx.location()},
		})

	default:
		ctx.push(token.Token{
			Kind:  token.Ref,
			Text:  text,
			Link:  text,
			Range: token.Range{Begin: begin, End: ctx.location()},
		})
	}
}

// lexAngle consumes an angle-bracketed link, <link>, where text and target
// are one and the same. The closing delimiter may be escaped as \>.
func (s *stateTextLine) lexAngle(ctx *context) {
	begin := ctx.location()
	ctx.in.Advance(1)
	link, ok := scanDelimited(ctx.in, '>')
	if !ok {
		skipLine(ctx.in)
		ctx.pushError("unterminated link", begin)
		return
	}
	ctx.push(token.Token{
		Kind:  token.Ref,
		Text:  link,
		Link:  link,
		Range: token.Range{Begin: begin, End: ctx.location()},
	})
}

// scanDelimited consumes input up to and including the closing delimiter,
// honoring backslash escapes for the delimiter and for backslash itself. It
// reports failure at end of line without consuming the newline.
func scanDelimited(in *scanner.Scanner, close rune) (string, bool) {
	var sb strings.Builder
	for {
		c := in.Peek(1)
		switch {
		case isLineEnd(c):
			return sb.String(), false
		case c == close:
			in.Advance(1)
			return sb.String(), true
		case c == '\\':
			next := in.Peek(2)
			if next == close || next == '\\' {
				in.Advance(1)
			}
			sb.WriteRune(in.Getc())
		default:
			sb.WriteRune(in.Getc())
		}
	}
}

// stateCodeSpan lexes backtick-delimited inline code. Only the backtick and
// the backslash can be escaped inside; an unterminated span produces an
// Error token.
type stateCodeSpan struct {
	sb    strings.Builder
	begin token.Location
}

func (s *stateCodeSpan) Run(m *machine, ctx *context) error {
	switch c := ctx.in.Peek(1); {
	case c == '`':
		ctx.in.Advance(1)
		ctx.pushAt(token.Code, s.sb.String(), s.begin)
		m.Pop()
	case isLineEnd(c):
		ctx.pushError("unterminated code span", s.begin)
		m.Pop()
	case c == '\\':
		next := ctx.in.Peek(2)
		if next == '`' || next == '\\' {
			ctx.in.Advance(1)
		}
		s.sb.WriteRune(ctx.in.Getc())
	default:
		s.sb.WriteRune(ctx.in.Getc())
	}
	return nil
}

// stateTag lexes a hashtag or anchor name after its sigil: characters up to
// whitespace, excluding any trailing punctuation.
type stateTag struct {
	kind  token.Kind
	sb    strings.Builder
	begin token.Location
}

func (s *stateTag) Run(m *machine, ctx *context) error {
	c := ctx.in.Peek(1)
	switch {
	case isBlank(c) || isLineEnd(c):
		ctx.pushAt(s.kind, s.sb.String(), s.begin)
		m.Pop()
	case isTrailingPunct(c, ctx.in.Peek(2)):
		ctx.pushAt(s.kind, s.sb.String(), s.begin)
		m.Pop()
	default:
		s.sb.WriteRune(ctx.in.Getc())
	}
	return nil
}

// stateRef lexes an "@link" or "@link[text]" reference.
type stateRef struct {
	link    strings.Builder
	text    strings.Builder
	begin   token.Location
	hasText bool
}

func (s *stateRef) Run(m *machine, ctx *context) error {
	c := ctx.in.Peek(1)

	if s.hasText {
		switch {
		case c == ']':
			ctx.in.Advance(1)
			s.emit(ctx, s.text.String())
			m.Pop()
		case isLineEnd(c):
			ctx.pushError("unterminated link text", s.begin)
			m.Pop()
		case c == '\\' && (ctx.in.Peek(2) == ']' || ctx.in.Peek(2) == '\\'):
			ctx.in.Advance(1)
			s.text.WriteRune(ctx.in.Getc())
		default:
			s.text.WriteRune(ctx.in.Getc())
		}
		return nil
	}

	switch {
	case c == '[':
		ctx.in.Advance(1)
		s.hasText = true
	case isBlank(c) || isLineEnd(c):
		s.emit(ctx, "")
		m.Pop()
	case isTrailingPunct(c, ctx.in.Peek(2)):
		s.emit(ctx, "")
		m.Pop()
	default:
		s.link.WriteRune(ctx.in.Getc())
	}
	return nil
}

func (s *stateRef) emit(ctx *context, text string) {
	link := s.link.String()
	if text == "" {
		text = link
	}
	ctx.push(token.Token{
		Kind:  token.Ref,
		Text:  text,
		Link:  link,
		Range: token.Range{Begin: s.begin, End: ctx.location()},
	})
}
