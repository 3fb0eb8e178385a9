// Package lexer turns jotdown source text into a lazy stream of tokens. It
// is a pushdown state machine: states inspect lookahead and either consume
// input, push a child state for a sub-construct, replace themselves, or pop.
package lexer

import (
	"errors"
	"fmt"
	"io"

	"github.com/jotdown-lang/jotdown/internal/automaton"
	"github.com/jotdown-lang/jotdown/internal/scanner"
	"github.com/jotdown-lang/jotdown/token"
)

// ErrLex is the sentinel error for unrecoverable lexical failures. Per-line
// syntax problems are reported inline as Error tokens instead.
var ErrLex = errors.New("lex error")

func lexError(message string, loc token.Location) error {
	return fmt.Errorf("%w: %s (at %s)", ErrLex, message, loc)
}

// context is the mutable state shared by all lexer states.
type context struct {
	in      *scanner.Scanner
	queue   []token.Token
	started bool

	// terminal is emitted in place of a bare line end, used to close
	// header text with HeaderEnd.
	terminal token.Kind

	// Open list item bookkeeping: the marker column of the innermost open
	// item, its continuation column, and the marker kind last seen.
	listLevel int
	textCol   int
	listKind  token.Kind
}

func (c *context) location() token.Location {
	return token.Location{Filename: c.in.Name(), Line: c.in.Line(), Col: c.in.Col()}
}

func (c *context) push(tk token.Token) {
	c.started = true
	c.queue = append(c.queue, tk)
}

func (c *context) pushAt(kind token.Kind, text string, begin token.Location) {
	c.push(token.Token{
		Kind:  kind,
		Text:  text,
		Range: token.Range{Begin: begin, End: c.location()},
	})
}

func (c *context) pushError(message string, begin token.Location) {
	c.pushAt(token.Error, message, begin)
}

// closeListIfOpen terminates the open list item's text, if any.
func (c *context) closeListIfOpen() {
	if c.listLevel == 0 {
		return
	}
	loc := c.location()
	c.pushAt(token.ListItemEnd, "", loc)
	c.listLevel = 0
	c.textCol = 0
	c.listKind = token.None
}

func (c *context) popToken() (token.Token, bool) {
	if len(c.queue) == 0 {
		return token.Token{}, false
	}
	tk := c.queue[0]
	c.queue = c.queue[1:]
	return tk, true
}

// Lexer drives the state machine, yielding one token per Next call. The
// stream ends with an End token, repeated on further calls; unrecoverable
// failures are returned as errors wrapping ErrLex.
type Lexer struct {
	ctx     *context
	machine *automaton.Machine[*context]
	last    token.Token
	done    bool
}

// New creates a lexer over r. The filename is reported in token ranges and
// diagnostics.
func New(r io.Reader, filename string) *Lexer {
	ctx := &context{in: scanner.New(r, filename)}
	return &Lexer{
		ctx:     ctx,
		machine: automaton.New(ctx, &stateBegin{}),
	}
}

// Next returns the next token, driving the machine through as many steps as
// needed to produce one.
func (l *Lexer) Next() (token.Token, error) {
	for {
		if tk, ok := l.ctx.popToken(); ok {
			l.last = tk
			return tk, nil
		}
		if l.done {
			return l.last, nil
		}
		more, err := l.machine.Update()
		if err != nil {
			return token.Token{}, err
		}
		if !more {
			l.done = true
		}
	}
}

// ReadAll drains the token stream up to and including the End token.
func (l *Lexer) ReadAll() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tk, err := l.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tk)
		if tk.Kind == token.End {
			return tokens, nil
		}
	}
}
