// Package compiler builds the jotdown object tree from a token stream. Like
// the lexer it is a pushdown state machine: one state per open construct,
// sharing a token buffer with arbitrary lookahead.
package compiler

import (
	"errors"
	"fmt"

	"github.com/jotdown-lang/jotdown/internal/automaton"
	"github.com/jotdown-lang/jotdown/object"
	"github.com/jotdown-lang/jotdown/token"
)

// ErrCompile is the sentinel error for structural failures in the token
// stream.
var ErrCompile = errors.New("compile error")

func unexpectedToken(tk token.Token) error {
	return fmt.Errorf("%w: unexpected %s token (at %s)", ErrCompile, tk.Kind, tk.Range.Begin)
}

// context is the mutable state shared by all compiler states.
type context struct {
	tokens *TokenBuffer
	doc    *object.Document

	// Link index bookkeeping for the resolution pass: declared link
	// indices by name, and every indexed reference seen.
	refIndexes  map[string]string
	indexedRefs []*object.IndexedRef
}

func (c *context) peek() (token.Token, error) {
	return c.tokens.Peek(1)
}

// Compile consumes src and builds the document tree. Error tokens in the
// stream become compile errors carrying the lexer's message.
func Compile(src TokenSource) (*object.Document, error) {
	ctx := &context{
		tokens:     NewTokenBuffer(src),
		doc:        object.NewDocument(),
		refIndexes: make(map[string]string),
	}
	machine := automaton.New(ctx, &stateCompile{})
	for {
		more, err := machine.Update()
		if err != nil {
			return nil, err
		}
		if !more {
			return ctx.doc, nil
		}
	}
}

// CompileTokens builds the document tree from an already lexed token slice.
func CompileTokens(tokens []token.Token) (*object.Document, error) {
	return Compile(&sliceSource{tokens: tokens})
}

// resolveRefs binds every indexed reference to its declared link index, if
// one exists. Unresolved references keep an empty resolved link.
func (c *context) resolveRefs() {
	for _, ref := range c.indexedRefs {
		if link, ok := c.refIndexes[ref.IndexName()]; ok {
			ref.Resolve(link)
		}
	}
}

// inlineObject builds the leaf object for an inline token, registering link
// index declarations and indexed references as a side effect. It reports
// false for non-inline kinds.
func (c *context) inlineObject(tk token.Token) (object.Object, bool) {
	var o object.Object
	switch tk.Kind {
	case token.Text:
		o = object.NewText(tk.Text)
	case token.Hashtag:
		o = object.NewHashtag(tk.Text)
	case token.Anchor:
		o = object.NewAnchor(tk.Text)
	case token.Code:
		o = object.NewCode(tk.Text)
	case token.Ref:
		o = object.NewRef(tk.Link, tk.Text)
	case token.IndexedRef:
		ref := object.NewIndexedRef(tk.Text, tk.Index)
		c.indexedRefs = append(c.indexedRefs, ref)
		o = ref
	case token.RefIndex:
		c.refIndexes[tk.Text] = tk.Link
		o = object.NewRefIndex(tk.Text, tk.Link)
	default:
		return nil, false
	}
	o.SetRange(tk.Range)
	return o, true
}
