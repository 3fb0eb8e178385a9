package compiler

import (
	"fmt"
	"strings"

	"github.com/jotdown-lang/jotdown/internal/automaton"
	"github.com/jotdown-lang/jotdown/object"
	"github.com/jotdown-lang/jotdown/token"
)

type machine = automaton.Machine[*context]

func extend(o object.Object, r token.Range) {
	o.SetRange(o.Range().Union(r))
}

// addInline appends an inline leaf to tc, coalescing consecutive text runs
// so the tree does not depend on where the lexer split a line.
func addInline(tc *object.TextContent, leaf object.Object) error {
	if t, ok := leaf.(*object.Text); ok {
		kids := tc.Contents()
		if len(kids) > 0 {
			if prev, ok := kids[len(kids)-1].(*object.Text); ok {
				prev.SetText(prev.Text() + t.Text())
				extend(prev, t.Range())
				return nil
			}
		}
	}
	return tc.Add(leaf)
}

// finishInline drops the newline that closed the block's final line; line
// endings between the block's lines stay in the text.
func finishInline(tc *object.TextContent) {
	if tc == nil {
		return
	}
	kids := tc.Contents()
	if len(kids) == 0 {
		return
	}
	t, ok := kids[len(kids)-1].(*object.Text)
	if !ok {
		return
	}
	trimmed := strings.TrimSuffix(t.Text(), "\n")
	if trimmed == "" {
		_ = tc.Remove(t)
		return
	}
	t.SetText(trimmed)
}

// stateCompile is the bottom of the stack: it accepts front matter, opens
// top level sections, and finishes the document at the End token.
type stateCompile struct{}

func (s *stateCompile) Run(m *machine, ctx *context) error {
	tk, err := ctx.peek()
	if err != nil {
		return err
	}

	switch tk.Kind {
	case token.End:
		ctx.resolveRefs()
		if fm := ctx.doc.FrontMatter(); fm != nil {
			extend(ctx.doc, fm.Range())
		}
		for _, o := range ctx.doc.Contents() {
			extend(ctx.doc, o.Range())
		}
		m.Terminate()

	case token.Error:
		return fmt.Errorf("%w: %s (at %s)", ErrCompile, tk.Text, tk.Range.Begin)

	case token.EmbeddedDocument:
		if tk.Fence == "---" && ctx.doc.FrontMatter() == nil && len(ctx.doc.Contents()) == 0 {
			ctx.tokens.Advance(1)
			fm := object.NewFrontMatter(tk.Text, tk.Language)
			fm.SetRange(tk.Range)
			ctx.doc.SetFrontMatter(fm)
			return nil
		}
		return s.openSection(m, ctx, 0)

	case token.HeaderStart:
		ctx.tokens.Advance(1)
		sec := object.NewSection(tk.Level)
		if err := ctx.doc.Add(sec); err != nil {
			return err
		}
		sec.SetRange(tk.Range)
		m.Push(&stateSection{section: sec})
		m.Push(&stateSectionHeader{section: sec})

	case token.HeaderEnd, token.ListItemEnd, token.Status:
		return unexpectedToken(tk)

	default:
		// Content before any header lives in a synthetic level zero
		// section.
		return s.openSection(m, ctx, 0)
	}
	return nil
}

func (s *stateCompile) openSection(m *machine, ctx *context, level int) error {
	sec := object.NewSection(level)
	if err := ctx.doc.Add(sec); err != nil {
		return err
	}
	m.Push(&stateSection{section: sec})
	return nil
}

// stateSectionHeader collects the inline tokens of a header line, up to
// HeaderEnd, into the section's header text.
type stateSectionHeader struct {
	section *object.Section
	header  *object.TextContent
}

func (s *stateSectionHeader) Run(m *machine, ctx *context) error {
	tk, err := ctx.peek()
	if err != nil {
		return err
	}

	if tk.Kind == token.HeaderEnd {
		ctx.tokens.Advance(1)
		if s.header != nil {
			s.section.SetHeader(s.header)
		}
		extend(s.section, tk.Range)
		m.Pop()
		return nil
	}

	if tk.Kind == token.Error {
		return fmt.Errorf("%w: %s (at %s)", ErrCompile, tk.Text, tk.Range.Begin)
	}
	leaf, ok := ctx.inlineObject(tk)
	if !ok {
		return unexpectedToken(tk)
	}
	ctx.tokens.Advance(1)
	if s.header == nil {
		s.header = object.NewTextContent()
	}
	if err := addInline(s.header, leaf); err != nil {
		return err
	}
	extend(s.header, tk.Range)
	extend(s.section, tk.Range)
	return nil
}

// stateSection compiles a section's body. It pops, without consuming, on a
// header that does not nest below it; the synthetic level zero section pops
// on any header.
type stateSection struct {
	section *object.Section
}

func (s *stateSection) Run(m *machine, ctx *context) error {
	tk, err := ctx.peek()
	if err != nil {
		return err
	}

	switch tk.Kind {
	case token.End:
		m.Pop()

	case token.HeaderStart:
		if tk.Level <= s.section.Level() || s.section.Level() == 0 {
			m.Pop()
			return nil
		}
		ctx.tokens.Advance(1)
		child := object.NewSection(tk.Level)
		if err := s.section.Add(child); err != nil {
			return err
		}
		child.SetRange(tk.Range)
		m.Push(&stateSection{section: child})
		m.Push(&stateSectionHeader{section: child})

	case token.Newline:
		ctx.tokens.Advance(1)
		br := object.NewLineBreak()
		br.SetRange(tk.Range)
		if err := s.section.Add(br); err != nil {
			return err
		}
		extend(s.section, tk.Range)

	case token.EmbeddedDocument:
		ctx.tokens.Advance(1)
		cb := object.NewCodeBlock(tk.Text, tk.Language)
		cb.SetRange(tk.Range)
		if err := s.section.Add(cb); err != nil {
			return err
		}
		extend(s.section, tk.Range)

	case token.UnorderedListItem, token.OrderedListItem:
		m.Push(&stateList{container: s.section, owner: s.section})

	case token.Text, token.Hashtag, token.Anchor, token.Code,
		token.Ref, token.IndexedRef, token.RefIndex:
		m.Push(&stateTextContent{container: s.section, owner: s.section})

	case token.Error:
		return fmt.Errorf("%w: %s (at %s)", ErrCompile, tk.Text, tk.Range.Begin)

	default:
		return unexpectedToken(tk)
	}
	return nil
}

// stateTextContent collects consecutive inline tokens into one text content
// block, popping at the first token that is not inline.
type stateTextContent struct {
	container object.Container
	owner     object.Object
	tc        *object.TextContent
}

func (s *stateTextContent) Run(m *machine, ctx *context) error {
	tk, err := ctx.peek()
	if err != nil {
		return err
	}

	if tk.Kind == token.Error {
		return fmt.Errorf("%w: %s (at %s)", ErrCompile, tk.Text, tk.Range.Begin)
	}
	leaf, ok := ctx.inlineObject(tk)
	if !ok {
		finishInline(s.tc)
		m.Pop()
		return nil
	}
	ctx.tokens.Advance(1)
	if s.tc == nil {
		s.tc = object.NewTextContent()
		if err := s.container.Add(s.tc); err != nil {
			return err
		}
	}
	if err := addInline(s.tc, leaf); err != nil {
		return err
	}
	extend(s.tc, tk.Range)
	extend(s.owner, tk.Range)
	return nil
}

// stateList compiles one list: items at a common marker column, with deeper
// columns nesting a child list under the last item. The marker column only
// matters relative to the enclosing list; the object model derives levels
// from nesting depth.
type stateList struct {
	container object.Container
	owner     object.Object
	list      object.List
	level     int
	kind      token.Kind
	lastItem  object.ListItem
}

func (s *stateList) Run(m *machine, ctx *context) error {
	tk, err := ctx.peek()
	if err != nil {
		return err
	}

	switch tk.Kind {
	case token.UnorderedListItem, token.OrderedListItem:
		if s.list == nil {
			return s.open(m, ctx, tk)
		}
		if s.lastItem != nil {
			extend(s.list, s.lastItem.Range())
			extend(s.owner, s.list.Range())
		}
		switch {
		case tk.Level < s.level:
			m.Pop()
		case tk.Level > s.level:
			if s.lastItem == nil {
				return unexpectedToken(tk)
			}
			m.Push(&stateList{container: s.lastItem, owner: s.lastItem})
		default:
			if tk.Kind != s.kind {
				return fmt.Errorf("%w: ordered and unordered items mixed in one list (at %s)", ErrCompile, tk.Range.Begin)
			}
			return s.item(m, ctx, tk)
		}

	case token.Error:
		return fmt.Errorf("%w: %s (at %s)", ErrCompile, tk.Text, tk.Range.Begin)

	default:
		if s.lastItem != nil {
			extend(s.list, s.lastItem.Range())
			extend(s.owner, s.list.Range())
		}
		m.Pop()
	}
	return nil
}

func (s *stateList) open(m *machine, ctx *context, tk token.Token) error {
	s.level = tk.Level
	s.kind = tk.Kind
	if tk.Kind == token.OrderedListItem {
		s.list = object.NewOrderedList()
	} else {
		s.list = object.NewUnorderedList()
	}
	if err := s.container.Add(s.list); err != nil {
		return err
	}
	s.list.SetRange(tk.Range)
	return s.item(m, ctx, tk)
}

func (s *stateList) item(m *machine, ctx *context, tk token.Token) error {
	ctx.tokens.Advance(1)
	var item object.ListItem
	if tk.Kind == token.OrderedListItem {
		item = object.NewOrderedListItem(tk.Ordinal)
	} else {
		item = object.NewUnorderedListItem()
	}
	if err := s.list.Add(item); err != nil {
		return err
	}
	item.SetRange(tk.Range)
	s.lastItem = item

	if next, err := ctx.peek(); err != nil {
		return err
	} else if next.Kind == token.Status {
		ctx.tokens.Advance(1)
		item.SetStatus(next.Text)
		extend(item, next.Range)
	}
	m.Push(&stateListItemLabel{item: item})
	return nil
}

// stateListItemLabel collects the item's label text up to the ListItemEnd
// token.
type stateListItemLabel struct {
	item  object.ListItem
	label *object.TextContent
}

func (s *stateListItemLabel) Run(m *machine, ctx *context) error {
	tk, err := ctx.peek()
	if err != nil {
		return err
	}

	if tk.Kind == token.ListItemEnd {
		ctx.tokens.Advance(1)
		finishInline(s.label)
		if s.label != nil {
			s.item.SetLabel(s.label)
		}
		extend(s.item, tk.Range)
		m.Pop()
		return nil
	}

	if tk.Kind == token.Error {
		return fmt.Errorf("%w: %s (at %s)", ErrCompile, tk.Text, tk.Range.Begin)
	}
	leaf, ok := ctx.inlineObject(tk)
	if !ok {
		return unexpectedToken(tk)
	}
	ctx.tokens.Advance(1)
	if s.label == nil {
		s.label = object.NewTextContent()
	}
	if err := addInline(s.label, leaf); err != nil {
		return err
	}
	extend(s.label, tk.Range)
	extend(s.item, tk.Range)
	return nil
}
