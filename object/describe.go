package object

import (
	"fmt"
)

// describe builds the debug form shared by every variant's String method,
// mirroring the token debug form: <Object:KIND detail>.
func describe(o Object, detail string) string {
	if detail == "" {
		return fmt.Sprintf("<Object:%s>", o.Type())
	}
	return fmt.Sprintf("<Object:%s %s>", o.Type(), detail)
}

func (t *Text) String() string {
	return describe(t, fmt.Sprintf("%q", t.text))
}

func (h *Hashtag) String() string {
	return describe(h, fmt.Sprintf("%q", h.tag))
}

func (a *Anchor) String() string {
	return describe(a, fmt.Sprintf("%q", a.name))
}

func (c *Code) String() string {
	return describe(c, fmt.Sprintf("%q", c.code))
}

func (r *Ref) String() string {
	if r.text != r.link {
		return describe(r, fmt.Sprintf("link=%q text=%q", r.link, r.text))
	}
	return describe(r, fmt.Sprintf("link=%q", r.link))
}

func (r *IndexedRef) String() string {
	if r.resolvedLink != "" {
		return describe(r, fmt.Sprintf("text=%q index=%q link=%q", r.text, r.indexName, r.resolvedLink))
	}
	return describe(r, fmt.Sprintf("text=%q index=%q", r.text, r.indexName))
}

func (r *RefIndex) String() string {
	return describe(r, fmt.Sprintf("name=%q link=%q", r.name, r.link))
}

func (l *LineBreak) String() string {
	return describe(l, "")
}

func (c *CodeBlock) String() string {
	return describe(c, fmt.Sprintf("language=%q", c.language))
}

func (f *FrontMatter) String() string {
	return describe(f, fmt.Sprintf("language=%q", f.language))
}

func (t *TextContent) String() string {
	return describe(t, fmt.Sprintf("children=%d", len(t.children)))
}

func (s *Section) String() string {
	return describe(s, fmt.Sprintf("level=%d children=%d", s.level, len(s.children)))
}

func (l *OrderedList) String() string {
	return describe(l, fmt.Sprintf("children=%d", len(l.children)))
}

func (l *UnorderedList) String() string {
	return describe(l, fmt.Sprintf("children=%d", len(l.children)))
}

func (li *OrderedListItem) String() string {
	return describe(li, fmt.Sprintf("ordinal=%q children=%d", li.ordinal, len(li.children)))
}

func (li *UnorderedListItem) String() string {
	return describe(li, fmt.Sprintf("children=%d", len(li.children)))
}

func (d *Document) String() string {
	return describe(d, fmt.Sprintf("children=%d", len(d.children)))
}
