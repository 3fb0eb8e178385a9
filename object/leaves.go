package object

import yaml "github.com/goccy/go-yaml"

// Text is a run of plain text inside a TextContent.
type Text struct {
	base
	text string
}

// NewText creates a plain text run.
func NewText(text string) *Text {
	return &Text{base: newBase(), text: text}
}

func (t *Text) Type() Type   { return TypeText }
func (t *Text) Text() string { return t.text }

// SetText replaces the run's text.
func (t *Text) SetText(text string) {
	t.text = text
}

func (t *Text) Clone() Object {
	c := NewText(t.text)
	c.rng = t.rng
	return c
}

// Hashtag is an inline #tag.
type Hashtag struct {
	base
	tag string
}

// NewHashtag creates a hashtag with the given tag name (no leading '#').
func NewHashtag(tag string) *Hashtag {
	return &Hashtag{base: newBase(), tag: tag}
}

func (h *Hashtag) Type() Type  { return TypeHashtag }
func (h *Hashtag) Tag() string { return h.tag }

func (h *Hashtag) Clone() Object {
	c := NewHashtag(h.tag)
	c.rng = h.rng
	return c
}

// Anchor is an inline &name marker that references can point at.
type Anchor struct {
	base
	name string
}

// NewAnchor creates an anchor with the given name (no leading '&').
func NewAnchor(name string) *Anchor {
	return &Anchor{base: newBase(), name: name}
}

func (a *Anchor) Type() Type   { return TypeAnchor }
func (a *Anchor) Name() string { return a.name }

func (a *Anchor) Clone() Object {
	c := NewAnchor(a.name)
	c.rng = a.rng
	return c
}

// Code is an inline backtick code span.
type Code struct {
	base
	code string
}

// NewCode creates an inline code span.
func NewCode(code string) *Code {
	return &Code{base: newBase(), code: code}
}

func (c *Code) Type() Type   { return TypeCode }
func (c *Code) Code() string { return c.code }

func (c *Code) Clone() Object {
	cc := NewCode(c.code)
	cc.rng = c.rng
	return cc
}

// Ref is a direct reference: @link, <url>, [text](url) or [text].
type Ref struct {
	base
	link string
	text string
}

// NewRef creates a reference. An empty text defaults to the link itself.
func NewRef(link, text string) *Ref {
	if text == "" {
		text = link
	}
	return &Ref{base: newBase(), link: link, text: text}
}

func (r *Ref) Type() Type   { return TypeRef }
func (r *Ref) Link() string { return r.link }
func (r *Ref) Text() string { return r.text }

func (r *Ref) Clone() Object {
	c := NewRef(r.link, r.text)
	c.rng = r.rng
	return c
}

// IndexedRef is a [text][index] reference resolved against a RefIndex
// definition elsewhere in the document.
type IndexedRef struct {
	base
	text         string
	indexName    string
	resolvedLink string
}

// NewIndexedRef creates an indexed reference. The resolved link starts empty
// and is filled in by Resolve.
func NewIndexedRef(text, indexName string) *IndexedRef {
	return &IndexedRef{base: newBase(), text: text, indexName: indexName}
}

func (r *IndexedRef) Type() Type           { return TypeIndexedRef }
func (r *IndexedRef) Text() string         { return r.text }
func (r *IndexedRef) IndexName() string    { return r.indexName }
func (r *IndexedRef) ResolvedLink() string { return r.resolvedLink }

// Resolve records the link the index name resolved to.
func (r *IndexedRef) Resolve(link string) {
	r.resolvedLink = link
}

func (r *IndexedRef) Clone() Object {
	c := NewIndexedRef(r.text, r.indexName)
	c.resolvedLink = r.resolvedLink
	c.rng = r.rng
	return c
}

// RefIndex is a [name]: url link-index definition.
type RefIndex struct {
	base
	name string
	link string
}

// NewRefIndex creates a link-index definition.
func NewRefIndex(name, link string) *RefIndex {
	return &RefIndex{base: newBase(), name: name, link: link}
}

func (r *RefIndex) Type() Type   { return TypeRefIndex }
func (r *RefIndex) Name() string { return r.name }
func (r *RefIndex) Link() string { return r.link }

func (r *RefIndex) Clone() Object {
	c := NewRefIndex(r.name, r.link)
	c.rng = r.rng
	return c
}

// LineBreak is a blank line between content blocks.
type LineBreak struct {
	base
}

// NewLineBreak creates a blank line marker.
func NewLineBreak() *LineBreak {
	return &LineBreak{base: newBase()}
}

func (l *LineBreak) Type() Type { return TypeLineBreak }

func (l *LineBreak) Clone() Object {
	c := NewLineBreak()
	c.rng = l.rng
	return c
}

// CodeBlock is a fenced code block with an optional language spec.
type CodeBlock struct {
	base
	code     string
	language string
}

// NewCodeBlock creates a fenced code block.
func NewCodeBlock(code, language string) *CodeBlock {
	return &CodeBlock{base: newBase(), code: code, language: language}
}

func (c *CodeBlock) Type() Type       { return TypeCodeBlock }
func (c *CodeBlock) Code() string     { return c.code }
func (c *CodeBlock) Language() string { return c.language }

func (c *CodeBlock) Clone() Object {
	cc := NewCodeBlock(c.code, c.language)
	cc.rng = c.rng
	return cc
}

// FrontMatter is the optional "---" fenced block opening a document.
type FrontMatter struct {
	base
	code     string
	language string
}

// NewFrontMatter creates a front matter block.
func NewFrontMatter(code, language string) *FrontMatter {
	return &FrontMatter{base: newBase(), code: code, language: language}
}

func (f *FrontMatter) Type() Type       { return TypeFrontMatter }
func (f *FrontMatter) Code() string     { return f.code }
func (f *FrontMatter) Language() string { return f.language }

// Decode unmarshals the front matter body as YAML into v.
func (f *FrontMatter) Decode(v any) error {
	return yaml.Unmarshal([]byte(f.code), v)
}

func (f *FrontMatter) Clone() Object {
	c := NewFrontMatter(f.code, f.language)
	c.rng = f.rng
	return c
}
