package object

// TextContent is ordered inline content: text runs, hashtags, anchors, code
// spans and reference forms. It serves both as a regular section child and
// as the label slot of sections and list items.
type TextContent struct {
	container
}

// NewTextContent creates an empty inline content container.
func NewTextContent() *TextContent {
	return &TextContent{container: container{base: newBase()}}
}

func (t *TextContent) Type() Type { return TypeTextContent }

func (t *TextContent) Add(o Object) error {
	return add(t, &t.container, o)
}

func (t *TextContent) InsertBefore(pivot, o Object) error {
	return insertAt(t, &t.container, pivot, o, false)
}

func (t *TextContent) InsertAfter(pivot, o Object) error {
	return insertAt(t, &t.container, pivot, o, true)
}

func (t *TextContent) Remove(o Object) error {
	return remove(t, &t.container, o)
}

func (t *TextContent) Clear() {
	clearChildren(&t.container)
}

func (t *TextContent) ShiftUp(o Object) error {
	return shift(t, &t.container, o, true)
}

func (t *TextContent) ShiftDown(o Object) error {
	return shift(t, &t.container, o, false)
}

func (t *TextContent) Clone() Object {
	c := NewTextContent()
	c.rng = t.rng
	cloneChildren(c, &c.container, t.children)
	return c
}
