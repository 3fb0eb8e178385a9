package object

// Document is the root of a parsed tree: an optional front matter block
// followed by sections.
type Document struct {
	container
	frontMatter *FrontMatter
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{container: container{base: newBase()}}
}

func (d *Document) Type() Type { return TypeDocument }

// FrontMatter returns the document's front matter, or nil.
func (d *Document) FrontMatter() *FrontMatter {
	return d.frontMatter
}

// SetFrontMatter replaces the document's front matter; nil clears it.
func (d *Document) SetFrontMatter(fm *FrontMatter) {
	if fm == d.frontMatter {
		return
	}
	if d.frontMatter != nil {
		d.frontMatter.setParent(nil)
	}
	if fm != nil {
		detach(fm)
		fm.setParent(d)
	}
	d.frontMatter = fm
}

func (d *Document) Add(o Object) error {
	return add(d, &d.container, o)
}

func (d *Document) InsertBefore(pivot, o Object) error {
	return insertAt(d, &d.container, pivot, o, false)
}

func (d *Document) InsertAfter(pivot, o Object) error {
	return insertAt(d, &d.container, pivot, o, true)
}

func (d *Document) Remove(o Object) error {
	return remove(d, &d.container, o)
}

func (d *Document) Clear() {
	clearChildren(&d.container)
}

func (d *Document) ShiftUp(o Object) error {
	return shift(d, &d.container, o, true)
}

func (d *Document) ShiftDown(o Object) error {
	return shift(d, &d.container, o, false)
}

func (d *Document) Clone() Object {
	c := NewDocument()
	c.rng = d.rng
	if d.frontMatter != nil {
		c.SetFrontMatter(d.frontMatter.Clone().(*FrontMatter))
	}
	cloneChildren(c, &c.container, d.children)
	return c
}
