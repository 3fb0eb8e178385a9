package object

// Section is a header-introduced region of a document. Its header is a
// label, not a regular child; contents hold text blocks, lists, code blocks,
// line breaks and deeper sections. A child section's level must be strictly
// greater than its parent's. Level 0 marks the synthetic section that wraps
// content preceding the first header.
type Section struct {
	container
	level  int
	header *TextContent
}

// NewSection creates a section of the given header level with an empty
// header.
func NewSection(level int) *Section {
	s := &Section{
		container: container{base: newBase()},
		level:     level,
	}
	s.SetHeader(NewTextContent())
	return s
}

func (s *Section) Type() Type { return TypeSection }
func (s *Section) Level() int { return s.level }

// Header returns the section's label text.
func (s *Section) Header() *TextContent {
	return s.header
}

// SetHeader replaces the section's label text, taking ownership of header.
func (s *Section) SetHeader(header *TextContent) {
	if header == s.header {
		return
	}
	if s.header != nil {
		s.header.setParent(nil)
	}
	if header != nil {
		detach(header)
		header.setParent(s)
	}
	s.header = header
}

func (s *Section) Add(o Object) error {
	return add(s, &s.container, o)
}

func (s *Section) InsertBefore(pivot, o Object) error {
	return insertAt(s, &s.container, pivot, o, false)
}

func (s *Section) InsertAfter(pivot, o Object) error {
	return insertAt(s, &s.container, pivot, o, true)
}

func (s *Section) Remove(o Object) error {
	return remove(s, &s.container, o)
}

func (s *Section) Clear() {
	clearChildren(&s.container)
}

func (s *Section) ShiftUp(o Object) error {
	return shift(s, &s.container, o, true)
}

func (s *Section) ShiftDown(o Object) error {
	return shift(s, &s.container, o, false)
}

func (s *Section) Clone() Object {
	c := NewSection(s.level)
	c.rng = s.rng
	if s.header != nil {
		c.SetHeader(s.header.Clone().(*TextContent))
	}
	cloneChildren(c, &c.container, s.children)
	return c
}
