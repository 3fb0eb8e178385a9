package object

// List is implemented by OrderedList and UnorderedList. A list's level is
// structural: the outermost list of a section is level 1, a list nested
// under one of its items is level 2, and so on.
type List interface {
	Container
	Level() int

	listMarker()
}

// ListItem is implemented by OrderedListItem and UnorderedListItem. An
// item's label is its inline text, distinct from its contents, which hold
// only nested lists. A non-empty status marks the item as a checklist entry.
type ListItem interface {
	Container
	Level() int
	Status() string
	SetStatus(status string)
	Label() *TextContent
	SetLabel(label *TextContent)

	clearLabel()
}

// countListAncestors walks the parent chain counting enclosing lists.
func countListAncestors(o Object) int {
	n := 0
	for p := o.Parent(); p != nil; p = p.Parent() {
		if _, ok := p.(List); ok {
			n++
		}
	}
	return n
}

// listItem carries the fields shared by both item variants.
type listItem struct {
	container
	status string
	label  *TextContent
}

func (li *listItem) Status() string {
	return li.status
}

func (li *listItem) SetStatus(status string) {
	li.status = status
}

func (li *listItem) Label() *TextContent {
	return li.label
}

func (li *listItem) clearLabel() {
	li.label = nil
}

func setLabel(owner ListItem, li *listItem, label *TextContent) {
	if label == li.label {
		return
	}
	if li.label != nil {
		li.label.setParent(nil)
	}
	if label != nil {
		detach(label)
		label.setParent(owner)
	}
	li.label = label
}

// OrderedList holds ordered list items.
type OrderedList struct {
	container
}

// NewOrderedList creates an empty ordered list.
func NewOrderedList() *OrderedList {
	return &OrderedList{container: container{base: newBase()}}
}

func (l *OrderedList) Type() Type  { return TypeOrderedList }
func (l *OrderedList) Level() int  { return countListAncestors(l) + 1 }
func (l *OrderedList) listMarker() {}

func (l *OrderedList) Add(o Object) error {
	return add(l, &l.container, o)
}

func (l *OrderedList) InsertBefore(pivot, o Object) error {
	return insertAt(l, &l.container, pivot, o, false)
}

func (l *OrderedList) InsertAfter(pivot, o Object) error {
	return insertAt(l, &l.container, pivot, o, true)
}

func (l *OrderedList) Remove(o Object) error {
	return remove(l, &l.container, o)
}

func (l *OrderedList) Clear() {
	clearChildren(&l.container)
}

func (l *OrderedList) ShiftUp(o Object) error {
	return shift(l, &l.container, o, true)
}

func (l *OrderedList) ShiftDown(o Object) error {
	return shift(l, &l.container, o, false)
}

func (l *OrderedList) Clone() Object {
	c := NewOrderedList()
	c.rng = l.rng
	cloneChildren(c, &c.container, l.children)
	return c
}

// UnorderedList holds unordered list items.
type UnorderedList struct {
	container
}

// NewUnorderedList creates an empty unordered list.
func NewUnorderedList() *UnorderedList {
	return &UnorderedList{container: container{base: newBase()}}
}

func (l *UnorderedList) Type() Type  { return TypeUnorderedList }
func (l *UnorderedList) Level() int  { return countListAncestors(l) + 1 }
func (l *UnorderedList) listMarker() {}

func (l *UnorderedList) Add(o Object) error {
	return add(l, &l.container, o)
}

func (l *UnorderedList) InsertBefore(pivot, o Object) error {
	return insertAt(l, &l.container, pivot, o, false)
}

func (l *UnorderedList) InsertAfter(pivot, o Object) error {
	return insertAt(l, &l.container, pivot, o, true)
}

func (l *UnorderedList) Remove(o Object) error {
	return remove(l, &l.container, o)
}

func (l *UnorderedList) Clear() {
	clearChildren(&l.container)
}

func (l *UnorderedList) ShiftUp(o Object) error {
	return shift(l, &l.container, o, true)
}

func (l *UnorderedList) ShiftDown(o Object) error {
	return shift(l, &l.container, o, false)
}

func (l *UnorderedList) Clone() Object {
	c := NewUnorderedList()
	c.rng = l.rng
	cloneChildren(c, &c.container, l.children)
	return c
}

// OrderedListItem is one N.-crowned list entry.
type OrderedListItem struct {
	listItem
	ordinal string
}

// NewOrderedListItem creates an ordered list item with the given ordinal
// (rendered as "ordinal." in source text) and an empty label.
func NewOrderedListItem(ordinal string) *OrderedListItem {
	li := &OrderedListItem{
		listItem: listItem{container: container{base: newBase()}},
		ordinal:  ordinal,
	}
	li.SetLabel(NewTextContent())
	return li
}

func (li *OrderedListItem) Type() Type      { return TypeOrderedListItem }
func (li *OrderedListItem) Ordinal() string { return li.ordinal }
func (li *OrderedListItem) Level() int      { return countListAncestors(li) }

// SetLabel replaces the item's inline text, taking ownership of label.
func (li *OrderedListItem) SetLabel(label *TextContent) {
	setLabel(li, &li.listItem, label)
}

func (li *OrderedListItem) Add(o Object) error {
	return add(li, &li.container, o)
}

func (li *OrderedListItem) InsertBefore(pivot, o Object) error {
	return insertAt(li, &li.container, pivot, o, false)
}

func (li *OrderedListItem) InsertAfter(pivot, o Object) error {
	return insertAt(li, &li.container, pivot, o, true)
}

func (li *OrderedListItem) Remove(o Object) error {
	return remove(li, &li.container, o)
}

func (li *OrderedListItem) Clear() {
	clearChildren(&li.container)
}

func (li *OrderedListItem) ShiftUp(o Object) error {
	return shift(li, &li.container, o, true)
}

func (li *OrderedListItem) ShiftDown(o Object) error {
	return shift(li, &li.container, o, false)
}

func (li *OrderedListItem) Clone() Object {
	c := NewOrderedListItem(li.ordinal)
	c.rng = li.rng
	c.status = li.status
	if li.label != nil {
		c.SetLabel(li.label.Clone().(*TextContent))
	}
	cloneChildren(c, &c.container, li.children)
	return c
}

// UnorderedListItem is one --crowned list entry.
type UnorderedListItem struct {
	listItem
}

// NewUnorderedListItem creates an unordered list item with an empty label.
func NewUnorderedListItem() *UnorderedListItem {
	li := &UnorderedListItem{
		listItem: listItem{container: container{base: newBase()}},
	}
	li.SetLabel(NewTextContent())
	return li
}

func (li *UnorderedListItem) Type() Type { return TypeUnorderedListItem }
func (li *UnorderedListItem) Level() int { return countListAncestors(li) }

// SetLabel replaces the item's inline text, taking ownership of label.
func (li *UnorderedListItem) SetLabel(label *TextContent) {
	setLabel(li, &li.listItem, label)
}

func (li *UnorderedListItem) Add(o Object) error {
	return add(li, &li.container, o)
}

func (li *UnorderedListItem) InsertBefore(pivot, o Object) error {
	return insertAt(li, &li.container, pivot, o, false)
}

func (li *UnorderedListItem) InsertAfter(pivot, o Object) error {
	return insertAt(li, &li.container, pivot, o, true)
}

func (li *UnorderedListItem) Remove(o Object) error {
	return remove(li, &li.container, o)
}

func (li *UnorderedListItem) Clear() {
	clearChildren(&li.container)
}

func (li *UnorderedListItem) ShiftUp(o Object) error {
	return shift(li, &li.container, o, true)
}

func (li *UnorderedListItem) ShiftDown(o Object) error {
	return shift(li, &li.container, o, false)
}

func (li *UnorderedListItem) Clone() Object {
	c := NewUnorderedListItem()
	c.rng = li.rng
	c.status = li.status
	if li.label != nil {
		c.SetLabel(li.label.Clone().(*TextContent))
	}
	cloneChildren(c, &c.container, li.children)
	return c
}
