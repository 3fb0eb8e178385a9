package object

import "fmt"

// Container is an object variant owning an ordered list of children. Every
// mutation validates the containment whitelist and maintains parent
// back-references; violations return an error wrapping ErrObject and leave
// the container unmodified.
type Container interface {
	Object

	// Contents returns the owned children in order. The returned slice
	// must not be mutated directly.
	Contents() []Object

	Add(o Object) error
	InsertBefore(pivot, o Object) error
	InsertAfter(pivot, o Object) error
	Remove(o Object) error
	Clear()
	ShiftUp(o Object) error
	ShiftDown(o Object) error
}

// containment whitelists children variants per container variant.
var containment = map[Type]map[Type]bool{
	TypeTextContent: {
		TypeAnchor:     true,
		TypeCode:       true,
		TypeHashtag:    true,
		TypeIndexedRef: true,
		TypeRef:        true,
		TypeRefIndex:   true,
		TypeText:       true,
	},
	TypeSection: {
		TypeCodeBlock:     true,
		TypeLineBreak:     true,
		TypeOrderedList:   true,
		TypeSection:       true,
		TypeTextContent:   true,
		TypeUnorderedList: true,
	},
	TypeOrderedList: {
		TypeOrderedListItem: true,
	},
	TypeUnorderedList: {
		TypeUnorderedListItem: true,
	},
	TypeOrderedListItem: {
		TypeOrderedList:   true,
		TypeUnorderedList: true,
	},
	TypeUnorderedListItem: {
		TypeOrderedList:   true,
		TypeUnorderedList: true,
	},
	TypeDocument: {
		TypeSection: true,
	},
}

// container is the shared implementation embedded by every concrete
// container type. The mutation entry points live on the concrete types so
// that containment checks can see the owner.
type container struct {
	base
	children []Object
}

func (c *container) Contents() []Object {
	return c.children
}

func checkContainment(owner Container, o Object) error {
	if !containment[owner.Type()][o.Type()] {
		return fmt.Errorf("%w: %s cannot contain %s", ErrObject, owner.Type(), o.Type())
	}
	if owner.Type() == TypeSection && o.Type() == TypeSection {
		parent := owner.(*Section)
		child := o.(*Section)
		if parent.Level() >= child.Level() {
			return fmt.Errorf("%w: section of level %d cannot contain section of level %d",
				ErrObject, parent.Level(), child.Level())
		}
	}
	return nil
}

// detach removes o from whatever currently owns it, including label slots.
func detach(o Object) {
	p := o.Parent()
	if p == nil {
		return
	}
	if err := p.Remove(o); err == nil {
		return
	}
	// Not a regular child; o may be held as a label.
	switch holder := p.(type) {
	case *Section:
		if Object(holder.header) == o {
			holder.header = nil
		}
	case ListItem:
		if Object(holder.Label()) == o {
			holder.clearLabel()
		}
	case *Document:
		if Object(holder.frontMatter) == o {
			holder.frontMatter = nil
		}
	}
	o.setParent(nil)
}

func indexOf(children []Object, o Object) int {
	for i, child := range children {
		if child == o {
			return i
		}
	}
	return -1
}

func add(owner Container, c *container, o Object) error {
	if err := checkContainment(owner, o); err != nil {
		return err
	}
	detach(o)
	o.setParent(owner)
	c.children = append(c.children, o)
	return nil
}

func insertAt(owner Container, c *container, pivot, o Object, after bool) error {
	if err := checkContainment(owner, o); err != nil {
		return err
	}
	if pivot == o {
		return fmt.Errorf("%w: cannot insert %s relative to itself", ErrObject, o.Type())
	}
	if indexOf(c.children, pivot) < 0 {
		return fmt.Errorf("%w: pivot object not found in %s", ErrObject, owner.Type())
	}
	// Detaching o can shift the pivot's position, so locate it after.
	detach(o)
	i := indexOf(c.children, pivot)
	if after {
		i++
	}
	o.setParent(owner)
	c.children = append(c.children, nil)
	copy(c.children[i+1:], c.children[i:])
	c.children[i] = o
	return nil
}

func remove(owner Container, c *container, o Object) error {
	i := indexOf(c.children, o)
	if i < 0 {
		return fmt.Errorf("%w: object not found in %s", ErrObject, owner.Type())
	}
	c.children = append(c.children[:i], c.children[i+1:]...)
	if o.Parent() == owner {
		o.setParent(nil)
	}
	return nil
}

func clearChildren(c *container) {
	for _, child := range c.children {
		child.setParent(nil)
	}
	c.children = nil
}

func shift(owner Container, c *container, o Object, up bool) error {
	i := indexOf(c.children, o)
	if i < 0 {
		return fmt.Errorf("%w: object not found in %s", ErrObject, owner.Type())
	}
	j := i + 1
	if up {
		j = i - 1
	}
	if j < 0 || j >= len(c.children) {
		return fmt.Errorf("%w: cannot shift object past the %s boundary", ErrObject, owner.Type())
	}
	c.children[i], c.children[j] = c.children[j], c.children[i]
	return nil
}

func cloneChildren(owner Container, c *container, children []Object) {
	for _, child := range children {
		cc := child.Clone()
		cc.setParent(owner)
		c.children = append(c.children, cc)
	}
}
