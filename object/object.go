// Package object implements the jotdown document tree: leaf content,
// containers with strict containment rules, deep cloning, and lossless JSON
// and source-text serialization.
package object

import (
	"errors"
	"fmt"

	"github.com/jotdown-lang/jotdown/token"
)

// ErrObject is the sentinel error for containment and invariant violations.
var ErrObject = errors.New("object error")

// Type identifies a document tree node variant.
type Type int

const (
	TypeNone Type = iota
	TypeAnchor
	TypeCode
	TypeCodeBlock
	TypeDocument
	TypeFrontMatter
	TypeHashtag
	TypeIndexedRef
	TypeLineBreak
	TypeOrderedList
	TypeOrderedListItem
	TypeRef
	TypeRefIndex
	TypeSection
	TypeText
	TypeTextContent
	TypeUnorderedList
	TypeUnorderedListItem
)

var typeNames = map[Type]string{
	TypeNone:              "NONE",
	TypeAnchor:            "ANCHOR",
	TypeCode:              "CODE",
	TypeCodeBlock:         "CODE_BLOCK",
	TypeDocument:          "DOCUMENT",
	TypeFrontMatter:       "FRONT_MATTER",
	TypeHashtag:           "HASHTAG",
	TypeIndexedRef:        "INDEXED_REF",
	TypeLineBreak:         "LINE_BREAK",
	TypeOrderedList:       "ORDERED_LIST",
	TypeOrderedListItem:   "ORDERED_LIST_ITEM",
	TypeRef:               "REF",
	TypeRefIndex:          "REF_INDEX",
	TypeSection:           "SECTION",
	TypeText:              "TEXT",
	TypeTextContent:       "TEXT_CONTENT",
	TypeUnorderedList:     "UNORDERED_LIST",
	TypeUnorderedListItem: "UNORDERED_LIST_ITEM",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Object is a node in the document tree. Concrete implementations live in
// this package only; the unexported setParent method seals the interface.
type Object interface {
	Type() Type
	Range() token.Range
	SetRange(token.Range)

	// Parent returns the container currently holding the object, or nil
	// for the root and for detached objects.
	Parent() Container

	// Clone returns a deep, parent-less copy. Ranges are preserved.
	Clone() Object

	setParent(Container)
}

// base carries the fields shared by every object variant.
type base struct {
	rng    token.Range
	parent Container
}

func newBase() base {
	return base{rng: token.NowhereRange}
}

func (b *base) Range() token.Range {
	return b.rng
}

func (b *base) SetRange(r token.Range) {
	b.rng = r
}

func (b *base) Parent() Container {
	return b.parent
}

func (b *base) setParent(c Container) {
	b.parent = c
}

// Config carries rendering options, threaded explicitly through Jotdown.
type Config struct {
	// ListIndent is the number of spaces one list nesting level adds.
	ListIndent int
}

// DefaultConfig returns the standard rendering configuration.
func DefaultConfig() Config {
	return Config{ListIndent: 2}
}

// LabelOf returns the label of o: the header of a Section or the inline text
// of a list item. It returns nil for every other variant.
func LabelOf(o Object) *TextContent {
	switch v := o.(type) {
	case *Section:
		return v.Header()
	case ListItem:
		return v.Label()
	default:
		return nil
	}
}
