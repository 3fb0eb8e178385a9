// Package token defines the lexical tokens of the jotdown format and the
// source locations attached to tokens and document objects.
package token

import "fmt"

// Location is a single point in a source file.
type Location struct {
	Filename string `json:"filename,omitempty"`
	Line     int    `json:"line"`
	Col      int    `json:"col"`
}

// Nowhere is the zero location used for objects built programmatically.
var Nowhere = Location{Filename: "<none>", Line: -1, Col: -1}

// IsNowhere reports whether the location refers to no source position.
func (l Location) IsNowhere() bool {
	return l.Line < 0
}

func (l Location) String() string {
	return fmt.Sprintf("%s line %d col %d", l.Filename, l.Line, l.Col)
}

// Range is a begin/end location pair spanning a token or object.
type Range struct {
	Begin Location `json:"begin"`
	End   Location `json:"end"`
}

// NowhereRange is the zero range used for objects built programmatically.
var NowhereRange = Range{Begin: Nowhere, End: Nowhere}

// IsNowhere reports whether the range refers to no source position.
func (r Range) IsNowhere() bool {
	return r.Begin.IsNowhere()
}

// Union returns the smallest range covering both r and other. A nowhere
// range never contributes to the result.
func (r Range) Union(other Range) Range {
	if r.IsNowhere() {
		return other
	}
	if other.IsNowhere() {
		return r
	}
	result := r
	if other.Begin.Line < r.Begin.Line ||
		(other.Begin.Line == r.Begin.Line && other.Begin.Col < r.Begin.Col) {
		result.Begin = other.Begin
	}
	if other.End.Line > r.End.Line ||
		(other.End.Line == r.End.Line && other.End.Col > r.End.Col) {
		result.End = other.End
	}
	return result
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", r.Begin.Line, r.Begin.Col, r.End.Line, r.End.Col)
}

// Kind classifies lexical tokens.
type Kind int

const (
	None Kind = iota
	Text
	Ref
	IndexedRef
	RefIndex
	Anchor
	Hashtag
	HeaderStart
	HeaderEnd
	UnorderedListItem
	OrderedListItem
	ListItemEnd
	Code
	EmbeddedDocument
	Newline
	Status
	End
	Error
)

var kindNames = map[Kind]string{
	None:              "NONE",
	Text:              "TEXT",
	Ref:               "REF",
	IndexedRef:        "INDEXED_REF",
	RefIndex:          "REF_INDEX",
	Anchor:            "ANCHOR",
	Hashtag:           "HASHTAG",
	HeaderStart:       "HEADER_START",
	HeaderEnd:         "HEADER_END",
	UnorderedListItem: "UL_ITEM",
	OrderedListItem:   "OL_ITEM",
	ListItemEnd:       "LIST_ITEM_END",
	Code:              "CODE",
	EmbeddedDocument:  "EMBEDDED_DOCUMENT",
	Newline:           "NEWLINE",
	Status:            "STATUS",
	End:               "END",
	Error:             "ERROR",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one lexical unit. Only the fields relevant to the kind are set:
// Text carries inline text, hashtag names, anchor names, code span contents,
// status values and error messages; Link and Index carry the reference forms;
// Level carries header and list marker levels; Ordinal the ordered list
// ordinal; Language and Fence the embedded document header.
type Token struct {
	Kind     Kind
	Text     string
	Link     string
	Index    string
	Level    int
	Ordinal  string
	Language string
	Fence    string
	Range    Range
}

func (t Token) String() string {
	switch t.Kind {
	case HeaderStart, UnorderedListItem:
		return fmt.Sprintf("<Token:%s level=%d>", t.Kind, t.Level)
	case OrderedListItem:
		return fmt.Sprintf("<Token:%s level=%d ordinal=%q>", t.Kind, t.Level, t.Ordinal)
	case Ref:
		return fmt.Sprintf("<Token:%s link=%q text=%q>", t.Kind, t.Link, t.Text)
	case IndexedRef:
		return fmt.Sprintf("<Token:%s text=%q index=%q>", t.Kind, t.Text, t.Index)
	case RefIndex:
		return fmt.Sprintf("<Token:%s name=%q link=%q>", t.Kind, t.Text, t.Link)
	case EmbeddedDocument:
		return fmt.Sprintf("<Token:%s language=%q>", t.Kind, t.Language)
	default:
		return fmt.Sprintf("<Token:%s \"%s\">", t.Kind, Escape(t.Text))
	}
}

// Escape renders non-printable characters in s as escape sequences for
// debug output.
func Escape(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\n':
			out = append(out, '\\', 'n')
		case '\r':
			out = append(out, '\\', 'r')
		case '\t':
			out = append(out, '\\', 't')
		case '\\':
			out = append(out, '\\', '\\')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
