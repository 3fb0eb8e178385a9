package object

import "strings"

// SearchString returns a whitespace-normalized plain-text projection of o,
// used for query matching only. It is not a serialization format.
func SearchString(o Object) string {
	var b strings.Builder
	writeSearch(&b, o)
	return strings.Join(strings.Fields(b.String()), " ")
}

func writeSearch(b *strings.Builder, o Object) {
	switch v := o.(type) {
	case *Text:
		b.WriteString(v.text)
	case *Hashtag:
		b.WriteString("#" + v.tag)
	case *Anchor:
		b.WriteString("&" + v.name)
	case *Code:
		b.WriteString(v.code)
	case *Ref:
		b.WriteString(v.text)
	case *IndexedRef:
		b.WriteString(v.text)
	case *RefIndex:
		b.WriteString(v.name)
	case *CodeBlock:
		b.WriteString(v.code)
	case *FrontMatter:
		b.WriteString(v.code)
	case *LineBreak:
		b.WriteByte(' ')
	case *Section:
		if v.header != nil {
			writeSearch(b, v.header)
			b.WriteByte(' ')
		}
		writeSearchContents(b, v.Contents())
	case *OrderedListItem:
		if v.label != nil {
			writeSearch(b, v.label)
			b.WriteByte(' ')
		}
		writeSearchContents(b, v.Contents())
	case *UnorderedListItem:
		if v.label != nil {
			writeSearch(b, v.label)
			b.WriteByte(' ')
		}
		writeSearchContents(b, v.Contents())
	case Container:
		writeSearchContents(b, v.Contents())
	}
}

func writeSearchContents(b *strings.Builder, contents []Object) {
	for _, child := range contents {
		writeSearch(b, child)
		b.WriteByte(' ')
	}
}
