package object

// Equal reports whether a and b are structurally equal: same variants, same
// scalar fields, same children. Ranges and parents are ignored.
func Equal(a, b Object) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case *Text:
		return av.text == b.(*Text).text
	case *Hashtag:
		return av.tag == b.(*Hashtag).tag
	case *Anchor:
		return av.name == b.(*Anchor).name
	case *Code:
		return av.code == b.(*Code).code
	case *Ref:
		bv := b.(*Ref)
		return av.link == bv.link && av.text == bv.text
	case *IndexedRef:
		bv := b.(*IndexedRef)
		return av.text == bv.text && av.indexName == bv.indexName &&
			av.resolvedLink == bv.resolvedLink
	case *RefIndex:
		bv := b.(*RefIndex)
		return av.name == bv.name && av.link == bv.link
	case *LineBreak:
		return true
	case *CodeBlock:
		bv := b.(*CodeBlock)
		return av.code == bv.code && av.language == bv.language
	case *FrontMatter:
		bv := b.(*FrontMatter)
		return av.code == bv.code && av.language == bv.language
	case *TextContent:
		return equalContents(av.children, b.(*TextContent).children)
	case *Section:
		bv := b.(*Section)
		return av.level == bv.level &&
			equalLabels(av.header, bv.header) &&
			equalContents(av.children, bv.children)
	case *OrderedList:
		return equalContents(av.children, b.(*OrderedList).children)
	case *UnorderedList:
		return equalContents(av.children, b.(*UnorderedList).children)
	case *OrderedListItem:
		bv := b.(*OrderedListItem)
		return av.ordinal == bv.ordinal && av.status == bv.status &&
			equalLabels(av.label, bv.label) &&
			equalContents(av.children, bv.children)
	case *UnorderedListItem:
		bv := b.(*UnorderedListItem)
		return av.status == bv.status &&
			equalLabels(av.label, bv.label) &&
			equalContents(av.children, bv.children)
	case *Document:
		bv := b.(*Document)
		if (av.frontMatter == nil) != (bv.frontMatter == nil) {
			return false
		}
		if av.frontMatter != nil && !Equal(av.frontMatter, bv.frontMatter) {
			return false
		}
		return equalContents(av.children, bv.children)
	default:
		return false
	}
}

func equalLabels(a, b *TextContent) bool {
	if a == nil || b == nil {
		return a == b
	}
	return Equal(a, b)
}

func equalContents(a, b []Object) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
