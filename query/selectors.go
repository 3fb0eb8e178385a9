package query

import (
	"regexp"
	"strings"

	"github.com/jotdown-lang/jotdown/object"
)

// Selector is one stage of a query pipeline: it maps an object set to the
// next object set.
type Selector interface {
	Select(objects []object.Object) []object.Object
}

// appendChildren collects o's direct children: front matter for documents,
// the header or label first when includeLabel is set, then the container
// contents.
func appendChildren(o object.Object, includeLabel bool, out []object.Object) []object.Object {
	switch v := o.(type) {
	case *object.Document:
		if fm := v.FrontMatter(); fm != nil {
			out = append(out, fm)
		}
	case *object.Section:
		if includeLabel && v.Header() != nil {
			out = append(out, v.Header())
		}
	case object.ListItem:
		if includeLabel && v.Label() != nil {
			out = append(out, v.Label())
		}
	}
	if c, ok := o.(object.Container); ok {
		out = append(out, c.Contents()...)
	}
	return out
}

// appendDescendants collects o's transitive children depth-first.
func appendDescendants(o object.Object, includeLabel bool, out []object.Object) []object.Object {
	for _, child := range appendChildren(o, includeLabel, nil) {
		out = append(out, child)
		out = appendDescendants(child, includeLabel, out)
	}
	return out
}

// dedup keeps the first occurrence of every object, by identity.
type dedup map[object.Object]struct{}

func (d dedup) add(o object.Object, out []object.Object) []object.Object {
	if _, ok := d[o]; ok {
		return out
	}
	d[o] = struct{}{}
	return append(out, o)
}

// Children selects the direct contents of every object in the set.
type Children struct {
	IncludeLabel bool
}

func (s Children) Select(objects []object.Object) []object.Object {
	var out []object.Object
	for _, o := range objects {
		out = appendChildren(o, s.IncludeLabel, out)
	}
	return out
}

// Descendants selects the transitive contents of every object in the set,
// depth-first, de-duplicated.
type Descendants struct {
	IncludeLabel bool
	IncludeSelf  bool
}

func (s Descendants) Select(objects []object.Object) []object.Object {
	seen := dedup{}
	var out []object.Object
	for _, o := range objects {
		if s.IncludeSelf {
			out = seen.add(o, out)
		}
		for _, d := range appendDescendants(o, s.IncludeLabel, nil) {
			out = seen.add(d, out)
		}
	}
	return out
}

// Parent selects each object's immediate parent, de-duplicated.
type Parent struct{}

func (s Parent) Select(objects []object.Object) []object.Object {
	seen := dedup{}
	var out []object.Object
	for _, o := range objects {
		if p := o.Parent(); p != nil {
			out = seen.add(p, out)
		}
	}
	return out
}

// Antecedents selects each object's transitive parent chain up to the root,
// de-duplicated.
type Antecedents struct{}

func (s Antecedents) Select(objects []object.Object) []object.Object {
	seen := dedup{}
	var out []object.Object
	for _, o := range objects {
		for p := o.Parent(); p != nil; p = p.Parent() {
			out = seen.add(p, out)
		}
	}
	return out
}

// match filters the current set by a predicate. When no member matches
// directly, it searches the members' descendants (labels included) instead,
// so a query like "task" works from a whole document while a filter after
// another filter stays bound to what that stage selected.
type match struct {
	pred func(object.Object) bool
}

func (s match) Select(objects []object.Object) []object.Object {
	seen := dedup{}
	var out []object.Object
	for _, o := range objects {
		if s.pred(o) {
			out = seen.add(o, out)
		}
	}
	if out != nil {
		return out
	}
	for _, o := range objects {
		for _, d := range appendDescendants(o, true, nil) {
			if s.pred(d) {
				out = seen.add(d, out)
			}
		}
	}
	return out
}

// ByType matches objects of any of the given variants.
func ByType(types ...object.Type) Selector {
	return match{pred: func(o object.Object) bool {
		for _, t := range types {
			if o.Type() == t {
				return true
			}
		}
		return false
	}}
}

// ByLevel matches sections and list items at the given structural level.
func ByLevel(n int) Selector {
	return match{pred: func(o object.Object) bool {
		switch v := o.(type) {
		case *object.Section:
			return v.Level() == n
		case object.ListItem:
			return v.Level() == n
		}
		return false
	}}
}

// ByHashtag matches hashtags, by exact tag when name is non-empty.
func ByHashtag(name string) Selector {
	return match{pred: func(o object.Object) bool {
		h, ok := o.(*object.Hashtag)
		return ok && (name == "" || h.Tag() == name)
	}}
}

// ByAnchor matches anchors, by exact name when name is non-empty.
func ByAnchor(name string) Selector {
	return match{pred: func(o object.Object) bool {
		a, ok := o.(*object.Anchor)
		return ok && (name == "" || a.Name() == name)
	}}
}

// ByReference matches references whose link contains substr; an empty
// substr matches every reference.
func ByReference(substr string) Selector {
	return match{pred: func(o object.Object) bool {
		switch v := o.(type) {
		case *object.Ref:
			return strings.Contains(v.Link(), substr)
		case *object.IndexedRef:
			return strings.Contains(v.ResolvedLink(), substr)
		}
		return false
	}}
}

// BySearch matches objects whose search string matches the regular
// expression, preferring the label text for sections and list items.
func BySearch(pattern string) (Selector, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return match{pred: func(o object.Object) bool {
		target := object.SearchString(o)
		if label := object.LabelOf(o); label != nil {
			target = object.SearchString(label)
		}
		return re.MatchString(target)
	}}, nil
}

// ByStatus matches list items with a non-empty status, optionally an exact
// value.
func ByStatus(value string) Selector {
	return match{pred: func(o object.Object) bool {
		li, ok := o.(object.ListItem)
		if !ok || li.Status() == "" {
			return false
		}
		return value == "" || li.Status() == value
	}}
}

// ByOrdinal matches ordered list items with the given ordinal.
func ByOrdinal(ordinal string) Selector {
	return match{pred: func(o object.Object) bool {
		li, ok := o.(*object.OrderedListItem)
		return ok && li.Ordinal() == ordinal
	}}
}

// Offset selects the single object at index i of the current set. Negative
// indices count from the end; out of range yields the empty set.
type Offset struct {
	Index int
}

func (s Offset) Select(objects []object.Object) []object.Object {
	i := s.Index
	if i < 0 {
		i += len(objects)
	}
	if i < 0 || i >= len(objects) {
		return nil
	}
	return objects[i : i+1]
}

// Slice selects a python-like [begin:end) window of the current set.
// Negative bounds count from the end; a nil bound is open.
type Slice struct {
	Begin *int
	End   *int
}

func (s Slice) Select(objects []object.Object) []object.Object {
	n := len(objects)
	clamp := func(bound *int, fallback int) int {
		if bound == nil {
			return fallback
		}
		i := *bound
		if i < 0 {
			i += n
		}
		if i < 0 {
			return 0
		}
		if i > n {
			return n
		}
		return i
	}
	begin := clamp(s.Begin, 0)
	end := clamp(s.End, n)
	if begin >= end {
		return nil
	}
	return objects[begin:end]
}

// Contains keeps objects whose contents, run through the subquery, produce a
// non-empty set.
type Contains struct {
	Subquery *Query
}

func (s Contains) Select(objects []object.Object) []object.Object {
	var out []object.Object
	for _, o := range objects {
		children := appendChildren(o, true, nil)
		if len(children) == 0 {
			continue
		}
		if len(s.Subquery.Select(children)) > 0 {
			out = append(out, o)
		}
	}
	return out
}

// Not removes from the set everything the subquery selects from the same
// input.
type Not struct {
	Subquery *Query
}

func (s Not) Select(objects []object.Object) []object.Object {
	excluded := dedup{}
	for _, o := range s.Subquery.Select(objects) {
		excluded[o] = struct{}{}
	}
	var out []object.Object
	for _, o := range objects {
		if _, ok := excluded[o]; !ok {
			out = append(out, o)
		}
	}
	return out
}
