// Package query implements the jotdown path query language: '/'-delimited
// segments compiled into a pipeline of selectors, evaluated left to right
// over an object set.
package query

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jotdown-lang/jotdown/object"
)

// ErrQuery is the sentinel error for malformed query strings.
var ErrQuery = errors.New("query error")

var sliceRe = regexp.MustCompile(`^(-?\d*):(-?\d*)$`)

// Query is an ordered selector pipeline.
type Query struct {
	src       string
	selectors []Selector
}

// Parse compiles a query string into a pipeline.
func Parse(q string) (*Query, error) {
	tokens, err := tokenize(q)
	if err != nil {
		return nil, err
	}
	return parseTokens(tokens, q)
}

func parseTokens(tokens []qtoken, src string) (*Query, error) {
	p := &parser{tokens: tokens}
	selectors, err := p.parse()
	if err != nil {
		return nil, err
	}
	return &Query{src: src, selectors: selectors}, nil
}

// String returns the source text the query was parsed from.
func (q *Query) String() string {
	return q.src
}

// Select runs the pipeline over the object set, short-circuiting to the
// empty set as soon as any stage produces one.
func (q *Query) Select(objects []object.Object) []object.Object {
	current := objects
	for _, sel := range q.selectors {
		if len(current) == 0 {
			return nil
		}
		current = sel.Select(current)
	}
	return current
}

type parser struct {
	tokens []qtoken
	pos    int
}

func (p *parser) next() (qtoken, bool) {
	if p.pos >= len(p.tokens) {
		return qtoken{}, false
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, true
}

// arg consumes the next token as a selector's argument.
func (p *parser) arg(keyword string) (string, error) {
	tok, ok := p.next()
	if !ok {
		return "", fmt.Errorf("%w: %s requires an argument", ErrQuery, keyword)
	}
	return tok.text, nil
}

// subquery consumes the next token as a nested query: a parenthesized group
// is tokenized recursively, a plain token stands alone.
func (p *parser) subquery(keyword string) (*Query, error) {
	tok, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("%w: %s requires a subquery", ErrQuery, keyword)
	}
	if tok.group {
		return Parse(tok.text)
	}
	return parseTokens([]qtoken{tok}, tok.text)
}

func (p *parser) parse() ([]Selector, error) {
	var selectors []Selector
	for {
		tok, ok := p.next()
		if !ok {
			return selectors, nil
		}
		if tok.group {
			sub, err := Parse(tok.text)
			if err != nil {
				return nil, err
			}
			selectors = append(selectors, sub.selectors...)
			continue
		}
		sel, err := p.selector(tok.text)
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, sel)
	}
}

func (p *parser) selector(word string) (Selector, error) {
	switch strings.ToLower(word) {
	case "children", "contents":
		return Children{IncludeLabel: true}, nil
	case "descendants", "**":
		return Descendants{IncludeLabel: true}, nil
	case "parent":
		return Parent{}, nil
	case "antecedents", "ancestors":
		return Antecedents{}, nil

	case "doc", "document":
		return ByType(object.TypeDocument), nil
	case "section", "sections":
		return ByType(object.TypeSection), nil
	case "text":
		return ByType(object.TypeText), nil
	case "textcontent":
		return ByType(object.TypeTextContent), nil
	case "hashtag", "hashtags":
		return ByHashtag(""), nil
	case "anchor", "anchors":
		return ByAnchor(""), nil
	case "ref", "reference", "references":
		return ByReference(""), nil
	case "refindex":
		return ByType(object.TypeRefIndex), nil
	case "code":
		return ByType(object.TypeCode), nil
	case "codeblock", "code_block":
		return ByType(object.TypeCodeBlock), nil
	case "linebreak", "br":
		return ByType(object.TypeLineBreak), nil
	case "frontmatter", "front_matter":
		return ByType(object.TypeFrontMatter), nil
	case "list", "lists":
		return ByType(object.TypeOrderedList, object.TypeUnorderedList), nil
	case "ol", "ordered_list":
		return ByType(object.TypeOrderedList), nil
	case "ul", "unordered_list":
		return ByType(object.TypeUnorderedList), nil
	case "li", "item", "items", "listitem":
		return ByType(object.TypeOrderedListItem, object.TypeUnorderedListItem), nil
	case "oli":
		return ByType(object.TypeOrderedListItem), nil
	case "uli":
		return ByType(object.TypeUnorderedListItem), nil
	case "task", "tasks", "checklist":
		return ByStatus(""), nil

	case "status":
		value, err := p.arg(word)
		if err != nil {
			return nil, err
		}
		return ByStatus(value), nil
	case "ordinal":
		value, err := p.arg(word)
		if err != nil {
			return nil, err
		}
		return ByOrdinal(value), nil
	case "level":
		value, err := p.arg(word)
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%w: level requires an integer, got %q", ErrQuery, value)
		}
		return ByLevel(n), nil
	case "search":
		pattern, err := p.arg(word)
		if err != nil {
			return nil, err
		}
		sel, err := BySearch(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: bad search pattern %q: %v", ErrQuery, pattern, err)
		}
		return sel, nil

	case "not":
		sub, err := p.subquery(word)
		if err != nil {
			return nil, err
		}
		return Not{Subquery: sub}, nil
	case "contains":
		sub, err := p.subquery(word)
		if err != nil {
			return nil, err
		}
		return Contains{Subquery: sub}, nil
	}

	switch {
	case strings.HasPrefix(word, "#"):
		return ByHashtag(word[1:]), nil
	case strings.HasPrefix(word, "&"):
		return ByAnchor(word[1:]), nil
	case strings.HasPrefix(word, "@"):
		return ByReference(word[1:]), nil
	}

	if m := sliceRe.FindStringSubmatch(word); m != nil {
		var s Slice
		if m[1] != "" {
			begin, _ := strconv.Atoi(m[1])
			s.Begin = &begin
		}
		if m[2] != "" {
			end, _ := strconv.Atoi(m[2])
			s.End = &end
		}
		return s, nil
	}
	if i, err := strconv.Atoi(word); err == nil {
		return Offset{Index: i}, nil
	}

	return nil, fmt.Errorf("%w: unrecognized token %q", ErrQuery, word)
}
