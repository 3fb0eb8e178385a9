package query

import (
	"fmt"
	"strings"
)

// qtoken is one segment of a query string. A group token holds the raw text
// between balanced parentheses, tokenized again when the consuming selector
// evaluates it.
type qtoken struct {
	text  string
	group bool
}

// tokenize splits a query string on '/' into segments. Backslash escapes
// protect '/', '(', ')' and backslash itself inside a segment; a segment
// opening with '(' captures everything up to the balancing ')' as a single
// opaque token.
func tokenize(q string) ([]qtoken, error) {
	var tokens []qtoken
	var sb strings.Builder
	runes := []rune(q)
	pending := false

	flush := func() {
		if pending || sb.Len() > 0 {
			tokens = append(tokens, qtoken{text: sb.String()})
			sb.Reset()
			pending = false
		}
	}

	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch c {
		case '\\':
			if i+1 < len(runes) {
				i++
				sb.WriteRune(runes[i])
				pending = true
				continue
			}
			sb.WriteRune(c)
			pending = true

		case '/':
			flush()

		case '(':
			if sb.Len() > 0 {
				sb.WriteRune(c)
				continue
			}
			inner, width, err := scanGroup(runes[i:])
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, qtoken{text: inner, group: true})
			i += width - 1

		default:
			sb.WriteRune(c)
		}
	}
	flush()
	return tokens, nil
}

// scanGroup consumes a balanced parenthesized group starting at runes[0],
// returning the inner text and the total width consumed. Escaped parentheses
// do not affect balancing.
func scanGroup(runes []rune) (string, int, error) {
	depth := 0
	var sb strings.Builder
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch c {
		case '\\':
			if depth > 0 {
				sb.WriteRune(c)
				if i+1 < len(runes) {
					i++
					sb.WriteRune(runes[i])
				}
			}
		case '(':
			if depth > 0 {
				sb.WriteRune(c)
			}
			depth++
		case ')':
			depth--
			if depth == 0 {
				return sb.String(), i + 1, nil
			}
			sb.WriteRune(c)
		default:
			sb.WriteRune(c)
		}
	}
	return "", 0, fmt.Errorf("%w: unbalanced parentheses", ErrQuery)
}
