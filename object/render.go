package object

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Jotdown renders o back to jotdown source text. Rendering is canonical:
// parsing the result reproduces the same structure.
func Jotdown(o Object, cfg Config) string {
	var b strings.Builder
	writeJotdown(&b, o, cfg)
	return b.String()
}

// bareRefSafe reports whether link survives the @link form: the lexer stops
// a bare reference at whitespace or '[' and strips trailing punctuation, so
// such links render angle-bracketed instead.
func bareRefSafe(link string) bool {
	if link == "" {
		return false
	}
	for _, r := range link {
		if unicode.IsSpace(r) || r == '[' {
			return false
		}
	}
	last, _ := utf8.DecodeLastRuneInString(link)
	return !unicode.IsPunct(last) && !unicode.IsSymbol(last)
}

// escapeInline backslash-escapes the given significant characters, plus the
// backslash itself.
func escapeInline(s string, significant string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\\' || strings.ContainsRune(significant, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

func writeInline(b *strings.Builder, o Object) {
	switch v := o.(type) {
	case *Text:
		b.WriteString(v.text)
	case *Hashtag:
		b.WriteByte('#')
		b.WriteString(v.tag)
	case *Anchor:
		b.WriteByte('&')
		b.WriteString(v.name)
	case *Code:
		b.WriteByte('`')
		b.WriteString(escapeInline(v.code, "`"))
		b.WriteByte('`')
	case *Ref:
		if v.text == v.link {
			if bareRefSafe(v.link) {
				b.WriteByte('@')
				b.WriteString(v.link)
			} else {
				b.WriteByte('<')
				b.WriteString(escapeInline(v.link, ">"))
				b.WriteByte('>')
			}
		} else {
			b.WriteByte('[')
			b.WriteString(escapeInline(v.text, "]"))
			b.WriteString("](")
			b.WriteString(escapeInline(v.link, ")"))
			b.WriteByte(')')
		}
	case *IndexedRef:
		b.WriteByte('[')
		b.WriteString(escapeInline(v.text, "]"))
		b.WriteString("][")
		b.WriteString(escapeInline(v.indexName, "]"))
		b.WriteByte(']')
	case *RefIndex:
		b.WriteByte('[')
		b.WriteString(escapeInline(v.name, "]"))
		b.WriteString("]: ")
		b.WriteString(v.link)
	}
}

func renderInline(tc *TextContent) string {
	if tc == nil {
		return ""
	}
	var b strings.Builder
	for _, child := range tc.Contents() {
		writeInline(&b, child)
	}
	return b.String()
}

func writeJotdown(b *strings.Builder, o Object, cfg Config) {
	switch v := o.(type) {
	case *Document:
		if v.frontMatter != nil {
			writeJotdown(b, v.frontMatter, cfg)
		}
		for _, child := range v.Contents() {
			writeJotdown(b, child, cfg)
		}
	case *FrontMatter:
		b.WriteString("---\n")
		b.WriteString(ensureNewline(v.code))
		b.WriteString("---\n")
	case *Section:
		if v.level >= 1 {
			b.WriteString(strings.Repeat("#", v.level))
			b.WriteByte(' ')
			b.WriteString(strings.TrimSuffix(renderInline(v.header), "\n"))
			b.WriteByte('\n')
		}
		for _, child := range v.Contents() {
			writeJotdown(b, child, cfg)
		}
	case *CodeBlock:
		b.WriteString("```")
		b.WriteString(v.language)
		b.WriteByte('\n')
		b.WriteString(ensureNewline(v.code))
		b.WriteString("```\n")
	case *LineBreak:
		b.WriteByte('\n')
	case *TextContent:
		b.WriteString(ensureNewline(renderInline(v)))
	case *OrderedList:
		for _, child := range v.Contents() {
			writeJotdown(b, child, cfg)
		}
	case *UnorderedList:
		for _, child := range v.Contents() {
			writeJotdown(b, child, cfg)
		}
	case *OrderedListItem:
		writeListItem(b, v, v.ordinal+". ", cfg)
	case *UnorderedListItem:
		writeListItem(b, v, "- ", cfg)
	default:
		writeInline(b, o)
	}
}

// writeListItem renders the crown, optional checklist status, the label
// wrapped to the crown width, and nested sub-lists.
func writeListItem(b *strings.Builder, li ListItem, crown string, cfg Config) {
	level := li.Level()
	if level < 1 {
		level = 1
	}
	indent := strings.Repeat(" ", (level-1)*cfg.ListIndent)
	if status := li.Status(); status != "" {
		crown += "[" + status + "] "
	}
	text := strings.TrimSuffix(renderInline(li.Label()), "\n")
	continuation := indent + strings.Repeat(" ", utf8.RuneCountInString(crown))
	for i, line := range strings.Split(text, "\n") {
		if i == 0 {
			b.WriteString(indent)
			b.WriteString(crown)
		} else {
			b.WriteString(continuation)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for _, child := range li.Contents() {
		writeJotdown(b, child, cfg)
	}
}
