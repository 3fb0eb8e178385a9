package compiler

import (
	"errors"
	"strings"
	"testing"

	"github.com/jotdown-lang/jotdown/lexer"
	"github.com/jotdown-lang/jotdown/object"
	"github.com/jotdown-lang/jotdown/token"
)

func compile(t *testing.T, input string) *object.Document {
	t.Helper()
	doc, err := Compile(lexer.New(strings.NewReader(input), "test"))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	return doc
}

func onlySection(t *testing.T, doc *object.Document) *object.Section {
	t.Helper()
	if len(doc.Contents()) != 1 {
		t.Fatalf("document contents = %d, want 1 section", len(doc.Contents()))
	}
	sec, ok := doc.Contents()[0].(*object.Section)
	if !ok {
		t.Fatalf("document child = %T, want *Section", doc.Contents()[0])
	}
	return sec
}

func TestCompileHeaderAndRef(t *testing.T) {
	t.Parallel()

	doc := compile(t, "# Title\nHello @world.\n")
	sec := onlySection(t, doc)

	if sec.Level() != 1 {
		t.Errorf("section level = %d, want 1", sec.Level())
	}
	header := sec.Header()
	if header == nil || len(header.Contents()) != 1 {
		t.Fatalf("header = %v, want one Text child", header)
	}
	if text := header.Contents()[0].(*object.Text).Text(); text != "Title" {
		t.Errorf("header text = %q, want Title", text)
	}

	if len(sec.Contents()) != 1 {
		t.Fatalf("section contents = %d, want 1", len(sec.Contents()))
	}
	body := sec.Contents()[0].(*object.TextContent)
	kids := body.Contents()
	if len(kids) != 3 {
		t.Fatalf("body contents = %d, want 3", len(kids))
	}
	if text := kids[0].(*object.Text).Text(); text != "Hello " {
		t.Errorf("body[0] = %q, want 'Hello '", text)
	}
	ref := kids[1].(*object.Ref)
	if ref.Link() != "world" {
		t.Errorf("ref link = %q, want world; period must stay out of the ref", ref.Link())
	}
	if text := kids[2].(*object.Text).Text(); text != "." {
		t.Errorf("body[2] = %q, want '.'", text)
	}
}

func TestCompileNestedLists(t *testing.T) {
	t.Parallel()

	doc := compile(t, "- item1\n  - nested1\n- item2\n")
	sec := onlySection(t, doc)
	if sec.Level() != 0 {
		t.Fatalf("wrapper section level = %d, want 0", sec.Level())
	}

	list := sec.Contents()[0].(*object.UnorderedList)
	items := list.Contents()
	if len(items) != 2 {
		t.Fatalf("list items = %d, want 2", len(items))
	}

	item1 := items[0].(*object.UnorderedListItem)
	if got := object.SearchString(item1.Label()); got != "item1" {
		t.Errorf("item1 label = %q, want item1", got)
	}
	if len(item1.Contents()) != 1 {
		t.Fatalf("item1 contents = %d, want nested list", len(item1.Contents()))
	}
	nested := item1.Contents()[0].(*object.UnorderedList)
	if nested.Level() != 2 {
		t.Errorf("nested list level = %d, want 2", nested.Level())
	}
	nestedItems := nested.Contents()
	if len(nestedItems) != 1 {
		t.Fatalf("nested items = %d, want 1", len(nestedItems))
	}
	if got := nestedItems[0].(*object.UnorderedListItem).Level(); got != 2 {
		t.Errorf("nested item level = %d, want 2", got)
	}

	item2 := items[1].(*object.UnorderedListItem)
	if got := object.SearchString(item2.Label()); got != "item2" {
		t.Errorf("item2 label = %q, want item2", got)
	}
	if len(item2.Contents()) != 0 {
		t.Errorf("item2 contents = %d, want 0", len(item2.Contents()))
	}
}

func TestCompileChecklistStatus(t *testing.T) {
	t.Parallel()

	doc := compile(t, "- [x] Done thing")
	sec := onlySection(t, doc)
	list := sec.Contents()[0].(*object.UnorderedList)
	item := list.Contents()[0].(*object.UnorderedListItem)

	if item.Status() != "x" {
		t.Errorf("status = %q, want x", item.Status())
	}
	if got := object.SearchString(item.Label()); got != "Done thing" {
		t.Errorf("label = %q, want 'Done thing'", got)
	}
}

func TestCompileFrontMatter(t *testing.T) {
	t.Parallel()

	doc := compile(t, "---\nname: test\n---\n# Header\n")

	fm := doc.FrontMatter()
	if fm == nil {
		t.Fatal("front matter missing")
	}
	if fm.Code() != "name: test\n" {
		t.Errorf("front matter code = %q, want 'name: test\\n'", fm.Code())
	}
	if fm.Language() != "" {
		t.Errorf("front matter language = %q, want empty", fm.Language())
	}

	sec := onlySection(t, doc)
	if sec.Level() != 1 {
		t.Errorf("section level = %d, want 1", sec.Level())
	}

	var meta struct {
		Name string `yaml:"name"`
	}
	if err := fm.Decode(&meta); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if meta.Name != "test" {
		t.Errorf("decoded name = %q, want test", meta.Name)
	}
}

func TestCompileSectionNesting(t *testing.T) {
	t.Parallel()

	doc := compile(t, "# a\n## b\n### c\n## d\n# e\n")

	if len(doc.Contents()) != 2 {
		t.Fatalf("top sections = %d, want 2", len(doc.Contents()))
	}
	a := doc.Contents()[0].(*object.Section)
	if got := object.SearchString(a.Header()); got != "a" {
		t.Errorf("first section header = %q, want a", got)
	}

	var subs []*object.Section
	for _, o := range a.Contents() {
		subs = append(subs, o.(*object.Section))
	}
	if len(subs) != 2 {
		t.Fatalf("subsections of a = %d, want 2 (b and d)", len(subs))
	}
	if got := object.SearchString(subs[0].Header()); got != "b" {
		t.Errorf("first subsection = %q, want b", got)
	}
	if len(subs[0].Contents()) != 1 {
		t.Fatalf("b contents = %d, want nested c", len(subs[0].Contents()))
	}
	if got := object.SearchString(subs[1].Header()); got != "d" {
		t.Errorf("second subsection = %q, want d", got)
	}
}

func TestCompileCodeBlock(t *testing.T) {
	t.Parallel()

	doc := compile(t, "# H\n```python\nx = 1\n```\n")
	sec := onlySection(t, doc)

	cb := sec.Contents()[0].(*object.CodeBlock)
	if cb.Language() != "python" {
		t.Errorf("language = %q, want python", cb.Language())
	}
	if cb.Code() != "x = 1\n" {
		t.Errorf("code = %q, want 'x = 1\\n'", cb.Code())
	}
}

func TestCompileBlankLineBecomesLineBreak(t *testing.T) {
	t.Parallel()

	doc := compile(t, "a\n\nb\n")
	sec := onlySection(t, doc)

	if len(sec.Contents()) != 3 {
		t.Fatalf("section contents = %d, want text, break, text", len(sec.Contents()))
	}
	if _, ok := sec.Contents()[1].(*object.LineBreak); !ok {
		t.Errorf("middle child = %T, want *LineBreak", sec.Contents()[1])
	}
}

func TestCompileResolvesIndexedRefs(t *testing.T) {
	t.Parallel()

	doc := compile(t, "see [docs][home]\n\n[home]: https://example.com\n")

	results := findIndexedRefs(doc)
	if len(results) != 1 {
		t.Fatalf("indexed refs = %d, want 1", len(results))
	}
	if got := results[0].ResolvedLink(); got != "https://example.com" {
		t.Errorf("resolved link = %q, want the declared index target", got)
	}
}

func TestCompileUnresolvedIndexedRef(t *testing.T) {
	t.Parallel()

	doc := compile(t, "see [docs][nowhere]\n")

	results := findIndexedRefs(doc)
	if len(results) != 1 {
		t.Fatalf("indexed refs = %d, want 1", len(results))
	}
	if got := results[0].ResolvedLink(); got != "" {
		t.Errorf("resolved link = %q, want empty for missing index", got)
	}
}

func findIndexedRefs(o object.Object) []*object.IndexedRef {
	var out []*object.IndexedRef
	if ref, ok := o.(*object.IndexedRef); ok {
		out = append(out, ref)
	}
	if c, ok := o.(object.Container); ok {
		for _, child := range c.Contents() {
			out = append(out, findIndexedRefs(child)...)
		}
	}
	if sec, ok := o.(*object.Section); ok && sec.Header() != nil {
		out = append(out, findIndexedRefs(sec.Header())...)
	}
	if li, ok := o.(object.ListItem); ok && li.Label() != nil {
		out = append(out, findIndexedRefs(li.Label())...)
	}
	return out
}

func TestCompileErrorTokenFailsCompile(t *testing.T) {
	t.Parallel()

	_, err := Compile(lexer.New(strings.NewReader("- a\n1. b\n"), "test"))
	if !errors.Is(err, ErrCompile) {
		t.Fatalf("Compile() error = %v, want ErrCompile", err)
	}
	if !strings.Contains(err.Error(), "mixed") {
		t.Errorf("error = %q, want mixed list message", err)
	}
}

func TestCompileTokensFromSlice(t *testing.T) {
	t.Parallel()

	tokens := []token.Token{
		{Kind: token.HeaderStart, Level: 1},
		{Kind: token.Text, Text: "T"},
		{Kind: token.HeaderEnd},
		{Kind: token.End},
	}
	doc, err := CompileTokens(tokens)
	if err != nil {
		t.Fatalf("CompileTokens() error = %v", err)
	}
	sec := onlySection(t, doc)
	if got := object.SearchString(sec.Header()); got != "T" {
		t.Errorf("header = %q, want T", got)
	}
}

func TestCompileRanges(t *testing.T) {
	t.Parallel()

	doc := compile(t, "# T\nbody\n")
	sec := onlySection(t, doc)

	if sec.Range().IsNowhere() {
		t.Fatal("section range missing")
	}
	if sec.Range().Begin.Line != 1 {
		t.Errorf("section begin line = %d, want 1", sec.Range().Begin.Line)
	}
	// The body's closing newline advances the end location to line 3.
	if sec.Range().End.Line != 3 {
		t.Errorf("section end line = %d, want 3", sec.Range().End.Line)
	}
	if doc.Range().IsNowhere() {
		t.Error("document range missing")
	}
}

func TestCompileStrayTokenError(t *testing.T) {
	t.Parallel()

	_, err := CompileTokens([]token.Token{
		{Kind: token.HeaderEnd},
		{Kind: token.End},
	})
	if !errors.Is(err, ErrCompile) {
		t.Fatalf("CompileTokens() error = %v, want ErrCompile", err)
	}
	if !strings.Contains(err.Error(), "unexpected") {
		t.Errorf("error = %q, want unexpected token message", err)
	}
}

func TestCompileLineEndingAfterInlineConstruct(t *testing.T) {
	t.Parallel()

	doc := compile(t, "# Notes\nremember #this\n")
	sec := onlySection(t, doc)
	body := sec.Contents()[0].(*object.TextContent)

	kids := body.Contents()
	if len(kids) != 2 {
		t.Fatalf("body contents = %d, want 2", len(kids))
	}
	if _, ok := kids[1].(*object.Hashtag); !ok {
		t.Errorf("body[1] = %T, want *Hashtag; no text leaf for the line ending", kids[1])
	}
}

func TestCompileCoalescesTextRuns(t *testing.T) {
	t.Parallel()

	doc := compile(t, "remember #this\nnext line\n")
	sec := onlySection(t, doc)
	body := sec.Contents()[0].(*object.TextContent)

	kids := body.Contents()
	if len(kids) != 3 {
		t.Fatalf("body contents = %d, want 3", len(kids))
	}
	if text := kids[2].(*object.Text).Text(); text != "\nnext line" {
		t.Errorf("body[2] = %q, want \"\\nnext line\"", text)
	}

	doc = compile(t, "first\nsecond\n")
	sec = onlySection(t, doc)
	body = sec.Contents()[0].(*object.TextContent)
	if len(body.Contents()) != 1 {
		t.Fatalf("paragraph runs = %d, want 1", len(body.Contents()))
	}
	if text := body.Contents()[0].(*object.Text).Text(); text != "first\nsecond" {
		t.Errorf("paragraph text = %q, want \"first\\nsecond\"", text)
	}
}
