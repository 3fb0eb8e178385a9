package object

import "testing"

func inline(t *testing.T, children ...Object) *TextContent {
	t.Helper()
	tc := NewTextContent()
	for _, c := range children {
		mustAdd(t, tc, c)
	}
	return tc
}

func TestJotdownRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(t *testing.T) Object
		want  string
	}{
		{
			name: "section_with_header_and_body",
			build: func(t *testing.T) Object {
				sec := NewSection(2)
				sec.SetHeader(inline(t, NewText("Title")))
				mustAdd(t, sec, inline(t, NewText("body")))
				return sec
			},
			want: "## Title\nbody\n",
		},
		{
			name: "synthetic_section_renders_no_header",
			build: func(t *testing.T) Object {
				sec := NewSection(0)
				mustAdd(t, sec, inline(t, NewText("just text")))
				return sec
			},
			want: "just text\n",
		},
		{
			name: "inline_forms",
			build: func(t *testing.T) Object {
				return inline(t,
					NewText("see "),
					NewCode("x`y"),
					NewText(" "),
					NewHashtag("tag"),
					NewText(" "),
					NewAnchor("spot"),
					NewText(" "),
					NewRef("world", "world"),
				)
			},
			want: "see `x\\`y` #tag &spot @world\n",
		},
		{
			name: "angle_link_for_unsafe_bare_ref",
			build: func(t *testing.T) Object {
				return inline(t,
					NewRef("https://example.com/docs/", "https://example.com/docs/"),
					NewText(" and "),
					NewRef("two words", "two words"),
				)
			},
			want: "<https://example.com/docs/> and <two words>\n",
		},
		{
			name: "ref_with_distinct_text",
			build: func(t *testing.T) Object {
				return inline(t, NewRef("url", "te]xt"))
			},
			want: "[te\\]xt](url)\n",
		},
		{
			name: "indexed_ref_and_index",
			build: func(t *testing.T) Object {
				return inline(t,
					NewIndexedRef("click", "home"),
					NewText(" "),
					NewRefIndex("home", "https://example.com"),
				)
			},
			want: "[click][home] [home]: https://example.com\n",
		},
		{
			name: "code_block",
			build: func(t *testing.T) Object {
				return NewCodeBlock("x = 1\n", "python")
			},
			want: "```python\nx = 1\n```\n",
		},
		{
			name: "front_matter_document",
			build: func(t *testing.T) Object {
				doc := NewDocument()
				doc.SetFrontMatter(NewFrontMatter("name: test\n", ""))
				return doc
			},
			want: "---\nname: test\n---\n",
		},
		{
			name: "list_item_with_status",
			build: func(t *testing.T) Object {
				list := NewUnorderedList()
				item := NewUnorderedListItem()
				item.SetStatus("x")
				item.SetLabel(inline(t, NewText("Done thing")))
				mustAdd(t, list, item)
				return list
			},
			want: "- [x] Done thing\n",
		},
		{
			name: "nested_lists_indent",
			build: func(t *testing.T) Object {
				list := NewUnorderedList()
				item1 := NewUnorderedListItem()
				item1.SetLabel(inline(t, NewText("item1")))
				nested := NewUnorderedList()
				nestedItem := NewUnorderedListItem()
				nestedItem.SetLabel(inline(t, NewText("nested1")))
				mustAdd(t, nested, nestedItem)
				mustAdd(t, item1, nested)
				item2 := NewUnorderedListItem()
				item2.SetLabel(inline(t, NewText("item2")))
				mustAdd(t, list, item1)
				mustAdd(t, list, item2)
				return list
			},
			want: "- item1\n  - nested1\n- item2\n",
		},
		{
			name: "ordered_list_crowns",
			build: func(t *testing.T) Object {
				list := NewOrderedList()
				for i, ordinal := range []string{"1", "2"} {
					item := NewOrderedListItem(ordinal)
					label := []string{"first", "second"}[i]
					item.SetLabel(inline(t, NewText(label)))
					mustAdd(t, list, item)
				}
				return list
			},
			want: "1. first\n2. second\n",
		},
		{
			name: "multi_line_label_wraps_to_crown",
			build: func(t *testing.T) Object {
				list := NewUnorderedList()
				item := NewUnorderedListItem()
				item.SetLabel(inline(t, NewText("line one\nline two\n")))
				mustAdd(t, list, item)
				return list
			},
			want: "- line one\n  line two\n",
		},
		{
			name: "line_break",
			build: func(t *testing.T) Object {
				sec := NewSection(0)
				mustAdd(t, sec, inline(t, NewText("a\n")))
				mustAdd(t, sec, NewLineBreak())
				mustAdd(t, sec, inline(t, NewText("b\n")))
				return sec
			},
			want: "a\n\nb\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Jotdown(tt.build(t), DefaultConfig())
			if got != tt.want {
				t.Errorf("Jotdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderListIndentConfig(t *testing.T) {
	t.Parallel()

	list := NewUnorderedList()
	item := NewUnorderedListItem()
	item.SetLabel(inline(t, NewText("outer")))
	nested := NewUnorderedList()
	nestedItem := NewUnorderedListItem()
	nestedItem.SetLabel(inline(t, NewText("inner")))
	mustAdd(t, nested, nestedItem)
	mustAdd(t, item, nested)
	mustAdd(t, list, item)

	got := Jotdown(list, Config{ListIndent: 4})
	want := "- outer\n    - inner\n"
	if got != want {
		t.Errorf("Jotdown() = %q, want %q", got, want)
	}
}

func TestSearchString(t *testing.T) {
	t.Parallel()

	sec := NewSection(1)
	sec.SetHeader(inline(t, NewText("  My   Title ")))
	mustAdd(t, sec, inline(t,
		NewText("body "),
		NewHashtag("tag"),
		NewText(" and "),
		NewRef("url", "link text"),
	))

	got := SearchString(sec)
	want := "My Title body #tag and link text"
	if got != want {
		t.Errorf("SearchString() = %q, want %q", got, want)
	}
}
