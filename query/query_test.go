package query

import (
	"errors"
	"strings"
	"testing"

	"github.com/jotdown-lang/jotdown/compiler"
	"github.com/jotdown-lang/jotdown/lexer"
	"github.com/jotdown-lang/jotdown/object"
)

const fixture = `# Alpha
Hello @world and &anchor1. #urgent

- item1
  - nested1
- [x] done

1. first
2. second

## Beta
#calm text [docs][home]

[home]: https://example.com/docs
`

func parseFixture(t *testing.T) *object.Document {
	t.Helper()
	doc, err := compiler.Compile(lexer.New(strings.NewReader(fixture), "test"))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	return doc
}

func run(t *testing.T, doc *object.Document, q string) []object.Object {
	t.Helper()
	parsed, err := Parse(q)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", q, err)
	}
	return parsed.Select([]object.Object{doc})
}

func TestQuerySelectors(t *testing.T) {
	t.Parallel()

	doc := parseFixture(t)

	tests := []struct {
		name  string
		query string
		count int
		check func(t *testing.T, got []object.Object)
	}{
		{
			name:  "unordered_lists",
			query: "ul",
			count: 2,
		},
		{
			name:  "nested_item_by_level",
			query: "ul/uli/level/2",
			count: 1,
			check: func(t *testing.T, got []object.Object) {
				item := got[0].(*object.UnorderedListItem)
				if label := object.SearchString(item.Label()); label != "nested1" {
					t.Errorf("selected item label = %q, want nested1", label)
				}
			},
		},
		{
			name:  "task",
			query: "task",
			count: 1,
			check: func(t *testing.T, got []object.Object) {
				if got[0].(*object.UnorderedListItem).Status() != "x" {
					t.Errorf("task item status = %q, want x", got[0].(*object.UnorderedListItem).Status())
				}
			},
		},
		{
			name:  "status_exact",
			query: "status/x",
			count: 1,
		},
		{
			name:  "status_mismatch",
			query: "status/o",
			count: 0,
		},
		{
			name:  "hashtag_by_name",
			query: "#urgent",
			count: 1,
		},
		{
			name:  "hashtag_any",
			query: "hashtag",
			count: 2,
		},
		{
			name:  "anchor_by_name",
			query: "&anchor1",
			count: 1,
		},
		{
			name:  "reference_by_link_substring",
			query: "@world",
			count: 1,
		},
		{
			name:  "reference_matches_resolved_index_link",
			query: "@example",
			count: 1,
			check: func(t *testing.T, got []object.Object) {
				if _, ok := got[0].(*object.IndexedRef); !ok {
					t.Errorf("selected = %T, want *IndexedRef", got[0])
				}
			},
		},
		{
			name:  "section_by_level",
			query: "section/level/2",
			count: 1,
			check: func(t *testing.T, got []object.Object) {
				sec := got[0].(*object.Section)
				if header := object.SearchString(sec.Header()); header != "Beta" {
					t.Errorf("section header = %q, want Beta", header)
				}
			},
		},
		{
			name:  "search_prefers_label",
			query: "section/search/Beta",
			count: 1,
		},
		{
			name:  "level_after_section_stays_in_set",
			query: "section/level/1",
			count: 1,
			check: func(t *testing.T, got []object.Object) {
				sec, ok := got[0].(*object.Section)
				if !ok {
					t.Fatalf("selected = %T, want *Section", got[0])
				}
				if header := object.SearchString(sec.Header()); header != "Alpha" {
					t.Errorf("section header = %q, want Alpha", header)
				}
			},
		},
		{
			name:  "ordinal",
			query: "ol/oli/ordinal/2",
			count: 1,
			check: func(t *testing.T, got []object.Object) {
				if label := object.SearchString(got[0].(*object.OrderedListItem).Label()); label != "second" {
					t.Errorf("ordinal 2 label = %q, want second", label)
				}
			},
		},
		{
			name:  "all_items",
			query: "li",
			count: 5,
		},
		{
			name:  "offset_first",
			query: "li/0",
			count: 1,
			check: func(t *testing.T, got []object.Object) {
				if label := object.SearchString(object.LabelOf(got[0])); label != "item1" {
					t.Errorf("first item = %q, want item1", label)
				}
			},
		},
		{
			name:  "offset_negative",
			query: "li/-1",
			count: 1,
			check: func(t *testing.T, got []object.Object) {
				if label := object.SearchString(object.LabelOf(got[0])); label != "second" {
					t.Errorf("last item = %q, want second", label)
				}
			},
		},
		{
			name:  "offset_out_of_range_is_empty",
			query: "li/10",
			count: 0,
		},
		{
			name:  "slice_window",
			query: "li/1:3",
			count: 2,
		},
		{
			name:  "slice_open_begin",
			query: "li/:2",
			count: 2,
		},
		{
			name:  "slice_negative_begin",
			query: "li/-2:",
			count: 2,
		},
		{
			name:  "parent_of_nested_item",
			query: "uli/level/2/parent",
			count: 1,
			check: func(t *testing.T, got []object.Object) {
				if _, ok := got[0].(*object.UnorderedList); !ok {
					t.Errorf("parent = %T, want *UnorderedList", got[0])
				}
			},
		},
		{
			name:  "antecedents_walk_to_root",
			query: "uli/level/2/antecedents",
			count: 5,
			check: func(t *testing.T, got []object.Object) {
				if _, ok := got[len(got)-1].(*object.Document); !ok {
					t.Errorf("last antecedent = %T, want *Document", got[len(got)-1])
				}
			},
		},
		{
			name:  "contains_keeps_items_with_sublists",
			query: "li/contains/(ul)",
			count: 1,
			check: func(t *testing.T, got []object.Object) {
				if label := object.SearchString(object.LabelOf(got[0])); label != "item1" {
					t.Errorf("containing item = %q, want item1", label)
				}
			},
		},
		{
			name:  "empty_propagation",
			query: "#missing/children",
			count: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := run(t, doc, tt.query)
			if len(got) != tt.count {
				t.Fatalf("Select(%q) returned %d objects, want %d", tt.query, len(got), tt.count)
			}
			if tt.check != nil && len(got) > 0 {
				tt.check(t, got)
			}
		})
	}
}

func TestNotIsSetDifference(t *testing.T) {
	t.Parallel()

	set := []object.Object{
		object.NewHashtag("alpha"),
		object.NewHashtag("urgent"),
		object.NewHashtag("beta"),
	}

	q, err := Parse("not/(#urgent)")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	got := q.Select(set)

	if len(got) != 2 {
		t.Fatalf("Select() returned %d objects, want 2", len(got))
	}
	for _, o := range got {
		if o.(*object.Hashtag).Tag() == "urgent" {
			t.Error("excluded hashtag still present")
		}
	}
}

func TestChildrenIncludesLabels(t *testing.T) {
	t.Parallel()

	doc := parseFixture(t)

	sections := run(t, doc, "section/level/2")
	if len(sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(sections))
	}

	q, err := Parse("children")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	kids := q.Select(sections)

	if len(kids) == 0 {
		t.Fatal("no children selected")
	}
	if _, ok := kids[0].(*object.TextContent); !ok {
		t.Errorf("first child = %T, want header *TextContent", kids[0])
	}
}

func TestDescendantsDeduplicated(t *testing.T) {
	t.Parallel()

	doc := parseFixture(t)

	q, err := Parse("descendants")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	// Seeding the input with the document twice must not duplicate output.
	got := q.Select([]object.Object{doc, doc})
	seen := map[object.Object]bool{}
	for _, o := range got {
		if seen[o] {
			t.Fatalf("duplicate object in descendants: %v", o.Type())
		}
		seen[o] = true
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
	}{
		{name: "unrecognized_token", query: "bogus"},
		{name: "level_requires_integer", query: "level/x"},
		{name: "level_missing_argument", query: "level"},
		{name: "not_missing_subquery", query: "not"},
		{name: "unbalanced_group", query: "not/(#a"},
		{name: "bad_search_pattern", query: "search/([)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Parse(tt.query); !errors.Is(err, ErrQuery) {
				t.Errorf("Parse(%q) error = %v, want ErrQuery", tt.query, err)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []qtoken
	}{
		{
			name:  "plain_segments",
			input: "a/b/c",
			want:  []qtoken{{text: "a"}, {text: "b"}, {text: "c"}},
		},
		{
			name:  "escaped_slash_kept_in_segment",
			input: `search/foo\/bar`,
			want:  []qtoken{{text: "search"}, {text: "foo/bar"}},
		},
		{
			name:  "group_segment",
			input: "not/(#urgent)",
			want:  []qtoken{{text: "not"}, {text: "#urgent", group: true}},
		},
		{
			name:  "nested_group_preserved",
			input: "contains/(li/contains/(ul))",
			want:  []qtoken{{text: "contains"}, {text: "li/contains/(ul)", group: true}},
		},
		{
			name:  "empty_segments_skipped",
			input: "a//b/",
			want:  []qtoken{{text: "a"}, {text: "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tokenize(tt.input)
			if err != nil {
				t.Fatalf("tokenize(%q) error = %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("token[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
