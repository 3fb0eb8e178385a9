package token

import "testing"

func loc(line, col int) Location {
	return Location{Filename: "test", Line: line, Col: col}
}

func TestRangeUnion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Range
		want Range
	}{
		{
			name: "disjoint",
			a:    Range{Begin: loc(1, 1), End: loc(1, 5)},
			b:    Range{Begin: loc(2, 1), End: loc(2, 8)},
			want: Range{Begin: loc(1, 1), End: loc(2, 8)},
		},
		{
			name: "same_line",
			a:    Range{Begin: loc(1, 4), End: loc(1, 5)},
			b:    Range{Begin: loc(1, 1), End: loc(1, 3)},
			want: Range{Begin: loc(1, 1), End: loc(1, 5)},
		},
		{
			name: "nowhere_left",
			a:    NowhereRange,
			b:    Range{Begin: loc(3, 1), End: loc(3, 2)},
			want: Range{Begin: loc(3, 1), End: loc(3, 2)},
		},
		{
			name: "nowhere_right",
			a:    Range{Begin: loc(3, 1), End: loc(3, 2)},
			b:    NowhereRange,
			want: Range{Begin: loc(3, 1), End: loc(3, 2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNowhere(t *testing.T) {
	t.Parallel()

	if !Nowhere.IsNowhere() {
		t.Error("Nowhere.IsNowhere() = false")
	}
	if loc(1, 1).IsNowhere() {
		t.Error("real location reports nowhere")
	}
	if !NowhereRange.IsNowhere() {
		t.Error("NowhereRange.IsNowhere() = false")
	}
}

func TestTokenString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tk   Token
		want string
	}{
		{
			name: "text_escapes_newline",
			tk:   Token{Kind: Text, Text: "hello\n"},
			want: `<Token:TEXT "hello\n">`,
		},
		{
			name: "ordered_item",
			tk:   Token{Kind: OrderedListItem, Level: 3, Ordinal: "2"},
			want: `<Token:OL_ITEM level=3 ordinal="2">`,
		},
		{
			name: "ref",
			tk:   Token{Kind: Ref, Link: "url", Text: "label"},
			want: `<Token:REF link="url" text="label">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.tk.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}
