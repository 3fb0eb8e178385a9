package object

import (
	json "github.com/goccy/go-json"

	"github.com/jotdown-lang/jotdown/token"
)

// ToJSON renders o as a canonical, order-preserving JSON tree.
func ToJSON(o Object) (string, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// contentsJSON marshals an empty contents slice as [] rather than null.
func contentsJSON(children []Object) []Object {
	if children == nil {
		return []Object{}
	}
	return children
}

// rangeJSON omits the range field entirely for objects built away from any
// source position.
func rangeJSON(r token.Range) *token.Range {
	if r.IsNowhere() {
		return nil
	}
	return &r
}

func (t *Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string       `json:"type"`
		Range *token.Range `json:"range,omitempty"`
		Text  string       `json:"text"`
	}{t.Type().String(), rangeJSON(t.rng), t.text})
}

func (h *Hashtag) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string       `json:"type"`
		Range *token.Range `json:"range,omitempty"`
		Tag   string       `json:"tag"`
	}{h.Type().String(), rangeJSON(h.rng), h.tag})
}

func (a *Anchor) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string       `json:"type"`
		Range *token.Range `json:"range,omitempty"`
		Name  string       `json:"name"`
	}{a.Type().String(), rangeJSON(a.rng), a.name})
}

func (c *Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string       `json:"type"`
		Range *token.Range `json:"range,omitempty"`
		Code  string       `json:"code"`
	}{c.Type().String(), rangeJSON(c.rng), c.code})
}

func (r *Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string       `json:"type"`
		Range *token.Range `json:"range,omitempty"`
		Link  string       `json:"link"`
		Text  string       `json:"text,omitempty"`
	}{r.Type().String(), rangeJSON(r.rng), r.link, refText(r)})
}

// refText omits the text field when it just repeats the link.
func refText(r *Ref) string {
	if r.text == r.link {
		return ""
	}
	return r.text
}

func (r *IndexedRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string       `json:"type"`
		Range *token.Range `json:"range,omitempty"`
		Text  string       `json:"text"`
		Index string       `json:"index"`
		Link  string       `json:"link,omitempty"`
	}{r.Type().String(), rangeJSON(r.rng), r.text, r.indexName, r.resolvedLink})
}

func (r *RefIndex) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string       `json:"type"`
		Range *token.Range `json:"range,omitempty"`
		Name  string       `json:"name"`
		Link  string       `json:"link"`
	}{r.Type().String(), rangeJSON(r.rng), r.name, r.link})
}

func (l *LineBreak) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string       `json:"type"`
		Range *token.Range `json:"range,omitempty"`
	}{l.Type().String(), rangeJSON(l.rng)})
}

func (c *CodeBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string       `json:"type"`
		Range    *token.Range `json:"range,omitempty"`
		Code     string       `json:"code"`
		Language string       `json:"language"`
	}{c.Type().String(), rangeJSON(c.rng), c.code, c.language})
}

func (f *FrontMatter) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string       `json:"type"`
		Range    *token.Range `json:"range,omitempty"`
		Code     string       `json:"code"`
		Language string       `json:"language"`
	}{f.Type().String(), rangeJSON(f.rng), f.code, f.language})
}

func (t *TextContent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string       `json:"type"`
		Range    *token.Range `json:"range,omitempty"`
		Contents []Object     `json:"contents"`
	}{t.Type().String(), rangeJSON(t.rng), contentsJSON(t.children)})
}

func (s *Section) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string       `json:"type"`
		Range    *token.Range `json:"range,omitempty"`
		Level    int          `json:"level"`
		Header   *TextContent `json:"header"`
		Contents []Object     `json:"contents"`
	}{s.Type().String(), rangeJSON(s.rng), s.level, s.header, contentsJSON(s.children)})
}

func (l *OrderedList) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string       `json:"type"`
		Range    *token.Range `json:"range,omitempty"`
		Contents []Object     `json:"contents"`
	}{l.Type().String(), rangeJSON(l.rng), contentsJSON(l.children)})
}

func (l *UnorderedList) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string       `json:"type"`
		Range    *token.Range `json:"range,omitempty"`
		Contents []Object     `json:"contents"`
	}{l.Type().String(), rangeJSON(l.rng), contentsJSON(l.children)})
}

func (li *OrderedListItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string       `json:"type"`
		Range    *token.Range `json:"range,omitempty"`
		Ordinal  string       `json:"ordinal"`
		Status   string       `json:"status,omitempty"`
		Label    *TextContent `json:"label"`
		Contents []Object     `json:"contents"`
	}{li.Type().String(), rangeJSON(li.rng), li.ordinal, li.status, li.label, contentsJSON(li.children)})
}

func (li *UnorderedListItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string       `json:"type"`
		Range    *token.Range `json:"range,omitempty"`
		Status   string       `json:"status,omitempty"`
		Label    *TextContent `json:"label"`
		Contents []Object     `json:"contents"`
	}{li.Type().String(), rangeJSON(li.rng), li.status, li.label, contentsJSON(li.children)})
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string       `json:"type"`
		Range       *token.Range `json:"range,omitempty"`
		FrontMatter *FrontMatter `json:"front_matter,omitempty"`
		Contents    []Object     `json:"contents"`
	}{d.Type().String(), rangeJSON(d.rng), d.frontMatter, contentsJSON(d.children)})
}
