// Package jotdown parses, renders, serializes and queries documents in the
// jotdown structured text format.
package jotdown

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jotdown-lang/jotdown/compiler"
	"github.com/jotdown-lang/jotdown/lexer"
	"github.com/jotdown-lang/jotdown/object"
	"github.com/jotdown-lang/jotdown/query"
)

// Parse reads jotdown text from r into a document. The filename is used for
// source locations and diagnostics.
func Parse(r io.Reader, filename string) (*object.Document, error) {
	return compiler.Compile(lexer.New(r, filename))
}

// ParseString parses a document from a string.
func ParseString(s string) (*object.Document, error) {
	return Parse(strings.NewReader(s), "<string>")
}

// Load parses the document stored at path.
func Load(path string) (*object.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, path)
}

// Render re-renders an object to jotdown surface syntax.
func Render(o object.Object, cfg object.Config) string {
	return object.Jotdown(o, cfg)
}

// Save atomically writes the document's rendering to path: the text goes to
// a uniquely named temporary file in the same directory, which then replaces
// the target.
func Save(doc *object.Document, path string, cfg object.Config) error {
	dir, base := filepath.Split(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.NewString()))
	if err := os.WriteFile(tmp, []byte(object.Jotdown(doc, cfg)), 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Query runs a path query against o, returning the selected objects.
func Query(o object.Object, q string) ([]object.Object, error) {
	parsed, err := query.Parse(q)
	if err != nil {
		return nil, err
	}
	return parsed.Select([]object.Object{o}), nil
}
