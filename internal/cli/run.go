package cli

import (
	"fmt"
	"io"
	"os"

	gojson "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/theory/jsonpath"

	"github.com/jotdown-lang/jotdown/compiler"
	"github.com/jotdown-lang/jotdown/internal/exit"
	"github.com/jotdown-lang/jotdown/lexer"
	"github.com/jotdown-lang/jotdown/object"
	"github.com/jotdown-lang/jotdown/query"
	"github.com/jotdown-lang/jotdown/token"
)

// Run executes the configured command, writing output to w.
func Run(cfg *Config, w io.Writer) *exit.Result {
	switch cfg.Command {
	case CommandTokens:
		return runTokens(cfg, w)
	case CommandRender:
		return runRender(cfg, w)
	case CommandJSON:
		return runJSON(cfg, w)
	case CommandQuery:
		return runQuery(cfg, w)
	case CommandJSONPath:
		return runJSONPath(cfg, w)
	case CommandFrontMatter:
		return runFrontMatter(cfg, w)
	}
	return exit.Errorf("Error: %v: %s\n", ErrUnknownOption, cfg.Command)
}

func openInput(cfg *Config) (io.ReadCloser, string, *exit.Result) {
	if cfg.Input == "-" {
		return io.NopCloser(os.Stdin), "<stdin>", nil
	}
	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, "", exit.Errorf("Error: %v\n", err)
	}
	return f, cfg.Input, nil
}

func parseInput(cfg *Config) (*object.Document, *exit.Result) {
	r, name, res := openInput(cfg)
	if res != nil {
		return nil, res
	}
	defer r.Close()
	doc, err := compiler.Compile(lexer.New(r, name))
	if err != nil {
		return nil, exit.Errorf("Error: %v\n", err)
	}
	return doc, nil
}

func runTokens(cfg *Config, w io.Writer) *exit.Result {
	r, name, res := openInput(cfg)
	if res != nil {
		return res
	}
	defer r.Close()
	lex := lexer.New(r, name)
	for {
		tk, err := lex.Next()
		if err != nil {
			return exit.Errorf("Error: %v\n", err)
		}
		fmt.Fprintln(w, tk.String())
		if tk.Kind == token.End {
			return nil
		}
	}
}

func runRender(cfg *Config, w io.Writer) *exit.Result {
	doc, res := parseInput(cfg)
	if res != nil {
		return res
	}
	fmt.Fprint(w, object.Jotdown(doc, cfg.RenderConfig()))
	return nil
}

func marshalJSON(v any, compact bool) ([]byte, error) {
	if compact {
		return gojson.Marshal(v)
	}
	return gojson.MarshalIndent(v, "", "  ")
}

func runJSON(cfg *Config, w io.Writer) *exit.Result {
	doc, res := parseInput(cfg)
	if res != nil {
		return res
	}
	data, err := marshalJSON(doc, cfg.Compact)
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}
	fmt.Fprintf(w, "%s\n", data)
	return nil
}

func runQuery(cfg *Config, w io.Writer) *exit.Result {
	doc, res := parseInput(cfg)
	if res != nil {
		return res
	}
	q, err := query.Parse(cfg.Expression)
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}
	rc := cfg.RenderConfig()
	for _, o := range q.Select([]object.Object{doc}) {
		fmt.Fprint(w, object.Jotdown(o, rc))
	}
	return nil
}

func runJSONPath(cfg *Config, w io.Writer) *exit.Result {
	doc, res := parseInput(cfg)
	if res != nil {
		return res
	}
	path, err := jsonpath.Parse(cfg.Expression)
	if err != nil {
		return exit.Errorf("Error: invalid JSONPath %s: %v\n", cfg.Expression, err)
	}
	serialized, err := gojson.Marshal(doc)
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}
	var data any
	if err := gojson.Unmarshal(serialized, &data); err != nil {
		return exit.Errorf("Error: %v\n", err)
	}
	for _, result := range path.Select(data) {
		out, err := marshalJSON(result, cfg.Compact)
		if err != nil {
			return exit.Errorf("Error: %v\n", err)
		}
		fmt.Fprintf(w, "%s\n", out)
	}
	return nil
}

func runFrontMatter(cfg *Config, w io.Writer) *exit.Result {
	doc, res := parseInput(cfg)
	if res != nil {
		return res
	}
	fm := doc.FrontMatter()
	if fm == nil {
		return nil
	}
	var decoded any
	if err := fm.Decode(&decoded); err != nil {
		return exit.Errorf("Error: %v\n", err)
	}
	out, err := yaml.Marshal(decoded)
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}
	fmt.Fprintf(w, "%s", out)
	return nil
}
