// Package cli implements the jotdown command line tool: argument parsing
// and the subcommands operating on documents.
package cli

import (
	"errors"
	"flag"
	"io"

	"github.com/jotdown-lang/jotdown/internal/exit"
	"github.com/jotdown-lang/jotdown/object"
)

var (
	ErrNoArguments   = errors.New("no arguments provided")
	ErrNoCommand     = errors.New("no command specified")
	ErrNoInput       = errors.New("no input file specified")
	ErrNoExpression  = errors.New("no expression specified")
	ErrUnknownOption = errors.New("unknown command")
)

// Command names accepted on the command line.
const (
	CommandRender      = "render"
	CommandJSON        = "json"
	CommandTokens      = "tokens"
	CommandQuery       = "query"
	CommandJSONPath    = "jsonpath"
	CommandFrontMatter = "frontmatter"
)

// Config represents the parsed command line of the jotdown tool.
type Config struct {
	Command string

	// Expression is the query or JSONPath argument for the commands that
	// take one.
	Expression string

	// Input is the document path; "-" reads standard input.
	Input string

	// Rendering options.
	ListIndent int
	Compact    bool
}

// RenderConfig returns the object rendering configuration derived from the
// flags.
func (c *Config) RenderConfig() object.Config {
	cfg := object.DefaultConfig()
	if c.ListIndent > 0 {
		cfg.ListIndent = c.ListIndent
	}
	return cfg
}

// Usage returns the command line help text.
func Usage() string {
	return `usage: jotdown <command> [flags] <file>

Commands:
  render       parse a document and re-render it
  json         parse a document and print its JSON serialization
  tokens       print the document's token stream
  query <q>    run a path query and render the selected objects
  jsonpath <p> run a JSONPath expression over the JSON serialization
  frontmatter  decode and print the document's front matter

Flags:
  -indent n    list indentation width for rendering (default 2)
  -compact     print JSON without indentation

A file argument of "-" reads from standard input.
`
}

// Parse parses command-line arguments and returns a validated Config. If
// parsing fails or help is requested, it returns a nil config and an exit
// result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}
	if len(args) < 2 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoCommand, Usage())
	}

	command := args[1]
	switch command {
	case CommandRender, CommandJSON, CommandTokens, CommandQuery, CommandJSONPath, CommandFrontMatter:
	case "-h", "-help", "--help", "help":
		return nil, exit.Success(Usage())
	default:
		return nil, exit.Errorf("Error: %v: %s\n\n%s", ErrUnknownOption, command, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var (
		indent  = fs.Int("indent", 0, "List indentation width for rendering")
		compact = fs.Bool("compact", false, "Print JSON without indentation")
	)

	if err := fs.Parse(args[2:]); err != nil {
		if err == flag.ErrHelp {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	rest := fs.Args()
	config := &Config{
		Command:    command,
		ListIndent: *indent,
		Compact:    *compact,
	}

	switch command {
	case CommandQuery, CommandJSONPath:
		if len(rest) == 0 {
			return nil, exit.Errorf("Error: %v\n\n%s", ErrNoExpression, Usage())
		}
		config.Expression = rest[0]
		rest = rest[1:]
	}

	if len(rest) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoInput, Usage())
	}
	if len(rest) > 1 {
		return nil, exit.Errorf("Error: unexpected argument: %s\n\n%s", rest[1], Usage())
	}
	config.Input = rest[0]

	return config, nil
}
