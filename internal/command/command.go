// Package command parses the one-line command language typed into the
// command buffer: a verb followed by positional arguments, with optional
// quoting for arguments that contain whitespace.
package command

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmpty           = errors.New("empty command")
	ErrMissingArgument = errors.New("missing argument")
	ErrUnknownCommand  = errors.New("unknown command")
)

type Kind int

const (
	// SetFilename sets or clears the current document path.
	SetFilename Kind = iota
	// SaveAs sets the document path and persists the document to it.
	SaveAs
)

type Command struct {
	Kind Kind
	Arg  string
}

// Parse turns one line of input into a Command. Grammar failures are
// recoverable: callers report them and carry on.
func Parse(line string) (Command, error) {
	tokens := tokenize(line)
	if len(tokens) == 0 {
		return Command{}, ErrEmpty
	}
	verb, args := tokens[0], tokens[1:]
	switch verb {
	case "set_filename":
		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}
		return Command{Kind: SetFilename, Arg: arg}, nil
	case "save_as":
		if len(args) == 0 {
			return Command{}, fmt.Errorf("save_as: %w", ErrMissingArgument)
		}
		return Command{Kind: SaveAs, Arg: args[0]}, nil
	default:
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, verb)
	}
}

// tokenize splits on whitespace, keeping single- or double-quoted tokens
// intact. Backslash escapes the next rune inside double quotes and outside
// quotes. An unterminated quote just ends the token at end of input.
func tokenize(line string) []string {
	var tokens []string
	var cur strings.Builder
	started := false
	quote := rune(0)
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			started = true
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '"' || r == '\'':
			started = true
			quote = r
		case r == ' ' || r == '\t':
			if started {
				tokens = append(tokens, cur.String())
				cur.Reset()
				started = false
			}
		default:
			started = true
			cur.WriteRune(r)
		}
	}
	if escaped {
		cur.WriteRune('\\')
	}
	if started {
		tokens = append(tokens, cur.String())
	}
	return tokens
}
