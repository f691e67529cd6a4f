package command

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Command
	}{
		{"set filename", "set_filename notes.txt", Command{Kind: SetFilename, Arg: "notes.txt"}},
		{"set filename empty", "set_filename", Command{Kind: SetFilename, Arg: ""}},
		{"save as", "save_as notes.txt", Command{Kind: SaveAs, Arg: "notes.txt"}},
		{"double quoted arg", `save_as "my notes.txt"`, Command{Kind: SaveAs, Arg: "my notes.txt"}},
		{"single quoted arg", "set_filename 'my notes.txt'", Command{Kind: SetFilename, Arg: "my notes.txt"}},
		{"escaped space", `save_as my\ notes.txt`, Command{Kind: SaveAs, Arg: "my notes.txt"}},
		{"leading whitespace", "   save_as notes.txt", Command{Kind: SaveAs, Arg: "notes.txt"}},
		{"tab separated", "save_as\tnotes.txt", Command{Kind: SaveAs, Arg: "notes.txt"}},
		{"quote inside token", `save_as a"b c"d`, Command{Kind: SaveAs, Arg: "ab cd"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmpty},
		{"blank", "   ", ErrEmpty},
		{"save as without name", "save_as", ErrMissingArgument},
		{"unknown verb", "frobnicate x y", ErrUnknownCommand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{`a b c`, []string{"a", "b", "c"}},
		{`"a b" c`, []string{"a b", "c"}},
		{`''`, []string{""}},
		{`a\\b`, []string{`a\b`}},
		{`"unterminated`, []string{"unterminated"}},
		{`trailing\`, []string{`trailing\`}},
	}
	for _, tt := range tests {
		got := tokenize(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("tokenize(%q) = %q, want %q", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("tokenize(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}
