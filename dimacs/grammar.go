package dimacs

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Line keywords.
const (
	keyProblem = "p"
	keyEdge    = "e"
	keyStart   = "s"
	keyTarget  = "t"
	keyAnswer  = "a"
)

// Rule order matters: Comment must win over Ident for "c ..." lines, and a
// single-letter Keyword must not swallow the head of a longer word.
var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `c(?:[ \t][^\n]*)?(?:\r?\n|$)`},
	{Name: "Keyword", Pattern: `[pesta]\b`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type document struct {
	Lines []*line `parser:"@@*"`
}

type line struct {
	Pos    lexer.Position
	Key    string `parser:"@Keyword"`
	Word   string `parser:"@Ident?"`
	Values []int  `parser:"@Int*"`
}

var parseDocument = participle.MustBuild[document](
	participle.Lexer(lineLexer),
	participle.Elide("Comment", "Whitespace"),
)

// parse runs the shared grammar over r. name labels positions in errors.
func parse(name string, r io.Reader) (*document, error) {
	doc, err := parseDocument.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return doc, nil
}

// malformed reports a line whose shape does not fit its keyword.
func malformed(l *line, want string) error {
	return fmt.Errorf("%w: %s: %q line wants %s", ErrMalformedLine, l.Pos, l.Key, want)
}

// unexpected reports a keyword that does not belong to the format.
func unexpected(l *line, format string) error {
	return fmt.Errorf("%w: %s: %q in %s input", ErrUnexpectedLine, l.Pos, l.Key, format)
}
