package dsl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ByLCY/billboard/layout"
)

var (
	inputLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Newline", Pattern: `\r?\n`},
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Word", Pattern: `[^ \t\r\n]+`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(inputLexer),
		participle.Elide("Whitespace"),
	)
)

// Document is the root AST node of a billboard input file: a case count
// followed by one "width height word..." line per case. Lines are kept as raw
// fields so that anything after the counted cases is never interpreted.
type Document struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Count Int            `parser:"Newline* @Word"`
	Lines []*Line        `parser:"( Newline+ @@? )*"`
}

// Line is one non-blank input line after the count.
type Line struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Fields []string       `parser:"@Word+"`
}

// Case is a single billboard line with its geometry decoded.
type Case struct {
	Pos    lexer.Position
	Width  int
	Height int
	Words  []string
}

// Int is a decimal integer token.
type Int int

// Capture implements participle.Capture.
func (i *Int) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("integer capture requires value")
	}
	n, err := strconv.Atoi(values[0])
	if err != nil {
		return fmt.Errorf("expected integer, got %q", values[0])
	}
	*i = Int(n)
	return nil
}

// Case decodes the line as "width height word...".
func (l *Line) Case() (Case, error) {
	if len(l.Fields) < 2 {
		return Case{}, fmt.Errorf("%s: expected width and height, got %q", l.Pos, strings.Join(l.Fields, " "))
	}
	width, err := strconv.Atoi(l.Fields[0])
	if err != nil {
		return Case{}, fmt.Errorf("%s: width: expected integer, got %q", l.Pos, l.Fields[0])
	}
	height, err := strconv.Atoi(l.Fields[1])
	if err != nil {
		return Case{}, fmt.Errorf("%s: height: expected integer, got %q", l.Pos, l.Fields[1])
	}
	return Case{Pos: l.Pos, Width: width, Height: height, Words: l.Fields[2:]}, nil
}

// Cases decodes the first Count lines. Lines past Count are ignored.
func (d *Document) Cases() ([]Case, error) {
	if d == nil {
		return nil, fmt.Errorf("document is nil")
	}
	count := int(d.Count)
	if count < 0 {
		return nil, fmt.Errorf("%s: case count must not be negative, got %d", d.Pos, count)
	}
	if len(d.Lines) < count {
		return nil, fmt.Errorf("expected %d cases, found %d", count, len(d.Lines))
	}
	cases := make([]Case, 0, count)
	for _, l := range d.Lines[:count] {
		c, err := l.Case()
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// Parse parses billboard input from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseString parses billboard input from a string.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}

// Billboards converts the first Count cases into layout records.
// Records are not validated here so that a bad case only fails its own computation.
func (d *Document) Billboards() ([]layout.Billboard, error) {
	cases, err := d.Cases()
	if err != nil {
		return nil, err
	}
	boards := make([]layout.Billboard, 0, len(cases))
	for _, c := range cases {
		boards = append(boards, layout.FromWords(c.Width, c.Height, c.Words))
	}
	return boards, nil
}

// ParseBillboards is shorthand for Parse followed by Document.Billboards.
func ParseBillboards(r io.Reader) ([]layout.Billboard, error) {
	doc, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return doc.Billboards()
}
