// Package parser splits a single record span into fields.
//
// The record span comes from the boundary scanner, so it never contains an
// unquoted line terminator. Quote handling matches the scanner exactly: every
// quote byte toggles the in-quote state. Doubled quotes are only collapsed
// afterwards, when the field value is extracted.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/shapestone/shape-core/pkg/ast"
	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-rowscan/internal/boundary"
	"github.com/shapestone/shape-rowscan/internal/tokenizer"
)

// ErrMaxFields is returned when a record has more fields than Options.MaxFields.
var ErrMaxFields = errors.New("record has too many fields")

// Options configures the parser behavior.
type Options struct {
	// Delim is the field delimiter. Default: ','
	Delim byte
	// Quote is the quote character. 0 disables quoting. Default: '"'
	Quote byte
	// Comment starts a trailing comment; the rest of the record is dropped.
	Comment string
	// TrimWS trims spaces, tabs, CR and NUL around unquoted content.
	TrimWS bool
	// EscapeDouble collapses doubled quotes inside quoted fields.
	EscapeDouble bool
	// NA lists field values that denote a missing value.
	NA []string
	// MaxFields limits the number of fields per record. 0 means no limit.
	MaxFields int
}

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{
		Delim:        ',',
		Quote:        '"',
		TrimWS:       true,
		EscapeDouble: true,
		NA:           []string{"NA"},
	}
}

// Field is one extracted field value.
type Field struct {
	Value  string
	Quoted bool // the field contained a quote character
	NA     bool // Value matched one of Options.NA
	Pos    ast.Position
}

// Parser splits one record into fields using a single token lookahead.
//
// Token kinds drive the grammar, but field bytes are always sliced from the
// span itself so that input which is not valid UTF-8 comes back unchanged.
type Parser struct {
	tokenizer *shapetokenizer.Tokenizer
	current   *shapetokenizer.Token
	hasToken  bool
	opts      Options

	span   []byte
	cursor int // byte offset of the current token in span
	next   int // byte offset just past the current token
}

// NewParser creates a parser for one record span with default options.
func NewParser(span []byte) *Parser {
	return NewParserWithOptions(span, DefaultOptions())
}

// NewParserWithOptions creates a parser for one record span.
func NewParserWithOptions(span []byte, opts Options) *Parser {
	tok := tokenizer.NewTokenizerWithOptions(tokenizer.Options{
		Delim: opts.Delim,
		Quote: opts.Quote,
	})
	tok.Initialize(string(span))

	p := &Parser{
		tokenizer: &tok,
		opts:      opts,
		span:      span,
	}
	p.advance()
	return p
}

// ParseRecord is a convenience wrapper returning only the field values.
// Missing values come back as empty strings.
func ParseRecord(span []byte, opts Options) ([]string, error) {
	fields, err := NewParserWithOptions(span, opts).ParseFields()
	if err != nil {
		return nil, err
	}
	values := make([]string, len(fields))
	for i, f := range fields {
		if !f.NA {
			values[i] = f.Value
		}
	}
	return values, nil
}

// Parse parses the record into an *ast.ArrayDataNode of *ast.LiteralNode
// fields. Missing values are literal nodes holding nil.
func (p *Parser) Parse() (*ast.ArrayDataNode, error) {
	fields, err := p.ParseFields()
	if err != nil {
		return nil, err
	}

	nodes := make([]ast.SchemaNode, 0, len(fields))
	for _, f := range fields {
		if f.NA {
			nodes = append(nodes, ast.NewLiteralNode(nil, f.Pos))
			continue
		}
		nodes = append(nodes, ast.NewLiteralNode(f.Value, f.Pos))
	}
	return ast.NewArrayDataNode(nodes, ast.ZeroPosition()), nil
}

// ParseFields parses the record into fields.
//
// Grammar:
//
//	Record  = [ Field { Delim Field } ] [ Comment ] ;
//	Field   = { Content | Quote | Newline | Delim-in-quotes } ;
//
// An empty span is a record with no fields.
func (p *Parser) ParseFields() ([]Field, error) {
	fields := make([]Field, 0, 8)
	if !p.hasToken {
		return fields, nil
	}

	var (
		raw      strings.Builder
		inQuote  bool
		quoted   bool
		started  bool
		fieldPos = p.position()
	)

	finish := func() error {
		if p.opts.MaxFields > 0 && len(fields) == p.opts.MaxFields {
			return fmt.Errorf("%w: more than %d", ErrMaxFields, p.opts.MaxFields)
		}
		fields = append(fields, p.extract(raw.String(), quoted, fieldPos))
		raw.Reset()
		quoted = false
		started = false
		return nil
	}

	for p.hasToken {
		tok := p.peek()
		if !started {
			fieldPos = p.position()
			started = true
		}

		switch tok.Kind() {
		case tokenizer.TokenQuote:
			inQuote = !inQuote
			quoted = true
			raw.Write(p.tokenBytes())

		case tokenizer.TokenDelim:
			if inQuote {
				raw.Write(p.tokenBytes())
				break
			}
			if err := finish(); err != nil {
				return nil, err
			}

		case tokenizer.TokenField:
			value := p.tokenBytes()
			if !inQuote && p.opts.Comment != "" {
				if i := bytes.Index(value, []byte(p.opts.Comment)); i >= 0 {
					raw.Write(value[:i])
					if raw.Len() > 0 || quoted || len(fields) > 0 {
						if err := finish(); err != nil {
							return nil, err
						}
					}
					return fields, nil
				}
			}
			raw.Write(value)

		default:
			raw.Write(p.tokenBytes())
		}
		p.advance()
	}

	// A trailing delimiter leaves one more, empty, field.
	if !started {
		fieldPos = p.position()
	}
	if err := finish(); err != nil {
		return nil, err
	}
	return fields, nil
}

// extract turns the raw text of one field into its value.
func (p *Parser) extract(raw string, quoted bool, pos ast.Position) Field {
	b := []byte(raw)
	begin, end := 0, len(b)
	if p.opts.TrimWS {
		begin, end = boundary.TrimWhitespace(b, begin, end)
	}

	q := p.opts.Quote
	if quoted && q != 0 && end-begin >= 2 && b[begin] == q && b[end-1] == q {
		begin++
		end--
	} else if quoted && q != 0 && end-begin >= 1 && b[begin] == q {
		// Unterminated quote: the rest of the record is the value.
		begin++
	}

	value := string(b[begin:end])
	if quoted && q != 0 && p.opts.EscapeDouble {
		pair := string([]byte{q, q})
		value = strings.ReplaceAll(value, pair, string(q))
	}

	f := Field{Value: value, Quoted: quoted, Pos: pos}
	if !quoted {
		f.NA = p.isNA(b[begin:end])
	}
	return f
}

// isNA reports whether the field is exactly one of the NA values.
func (p *Parser) isNA(b []byte) bool {
	for _, na := range p.opts.NA {
		if len(b) == len(na) && boundary.Matches(b, na) {
			return true
		}
	}
	return false
}

// Helper methods

// peek returns current token without advancing.
func (p *Parser) peek() *shapetokenizer.Token {
	return p.current
}

// advance moves to next token and the span bytes it covers.
func (p *Parser) advance() {
	p.cursor = p.next
	token, ok := p.tokenizer.NextToken()
	if ok {
		p.current = token
		p.hasToken = true
		p.next = p.cursor + p.tokenWidth(token)
	} else {
		p.hasToken = false
		p.current = nil
	}
}

// tokenWidth returns the number of span bytes behind tok.
func (p *Parser) tokenWidth(tok *shapetokenizer.Token) int {
	switch tok.Kind() {
	case tokenizer.TokenDelim, tokenizer.TokenQuote:
		return 1
	case tokenizer.TokenNewline:
		return len(tok.ValueString())
	default:
		opts := tokenizer.Options{Delim: p.opts.Delim, Quote: p.opts.Quote}
		return opts.FieldEnd(p.span[p.cursor:])
	}
}

// tokenBytes returns the span bytes of the current token.
func (p *Parser) tokenBytes() []byte {
	return p.span[p.cursor:p.next]
}

// position returns current position for AST nodes.
func (p *Parser) position() ast.Position {
	if p.hasToken && p.current != nil {
		return ast.NewPosition(
			p.current.Offset(),
			p.current.Row(),
			p.current.Column(),
		)
	}
	return ast.ZeroPosition()
}
