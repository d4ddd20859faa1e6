package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Options configures the tokenizer behavior.
type Options struct {
	// Delim is the field delimiter. Default: ','
	Delim byte
	// Quote is the quote character. 0 disables quoting. Default: '"'
	Quote byte
}

// DefaultOptions returns default tokenizer options.
func DefaultOptions() Options {
	return Options{
		Delim: ',',
		Quote: '"',
	}
}

// NewTokenizer creates a tokenizer with comma delimiter and double quotes.
func NewTokenizer() tokenizer.Tokenizer {
	return NewTokenizerWithOptions(DefaultOptions())
}

// NewTokenizerWithOptions creates a tokenizer with custom options.
//
// Matchers are tried in order of specificity:
//  1. Newlines (CRLF before LF and CR to match the longer sequence first)
//  2. Delimiter
//  3. Quote, when enabled
//  4. Field content (any other byte run)
func NewTokenizerWithOptions(opts Options) tokenizer.Tokenizer {
	matchers := []tokenizer.Matcher{
		tokenizer.StringMatcherFunc(TokenNewline, "\r\n"),
		tokenizer.StringMatcherFunc(TokenNewline, "\n"),
		tokenizer.StringMatcherFunc(TokenNewline, "\r"),
		tokenizer.StringMatcherFunc(TokenDelim, string(rune(opts.Delim))),
	}
	if opts.Quote != 0 {
		matchers = append(matchers, tokenizer.StringMatcherFunc(TokenQuote, string(rune(opts.Quote))))
	}
	matchers = append(matchers, FieldContentMatcher(opts))

	return tokenizer.NewTokenizerWithoutWhitespace(matchers...)
}

// FieldContentMatcher matches runs of bytes that are not the delimiter, the
// quote character, CR or LF.
//
// Grammar:
//
//	Field = Character+ ;
//	Character = <any byte except delimiter, quote, CR, LF> ;
//
// Performance: Uses ByteStream for fast scanning when available.
func FieldContentMatcher(opts Options) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if byteStream, ok := stream.(tokenizer.ByteStream); ok {
			return fieldContentMatcherByte(byteStream, opts)
		}
		return fieldContentMatcherRune(stream, opts)
	}
}

// stops reports whether c ends a field content run.
func (o Options) stops(c rune) bool {
	return c == rune(o.Delim) || (o.Quote != 0 && c == rune(o.Quote)) || c == '\n' || c == '\r'
}

// FieldEnd returns the length of the field content run at the start of b,
// the same run FieldContentMatcher turns into a TokenField. Token values are
// runes, so callers that must keep the exact bytes slice b with it instead.
func (o Options) FieldEnd(b []byte) int {
	for i, c := range b {
		if o.stops(rune(c)) {
			return i
		}
	}
	return len(b)
}

// fieldContentMatcherByte uses ByteStream for optimal performance.
func fieldContentMatcherByte(stream tokenizer.ByteStream, opts Options) *tokenizer.Token {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok || opts.stops(rune(b)) {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenField, []rune(string(value)))
}

// fieldContentMatcherRune is the fallback rune-based implementation.
func fieldContentMatcherRune(stream tokenizer.Stream, opts Options) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok || opts.stops(r) {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(TokenField, value)
}
