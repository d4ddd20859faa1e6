// Package tokenizer splits a single record span into field tokens using Shape's
// tokenizer framework.
package tokenizer

// Token type constants for delimited records.
//
// The tokenizer emits character-level tokens only. Quote state and field
// boundaries are decided by the record parser, which applies the same
// toggle-on-every-quote rule as the boundary scanner.
const (
	// Structural tokens
	TokenDelim   = "Delim"   // field separator
	TokenQuote   = "Quote"   // quote character
	TokenNewline = "Newline" // \r\n, \n or \r, only seen inside quoted fields

	// Field content token
	TokenField = "Field" // run of bytes that are none of the above
)
