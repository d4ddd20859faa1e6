//go:build go1.18
// +build go1.18

package parser

import (
	"strings"
	"testing"
)

// FuzzParseRecord tests the record parser with random inputs to find edge cases and panics.
// Run with: go test -fuzz=FuzzParseRecord -fuzztime=30s ./internal/parser
func FuzzParseRecord(f *testing.F) {
	seeds := []string{
		"",
		"a",
		"a,b,c",
		"\"quoted\"",
		"\"with,comma\"",
		"\"with\"\"quote\"",
		"\"multi\nline\"",
		",,",
		"\"",
		"\"\"\"\"",
		"a,b # c",
		"a\xff,\xfe",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		opts := DefaultOptions()
		opts.Comment = "#"
		_, _ = ParseRecord([]byte(input), opts)

		// Without quoting, trimming or NA values the fields rejoin to the input.
		raw := Options{Delim: ','}
		fields, err := ParseRecord([]byte(input), raw)
		if err != nil {
			t.Fatalf("ParseRecord(%q) error = %v", input, err)
		}
		if got := strings.Join(fields, ","); got != input {
			t.Errorf("fields of %q rejoin to %q", input, got)
		}
	})
}
