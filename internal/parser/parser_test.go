package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shapestone/shape-core/pkg/ast"
)

// TestParseRecord tests splitting single record spans with default options.
func TestParseRecord(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantFields []string
	}{
		{"empty span", "", []string{}},
		{"single field", "hello", []string{"hello"}},
		{"three fields", "a,b,c", []string{"a", "b", "c"}},
		{"empty fields", ",,", []string{"", "", ""}},
		{"trailing delimiter", "a,", []string{"a", ""}},
		{"quoted field", `"a",b`, []string{"a", "b"}},
		{"quoted delimiter", `"x,y",z`, []string{"x,y", "z"}},
		{"embedded lf", "\"line1\nline2\",x", []string{"line1\nline2", "x"}},
		{"embedded crlf", "\"a\r\nb\"", []string{"a\r\nb"}},
		{"doubled quote", `"a""b"`, []string{`a"b`}},
		{"empty quoted", `"",x`, []string{"", "x"}},
		{"whitespace trimmed", "  a ,\tb\t", []string{"a", "b"}},
		{"quoted after whitespace", ` "a" ,b`, []string{"a", "b"}},
		{"quoted keeps inner space", `" a "`, []string{" a "}},
		{"unterminated quote", `"abc`, []string{"abc"}},
		{"na value", "1,NA,3", []string{"1", "", "3"}},
		{"quoted na is a value", `1,"NA"`, []string{"1", "NA"}},
		{"utf-8", "héllo,wörld", []string{"héllo", "wörld"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecord([]byte(tt.input), DefaultOptions())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.wantFields, got); diff != "" {
				t.Errorf("ParseRecord(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

// TestParseFields_Options tests non-default parser options.
func TestParseFields_Options(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		opts       Options
		wantFields []string
	}{
		{
			name:       "tab delimiter",
			input:      "a\tb\t\"c\td\"",
			opts:       Options{Delim: '\t', Quote: '"'},
			wantFields: []string{"a", "b", "c\td"},
		},
		{
			name:       "single quote",
			input:      "'a,b',c",
			opts:       Options{Delim: ',', Quote: '\''},
			wantFields: []string{"a,b", "c"},
		},
		{
			name:       "quoting disabled",
			input:      `"a,b"`,
			opts:       Options{Delim: ','},
			wantFields: []string{`"a`, `b"`},
		},
		{
			name:       "no trim",
			input:      " a , b ",
			opts:       Options{Delim: ',', Quote: '"'},
			wantFields: []string{" a ", " b "},
		},
		{
			name:       "doubled quote kept without escape",
			input:      `"a""b"`,
			opts:       Options{Delim: ',', Quote: '"'},
			wantFields: []string{`a""b`},
		},
		{
			name:       "trailing comment",
			input:      "a,b # note",
			opts:       Options{Delim: ',', Quote: '"', Comment: "#", TrimWS: true},
			wantFields: []string{"a", "b"},
		},
		{
			name:       "comment after delimiter",
			input:      "a,#note",
			opts:       Options{Delim: ',', Quote: '"', Comment: "#"},
			wantFields: []string{"a", ""},
		},
		{
			name:       "comment inside quotes is content",
			input:      `"a#b",c`,
			opts:       Options{Delim: ',', Quote: '"', Comment: "#"},
			wantFields: []string{"a#b", "c"},
		},
		{
			name:       "custom na",
			input:      "-,x, - ",
			opts:       Options{Delim: ',', Quote: '"', TrimWS: true, NA: []string{"-"}},
			wantFields: []string{"", "x", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecord([]byte(tt.input), tt.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.wantFields, got); diff != "" {
				t.Errorf("ParseRecord(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseFields_Flags(t *testing.T) {
	fields, err := NewParser([]byte(`NA,"NA",x`)).ParseFields()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(fields))
	}
	if !fields[0].NA || fields[0].Quoted {
		t.Errorf("field 0 = %+v, want NA and unquoted", fields[0])
	}
	if fields[1].NA || !fields[1].Quoted {
		t.Errorf("field 1 = %+v, want quoted value", fields[1])
	}
	if fields[2].NA || fields[2].Quoted || fields[2].Value != "x" {
		t.Errorf("field 2 = %+v, want plain x", fields[2])
	}
}

func TestParseFields_MaxFields(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxFields = 2

	if _, err := ParseRecord([]byte("a,b"), opts); err != nil {
		t.Fatalf("two fields: unexpected error: %v", err)
	}

	_, err := ParseRecord([]byte("a,b,c"), opts)
	if !errors.Is(err, ErrMaxFields) {
		t.Fatalf("three fields: error = %v, want ErrMaxFields", err)
	}
}

func TestParse_AST(t *testing.T) {
	node, err := NewParser([]byte(`a,NA,"c"`)).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Len() != 3 {
		t.Fatalf("expected 3 fields, got %d", node.Len())
	}

	want := []interface{}{"a", nil, "c"}
	for i, w := range want {
		lit, ok := node.Get(i).(*ast.LiteralNode)
		if !ok {
			t.Fatalf("field %d: expected *ast.LiteralNode, got %T", i, node.Get(i))
		}
		if lit.Value() != w {
			t.Errorf("field %d: value = %v, want %v", i, lit.Value(), w)
		}
	}
}

func TestParseRecord_PreservesBytes(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		opts       Options
		wantFields []string
	}{
		{"invalid utf-8", "a\xff,\"b\xfe\"", DefaultOptions(), []string{"a\xff", "b\xfe"}},
		{"latin-1", "caf\xe9,na\xefve", DefaultOptions(), []string{"caf\xe9", "na\xefve"}},
		{"quoted newline and doubled quote", "\"\xff\n\"\"\x80\"\"\"", DefaultOptions(), []string{"\xff\n\"\x80\""}},
		{"mixed with valid utf-8", "h\xc3\xa9\xff,\xe2\x82", DefaultOptions(), []string{"h\xc3\xa9\xff", "\xe2\x82"}},
		{
			name:       "trailing comment",
			input:      "\xfe1,\xfe2 #\xff",
			opts:       Options{Delim: ',', Quote: '"', Comment: "#", TrimWS: true},
			wantFields: []string{"\xfe1", "\xfe2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecord([]byte(tt.input), tt.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.wantFields, got); diff != "" {
				t.Errorf("ParseRecord(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParse_ASTPreservesBytes(t *testing.T) {
	node, err := NewParser([]byte("\xff\xfe,x")).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lit, ok := node.Get(0).(*ast.LiteralNode)
	if !ok {
		t.Fatalf("field 0: expected *ast.LiteralNode, got %T", node.Get(0))
	}
	if lit.Value() != "\xff\xfe" {
		t.Errorf("field 0: value = %q, want %q", lit.Value(), "\xff\xfe")
	}
}
