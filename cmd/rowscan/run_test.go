package main

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/shapestone/shape-rowscan/internal/source"
)

func scanString(t *testing.T, cfg *Config, input string) (string, string) {
	t.Helper()
	opts, err := cfg.options()
	if err != nil {
		t.Fatalf("options() error = %v", err)
	}
	buf, err := source.FromReader("test", strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	defer buf.Close()

	var out, logs bytes.Buffer
	p := newPrinter(&out, false, false)
	if err := scanBuffer(cfg, opts, buf, p, newLogger(&logs, true)); err != nil {
		t.Fatalf("scanBuffer() error = %v", err)
	}
	return out.String(), logs.String()
}

func TestScanBuffer_Spans(t *testing.T) {
	out, logs := scanString(t, &Config{Threads: 1}, "a;b\r\n1;\"x\r\ny\"\r\n2;z")

	want := "0\t3\tCRLF\n5\t13\tCRLF\n15\t18\tUnknown\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	for _, s := range []string{`msg="sniffed dialect"`, "delim=", "newline=CRLF", "records=3"} {
		if !strings.Contains(logs, s) {
			t.Errorf("logs %q missing %q", logs, s)
		}
	}
	if strings.Contains(logs, "time=") {
		t.Errorf("logs contain a timestamp: %q", logs)
	}
}

func TestScanBuffer_Fields(t *testing.T) {
	cfg := &Config{Fields: true, Delim: ",", Comment: "#", Threads: 1}
	out, _ := scanString(t, cfg, "# header comment\nname,qty\n\"nuts, salted\",12\n\nfigs, 3 # fresh\n")

	want := strings.Join([]string{
		"2\t\"name\"\t\"qty\"",
		"3\t\"nuts, salted\"\t\"12\"",
		"5\t\"figs\"\t\"3\"",
	}, "\n") + "\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestScanBuffer_MaxFields(t *testing.T) {
	cfg := &Config{Fields: true, Delim: ",", MaxFields: 2, Threads: 1}
	opts, err := cfg.options()
	if err != nil {
		t.Fatal(err)
	}
	buf, err := source.FromReader("test", strings.NewReader("a,b\nc,d,e\n"))
	if err != nil {
		t.Fatal(err)
	}
	defer buf.Close()

	var out bytes.Buffer
	err = scanBuffer(cfg, opts, buf, newPrinter(&out, false, false), newLogger(io.Discard, false))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("scanBuffer() error = %v, want a parse error on line 2", err)
	}
	if out.String() != "1\t\"a\"\t\"b\"\n" {
		t.Errorf("output before the error = %q", out.String())
	}
}

func TestScanBuffer_SniffsQuote(t *testing.T) {
	cfg := &Config{Fields: true, Threads: 1}
	out, _ := scanString(t, cfg, "a,'x,y'\n1,'2,3'\n")

	want := "1\t\"a\"\t\"x,y\"\n2\t\"1\"\t\"2,3\"\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	field, _ := reflect.TypeOf(Config{}).FieldByName("Quote")
	if desc := field.Tag.Get("cli"); !strings.Contains(desc, "(default: sniffed)") {
		t.Errorf("-quote help %q does not say the quote is sniffed", desc)
	}
}
