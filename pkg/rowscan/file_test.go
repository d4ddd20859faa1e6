package rowscan_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shapestone/shape-rowscan/pkg/rowscan"
)

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("id,name\n1,\"a\nb\"\n2,c\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := rowscan.OpenFile(path, rowscan.DefaultOptions())
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer f.Close()

	if f.Name() != path {
		t.Errorf("Name() = %q, want %q", f.Name(), path)
	}

	var got [][]string
	s := f.Scanner()
	for s.Scan() {
		fields, err := s.Fields()
		if err != nil {
			t.Fatalf("Fields() error = %v", err)
		}
		got = append(got, fields)
	}
	want := [][]string{{"id", "name"}, {"1", "a\nb"}, {"2", "c"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}

	spans, err := f.Index()
	if err != nil {
		t.Fatalf("Index() error = %v", err)
	}
	if len(spans) != 3 {
		t.Errorf("Index() returned %d spans, want 3", len(spans))
	}

	if err := f.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestOpenFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := rowscan.OpenFile(path, rowscan.DefaultOptions())
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer f.Close()

	if f.Scanner().Scan() {
		t.Error("Scan() on empty file = true, want false")
	}
}

func TestOpenFile_Errors(t *testing.T) {
	if _, err := rowscan.OpenFile(filepath.Join(t.TempDir(), "missing.csv"), rowscan.DefaultOptions()); err == nil {
		t.Error("expected error for missing file")
	}

	opts := rowscan.DefaultOptions()
	opts.Skip = -1
	if _, err := rowscan.OpenFile("unused", opts); err == nil {
		t.Error("expected error for invalid options")
	}
}

func TestReadAll(t *testing.T) {
	f, err := rowscan.ReadAll("stdin", strings.NewReader("a\r\nb\r\n"), rowscan.DefaultOptions())
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	defer f.Close()

	spans, err := f.Index()
	if err != nil {
		t.Fatalf("Index() error = %v", err)
	}
	want := []rowscan.Span{{Begin: 0, End: 1, Kind: rowscan.CRLF}, {Begin: 3, End: 4, Kind: rowscan.CRLF}}
	if diff := cmp.Diff(want, spans); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}
