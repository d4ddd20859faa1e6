package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/shapestone/shape-rowscan/pkg/rowscan"
)

type Config struct {
	*cli.Command

	Delim     string `cli:"name=delim aliases=d desc='field delimiter, a single byte or one of tab, comma, semicolon, pipe, space (default: sniffed)'"`
	Quote     string `cli:"name=quote aliases=q desc='quote character, none disables quoting (default: sniffed)'"`
	Comment   string `cli:"name=comment aliases=c desc='comment prefix'"`
	Skip      int    `cli:"name=skip desc='number of leading lines to discard'"`
	KeepEmpty bool   `cli:"name=keep-empty desc='report blank lines as empty records'"`
	Plain     bool   `cli:"name=no-embedded-nl desc='newlines always end a record, even inside quotes'"`
	NoTrim    bool   `cli:"name=no-trim desc='keep whitespace around field values'"`
	Fields    bool   `cli:"name=fields aliases=f desc='print the fields of each record'"`
	MaxFields int    `cli:"name=max-fields desc='fail on records with more fields (0: no limit)'"`
	Threads   int    `cli:"name=threads aliases=j desc='goroutines used to index a file (default: $ROWSCAN_THREADS or the number of CPUs)'"`
	Color     bool   `cli:"name=color desc='color output even when not writing to a terminal'"`
	NoColor   bool   `cli:"name=no-color desc='never color output'"`
	Verbose   bool   `cli:"name=v desc='log informational messages'"`
}

var delimNames = map[string]byte{
	"tab":       '\t',
	"comma":     ',',
	"semicolon": ';',
	"pipe":      '|',
	"space":     ' ',
}

// parseChar converts a flag value into a single byte. Escapes such as \t are
// accepted.
func parseChar(name, v string) (byte, error) {
	if b, ok := delimNames[strings.ToLower(v)]; ok {
		return b, nil
	}
	switch v {
	case `\t`:
		return '\t', nil
	case `\0`, "none":
		return 0, nil
	}
	if len(v) != 1 {
		return 0, fmt.Errorf("%w: -%s must be a single byte, got %q", cli.ErrUsage, name, v)
	}
	return v[0], nil
}

// options builds scanning options from the flags. The delimiter is left at 0
// when it should be sniffed from the input.
func (cfg *Config) options() (rowscan.Options, error) {
	opts := rowscan.DefaultOptions()
	opts.Comment = cfg.Comment
	opts.Skip = cfg.Skip
	opts.SkipEmptyRows = !cfg.KeepEmpty
	opts.EmbeddedNewlines = !cfg.Plain
	opts.TrimWS = !cfg.NoTrim
	opts.MaxFields = cfg.MaxFields

	opts.Delim = 0
	if cfg.Delim != "" {
		d, err := parseChar("delim", cfg.Delim)
		if err != nil {
			return opts, err
		}
		if d == 0 {
			return opts, fmt.Errorf("%w: -delim cannot be empty", cli.ErrUsage)
		}
		opts.Delim = d
	}
	if cfg.Quote != "" {
		q, err := parseChar("quote", cfg.Quote)
		if err != nil {
			return opts, err
		}
		opts.Quote = q
	}

	opts.Threads = cfg.Threads
	if opts.Threads <= 0 {
		opts.Threads = rowscan.EnvThreads()
	}
	return opts, nil
}
