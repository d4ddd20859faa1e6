package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/scott-cotton/cli"
	"github.com/shapestone/shape-rowscan/internal/source"
	"github.com/shapestone/shape-rowscan/pkg/rowscan"
)

// sniffSize bounds the sample used to detect the delimiter and quote.
const sniffSize = 64 << 10

func run(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Color && cfg.NoColor {
		return fmt.Errorf("%w: -color and -no-color are mutually exclusive", cli.ErrUsage)
	}
	opts, err := cfg.options()
	if err != nil {
		return err
	}

	log := newLogger(os.Stderr, cfg.Verbose)
	if len(args) == 0 {
		args = []string{"-"}
	}
	p := newPrinter(cc.Out, cfg.useColor(cc.Out), len(args) > 1)

	for _, arg := range args {
		var buf *source.Buffer
		if arg == "-" {
			buf, err = source.FromReader("stdin", cc.In)
		} else {
			buf, err = source.Open(arg)
		}
		if err != nil {
			return fmt.Errorf("error opening %s: %w", arg, err)
		}
		err = scanBuffer(cfg, opts, buf, p, log.With("file", buf.Name))
		buf.Close()
		if err != nil {
			return fmt.Errorf("error scanning %s: %w", arg, err)
		}
	}
	return nil
}

// scanBuffer prints every record of buf.
func scanBuffer(cfg *Config, opts rowscan.Options, buf *source.Buffer, p *printer, log *slog.Logger) error {
	opts = sniff(cfg, opts, buf.Data, log)
	opts.Logger = log
	if err := opts.Validate(); err != nil {
		return err
	}

	if !cfg.Fields {
		spans, err := rowscan.Index(buf.Data, opts)
		if err != nil {
			return err
		}
		for _, sp := range spans {
			if err := p.span(buf.Name, sp); err != nil {
				return err
			}
		}
		log.Info("indexed", "records", len(spans), "threads", opts.Threads)
		return nil
	}

	records := 0
	s := rowscan.NewScanner(buf.Data, opts)
	for s.Scan() {
		fields, err := s.Fields()
		if err != nil {
			break
		}
		if err := p.fields(buf.Name, s.Line(), fields); err != nil {
			return err
		}
		records++
	}
	if err := s.Err(); err != nil {
		return err
	}
	log.Info("scanned", "records", records)
	return nil
}

// sniff fills in the delimiter and quote left unset on the command line.
func sniff(cfg *Config, opts rowscan.Options, data []byte, log *slog.Logger) rowscan.Options {
	if opts.Delim != 0 && cfg.Quote != "" {
		return opts
	}
	sample := data
	if len(sample) > sniffSize {
		sample = sample[:sniffSize]
	}
	sn := rowscan.NewSniffer(sample)
	if opts.Delim == 0 {
		opts.Delim = sn.DetectDelimiter()
	}
	if cfg.Quote == "" {
		opts.Quote = sn.DetectQuote()
	}
	log.Info("sniffed dialect", "delim", strconv.QuoteRune(rune(opts.Delim)), "quote", strconv.QuoteRune(rune(opts.Quote)), "newline", sn.DetectNewline().String())
	return opts
}
