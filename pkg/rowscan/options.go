package rowscan

import (
	"log/slog"
	"runtime"

	"github.com/shapestone/shape-rowscan/internal/config"
	"github.com/shapestone/shape-rowscan/internal/parser"
)

// ThreadsEnv names the environment variable read by EnvThreads.
const ThreadsEnv = "ROWSCAN_THREADS"

// Options configures record scanning. All values are fixed for the whole
// input; in particular the choice between quote-aware and plain scanning is
// never re-decided per record.
type Options struct {
	// Delim is the field delimiter used when records are split into fields.
	// It must be an ASCII byte other than CR, LF and Quote.
	// Default: ','
	Delim byte

	// Quote is the quote character. 0 disables quoting.
	// Default: '"'
	Quote byte

	// Comment, if not empty, marks comment lines. Lines whose first
	// non-blank bytes match it are skipped, and when fields are split the
	// rest of a record after an unquoted Comment is dropped.
	// Default: "" (disabled)
	Comment string

	// Skip is the number of leading lines discarded regardless of content.
	// Default: 0
	Skip int

	// SkipEmptyRows skips lines holding only spaces, tabs and CR.
	// Default: true
	SkipEmptyRows bool

	// EmbeddedNewlines enables quote-aware scanning so that newlines inside
	// quoted fields do not end a record.
	// Default: true
	EmbeddedNewlines bool

	// TrimWS trims whitespace around field values.
	// Default: true
	TrimWS bool

	// EscapeDouble collapses doubled quotes inside quoted field values.
	// Default: true
	EscapeDouble bool

	// NA lists field values that denote a missing value.
	// Default: ["NA"]
	NA []string

	// MaxFields limits the number of fields per record. 0 means no limit.
	// Default: 0
	MaxFields int

	// Threads is the number of goroutines Index may use. Values below 2
	// index sequentially. Indexing is always sequential when
	// EmbeddedNewlines is set.
	// Default: 1
	Threads int

	// Logger receives warnings such as inconsistent line endings.
	// If nil, nothing is logged.
	Logger *slog.Logger

	// WarningCallback is invoked for warnings with the 1-indexed line number.
	// If nil, warnings are only sent to Logger.
	WarningCallback func(line int, message string)
}

// DefaultOptions returns the default scanning configuration.
func DefaultOptions() Options {
	return Options{
		Delim:            ',',
		Quote:            '"',
		Comment:          "",
		Skip:             0,
		SkipEmptyRows:    true,
		EmbeddedNewlines: true,
		TrimWS:           true,
		EscapeDouble:     true,
		NA:               []string{"NA"},
		Threads:          1,
	}
}

// EnvThreads returns the thread count from ROWSCAN_THREADS, defaulting to the
// number of CPUs. Call it once at startup and store the result in
// Options.Threads.
func EnvThreads() int {
	n := config.EnvInt(ThreadsEnv, runtime.NumCPU())
	if n < 1 {
		return 1
	}
	return n
}

// validDelim reports whether c can separate fields.
func validDelim(c byte) bool {
	return c != 0 && c < 0x80 && c != '\r' && c != '\n'
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if !validDelim(o.Delim) {
		return &OptionsError{Field: "Delim", Message: "invalid delimiter"}
	}
	if o.Quote != 0 && !validDelim(o.Quote) {
		return &OptionsError{Field: "Quote", Message: "invalid quote character"}
	}
	if o.Quote == o.Delim {
		return &OptionsError{Field: "Quote", Message: "quote character same as delimiter"}
	}
	if o.Comment != "" && (o.Comment[0] == '\r' || o.Comment[0] == '\n' || o.Comment[0] == ' ' || o.Comment[0] == '\t') {
		return &OptionsError{Field: "Comment", Message: "comment must not start with whitespace"}
	}
	if o.Skip < 0 {
		return &OptionsError{Field: "Skip", Message: "must not be negative"}
	}
	if o.MaxFields < 0 {
		return &OptionsError{Field: "MaxFields", Message: "must not be negative"}
	}
	if o.Threads < 0 {
		return &OptionsError{Field: "Threads", Message: "must not be negative"}
	}
	return nil
}

// parserOptions maps the field splitting subset of o.
func (o Options) parserOptions() parser.Options {
	return parser.Options{
		Delim:        o.Delim,
		Quote:        o.Quote,
		Comment:      o.Comment,
		TrimWS:       o.TrimWS,
		EscapeDouble: o.EscapeDouble,
		NA:           o.NA,
		MaxFields:    o.MaxFields,
	}
}

// warn reports a warning through the configured sinks.
func (o Options) warn(line int, message string, attrs ...any) {
	if o.WarningCallback != nil {
		o.WarningCallback(line, message)
	}
	if o.Logger != nil {
		o.Logger.Warn(message, append([]any{"line", line}, attrs...)...)
	}
}

// warns reports whether any warning sink is configured.
func (o Options) warns() bool {
	return o.WarningCallback != nil || o.Logger != nil
}
