package timezone

import (
	"io"
	"log/slog"
	"time"

	"github.com/goliatone/go-tzresolve/pkg/tzdb"
)

// EmptyNameMode controls how Format renders a zone without a display name.
type EmptyNameMode string

const (
	// EmptyNamePlaceholder renders the configured placeholder, "(None)" by
	// default.
	EmptyNamePlaceholder EmptyNameMode = "placeholder"
	// EmptyNameBlank renders empty parentheses.
	EmptyNameBlank EmptyNameMode = "blank"
)

// DefaultNamePlaceholder is rendered for unnamed zones in placeholder mode.
const DefaultNamePlaceholder = "None"

// Options configures a Resolver.
type Options struct {
	Database tzdb.Database
	Clock    func() time.Time
	Logger   *slog.Logger

	EmptyNameMode   EmptyNameMode
	NamePlaceholder string

	// NativeNameAtNow names native rules by their abbreviation at the current
	// instant. By default the abbreviation is taken at the rule's reference
	// instant (the zero time), which is the long-standing behaviour callers
	// may depend on.
	NativeNameAtNow bool
}

// OptionFn mutates Options before a Resolver is built.
type OptionFn func(*Options)

// DefaultOptions returns the options used by NewResolver without overrides.
func DefaultOptions() Options {
	return Options{
		Database:        tzdb.System(),
		Clock:           time.Now,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		EmptyNameMode:   EmptyNamePlaceholder,
		NamePlaceholder: DefaultNamePlaceholder,
	}
}

// NewOptions applies fns over DefaultOptions and restores defaults for any
// field left unset.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.Database == nil {
		opts.Database = tzdb.System()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.EmptyNameMode == "" {
		opts.EmptyNameMode = EmptyNamePlaceholder
	}
	if opts.EmptyNameMode == EmptyNamePlaceholder && opts.NamePlaceholder == "" {
		opts.NamePlaceholder = DefaultNamePlaceholder
	}
	return opts
}

func WithDatabase(db tzdb.Database) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Database = db
	}
}

func WithClock(clock func() time.Time) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Clock = clock
	}
}

func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

// WithEmptyName sets how unnamed zones render. The placeholder is only used
// in EmptyNamePlaceholder mode; an empty placeholder keeps the default.
func WithEmptyName(mode EmptyNameMode, placeholder string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.EmptyNameMode = mode
		o.NamePlaceholder = placeholder
	}
}

func WithNativeNameAtNow(enabled bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.NativeNameAtNow = enabled
	}
}

// ParseEmptyNameMode maps a configuration string onto an EmptyNameMode.
func ParseEmptyNameMode(raw string) (EmptyNameMode, bool) {
	switch EmptyNameMode(raw) {
	case EmptyNamePlaceholder, "":
		return EmptyNamePlaceholder, true
	case EmptyNameBlank:
		return EmptyNameBlank, true
	default:
		return "", false
	}
}
