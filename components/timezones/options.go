package timezones

import (
	"net/http"

	"github.com/goliatone/go-tzresolve/pkg/timezone"
)

type EmptySearchMode string

const (
	EmptySearchNone EmptySearchMode = "none"
	EmptySearchTop  EmptySearchMode = "top"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath       string
	ResolvePath     string
	OpenAPIPath     string
	SearchParam     string
	LimitParam      string
	ExprParam       string
	DefaultLimit    int
	MaxLimit        int
	EmptySearchMode EmptySearchMode
	Guard           GuardFunc

	// Resolver resolves expressions for the resolve route. When OffsetLabels
	// is set it also labels options with their current offset.
	Resolver     *timezone.Resolver
	OffsetLabels bool

	Zones []string
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:       "/api/timezones",
		ResolvePath:     "/api/timezones/resolve",
		OpenAPIPath:     "/api/timezones/openapi.json",
		SearchParam:     "q",
		LimitParam:      "limit",
		ExprParam:       "tz",
		DefaultLimit:    50,
		MaxLimit:        200,
		EmptySearchMode: EmptySearchNone,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 50
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = 200
	}
	if opts.EmptySearchMode == "" {
		opts.EmptySearchMode = EmptySearchNone
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/api/timezones"
	}
	if opts.ResolvePath == "" {
		opts.ResolvePath = "/api/timezones/resolve"
	}
	if opts.OpenAPIPath == "" {
		opts.OpenAPIPath = "/api/timezones/openapi.json"
	}
	if opts.SearchParam == "" {
		opts.SearchParam = "q"
	}
	if opts.LimitParam == "" {
		opts.LimitParam = "limit"
	}
	if opts.ExprParam == "" {
		opts.ExprParam = "tz"
	}
	if opts.Resolver == nil {
		opts.Resolver = timezone.Default()
	}
	if opts.Zones != nil {
		opts.Zones = append([]string{}, opts.Zones...)
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithResolvePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ResolvePath = path
	}
}

func WithOpenAPIPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.OpenAPIPath = path
	}
}

func WithSearchParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SearchParam = name
	}
}

func WithLimitParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LimitParam = name
	}
}

func WithExprParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ExprParam = name
	}
}

func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultLimit = limit
	}
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxLimit = limit
	}
}

func WithEmptySearchMode(mode EmptySearchMode) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.EmptySearchMode = mode
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithResolver(resolver *timezone.Resolver) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Resolver = resolver
	}
}

// WithOffsetLabels labels options as "+HH:MM (Zone/Name)" using the
// configured resolver.
func WithOffsetLabels(enabled bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.OffsetLabels = enabled
	}
}

func WithZones(zones []string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if zones == nil {
			o.Zones = nil
			return
		}
		o.Zones = append([]string{}, zones...)
	}
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
