package timezone

import "time"

// Resolver turns timezone expressions into TimeZone values. It holds no
// mutable state and is safe for concurrent use when its Database is.
type Resolver struct {
	opts Options
	env  *environment
}

// NewResolver builds a Resolver from DefaultOptions plus any overrides.
func NewResolver(fns ...OptionFn) *Resolver {
	opts := NewOptions(fns...)
	return &Resolver{opts: opts, env: newEnvironment(opts)}
}

// Options returns a copy of the resolver configuration.
func (r *Resolver) Options() Options {
	return r.resolver().opts
}

func (r *Resolver) resolver() *Resolver {
	if r == nil {
		return defaultResolver
	}
	return r
}

var defaultResolver = NewResolver()

// Default returns the package level resolver backed by the system database.
func Default() *Resolver {
	return defaultResolver
}

// Resolve converts expr into a TimeZone. A nil expr is treated as Absent.
func (r *Resolver) Resolve(expr Expr) (TimeZone, error) {
	r = r.resolver()
	if expr == nil {
		expr = Absent()
	}

	tz, cause := r.parse(expr)
	if tz.loc == nil {
		r.opts.Logger.Debug("unrecognized time zone",
			"input", describeInput(expr.input()),
			"error", cause,
		)
		return TimeZone{}, &UnrecognizedTimeZoneError{Input: expr.input(), Err: cause}
	}

	tz.env = r.env
	return tz, nil
}

// ResolveString resolves a textual expression.
func (r *Resolver) ResolveString(text string) (TimeZone, error) {
	return r.Resolve(String(text))
}

// ResolveValue resolves an arbitrary Go value; see ValueExpr for the mapping.
func (r *Resolver) ResolveValue(value any) (TimeZone, error) {
	return r.Resolve(ValueExpr(value))
}

// MustResolve is like Resolve but panics on failure. It is meant for
// expressions fixed at compile time.
func (r *Resolver) MustResolve(expr Expr) TimeZone {
	tz, err := r.Resolve(expr)
	if err != nil {
		panic(err)
	}
	return tz
}

// OffsetNow returns the offset of tz at the resolver's current instant.
func (r *Resolver) OffsetNow(tz TimeZone) time.Duration {
	r = r.resolver()
	return r.env.db.OffsetAt(tz.Location(), r.env.now())
}

// IsUTC reports whether OffsetNow is exactly zero.
func (r *Resolver) IsUTC(tz TimeZone) bool {
	return r.OffsetNow(tz) == 0
}

// Format renders tz with the resolver's clock and empty-name settings.
func (r *Resolver) Format(tz TimeZone) string {
	r = r.resolver()
	return formatZone(r.OffsetNow(tz), tz.name, tz.named, r.env.format)
}

// parse applies the precedence rules. A result without a location means the
// expression was not recognized; the error, when set, is the lookup cause.
func (r *Resolver) parse(expr Expr) (TimeZone, error) {
	db := r.opts.Database

	switch e := expr.(type) {
	case zoneExpr:
		return TimeZone{loc: e.tz.loc, name: e.tz.name, named: e.tz.named}, nil

	case locationExpr:
		if e.loc == nil {
			return TimeZone{}, nil
		}
		name, named := db.NameOf(e.loc, r.nativeNameInstant())
		return TimeZone{loc: e.loc, name: name, named: named}, nil

	case offsetExpr:
		return TimeZone{loc: db.FixedOffset(int(e.offset / time.Second))}, nil

	case stringExpr:
		return r.parseString(e.text)

	case absentExpr:
		return TimeZone{loc: time.UTC}, nil
	}

	return TimeZone{}, nil
}

func (r *Resolver) parseString(text string) (TimeZone, error) {
	db := r.opts.Database

	if text == utcExpr {
		return TimeZone{loc: time.UTC}, nil
	}
	if text == localExpr {
		return TimeZone{loc: db.Local(), name: text, named: true}, nil
	}
	if seconds, ok := ParseOffset(text); ok {
		return TimeZone{loc: db.FixedOffset(seconds)}, nil
	}

	loc, err := db.LookupByName(text)
	if loc == nil {
		return TimeZone{}, err
	}
	return TimeZone{loc: loc, name: text, named: true}, nil
}

// nativeNameInstant is the instant native rules are named at. Unless
// NativeNameAtNow is set this is the zero time, so rules with historical
// transitions report their earliest abbreviation.
func (r *Resolver) nativeNameInstant() time.Time {
	if r.opts.NativeNameAtNow {
		return r.env.now()
	}
	return time.Time{}
}
