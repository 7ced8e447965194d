package timezone

import "time"

// Expr is a timezone expression accepted by Resolver.Resolve. The set of
// implementations is closed; build values with Zone, Location, Offset, String
// or Absent.
type Expr interface {
	isExpr()
	input() any
}

type zoneExpr struct{ tz TimeZone }

type locationExpr struct{ loc *time.Location }

type offsetExpr struct{ offset time.Duration }

type stringExpr struct{ text string }

type absentExpr struct{}

// unsupportedExpr carries values ResolveValue cannot map onto a variant so
// they still fail through the common rule check.
type unsupportedExpr struct{ value any }

// Zone wraps an already resolved TimeZone.
func Zone(tz TimeZone) Expr { return zoneExpr{tz: tz} }

// Location wraps a native rule.
func Location(loc *time.Location) Expr { return locationExpr{loc: loc} }

// Offset wraps a signed offset east of UTC. Sub-second precision is dropped.
func Offset(offset time.Duration) Expr { return offsetExpr{offset: offset} }

// String wraps a textual expression.
func String(text string) Expr { return stringExpr{text: text} }

// Absent is the missing expression; it resolves to UTC.
func Absent() Expr { return absentExpr{} }

func (zoneExpr) isExpr()        {}
func (locationExpr) isExpr()    {}
func (offsetExpr) isExpr()      {}
func (stringExpr) isExpr()      {}
func (absentExpr) isExpr()      {}
func (unsupportedExpr) isExpr() {}

func (e zoneExpr) input() any        { return e.tz }
func (e locationExpr) input() any    { return e.loc }
func (e offsetExpr) input() any      { return e.offset }
func (e stringExpr) input() any      { return e.text }
func (absentExpr) input() any        { return nil }
func (e unsupportedExpr) input() any { return e.value }

// ValueExpr maps a Go value onto an Expr: TimeZone, *TimeZone, *time.Location,
// time.Duration and string map onto their variants and nil maps onto Absent.
// Any other value yields an expression that never resolves.
func ValueExpr(value any) Expr {
	switch v := value.(type) {
	case nil:
		return Absent()
	case Expr:
		return v
	case TimeZone:
		return Zone(v)
	case *TimeZone:
		if v == nil {
			return unsupportedExpr{value: value}
		}
		return Zone(*v)
	case *time.Location:
		return Location(v)
	case time.Duration:
		return Offset(v)
	case string:
		return String(v)
	default:
		return unsupportedExpr{value: value}
	}
}
