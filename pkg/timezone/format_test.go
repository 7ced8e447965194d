package timezone_test

import (
	"testing"
	"time"

	"github.com/goliatone/go-tzresolve/pkg/testsupport"
	"github.com/goliatone/go-tzresolve/pkg/timezone"
)

func TestFormat(t *testing.T) {
	r := newResolver(t)

	cases := []struct {
		name string
		expr timezone.Expr
		want string
	}{
		{name: "positive offset string", expr: timezone.String("+05:30"), want: "+05:30 (None)"},
		{name: "negative half hour", expr: timezone.Offset(-330 * time.Minute), want: "-05:30 (None)"},
		{name: "negative under an hour", expr: timezone.String("-00:30"), want: "-00:30 (None)"},
		{name: "utc", expr: timezone.Absent(), want: "+00:00 (None)"},
		{name: "named", expr: timezone.String("America/New_York"), want: "-05:00 (America/New_York)"},
		{name: "local", expr: timezone.String("local"), want: "+02:00 (local)"},
		{name: "seconds truncated", expr: timezone.Offset(-(time.Hour + 59*time.Second)), want: "-01:00 (None)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tz, err := r.Resolve(tc.expr)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got := r.Format(tz); got != tc.want {
				t.Fatalf("unexpected format: got %q want %q", got, tc.want)
			}
			if got := tz.String(); got != tc.want {
				t.Fatalf("unexpected String: got %q want %q", got, tc.want)
			}
		})
	}
}

func TestFormat_OffsetStringScenario(t *testing.T) {
	r := newResolver(t)

	tz, err := r.ResolveString("+05:30")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := r.OffsetNow(tz); got != 19800*time.Second {
		t.Fatalf("unexpected offset: %v", got)
	}
	if r.IsUTC(tz) {
		t.Fatalf("expected non-UTC zone")
	}
	if got := r.Format(tz); got != "+05:30 (None)" {
		t.Fatalf("unexpected format: %q", got)
	}
	if got := tz.GoString(); got != "TimeZone(+05:30 (None))" {
		t.Fatalf("unexpected GoString: %q", got)
	}
}

func TestFormat_EmptyNameModes(t *testing.T) {
	blank := newResolver(t, timezone.WithEmptyName(timezone.EmptyNameBlank, "ignored"))
	tz := blank.MustResolve(timezone.String("+05:30"))
	if got := tz.String(); got != "+05:30 ()" {
		t.Fatalf("unexpected blank format: %q", got)
	}

	custom := newResolver(t, timezone.WithEmptyName(timezone.EmptyNamePlaceholder, "fixed"))
	tz = custom.MustResolve(timezone.String("-04:00"))
	if got := tz.String(); got != "-04:00 (fixed)" {
		t.Fatalf("unexpected custom format: %q", got)
	}

	defaulted := newResolver(t, timezone.WithEmptyName("", ""))
	tz = defaulted.MustResolve(timezone.Absent())
	if got := tz.String(); got != "+00:00 (None)" {
		t.Fatalf("unexpected default format: %q", got)
	}
}

func TestFormat_SummerTime(t *testing.T) {
	r := timezone.NewResolver(
		timezone.WithDatabase(testsupport.Database(t)),
		timezone.WithClock(testsupport.FixedClock(testsupport.Summer)),
	)
	tz := r.MustResolve(timezone.String("America/New_York"))
	if got := tz.String(); got != "-04:00 (America/New_York)" {
		t.Fatalf("unexpected format: %q", got)
	}
}

func TestParseEmptyNameMode(t *testing.T) {
	cases := map[string]timezone.EmptyNameMode{
		"":            timezone.EmptyNamePlaceholder,
		"placeholder": timezone.EmptyNamePlaceholder,
		"blank":       timezone.EmptyNameBlank,
	}
	for raw, want := range cases {
		got, ok := timezone.ParseEmptyNameMode(raw)
		if !ok || got != want {
			t.Fatalf("unexpected mode for %q: %q (%v)", raw, got, ok)
		}
	}
	if _, ok := timezone.ParseEmptyNameMode("loud"); ok {
		t.Fatalf("expected unknown mode to be rejected")
	}
}
