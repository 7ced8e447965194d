package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tzresolve/components/timezones"
	"github.com/goliatone/go-tzresolve/internal/prompt"
	"github.com/goliatone/go-tzresolve/pkg/testsupport"
	"github.com/goliatone/go-tzresolve/pkg/timezone"
)

var testZones = []string{"America/New_York", "Asia/Kolkata", "Europe/Paris"}

type result struct {
	app    *App
	err    error
	stdout string
	stderr string
}

func execute(t *testing.T, opts []Options, args ...string) result {
	t.Helper()

	config := filepath.Join(t.TempDir(), "tzresolve.yaml")
	if err := os.WriteFile(config, []byte("verbose: false\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	base := []Options{
		WithArgs(append([]string{"--config", config}, args...)...),
		WithOutput(&stdout, &stderr),
		WithDatabase(testsupport.Database(t)),
		WithClock(testsupport.FixedClock(testsupport.Winter)),
		WithZones(testZones),
	}
	app := New(append(base, opts...)...)
	err := app.Run()
	return result{app: app, err: err, stdout: stdout.String(), stderr: stderr.String()}
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestResolve(t *testing.T) {
	aliases := filepath.Join(t.TempDir(), "aliases.yaml")
	if err := os.WriteFile(aliases, []byte("aliases:\n  EST: America/New_York\n"), 0o600); err != nil {
		t.Fatalf("write aliases: %v", err)
	}

	cases := []struct {
		name string
		env  map[string]string
		args []string
		want []string
	}{
		{
			name: "expressions",
			args: []string{"resolve", "UTC", "+05:30", "local", "America/New_York", "-00:30"},
			want: []string{
				"UTC\t+00:00 (None)",
				"+05:30\t+05:30 (None)",
				"local\t+02:00 (local)",
				"America/New_York\t-05:00 (America/New_York)",
				"-00:30\t-00:30 (None)",
			},
		},
		{
			name: "blank empty names",
			args: []string{"resolve", "--empty-name", "blank", "+01:00"},
			want: []string{"+01:00\t+01:00 ()"},
		},
		{
			name: "custom placeholder",
			args: []string{"resolve", "--placeholder", "n/a", "-03:00"},
			want: []string{"-03:00\t-03:00 (n/a)"},
		},
		{
			name: "placeholder from environment",
			env:  map[string]string{"TZRESOLVE_PLACEHOLDER": "unnamed"},
			args: []string{"resolve", "+00:00"},
			want: []string{"+00:00\t+00:00 (unnamed)"},
		},
		{
			name: "format template",
			args: []string{"resolve", "--format", "{{ offset }}|{{ offsetSeconds }}|{{ name }}|{{ utc }}", "America/New_York", "+05:30", "UTC"},
			want: []string{
				"-05:00|-18000|America/New_York|False",
				"+05:30|19800||False",
				"+00:00|0||True",
			},
		},
		{
			name: "format from environment",
			env:  map[string]string{"TZRESOLVE_FORMAT": "{{ input }} => {{ display }}"},
			args: []string{"resolve", "local"},
			want: []string{"local => +02:00 (local)"},
		},
		{
			name: "alias file",
			args: []string{"resolve", "--aliases", aliases, "EST"},
			want: []string{"EST\t-05:00 (EST)"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			res := execute(t, nil, tc.args...)
			if res.err != nil {
				t.Fatalf("expected no error, got %v", res.err)
			}
			if diff := cmp.Diff(tc.want, lines(res.stdout)); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_Unrecognized(t *testing.T) {
	res := execute(t, nil, "resolve", "UTC", "Atlantis/Capital", "05:30")
	if !errors.Is(res.err, timezone.ErrUnrecognizedTimeZone) {
		t.Fatalf("expected unrecognized time zone error, got %v", res.err)
	}
	if res.app.UsageError() {
		t.Fatalf("expected a runtime error, not a usage error")
	}
	if diff := cmp.Diff([]string{"UTC\t+00:00 (None)"}, lines(res.stdout)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(res.stderr, "Atlantis/Capital") {
		t.Fatalf("expected the failing input to be logged, got %q", res.stderr)
	}
}

func TestEscapeOffsets(t *testing.T) {
	cases := map[string]struct {
		args []string
		want []string
	}{
		"no offsets": {
			args: []string{"resolve", "-v", "UTC"},
			want: []string{"resolve", "-v", "UTC"},
		},
		"negative offset": {
			args: []string{"resolve", "--placeholder", "n/a", "-03:00", "+01:00"},
			want: []string{"resolve", "--placeholder", "n/a", "--", "-03:00", "+01:00"},
		},
		"only first offset escaped": {
			args: []string{"resolve", "-01:00", "-02:00"},
			want: []string{"resolve", "--", "-01:00", "-02:00"},
		},
		"already escaped": {
			args: []string{"resolve", "--", "-01:00"},
			want: []string{"resolve", "--", "-01:00"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, escapeOffsets(tc.args)); diff != "" {
				t.Fatalf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_NegativeOffsetAfterFlags(t *testing.T) {
	res := execute(t, nil, "resolve", "-v", "-05:30", "-00:30")
	if res.err != nil {
		t.Fatalf("expected no error, got %v", res.err)
	}
	want := []string{"-05:30\t-05:30 (None)", "-00:30\t-00:30 (None)"}
	if diff := cmp.Diff(want, lines(res.stdout)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_UsageErrors(t *testing.T) {
	for name, args := range map[string][]string{
		"missing expression": {"resolve"},
		"unknown flag":       {"resolve", "--nope", "UTC"},
		"unknown command":    {"convert", "UTC"},
	} {
		t.Run(name, func(t *testing.T) {
			res := execute(t, nil, args...)
			if res.err == nil {
				t.Fatalf("expected an error")
			}
			if !res.app.UsageError() {
				t.Fatalf("expected a usage error, got %v", res.err)
			}
		})
	}
}

func TestResolve_InvalidEmptyName(t *testing.T) {
	res := execute(t, nil, "resolve", "--empty-name", "hidden", "UTC")
	if res.err == nil || !strings.Contains(res.err.Error(), `invalid empty-name "hidden"`) {
		t.Fatalf("expected invalid empty-name error, got %v", res.err)
	}
	if res.app.UsageError() {
		t.Fatalf("expected a runtime error, not a usage error")
	}
}

func TestResolve_InvalidFormat(t *testing.T) {
	res := execute(t, nil, "resolve", "--format", "{{ offset", "UTC")
	if res.err == nil {
		t.Fatalf("expected a template error")
	}
	if res.stdout != "" {
		t.Fatalf("expected no output, got %q", res.stdout)
	}
}

func TestResolve_MissingAliasFile(t *testing.T) {
	res := execute(t, nil, "resolve", "--aliases", filepath.Join(t.TempDir(), "missing.yaml"), "UTC")
	if res.err == nil {
		t.Fatalf("expected an error for a missing alias file")
	}
}

func TestList(t *testing.T) {
	cases := map[string]struct {
		args []string
		want []string
	}{
		"all zones": {
			args: []string{"list"},
			want: []string{"-05:00 (America/New_York)", "+05:30 (Asia/Kolkata)", "Europe/Paris"},
		},
		"query": {
			args: []string{"list", "kol"},
			want: []string{"+05:30 (Asia/Kolkata)"},
		},
		"format": {
			args: []string{"list", "--format", "{{ value }}={{ offset }}", "kol"},
			want: []string{"Asia/Kolkata=+05:30"},
		},
		"limit": {
			args: []string{"list", "--limit", "1"},
			want: []string{"-05:00 (America/New_York)"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			res := execute(t, nil, tc.args...)
			if res.err != nil {
				t.Fatalf("expected no error, got %v", res.err)
			}
			if diff := cmp.Diff(tc.want, lines(res.stdout)); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

type pickDriver struct {
	query  string
	choice int
}

func (d pickDriver) Input(context.Context, prompt.InputConfig) (string, error) {
	return d.query, nil
}

func (d pickDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	return d.choice, nil
}

func (d pickDriver) Info(context.Context, string) error { return nil }

func TestPick(t *testing.T) {
	res := execute(t, []Options{WithDriver(pickDriver{query: "a", choice: 1})}, "pick")
	if res.err != nil {
		t.Fatalf("expected no error, got %v", res.err)
	}
	if got, want := res.stdout, "Asia/Kolkata\t+05:30 (Asia/Kolkata)\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestPick_Aborted(t *testing.T) {
	res := execute(t, []Options{WithDriver(abortDriver{})}, "pick")
	if !errors.Is(res.err, prompt.ErrAborted) {
		t.Fatalf("expected aborted error, got %v", res.err)
	}
}

type abortDriver struct{ pickDriver }

func (abortDriver) Input(context.Context, prompt.InputConfig) (string, error) {
	return "", prompt.ErrAborted
}

func TestServeMux(t *testing.T) {
	res := execute(t, nil, "resolve", "UTC")
	if res.err != nil {
		t.Fatalf("expected no error, got %v", res.err)
	}

	app := res.app
	app.config.BasePath = "/v1"
	r, err := app.resolver()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	mux, routes, err := app.newMux(r)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if routes.Resolve != "/v1/api/timezones/resolve" {
		t.Fatalf("unexpected resolve route %q", routes.Resolve)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/api/timezones/resolve?tz=Asia/Kolkata", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Data struct {
			Display string `json:"display"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Data.Display != "+05:30 (Asia/Kolkata)" {
		t.Fatalf("unexpected display %q", payload.Data.Display)
	}
}

func TestServe_StopsOnCancel(t *testing.T) {
	res := execute(t, nil, "resolve", "UTC")
	app := res.app
	app.config.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := app.serve(ctx, http.NewServeMux(), timezones.Routes{}); err != nil {
		t.Fatalf("expected clean shutdown, got %v", err)
	}
}
