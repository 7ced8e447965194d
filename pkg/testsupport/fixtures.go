package testsupport

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tzresolve/pkg/tzdb"
)

var (
	// Winter is an instant where America/New_York observes EST.
	Winter = time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	// Summer is an instant where America/New_York observes EDT.
	Summer = time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC)
)

// FixedClock returns a clock that always reports at.
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// LocalZone is the local rule served by Database.
var LocalZone = time.FixedZone("LCL", 2*3600)

// Database returns a deterministic database holding America/New_York (real
// rules, loaded through the system database), Asia/Kolkata as a fixed +05:30
// rule, and LocalZone as the host zone.
func Database(t *testing.T) *tzdb.Static {
	t.Helper()

	newYork, err := tzdb.System().LookupByName("America/New_York")
	if err != nil {
		t.Fatalf("load America/New_York: %v", err)
	}

	return tzdb.NewStatic(LocalZone, map[string]*time.Location{
		"America/New_York": newYork,
		"Asia/Kolkata":     time.FixedZone("IST", 19800),
	})
}

// MustLoadJSON decodes a JSON fixture into out.
func MustLoadJSON(t *testing.T, path string, out any) {
	t.Helper()

	data := MustReadGolden(t, path)
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
