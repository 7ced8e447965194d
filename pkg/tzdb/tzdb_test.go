package tzdb_test

import (
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tzresolve/pkg/tzdb"
)

func TestSystem_LookupByName(t *testing.T) {
	db := tzdb.System()

	loc, err := db.LookupByName("America/New_York")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if loc == nil || loc.String() != "America/New_York" {
		t.Fatalf("unexpected location: %v", loc)
	}
}

func TestSystem_LookupByName_RejectsUnknownAndReservedNames(t *testing.T) {
	db := tzdb.System()

	for _, name := range []string{"not_a_real_zone_xyz", "", "   ", "Local"} {
		loc, err := db.LookupByName(name)
		if loc != nil {
			t.Fatalf("expected nil location for %q, got %v", name, loc)
		}
		if !errors.Is(err, tzdb.ErrZoneNotFound) {
			t.Fatalf("expected ErrZoneNotFound for %q, got %v", name, err)
		}
	}
}

func TestSystem_OffsetAndNameAt(t *testing.T) {
	db := tzdb.System()
	loc, err := db.LookupByName("America/New_York")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	winter := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	summer := time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC)

	if got := db.OffsetAt(loc, winter); got != -5*time.Hour {
		t.Fatalf("expected -5h in winter, got %v", got)
	}
	if got := db.OffsetAt(loc, summer); got != -4*time.Hour {
		t.Fatalf("expected -4h in summer, got %v", got)
	}
	if name, ok := db.NameOf(loc, winter); !ok || name != "EST" {
		t.Fatalf("expected EST, got %q (%v)", name, ok)
	}
}

func TestFixedOffset_IsUnnamed(t *testing.T) {
	db := tzdb.System()
	loc := db.FixedOffset(19800)

	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	if got := db.OffsetAt(loc, now); got != 5*time.Hour+30*time.Minute {
		t.Fatalf("unexpected offset: %v", got)
	}
	if name, ok := db.NameOf(loc, now); ok {
		t.Fatalf("expected no name, got %q", name)
	}
}

func TestStatic_LookupAndLocal(t *testing.T) {
	paris := time.FixedZone("CET", 3600)
	local := time.FixedZone("LCL", -3*3600)
	db := tzdb.NewStatic(local, map[string]*time.Location{
		"Europe/Paris": paris,
		"Broken":       nil,
	})

	loc, err := db.LookupByName("Europe/Paris")
	if err != nil || loc != paris {
		t.Fatalf("expected paris rule, got %v (%v)", loc, err)
	}
	if _, err := db.LookupByName("Broken"); !errors.Is(err, tzdb.ErrZoneNotFound) {
		t.Fatalf("expected nil entries to be dropped, got %v", err)
	}
	if db.Local() != local {
		t.Fatalf("unexpected local zone: %v", db.Local())
	}

	names := db.Names()
	sort.Strings(names)
	if diff := cmp.Diff([]string{"Europe/Paris"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestStatic_NilLocalDefaultsToUTC(t *testing.T) {
	db := tzdb.NewStatic(nil, nil)
	if db.Local() != time.UTC {
		t.Fatalf("expected UTC, got %v", db.Local())
	}
}

func TestLoadAliases_ResolvesThroughBase(t *testing.T) {
	base := tzdb.NewStatic(nil, map[string]*time.Location{
		"America/New_York": time.FixedZone("EST", -5*3600),
	})

	db, err := tzdb.LoadAliases(base, strings.NewReader(`
aliases:
  Eastern: America/New_York
  Dangling: Nowhere/Special
`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	loc, err := db.LookupByName("Eastern")
	if err != nil {
		t.Fatalf("expected alias to resolve, got %v", err)
	}
	if loc.String() != "EST" {
		t.Fatalf("unexpected location: %v", loc)
	}

	if _, err := db.LookupByName("America/New_York"); err != nil {
		t.Fatalf("expected canonical names to pass through, got %v", err)
	}

	_, err = db.LookupByName("Dangling")
	if !errors.Is(err, tzdb.ErrZoneNotFound) {
		t.Fatalf("expected ErrZoneNotFound for dangling alias, got %v", err)
	}
	if !strings.Contains(err.Error(), `alias "Dangling"`) {
		t.Fatalf("expected alias in error message, got %q", err.Error())
	}

	if target, ok := db.Target("Eastern"); !ok || target != "America/New_York" {
		t.Fatalf("unexpected target: %q (%v)", target, ok)
	}
}

func TestLoadAliases_EmptyDocument(t *testing.T) {
	db, err := tzdb.LoadAliases(tzdb.System(), strings.NewReader(""))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := db.Target("anything"); ok {
		t.Fatalf("expected empty alias table")
	}
}

func TestLoadAliases_RejectsInvalidDocuments(t *testing.T) {
	cases := map[string]string{
		"unknown field": "zones:\n  a: b\n",
		"empty target":  "aliases:\n  Eastern: \"\"\n",
		"empty alias":   "aliases:\n  \"\": UTC\n",
		"not a mapping": "aliases: [1, 2]\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := tzdb.LoadAliases(tzdb.System(), strings.NewReader(doc)); err == nil {
				t.Fatalf("expected error for %q", doc)
			}
		})
	}
}

func TestLoadAliases_MissingReader(t *testing.T) {
	if _, err := tzdb.LoadAliases(tzdb.System(), nil); err == nil {
		t.Fatalf("expected error for nil reader")
	}
}
