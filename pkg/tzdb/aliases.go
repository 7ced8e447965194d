package tzdb

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Aliases decorates a Database so alternate identifiers (legacy abbreviations,
// customer-facing labels) resolve to a canonical zone name before the lookup
// is delegated. Aliases are single-level: a target is never re-aliased.
type Aliases struct {
	base    Database
	aliases map[string]string
}

type aliasDocument struct {
	Aliases map[string]string `yaml:"aliases"`
}

// NewAliases wraps base with the provided alias table. The table is copied.
// A nil base defaults to System().
func NewAliases(base Database, aliases map[string]string) *Aliases {
	if base == nil {
		base = System()
	}
	copied := make(map[string]string, len(aliases))
	for alias, target := range aliases {
		copied[alias] = target
	}
	return &Aliases{base: base, aliases: copied}
}

// LoadAliases decodes a YAML alias document of the form
//
//	aliases:
//	  EST: America/New_York
//	  Paris: Europe/Paris
//
// and wraps base with it. An empty document yields an empty table.
func LoadAliases(base Database, r io.Reader) (*Aliases, error) {
	if r == nil {
		return nil, errors.New("tzdb: missing alias reader")
	}

	var doc aliasDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("tzdb: decode aliases: %w", err)
	}

	for alias, target := range doc.Aliases {
		if strings.TrimSpace(alias) == "" {
			return nil, errors.New("tzdb: alias document defines an empty alias")
		}
		if strings.TrimSpace(target) == "" {
			return nil, fmt.Errorf("tzdb: alias %q has an empty target", alias)
		}
	}

	return NewAliases(base, doc.Aliases), nil
}

// LoadAliasFile reads a YAML alias document from path.
func LoadAliasFile(base Database, path string) (*Aliases, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tzdb: open aliases: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadAliases(base, f)
}

// Target reports the canonical name an alias maps to.
func (a *Aliases) Target(alias string) (string, bool) {
	if a == nil {
		return "", false
	}
	target, ok := a.aliases[alias]
	return target, ok
}

func (a *Aliases) LookupByName(name string) (*time.Location, error) {
	if target, ok := a.Target(name); ok {
		loc, err := a.base.LookupByName(target)
		if err != nil {
			return nil, fmt.Errorf("tzdb: alias %q: %w", name, err)
		}
		return loc, nil
	}
	return a.base.LookupByName(name)
}

func (a *Aliases) Local() *time.Location {
	return a.base.Local()
}

func (a *Aliases) FixedOffset(seconds int) *time.Location {
	return a.base.FixedOffset(seconds)
}

func (a *Aliases) OffsetAt(loc *time.Location, at time.Time) time.Duration {
	return a.base.OffsetAt(loc, at)
}

func (a *Aliases) NameOf(loc *time.Location, at time.Time) (string, bool) {
	return a.base.NameOf(loc, at)
}
