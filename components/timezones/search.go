package timezones

import (
	"sort"
	"strings"

	"github.com/goliatone/go-tzresolve/pkg/timezone"
)

// Option is a single select option. Offset is set when the options were
// built with offset labels.
type Option struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Offset string `json:"offset,omitempty"`
}

func Search(zones []string, query string, limit int, opts Options) []string {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchTop {
			if len(zones) <= limit {
				return append([]string{}, zones...)
			}
			return append([]string{}, zones[:limit]...)
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedZone, 0, 32)
	for _, zone := range zones {
		lowerZone := strings.ToLower(zone)
		if !strings.Contains(lowerZone, q) {
			continue
		}
		matches = append(matches, matchedZone{
			name:     zone,
			isPrefix: strings.HasPrefix(lowerZone, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].name < matches[j].name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.name)
	}
	return out
}

func SearchOptions(zones []string, query string, limit int, opts Options) []Option {
	results := Search(zones, query, limit, opts)
	if len(results) == 0 {
		return nil
	}

	out := make([]Option, 0, len(results))
	for _, zone := range results {
		out = append(out, buildOption(zone, opts))
	}
	return out
}

// buildOption labels zone with its current offset when requested. Zones the
// resolver cannot load keep their plain label.
func buildOption(zone string, opts Options) Option {
	option := Option{Value: zone, Label: zone}
	if !opts.OffsetLabels || opts.Resolver == nil {
		return option
	}

	tz, err := opts.Resolver.Resolve(timezone.String(zone))
	if err != nil {
		return option
	}
	option.Label = opts.Resolver.Format(tz)
	option.Offset = timezone.FormatOffset(opts.Resolver.OffsetNow(tz))
	return option
}

type matchedZone struct {
	name     string
	isPrefix bool
}
