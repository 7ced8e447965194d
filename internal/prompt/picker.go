package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-tzresolve/components/timezones"
)

// ErrNoMatch is returned when every search attempt came back empty.
var ErrNoMatch = errors.New("prompt: no matching time zone")

// PickerConfig configures PickZone.
type PickerConfig struct {
	// Zones to search; nil uses the embedded IANA list.
	Zones []string
	// Search controls limits and option labels.
	Search timezones.Options
	// Attempts bounds how many empty searches are tolerated. Defaults to 3.
	Attempts int
	PageSize int
}

// PickZone asks for a search query, offers the matching zones and returns the
// identifier the user selected.
func PickZone(ctx context.Context, driver Driver, cfg PickerConfig) (string, error) {
	if driver == nil {
		return "", errors.New("prompt: missing driver")
	}

	zones := cfg.Zones
	if zones == nil {
		loaded, err := timezones.DefaultZones()
		if err != nil {
			return "", fmt.Errorf("prompt: load zones: %w", err)
		}
		zones = loaded
	}

	attempts := cfg.Attempts
	if attempts <= 0 {
		attempts = 3
	}

	for i := 0; i < attempts; i++ {
		query, err := driver.Input(ctx, InputConfig{
			Message:   "Search time zones:",
			Help:      `Part of a zone name, e.g. "new_york" or "europe/"`,
			Validator: requireText,
		})
		if err != nil {
			return "", err
		}

		options := timezones.SearchOptions(zones, query, 0, cfg.Search)
		if len(options) == 0 {
			if err := driver.Info(ctx, fmt.Sprintf("No time zones match %q.", strings.TrimSpace(query))); err != nil {
				return "", err
			}
			continue
		}

		labels := make([]string, 0, len(options))
		for _, option := range options {
			labels = append(labels, option.Label)
		}

		idx, err := driver.Select(ctx, SelectConfig{
			Message:  "Time zone:",
			Options:  labels,
			PageSize: cfg.PageSize,
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(options) {
			return "", fmt.Errorf("prompt: selection %d out of range", idx)
		}
		return options[idx].Value, nil
	}

	return "", ErrNoMatch
}

func requireText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("enter part of a zone name")
	}
	return nil
}
