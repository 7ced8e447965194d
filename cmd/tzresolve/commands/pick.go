package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-tzresolve/components/timezones"
	"github.com/goliatone/go-tzresolve/internal/prompt"
	"github.com/goliatone/go-tzresolve/pkg/timezone"
)

func (a *App) installPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Interactively search and pick a zone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.resolver()
			if err != nil {
				return err
			}
			zones, err := a.zoneList()
			if err != nil {
				return err
			}

			driver := a.driver
			if driver == nil {
				driver = prompt.NewSurveyDriver(a.out)
			}

			name, err := prompt.PickZone(cmd.Context(), driver, prompt.PickerConfig{
				Zones:    zones,
				Search:   a.searchOptions(r),
				PageSize: 15,
			})
			if err != nil {
				return err
			}

			tz, err := r.Resolve(timezone.String(name))
			if err != nil {
				return err
			}
			line, err := a.render("resolve", timezones.Describe(r, tz, &name))
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, line)
			return nil
		},
	}
}

func (a *App) searchOptions(r *timezone.Resolver) timezones.Options {
	return timezones.NewOptions(
		timezones.WithResolver(r),
		timezones.WithOffsetLabels(true),
		timezones.WithEmptySearchMode(timezones.EmptySearchTop),
		timezones.WithDefaultLimit(50),
		timezones.WithMaxLimit(1000),
	)
}
