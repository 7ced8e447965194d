package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-tzresolve/components/timezones"
)

func (a *App) installListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [QUERY]",
		Short: "List zones matching QUERY with their current offsets",
		Long: `List zones matching QUERY with their current offsets.

--format renders each zone with a template over the fields value, label and
offset.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resolver()
			if err != nil {
				return err
			}
			zones, err := a.zoneList()
			if err != nil {
				return err
			}

			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			opts := a.searchOptions(r)
			for _, option := range timezones.SearchOptions(zones, query, a.config.Limit, opts) {
				line, err := a.render("option", option)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, line)
			}
			return nil
		},
	}
	cmd.Flags().Int("limit", 50, "maximum number of zones to print")
	a.bindFlag(cmd, "limit")
	return cmd
}

func (a *App) zoneList() ([]string, error) {
	if a.zones != nil {
		return a.zones, nil
	}
	zones, err := timezones.DefaultZones()
	if err != nil {
		return nil, fmt.Errorf("load zones: %w", err)
	}
	return zones, nil
}
