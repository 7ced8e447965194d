package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-tzresolve/components/timezones"
)

func (a *App) installResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve EXPR...",
		Short: "Print the canonical form of timezone expressions",
		Long: `Print each expression with its canonical form "+HH:MM (name)".

Accepted expressions are "local", "UTC", signed offsets such as "+05:30" and
zone identifiers such as "Europe/Paris". Unrecognized expressions are reported
and make the command fail after the remaining ones are printed.

Negative offsets such as "-05:30" end flag parsing, so flags must come first.

--format replaces the "input<TAB>display" line with a template over the fields
input, name, offset, offsetSeconds, utc and display.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resolver()
			if err != nil {
				return err
			}

			var errs []error
			for _, arg := range args {
				tz, err := r.ResolveString(arg)
				if err != nil {
					a.log.Error("Could not resolve expression", "input", arg, "error", err)
					errs = append(errs, err)
					continue
				}
				line, err := a.render("resolve", timezones.Describe(r, tz, &arg))
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, line)
			}

			if len(errs) > 0 {
				return fmt.Errorf("%d of %d expressions not recognized: %w", len(errs), len(args), errors.Join(errs...))
			}
			return nil
		},
	}
}
