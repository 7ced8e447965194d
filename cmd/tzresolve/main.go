// Command tzresolve resolves timezone expressions, lists zones, and serves the
// timezones HTTP component.
package main

import (
	"log/slog"
	"os"

	"github.com/goliatone/go-tzresolve/cmd/tzresolve/commands"
)

func main() {
	os.Exit(run(commands.New()))
}

type app interface {
	Run() error
	UsageError() bool
}

func run(a app) int {
	if err := a.Run(); err != nil {
		slog.Error(err.Error())

		if a.UsageError() {
			return 2
		}
		return 1
	}

	return 0
}
