// Package commands implements the tzresolve command tree.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-tzresolve/internal/cli"
	"github.com/goliatone/go-tzresolve/internal/prompt"
	"github.com/goliatone/go-tzresolve/pkg/render"
	"github.com/goliatone/go-tzresolve/pkg/timezone"
	"github.com/goliatone/go-tzresolve/pkg/tzdb"
)

const cmdName = "tzresolve"

// Config is the merged flag, environment and file configuration.
type Config struct {
	Verbose         bool   `mapstructure:"verbose"`
	Aliases         string `mapstructure:"aliases"`
	EmptyName       string `mapstructure:"empty-name"`
	Placeholder     string `mapstructure:"placeholder"`
	NativeNameAtNow bool   `mapstructure:"native-name-at-now"`
	Format          string `mapstructure:"format"`

	Limit    int    `mapstructure:"limit"`
	Addr     string `mapstructure:"addr"`
	BasePath string `mapstructure:"base-path"`
}

// App is the tzresolve application.
type App struct {
	rootCmd *cobra.Command
	viper   *viper.Viper
	config  Config
	log     *slog.Logger

	out    io.Writer
	errOut io.Writer
	driver prompt.Driver
	db     tzdb.Database
	clock  func() time.Time
	zones  []string
	engine *render.Engine
}

type options struct {
	args   []string
	out    io.Writer
	errOut io.Writer
	driver prompt.Driver
	db     tzdb.Database
	clock  func() time.Time
	zones  []string
}

// Options are the variadic options available to New.
type Options func(*options)

// WithArgs overrides the process arguments.
func WithArgs(args ...string) Options {
	return func(o *options) { o.args = args }
}

// WithOutput redirects standard and error output.
func WithOutput(out, errOut io.Writer) Options {
	return func(o *options) {
		o.out = out
		o.errOut = errOut
	}
}

// WithDriver replaces the terminal prompt driver used by pick.
func WithDriver(driver prompt.Driver) Options {
	return func(o *options) { o.driver = driver }
}

// WithDatabase replaces the system zone database.
func WithDatabase(db tzdb.Database) Options {
	return func(o *options) { o.db = db }
}

// WithClock replaces the wall clock.
func WithClock(clock func() time.Time) Options {
	return func(o *options) { o.clock = clock }
}

// WithZones replaces the embedded zone list used by list and pick.
func WithZones(zones []string) Options {
	return func(o *options) { o.zones = zones }
}

// New registers the command tree and returns the App.
func New(fns ...Options) *App {
	opts := options{
		out:    os.Stdout,
		errOut: os.Stderr,
		db:     tzdb.System(),
		clock:  time.Now,
	}
	for _, opt := range fns {
		opt(&opts)
	}

	a := &App{
		viper:  viper.New(),
		out:    opts.out,
		errOut: opts.errOut,
		driver: opts.driver,
		db:     opts.db,
		clock:  opts.clock,
		zones:  opts.zones,
	}
	a.log = cli.NewLogger(a.errOut, false)

	a.rootCmd = &cobra.Command{
		Use:   cmdName,
		Short: "Resolve timezone expressions",
		Long: `Resolve timezone expressions such as "local", "UTC", "+05:30" or
"America/New_York" into a canonical zone with its current UTC offset.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Arguments and flags parsed: later failures are not usage errors.
			a.rootCmd.SilenceUsage = true

			if err := cli.InitViperConfig(cmdName, a.rootCmd, a.viper, a.log); err != nil {
				return err
			}
			if err := a.viper.Unmarshal(&a.config); err != nil {
				return fmt.Errorf("unable to decode configuration: %w", err)
			}
			a.log = cli.NewLogger(a.errOut, a.config.Verbose)
			a.log.Debug("Configuration loaded", "config", fmt.Sprintf("%+v", a.config))
			return nil
		},
	}
	a.rootCmd.SetOut(a.out)
	a.rootCmd.SetErr(a.errOut)
	args := opts.args
	if args == nil {
		args = os.Args[1:]
	}
	a.rootCmd.SetArgs(escapeOffsets(args))

	cli.InstallConfigFlag(a.rootCmd)
	flags := a.rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "enable verbose logging")
	flags.String("aliases", "", "YAML file mapping alias names to zone identifiers")
	flags.String("empty-name", string(timezone.EmptyNamePlaceholder), `how unnamed zones render: "placeholder" or "blank"`)
	flags.String("placeholder", timezone.DefaultNamePlaceholder, "name rendered for unnamed zones in placeholder mode")
	flags.Bool("native-name-at-now", false, "name native rules by their current abbreviation")
	flags.String("format", "", `template for each output line, e.g. "{{ offset }} {{ name }}"`)
	if err := a.viper.BindPFlags(flags); err != nil {
		a.log.Warn("Failed to bind flags", "error", err)
	}

	a.rootCmd.AddCommand(
		a.installResolveCmd(),
		a.installListCmd(),
		a.installPickCmd(),
		a.installServeCmd(),
	)

	return a
}

// Run executes the command tree.
func (a *App) Run() error {
	return a.rootCmd.Execute()
}

// UsageError reports whether the last failure came from argument or flag
// parsing.
func (a *App) UsageError() bool {
	return !a.rootCmd.SilenceUsage
}

// escapeOffsets ends flag parsing before the first argument that reads as a
// negative offset, so "-05:30" reaches the command instead of being parsed as
// shorthand flags. Flags after that argument are treated as arguments.
func escapeOffsets(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		if _, ok := timezone.ParseOffset(arg); !ok {
			continue
		}
		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, "--")
		return append(out, args[i:]...)
	}
	return args
}

func (a *App) bindFlag(cmd *cobra.Command, name string) {
	if err := a.viper.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
		a.log.Warn("Failed to bind flag", "flag", name, "error", err)
	}
}

// resolver builds the resolver described by the current configuration.
func (a *App) resolver() (*timezone.Resolver, error) {
	db := a.db
	if a.config.Aliases != "" {
		aliases, err := tzdb.LoadAliasFile(db, a.config.Aliases)
		if err != nil {
			return nil, err
		}
		db = aliases
	}

	mode, ok := timezone.ParseEmptyNameMode(a.config.EmptyName)
	if !ok {
		return nil, fmt.Errorf("invalid empty-name %q: expected %q or %q", a.config.EmptyName, timezone.EmptyNamePlaceholder, timezone.EmptyNameBlank)
	}

	return timezone.NewResolver(
		timezone.WithDatabase(db),
		timezone.WithClock(a.clock),
		timezone.WithLogger(a.log),
		timezone.WithEmptyName(mode, a.config.Placeholder),
		timezone.WithNativeNameAtNow(a.config.NativeNameAtNow),
	), nil
}

// render renders data with the --format template, or with the embedded
// template called name when no format is configured.
func (a *App) render(name string, data any) (string, error) {
	if a.engine == nil {
		engine, err := render.New()
		if err != nil {
			return "", err
		}
		a.engine = engine
	}
	if a.config.Format != "" {
		return a.engine.RenderString(render.Plain(a.config.Format), data)
	}
	return a.engine.RenderTemplate(name, data)
}
