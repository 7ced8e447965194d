// Package cli provides utility functions for the command line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// InitViperConfig reads the configuration file for a command and binds the
// environment variables prefixed with the command name.
func InitViperConfig(cmdName string, cmd *cobra.Command, vip *viper.Viper, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}

	if f := cmd.Flag("config"); f != nil && f.Value.String() != "" {
		vip.SetConfigFile(f.Value.String())
	} else {
		vip.SetConfigName(cmdName)
		vip.AddConfigPath(".")

		if dir, err := os.UserConfigDir(); err == nil {
			vip.AddConfigPath(filepath.Join(dir, cmdName))
		}
		if runtime.GOOS != "windows" {
			vip.AddConfigPath("/etc/" + cmdName)
		}
	}
	if err := vip.ReadInConfig(); err != nil {
		var e viper.ConfigFileNotFoundError
		if errors.As(err, &e) {
			log.Debug("No configuration file, using defaults, env variables and flags", "error", e)
		} else {
			return fmt.Errorf("invalid configuration file: %w", err)
		}
	} else {
		log.Debug("Using configuration file", "file", vip.ConfigFileUsed())
	}

	vip.SetEnvPrefix(cmdName)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	vip.AutomaticEnv()

	// AutomaticEnv only covers keys viper already knows about; bind every
	// prefixed variable so Unmarshal sees them too.
	prefix := strings.ToUpper(strings.ReplaceAll(cmdName, "-", "_")) + "_"
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, prefix) {
			continue
		}

		s := strings.SplitN(e, "=", 2)
		k := strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s[0], prefix), "_", "-"))
		if err := vip.BindEnv(k, s[0]); err != nil {
			return fmt.Errorf("could not bind environment variable: %w", err)
		}
	}

	return nil
}

// InstallConfigFlag adds a config flag to the command.
func InstallConfigFlag(cmd *cobra.Command) *string {
	return cmd.PersistentFlags().String("config", "", "use a specific configuration file")
}

// NewLogger returns a text logger on w at Info level, or Debug when verbose.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
