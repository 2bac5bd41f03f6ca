// Package cli implements the wayfinder command line: walking focus through
// scene files and viewing them interactively in the terminal.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phanxgames/wayfinder"
	"github.com/phanxgames/wayfinder/internal/scenefile"
)

// Execute runs the wayfinder CLI.
//
// Settings come from flags, WAYFINDER_* environment variables and an
// optional .wayfinder.toml in the working or home directory, in that order
// of precedence.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:          "wayfinder",
		Short:        "Directional focus navigation over scene files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := readConfig(v, cfgFile); err != nil {
				return err
			}
			level := log.InfoLevel
			if v.GetBool("verbose") {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default .wayfinder.toml)")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.Float64("epsilon", 0, "edge comparison tolerance (0 keeps the scene's value)")
	_ = v.BindPFlags(flags)

	root.AddCommand(newWalkCmd(v))
	root.AddCommand(newViewCmd(v))
	return root
}

func readConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".wayfinder")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	v.SetEnvPrefix("WAYFINDER")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	if v.GetFloat64("epsilon") < 0 {
		return errors.New("epsilon must not be negative")
	}
	return nil
}

// loadScene reads a scene file and builds it, applying the configured
// epsilon and logger.
func loadScene(v *viper.Viper, logger *log.Logger, path string) (*scenefile.File, *wayfinder.Scene, error) {
	f, err := scenefile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if eps := v.GetFloat64("epsilon"); eps > 0 {
		f.Epsilon = eps
	}
	s, err := f.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("building %s: %w", path, err)
	}
	s.SetLogger(logger)
	s.SetDebugMode(v.GetBool("verbose"))
	return f, s, nil
}
