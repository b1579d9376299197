package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// The prefix for configuration keys inside environment.
	envPrefix = "BST"
	// The configuration key for config file name.
	keyConfig = "config"

	flagNameLogLevel  = "log-level"
	flagNameLogFormat = "log-format"
)

type (
	bstdemoApp struct {
		baseCmd    *cobra.Command
		baseConfig *baseConfiguration
	}

	baseConfiguration struct {
		// Configuration file. Flags override its values.
		CfgFile   string
		LogLevel  string
		LogFormat string

		log zerolog.Logger
	}
)

// New creates a new bstdemo application
func New() *bstdemoApp {
	baseCmd, baseConfig := newBaseCmd()
	baseCmd.AddCommand(newSearchCmd(baseConfig))
	baseCmd.AddCommand(newShowCmd(baseConfig))
	return &bstdemoApp{baseCmd, baseConfig}
}

// Execute runs the application with the given arguments. os.Args are used when none are given.
func (a *bstdemoApp) Execute(ctx context.Context, args ...string) error {
	if args != nil {
		a.baseCmd.SetArgs(args)
	}
	return a.baseCmd.ExecuteContext(ctx)
}

// SetOutput redirects the command output and the logs.
func (a *bstdemoApp) SetOutput(out, errOut io.Writer) {
	a.baseCmd.SetOut(out)
	a.baseCmd.SetErr(errOut)
}

func newBaseCmd() (*cobra.Command, *baseConfiguration) {
	config := &baseConfiguration{}
	var baseCmd = &cobra.Command{
		Use:           "bstdemo",
		Short:         "Binary search tree demonstration",
		Long:          `bstdemo times searches in binary search trees built in different orders and draws small trees.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initializeConfig(cmd, config); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			return nil
		},
	}
	baseCmd.PersistentFlags().StringVar(&config.CfgFile, keyConfig, "", "config file (yaml); flags and "+envPrefix+"_* environment variables override it")
	baseCmd.PersistentFlags().StringVar(&config.LogLevel, flagNameLogLevel, "info", "logging level: trace, debug, info, warn, error")
	baseCmd.PersistentFlags().StringVar(&config.LogFormat, flagNameLogFormat, "console", "log format: console or json")
	return baseCmd, config
}

func initializeConfig(cmd *cobra.Command, config *baseConfiguration) error {
	var errs []error

	if err := config.initializeConfig(cmd); err != nil {
		errs = append(errs, fmt.Errorf("reading configuration: %w", err))
	}

	if err := config.initLogger(cmd.ErrOrStderr()); err != nil {
		errs = append(errs, fmt.Errorf("initializing logger: %w", err))
	}

	return errors.Join(errs...)
}

// initializeConfig reads in config file and ENV variables if set.
func (config *baseConfiguration) initializeConfig(cmd *cobra.Command) error {
	v := viper.New()

	if config.CfgFile != "" {
		v.SetConfigFile(config.CfgFile)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	// Flags bind to environment variables with the prefix, e.g. --tree-size binds to BST_TREE_SIZE.
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := bindFlags(cmd, v); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindFlagErr []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == keyConfig {
			return
		}

		// Environment variables can't have dashes in them, so bind them to their equivalent
		// keys with underscores, e.g. --tree-size to BST_TREE_SIZE
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				bindFlagErr = append(bindFlagErr, fmt.Errorf("binding env to flag %q: %w", f.Name, err))
				return
			}
		}

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				bindFlagErr = append(bindFlagErr, fmt.Errorf("setting flag %q value: %w", f.Name, err))
				return
			}
		}
	})

	return errors.Join(bindFlagErr...)
}

func (config *baseConfiguration) initLogger(w io.Writer) error {
	lvl, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		return err
	}
	switch config.LogFormat {
	case "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	case "json":
	default:
		return fmt.Errorf("unknown log format %q", config.LogFormat)
	}
	config.log = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return nil
}
