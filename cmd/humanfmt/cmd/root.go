package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	hferror "github.com/msto63/humanfmt/foundation/core/error"
	"github.com/msto63/humanfmt/foundation/utils/timex"
	"github.com/msto63/humanfmt/pkg/core/cache"
	"github.com/msto63/humanfmt/pkg/core/config"
	"github.com/msto63/humanfmt/pkg/core/logging"
)

// app is the state shared by all subcommands of one invocation
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string

	cfg       *config.Config
	converter *timex.Converter
	plans     *cache.Cache[timex.Plan]
	logger    *logging.Logger
}

// NewRootCmd builds the humanfmt command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "humanfmt",
		Short: "Human-readable timestamps and numbers",
		Long: `humanfmt converts timestamps between formats and renders large
numbers in compact K/M/B notation.

Timestamp templates use the tokens
  YYYY MM DD HH MI SS   date and time fields
  offset                UTC offset (+hhmm)
  TZ                    zone name
  nnnnnnnnn             nanoseconds (microsecond precision)
  Z                     convert to UTC and append Z
plus the named formats epoch_ms and epoch_sec and any configured preset.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./humanfmt.toml or $HOME/.config/humanfmt/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text, json, console or logfmt")

	rootCmd.AddCommand(
		newConvertCmd(a),
		newBatchCmd(a),
		newNumberCmd(a),
		newDiffCmd(a),
		newPresetsCmd(a),
		newPlaygroundCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the command tree and returns the process exit code
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		printError(err)
		return exitCode(err)
	}
	return 0
}

// setup loads the configuration and builds the logger and converter
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Discover(a.cfgFile)
	if err != nil {
		return err
	}

	level := cfg.General.LogLevel
	if a.verbose {
		level = "debug"
	}
	format := cfg.General.LogFormat
	if a.logFormat != "" {
		format = a.logFormat
	}

	a.cfg = cfg
	a.logger = logging.Wrap(logging.NewLogger(logging.LoggerConfig{
		ServiceName: "humanfmt",
		Level:       level,
		Format:      format,
		Output:      cmd.ErrOrStderr(),
	}), cmd.Name())

	for _, key := range cfg.UnknownKeys() {
		a.logger.Warn("unknown config key", "key", key, "path", cfg.Path())
	}
	if cfg.Path() != "" {
		a.logger.Debug("config loaded", "path", cfg.Path())
	}

	a.plans = cache.New[timex.Plan](cache.DefaultConfig())
	a.converter, err = cfg.Converter(timex.WithPlanCache(a.plans))
	return err
}

// resolveFormat picks the target format: positional argument, --format,
// --preset, then the configured default
func (a *app) resolveFormat(positional, format, preset string) (string, error) {
	given := 0
	for _, s := range []string{positional, format, preset} {
		if s != "" {
			given++
		}
	}
	if given > 1 {
		return "", hferror.New("give the format only once: as argument, --format or --preset").
			WithCode(hferror.CodeInvalidInput).
			WithOperation("cmd.resolveFormat")
	}

	switch {
	case positional != "":
		return positional, nil
	case format != "":
		return format, nil
	case preset != "":
		if _, ok := a.converter.Presets()[preset]; !ok {
			return "", hferror.New("unknown preset: "+preset).
				WithCode(hferror.CodeInvalidInput).
				WithOperation("cmd.resolveFormat").
				WithDetail("preset", preset)
		}
		return preset, nil
	default:
		return a.cfg.Timestamp.DefaultFormat, nil
	}
}

func exitCode(err error) int {
	return hferror.GetCode(err).ExitCode()
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
