package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	sift "github.com/TFMV/sift/internal/walk"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var version = "0.1.0"

// Execute builds the root command and runs it against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand returns the sift command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "sift [options] [path]",
		Short: "Find files by name, extension, type and size",
		Long: `sift walks a directory tree and prints every entry that matches all of
the given filters. The tree is walked first and then filtered in parallel.

Examples:
  sift --name=main
  sift -p ./src -e go -t f
  sift -e log --min-size=1MB --sort /var/log
  sift -t l`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(v, args)
			if err != nil {
				return err
			}
			logger := newLogger(v)
			defer logger.Sync()

			return runSearch(cmd.OutOrStdout(), cfg, searchOptions(v, logger))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.sift.yaml)")

	// Filters
	flags.StringP("path", "p", ".", "Directory to search in")
	flags.StringP("name", "n", "", "Substring the entry name must contain")
	flags.StringP("extension", "e", "", "Exact extension to match, without the dot (e.g. rs, txt)")
	flags.StringP("type", "t", "", "Entry type: f (file), d (directory), l (symlink)")
	flags.StringP("min-size", "s", "", "Minimum size in bytes (e.g. 1048576, 10KB, 1MiB)")
	flags.String("max-size", "", "Maximum size in bytes")
	flags.Bool("normalize", false, "Compare names in Unicode NFC form")

	// Execution
	flags.Int("workers", 0, "Number of filter workers (0 uses one per CPU)")
	flags.Bool("sort", false, "Sort matched paths")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.BoolP("quiet", "q", false, "Log errors only")

	for _, name := range []string{
		"path", "name", "extension", "type", "min-size", "max-size", "normalize",
		"workers", "sort", "verbose", "quiet",
	} {
		v.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(newWatchCommand(v))
	return rootCmd
}

// initConfig reads in config file and ENV variables if set.
func initConfig(v *viper.Viper, cfgFile string, stderr io.Writer) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(".sift")
	}

	v.SetEnvPrefix("sift")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("reading config file: %w", err)
		}
		return nil
	}
	if v.GetBool("verbose") {
		fmt.Fprintln(stderr, "Using config file:", v.ConfigFileUsed())
	}
	return nil
}

// buildConfig resolves and validates every filter before the search runs.
func buildConfig(v *viper.Viper, args []string) (sift.Config, error) {
	cfg := sift.NewConfig()

	cfg.Root = v.GetString("path")
	if len(args) > 0 {
		cfg.Root = args[0]
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}

	cfg.Name = v.GetString("name")
	cfg.Extension = v.GetString("extension")
	cfg.HasExtension = v.IsSet("extension")
	cfg.Normalize = v.GetBool("normalize")

	typ, err := sift.ParseEntryType(v.GetString("type"))
	if err != nil {
		return cfg, fmt.Errorf("invalid type value: %w", err)
	}
	cfg.Type = typ

	if minSizeStr := v.GetString("min-size"); minSizeStr != "" {
		if cfg.MinSize, err = parseSize(minSizeStr); err != nil {
			return cfg, fmt.Errorf("invalid min-size value: %w", err)
		}
	}
	if maxSizeStr := v.GetString("max-size"); maxSizeStr != "" {
		if cfg.MaxSize, err = parseSize(maxSizeStr); err != nil {
			return cfg, fmt.Errorf("invalid max-size value: %w", err)
		}
	}

	return cfg, nil
}

// parseSize parses a non-negative byte count such as 1024, 10KB or 1MiB.
func parseSize(s string) (int64, error) {
	n, err := humanize.ParseBytes(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("%s is too large", s)
	}
	return int64(n), nil
}

func newLogger(v *viper.Viper) *zap.Logger {
	switch {
	case v.GetBool("verbose"):
		return sift.NewLogger(sift.LogLevelDebug)
	case v.GetBool("quiet"):
		return sift.NewLogger(sift.LogLevelError)
	default:
		return sift.NewLogger(sift.LogLevelWarn)
	}
}

func searchOptions(v *viper.Viper, logger *zap.Logger) sift.Options {
	return sift.Options{
		Workers: v.GetInt("workers"),
		Sort:    v.GetBool("sort"),
		Logger:  logger,
	}
}

func printStatus(out io.Writer, root string) {
	fmt.Fprintf(out, "Searching in: %q\n", root)
}

func printPaths(out io.Writer, paths []string) {
	for _, p := range paths {
		fmt.Fprintln(out, p)
	}
}

func runSearch(out io.Writer, cfg sift.Config, opts sift.Options) error {
	printStatus(out, cfg.Root)
	printPaths(out, sift.Search(cfg, opts).Paths)
	return nil
}
