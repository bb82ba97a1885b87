package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	sift "github.com/TFMV/sift/internal/walk"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newWatchCommand(v *viper.Viper) *cobra.Command {
	watchCmd := &cobra.Command{
		Use:   "watch [options] [path]",
		Short: "Repeat the search whenever the tree changes",
		Long: `Run the search, then run it again in full each time something beneath
the root is created, changed or removed. Accepts the same filters as sift.

Examples:
  sift watch -e go
  sift watch -p ./logs -e log --min-size=1KB --timeout=1h`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(v, args)
			if err != nil {
				return err
			}
			logger := newLogger(v)
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			wopts := sift.WatchOptions{
				Debounce: v.GetDuration("watch.debounce"),
				Timeout:  v.GetDuration("watch.timeout"),
			}
			return sift.Watch(ctx, cfg, searchOptions(v, logger), wopts, watchPrinter(cmd.OutOrStdout(), cfg.Root))
		},
	}

	watchCmd.Flags().Duration("debounce", sift.DefaultDebounce, "Quiet period before searching again")
	watchCmd.Flags().Duration("timeout", 0, "Stop watching after this long (0 watches until interrupted)")
	v.BindPFlag("watch.debounce", watchCmd.Flags().Lookup("debounce"))
	v.BindPFlag("watch.timeout", watchCmd.Flags().Lookup("timeout"))

	return watchCmd
}

// watchPrinter prints the status line and first result, then a separator
// before every later result.
func watchPrinter(out io.Writer, root string) sift.WatchHandler {
	first := true
	return func(ctx context.Context, res sift.Result) error {
		if first {
			printStatus(out, root)
			first = false
		} else {
			fmt.Fprintf(out, "--- %s ---\n", time.Now().Format(time.RFC3339))
		}
		printPaths(out, res.Paths)
		return nil
	}
}
