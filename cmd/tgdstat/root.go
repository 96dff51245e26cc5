package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tgdata/tgdfile"
	"github.com/tgdata/tgdfile/internal/watcher"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "tgdstat [file...]",
	Short: "Report the byte size of files",
	Long: `tgdstat reports the byte size of files through raw OS file
handles, and can watch files for size changes until interrupted.`,
	Version: version,
	Args:    cobra.ArbitraryArgs,
	RunE:    runStat,
}

func init() {
	rootCmd.Flags().BoolP("watch", "w", false, "watch the files and report every size change")
	rootCmd.Flags().Float64P("interval", "s", 0.1, "with -w, sleep for approximately N seconds between checks")
	rootCmd.Flags().BoolP("quiet", "q", false, "never output file names")
	rootCmd.Flags().BoolP("verbose", "v", false, "always output file names")

	viper.BindPFlag("watch", rootCmd.Flags().Lookup("watch"))
	viper.BindPFlag("interval", rootCmd.Flags().Lookup("interval"))
	viper.BindPFlag("quiet", rootCmd.Flags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
}

func Execute() error {
	return rootCmd.Execute()
}

func runStat(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no files specified")
	}

	watch := viper.GetBool("watch")
	interval := time.Duration(viper.GetFloat64("interval") * float64(time.Second))
	quiet := viper.GetBool("quiet")
	verbose := viper.GetBool("verbose")
	output := cmd.OutOrStdout()
	multiFile := len(args) > 1

	// Default: show names for multiple files only
	// -v/--verbose: always show
	// -q/--quiet: never show (overrides -v)
	showNames := (multiFile || verbose) && !quiet

	if watch {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		return runWatch(ctx, args, interval, output, cmd.ErrOrStderr(), showNames)
	}

	for _, path := range args {
		size, err := statPath(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "tgdstat: %s: %v\n", path, err)
			continue
		}
		printSize(output, path, size, false, showNames)
	}

	return nil
}

// statPath reports the current size of path. "-" reports on the standard
// input descriptor, which is externally owned and never closed.
func statPath(path string) (int64, error) {
	if path == "-" {
		return tgdfile.Stdin().Size()
	}

	h, err := tgdfile.Open(path, os.O_RDONLY)
	if err != nil {
		return 0, err
	}
	defer h.Close()

	return h.Size()
}

func printSize(output io.Writer, path string, size int64, truncated, showNames bool) {
	suffix := ""
	if truncated {
		suffix = " (truncated)"
	}
	if showNames {
		fmt.Fprintf(output, "%d %s%s\n", size, path, suffix)
	} else {
		fmt.Fprintf(output, "%d%s\n", size, suffix)
	}
}

// runWatch follows size changes of all paths concurrently until the
// context is cancelled. Output is serialized across files.
func runWatch(ctx context.Context, paths []string, interval time.Duration, output, errOut io.Writer, showNames bool) error {
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, path := range paths {
		w := watcher.NewWatcher(watcher.Config{
			Path:         path,
			PollInterval: interval,
		})

		events, err := w.Watch(ctx)
		if err != nil {
			fmt.Fprintf(errOut, "tgdstat: %s: %v\n", path, err)
			continue
		}

		wg.Add(1)
		go func(p string, events <-chan watcher.Event) {
			defer wg.Done()

			for evt := range events {
				mu.Lock()
				printSize(output, p, evt.Size, evt.Truncated, showNames)
				mu.Unlock()
			}
		}(path, events)
	}

	wg.Wait()
	return nil
}
