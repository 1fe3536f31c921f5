package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jspittman/winnow/internal/app"
)

var (
	configPath  string
	tasksPath   string
	pollSeconds int
	multiSelect bool
)

var rootCmd = &cobra.Command{
	Use:   "winnow",
	Short: "Terminal task browser with a filter sheet",
	Long: `winnow is a terminal UI for browsing a local task list.

Press f to open the filter sheet, toggle filters with enter or space,
and press c to clear them. The filter catalog, default filter, and
selection mode are configurable in ~/.config/winnow/config.toml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.Options{
			ConfigPath:  configPath,
			TasksPath:   tasksPath,
			MultiSelect: multiSelect,
		}
		if pollSeconds > 0 {
			opts.PollEvery = pollSeconds
		}
		return app.Run(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "override config path (default ~/.config/winnow/config.toml)")
	rootCmd.Flags().StringVar(&tasksPath, "tasks", "", "override task file path")
	rootCmd.Flags().IntVar(&pollSeconds, "poll", 0, "task file reload interval in seconds (default 2)")
	rootCmd.Flags().BoolVar(&multiSelect, "multi", false, "enable multi-select filtering")
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "winnow: %v\n", err)
		return 1
	}
	return 0
}
