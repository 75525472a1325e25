package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"termnav/internal/config"
	"termnav/internal/terminal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		var restoreErr *terminal.RestoreError
		if errors.As(err, &restoreErr) {
			fmt.Fprintln(os.Stderr, "termnav: terminal may be left in raw mode, run 'reset':", err)
		} else {
			fmt.Fprintln(os.Stderr, "termnav:", err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	return buildRootCommand(&options{})
}

func buildRootCommand(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "termnav",
		Short: "Keyboard driven page and section navigator for the terminal",
		Long: `termnav shows a screen of pages, each split into sections.
Digits 1-9 select a page, arrows move between sections, Enter opens a
section and q or Ctrl-C quits. Long pages scroll with a scrollbar.`,
		Example: `  termnav                  # script manager router
  termnav help             # scrollable help screen
  termnav tea              # router rendered through bubbletea
  termnav keys --keymap vk # print decoded key events`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScreen(cmd, opts, config.ScreenRouter)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	flags.StringVar(&opts.keymap, "keymap", "", "key table: auto, csi or vk")
	flags.StringVar(&opts.inputMode, "input-mode", "", "input mode: auto, raw or cooked")
	flags.IntVar(&opts.height, "height", 0, "fixed viewport height in lines, 0 fits the terminal")
	flags.IntVar(&opts.pollMs, "poll", 0, "input poll interval in milliseconds")
	flags.StringVar(&opts.logFile, "log-file", "", "log file path")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "router",
			Short: "Show the script manager router screen",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runScreen(cmd, opts, config.ScreenRouter)
			},
		},
		&cobra.Command{
			Use:   "screen NAME",
			Short: "Show any screen defined in the config file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runScreen(cmd, opts, args[0])
			},
		},
		&cobra.Command{
			Use:   "tea [SCREEN]",
			Short: "Show a screen through the bubbletea front end",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				name := config.ScreenRouter
				if len(args) == 1 {
					name = args[0]
				}
				return runTea(cmd, opts, name)
			},
		},
		&cobra.Command{
			Use:   "keys",
			Short: "Print decoded key events until q is pressed",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runKeys(cmd, opts)
			},
		},
	)

	// "termnav help" shows the help screen; --help still prints usage.
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:   "help",
		Short: "Show the scrollable help screen",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScreen(cmd, opts, config.ScreenHelp)
		},
	})

	return rootCmd
}
