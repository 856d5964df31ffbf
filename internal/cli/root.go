package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/neolcr/patterns/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// globalOpts are the persistent flags shared by every subcommand.
type globalOpts struct {
	debug  bool
	config string
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{}

	cmd := &cobra.Command{
		Use:          "patterns",
		Short:        "patterns: runnable design pattern, SOLID, DDD and Go feature demos",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			return tui.Run(tui.Deps{
				Catalog: a.catalog,
				Runner:  a.runDemo(a.cfg.Reports.Enabled),
				Root:    a.configRoot,
				Logger:  a.log,
				Debug:   opts.debug,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .patterns/logs/patterns.log")
	cmd.PersistentFlags().StringVar(&opts.config, "config", "", "directory holding patterns.yaml (autodetected upward from cwd if omitted)")

	cmd.AddCommand(
		listCmd(opts),
		runCmd(opts),
		accountCmd(opts),
		serveCmd(opts),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
