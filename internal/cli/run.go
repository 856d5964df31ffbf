package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func runCmd(opts *globalOpts) *cobra.Command {
	var format string
	var save bool

	c := &cobra.Command{
		Use:   "run <demo>",
		Short: "Run one demo and print its trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			report, reportID, err := a.runDemo(save).Execute(ctx, args[0])
			if err != nil && report.Name == "" {
				return err
			}

			// A failed demo or a failed save still prints what was captured.
			if perr := printReport(cmd.OutOrStdout(), report, reportID, format); perr != nil {
				return perr
			}
			return err
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&save, "save", false, "Save the report under the configured reports dir")
	return c
}
