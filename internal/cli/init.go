package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/neolcr/patterns/internal/infra/fsproject"
	"github.com/neolcr/patterns/internal/usecase"
)

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default patterns.yaml, .env.example and .gitignore entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			root, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("invalid dir: %w", err)
			}
			if err := os.MkdirAll(root, 0o755); err != nil {
				return err
			}

			if err := usecase.NewInitProject(fsproject.NewInitializer()).Execute(root, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized patterns project in %s\n", root)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing template files")
	return cmd
}
