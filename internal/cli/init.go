package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
	"github.com/Joshrizika/Chat-Pilot/internal/infra/fsworkspace"
)

func initCmd(e *env) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [DIR]",
		Short: "Write a fetchcontacts.yaml template (defaults to the current directory)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := e.workingDir()
			if len(args) == 1 {
				dir = args[0]
			}
			abs, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("invalid directory: %w", err)
			}

			if err := fsworkspace.NewInitializer().Init(domain.WorkspaceTarget{Root: abs}, force); err != nil {
				return err
			}

			fmt.Fprintf(e.stdout, "Initialized fetchcontacts workspace in %s\n", abs)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return c
}
