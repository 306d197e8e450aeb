package cli

import (
	"github.com/spf13/cobra"

	"github.com/Joshrizika/Chat-Pilot/internal/infra/logger"
	"github.com/Joshrizika/Chat-Pilot/internal/infra/mappingenc"
	"github.com/Joshrizika/Chat-Pilot/internal/ui/tui"
	"github.com/Joshrizika/Chat-Pilot/internal/usecase"
)

func browseCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse and search the export interactively",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := e.loadWorkspace()
			if err != nil {
				return err
			}

			store, ref, err := e.openStore(ws)
			if err != nil {
				return err
			}

			export := usecase.NewExportContacts(store, mappingenc.NewJSON(), usecase.WithLogger(logger.L()))

			return tui.Run(tui.Deps{
				Contacts: export,
				Source:   ref,
				Logger:   logger.L(),
				Debug:    e.debug,
				LogPath:  logger.Path(),
			})
		},
	}
}
