package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
	"github.com/Joshrizika/Chat-Pilot/internal/infra/logger"
	"github.com/Joshrizika/Chat-Pilot/internal/infra/mappingenc"
	"github.com/Joshrizika/Chat-Pilot/internal/usecase"
	"github.com/Joshrizika/Chat-Pilot/internal/usecase/lookup"
)

func lookupCmd(e *env) *cobra.Command {
	var from string

	c := &cobra.Command{
		Use:   "lookup NAME",
		Short: "Print the normalized mobile number of one contact",
		Long: "lookup prints the number the export would map NAME to. Words are joined with spaces,\n" +
			"so quoting the full name is optional. With --from, NAME is resolved in a previously\n" +
			"exported JSON file instead of the contact store.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")

			var (
				number string
				err    error
			)
			if strings.TrimSpace(from) != "" {
				number, err = lookupInFile(from, name)
			} else {
				number, err = e.lookupInStore(cmd, name)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(e.stdout, number)
			return err
		},
	}

	c.Flags().StringVar(&from, "from", "", "Resolve NAME in an exported JSON file instead of the contact store")
	return c
}

func lookupInFile(path, name string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &domain.OpError{Op: "cli.lookup.read", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return lookup.FromDocument(b, name)
}

func (e *env) lookupInStore(cmd *cobra.Command, name string) (string, error) {
	ws, err := e.loadWorkspace()
	if err != nil {
		return "", err
	}

	store, _, err := e.openStore(ws)
	if err != nil {
		return "", err
	}

	export := usecase.NewExportContacts(store, mappingenc.NewJSON(), usecase.WithLogger(logger.L()))
	return usecase.NewLookupContact(export).Execute(cmd.Context(), name)
}
