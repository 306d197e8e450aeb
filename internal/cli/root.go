// Package cli wires the fetchcontacts commands.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Joshrizika/Chat-Pilot/internal/infra/logger"
	"github.com/Joshrizika/Chat-Pilot/internal/infra/mappingenc"
	"github.com/Joshrizika/Chat-Pilot/internal/infra/sources"
	"github.com/Joshrizika/Chat-Pilot/internal/infra/workspacefinder"
	"github.com/Joshrizika/Chat-Pilot/internal/ports"
	"github.com/Joshrizika/Chat-Pilot/internal/usecase"
)

// Execute runs the command line and exits with its status.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	return newEnv(stdout, stderr).run(args)
}

// env carries everything a command touches outside the process, so tests can redirect it.
type env struct {
	stdout io.Writer
	stderr io.Writer

	wd       string
	cacheDir func() (string, error)
	finder   *workspacefinder.Finder
	catalog  *sources.Catalog

	// store replaces the configured source when set.
	store ports.ContactStore

	debug   bool
	cleanup func() error
}

func newEnv(stdout, stderr io.Writer) *env {
	return &env{
		stdout:   stdout,
		stderr:   stderr,
		cacheDir: os.UserCacheDir,
		finder:   workspacefinder.NewFinder(),
		catalog:  sources.NewCatalog(),
	}
}

func (e *env) run(args []string) int {
	cmd := newRootCmd(e)
	cmd.SetArgs(args)
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)

	code := 0
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		logger.L().Error("command.failed", "args", args, "err", err.Error())
		e.printError(err)
		code = 1
	}

	if e.cleanup != nil {
		_ = e.cleanup()
		e.cleanup = nil
	}
	return code
}

func newRootCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetchcontacts",
		Short: "Export contacts' mobile numbers as a name → number JSON object",
		Long: "fetchcontacts reads your address book and prints one JSON object mapping each contact's\n" +
			"full name to their mobile number, reduced to digits and '+'.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			e.setupLogging()
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := e.loadWorkspace()
			if err != nil {
				return err
			}

			enc, err := mappingenc.ForConfig(ws.cfg.Output)
			if err != nil {
				return err
			}

			store, _, err := e.openStore(ws)
			if err != nil {
				return err
			}

			uc := usecase.NewExportContacts(store, enc, usecase.WithLogger(logger.L()))
			_, err = uc.Execute(cmd.Context(), e.stdout)
			return err
		},
	}

	cmd.PersistentFlags().BoolVar(&e.debug, "debug", false, "enable verbose logging to .fetchcontacts/logs/fetchcontacts.log")

	cmd.AddCommand(
		lookupCmd(e),
		browseCmd(e),
		sourcesCmd(e),
		initCmd(e),
		versionCmd(),
	)
	return cmd
}

// setupLogging logs under the workspace root, else the user cache dir. Failure means no logs.
func (e *env) setupLogging() {
	root := e.workingDir()
	if r, err := e.finder.FindRoot(root); err == nil {
		root = r
	} else if e.cacheDir != nil {
		if dir, err := e.cacheDir(); err == nil && dir != "" {
			root = filepath.Join(dir, "fetchcontacts")
		}
	}

	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: e.debug})
	if err != nil {
		return
	}
	e.cleanup = cleanup
}
