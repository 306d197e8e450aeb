package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func sourcesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "Show the configuration in effect and the contact sources it would read",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := e.loadWorkspace()
			if err != nil {
				return err
			}

			refs, err := e.catalog.ListSources(ws.cfg, ws.root)
			if err != nil {
				return err
			}
			selected, err := e.catalog.Resolve(ws.cfg, ws.root)
			if err != nil {
				return err
			}

			cfgPath := ws.cfgPath
			if cfgPath == "" {
				cfgPath = "(none, using defaults)"
			}

			tw := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Config:\t%s\n", cfgPath)
			fmt.Fprintf(tw, "Kind:\t%s\n", ws.cfg.Source.Kind)
			fmt.Fprintf(tw, "Output:\t%s (indent %d)\n", ws.cfg.Output.Format, ws.cfg.Output.Indent)
			fmt.Fprintf(tw, "Selected:\t%s\t%s\n", selected.Kind, selected.Path)
			if err := tw.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(e.stdout)
			if len(refs) == 0 {
				fmt.Fprintln(e.stdout, "(no contact sources found)")
				return nil
			}

			tw = tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
			for _, r := range refs {
				fmt.Fprintf(tw, "- %s\t%s\n", r.Kind, r.Path)
			}
			return tw.Flush()
		},
	}
}
