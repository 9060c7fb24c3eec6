package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xonecas/splitpane/internal/config"
)

func newLayoutsCommand() *cobra.Command {
	var forget string
	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "List remembered layouts",
		Long: `List the panel sizes remembered between runs, most recent first.

Examples:
  # Show remembered layouts
  splitpane layouts

  # Forget every layout saved under a name
  splitpane layouts --forget editor`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			st := openStore(cfg)
			if st == nil {
				return fmt.Errorf("layout store is unavailable")
			}
			defer st.Close()

			if forget != "" {
				if err := st.DeleteLayout(forget); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "forgot %s\n", forget)
				return nil
			}

			layouts, err := st.ListLayouts()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPANELS\tSIZES\tCONTAINER\tUPDATED")
			for _, l := range layouts {
				fmt.Fprintf(tw, "%s\t%d\t%v\t%d\t%s\n",
					l.Name, len(l.Sizes), l.Sizes, l.Container, l.Updated.Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&forget, "forget", "", "delete remembered layouts with this name")
	return cmd
}
