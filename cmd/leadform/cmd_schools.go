package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-leadform/pkg/school"
)

func newSchoolsCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "schools",
		Short: "List loaded schools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.orch.Err(); err != nil {
				return err
			}
			store := app.orch.Store()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SLUG\tID\tNAME\tFLOWS")
			for _, slug := range store.Slugs() {
				entry, _ := store.Entry(slug)
				flows := entry.Flows()
				cfg, ok := entry.Config(school.FlowBaseFullForm)
				if !ok && len(flows) > 0 {
					cfg, ok = entry.Config(flows[0])
				}
				if !ok {
					continue
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", slug, cfg.SchoolID, cfg.SchoolName, joinFlows(flows))
			}
			return tw.Flush()
		},
	}
}

func joinFlows(flows []school.Flow) string {
	out := ""
	for i, flow := range flows {
		if i > 0 {
			out += ","
		}
		out += string(flow)
	}
	return out
}
