package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gyaneshwarpardhi/payhook/pkg/event"
)

func typesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the event types compiled into this build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			family, _ := cmd.Flags().GetString("family")
			if family != "" && !event.IsFamily(family) {
				return fmt.Errorf("unknown family %q", family)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tFAMILY\tGO TYPE\tOBJECT")
			for _, t := range event.KnownTypes() {
				d, _ := event.Describe(t)
				if family != "" && string(d.Family) != family {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Type, d.Family, d.Go, strings.Join(d.Object, "|"))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringP("family", "f", "", "Only list types of this family")

	return cmd
}

func familiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "Show which event families are compiled in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			compiled := make(map[event.Family]int)
			for _, t := range event.KnownTypes() {
				f, _ := event.FamilyOf(t)
				compiled[f]++
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FAMILY\tCOMPILED\tTYPES")
			for _, f := range event.AllFamilies {
				n, ok := compiled[f]
				fmt.Fprintf(tw, "%s\t%t\t%d\n", f, ok, n)
			}
			return tw.Flush()
		},
	}
}
