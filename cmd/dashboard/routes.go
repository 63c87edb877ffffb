package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/66gu1/filmoradmin/internal/app/menu"
	"github.com/66gu1/filmoradmin/internal/app/resource"
	"github.com/spf13/cobra"
)

func routesCmd() *cobra.Command {
	var withResources bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the route permission map derived from the menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := menu.Default()
			if err != nil {
				return err
			}
			if err = printRoutes(cmd.OutOrStdout(), m.Routes()); err != nil {
				return err
			}
			if withResources {
				return printResources(cmd.OutOrStdout(), resource.DefaultRegistry())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&withResources, "resources", "r", false, "Also print the proxied resource registry")

	return cmd
}

func printRoutes(out io.Writer, routes menu.RouteMap) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROUTE\tPERMISSIONS")
	for _, p := range routes.Paths() {
		perms := strings.Join(routes[p], ",")
		if perms == "" {
			perms = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\n", p, perms)
	}
	return tw.Flush()
}

func printResources(out io.Writer, registry *resource.Registry) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\nRESOURCE\tBACKEND\tPOLICY\tREAD ONLY")
	for _, res := range registry.All() {
		policy := "permissions"
		if res.Family == resource.FamilyMatrix {
			policy = "role matrix"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", res.Name, res.BackendPath, policy, res.ReadOnly)
	}
	return tw.Flush()
}
