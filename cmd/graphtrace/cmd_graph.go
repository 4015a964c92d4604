package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) graphCmd() *cobra.Command {
	var geo bool

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the adjacency list of the loaded graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			ng := a.graph
			g := ng.Graph

			for u := 0; u < g.NodeCount(); u++ {
				parts := make([]string, 0, g.Degree(u))
				for _, e := range g.Neighbors(u) {
					item := fmt.Sprintf("(%s, %d)", ng.Names.Name(e.To), e.Weight)
					if geo {
						item = fmt.Sprintf("(%s, %d, %.0f km)", ng.Names.Name(e.To), e.Weight, ng.GeoDistance(u, e.To)/1000)
					}
					parts = append(parts, item)
				}
				fmt.Fprintf(w, "%s: %s\n", ng.Names.Name(u), strings.Join(parts, " "))
			}
			fmt.Fprintf(w, "%d nodes, %d edges, total weight %d\n", g.NodeCount(), g.EdgeCount(), g.TotalWeight())

			if geo {
				b := ng.Bound()
				fmt.Fprintf(w, "bounds: lon [%.2f, %.2f] lat [%.2f, %.2f]\n", b.Min.Lon(), b.Max.Lon(), b.Min.Lat(), b.Max.Lat())
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&geo, "geo", false, "Also print great-circle distances and the bounding box")

	return cmd
}
