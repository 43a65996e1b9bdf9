package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/homcount/builder"
	"github.com/katalvlaran/homcount/graph"
	"github.com/katalvlaran/homcount/hom"
)

// demoScenario is a pattern/target pair with a known count.
type demoScenario struct {
	name   string
	n, m   int
	g      []graph.Edge
	target builder.Constructor
}

func demoScenarios() []demoScenario {
	return []demoScenario{
		{
			name: "path 1-2-4 plus isolated 0,3 into C4",
			n:    5, m: 4,
			g:      []graph.Edge{{From: 2, To: 4}, {From: 4, To: 2}, {From: 1, To: 2}, {From: 2, To: 1}},
			target: builder.Cycle(4),
		},
		{
			name: "tree 0-1, 1-3, 1-2, 2-4 into K5",
			n:    5, m: 5,
			g: []graph.Edge{
				{From: 0, To: 1}, {From: 1, To: 0}, {From: 1, To: 3}, {From: 3, To: 1},
				{From: 1, To: 2}, {From: 2, To: 1}, {From: 2, To: 4}, {From: 4, To: 2},
			},
			target: builder.Complete(5),
		},
	}
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Count the two reference scenarios",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			for _, s := range demoScenarios() {
				h, err := builder.BuildGraph(nil, s.target)
				if err != nil {
					return err
				}
				n, err := hom.CountHomomorphisms(s.g, h.Edges(), s.n, s.m,
					hom.WithContext(a.ctx), hom.WithLogger(a.log))
				if err != nil {
					return fmt.Errorf("%s: %w", s.name, err)
				}
				if _, err := fmt.Fprintf(a.out, "%s: %d\n", s.name, n); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
