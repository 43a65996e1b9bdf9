package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/homcount/config"
	"github.com/katalvlaran/homcount/hom"
)

func newFamilyCmd(a *app) *cobra.Command {
	var f jobFlags
	cmd := &cobra.Command{
		Use:   "family",
		Short: "Count every graph over the decomposition's possible edges into the target",
		Long: "family builds the job's decomposition over the pattern's vertex count, ignores the pattern's " +
			"edges, and prints one line per family member: its edge list and its count. " +
			"The equivalence method is used unless --method or the job names another one.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := f.load(cmd.Flags())
			if err != nil {
				return err
			}
			g, err := j.Pattern.Build()
			if err != nil {
				return fmt.Errorf("pattern: %w", err)
			}
			h, err := j.Target.Build()
			if err != nil {
				return fmt.Errorf("target: %w", err)
			}
			td, err := decompositionFor(j, g)
			if err != nil {
				return err
			}

			ctx, cancel := a.withTimeout(j)
			defer cancel()
			family, err := hom.CountFamily(td, h, familyMethod(j), a.options(ctx, j)...)
			if err != nil {
				return err
			}
			for _, fc := range family {
				if _, err := fmt.Fprintln(a.out, fc.Graph.Edges(), fc.Count); err != nil {
					return err
				}
			}
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

// familyMethod is the job's method, or the equivalence method when neither the
// job nor the command line names one.
func familyMethod(j *config.Job) hom.Method {
	return j.MethodOr(hom.MethodEquivalence)
}
