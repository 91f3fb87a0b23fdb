// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/simlath/builder"
	"github.com/katalvlaran/simlath/storage"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		seed   int64
		p      float64
		scope  string
		ids    string
		weight int64
	)
	cmd := &cobra.Command{
		Use:   "generate TOPOLOGY N [M]",
		Short: "Generate a topology (path, cycle, star, wheel, complete, bipartite, grid, random) into the store",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			sizes := make([]int, 0, 2)
			for _, arg := range args[1:] {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("size %q: %w", arg, err)
				}
				sizes = append(sizes, n)
			}
			ctor, err := topology(args[0], sizes, p)
			if err != nil {
				return err
			}

			naming, err := idScheme(ids)
			if err != nil {
				return err
			}
			bopts := []builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithScope(scope),
				builder.WithGraphLabel(args[0]),
				naming,
			}
			if weight < 0 {
				return fmt.Errorf("weight %d: must not be negative", weight)
			}
			if weight > 0 {
				bopts = append(bopts, builder.WithWeightFn(func(r *rand.Rand) int64 {
					return 1 + r.Int63n(weight)
				}))
			}

			g, err := builder.BuildGraph(bopts, ctor)
			if err != nil {
				return err
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer closeStore(s, &err)

			if err = storage.WriteGraph(s, g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "generated %s: %d vertices, %d edges\n",
				g.Head().ID, g.VertexCount(), g.EdgeCount())
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Float64VarP(&p, "probability", "p", 0.1, "edge probability for random")
	cmd.Flags().StringVar(&scope, "scope", "builder", "id namespace")
	cmd.Flags().StringVar(&ids, "ids", "decimal", "vertex names: decimal, excel or prefix:<p>")
	cmd.Flags().Int64Var(&weight, "weight", 0, "store a random int64 weight in [1,N] on each edge (0: none)")
	return cmd
}

// idScheme maps the --ids flag to a builder naming option.
func idScheme(name string) (builder.BuilderOption, error) {
	switch {
	case name == "decimal":
		return builder.WithIDScheme(builder.DefaultIDFn), nil
	case name == "excel":
		return builder.WithExcelColumnIDs(), nil
	case strings.HasPrefix(name, "prefix:"):
		return builder.WithSymbNumb(strings.TrimPrefix(name, "prefix:")), nil
	}
	return nil, fmt.Errorf("unknown id scheme %q", name)
}

func topology(name string, sizes []int, p float64) (builder.Constructor, error) {
	second := func() (int, error) {
		if len(sizes) < 2 {
			return 0, fmt.Errorf("%s needs two sizes", name)
		}
		return sizes[1], nil
	}
	n := sizes[0]
	switch name {
	case "path":
		return builder.Path(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "star":
		return builder.Star(n), nil
	case "wheel":
		return builder.Wheel(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "random":
		return builder.RandomSparse(n, p), nil
	case "bipartite":
		m, err := second()
		if err != nil {
			return nil, err
		}
		return builder.CompleteBipartite(n, m), nil
	case "grid":
		m, err := second()
		if err != nil {
			return nil, err
		}
		return builder.Grid(n, m), nil
	}
	return nil, fmt.Errorf("unknown topology %q", name)
}
