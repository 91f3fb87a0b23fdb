// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/simlath/epgm"
	"github.com/katalvlaran/simlath/jaccard"
	"github.com/katalvlaran/simlath/storage"
)

func newJaccardCmd(a *app) *cobra.Command {
	var (
		graph  string
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "jaccard",
		Short: "Compute similarity edges and write them back to the store",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			flags := cmd.Flags()
			for flag, dst := range map[string]*string{
				"neighborhood":  &a.cfg.Jaccard.Neighborhood,
				"denominator":   &a.cfg.Jaccard.Denominator,
				"on-degenerate": &a.cfg.Jaccard.OnDegenerate,
				"edge-label":    &a.cfg.Jaccard.EdgeLabel,
			} {
				if flags.Changed(flag) {
					*dst, _ = flags.GetString(flag)
				}
			}
			if flags.Changed("group-size") {
				a.cfg.Jaccard.GroupSize, _ = flags.GetInt("group-size")
			}

			opts, err := a.cfg.JaccardOptions()
			if err != nil {
				return err
			}
			op, err := jaccard.New(append(opts,
				jaccard.WithContext(cmd.Context()),
				jaccard.WithLogger(a.logger))...)
			if err != nil {
				return err
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer closeStore(s, &err)

			g, head, err := loadInput(s, graph, op.Options().EdgeLabel)
			if err != nil {
				return err
			}
			edges, err := op.Compute(g)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				for _, e := range edges {
					v, _ := e.Properties.Get(jaccard.ValueProperty)
					fmt.Fprintf(out, "%s -> %s %v\n", e.Source, e.Target, v)
				}
				return nil
			}

			s.SetAutoFlush(false)
			for _, e := range edges {
				if head != nil {
					e.Graphs.Add(head.ID)
					head.Edges.Add(e.ID)
				}
				if err = s.WriteEdge(e); err != nil {
					return err
				}
			}
			if head != nil {
				if err = s.WriteGraphHead(head); err != nil {
					return err
				}
			}
			if err = s.Flush(); err != nil {
				return err
			}
			a.logger.WithFields(logrus.Fields{
				"label": op.Options().EdgeLabel,
				"edges": len(edges),
			}).Info("similarity edges written")
			fmt.Fprintf(out, "wrote %d %s edges\n", len(edges), op.Options().EdgeLabel)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&graph, "graph", "", "graph head id; new edges become members of it (default: every stored vertex and edge)")
	f.BoolVar(&dryRun, "dry-run", false, "print edges instead of storing them")
	f.String("neighborhood", "", "IN or OUT")
	f.String("denominator", "", "UNION or MAX")
	f.String("on-degenerate", "", "fail or skip")
	f.String("edge-label", "", "label of the similarity edges")
	f.Int("group-size", 0, "partition group size")
	return cmd
}

// loadInput reads the input graph without edges labelled skip, so a rerun
// does not treat earlier similarity edges as neighbourhood. With a graph id
// it also returns that graph's head, members included.
func loadInput(r storage.Reader, graph, skip string) (*epgm.LogicalGraph, *epgm.GraphHead, error) {
	var (
		g    *epgm.LogicalGraph
		head *epgm.GraphHead
		err  error
	)
	if graph == "" {
		g, err = storage.LoadGraph(r)
	} else {
		var id epgm.ID
		if id, err = epgm.ParseID(graph); err != nil {
			return nil, nil, err
		}
		if g, err = storage.LoadLogicalGraph(r, id); err == nil {
			head = g.Head()
		}
	}
	if err != nil {
		return nil, nil, err
	}

	edges := make([]*epgm.Edge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.Label != skip {
			edges = append(edges, e)
		}
	}
	return epgm.FromVertexAndEdgeSets(g.Vertices(), edges), head, nil
}
