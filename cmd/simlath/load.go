// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/simlath/fixture"
)

func newLoadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "load FILE",
		Short: "Load a YAML graph fixture into the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			l, err := fixture.ParseFile(args[0])
			if err != nil {
				return err
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer closeStore(s, &err)

			if err = l.WriteTo(s); err != nil {
				return err
			}
			db := l.Database()
			a.logger.WithFields(logrus.Fields{
				"file":     args[0],
				"graphs":   len(l.GraphHeads()),
				"vertices": db.VertexCount(),
				"edges":    db.EdgeCount(),
			}).Info("fixture loaded")
			fmt.Fprintf(cmd.OutOrStdout(), "loaded %d vertices, %d edges\n", db.VertexCount(), db.EdgeCount())
			return nil
		},
	}
}
