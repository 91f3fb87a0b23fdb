// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDumpCmd(a *app) *cobra.Command {
	var label string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print stored graph heads, vertices and edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer closeStore(s, &err)

			out := cmd.OutOrStdout()
			for h, err := range s.GraphHeads() {
				if err != nil {
					return err
				}
				if label == "" || h.Label == label {
					fmt.Fprintln(out, h)
				}
			}
			for v, err := range s.Vertices() {
				if err != nil {
					return err
				}
				if label == "" || v.Label == label {
					fmt.Fprintln(out, v)
				}
			}
			for e, err := range s.Edges() {
				if err != nil {
					return err
				}
				if label == "" || e.Label == label {
					fmt.Fprintln(out, e)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "only print elements with this label")
	return cmd
}
