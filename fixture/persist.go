// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"

	"github.com/katalvlaran/simlath/storage"
)

// WriteTo persists every declared graph head, vertex and edge with its
// declared memberships, then flushes w.
func (l *Loader) WriteTo(w storage.Writer) error {
	for _, h := range l.GraphHeads() {
		if err := w.WriteGraphHead(h); err != nil {
			return fmt.Errorf("fixture: write graph %s: %w", h.ID, err)
		}
	}
	for _, v := range l.orderedVertices() {
		if err := w.WriteVertex(v); err != nil {
			return fmt.Errorf("fixture: write vertex %s: %w", v.ID, err)
		}
	}
	for _, e := range l.orderedEdges() {
		if err := w.WriteEdge(e); err != nil {
			return fmt.Errorf("fixture: write edge %s: %w", e.ID, err)
		}
	}
	return w.Flush()
}
