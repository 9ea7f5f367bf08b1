package ui

import (
	"fmt"
	"strings"

	"floating-nodes/internal/nodes"
)

// Summary formats the overlay text for one engine snapshot.
func Summary(status nodes.Status, st nodes.State, frame nodes.FrameStats) string {
	cursor := "none"
	if st.Cursor != nil {
		cursor = fmt.Sprintf("%.0f,%.0f", st.Cursor.X, st.Cursor.Y)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "status: %s\n", status)
	fmt.Fprintf(&sb, "nodes: %d\n", len(st.Nodes))
	fmt.Fprintf(&sb, "dropped: %d\n", st.DropCount)
	fmt.Fprintf(&sb, "connections: %d\n", frame.Connections)
	fmt.Fprintf(&sb, "cursor: %s", cursor)
	return sb.String()
}
