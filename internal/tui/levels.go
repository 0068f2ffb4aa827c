package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

var levelColumns = []table.Column{
	{Title: "#", Width: 3},
	{Title: "level", Width: 7},
	{Title: "on", Width: 3},
	{Title: "segments", Width: 9},
	{Title: "lines", Width: 6},
	{Title: "closed", Width: 6},
}

// refreshLevels rebuilds the table rows from the current frame. Inactive
// levels are listed without counts.
func (m *Model) refreshLevels() {
	levels := m.scene.Levels()
	rows := make([]table.Row, 0, len(levels))
	for k, v := range levels {
		row := table.Row{fmt.Sprintf("%d", k+1), fmt.Sprintf("%.3f", v), "", "", "", ""}
		if m.frame != nil && k < len(m.frame.Isolines) {
			l := m.frame.Isolines[k]
			chains := l.Chains()
			closed := 0
			for _, c := range chains {
				if len(c) > 2 && c[0] == c[len(c)-1] {
					closed++
				}
			}
			row[2] = "●"
			row[3] = fmt.Sprintf("%d", l.SegmentCount())
			row[4] = fmt.Sprintf("%d", len(chains))
			row[5] = fmt.Sprintf("%d", closed)
		}
		rows = append(rows, row)
	}
	m.tbl.SetRows(rows)
}
