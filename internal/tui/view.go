package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// Layout sizes
	headerHeight := 1
	footerHeight := 2
	if m.help.ShowAll {
		footerHeight = 1 + lipgloss.Height(m.help.View(m.keys))
	}
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)

	// Header
	title := titleStyle.Render(" isomap ─ marching triangles ")
	w, h := m.scene.Resolution()
	lo, hi := m.scene.Grid().Range()
	info := fmt.Sprintf(" grid %d×%d  t=%.2f  v∈[%.2f,%.2f]  isolines %d/%d ", w, h, m.simTime(), lo, hi, m.scene.Active(), len(m.scene.Levels()))
	infoView := dimStyle.Render(info)
	if m.paused {
		infoView = pausedStyle.Render(" paused ") + infoView
	}
	gap := max(0, contentWidth-lipgloss.Width(title)-lipgloss.Width(infoView))
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, lipgloss.NewStyle().Width(gap).Render(""), infoView)

	// Body
	var body string
	if m.showLevels {
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 2
		}
		boxW := min(contentWidth, colW+4)
		m.tbl.SetWidth(boxW - 4)
		m.tbl.SetHeight(min(contentHeight-2, len(m.scene.Levels())+1))
		levelsBox := boxStyle.Width(boxW).Render(m.tbl.View())
		body = lipgloss.Place(contentWidth, contentHeight, lipgloss.Center, lipgloss.Center, levelsBox)
	} else {
		body = lipgloss.Place(contentWidth, contentHeight, lipgloss.Center, lipgloss.Center, m.viewport(contentWidth, contentHeight))
	}

	// Footer
	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.JoinVertical(lipgloss.Left, status, m.help.View(m.keys))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// viewport is the bordered field view, as large as fits in w×h while keeping
// the domain's aspect ratio.
func (m Model) viewport(w, h int) string {
	d := m.scene.Domain()
	fw, fh := fitAspect(w-2, h-2, d.Width()/d.Height())
	return fieldStyle.Render(m.renderField(fw, fh))
}
