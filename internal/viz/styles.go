package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/gesture"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

var gestureStyles = map[gesture.Gesture]lipgloss.Style{
	gesture.Idle:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	gesture.Expand:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	gesture.Compress: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	gesture.Circle:   lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
	gesture.Collapse: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	gesture.Control:  lipgloss.NewStyle().Foreground(lipgloss.Color("84")).Bold(true),
}

func renderGesture(g gesture.Gesture) string {
	if st, ok := gestureStyles[g]; ok {
		return st.Render(g.String())
	}
	return g.String()
}
