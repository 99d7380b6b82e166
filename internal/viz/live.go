package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/guptarohit/asciigraph"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/gesture"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/hand"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/metrics"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/session"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/shapes"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 600
)

type TickMsg time.Time

// Model is the live terminal view: it steps the session every frame and
// renders the ensemble to a braille canvas next to a stats panel.
type Model struct {
	sess      *session.Session
	canvas    *Canvas
	camera    *Camera
	t, dt     float64
	running   bool
	showHelp  bool
	gesture   gesture.Gesture
	snap      *hand.Snapshot
	restHist  []float64
	shapeIdx  int
	scripts   []string
	scriptIdx int
}

// NewModel wires the live view over an existing session. scriptName selects
// the starting hand track.
func NewModel(sess *session.Session, scriptName string, dt float64) Model {
	scripts := session.ListScripts()
	scriptIdx := 0
	for i, n := range scripts {
		if n == scriptName {
			scriptIdx = i
		}
	}
	kinds := shapes.Kinds()
	shapeIdx := 0
	for i, k := range kinds {
		if k == sess.Simulator().Ensemble().Kind() {
			shapeIdx = i
		}
	}
	return Model{
		sess:      sess,
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		camera:    NewCamera(),
		dt:        dt,
		running:   true,
		restHist:  make([]float64, 0, historyCapacity),
		shapeIdx:  shapeIdx,
		scripts:   scripts,
		scriptIdx: scriptIdx,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.sess.Simulator().Ensemble().Reshape(m.currentShape())
			m.restHist = m.restHist[:0]
		case "s":
			m.shapeIdx = (m.shapeIdx + 1) % len(shapes.Kinds())
			m.sess.Simulator().Ensemble().Reshape(m.currentShape())
			m.restHist = m.restHist[:0]
		case "g":
			m.scriptIdx = (m.scriptIdx + 1) % len(m.scripts)
			if script, err := session.GetScript(m.scripts[m.scriptIdx]); err == nil {
				m.sess.SetScript(script)
			}
		case "x":
			m.camera.Orbit(0, 0.1)
		case "X":
			m.camera.Orbit(0, -0.1)
		case "y":
			m.camera.Orbit(0.1, 0)
		case "Y":
			m.camera.Orbit(-0.1, 0)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.snap, m.gesture = m.sess.Tick(m.t, m.dt)
			m.t += m.dt
			m.restHist = append(m.restHist, metrics.MeanRestDistance(m.sess.Simulator().Ensemble()))
			if len(m.restHist) > historyCapacity {
				m.restHist = m.restHist[1:]
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) currentShape() shapes.Kind {
	return shapes.Kinds()[m.shapeIdx]
}

// draw projects every particle onto the canvas, plus hand markers when
// hands are present.
func (m *Model) draw() {
	m.canvas.Clear()
	dw, dh := canvasWidth*2, canvasHeight*4

	pos := m.sess.Simulator().Ensemble().Positions()
	for i := 0; i < len(pos); i += 3 {
		p := mgl64.Vec3{pos[i], pos[i+1], pos[i+2]}
		if x, y, ok := m.camera.Project(p, dw, dh); ok {
			m.canvas.Set(x, y)
		}
	}

	if m.snap != nil {
		for _, h := range []*hand.Point{m.snap.Left, m.snap.Right} {
			if h == nil {
				continue
			}
			if x, y, ok := m.camera.Project(h.Vec(), dw, dh); ok {
				m.canvas.DrawLine(x-2, y, x+2, y)
				m.canvas.DrawLine(x, y-2, x, y+2)
			}
		}
	}
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	sim := m.sess.Simulator()
	ens := sim.Ensemble()

	var s strings.Builder
	s.WriteString(headerStyle.Render("GOD HAND") + "\n")
	if m.running {
		s.WriteString("RUNNING\n\n")
	} else {
		s.WriteString("PAUSED\n\n")
	}

	if len(m.restHist) > 1 {
		chart := asciigraph.Plot(m.restHist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Rest distance"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Shape") + valueStyle.Render(string(ens.Kind())) + "\n")
	s.WriteString(labelStyle.Render("Particles") + valueStyle.Render(fmt.Sprintf("%d", ens.Count())) + "\n")
	s.WriteString(labelStyle.Render("Script") + valueStyle.Render(m.scripts[m.scriptIdx]) + "\n")
	s.WriteString(labelStyle.Render("Gesture") + renderGesture(m.gesture) + "\n")
	if sim.PlanetMode() {
		s.WriteString(labelStyle.Render("Planet") + valueStyle.Render("aggregating") + "\n")
	}
	if sim.ExplosionActive() {
		s.WriteString(labelStyle.Render("Shockwave") + valueStyle.Render(fmt.Sprintf("%.1fs", sim.Elapsed()-sim.ExplosionStart())) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nS:Shape  G:Script ?:Help\nX/Y:Orbit +/-:Zoom"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return helpScreen + "\n\n" + mainView
	}
	return mainView
}

const helpScreen = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Reset current shape      ║
║  S        - Cycle shapes             ║
║  G        - Cycle hand scripts       ║
║  X/Y      - Orbit the camera         ║
║  +/-      - Zoom                     ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`
