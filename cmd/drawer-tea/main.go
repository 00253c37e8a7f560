// Bubble Tea demo for the drawer package. A bottom drawer slides over a
// scrollable document; the drawer's scheduler ticks are delivered as
// tea messages so everything stays on the program goroutine.
package main

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/slidedrawer/drawer"
)

const handleRows = 1

var (
	handleStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("252"))
	handlePressedStyle = handleStyle.
				Background(lipgloss.Color("178")).
				Foreground(lipgloss.Color("235"))
	paneStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("17")).
			Foreground(lipgloss.Color("255"))
	statusStyle = lipgloss.NewStyle().Reverse(true)
	backdrop    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// tickMsg carries the scheduler generation so a tick superseded by
// Cancel or a replacement ScheduleAt is dropped on arrival.
type tickMsg struct {
	gen uint64
}

// tickScheduler adapts the drawer's one-shot tick contract to tea.Tick
// commands. tea.Tick timers cannot be stopped once issued, so stale
// fires are filtered by generation instead.
type tickScheduler struct {
	mu        sync.Mutex
	gen       uint64
	deadline  time.Time
	pending   bool
	cmdIssued bool
}

func (s *tickScheduler) ScheduleAt(deadline time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.deadline = deadline
	s.pending = true
	s.cmdIssued = false
}

func (s *tickScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.pending = false
}

// takeCmd returns the tea command for the pending tick, once. Called
// after every controller entry point that may have rearmed the tick.
func (s *tickScheduler) takeCmd() tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.pending || s.cmdIssued {
		return nil
	}
	s.cmdIssued = true

	gen := s.gen
	d := time.Until(s.deadline)
	if d < 0 {
		d = 0
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// accept reports whether a delivered tick is still the live one
func (s *tickScheduler) accept(msg tickMsg) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.pending || msg.gen != s.gen {
		return false
	}
	s.pending = false
	return true
}

// teaLayout maps the drawer geometry onto the rendered frame. The
// drawer opens BottomToTop over the full terminal.
type teaLayout struct {
	width, height int

	handle         drawer.Rect
	pressed        bool
	contentVisible bool
}

func (l *teaLayout) resetHandle() {
	l.handle = drawer.Rect{Left: 0, Top: 0, Right: l.width, Bottom: handleRows}
}

func (l *teaLayout) HandleBounds() drawer.Rect { return l.handle }

func (l *teaLayout) ContentSize() (w, h int) {
	return l.width, l.height - handleRows
}

func (l *teaLayout) ContainerBounds() drawer.Rect {
	return drawer.Rect{Right: l.width, Bottom: l.height}
}

func (l *teaLayout) OffsetHandle(dx, dy int) {
	l.handle = l.handle.Offset(dx, dy)
}

func (l *teaLayout) SetHandlePressed(pressed bool)  { l.pressed = pressed }
func (l *teaLayout) SetContentVisible(visible bool) { l.contentVisible = visible }

// Bubble Tea repaints the whole frame per Update, so invalidation and
// layout requests have nothing to do
func (l *teaLayout) RequestRedraw(drawer.Rect) {}
func (l *teaLayout) RedrawAll()                {}
func (l *teaLayout) RequestLayout()            {}
func (l *teaLayout) CancelPendingLayout()      {}
func (l *teaLayout) BuildContentCache()        {}
func (l *teaLayout) DestroyContentCache()      {}

type model struct {
	ctrl   *drawer.Controller
	layout *teaLayout
	clock  drawer.Clock
	sched  *tickScheduler

	pane  viewport.Model
	ready bool

	mousePressed bool
}

func newModel() (*model, error) {
	m := &model{
		layout: &teaLayout{},
		clock:  drawer.NewSystemClock(),
		sched:  &tickScheduler{},
	}

	// TopOffset keeps the fully open handle below the status row
	ctrl, err := drawer.NewController(drawer.Config{
		Direction:          drawer.BottomToTop,
		TopOffset:          1,
		AllowSingleTap:     true,
		AnimateOnClick:     true,
		HandleClickEnabled: true,
	}, m.layout, m.clock, m.sched)
	if err != nil {
		return nil, err
	}
	m.ctrl = ctrl
	return m, nil
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.width = msg.Width
		m.layout.height = msg.Height
		m.layout.resetHandle()
		if !m.ready {
			m.pane = viewport.New(msg.Width, msg.Height-handleRows)
			m.pane.SetContent(paneBody())
			m.ready = true
		} else {
			m.pane.Width = msg.Width
			m.pane.Height = msg.Height - handleRows
		}
		if m.ctrl.IsOpened() {
			m.ctrl.Open()
		} else {
			m.ctrl.Close()
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.ctrl.AnimateToggle()
		case "o":
			m.ctrl.AnimateOpen()
		case "c":
			m.ctrl.AnimateClose()
		case "enter":
			m.ctrl.Click()
		case "up", "down", "pgup", "pgdown":
			if m.ctrl.IsOpened() {
				var cmd tea.Cmd
				m.pane, cmd = m.pane.Update(msg)
				return m, cmd
			}
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tickMsg:
		if m.sched.accept(msg) {
			m.ctrl.Tick()
		}
	}

	return m, m.sched.takeCmd()
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	var action drawer.TouchAction
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.mousePressed = true
		action = drawer.TouchDown
	case tea.MouseActionMotion:
		if !m.mousePressed {
			return
		}
		action = drawer.TouchMove
	case tea.MouseActionRelease:
		if !m.mousePressed {
			return
		}
		m.mousePressed = false
		action = drawer.TouchUp
	default:
		return
	}

	m.ctrl.ProcessTouch(drawer.TouchEvent{
		Action: action,
		X:      msg.X,
		Y:      msg.Y,
		Time:   m.clock.Now(),
	})
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder

	// Rows above the handle show the underlying document backdrop
	handleTop := m.layout.handle.Top
	if handleTop > m.layout.height-handleRows {
		handleTop = m.layout.height - handleRows
	}
	if handleTop < 0 {
		handleTop = 0
	}

	status := fmt.Sprintf(" drawer %s | drag the bar, space toggle, o/c animate, enter click, q quit ",
		stateWord(m.ctrl))
	b.WriteString(statusStyle.Width(m.layout.width).Render(status))
	b.WriteString("\n")

	for y := 1; y < handleTop; y++ {
		b.WriteString(backdrop.Render(backdropRow(m.layout.width, y)))
		b.WriteString("\n")
	}

	grip := "── drag me ──"
	style := handleStyle
	if m.layout.pressed {
		style = handlePressedStyle
	}
	b.WriteString(style.Width(m.layout.width).Align(lipgloss.Center).Render(grip))

	// Content pane fills everything below the handle
	paneRows := m.layout.height - handleTop - handleRows
	if paneRows > 0 {
		b.WriteString("\n")
		m.pane.Height = paneRows
		b.WriteString(paneStyle.Width(m.layout.width).Render(m.pane.View()))
	}

	return b.String()
}

func stateWord(c *drawer.Controller) string {
	switch {
	case c.IsMoving():
		return "moving"
	case c.IsOpened():
		return "open"
	default:
		return "closed"
	}
}

func backdropRow(width, y int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		if x%4 == 0 && y%2 == 0 {
			b.WriteRune('·')
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func paneBody() string {
	var b strings.Builder
	for i := 1; i <= 60; i++ {
		b.WriteString(fmt.Sprintf("content line %d", i))
		b.WriteString("\n")
	}
	return b.String()
}

func main() {
	m, err := newModel()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
