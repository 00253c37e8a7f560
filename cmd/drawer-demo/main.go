// Terminal demo for the drawer package. The whole screen is the drawer
// container; drag the handle bar with the mouse, or drive it from the
// keyboard. Runs on tcell with optional beep click feedback.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/slidedrawer/drawer"
)

const configFile = "drawer-demo.toml"

type demoConfig struct {
	Direction      string
	TopOffset      int
	BottomOffset   int
	AllowSingleTap bool
	AnimateOnClick bool
	HandleClick    bool
	Density        float64
}

func defaultConfig() demoConfig {
	return demoConfig{
		Direction:      "BottomToTop",
		AllowSingleTap: true,
		AnimateOnClick: true,
		HandleClick:    true,
		Density:        1.0,
	}
}

func readConfig() demoConfig {
	conf := defaultConfig()
	if _, err := os.Stat(configFile); err != nil {
		return conf
	}
	if _, err := toml.DecodeFile(configFile, &conf); err != nil {
		log.Fatalf("Couldn't read config file: %v\n", err)
	}
	return conf
}

func parseDirection(s string) (drawer.Direction, error) {
	switch s {
	case "LeftToRight":
		return drawer.LeftToRight, nil
	case "RightToLeft":
		return drawer.RightToLeft, nil
	case "TopToBottom":
		return drawer.TopToBottom, nil
	case "BottomToTop":
		return drawer.BottomToTop, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// handleCells is the handle bar thickness along the movement axis
const handleCells = 2

// screenLayout maps the drawer geometry onto the terminal cell grid.
// Redraw requests just mark the frame dirty; cells are cheap enough to
// repaint whole.
type screenLayout struct {
	screen        tcell.Screen
	direction     drawer.Direction
	width, height int

	handle         drawer.Rect
	pressed        bool
	contentVisible bool
	dirty          bool
}

func newScreenLayout(screen tcell.Screen, direction drawer.Direction) *screenLayout {
	l := &screenLayout{
		screen:    screen,
		direction: direction,
		dirty:     true,
	}
	l.width, l.height = screen.Size()
	if l.width == 0 || l.height == 0 {
		// Some terminals report no size until the first resize event;
		// run best-effort until one arrives
		log.Printf("Container size unspecified (%dx%d), drawer travel degenerate until resize", l.width, l.height)
	}
	l.resetHandle()
	return l
}

// resetHandle parks the handle spanning the container's minor axis; the
// controller positions it along the major axis afterwards.
func (l *screenLayout) resetHandle() {
	if l.direction.Orientation() == drawer.Vertical {
		l.handle = drawer.Rect{Left: 0, Top: 0, Right: l.width, Bottom: handleCells}
	} else {
		l.handle = drawer.Rect{Left: 0, Top: 0, Right: handleCells, Bottom: l.height}
	}
}

func (l *screenLayout) HandleBounds() drawer.Rect { return l.handle }

func (l *screenLayout) ContentSize() (w, h int) {
	if l.direction.Orientation() == drawer.Vertical {
		return l.width, l.height - handleCells
	}
	return l.width - handleCells, l.height
}

func (l *screenLayout) ContainerBounds() drawer.Rect {
	return drawer.Rect{Right: l.width, Bottom: l.height}
}

func (l *screenLayout) OffsetHandle(dx, dy int) {
	l.handle = l.handle.Offset(dx, dy)
	l.dirty = true
}

func (l *screenLayout) SetHandlePressed(pressed bool) {
	l.pressed = pressed
	l.dirty = true
}

func (l *screenLayout) SetContentVisible(visible bool) {
	l.contentVisible = visible
	l.dirty = true
}

func (l *screenLayout) RequestRedraw(drawer.Rect) { l.dirty = true }
func (l *screenLayout) RedrawAll()                { l.dirty = true }
func (l *screenLayout) RequestLayout()            { l.dirty = true }
func (l *screenLayout) CancelPendingLayout()      {}

// The terminal repaints every frame anyway, so there is nothing to
// snapshot
func (l *screenLayout) BuildContentCache()   {}
func (l *screenLayout) DestroyContentCache() {}

// clickSound plays a short sine blip through the speaker
type clickSound struct {
	sampleRate beep.SampleRate
}

func (s *clickSound) PlayClick() {
	sine, err := generators.SineTone(s.sampleRate, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(s.sampleRate.N(40*time.Millisecond), sine))
}

type App struct {
	screen tcell.Screen
	layout *screenLayout
	ctrl   *drawer.Controller
	clock  drawer.Clock

	// Mouse button state from the previous event, for edge detection
	lastButtons tcell.ButtonMask

	ticks     chan struct{}
	audioInit bool
	locked    bool
}

func NewApp(conf demoConfig) (*App, error) {
	direction, err := parseDirection(conf.Direction)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	a := &App{
		screen: screen,
		clock:  drawer.NewSystemClock(),
		ticks:  make(chan struct{}, 4),
	}
	a.layout = newScreenLayout(screen, direction)

	// The timer goroutine posts into the event loop; Tick runs there
	scheduler := drawer.NewTimerScheduler(a.clock, func() {
		select {
		case a.ticks <- struct{}{}:
		default:
		}
	})

	a.ctrl, err = drawer.NewController(drawer.Config{
		Direction:          direction,
		AllowSingleTap:     conf.AllowSingleTap,
		AnimateOnClick:     conf.AnimateOnClick,
		HandleClickEnabled: conf.HandleClick,
		TopOffset:          conf.TopOffset,
		BottomOffset:       conf.BottomOffset,
		Density:            conf.Density,
	}, a.layout, a.clock, scheduler)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	a.ctrl.Close()

	if err := a.initAudio(); err != nil {
		// Non-fatal, the demo can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	return a, nil
}

func (a *App) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		a.audioInit = true
		a.ctrl.SetSoundPlayer(&clickSound{sampleRate: sampleRate})
	}
	return err
}

func (a *App) handleResize() {
	a.layout.width, a.layout.height = a.screen.Size()
	a.layout.resetHandle()

	// Re-park the handle at the rest position matching the logical state
	if a.ctrl.IsOpened() {
		a.ctrl.Open()
	} else {
		a.ctrl.Close()
	}
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons() & tcell.ButtonMask(0xff)

	pressed := buttons&tcell.Button1 != 0
	wasPressed := a.lastButtons&tcell.Button1 != 0
	a.lastButtons = buttons

	var action drawer.TouchAction
	switch {
	case pressed && !wasPressed:
		action = drawer.TouchDown
	case pressed && wasPressed:
		action = drawer.TouchMove
	case !pressed && wasPressed:
		action = drawer.TouchUp
	default:
		return
	}

	a.ctrl.ProcessTouch(drawer.TouchEvent{
		Action: action,
		X:      x,
		Y:      y,
		Time:   a.clock.Now(),
	})
}

func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyEnter {
			a.ctrl.Click()
			return true
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				a.ctrl.AnimateToggle()
			case 'o':
				a.ctrl.AnimateOpen()
			case 'c':
				a.ctrl.AnimateClose()
			case 'O':
				a.ctrl.Open()
			case 'C':
				a.ctrl.Close()
			case 'l':
				if a.ctrl.IsMoving() {
					break
				}
				// Crude lock toggle for demo purposes
				a.toggleLock()
			}
		}

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventResize:
		a.handleResize()
	}

	return true
}

func (a *App) toggleLock() {
	if a.locked {
		a.ctrl.Unlock()
	} else {
		a.ctrl.Lock()
	}
	a.locked = !a.locked
	a.layout.dirty = true
}

func (a *App) draw() {
	if !a.layout.dirty {
		return
	}
	a.layout.dirty = false

	a.screen.Clear()

	// Backdrop
	backdrop := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := 0; y < a.layout.height; y += 2 {
		for x := 0; x < a.layout.width; x += 4 {
			a.screen.SetContent(x, y, '·', nil, backdrop)
		}
	}

	a.drawContent()
	a.drawHandle()
	a.drawStatus()

	a.screen.Show()
}

// drawContent paints the pane the handle drags along with it. It trails
// the handle on the closed-edge side, so partial travel reveals a
// partial pane.
func (a *App) drawContent() {
	hb := a.layout.handle
	style := tcell.StyleDefault.Background(tcell.ColorDarkBlue).Foreground(tcell.ColorWhite)

	var pane drawer.Rect
	switch a.layout.direction {
	case drawer.BottomToTop:
		pane = drawer.Rect{Left: 0, Top: hb.Bottom, Right: a.layout.width, Bottom: a.layout.height}
	case drawer.TopToBottom:
		pane = drawer.Rect{Left: 0, Top: 0, Right: a.layout.width, Bottom: hb.Top}
	case drawer.RightToLeft:
		pane = drawer.Rect{Left: hb.Right, Top: 0, Right: a.layout.width, Bottom: a.layout.height}
	case drawer.LeftToRight:
		pane = drawer.Rect{Left: 0, Top: 0, Right: hb.Left, Bottom: a.layout.height}
	}

	for y := pane.Top; y < pane.Bottom; y++ {
		for x := pane.Left; x < pane.Right; x++ {
			a.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	if a.layout.contentVisible && pane.Width() > 20 && pane.Height() > 0 {
		msg := "Drawer content pane"
		cx := pane.Left + (pane.Width()-len(msg))/2
		cy := pane.Top + pane.Height()/2
		for i, r := range msg {
			a.screen.SetContent(cx+i, cy, r, nil, style.Bold(true))
		}
	}
}

func (a *App) drawHandle() {
	hb := a.layout.handle
	style := tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)
	if a.layout.pressed {
		style = style.Background(tcell.ColorDarkGoldenrod)
	}

	for y := hb.Top; y < hb.Bottom; y++ {
		for x := hb.Left; x < hb.Right; x++ {
			a.screen.SetContent(x, y, '═', nil, style)
		}
	}
}

func (a *App) drawStatus() {
	state := "closed"
	if a.ctrl.IsOpened() {
		state = "open"
	}
	if a.ctrl.IsMoving() {
		state = "moving"
	}
	lock := ""
	if a.locked {
		lock = "  [locked]"
	}
	msg := fmt.Sprintf(" %s  %s%s  |  drag handle, space toggle, o/c animate, O/C snap, l lock, q quit ",
		a.layout.direction, state, lock)

	style := tcell.StyleDefault.Reverse(true)
	y := a.layout.height - 1
	if a.layout.direction == drawer.BottomToTop {
		y = 0
	}
	for i, r := range msg {
		if i >= a.layout.width {
			break
		}
		a.screen.SetContent(i, y, r, nil, style)
	}
}

func (a *App) run() {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- a.screen.PollEvent()
		}
	}()

	a.draw()
	for {
		select {
		case ev := <-events:
			if !a.handleInput(ev) {
				return
			}
		case <-a.ticks:
			a.ctrl.Tick()
		}
		a.draw()
	}
}

func (a *App) cleanup() {
	if a.audioInit {
		speaker.Close()
	}
	a.screen.Fini()
}

func main() {
	conf := readConfig()

	app, err := NewApp(conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()
}
