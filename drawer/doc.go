// Package drawer implements the motion core of a sliding drawer widget:
// a handle that the user drags or flings along one axis to reveal or hide
// a content pane.
//
// The package owns gesture classification (tap vs drag vs fling), velocity
// normalization for all four cardinal directions, a constant-acceleration
// trajectory integrator, position clamping, and the open/closed state
// machine. Everything visual is delegated to collaborators:
//   - Layout supplies geometry and consumes move/visibility commands
//   - Clock supplies time, Scheduler delivers animation ticks
//   - SoundPlayer (optional) provides tap feedback
//
// The controller is single-threaded and cooperative: touch samples,
// scheduler ticks, and programmatic calls must all arrive from one
// goroutine. Listener callbacks fire synchronously from that goroutine
// and may safely re-enter the controller.
//
// Usage pattern:
//
//	ctrl, err := drawer.NewController(drawer.Config{
//	    Direction: drawer.BottomToTop,
//	}, layout, clock, scheduler)
//
//	// Touch source
//	consumed := ctrl.ProcessTouch(ev)
//
//	// Scheduler callback
//	ctrl.Tick()
package drawer
