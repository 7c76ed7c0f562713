package app

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ayusman/skytouch/internal/detector"
	"github.com/ayusman/skytouch/internal/gesture"
	"github.com/ayusman/skytouch/internal/plugin"
	"github.com/ayusman/skytouch/internal/store"
)

// runPipeline is the main loop that processes frames from the camera.
// It manages the state transitions between idle and active modes based on
// motion detection: idle at 5 FPS until something moves, active at 15 FPS
// while a hand is being tracked, back to idle after 2 seconds of stillness.
func (a *App) runPipeline(stopCh <-chan struct{}) {
	activeMode := false
	lastMotionTime := time.Now()

	frameInterval := time.Second / time.Duration(IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.Camera().ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				if !activeMode {
					activeMode = true
					a.Camera().SetFPS(ActiveFPS)
					ticker.Reset(time.Second / time.Duration(ActiveFPS))
					log.Println("Switched to active mode")
				}
			} else if activeMode && time.Since(lastMotionTime) > IdleTimeout {
				activeMode = false
				a.Camera().SetFPS(IdleFPS)
				ticker.Reset(time.Second / time.Duration(IdleFPS))
				a.pointer.Reset()
				log.Println("Switched to idle mode")
			}

			if !activeMode {
				frame.Close()
				continue
			}

			hands, err := a.Detector().Detect(frame)
			frame.Close()

			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			a.processHands(hands)
		}
	}
}

// processHands runs one frame's worth of gesture processing. Only the first
// detected hand drives the trackpad; with no hand the pointer baseline is
// dropped so the cursor does not jump when the hand returns.
func (a *App) processHands(hands []detector.HandLandmarks) {
	if len(hands) == 0 {
		a.pointer.Reset()
		return
	}

	res, err := a.gestures.Detect(&hands[0])
	if err != nil {
		log.Printf("Error processing gesture: %v", err)
		return
	}

	a.logEvents(res)

	a.mu.RLock()
	publish := a.publish
	a.mu.RUnlock()
	if publish != nil {
		publish(res)
	}

	// A bound swipe direction goes to its plugin action instead of the
	// built-in hotkey path.
	if res.IsSwiping {
		if action, ok := a.swipeBinding(res.SwipeDirection); ok {
			a.executeSwipeAction(action, res)
			res.IsSwiping = false
		}
	}

	if err := a.pointer.Apply(res); err != nil {
		log.Printf("Error applying pointer actions: %v", err)
	}
}

// logEvents records each discrete event from the result in the event log
// and remembers the most recent one for the tray.
func (a *App) logEvents(res gesture.Result) {
	type discrete struct {
		fired bool
		kind  store.EventKind
		dir   gesture.Direction
	}

	events := []discrete{
		{res.IsClicking, store.EventClick, gesture.DirectionNone},
		{res.IsRightClicking, store.EventRightClick, gesture.DirectionNone},
		{res.IsDoubleClick, store.EventDoubleClick, gesture.DirectionNone},
		{res.IsScrolling, store.EventScroll, res.ScrollDirection},
		{res.IsSwiping, store.EventSwipe, res.SwipeDirection},
	}

	for _, ev := range events {
		if !ev.fired {
			continue
		}

		label := string(ev.kind)
		if ev.dir != gesture.DirectionNone {
			label = fmt.Sprintf("%s %s", ev.kind, ev.dir)
		}
		a.mu.Lock()
		a.lastEvent = label
		a.mu.Unlock()

		if a.store == nil {
			continue
		}
		err := a.store.Events().Insert(&store.Event{
			Mode:      res.Mode,
			Kind:      ev.kind,
			Direction: ev.dir,
		})
		if err != nil {
			log.Printf("Error logging event: %v", err)
		}
	}
}

// swipeBinding looks up a configured plugin action for a swipe direction.
func (a *App) swipeBinding(dir gesture.Direction) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	action, ok := a.appCfg.SwipeBindings[string(dir)]
	return action, ok
}

// executeSwipeAction runs a "plugin/action" binding through the executor.
func (a *App) executeSwipeAction(binding string, res gesture.Result) {
	name, action, ok := strings.Cut(binding, "/")
	if !ok {
		log.Printf("Invalid swipe binding %q, expected plugin/action", binding)
		return
	}

	p, err := a.pluginMgr.Get(name)
	if err != nil {
		log.Printf("Swipe binding plugin %q: %v", name, err)
		return
	}

	resp, err := a.pluginExec.Execute(p, &plugin.Request{
		Action:    action,
		Mode:      string(res.Mode),
		Direction: string(res.SwipeDirection),
	})
	if err != nil {
		log.Printf("Swipe action %q failed: %v", binding, err)
		return
	}
	if !resp.Success {
		log.Printf("Swipe action %q reported error: %s", binding, resp.Error)
	}
}
