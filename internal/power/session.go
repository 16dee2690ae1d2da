package power

import (
	"time"

	"vshell/internal/errors"
	"vshell/internal/log"
)

// Session pairs the controller with the inactivity timer. A touch powers
// the display on and restarts the countdown; expiry powers it off.
type Session struct {
	ctrl    *Controller
	timer   *Timer
	timeout time.Duration
}

// NewSession creates a session whose timer switches ctrl off after timeout.
func NewSession(ctrl *Controller, timeout time.Duration) *Session {
	s := &Session{ctrl: ctrl, timeout: timeout}
	s.timer = NewTimer(func() { s.set(false) })
	return s
}

// Begin starts a touch: the pending power-off is cancelled and power is
// switched on. The countdown stays disarmed until Arm.
func (s *Session) Begin() {
	s.timer.Cancel()
	s.set(true)
}

// Arm restarts the countdown at the full timeout.
func (s *Session) Arm() {
	s.timer.Reset(s.timeout)
}

// Touch is Begin followed by Arm.
func (s *Session) Touch() {
	s.Begin()
	s.Arm()
}

// Stop cancels any pending power-off.
func (s *Session) Stop() {
	s.timer.Cancel()
}

// State reports the current power state.
func (s *Session) State() bool {
	return s.ctrl.State()
}

func (s *Session) set(on bool) {
	if err := s.ctrl.Set(on); err != nil {
		l := log.LogWithError(err).With(log.F("power", on))
		if errors.IsDeviceUnavailable(err) {
			l.Debug("Power unchanged")
		} else {
			l.Warn("Power unchanged")
		}
		return
	}
	log.LogWithFields(log.F("power", on)).Debug("Power state")
}
