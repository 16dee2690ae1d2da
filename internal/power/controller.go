// Package power drives the USB relay that keeps the display powered while
// someone is browsing, and the inactivity timer that switches it off.
package power

import (
	"io"
	"os"
	"sync"

	"vshell/internal/errors"

	"golang.org/x/sys/unix"
)

// Opener opens a device node for writing.
type Opener func(path string) (io.WriteCloser, error)

// Controller owns the power state and the cached device node. All access is
// serialized so the timer goroutine and the UI loop see whole transitions.
type Controller struct {
	mu         sync.Mutex
	state      bool
	handle     string
	discoverer Discoverer
	open       Opener
	writable   func(path string) error
	on, off    []byte
}

// Option configures a Controller.
type Option func(*Controller)

// WithOpener replaces the device opener.
func WithOpener(open Opener) Option {
	return func(c *Controller) { c.open = open }
}

// WithAccessCheck replaces the exists-and-writable check.
func WithAccessCheck(check func(path string) error) Option {
	return func(c *Controller) { c.writable = check }
}

// WithCommands sets the byte sequences written for on and off.
func WithCommands(on, off []byte) Option {
	return func(c *Controller) {
		c.on = append([]byte(nil), on...)
		c.off = append([]byte(nil), off...)
	}
}

// New creates a controller in the off state with no device resolved.
func New(d Discoverer, opts ...Option) *Controller {
	c := &Controller{
		discoverer: d,
		open:       openDevice,
		writable:   checkWritable,
		on:         []byte{0x00, 0x01},
		off:        []byte{0x00, 0x00},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func openDevice(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY, 0)
}

func checkWritable(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	return unix.Access(path, unix.W_OK)
}

// Set switches power to desired. Asking for the current state writes
// nothing. When no writable device is found the state is left unchanged and
// the cached node is forgotten, so the next transition rediscovers.
func (c *Controller) Set(desired bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if desired == c.state {
		return nil
	}

	if c.handle == "" {
		node, err := c.discoverer.Discover()
		if err != nil {
			c.handle = ""
			return err
		}
		c.handle = node
	}
	if c.handle == "" {
		return errors.ErrNoDevice
	}
	if err := c.writable(c.handle); err != nil {
		path := c.handle
		c.handle = ""
		return errors.NewDeviceError("device not writable", path, errors.DeviceUnavailable, err)
	}

	cmd := c.off
	if desired {
		cmd = c.on
	}
	if err := c.write(cmd); err != nil {
		path := c.handle
		c.handle = ""
		return errors.NewDeviceError("device write failed", path, errors.DeviceWriteFailed, err)
	}

	c.state = desired
	return nil
}

func (c *Controller) write(cmd []byte) error {
	f, err := c.open(c.handle)
	if err != nil {
		return err
	}
	if _, err := f.Write(cmd); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// State reports the last state successfully written.
func (c *Controller) State() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Invalidate forgets the cached node if it is path.
func (c *Controller) Invalidate(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handle == "" || c.handle != path {
		return false
	}
	c.handle = ""
	return true
}

// Force records a state without writing. Used by one-shot commands that
// must produce a transition from a known starting point.
func (c *Controller) Force(state bool) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}

func (c *Controller) cached() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handle
}
