package power

import (
	"fmt"
	"sync"

	"vshell/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Watch follows the device directory and drops the controller's cached node
// when it disappears, so an unplugged relay is rediscovered on the next
// transition instead of failing a write first.
type Watch struct {
	dir       string
	ctrl      *Controller
	fsWatcher *fsnotify.Watcher
	stopChan  chan struct{}
	done      chan struct{}
	mutex     sync.Mutex
	running   bool
}

// NewWatch creates a watch on dir for ctrl.
func NewWatch(dir string, ctrl *Controller) (*Watch, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	return &Watch{
		dir:       dir,
		ctrl:      ctrl,
		fsWatcher: fsWatcher,
	}, nil
}

// Start begins processing events in a goroutine.
func (w *Watch) Start() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.running {
		return fmt.Errorf("watch already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.done = make(chan struct{})

	go w.loop(w.stopChan, w.done)
	log.LogWithFields(log.F("directory", w.dir)).Debug("Device watch started")
	return nil
}

func (w *Watch) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
				if w.ctrl.Invalidate(event.Name) {
					log.LogWithFields(log.F("device", event.Name)).Info("Power device removed")
				}
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Warn("Device watch error")
		case <-stop:
			return
		}
	}
}

// Stop halts the watch and releases the fsnotify watcher.
func (w *Watch) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		w.fsWatcher.Close()
		return
	}
	close(w.stopChan)
	<-w.done
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Warn("Error closing device watch")
	}
	w.running = false
}
