package doc

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/sigil/errors"
	"github.com/teranos/sigil/logger"
)

// ChangeCallback is invoked with the path of a prose file after it has
// been written and the debounce window has elapsed.
type ChangeCallback func(path string)

// Watcher re-triggers conversion of prose files when they change on
// disk. It watches files, not the table: the symbol table stays fixed
// for the life of the process.
type Watcher struct {
	watcher *fsnotify.Watcher
	log     *zap.SugaredLogger

	mu             sync.Mutex
	callbacks      []ChangeCallback
	debounceTimers map[string]*time.Timer
	debouncePeriod time.Duration

	done chan struct{}
}

// NewWatcher starts watching the given paths. A nil log falls back to
// the global logger.
func NewWatcher(log *zap.SugaredLogger, paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	for _, path := range paths {
		if err := fw.Add(path); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", path)
		}
	}

	if log == nil {
		log = logger.ComponentLogger("doc.watcher")
	}

	return &Watcher{
		watcher:        fw,
		log:            log,
		debounceTimers: make(map[string]*time.Timer),
		debouncePeriod: 500 * time.Millisecond, // editors write in bursts
		done:           make(chan struct{}),
	}, nil
}

// OnChange registers a callback for debounced write events.
func (w *Watcher) OnChange(fn ChangeCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, fn)
}

// Start begins delivering events. It returns immediately.
func (w *Watcher) Start() {
	go w.watchLoop()
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				w.log.Debugw("Prose file changed",
					logger.FieldFile, event.Name,
					"op", event.Op.String())
				w.scheduleCallback(event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warnw("Watcher error", logger.FieldError, err)
		}
	}
}

// scheduleCallback debounces rapid writes to the same file.
func (w *Watcher) scheduleCallback(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.debounceTimers[path]; ok {
		timer.Stop()
	}
	w.debounceTimers[path] = time.AfterFunc(w.debouncePeriod, func() {
		w.mu.Lock()
		callbacks := make([]ChangeCallback, len(w.callbacks))
		copy(callbacks, w.callbacks)
		delete(w.debounceTimers, path)
		w.mu.Unlock()

		for _, fn := range callbacks {
			fn(path)
		}
	})
}

// Stop ends watching and releases the underlying watcher.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}
