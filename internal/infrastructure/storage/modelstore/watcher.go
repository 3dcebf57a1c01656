package modelstore

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/premsagar786/LegalAI/internal/infrastructure/monitoring/logging"
	apperrors "github.com/premsagar786/LegalAI/pkg/errors"
)

// debounceWindow coalesces the burst of filesystem events an atomic rename
// can produce into a single reload per task.
const debounceWindow = 200 * time.Millisecond

// Watcher observes an FSStore directory and invokes a callback whenever an
// artifact file is replaced, enabling hot reload of models trained by a
// separate process.
type Watcher struct {
	fw     *fsnotify.Watcher
	dir    string
	onLoad func(task string)
	logger logging.Logger

	mu      sync.Mutex
	pending map[string]*time.Timer
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching the store directory.  onLoad is called from the
// watcher goroutine with the task name of each replaced artifact; it must not
// block for long.
func NewWatcher(store *FSStore, onLoad func(task string), logger logging.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageFailure, "failed to create filesystem watcher")
	}
	if err := fw.Add(store.Dir()); err != nil {
		fw.Close()
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageFailure, "failed to watch artifact directory")
	}

	w := &Watcher{
		fw:      fw,
		dir:     store.Dir(),
		onLoad:  onLoad,
		logger:  logger.Named("watcher"),
		pending: make(map[string]*time.Timer),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Rename) {
				continue
			}
			name := filepath.Base(ev.Name)
			if !strings.HasSuffix(name, ".model.json") || strings.HasPrefix(name, ".") {
				continue
			}
			w.schedule(strings.TrimSuffix(name, ".model.json"))
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("filesystem watcher error", logging.Err(err))
		}
	}
}

// schedule arms (or re-arms) the per-task debounce timer.
func (w *Watcher) schedule(task string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.pending[task]; ok {
		t.Reset(debounceWindow)
		return
	}
	w.pending[task] = time.AfterFunc(debounceWindow, func() {
		w.mu.Lock()
		delete(w.pending, task)
		w.mu.Unlock()

		select {
		case <-w.done:
			return
		default:
		}
		w.logger.Info("artifact changed, reloading", logging.String("task", task))
		w.onLoad(task)
	})
}

// Close stops the watcher.  Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fw.Close()

		w.mu.Lock()
		for task, t := range w.pending {
			t.Stop()
			delete(w.pending, task)
		}
		w.mu.Unlock()
	})
	return err
}
