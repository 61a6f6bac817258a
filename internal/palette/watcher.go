package palette

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce is used when a Watcher is created with a
// non-positive debounce.
const DefaultWatchDebounce = 500 * time.Millisecond

// Watcher calls a reload hook once writes to a palette file settle.
type Watcher struct {
	fsw       *fsnotify.Watcher
	base      string
	debounce  time.Duration
	onReload  func() error
	onError   func(error)
	stopCh    chan struct{}
	stoppedCh chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
	mu        sync.Mutex
	running   bool
}

// NewWatcher watches filePath. onReload runs one debounce interval after
// the last write; onError gets fsnotify errors and onReload failures.
// Both may be nil.
func NewWatcher(filePath string, debounce time.Duration, onReload func() error, onError func(error)) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// The directory, not the file: editors often save by rename.
	if err := fsw.Add(filepath.Dir(filePath)); err != nil {
		fsw.Close()
		return nil, err
	}
	return &Watcher{
		fsw:       fsw,
		base:      filepath.Base(filePath),
		debounce:  debounce,
		onReload:  onReload,
		onError:   onError,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}, nil
}

// WatchPalette reloads p from path on change and then calls onChange, if
// set, with the new contents in place. A failed reload leaves p untouched
// and goes to onError.
func WatchPalette(p *Palette, path string, debounce time.Duration, onChange func() error, onError func(error)) (*Watcher, error) {
	return NewWatcher(path, debounce, func() error {
		if err := p.Reload(path); err != nil {
			return err
		}
		if onChange == nil {
			return nil
		}
		return onChange()
	}, onError)
}

// Start launches the watch goroutine. Later calls do nothing.
func (w *Watcher) Start() {
	w.startOnce.Do(func() {
		w.mu.Lock()
		w.running = true
		w.mu.Unlock()
		go w.loop()
	})
}

// Stop ends watching and waits for the goroutine. It may be called more
// than once, with or without a prior Start.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.mu.Lock()
		running := w.running
		w.mu.Unlock()
		if !running {
			w.fsw.Close()
			return
		}
		<-w.stoppedCh
	})
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Base(ev.Name) != w.base {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

func (w *Watcher) report(err error) {
	if err != nil && w.onError != nil {
		w.onError(err)
	}
}

func (w *Watcher) loop() {
	defer close(w.stoppedCh)
	defer w.fsw.Close()

	settle := time.NewTimer(w.debounce)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.relevant(ev) {
				settle.Reset(w.debounce)
			}
		case <-settle.C:
			if w.onReload != nil {
				w.report(w.onReload())
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}
