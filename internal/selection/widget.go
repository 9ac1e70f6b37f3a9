// Package selection holds the file-selection widget state: the files an operator
// dropped or picked, and the drag-over affordance flag.
package selection

import (
	"errors"
	"fmt"
	"sync"
)

// ErrIndexOutOfRange is returned by Remove when the index does not address a held file.
var ErrIndexOutOfRange = errors.New("file index out of range")

// File is one selected file. Only metadata is kept; contents are never read.
type File struct {
	Name      string `json:"name"`
	SizeBytes int64  `json:"size_bytes"`
}

// SizeMiB formats the size the way the widget displays it ("1.50").
func (f File) SizeMiB() string {
	return fmt.Sprintf("%.2f", float64(f.SizeBytes)/1024/1024)
}

// Config describes one widget instance.
type Config struct {
	ID       string
	Label    string
	Accept   string // passed to the native picker, not enforced here
	Multiple bool
}

// ChangeFunc receives a copy of the held list after every change.
type ChangeFunc func(files []File)

// Widget is the state of one file-selection control.
// Drop and Pick both replace the whole selection; nothing accumulates across events.
type Widget struct {
	cfg      Config
	onChange ChangeFunc

	files    []File
	dragOver bool

	mu sync.RWMutex
}

// New creates a widget. onChange may be nil.
func New(cfg Config, onChange ChangeFunc) *Widget {
	return &Widget{
		cfg:      cfg,
		onChange: onChange,
		files:    make([]File, 0),
	}
}

func (w *Widget) Config() Config {
	return w.cfg
}

// DragOver raises the drag affordance flag.
func (w *Widget) DragOver() {
	w.mu.Lock()
	w.dragOver = true
	w.mu.Unlock()
}

// DragLeave clears the drag affordance flag.
func (w *Widget) DragLeave() {
	w.mu.Lock()
	w.dragOver = false
	w.mu.Unlock()
}

// DragActive reports whether a drag is hovering the drop zone.
func (w *Widget) DragActive() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.dragOver
}

// Drop ends a drag sequence and replaces the selection with the dropped files.
func (w *Widget) Drop(files []File) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dragOver = false
	w.replaceLocked(files)
}

// Pick replaces the selection with the files chosen in the native picker.
func (w *Widget) Pick(files []File) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.replaceLocked(files)
}

// Remove drops the file at index i, keeping the order of the rest.
func (w *Widget) Remove(i int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if i < 0 || i >= len(w.files) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, i, len(w.files))
	}
	next := make([]File, 0, len(w.files)-1)
	for j, f := range w.files {
		if j != i {
			next = append(next, f)
		}
	}
	w.files = next
	w.notifyLocked()
	return nil
}

// Files returns a copy of the held list.
func (w *Widget) Files() []File {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.snapshotLocked()
}

// Count returns the number of held files.
func (w *Widget) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.files)
}

// replaceLocked is the single update path shared by Drop and Pick (must hold lock).
func (w *Widget) replaceLocked(files []File) {
	w.files = make([]File, len(files))
	copy(w.files, files)
	w.notifyLocked()
}

// snapshotLocked copies the list (must hold lock).
func (w *Widget) snapshotLocked() []File {
	out := make([]File, len(w.files))
	copy(out, w.files)
	return out
}

// notifyLocked runs the callback under the write lock, so listeners observe
// changes in the order they were applied. The callback must not call back
// into the widget.
func (w *Widget) notifyLocked() {
	if w.onChange != nil {
		w.onChange(w.snapshotLocked())
	}
}
