// Package notify plays the rest-complete signal. The terminal build
// maps the configurable sounds to BEL sequences; missing hardware
// degrades to a fallback, never an error.
package notify

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/tigrerol/SimpleTimerApp/internal/models"
	"github.com/tigrerol/SimpleTimerApp/internal/util"
)

// Notifier signals that a rest period has completed.
type Notifier interface {
	NotifyRestComplete()
}

// Nop is a Notifier that does nothing.
type Nop struct{}

func (Nop) NotifyRestComplete() {}

// bellCounts maps each sound to the number of BEL characters emitted.
var bellCounts = map[models.Sound]int{
	models.SoundChime:  1,
	models.SoundDouble: 2,
	models.SoundTriple: 3,
	models.SoundSilent: 0,
}

// Terminal notifies through the terminal with an audible bell per the
// selected sound. The visual cue is the presentation layer's job; this
// only covers audio.
type Terminal struct {
	mu    sync.Mutex
	w     io.Writer
	sound models.Sound
}

// NewTerminal returns a Terminal writing to w. A nil writer falls back
// to stderr so the bell bypasses the TUI's stdout renderer.
func NewTerminal(w io.Writer, sound models.Sound) *Terminal {
	if w == nil {
		w = os.Stderr
	}
	return &Terminal{w: w, sound: sound}
}

// SetSound selects the notification sound. Unknown names fall back to
// the default chime.
func (t *Terminal) SetSound(s models.Sound) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := bellCounts[s]; !ok {
		s = models.SoundChime
	}
	t.sound = s
}

// Sound returns the currently selected sound.
func (t *Terminal) Sound() models.Sound {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sound
}

// NotifyRestComplete plays the configured sound. A failed write
// degrades to a single fallback bell on stderr.
func (t *Terminal) NotifyRestComplete() {
	t.mu.Lock()
	count, ok := bellCounts[t.sound]
	if !ok {
		count = 1
	}
	w := t.w
	t.mu.Unlock()

	for i := 0; i < count; i++ {
		if _, err := w.Write([]byte("\a")); err != nil {
			util.LogError("notify: bell", err)
			_, _ = os.Stderr.Write([]byte("\a"))
			break
		}
		if i < count-1 {
			time.Sleep(120 * time.Millisecond)
		}
	}
}
