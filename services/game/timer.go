package game

import (
	"time"

	models "Scramblio/models/game"
)

// roundTimer is the single cancellable, single-shot delayed action bound to a
// room: either the guessing-phase deadline or the settle delay before the
// next turn starts. Arming a new timer always cancels the previous one, and a
// callback whose generation is no longer current is a no-op, so a stale
// callback can never mutate a room that has already moved on or been deleted.
type roundTimer struct {
	handle *time.Timer
	gen    uint64
}

func (r *Room) schedule(d time.Duration, action func(*Room)) {
	r.cancelTimer()
	r.timerGen++
	gen := r.timerGen
	t := &roundTimer{gen: gen}
	t.handle = time.AfterFunc(d, func() {
		r.locker.Lock()
		defer r.locker.Unlock()
		if r.timer == nil || r.timer.gen != gen || r.Status != models.StatusPlaying {
			return
		}
		r.timer = nil
		action(r)
	})
	r.timer = t
}

func (r *Room) cancelTimer() {
	if r.timer != nil {
		r.timer.handle.Stop()
		r.timer = nil
	}
}
