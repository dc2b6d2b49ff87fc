package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// Quartz paces the clock: it invokes the update callback once on start and
// again whenever the wall-clock second changes, polling well below one
// second so ticks land close to the second boundary.
type Quartz struct {
	update       func(time.Time)
	loc          *time.Location
	pollInterval time.Duration

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewQuartz creates a quartz ticking in the given location. A nil location
// means local time.
func NewQuartz(update func(time.Time), loc *time.Location) *Quartz {
	if loc == nil {
		loc = time.Local
	}
	return &Quartz{
		update:       update,
		loc:          loc,
		pollInterval: 50 * time.Millisecond,
		stopChan:     make(chan struct{}),
	}
}

// Start launches the tick loop. Calling Start more than once is a no-op.
func (q *Quartz) Start() {
	if !q.running.CompareAndSwap(false, true) {
		return
	}
	q.wg.Add(1)
	go q.run()
}

func (q *Quartz) run() {
	defer q.wg.Done()

	now := time.Now().In(q.loc)
	q.update(now)
	last := now.Unix()

	ticker := time.NewTicker(q.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-q.stopChan:
			return
		case <-ticker.C:
			now := time.Now().In(q.loc)
			if sec := now.Unix(); sec != last {
				last = sec
				q.update(now)
			}
		}
	}
}

// Stop terminates the tick loop and waits for it to exit. Safe to call
// multiple times and before Start.
func (q *Quartz) Stop() {
	q.stopOnce.Do(func() { close(q.stopChan) })
	q.wg.Wait()
	q.running.Store(false)
}
