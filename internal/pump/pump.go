// ABOUTME: Display buffer pump marrying the capture stream to the UI paint cadence
// ABOUTME: Drains the SPSC queue into the ring and publishes snapshots at 10Hz
package pump

import (
	"log"
	"time"

	"github.com/wavetap/wavetap-go/internal/ui"
	"github.com/wavetap/wavetap-go/pkg/spsc"
)

const (
	// DefaultInterval is the pacing between snapshot submissions.
	DefaultInterval = 100 * time.Millisecond

	// dropReportTicks is how many pump ticks pass between drop-counter
	// log lines (about every 5 seconds at the default interval).
	dropReportTicks = 50
)

// Pump runs on its own goroutine. Each tick it drains every sample
// currently queued into the display ring, submits a snapshot to the UI
// sink, and sleeps one pacing interval. It terminates only when the sink
// rejects a submission, which signals UI shutdown.
type Pump struct {
	queue    *spsc.Queue[float32]
	buf      *DisplayBuffer
	interval time.Duration

	// Drops optionally reports the producer's cumulative drop counter;
	// the pump logs deltas at a coarse interval.
	Drops func() uint64
}

// New creates a pump consuming q, publishing every interval.
func New(q *spsc.Queue[float32], interval time.Duration) *Pump {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Pump{
		queue:    q,
		buf:      NewDisplayBuffer(DisplayBufferLen),
		interval: interval,
	}
}

// Run loops until sink.Submit fails. The drain is unbounded per tick so
// transient bursts never accumulate a backlog; the producer rate is bounded
// by the audio sample rate, so the per-tick drain is bounded in practice.
func (p *Pump) Run(sink ui.Sink) {
	log.Printf("pump: started (interval %v, display buffer %d samples)",
		p.interval, p.buf.Len())

	var tick, lastDrops uint64
	for {
		p.drain()

		cmd := ui.Command{
			Selector: ui.SelectorDrawAudio,
			Samples:  p.buf.Snapshot(),
		}
		if err := sink.Submit(cmd); err != nil {
			log.Printf("pump: sink closed, stopping: %v", err)
			return
		}

		tick++
		if p.Drops != nil && tick%dropReportTicks == 0 {
			if d := p.Drops(); d != lastDrops {
				log.Printf("pump: %d samples dropped on the realtime path", d-lastDrops)
				lastDrops = d
			}
		}

		time.Sleep(p.interval)
	}
}

// drain moves every queued sample into the display ring, in production
// order, until the queue reports empty.
func (p *Pump) drain() {
	for {
		s, ok := p.queue.TryPop()
		if !ok {
			return
		}
		p.buf.Write(s)
	}
}

// Buffer exposes the display ring for tests.
func (p *Pump) Buffer() *DisplayBuffer {
	return p.buf
}
