package telemetryManager

import (
	"context"
	"sync"
	"time"

	"riglogger/dataformats"
)

// SampleBuffer is the bounded queue between the telemetry reader and the
// interactive steps. When full the oldest sample is evicted, keeping the
// queue current rather than complete.
type SampleBuffer struct {
	mutex  sync.Mutex
	items  []dataformats.Sample
	first  int
	length int
	latest dataformats.Sample
	seen   bool
	wake   chan struct{}
}

func NewSampleBuffer(capacity int) *SampleBuffer {
	if capacity <= 0 {
		capacity = 1
	}
	return &SampleBuffer{
		items: make([]dataformats.Sample, capacity),
		wake:  make(chan struct{}, 1),
	}
}

// Push stores a sample, evicting the oldest one when the buffer is full.
func (b *SampleBuffer) Push(sample dataformats.Sample) {
	b.mutex.Lock()
	if b.length == len(b.items) {
		b.first = (b.first + 1) % len(b.items)
		b.length--
	}
	b.items[(b.first+b.length)%len(b.items)] = sample
	b.length++
	b.latest = sample
	b.seen = true
	b.mutex.Unlock()
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// Pop removes and returns the oldest sample, if any.
func (b *SampleBuffer) Pop() (dataformats.Sample, bool) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if b.length == 0 {
		return dataformats.Sample{}, false
	}
	sample := b.items[b.first]
	b.first = (b.first + 1) % len(b.items)
	b.length--
	return sample, true
}

// PopWait removes the oldest sample, waiting up to timeout for one to
// arrive. It also gives up when the run context ends.
func (b *SampleBuffer) PopWait(ctx context.Context, timeout time.Duration) (dataformats.Sample, bool) {
	if sample, ok := b.Pop(); ok {
		return sample, true
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case <-b.wake:
			if sample, ok := b.Pop(); ok {
				return sample, true
			}
		case <-timer.C:
			return dataformats.Sample{}, false
		case <-ctx.Done():
			return dataformats.Sample{}, false
		}
	}
}

// Latest returns the most recent sample ever pushed without consuming it.
func (b *SampleBuffer) Latest() (dataformats.Sample, bool) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.latest, b.seen
}

// Flush discards all queued samples. The latest reading is kept so the
// live pressure display has something to show.
func (b *SampleBuffer) Flush() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.first = 0
	b.length = 0
}

func (b *SampleBuffer) Len() int {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.length
}
