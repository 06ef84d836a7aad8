package rigmodels

// rig firmware simulator, for testing purposes only

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"riglogger/support/globals"
)

// Rig emulates the tensile rig firmware. It greets with the ready signal and
// then streams force,distance,pressure frames at a steady rate, cycling
// through the configured pressure targets.
type Rig struct {
	feed    chan []byte
	pending []byte
	timeout time.Duration
	quit    chan struct{}
	once    sync.Once
}

func NewRig(ctx context.Context, timeout time.Duration) *Rig {
	r := &Rig{
		feed:    make(chan []byte, 16),
		timeout: timeout,
		quit:    make(chan struct{}),
	}
	go r.generate(ctx)
	return r
}

func (r *Rig) generate(ctx context.Context) {
	r.emit(globals.Handshake + "\r\n")
	targets := globals.TargetPressures
	if len(targets) == 0 {
		targets = []float64{0.3}
	}
	force := 0.0
	distance := 180.0
	pressure := 0.0
	level := 0
	period := 50
	if globals.Config != nil {
		period = globals.Config.Section("simulator").Key("period_ms").MustInt(50)
	}
	ticker := time.NewTicker(time.Duration(period) * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.quit:
			return
		case <-ticker.C:
			force += 0.2 + rand.Float64()*0.1
			if force > 60 {
				force = 0
				level = (level + 1) % len(targets)
			}
			distance += rand.Float64() - 0.52
			pressure += (targets[level]-pressure)*0.1 + (rand.Float64()-0.5)*0.002
			r.emit(fmt.Sprintf("%.2f,%.2f,%.3f\r\n", force, distance, pressure))
		}
	}
}

// emit drops the frame when the feed is full, like a UART overrun would.
func (r *Rig) emit(line string) {
	select {
	case r.feed <- []byte(line):
	default:
	}
}

func (r *Rig) Read(p []byte) (int, error) {
	if len(r.pending) == 0 {
		var expired <-chan time.Time
		if r.timeout > 0 {
			timer := time.NewTimer(r.timeout)
			defer timer.Stop()
			expired = timer.C
		}
		select {
		case chunk := <-r.feed:
			r.pending = chunk
		case <-r.quit:
			return 0, io.EOF
		case <-expired:
			return 0, nil
		}
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

func (r *Rig) SetReadTimeout(timeout time.Duration) error {
	r.timeout = timeout
	return nil
}

func (r *Rig) ResetInputBuffer() error {
	r.pending = nil
	for {
		select {
		case <-r.feed:
		default:
			return nil
		}
	}
}

func (r *Rig) Close() error {
	r.once.Do(func() { close(r.quit) })
	return nil
}
