package telemetryManager

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fpessolano/mlogger"
	"github.com/pkg/errors"

	"riglogger/support/globals"
)

// Reader owns the telemetry link for the whole run. After the handshake it
// feeds decoded samples into the buffer until the run ends or the link fails.
type Reader struct {
	link      Link
	buffer    *SampleBuffer
	cancel    context.CancelCauseFunc
	done      chan struct{}
	pending   []byte
	Frames    int
	Discarded int
}

// readLine accumulates bytes until a newline arrives. On a read timeout it
// hands back whatever is pending, trimmed, which may be the empty string.
func (r *Reader) readLine() (string, error) {
	for {
		if i := bytes.IndexByte(r.pending, '\n'); i >= 0 {
			line := strings.TrimSpace(string(r.pending[:i]))
			r.pending = r.pending[i+1:]
			return line, nil
		}
		chunk := make([]byte, readChunk)
		n, err := r.link.Read(chunk)
		if err != nil {
			return "", err
		}
		if n == 0 {
			line := strings.TrimSpace(string(r.pending))
			r.pending = nil
			return line, nil
		}
		r.pending = append(r.pending, chunk[:n]...)
	}
}

// handshake waits for the rig ready signal. An empty read means the link
// stayed silent for a whole timeout window.
func (r *Reader) handshake() error {
	for {
		line, err := r.readLine()
		if err != nil {
			return errors.Wrap(err, "telemetryManager.handshake: link failed")
		}
		if line == globals.Handshake {
			return nil
		}
		if line == "" {
			return globals.HandshakeFailed
		}
	}
}

func (r *Reader) run(ctx context.Context) {
	defer close(r.done)
	defer func() {
		_ = r.link.Close()
	}()
	for {
		if ctx.Err() != nil {
			return
		}
		line, err := r.readLine()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			fmt.Println("\n串口错误，读取线程退出。")
			mlogger.Error(globals.TelemetryLog,
				mlogger.LoggerData{Id: "telemetryManager.run",
					Message: "link fault: " + err.Error(),
					Data: []int{1}, Aggregate: true})
			r.cancel(errors.Wrap(globals.LinkFault, err.Error()))
			return
		}
		if line == "" {
			continue
		}
		sample, ok := DecodeFrame(line)
		if !ok {
			r.Discarded++
			if globals.DebugActive {
				fmt.Printf("telemetryManager.run: discarded frame %q\n", line)
			}
			continue
		}
		r.buffer.Push(sample)
		r.Frames++
	}
}

// Wait blocks until the reader goroutine exits, up to the given timeout.
func (r *Reader) Wait(timeout time.Duration) bool {
	select {
	case <-r.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Close force-closes the link, unblocking any in-flight read.
func (r *Reader) Close() {
	_ = r.link.Close()
}
