package telemetryManager

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/fpessolano/mlogger"

	"riglogger/rigmodels"
	"riglogger/support/globals"
)

// scriptedLink replays canned lines with serial style timeout reads.
type scriptedLink struct {
	feed    chan string
	pending []byte
	quit    chan struct{}
	once    sync.Once
}

func newScriptedLink() *scriptedLink {
	return &scriptedLink{
		feed: make(chan string, 32),
		quit: make(chan struct{}),
	}
}

func (l *scriptedLink) Read(p []byte) (int, error) {
	if len(l.pending) == 0 {
		select {
		case line, ok := <-l.feed:
			if !ok {
				return 0, errors.New("link lost")
			}
			l.pending = []byte(line)
		case <-l.quit:
			return 0, errors.New("link closed")
		case <-time.After(50 * time.Millisecond):
			return 0, nil
		}
	}
	n := copy(p, l.pending)
	l.pending = l.pending[n:]
	return n, nil
}

func (l *scriptedLink) SetReadTimeout(timeout time.Duration) error {
	return nil
}

func (l *scriptedLink) ResetInputBuffer() error {
	l.pending = nil
	for {
		select {
		case <-l.feed:
		default:
			return nil
		}
	}
}

func (l *scriptedLink) Close() error {
	l.once.Do(func() { close(l.quit) })
	return nil
}

func TestMain(m *testing.M) {
	var err error
	if globals.TelemetryLog, err = mlogger.DeclareLog("riglogger_telemetry_test", false); err != nil {
		fmt.Println("Unable to set the test logfile")
		os.Exit(0)
	}
	_ = mlogger.SetTextLimit(globals.TelemetryLog, 80, 30, 12)
	os.Exit(m.Run())
}

func Test_Handshake(t *testing.T) {
	link := newScriptedLink()
	link.feed <- "boot noise\n"
	link.feed <- globals.Handshake + "\n"
	reader := &Reader{link: link, done: make(chan struct{})}
	if err := reader.handshake(); err != nil {
		t.Fatal("Wrong handshake outcome")
	}
}

func Test_HandshakeTimeout(t *testing.T) {
	reader := &Reader{link: newScriptedLink(), done: make(chan struct{})}
	if err := reader.handshake(); err != globals.HandshakeFailed {
		t.Fatal("Wrong error on a silent link")
	}
}

func Test_ReaderFramesAndDiscards(t *testing.T) {
	ctx, cancel := context.WithCancelCause(context.Background())
	link := newScriptedLink()
	buffer := NewSampleBuffer(10)
	reader := &Reader{link: link, buffer: buffer, cancel: cancel, done: make(chan struct{})}
	link.feed <- "1.0,2.0,0.3\n"
	link.feed <- "garbage\n"
	link.feed <- "2.0,3.0,0.3\n"
	go reader.run(ctx)
	deadline := time.Now().Add(2 * time.Second)
	for buffer.Len() != 2 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	cancel(nil)
	if !reader.Wait(2 * time.Second) {
		t.Fatal("Wrong reader shutdown")
	}
	if reader.Frames != 2 || reader.Discarded != 1 {
		t.Fatal("Wrong frame accounting")
	}
}

func Test_ReaderLinkFault(t *testing.T) {
	ctx, cancel := context.WithCancelCause(context.Background())
	link := newScriptedLink()
	reader := &Reader{link: link, buffer: NewSampleBuffer(10), cancel: cancel, done: make(chan struct{})}
	go reader.run(ctx)
	close(link.feed)
	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Wrong fault propagation")
	}
	if !errors.Is(context.Cause(ctx), globals.LinkFault) {
		t.Fatal("Wrong fault cause")
	}
	if !reader.Wait(2 * time.Second) {
		t.Fatal("Wrong reader shutdown on fault")
	}
}

func Test_ReaderSimulator(t *testing.T) {
	ctx, cancel := context.WithCancelCause(context.Background())
	rig := rigmodels.NewRig(ctx, 200*time.Millisecond)
	buffer := NewSampleBuffer(100)
	reader := &Reader{link: rig, buffer: buffer, cancel: cancel, done: make(chan struct{})}
	if err := reader.handshake(); err != nil {
		t.Fatal("Wrong simulator handshake")
	}
	_ = rig.ResetInputBuffer()
	go reader.run(ctx)
	deadline := time.Now().Add(3 * time.Second)
	for buffer.Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	cancel(nil)
	if !reader.Wait(3 * time.Second) {
		t.Fatal("Wrong simulator reader shutdown")
	}
	if reader.Frames == 0 {
		t.Fatal("Wrong simulator frame count")
	}
	fmt.Println("simulated frames received:", reader.Frames)
}
