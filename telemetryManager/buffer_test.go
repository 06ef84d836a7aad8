package telemetryManager

import (
	"context"
	"testing"
	"time"

	"riglogger/dataformats"
)

func Test_DropOldest(t *testing.T) {
	buffer := NewSampleBuffer(3)
	for i := 1; i <= 4; i++ {
		buffer.Push(dataformats.Sample{Force: float64(i)})
	}
	if buffer.Len() != 3 {
		t.Fatal("Wrong buffer length after eviction")
	}
	sample, ok := buffer.Pop()
	if !ok || sample.Force != 2 {
		t.Fatal("Wrong sample at the front after eviction")
	}
	sample, _ = buffer.Pop()
	if sample.Force != 3 {
		t.Fatal("Wrong sample order")
	}
	sample, _ = buffer.Pop()
	if sample.Force != 4 {
		t.Fatal("Wrong newest sample")
	}
	if _, ok = buffer.Pop(); ok {
		t.Fatal("Wrong pop on empty buffer")
	}
}

func Test_CapacityBound(t *testing.T) {
	buffer := NewSampleBuffer(100)
	for i := 1; i <= 1000; i++ {
		buffer.Push(dataformats.Sample{Force: float64(i)})
	}
	if buffer.Len() != 100 {
		t.Fatal("Wrong buffer length under overload")
	}
	sample, _ := buffer.Pop()
	if sample.Force != 901 {
		t.Fatal("Wrong oldest surviving sample")
	}
}

func Test_PopWaitTimeout(t *testing.T) {
	buffer := NewSampleBuffer(10)
	if _, ok := buffer.PopWait(context.Background(), 50*time.Millisecond); ok {
		t.Fatal("Wrong sample from an empty buffer")
	}
}

func Test_PopWaitDelivery(t *testing.T) {
	buffer := NewSampleBuffer(10)
	go func() {
		time.Sleep(20 * time.Millisecond)
		buffer.Push(dataformats.Sample{Pressure: 0.3})
	}()
	sample, ok := buffer.PopWait(context.Background(), time.Second)
	if !ok || sample.Pressure != 0.3 {
		t.Fatal("Wrong sample from a late push")
	}
}

func Test_PopWaitCancelled(t *testing.T) {
	buffer := NewSampleBuffer(10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, ok := buffer.PopWait(ctx, time.Minute); ok {
		t.Fatal("Wrong sample after cancellation")
	}
}

func Test_LatestSurvivesFlush(t *testing.T) {
	buffer := NewSampleBuffer(10)
	buffer.Push(dataformats.Sample{Pressure: 0.1})
	buffer.Push(dataformats.Sample{Pressure: 0.2})
	buffer.Flush()
	if buffer.Len() != 0 {
		t.Fatal("Wrong buffer length after flush")
	}
	sample, ok := buffer.Latest()
	if !ok || sample.Pressure != 0.2 {
		t.Fatal("Wrong latest sample after flush")
	}
}
