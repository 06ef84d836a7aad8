package workflowManager

import (
	"context"
	"testing"
	"time"

	"riglogger/dataformats"
)

func Test_CollectSession(t *testing.T) {
	input, buffer, _, runner := newScriptedRunner()
	for i := 1; i <= 3; i++ {
		buffer.Push(dataformats.Sample{Force: float64(i), Distance: 50, Pressure: 0.3})
	}
	go func() {
		deadline := time.Now().Add(2 * time.Second)
		for buffer.Len() != 0 && time.Now().Before(deadline) {
			time.Sleep(10 * time.Millisecond)
		}
		time.Sleep(50 * time.Millisecond)
		input.feed <- "\n"
	}()

	calibration := dataformats.CalibrationResult{Reference: 55, Offset: 5}
	points, err := runner.collect(context.Background(), calibration, 0.3)
	if err != nil {
		t.Fatal("Wrong collection outcome")
	}
	if len(points) != 3 {
		t.Fatal("Wrong collected sample count")
	}
	for i, point := range points {
		if point.Force != float64(i+1) {
			t.Fatal("Wrong sample order")
		}
		if point.Shrinkage != 0 {
			t.Fatal("Wrong shrinkage at the reference length")
		}
	}
}
