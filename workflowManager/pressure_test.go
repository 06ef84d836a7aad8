package workflowManager

import (
	"context"
	"testing"
)

func Test_LockPressureOffList(t *testing.T) {
	input, _, _, runner := newScriptedRunner()
	input.feed <- "abc\n"
	input.feed <- "0.35\n"
	input.feed <- "\n"

	target, ok, err := runner.lockPressure(context.Background())
	if err != nil {
		t.Fatal("Wrong lock outcome")
	}
	if !ok || target != 0.35 {
		t.Fatal("Wrong off-list target handling")
	}
}

func Test_LockSentinel(t *testing.T) {
	input, _, _, runner := newScriptedRunner()
	input.feed <- "Q\n"

	target, ok, err := runner.lockPressure(context.Background())
	if err != nil {
		t.Fatal("Wrong sentinel outcome")
	}
	if ok || target != 0 {
		t.Fatal("Wrong sentinel handling")
	}
}
