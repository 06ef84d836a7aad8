package telemetryManager

import (
	"testing"
)

func Test_DecodeFrame(t *testing.T) {
	sample, ok := DecodeFrame("1.5,180.25,0.30")
	if !ok {
		t.Fatal("Wrong rejection of a valid frame")
	}
	if sample.Force != 1.5 || sample.Distance != 180.25 || sample.Pressure != 0.30 {
		t.Fatal("Wrong decoded values")
	}
	if sample, ok = DecodeFrame(" 2.5 , 181.0 , 0.45 "); !ok || sample.Distance != 181.0 {
		t.Fatal("Wrong handling of padded fields")
	}
}

func Test_DecodeFrameMalformed(t *testing.T) {
	for _, line := range []string{
		"",
		"1.0,2.0",
		"1.0,2.0,3.0,4.0",
		"a,b,c",
		"1.0,x,3.0",
	} {
		if _, ok := DecodeFrame(line); ok {
			t.Fatal("Wrong acceptance of malformed frame " + line)
		}
	}
}
