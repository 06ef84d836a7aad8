package dataformats

import "testing"

func Test_Calibrated(t *testing.T) {
	cal := CalibrationResult{Reference: 200.0, Offset: 5.0}
	if d := cal.Calibrated(190.0); d != 195.0 {
		t.Fatal("Wrong calibrated distance", d)
	}
}

func Test_Shrinkage(t *testing.T) {
	cal := CalibrationResult{Reference: 200.0, Offset: 5.0}
	if s := cal.Shrinkage(190.0); s != 2.5 {
		t.Fatal("Wrong shrinkage", s)
	}
	// at the reference length the contraction is zero
	if s := cal.Shrinkage(195.0); s != 0.0 {
		t.Fatal("Wrong shrinkage at reference", s)
	}
}
