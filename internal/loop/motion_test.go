package loop

import (
	"math"
	"testing"
	"time"
)

func TestAdvanceWrapsAtBound(t *testing.T) {
	// 195 + 10*1s = 205 exceeds the bound and wraps to exactly 0.
	got := Advance(195, 10, time.Second, 200)
	if got != 0 {
		t.Errorf("Advance(195, 10, 1s, 200) = %v, expected 0", got)
	}

	// Landing exactly on the bound does not wrap.
	got = Advance(190, 10, time.Second, 200)
	if got != 200 {
		t.Errorf("Advance(190, 10, 1s, 200) = %v, expected 200", got)
	}

	// One more step from the bound wraps.
	got = Advance(200, 10, time.Second, 200)
	if got != 0 {
		t.Errorf("Advance(200, 10, 1s, 200) = %v, expected 0", got)
	}
}

func TestAdvanceScalesWithDt(t *testing.T) {
	// Same velocity, different frame times: the travelled distance
	// depends only on elapsed time.
	coarse := Advance(0, 60, 250*time.Millisecond, 1000)
	fine := 0.0
	for i := 0; i < 25; i++ {
		fine = Advance(fine, 60, 10*time.Millisecond, 1000)
	}

	if math.Abs(coarse-15.0) > 1e-9 {
		t.Errorf("coarse integration = %v, expected 15.0", coarse)
	}
	if math.Abs(fine-coarse) > 1e-9 {
		t.Errorf("fine integration = %v, coarse = %v; both should cover the same distance", fine, coarse)
	}
}

func TestAdvanceZeroDt(t *testing.T) {
	if got := Advance(42, 300, 0, 100); got != 42 {
		t.Errorf("Advance with dt=0 moved the position to %v", got)
	}
}
