package astrotime

import (
	"math"
	"testing"
	"time"
)

func TestDeltaTKnownValues(t *testing.T) {
	// опорные значения из таблиц NASA, допуск в пару секунд
	tests := []struct {
		date time.Time
		want float64
		tol  float64
	}{
		{time.Date(1990, 7, 1, 0, 0, 0, 0, time.UTC), 56.9, 2},
		{time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), 63.8, 2},
		{time.Date(2010, 7, 1, 0, 0, 0, 0, time.UTC), 66.3, 2},
	}
	for _, tt := range tests {
		got := DeltaTSeconds(tt.date)
		if math.Abs(got-tt.want) > tt.tol {
			t.Errorf("DeltaTSeconds(%v) = %.1f, want %.1f±%.0f", tt.date, got, tt.want, tt.tol)
		}
	}
}

func TestDeltaTContinuityAtBranchEdges(t *testing.T) {
	// на стыках полиномов скачок не должен превышать пары секунд
	edges := []int{1920, 1941, 1961, 1986, 2005, 2050}
	for _, y := range edges {
		before := DeltaTSeconds(time.Date(y-1, 12, 31, 0, 0, 0, 0, time.UTC))
		after := DeltaTSeconds(time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC))
		if math.Abs(after-before) > 2.5 {
			t.Errorf("deltaT jump at %d: %.2f -> %.2f", y, before, after)
		}
	}
}

func TestJDEAheadOfJD(t *testing.T) {
	now := time.Date(2024, 4, 23, 12, 0, 0, 0, time.UTC)
	if JDE(now) <= JD(now) {
		t.Error("JDE must be ahead of JD while deltaT is positive")
	}
}

func TestMeanLunarNode(t *testing.T) {
	// на J2000 средний узел около 125.04°
	got := MeanLunarNodeDeg(0)
	if math.Abs(got-125.0445479) > 1e-6 {
		t.Errorf("node at J2000 = %v, want 125.0445479", got)
	}

	// узел движется попятно примерно на 0.053°/сутки
	speed := MeanLunarNodeSpeed(0)
	if speed >= 0 || math.Abs(speed+0.0529539) > 1e-4 {
		t.Errorf("node speed = %v, want about -0.05295", speed)
	}
}
