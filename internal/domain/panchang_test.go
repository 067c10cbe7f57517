package domain

import (
	"testing"
	"time"
)

func TestTithiFromIndex(t *testing.T) {
	tests := []struct {
		idx        int
		wantName   string
		wantPaksha Paksha
	}{
		{0, "Pratipada", PakshaShukla},
		{10, "Ekadashi", PakshaShukla},
		{14, "Purnima", PakshaShukla},
		{15, "Pratipada", PakshaKrishna},
		{25, "Ekadashi", PakshaKrishna},
		{29, "Amavasya", PakshaKrishna},
	}
	for _, tt := range tests {
		got := TithiFromIndex(tt.idx)
		if got.Name != tt.wantName || got.Paksha != tt.wantPaksha {
			t.Errorf("TithiFromIndex(%d) = %s/%s, want %s/%s",
				tt.idx, got.Name, got.Paksha, tt.wantName, tt.wantPaksha)
		}
	}
}

func TestKaranaFromIndex(t *testing.T) {
	tests := []struct {
		idx  int
		want string
	}{
		{0, "Kimstughna"},
		{1, "Bava"},
		{7, "Vishti"},
		{8, "Bava"}, // цикл подвижных каран
		{56, "Vishti"},
		{57, "Shakuni"},
		{58, "Chatushpada"},
		{59, "Naga"},
	}
	for _, tt := range tests {
		if got := KaranaFromIndex(tt.idx); got.Name != tt.want {
			t.Errorf("KaranaFromIndex(%d) = %s, want %s", tt.idx, got.Name, tt.want)
		}
	}
}

func TestVaraFromWeekday(t *testing.T) {
	v := VaraFromWeekday(time.Sunday)
	if v.Name != "Ravivara" || v.Lord != Sun {
		t.Errorf("Sunday = %s/%v, want Ravivara/Sun", v.Name, v.Lord)
	}
	v = VaraFromWeekday(time.Saturday)
	if v.Name != "Shanivara" || v.Lord != Saturn {
		t.Errorf("Saturday = %s/%v, want Shanivara/Saturn", v.Name, v.Lord)
	}
}

func TestVerdictForTotal(t *testing.T) {
	tests := []struct {
		total float64
		want  VerdictBand
	}{
		{0, VerdictNotRecommended},
		{17.5, VerdictNotRecommended},
		{18, VerdictAverage},
		{24, VerdictAverage},
		{24.5, VerdictGood},
		{32, VerdictGood},
		{32.5, VerdictExcellent},
		{36, VerdictExcellent},
	}
	for _, tt := range tests {
		if got := VerdictForTotal(tt.total); got != tt.want {
			t.Errorf("VerdictForTotal(%v) = %v, want %v", tt.total, got, tt.want)
		}
	}
}
