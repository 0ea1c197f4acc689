package params

import "testing"

func TestDefaults(t *testing.T) {
	s := NewStore(60)

	tests := []struct {
		param Param
		want  uint8
	}{
		{Brightness, 16},
		{Sparking, 120},
		{Cooling, 55},
	}
	for _, tt := range tests {
		if got := s.Get(tt.param); got != tt.want {
			t.Errorf("%s default = %d, want %d", tt.param, got, tt.want)
		}
	}
}

func TestAdjustClampsExtremeDeltas(t *testing.T) {
	s := NewStore(60)

	if got := s.Adjust(Sparking, 10000); got != 200 {
		t.Errorf("huge positive delta: got %d, want max 200", got)
	}
	if got := s.Adjust(Sparking, -10000); got != 50 {
		t.Errorf("huge negative delta: got %d, want min 50", got)
	}
	if got := s.Adjust(Brightness, 10000); got != 255 {
		t.Errorf("brightness max: got %d, want 255", got)
	}
	if got := s.Adjust(Brightness, -10000); got != 0 {
		t.Errorf("brightness min: got %d, want 0", got)
	}
	if got := s.Adjust(Cooling, 10000); got != 100 {
		t.Errorf("cooling max: got %d, want 100", got)
	}
	if got := s.Adjust(Cooling, -10000); got != 20 {
		t.Errorf("cooling min: got %d, want 20", got)
	}
}

func TestAdjustProportionalStep(t *testing.T) {
	s := NewStore(60)

	// brightness range is 255 wide: one detent on a 60-cell strip
	// moves 255/60 = 4.
	got := s.Adjust(Brightness, 1)
	if got != 20 {
		t.Errorf("single detent: got %d, want 20", got)
	}
	got = s.Adjust(Brightness, -1)
	if got != 16 {
		t.Errorf("reverse detent: got %d, want 16", got)
	}
}

func TestAdjustSingleDetentAlwaysMoves(t *testing.T) {
	// Granularity far above the range would round the step to zero;
	// a detent must still nudge the value.
	s := NewStore(10000)
	before := s.Get(Cooling)
	after := s.Adjust(Cooling, 1)
	if after != before+1 {
		t.Errorf("detent on coarse store: got %d, want %d", after, before+1)
	}
}

func TestResetAll(t *testing.T) {
	s := NewStore(60)
	s.Adjust(Brightness, 10000)
	s.Adjust(Sparking, 10000)
	s.Adjust(Cooling, -10000)

	s.ResetAll()

	if s.Get(Brightness) != 16 || s.Get(Sparking) != 120 || s.Get(Cooling) != 55 {
		t.Errorf("ResetAll left %d/%d/%d, want 16/120/55",
			s.Get(Brightness), s.Get(Sparking), s.Get(Cooling))
	}
}

func TestSetClamps(t *testing.T) {
	s := NewStore(60)
	if got := s.Set(Cooling, 500); got != 100 {
		t.Errorf("Set above max: got %d, want 100", got)
	}
	if got := s.Set(Cooling, -5); got != 20 {
		t.Errorf("Set below min: got %d, want 20", got)
	}
}

func TestFraction(t *testing.T) {
	s := NewStore(60)
	s.Set(Sparking, 50)
	if f := s.Fraction(Sparking); f != 0 {
		t.Errorf("fraction at min = %f, want 0", f)
	}
	s.Set(Sparking, 200)
	if f := s.Fraction(Sparking); f != 1 {
		t.Errorf("fraction at max = %f, want 1", f)
	}
	s.Set(Sparking, 125)
	if f := s.Fraction(Sparking); f != 0.5 {
		t.Errorf("fraction at midpoint = %f, want 0.5", f)
	}
}
