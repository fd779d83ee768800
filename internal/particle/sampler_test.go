package particle

import (
	"sync"
	"testing"
)

// TestRandomInRange tests range randomization
func TestRandomInRange(t *testing.T) {
	s := NewRandSampler(1)

	t.Run("Basic range", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			got := RandomInRange(s, 10, 20)
			if got < 10 || got > 20 {
				t.Fatalf("RandomInRange(10, 20) = %v, out of range", got)
			}
		}
	})

	t.Run("Equal min and max", func(t *testing.T) {
		if got := RandomInRange(s, 5, 5); got != 5 {
			t.Errorf("RandomInRange(5, 5) = %v, want 5", got)
		}
	})

	t.Run("Inverted range is normalized", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			got := RandomInRange(s, 20, 10)
			if got < 10 || got > 20 {
				t.Fatalf("RandomInRange(20, 10) = %v, out of range", got)
			}
		}
	})

	t.Run("Closed bounds", func(t *testing.T) {
		fs := NewFixedSampler(0, 1)
		if got := RandomInRange(fs, 0.1, 0.7); got != 0.1 {
			t.Errorf("fraction 0 = %v, want 0.1", got)
		}
		if got := RandomInRange(fs, 0.1, 0.7); got != 0.7 {
			t.Errorf("fraction 1 = %v, want 0.7", got)
		}
	})

	t.Run("Out of range fractions are clamped", func(t *testing.T) {
		fs := NewFixedSampler(-0.5, 1.5)
		if got := RandomInRange(fs, 2, 4); got != 2 {
			t.Errorf("fraction -0.5 = %v, want 2", got)
		}
		if got := RandomInRange(fs, 2, 4); got != 4 {
			t.Errorf("fraction 1.5 = %v, want 4", got)
		}
	})
}

// TestRandomIndex tests that indices stay inside [0, n)
func TestRandomIndex(t *testing.T) {
	tests := []struct {
		fraction float64
		n        int
		want     int
	}{
		{0, 5, 0},
		{0.19, 5, 0},
		{0.2, 5, 1},
		{0.99, 5, 4},
		{1, 5, 4},
		{0.5, 1, 0},
	}
	for _, tt := range tests {
		got := RandomIndex(NewFixedSampler(tt.fraction), tt.n)
		if got != tt.want {
			t.Errorf("RandomIndex(%v, %d) = %d, want %d", tt.fraction, tt.n, got, tt.want)
		}
	}
}

// TestFixedSampler tests sequence replay and wrap-around
func TestFixedSampler(t *testing.T) {
	fs := NewFixedSampler(0.1, 0.2, 0.3)
	want := []float64{0.1, 0.2, 0.3, 0.1}
	for i, w := range want {
		if got := fs.Float64(); got != w {
			t.Errorf("call %d = %v, want %v", i, got, w)
		}
	}
	if fs.Calls() != 4 {
		t.Errorf("Calls() = %d, want 4", fs.Calls())
	}

	empty := &FixedSampler{}
	if got := empty.Float64(); got != 0 {
		t.Errorf("empty sampler = %v, want 0", got)
	}
}

// TestRange_SampleAndContains tests Range helpers
func TestRange_SampleAndContains(t *testing.T) {
	r := Range{Min: 0.4, Max: 0.8}
	s := NewRandSampler(42)
	for i := 0; i < 200; i++ {
		if v := r.Sample(s); !r.Contains(v) {
			t.Fatalf("Sample() = %v, not in %v", v, r)
		}
	}
	if r.Contains(0.81) {
		t.Error("Contains(0.81) = true, want false")
	}
	if got := r.Span(); got < 0.399 || got > 0.401 {
		t.Errorf("Span() = %v, want 0.4", got)
	}
	if (Range{Min: 3, Max: 1}).Contains(2) != true {
		t.Error("reversed range should contain its interior")
	}
}

// TestLocked tests that Locked preserves the sequence and does not double wrap
func TestLocked(t *testing.T) {
	fs := NewFixedSampler(0.25, 0.75)
	l := Locked(fs)
	if got := l.Float64(); got != 0.25 {
		t.Errorf("first = %v, want 0.25", got)
	}
	if got := l.Float64(); got != 0.75 {
		t.Errorf("second = %v, want 0.75", got)
	}
	if Locked(l) != l {
		t.Error("Locked(Locked(s)) should return the same sampler")
	}
}

// TestDefaultSampler tests that the shared sampler is locked exactly once
func TestDefaultSampler(t *testing.T) {
	s := DefaultSampler()
	if s != DefaultSampler() {
		t.Fatal("DefaultSampler() returned different instances")
	}
	if _, ok := s.(*lockedSampler); !ok {
		t.Fatalf("DefaultSampler() is %T, want a locked sampler", s)
	}
	if Locked(s) != s {
		t.Error("Locked(DefaultSampler()) wrapped the shared sampler again")
	}

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				if v := Locked(DefaultSampler()).Float64(); v < 0 || v >= 1 {
					t.Errorf("Float64() = %v outside [0, 1)", v)
					return
				}
			}
		}()
	}
	wg.Wait()
}
