package crypto

import "testing"

func TestSecureSourceBounds(t *testing.T) {
	for i := 0; i < 200; i++ {
		n, err := SecureSource.Intn(7)
		if err != nil {
			t.Fatalf("Intn() unexpected error: %v", err)
		}
		if n < 0 || n >= 7 {
			t.Fatalf("Intn(7) = %d, out of range", n)
		}
	}
}

func TestSourcesRejectNonPositiveBound(t *testing.T) {
	seeded, err := NewSeededSource(1)
	if err != nil {
		t.Fatalf("NewSeededSource() unexpected error: %v", err)
	}

	for _, src := range []Source{SecureSource, seeded} {
		if _, err := src.Intn(0); err != ErrInvalidBound {
			t.Errorf("Intn(0) error = %v, want %v", err, ErrInvalidBound)
		}
	}
}

func TestSeededSourceCoversRange(t *testing.T) {
	src, err := NewSeededSource(7)
	if err != nil {
		t.Fatalf("NewSeededSource() unexpected error: %v", err)
	}

	counts := make([]int, 10)
	for i := 0; i < 10000; i++ {
		n, err := src.Intn(10)
		if err != nil {
			t.Fatalf("Intn() unexpected error: %v", err)
		}
		counts[n]++
	}

	// Each bucket expects 1000; anything this far off means a broken sampler.
	for v, c := range counts {
		if c < 800 || c > 1200 {
			t.Errorf("value %d drawn %d times out of 10000", v, c)
		}
	}
}

func TestSeededSourceSequenceRepeats(t *testing.T) {
	a, _ := NewSeededSource(99)
	b, _ := NewSeededSource(99)

	for i := 0; i < 100; i++ {
		x, _ := a.Intn(1000)
		y, _ := b.Intn(1000)
		if x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}
