package museum

import "testing"

func TestRandDeterministic(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 100; i++ {
		got, want := a.NextU64(), b.NextU64()
		if got != want {
			t.Fatalf("passo %d: %d != %d", i, got, want)
		}
	}
}

func TestRandIntnBounds(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 1000; i++ {
		if got := r.Intn(10); got < 0 || got >= 10 {
			t.Fatalf("Intn(10) = %d, want [0, 10)", got)
		}
	}
	if got := r.Intn(0); got != 0 {
		t.Errorf("Intn(0) = %d, want 0", got)
	}
	if got := r.Intn(-3); got != 0 {
		t.Errorf("Intn(-3) = %d, want 0", got)
	}
}

func TestRandPick(t *testing.T) {
	r := NewRand(3)
	list := []string{"a", "b", "c"}
	seen := make(map[string]bool)
	for i := 0; i < 60; i++ {
		got := r.Pick(list)
		if got != "a" && got != "b" && got != "c" {
			t.Fatalf("Pick = %q, want elemento da lista", got)
		}
		seen[got] = true
	}
	if len(seen) != 3 {
		t.Errorf("Pick visitou %d elementos em 60 sorteios, want 3", len(seen))
	}
	if got := r.Pick(nil); got != "" {
		t.Errorf("Pick(nil) = %q, want vazio", got)
	}
}

func TestRandShuffleKeepsElements(t *testing.T) {
	r := NewRand(11)
	vals := []int{0, 1, 2, 3, 4, 5, 6, 7}
	r.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })

	seen := make(map[int]bool)
	for _, v := range vals {
		seen[v] = true
	}
	if len(seen) != 8 {
		t.Errorf("Shuffle perdeu elementos: %v", vals)
	}
}
