package password

import (
	"strings"
	"testing"
)

func TestGenerateAlwaysStrong(t *testing.T) {
	gen := NewGenerator(nil)

	for i := 0; i < 1000; i++ {
		password := gen.Generate()

		if n := len(password); n < SuggestedMinLength || n > SuggestedMaxLength {
			t.Fatalf("Generate() length = %d, want %d..%d (%q)", n, SuggestedMinLength, SuggestedMaxLength, password)
		}

		a := Assess(password)
		if a.Score != MaxScore {
			t.Fatalf("Assess(Generate()) score = %d, want %d (%q, unmet %v)", a.Score, MaxScore, password, a.Unmet)
		}
		if a.Strength != Strong {
			t.Fatalf("Assess(Generate()) strength = %s, want %s", a.Strength, Strong)
		}
	}
}

func TestGenerateMeetsClassMinimums(t *testing.T) {
	gen := NewSeededGenerator(7)

	for i := 0; i < 200; i++ {
		password := gen.Generate()

		for _, req := range requirements {
			if got := countIn(password, req.charset); got < req.count {
				t.Errorf("password %q has %d characters from %q, want at least %d", password, got, req.charset, req.count)
			}
		}
		for _, ch := range password {
			if !strings.ContainsRune(allChars, ch) {
				t.Errorf("password %q contains unexpected character %q", password, ch)
			}
		}
	}
}

func TestGenerateCoversLengthRange(t *testing.T) {
	gen := NewSeededGenerator(1)
	seen := make(map[int]bool)

	for i := 0; i < 500; i++ {
		seen[len(gen.Generate())] = true
	}

	for n := SuggestedMinLength; n <= SuggestedMaxLength; n++ {
		if !seen[n] {
			t.Errorf("Generate() never produced length %d in 500 draws", n)
		}
	}
}

func TestSeededGeneratorIsDeterministic(t *testing.T) {
	a := NewSeededGenerator(42)
	b := NewSeededGenerator(42)

	for i := 0; i < 20; i++ {
		pa, pb := a.Generate(), b.Generate()
		if pa != pb {
			t.Fatalf("draw %d: %q != %q for the same seed", i, pa, pb)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	if NewSeededGenerator(1).Generate() == NewSeededGenerator(2).Generate() {
		t.Error("different seeds produced the same first password")
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	gen := NewGenerator(nil)
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password := gen.Generate()
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}

func countIn(s, charset string) int {
	n := 0
	for _, ch := range s {
		if strings.ContainsRune(charset, ch) {
			n++
		}
	}
	return n
}
