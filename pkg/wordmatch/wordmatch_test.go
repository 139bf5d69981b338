package wordmatch

import "testing"

func TestCountSubstring(t *testing.T) {
	t.Parallel()

	if got := Count("Yoga and more yoga, always YOGA", "yoga"); got != 3 {
		t.Fatalf("expected 3 hits, got %d", got)
	}
}

func TestCountShortKeywordNeedsBoundary(t *testing.T) {
	t.Parallel()

	// "ai" inside "mountain" must not count.
	if got := Count("hiking a mountain trail", "ai"); got != 0 {
		t.Fatalf("expected 0 hits, got %d", got)
	}
	if got := Count("working on AI, more ai research", "ai"); got != 2 {
		t.Fatalf("expected 2 hits, got %d", got)
	}
}

func TestCountEmptyKeyword(t *testing.T) {
	t.Parallel()

	if got := Count("anything", ""); got != 0 {
		t.Fatalf("expected 0 hits for empty keyword, got %d", got)
	}
}

func TestTotalAndContains(t *testing.T) {
	t.Parallel()

	keywords := []string{"meditation", "sleep", "gym"}
	text := "Meditation before sleep, then the gym. Sleep matters."

	if got := Total(text, keywords); got != 4 {
		t.Fatalf("expected total 4, got %d", got)
	}
	if !Contains(text, keywords) {
		t.Fatal("expected Contains to be true")
	}
	if Contains(text, []string{"opera"}) {
		t.Fatal("expected Contains to be false")
	}
}
