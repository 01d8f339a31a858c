package versif

import "testing"

func TestOrdinalRoundTrip(t *testing.T) {
	sys := KJV()
	verse := Verse{Book: "Gen", Chapter: 1, Verse: 1}
	ord, err := sys.Ordinal(verse)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := sys.VerseAt(ord)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != verse {
		t.Errorf("VerseAt(Ordinal(%v)) = %v", verse, back)
	}
}

func TestSubtractAcrossChapterBoundaryViaVerseZero(t *testing.T) {
	sys := KJV()
	// Ps.19 verse 0 sits immediately after Ps.18's last verse (50); one
	// step back from Ps.19.0 must land there, not on Ps.18.0.
	got, err := sys.Subtract(Verse{Book: "Ps", Chapter: 19, Verse: 0}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Verse{Book: "Ps", Chapter: 18, Verse: 50}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAddWithinChapter(t *testing.T) {
	sys := KJV()
	got, err := sys.Add(Verse{Book: "Gen", Chapter: 1, Verse: 1}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (Verse{Book: "Gen", Chapter: 1, Verse: 3}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAddCrossesChapterBoundary(t *testing.T) {
	sys := KJV()
	// Gen.1 has 31 verses; one past the last verse lands on Gen.2 verse 0.
	got, err := sys.Add(Verse{Book: "Gen", Chapter: 1, Verse: 31}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (Verse{Book: "Gen", Chapter: 2, Verse: 0}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOrdinalRejectsUnknownBook(t *testing.T) {
	sys := KJV()
	if _, err := sys.Ordinal(Verse{Book: "Qoh", Chapter: 1, Verse: 1}); err == nil {
		t.Fatalf("expected an error for an unknown book")
	}
}

func TestOrdinalRejectsVerseOutOfRange(t *testing.T) {
	sys := KJV()
	if _, err := sys.Ordinal(Verse{Book: "Gen", Chapter: 1, Verse: 32}); err == nil {
		t.Fatalf("expected an error for verse 32 in a 31-verse chapter")
	}
}

func TestIterateRange(t *testing.T) {
	sys := KJV()
	verses, err := sys.Iterate(VerseRange{Start: Verse{"Gen", 1, 1}, Cardinality: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Verse{{"Gen", 1, 1}, {"Gen", 1, 2}, {"Gen", 1, 3}}
	for i, v := range verses {
		if v != want[i] {
			t.Errorf("verses[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestParseAndFormatOSISRange(t *testing.T) {
	sys := KJV()
	rng, err := sys.ParseOSIS("Gen.1.1-Gen.1.3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rng.Cardinality != 3 {
		t.Errorf("got cardinality %d, want 3", rng.Cardinality)
	}
	if got := sys.FormatOSISRange(rng); got != "Gen.1.1-Gen.1.3" {
		t.Errorf("got %q, want Gen.1.1-Gen.1.3", got)
	}
}

func TestVulgateHasDeuterocanonicalBooks(t *testing.T) {
	sys := Vulgate()
	if _, ok := sys.GetBook("Tob"); !ok {
		t.Errorf("expected Vulgate to include Tobit")
	}
	if _, ok := sys.GetBook("1Macc"); !ok {
		t.Errorf("expected Vulgate to include 1 Maccabees")
	}
}
