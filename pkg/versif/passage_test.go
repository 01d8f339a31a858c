package versif

import "testing"

func TestPassageVersesDefaultToInsertionOrder(t *testing.T) {
	p := NewPassage()
	p.Add(Verse{Book: "Gen", Chapter: 1, Verse: 3})
	p.Add(Verse{Book: "Gen", Chapter: 1, Verse: 1})

	got := p.Verses()
	if got[0].Verse != 3 || got[1].Verse != 1 {
		t.Errorf("got %v, want insertion order [3, 1] before sorting", got)
	}
}

func TestPassageSortCanonicalReordersByOrdinal(t *testing.T) {
	sys := KJV()
	p := NewPassage()
	p.Add(Verse{Book: "Gen", Chapter: 1, Verse: 3})
	p.Add(Verse{Book: "Gen", Chapter: 1, Verse: 1})
	p.Add(Verse{Book: "Gen", Chapter: 1, Verse: 2})

	if err := p.SortCanonical(sys); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := p.Verses()
	want := []int{1, 2, 3}
	for i, v := range got {
		if v.Verse != want[i] {
			t.Errorf("got %v at position %d, want verse %d", v, i, want[i])
		}
	}
}

func TestPassageSortCanonicalRejectsVerseOutsideSystem(t *testing.T) {
	sys := KJV()
	p := NewPassage()
	p.Add(Verse{Book: "NotABook", Chapter: 1, Verse: 1})

	if err := p.SortCanonical(sys); err == nil {
		t.Error("expected an error sorting a verse unknown to the versification")
	}
}
