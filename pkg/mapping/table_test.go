package mapping

import (
	"testing"

	"github.com/focuswithjustin/versemap/pkg/versif"
	"github.com/stretchr/testify/assert"
)

func v(book string, ch, verse int) versif.Verse {
	return versif.Verse{Book: book, Chapter: ch, Verse: verse}
}

func TestSingleShift(t *testing.T) {
	sys := versif.KJV()
	tbl := NewMappingTable(sys, sys, []Entry{{Left: "Gen.1.1", Right: "Gen.1.2"}})

	if tbl.HasErrors() {
		t.Fatalf("unexpected build errors: %v", tbl.Diagnostics().BuildErrors())
	}
	got, err := tbl.MapToString("Gen.1.1")
	if err != nil || got != "Gen.1.2" {
		t.Fatalf("MapToString(Gen.1.1) = %q, %v; want Gen.1.2", got, err)
	}
	got, err = tbl.UnmapToString("Gen.1.2")
	if err != nil || got != "Gen.1.1" {
		t.Fatalf("UnmapToString(Gen.1.2) = %q, %v; want Gen.1.1", got, err)
	}
}

func TestEqualRanges(t *testing.T) {
	sys := versif.KJV()
	tbl := NewMappingTable(sys, sys, []Entry{
		{Left: "Gen.1.1-Gen.1.2", Right: "Gen.1.2-Gen.1.3"},
	})

	assertMapsTo(t, tbl, "Gen.1.1", "Gen.1.2")
	assertMapsTo(t, tbl, "Gen.1.2", "Gen.1.3")
	assertUnmapsTo(t, tbl, "Gen.1.3", "Gen.1.2")
}

func TestVerseZeroElision(t *testing.T) {
	sys := versif.KJV()
	tbl := NewMappingTable(sys, sys, []Entry{
		{Left: "!zerosUnmapped", Right: ""},
		{Left: "Ps.3.0-Ps.3.2", Right: "Ps.3.1-Ps.3.2"},
	})
	if tbl.HasErrors() {
		t.Fatalf("unexpected build errors: %v", tbl.Diagnostics().BuildErrors())
	}

	got, err := tbl.MapToString("Ps.3.0")
	if err != nil || got != "" {
		t.Fatalf("MapToString(Ps.3.0) = %q, %v; want empty", got, err)
	}
	assertMapsTo(t, tbl, "Ps.3.1", "Ps.3.1")
	assertMapsTo(t, tbl, "Ps.3.2", "Ps.3.2")
}

func TestParts(t *testing.T) {
	sys := versif.KJV()
	tbl := NewMappingTable(sys, sys, []Entry{
		{Left: "Gen.1.1", Right: "Gen.1.1!a"},
		{Left: "Gen.1.2", Right: "Gen.1.1!b"},
	})
	if tbl.HasErrors() {
		t.Fatalf("unexpected build errors: %v", tbl.Diagnostics().BuildErrors())
	}

	got, err := tbl.MapToQualifiedString("Gen.1.1")
	if err != nil || got != "Gen.1.1!a" {
		t.Fatalf("MapToQualifiedString(Gen.1.1) = %q, %v; want Gen.1.1!a", got, err)
	}

	passage := tbl.Unmap(v("Gen", 1, 1))
	assert.ElementsMatch(t, []versif.Verse{v("Gen", 1, 1), v("Gen", 1, 2)}, passage.Verses())
}

// TestUnmapRendersCanonicalOrderRegardlessOfEntryOrder guards the query
// contract (results in canonical order): entries naming the same pivot verse
// need not be authored in canonical left-side order, but a query result
// must come back sorted by canonical ordinal, not by entry-compile order.
func TestUnmapRendersCanonicalOrderRegardlessOfEntryOrder(t *testing.T) {
	sys := versif.KJV()
	tbl := NewMappingTable(sys, sys, []Entry{
		{Left: "Gen.1.5", Right: "Gen.1.1!x"},
		{Left: "Gen.1.2", Right: "Gen.1.1!x"},
	})
	if tbl.HasErrors() {
		t.Fatalf("unexpected build errors: %v", tbl.Diagnostics().BuildErrors())
	}

	got, err := tbl.UnmapToString("Gen.1.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "Gen.1.2;Gen.1.5"; got != want {
		t.Errorf("UnmapToString(Gen.1.1) = %q, want %q (canonical order, not entry order)", got, want)
	}
}

func TestAbsentOnLeft(t *testing.T) {
	sys := versif.KJV()
	tbl := NewMappingTable(sys, sys, []Entry{
		{Left: "?", Right: "Gen.1.1;Gen.1.5"},
	})
	if tbl.HasErrors() {
		t.Fatalf("unexpected build errors: %v", tbl.Diagnostics().BuildErrors())
	}

	got, err := tbl.UnmapToString("Gen.1.1")
	if err != nil || got != "" {
		t.Fatalf("UnmapToString(Gen.1.1) = %q, %v; want empty", got, err)
	}
	got, err = tbl.UnmapToString("Gen.1.5")
	if err != nil || got != "" {
		t.Fatalf("UnmapToString(Gen.1.5) = %q, %v; want empty", got, err)
	}
}

func TestOffset(t *testing.T) {
	sys := versif.KJV()
	tbl := NewMappingTable(sys, sys, []Entry{
		{Left: "Ps.19.0-Ps.19.2", Right: "-1"},
	})
	if tbl.HasErrors() {
		t.Fatalf("unexpected build errors: %v", tbl.Diagnostics().BuildErrors())
	}

	assertMapsTo(t, tbl, "Ps.19.0", "Ps.18.50")
	assertMapsTo(t, tbl, "Ps.19.1", "Ps.19.0")
	assertMapsTo(t, tbl, "Ps.19.2", "Ps.19.1")
}

func TestCardinalityMismatchDiscardsEntry(t *testing.T) {
	sys := versif.KJV()
	tbl := NewMappingTable(sys, sys, []Entry{
		{Left: "Gen.1.1-Gen.1.4", Right: "Gen.1.1-Gen.1.2"}, // L=4, P=2, diff=2
	})
	if !tbl.HasErrors() {
		t.Fatalf("expected a cardinality mismatch error")
	}
	errs := tbl.Diagnostics().BuildErrors()
	if len(errs) != 1 {
		t.Fatalf("expected exactly one build error, got %d", len(errs))
	}
}

func TestOffsetZeroIsIdentity(t *testing.T) {
	sys := versif.KJV()
	tbl := NewMappingTable(sys, sys, []Entry{
		{Left: "Gen.1.1", Right: "+0"},
	})
	if tbl.HasErrors() {
		t.Fatalf("unexpected build errors: %v", tbl.Diagnostics().BuildErrors())
	}
	assertMapsTo(t, tbl, "Gen.1.1", "Gen.1.1")
}

func assertMapsTo(t *testing.T, tbl *MappingTable, from, want string) {
	t.Helper()
	got, err := tbl.MapToString(from)
	if err != nil {
		t.Fatalf("MapToString(%q) returned error: %v", from, err)
	}
	if got != want {
		t.Errorf("MapToString(%q) = %q, want %q", from, got, want)
	}
}

func assertUnmapsTo(t *testing.T, tbl *MappingTable, from, want string) {
	t.Helper()
	got, err := tbl.UnmapToString(from)
	if err != nil {
		t.Fatalf("UnmapToString(%q) returned error: %v", from, err)
	}
	if got != want {
		t.Errorf("UnmapToString(%q) = %q, want %q", from, got, want)
	}
}
