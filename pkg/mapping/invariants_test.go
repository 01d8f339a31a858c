package mapping

import (
	"testing"

	"github.com/focuswithjustin/versemap/pkg/versif"
)

func buildFixture(t *testing.T) *MappingTable {
	t.Helper()
	sys := versif.KJV()
	entries := []Entry{
		{Left: "Gen.1.1", Right: "Gen.1.2"},
		{Left: "Gen.1.1", Right: "Gen.1.3"}, // additive: Gen.1.1 maps to two targets
		{Left: "Gen.1.2", Right: "Gen.1.1!a"},
		{Left: "Gen.1.3", Right: "Gen.1.1!b"},
		{Left: "Exod.1.1-Exod.1.3", Right: "Exod.1.1-Exod.1.3"},
		{Left: "?", Right: "Gen.2.1"},
	}
	tbl := NewMappingTable(sys, sys, entries)
	if tbl.HasErrors() {
		t.Fatalf("fixture has unexpected build errors: %v", tbl.Diagnostics().BuildErrors())
	}
	return tbl
}

// Invariant 1: every forward left key has a reverse bucket containing it,
// unless its only forward target is AbsentInPivot.
func TestInvariantForwardImpliesReverse(t *testing.T) {
	tbl := buildFixture(t)
	for left, keys := range tbl.idx.forward {
		onlyAbsent := true
		for _, k := range keys {
			if k.Kind != KindAbsentInPivot {
				onlyAbsent = false
			}
		}
		if onlyAbsent {
			continue
		}
		found := false
		for _, passage := range tbl.idx.reverse {
			if passage.Contains(left) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("left key %v has a forward entry but no reverse bucket contains it", left)
		}
	}
}

// Invariant 2: a part-qualified reverse key's generic (no-part) bucket
// exists and is a superset.
func TestInvariantGenericBucketIsSuperset(t *testing.T) {
	tbl := buildFixture(t)
	for key, passage := range tbl.idx.reverse {
		if key.Part == "" {
			continue
		}
		generic, ok := tbl.idx.reverse[genericKey(key)]
		if !ok {
			t.Fatalf("part-qualified key %v has no generic bucket", key)
		}
		for _, verse := range passage.Verses() {
			if !generic.Contains(verse) {
				t.Errorf("generic bucket for %v missing verse %v present in part bucket", key, verse)
			}
		}
	}
}

// Invariant 3: AbsentSet and the reverse index's keys never overlap.
func TestInvariantAbsentSetDisjointFromReverse(t *testing.T) {
	tbl := buildFixture(t)
	for key := range tbl.idx.reverse {
		if tbl.idx.absent.Contains(key.Range.Start) {
			t.Errorf("verse %v is both absent and present in the reverse index", key.Range.Start)
		}
	}
}

// Invariant 4: forward bucket list order matches input order.
func TestInvariantForwardOrderMatchesInput(t *testing.T) {
	sys := versif.KJV()
	tbl := NewMappingTable(sys, sys, []Entry{
		{Left: "Gen.1.1", Right: "Gen.1.5"},
		{Left: "Gen.1.1", Right: "Gen.1.2"},
		{Left: "Gen.1.1", Right: "Gen.1.9"},
	})
	keys := tbl.idx.forward[v("Gen", 1, 1)]
	want := []int{5, 2, 9}
	if len(keys) != len(want) {
		t.Fatalf("got %d forward entries, want %d", len(keys), len(want))
	}
	for i, k := range keys {
		if k.Range.Start.Verse != want[i] {
			t.Errorf("forward[%d] = verse %d, want %d", i, k.Range.Start.Verse, want[i])
		}
	}
}

// Invariant 5: expanding the same entries twice yields identical indices.
func TestInvariantIdempotence(t *testing.T) {
	sys := versif.KJV()
	entries := []Entry{
		{Left: "Gen.1.1-Gen.1.2", Right: "Gen.1.2-Gen.1.3"},
		{Left: "Gen.1.5", Right: "Gen.1.5!a"},
	}
	first := NewMappingTable(sys, sys, entries)
	second := NewMappingTable(sys, sys, entries)

	for left, keysA := range first.idx.forward {
		keysB, ok := second.idx.forward[left]
		if !ok || len(keysA) != len(keysB) {
			t.Fatalf("forward[%v] differs between builds", left)
		}
		for i := range keysA {
			if keysA[i] != keysB[i] {
				t.Errorf("forward[%v][%d] differs: %v vs %v", left, i, keysA[i], keysB[i])
			}
		}
	}
}

// Round-trip law: for a left verse without a part, unmap(map(v)) contains v.
func TestRoundTripLeftToPivotToLeft(t *testing.T) {
	sys := versif.KJV()
	tbl := NewMappingTable(sys, sys, []Entry{
		{Left: "Gen.1.1-Gen.1.3", Right: "Gen.1.2-Gen.1.4"},
	})
	lv := v("Gen", 1, 1)
	forward := tbl.Map(lv)
	for _, pv := range forward.Verses() {
		back := tbl.Unmap(pv)
		if !back.Contains(lv) {
			t.Errorf("unmap(map(%v)) = %v, does not contain %v", lv, back.Verses(), lv)
		}
	}
}

// Round-trip law: for a pivot verse with a 1-to-1 reverse entry,
// map(unmap(p)) == {p}.
func TestRoundTripPivotOneToOne(t *testing.T) {
	sys := versif.KJV()
	tbl := NewMappingTable(sys, sys, []Entry{
		{Left: "Gen.1.1", Right: "Gen.1.2"},
	})
	pv := v("Gen", 1, 2)
	back := tbl.Unmap(pv)
	if back.Len() != 1 {
		t.Fatalf("unmap(%v) = %v, want exactly one verse", pv, back.Verses())
	}
	forward := tbl.Map(back.Verses()[0])
	if forward.Len() != 1 || forward.Verses()[0] != pv {
		t.Errorf("map(unmap(%v)) = %v, want {%v}", pv, forward.Verses(), pv)
	}
}
