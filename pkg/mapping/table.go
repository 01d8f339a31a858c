package mapping

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/focuswithjustin/versemap/pkg/versif"
)

// Entry is one raw (key, value) pair from the shorthand mapping language,
// already tokenized by the loader. MappingTable treats entries purely as
// strings; it knows nothing about where they came from.
type Entry struct {
	Left  string
	Right string
}

// MappingTable holds the compiled forward (left->pivot) and reverse
// (pivot->left) indices built from a sequence of shorthand entries, and
// answers map/unmap queries against them. It is read-only after
// construction and safe for concurrent read.
type MappingTable struct {
	left  versif.Versification
	pivot versif.Versification

	idx  *compiledIndex
	diag *Diagnostics
}

// NewMappingTable compiles entries into a MappingTable against the given
// left (source) and pivot (conventionally KJV) versifications. Per-entry
// failures are captured in Diagnostics rather than returned; construction
// itself never fails.
func NewMappingTable(left, pivot versif.Versification, entries []Entry) *MappingTable {
	t := &MappingTable{
		left:  left,
		pivot: pivot,
		idx:   newCompiledIndex(),
		diag:  NewDiagnostics(),
	}

	expander := NewEntryExpander(left, pivot)
	for i, e := range entries {
		if err := expander.Expand(e.Left, e.Right, t.idx); err != nil {
			t.diag.RecordEntryFailure(i, e.Left, e.Right, err)
		}
	}
	return t
}

// HasErrors reports whether any entry failed to compile during
// construction.
func (t *MappingTable) HasErrors() bool {
	return t.diag.HasErrors()
}

// Diagnostics exposes the build/query failure log.
func (t *MappingTable) Diagnostics() *Diagnostics {
	return t.diag
}

// Map performs a forward lookup of a single left verse, returning its
// pivot-versification equivalents. On an index miss it falls back to a
// best-effort OSIS translation, unless zerosUnmapped is set and v is
// verse 0, in which case it returns an empty passage directly.
func (t *MappingTable) Map(v versif.Verse) *versif.Passage {
	if keys, ok := t.idx.forward[v]; ok {
		return t.materialize(t.pivot, keys)
	}
	if t.idx.flags.ZerosUnmapped && v.Verse == 0 {
		return versif.NewPassage()
	}
	return t.translateViaOsis(v, t.left, t.pivot)
}

// MapQualified is Map's qualified-key form: it preserves part tags and
// absent-section names, for rendering via MapToQualifiedString.
func (t *MappingTable) MapQualified(v versif.Verse) []QualifiedKey {
	if keys, ok := t.idx.forward[v]; ok {
		out := make([]QualifiedKey, len(keys))
		copy(out, keys)
		return out
	}
	if t.idx.flags.ZerosUnmapped && v.Verse == 0 {
		return nil
	}
	passage := t.translateViaOsis(v, t.left, t.pivot)
	if passage.IsEmpty() {
		return nil
	}
	verses := passage.Verses()
	return []QualifiedKey{{
		Kind:  KindPresent,
		Range: versif.VerseRange{Start: verses[0], Cardinality: len(verses)},
	}}
}

// Unmap performs a reverse lookup of a single pivot verse, returning its
// left-versification equivalents.
func (t *MappingTable) Unmap(v versif.Verse) *versif.Passage {
	return t.UnmapQualified(singleVerseKey(v))
}

// UnmapQualified is the general reverse lookup: if key carried a part and
// the with-part bucket misses, it retries with the part stripped before
// consulting AbsentSet and finally the OSIS fallback.
func (t *MappingTable) UnmapQualified(key QualifiedKey) *versif.Passage {
	if p, ok := t.idx.reverse[key]; ok {
		return t.sorted(t.left, p)
	}
	if key.Part != "" {
		if p, ok := t.idx.reverse[genericKey(key)]; ok {
			return t.sorted(t.left, p)
		}
	}
	if t.idx.absent.Contains(key.Range.Start) {
		return versif.NewPassage()
	}
	if t.idx.flags.ZerosUnmapped && key.Range.Start.Verse == 0 {
		return versif.NewPassage()
	}
	return t.translateViaOsis(key.Range.Start, t.pivot, t.left)
}

// MapToString is the OSIS-string form of Map: it rejects a multi-verse
// input with UnsupportedMultiVerseLookupError, since Map is documented as
// accepting a single verse.
func (t *MappingTable) MapToString(osisText string) (string, error) {
	v, err := t.singleVerseFrom(t.left, osisText)
	if err != nil {
		return "", err
	}
	return t.renderPassage(t.pivot, t.Map(v)), nil
}

// MapToQualifiedString renders MapQualified's result, space-joining
// multiple qualified keys.
func (t *MappingTable) MapToQualifiedString(osisText string) (string, error) {
	v, err := t.singleVerseFrom(t.left, osisText)
	if err != nil {
		return "", err
	}
	keys := t.MapQualified(v)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k.Render(t.pivot))
	}
	return strings.Join(parts, " "), nil
}

// UnmapToString is the OSIS-string form of Unmap.
func (t *MappingTable) UnmapToString(osisText string) (string, error) {
	v, err := t.singleVerseFrom(t.pivot, osisText)
	if err != nil {
		return "", err
	}
	return t.renderPassage(t.left, t.Unmap(v)), nil
}

func (t *MappingTable) singleVerseFrom(sys versif.Versification, osisText string) (versif.Verse, error) {
	rng, err := sys.ParseOSIS(osisText)
	if err != nil {
		return versif.Verse{}, &UnknownReferenceError{Text: osisText, Err: err}
	}
	if rng.Cardinality != 1 {
		return versif.Verse{}, &UnsupportedMultiVerseLookupError{Text: osisText}
	}
	return rng.Start, nil
}

func (t *MappingTable) materialize(sys versif.Versification, keys []QualifiedKey) *versif.Passage {
	out := versif.NewPassage()
	for _, k := range keys {
		if k.Kind != KindPresent {
			continue
		}
		verses, err := sys.Iterate(k.Range)
		if err != nil {
			continue
		}
		for _, v := range verses {
			out.Add(v)
		}
	}
	return t.sorted(sys, out)
}

// sorted puts p into sys's canonical order before it crosses the public
// API: query results are returned in canonical order, but the build-time
// indices accumulate verses in entry-compile order, which need not already
// be canonical (table entries are not required to be pre-sorted). A sort
// failure (only possible if a verse somehow doesn't belong to sys) leaves p
// in its prior order rather than dropping it.
func (t *MappingTable) sorted(sys versif.Versification, p *versif.Passage) *versif.Passage {
	out := p.Clone()
	_ = out.SortCanonical(sys)
	return out
}

func (t *MappingTable) renderPassage(sys versif.Versification, p *versif.Passage) string {
	verses := p.Verses()
	parts := make([]string, 0, len(verses))
	for _, v := range verses {
		parts = append(parts, sys.FormatOSIS(v))
	}
	return strings.Join(parts, ";")
}

// translateViaOsis is the best-effort fallback: it emits v's OSIS
// reference under from and re-parses it under to. Failure is logged to
// Diagnostics and yields an empty passage rather than propagating.
func (t *MappingTable) translateViaOsis(v versif.Verse, from, to versif.Versification) *versif.Passage {
	text := from.FormatOSIS(v)
	rng, err := to.ParseOSIS(text)
	if err != nil {
		t.diag.RecordQueryFailure(text, errors.Wrapf(err, "translating %q via OSIS", text))
		return versif.NewPassage()
	}
	verses, err := to.Iterate(rng)
	if err != nil {
		t.diag.RecordQueryFailure(text, errors.Wrapf(err, "iterating translated range for %q", text))
		return versif.NewPassage()
	}
	out := versif.NewPassage()
	for _, pv := range verses {
		out.Add(pv)
	}
	return out
}
