package mapping

import "github.com/focuswithjustin/versemap/pkg/versif"

// KeyKind discriminates the three shapes a mapping table entry's key can
// take: a concrete, present range of verses; a marker that some left-side
// reference has no pivot counterpart; or the reverse, a marker that some
// pivot reference has no left counterpart.
type KeyKind int

const (
	// KindPresent keys a concrete verse range on the side it appears.
	KindPresent KeyKind = iota
	// KindAbsentInLeft marks a pivot-side entry with nothing on the left.
	KindAbsentInLeft
	// KindAbsentInPivot marks a left-side entry with nothing in the pivot.
	KindAbsentInPivot
)

func (k KeyKind) String() string {
	switch k {
	case KindPresent:
		return "Present"
	case KindAbsentInLeft:
		return "AbsentInLeft"
	case KindAbsentInPivot:
		return "AbsentInPivot"
	default:
		return "Unknown"
	}
}

// QualifiedKey is the parsed left-hand or right-hand side of one mapping
// table entry. A Present key always carries a single contiguous Range
// (never a disjoint Passage) — see DESIGN.md for why EntryExpander never
// needs a multi-range key on either side of an entry.
type QualifiedKey struct {
	Kind  KeyKind
	Range versif.VerseRange

	// Part is the optional sub-verse tag parsed off the reference's tail,
	// stored without its '!' marker ("a" for "Gen.1.1!a"; Render adds the
	// marker back), or "" if none was present. Only ever set when
	// Kind == KindPresent, and only on single-verse ranges.
	Part string

	// Section is the literal section name preserved from an
	// AbsentInPivot entry's "?sectionName" rhs, for rendering. Empty for
	// every other Kind.
	Section string
}

// IsPresent reports whether this key denotes a concrete verse range.
func (k QualifiedKey) IsPresent() bool {
	return k.Kind == KindPresent
}

// Render renders the key back to its textual mapping-table form, using sys
// to format the concrete verse range (if any). An AbsentInLeft key renders
// as the bare "?" sentinel and an AbsentInPivot key as its literal Section
// name, regardless of versification.
func (k QualifiedKey) Render(sys versif.Versification) string {
	switch k.Kind {
	case KindAbsentInLeft:
		return "?"
	case KindAbsentInPivot:
		return k.Section
	default:
		text := sys.FormatOSISRange(k.Range)
		if k.Part != "" {
			text += "!" + k.Part
		}
		return text
	}
}
