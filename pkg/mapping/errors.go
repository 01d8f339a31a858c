package mapping

import "fmt"

// The error taxonomy below mirrors the failure modes a mapping table
// build or query can hit. Build-time failures are captured into
// Diagnostics rather than returned; a query-time failure to parse or accept
// the caller's own reference is returned to the caller directly, while a
// failure of the best-effort OSIS fallback is recorded in Diagnostics and
// yields an empty passage.

// EmptyReferenceError reports an empty string where a reference was
// required.
type EmptyReferenceError struct {
	Where string // which field/side supplied the empty text
}

func (e *EmptyReferenceError) Error() string {
	return fmt.Sprintf("mapping: empty reference (%s)", e.Where)
}

// UnknownReferenceError reports shorthand text that could not be parsed
// under the given versification.
type UnknownReferenceError struct {
	Text string
	Err  error
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("mapping: unknown reference %q: %v", e.Text, e.Err)
}

func (e *UnknownReferenceError) Unwrap() error { return e.Err }

// CardinalityMismatchError reports a left/pivot range pair whose verse
// counts differ by more than one and so cannot be aligned.
type CardinalityMismatchError struct {
	LeftCardinality  int
	PivotCardinality int
}

func (e *CardinalityMismatchError) Error() string {
	return fmt.Sprintf("mapping: cardinality mismatch (left=%d, pivot=%d)",
		e.LeftCardinality, e.PivotCardinality)
}

// OffsetWithoutBasisError reports a "+N"/"-N" entry with no usable
// left-side basis range to apply the offset against.
type OffsetWithoutBasisError struct {
	Offset int
}

func (e *OffsetWithoutBasisError) Error() string {
	return fmt.Sprintf("mapping: offset %+d supplied with no basis range", e.Offset)
}

// UnsupportedMultiVerseLookupError reports a lookup API documented as
// accepting a single verse receiving a multi-verse reference instead.
type UnsupportedMultiVerseLookupError struct {
	Text string
}

func (e *UnsupportedMultiVerseLookupError) Error() string {
	return fmt.Sprintf("mapping: %q spans multiple verses; this lookup accepts a single verse", e.Text)
}

// UnsupportedPartOnRangeStartError reports a "!part" tag that sits before
// the last '-' in a reference (e.g. "Gen.1.1!a-Gen.1.3"): the tag is only
// ever recognized after the final dash, so a part attached to a range's
// start rather than its end is rejected outright instead of being parsed
// as part of the book/chapter/verse text and failing more confusingly.
type UnsupportedPartOnRangeStartError struct {
	Text string
}

func (e *UnsupportedPartOnRangeStartError) Error() string {
	return fmt.Sprintf("mapping: %q tags a part before the range's final '-'; a part may only tag the range's end", e.Text)
}

// UnsupportedLeftAbsentMarkerError reports a left-hand side beginning with
// "?" that is not the bare "?" absent-in-left marker the grammar defines.
type UnsupportedLeftAbsentMarkerError struct {
	Text string
}

func (e *UnsupportedLeftAbsentMarkerError) Error() string {
	return fmt.Sprintf("mapping: %q is not the bare \"?\" absent-in-left marker", e.Text)
}

// UnsupportedMultiRangeOffsetBasisError reports an offset ("+N"/"-N") entry
// whose left-hand side names more than one disjoint range (a ';'-separated
// reference list): an offset shifts a single basis range, and has no
// defined meaning against a left side that is itself several ranges.
type UnsupportedMultiRangeOffsetBasisError struct {
	Text string
}

func (e *UnsupportedMultiRangeOffsetBasisError) Error() string {
	return fmt.Sprintf("mapping: offset basis %q names more than one range", e.Text)
}

// UnknownFlagError reports a flag directive ("!name") the table parser
// does not recognize.
type UnknownFlagError struct {
	Name string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("mapping: unknown flag %q", e.Name)
}
