package mapping

import "github.com/focuswithjustin/versemap/pkg/versif"

// OffsetResolver interprets a "+N"/"-N" pivot-side entry against the
// basis range already parsed from the entry's left side.
type OffsetResolver struct {
	pivot versif.Versification
}

// NewOffsetResolver builds a resolver bound to the pivot versification an
// offset's result is expressed in.
func NewOffsetResolver(pivot versif.Versification) *OffsetResolver {
	return &OffsetResolver{pivot: pivot}
}

// Resolve shifts basis by n verses (positive or negative) in the pivot
// versification, preserving basis's cardinality. basis must carry a single
// contiguous range; a left-hand side naming several disjoint ranges is
// rejected by the caller (UnsupportedMultiRangeOffsetBasisError) before
// Resolve is ever reached.
func (r *OffsetResolver) Resolve(basis QualifiedKey, n int) (QualifiedKey, error) {
	if basis.Kind != KindPresent || basis.Range.Cardinality < 1 {
		return QualifiedKey{}, &OffsetWithoutBasisError{Offset: n}
	}

	start, err := r.shift(basis.Range.Start, n)
	if err != nil {
		return QualifiedKey{}, err
	}

	return QualifiedKey{Kind: KindPresent, Range: versif.VerseRange{
		Start:       start,
		Cardinality: basis.Range.Cardinality,
	}}, nil
}

func (r *OffsetResolver) shift(v versif.Verse, n int) (versif.Verse, error) {
	if n >= 0 {
		return r.pivot.Add(v, n)
	}
	return r.pivot.Subtract(v, -n)
}
