package mapping

import (
	"strconv"
	"strings"

	"github.com/focuswithjustin/versemap/pkg/versif"
)

// compiledIndex is the mutable build-time state a sequence of expanded
// entries writes into. MappingTable owns one of these; EntryExpander
// touches it through the methods below and through its absent set and
// flags, never keeping state of its own across calls.
type compiledIndex struct {
	forward map[versif.Verse][]QualifiedKey
	reverse map[QualifiedKey]*versif.Passage
	absent  *AbsentSet
	flags   Flags
}

func newCompiledIndex() *compiledIndex {
	return &compiledIndex{
		forward: make(map[versif.Verse][]QualifiedKey),
		reverse: make(map[QualifiedKey]*versif.Passage),
		absent:  NewAbsentSet(),
	}
}

func (idx *compiledIndex) addForward(v versif.Verse, qk QualifiedKey) {
	idx.forward[v] = append(idx.forward[v], qk)
}

// addReverse unions v into key's bucket and, if key carries a part, also
// into the generic (part-stripped) bucket — the mirrored reverse entry
// that lets a part-agnostic pivot lookup resolve to the union of parts.
func (idx *compiledIndex) addReverse(key QualifiedKey, v versif.Verse) {
	idx.bucket(key).Add(v)
	if key.Part != "" {
		idx.bucket(genericKey(key)).Add(v)
	}
}

func (idx *compiledIndex) bucket(key QualifiedKey) *versif.Passage {
	p, ok := idx.reverse[key]
	if !ok {
		p = versif.NewPassage()
		idx.reverse[key] = p
	}
	return p
}

func genericKey(key QualifiedKey) QualifiedKey {
	key.Part = ""
	return key
}

func singleVerseKey(v versif.Verse) QualifiedKey {
	return QualifiedKey{Kind: KindPresent, Range: versif.VerseRange{Start: v, Cardinality: 1}}
}

// EntryExpander expands one shorthand entry's (left, right) text pair into
// atomic (leftVerse -> pivotQualifiedKey) relations, written into a shared
// compiledIndex. It applies the cardinality reconciliation and verse-0
// elision rules of the mapping language.
type EntryExpander struct {
	left  versif.Versification
	pivot versif.Versification

	leftParser  *ReferenceParser
	pivotParser *ReferenceParser
	offset      *OffsetResolver
}

// NewEntryExpander builds an expander bound to the left and pivot systems
// a table is being constructed against.
func NewEntryExpander(left, pivot versif.Versification) *EntryExpander {
	return &EntryExpander{
		left:        left,
		pivot:       pivot,
		leftParser:  NewReferenceParser(left),
		pivotParser: NewReferenceParser(pivot),
		offset:      NewOffsetResolver(pivot),
	}
}

// Expand classifies and compiles one entry into idx. A non-nil error means
// the entry contributed no relations; the caller is expected to record it
// and continue with the next entry.
func (e *EntryExpander) Expand(left, right string, idx *compiledIndex) error {
	if strings.HasPrefix(left, "!") {
		return idx.flags.Apply(strings.TrimPrefix(left, "!"))
	}

	if left == "?" {
		return e.expandAbsentLeft(right, idx)
	}
	if strings.HasPrefix(left, "?") {
		return &UnsupportedLeftAbsentMarkerError{Text: left}
	}

	isOffset := strings.HasPrefix(right, "+") || strings.HasPrefix(right, "-")
	if isOffset && strings.Contains(left, ";") {
		return &UnsupportedMultiRangeOffsetBasisError{Text: left}
	}

	leftKey, err := e.leftParser.Parse(left)
	if err != nil {
		return err
	}

	pivotKey, err := e.parsePivot(right, leftKey)
	if err != nil {
		return err
	}

	if leftKey.Range.Cardinality == 1 {
		return e.expandOneToMany(leftKey.Range.Start, pivotKey, idx)
	}
	return e.expandManyToMany(leftKey.Range, pivotKey, idx)
}

// parsePivot classifies and parses the right-hand side: "?name" (absent in
// pivot), "+N"/"-N" (offset against basis), or an ordinary reference.
func (e *EntryExpander) parsePivot(right string, basis QualifiedKey) (QualifiedKey, error) {
	switch {
	case strings.HasPrefix(right, "?"):
		return QualifiedKey{Kind: KindAbsentInPivot, Section: strings.TrimPrefix(right, "?")}, nil

	case strings.HasPrefix(right, "+") || strings.HasPrefix(right, "-"):
		n, err := strconv.Atoi(right)
		if err != nil {
			return QualifiedKey{}, &UnknownReferenceError{Text: right, Err: err}
		}
		return e.offset.Resolve(basis, n)

	default:
		return e.pivotParser.Parse(right)
	}
}

func (e *EntryExpander) expandAbsentLeft(right string, idx *compiledIndex) error {
	for _, segment := range strings.Split(right, ";") {
		qk, err := e.pivotParser.Parse(segment)
		if err != nil {
			return err
		}
		if err := idx.absent.Add(e.pivot, qk.Range); err != nil {
			return err
		}
	}
	return nil
}

// expandOneToMany implements §4.1.1: a single left verse mapping to one
// qualified pivot key (possibly a multi-verse range, possibly absent).
func (e *EntryExpander) expandOneToMany(leftV versif.Verse, pivotKey QualifiedKey, idx *compiledIndex) error {
	idx.addForward(leftV, pivotKey)

	switch {
	case pivotKey.Kind == KindAbsentInPivot:
		// No concrete pivot verse exists to key the reverse index by.
		return nil

	case pivotKey.Range.Cardinality <= 1:
		idx.addReverse(singleVerseKeyWithPart(pivotKey), leftV)
		return nil

	default:
		verses, err := e.pivot.Iterate(pivotKey.Range)
		if err != nil {
			return err
		}
		for _, pv := range verses {
			idx.addReverse(singleVerseKey(pv), leftV)
		}
		return nil
	}
}

func singleVerseKeyWithPart(qk QualifiedKey) QualifiedKey {
	k := singleVerseKey(qk.Range.Start)
	k.Part = qk.Part
	return k
}

// expandManyToMany implements §4.1.2: a multi-verse left range paired
// against a pivot key whose cardinality may be 1, equal to the left's, or
// off by exactly one (verse-0 elision).
func (e *EntryExpander) expandManyToMany(leftRange versif.VerseRange, pivotKey QualifiedKey, idx *compiledIndex) error {
	leftVerses, err := e.left.Iterate(leftRange)
	if err != nil {
		return err
	}
	l := len(leftVerses)

	if pivotKey.Kind == KindAbsentInPivot {
		for _, lv := range leftVerses {
			idx.addForward(lv, pivotKey)
		}
		return nil
	}

	p := pivotKey.Range.Cardinality

	if p == 1 {
		key := singleVerseKeyWithPart(pivotKey)
		for _, lv := range leftVerses {
			idx.addForward(lv, key)
			idx.addReverse(key, lv)
		}
		return nil
	}

	pivotVerses, err := e.pivot.Iterate(pivotKey.Range)
	if err != nil {
		return err
	}

	diff := l - p
	if diff < 0 {
		diff = -diff
	}

	switch diff {
	case 0:
		// Strict pairwise zip: no verse-0 elision, positions correspond
		// directly.
		for i := 0; i < l; i++ {
			lv, pv := leftVerses[i], pivotVerses[i]
			key := singleVerseKey(pv)
			idx.addForward(lv, key)
			idx.addReverse(key, lv)
		}
		return nil

	case 1:
		// Verse-0 elision: skip a verse-0 on either side (left checked
		// first at each step) so the remaining sequences align pairwise.
		li, pi := 0, 0
		for li < l && pi < p {
			if leftVerses[li].Verse == 0 {
				li++
				continue
			}
			if pivotVerses[pi].Verse == 0 {
				pi++
				continue
			}
			lv, pv := leftVerses[li], pivotVerses[pi]
			key := singleVerseKey(pv)
			idx.addForward(lv, key)
			idx.addReverse(key, lv)
			li++
			pi++
		}
		return nil

	default:
		return &CardinalityMismatchError{LeftCardinality: l, PivotCardinality: p}
	}
}
