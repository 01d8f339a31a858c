package mapping

import (
	"strings"

	"github.com/focuswithjustin/versemap/pkg/versif"
)

// ReferenceParser is a thin adapter over a Versification's OSIS parser: it
// strips a trailing "!part" tag from a single-verse reference, hands the
// remainder to the versification, and coerces the result to a QualifiedKey
// whose key is always a single VerseRange (never a Passage).
//
// Part-tag recognition follows the "last dash wins" rule: a part marker is
// only recognized if it appears after the final '-' in the text, so
// "Gen.1.1-Gen.1.3!a" parses its tag "a" off the trailing "Gen.1.3"; the
// result is then rejected as an UnknownReferenceError because a part may
// only annotate a single verse. A part token embedded before a range dash, like
// "Gen.1.1!a-Gen.1.3", is rejected outright with
// UnsupportedPartOnRangeStartError rather than left to fail more
// confusingly inside the versification's own OSIS parser.
type ReferenceParser struct {
	sys versif.Versification
}

// NewReferenceParser builds a parser bound to a single versification.
func NewReferenceParser(sys versif.Versification) *ReferenceParser {
	return &ReferenceParser{sys: sys}
}

// Parse parses text (with an optional trailing "!part") into a Present
// QualifiedKey. An empty string is rejected with EmptyReferenceError.
func (p *ReferenceParser) Parse(text string) (QualifiedKey, error) {
	if text == "" {
		return QualifiedKey{}, &EmptyReferenceError{Where: "reference"}
	}

	if hasPartBeforeRangeEnd(text) {
		return QualifiedKey{}, &UnsupportedPartOnRangeStartError{Text: text}
	}

	body, part := splitPart(text)

	rng, err := p.sys.ParseOSIS(body)
	if err != nil {
		return QualifiedKey{}, &UnknownReferenceError{Text: text, Err: err}
	}
	if part != "" && rng.Cardinality != 1 {
		return QualifiedKey{}, &UnknownReferenceError{
			Text: text,
			Err:  errPartOnMultiVerseRange,
		}
	}

	return QualifiedKey{Kind: KindPresent, Range: rng, Part: part}, nil
}

// splitPart strips a "!part" suffix that occurs after the last '-' in s (so
// that a part marker preceding a range dash is left untouched, per the
// parser's documented ambiguity rule).
func splitPart(s string) (body, part string) {
	dash := strings.LastIndex(s, "-")
	tail := s
	prefix := ""
	if dash >= 0 {
		prefix = s[:dash+1]
		tail = s[dash+1:]
	}

	bang := strings.LastIndex(tail, "!")
	if bang < 0 {
		return s, ""
	}
	return prefix + tail[:bang], tail[bang+1:]
}

// hasPartBeforeRangeEnd reports whether s carries a '!' before its last
// '-', i.e. a part tag attached to a range's start rather than its end.
func hasPartBeforeRangeEnd(s string) bool {
	dash := strings.LastIndex(s, "-")
	if dash < 0 {
		return false
	}
	return strings.Contains(s[:dash], "!")
}

var errPartOnMultiVerseRange = partOnMultiVerseRangeErr{}

type partOnMultiVerseRangeErr struct{}

func (partOnMultiVerseRangeErr) Error() string {
	return "a part tag may only annotate a single verse, not a multi-verse range"
}
