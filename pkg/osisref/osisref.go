// Package osisref parses and formats the textual OSIS reference form
// Book.Chapter.Verse, optionally as a range Book.Chapter.Verse-
// Book.Chapter.Verse. It knows nothing about part markers or any
// particular versification's book/chapter layout — those are the
// concerns of mapping.ReferenceParser and versif.System respectively, as
// this package serves as the thin, out-of-scope "external OSIS
// parser/serializer" both lean on.
//
// Grounded on the reference-string grammar in the retrieved canonref
// module (bibleref.Parse / BibleRef.Format), adapted here to a plain
// (Book, Chapter, Verse) triple instead of canonref's own BibleRef type.
package osisref

import (
	"fmt"
	"strconv"
	"strings"
)

// Ref is a bare OSIS book/chapter/verse triple.
type Ref struct {
	Book    string
	Chapter int
	Verse   int
}

// ParseSingle parses a single "Book.Chapter.Verse" reference.
func ParseSingle(s string) (Ref, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Ref{}, fmt.Errorf("osisref: %q is not a Book.Chapter.Verse reference", s)
	}
	book := parts[0]
	if book == "" {
		return Ref{}, fmt.Errorf("osisref: %q has an empty book", s)
	}
	chapter, err := strconv.Atoi(parts[1])
	if err != nil || chapter < 1 {
		return Ref{}, fmt.Errorf("osisref: %q has an invalid chapter", s)
	}
	verse, err := strconv.Atoi(parts[2])
	if err != nil || verse < 0 {
		return Ref{}, fmt.Errorf("osisref: %q has an invalid verse", s)
	}
	return Ref{Book: book, Chapter: chapter, Verse: verse}, nil
}

// ParseRange parses either a single reference or an "A-B" range. isRange
// reports whether a second reference was present.
func ParseRange(s string) (start Ref, end Ref, isRange bool, err error) {
	if s == "" {
		return Ref{}, Ref{}, false, fmt.Errorf("osisref: empty reference")
	}

	idx := strings.LastIndex(s, "-")
	if idx < 0 {
		start, err = ParseSingle(s)
		return start, start, false, err
	}

	startText, endText := s[:idx], s[idx+1:]
	start, err = ParseSingle(startText)
	if err != nil {
		return Ref{}, Ref{}, false, err
	}
	end, err = ParseSingle(endText)
	if err != nil {
		return Ref{}, Ref{}, false, err
	}
	return start, end, true, nil
}

// Format renders a single reference as "Book.Chapter.Verse".
func Format(r Ref) string {
	return fmt.Sprintf("%s.%d.%d", r.Book, r.Chapter, r.Verse)
}

// FormatRange renders start-end as a single reference if they're equal, or
// an "A-B" range otherwise.
func FormatRange(start, end Ref) string {
	if start == end {
		return Format(start)
	}
	return Format(start) + "-" + Format(end)
}
