package versif

import (
	"fmt"

	"github.com/focuswithjustin/versemap/pkg/osisref"
)

// Versification is the external collaborator the mapping package consumes
// as an opaque handle: it names itself, performs book/chapter-boundary-aware
// arithmetic on verse ordinals, iterates a range in canonical order, and
// parses/emits OSIS reference strings. Both the "left" (source) and
// "pivot" (KJV) systems a MappingTable is built against satisfy this
// interface.
type Versification interface {
	Name() string
	Equal(other Versification) bool
	Ordinal(v Verse) (int, error)
	Add(v Verse, n int) (Verse, error)
	Subtract(v Verse, n int) (Verse, error)
	Iterate(r VerseRange) ([]Verse, error)
	ParseOSIS(text string) (VerseRange, error)
	FormatOSIS(v Verse) string
	FormatOSISRange(r VerseRange) string
}

// Book defines one book's chapter/verse layout within a System.
type Book struct {
	ID        string // OSIS book ID, e.g. "Gen", "Ps", "Matt"
	Name      string
	Testament string // "OT", "NT", or "AP" (Apocrypha/Deuterocanon)

	// VerseCounts holds the number of verses per chapter, 1-indexed
	// ([0] = chapter 1). Verse 0 is always additionally legal in every
	// chapter (see Ordinal) regardless of what is listed here.
	VerseCounts []int
}

func (b Book) chapters() int {
	return len(b.VerseCounts)
}

func (b Book) versesIn(chapter int) (int, bool) {
	if chapter < 1 || chapter > len(b.VerseCounts) {
		return 0, false
	}
	return b.VerseCounts[chapter-1], true
}

// System is a concrete Versification: a named, ordered list of books each
// with a chapter/verse layout. Ordinal arithmetic treats every chapter as
// having verses 0..N (N = VerseCounts[chapter-1]), so verse 0 sits exactly
// one ordinal before verse 1 of the same chapter and one ordinal after the
// last verse of the *previous* chapter's verse-0 slot — i.e. stepping
// backwards from chapter C verse 0 lands on chapter C-1's last real verse,
// not on chapter C-1 verse 0. This matches the offset worked example in
// the mapping language (Ps.19.0-Ps.19.2=-1 landing Ps.19.0 on the prior
// chapter's final verse).
type System struct {
	name  string
	books []Book

	bookIndex map[string]int
	bookBase  []int // bookBase[i] = ordinal of book i chapter 1 verse 0
	chapBase  [][]int
}

// NewSystem builds a System from an ordered book list.
func NewSystem(name string, books []Book) *System {
	s := &System{name: name, books: books}
	s.bookIndex = make(map[string]int, len(books))
	s.bookBase = make([]int, len(books))
	s.chapBase = make([][]int, len(books))

	running := 0
	for i, b := range books {
		s.bookIndex[b.ID] = i
		s.bookBase[i] = running

		chapBase := make([]int, b.chapters())
		chRunning := 0
		for c := 0; c < b.chapters(); c++ {
			chapBase[c] = chRunning
			chRunning += b.VerseCounts[c] + 1 // +1 for the verse-0 slot
		}
		s.chapBase[i] = chapBase
		running += chRunning
	}
	return s
}

// Name returns the system's canonical name, e.g. "KJV" or "Vulg".
func (s *System) Name() string { return s.name }

// Equal reports whether other is the same versification by name.
func (s *System) Equal(other Versification) bool {
	return other != nil && other.Name() == s.name
}

// GetBook returns the book definition for an OSIS book ID.
func (s *System) GetBook(id string) (*Book, bool) {
	idx, ok := s.bookIndex[id]
	if !ok {
		return nil, false
	}
	return &s.books[idx], true
}

// Ordinal computes v's position in this system's global verse ordering.
// Returns an error if the book is unknown, the chapter is out of range, or
// the verse number exceeds the chapter's legal range (0..VerseCounts[ch-1]).
func (s *System) Ordinal(v Verse) (int, error) {
	idx, ok := s.bookIndex[v.Book]
	if !ok {
		return 0, fmt.Errorf("versif: unknown book %q in %s", v.Book, s.name)
	}
	book := s.books[idx]
	if v.Chapter < 1 || v.Chapter > book.chapters() {
		return 0, fmt.Errorf("versif: %s has no chapter %d in %s", v.Book, v.Chapter, s.name)
	}
	maxVerse := book.VerseCounts[v.Chapter-1]
	if v.Verse < 0 || v.Verse > maxVerse {
		return 0, fmt.Errorf("versif: %s has no verse %d in %s.%d", s.name, v.Verse, v.Book, v.Chapter)
	}
	return s.bookBase[idx] + s.chapBase[idx][v.Chapter-1] + v.Verse, nil
}

// VerseAt is the inverse of Ordinal: it resolves a global ordinal back to
// a (book, chapter, verse) triple.
func (s *System) VerseAt(ordinal int) (Verse, error) {
	if ordinal < 0 {
		return Verse{}, fmt.Errorf("versif: ordinal %d precedes %s", ordinal, s.name)
	}
	// Locate the book.
	bookIdx := -1
	for i := len(s.books) - 1; i >= 0; i-- {
		if s.bookBase[i] <= ordinal {
			bookIdx = i
			break
		}
	}
	if bookIdx == -1 {
		return Verse{}, fmt.Errorf("versif: ordinal %d precedes %s", ordinal, s.name)
	}
	book := s.books[bookIdx]
	withinBook := ordinal - s.bookBase[bookIdx]

	chapIdx := -1
	for c := book.chapters() - 1; c >= 0; c-- {
		if s.chapBase[bookIdx][c] <= withinBook {
			chapIdx = c
			break
		}
	}
	if chapIdx == -1 {
		return Verse{}, fmt.Errorf("versif: ordinal %d exceeds %s", ordinal, s.name)
	}
	verse := withinBook - s.chapBase[bookIdx][chapIdx]
	if verse > book.VerseCounts[chapIdx] {
		// Ordinal runs past the final book's final chapter.
		return Verse{}, fmt.Errorf("versif: ordinal %d exceeds %s", ordinal, s.name)
	}
	return Verse{Book: book.ID, Chapter: chapIdx + 1, Verse: verse}, nil
}

// Add returns the verse n positions after v, obeying book/chapter
// boundaries (n may be negative; Subtract(v, n) == Add(v, -n)).
func (s *System) Add(v Verse, n int) (Verse, error) {
	ord, err := s.Ordinal(v)
	if err != nil {
		return Verse{}, err
	}
	return s.VerseAt(ord + n)
}

// Subtract returns the verse n positions before v.
func (s *System) Subtract(v Verse, n int) (Verse, error) {
	return s.Add(v, -n)
}

// Iterate yields r's verses in canonical order.
func (s *System) Iterate(r VerseRange) ([]Verse, error) {
	if r.Cardinality < 1 {
		return nil, fmt.Errorf("versif: range cardinality %d is not positive", r.Cardinality)
	}
	startOrd, err := s.Ordinal(r.Start)
	if err != nil {
		return nil, err
	}
	out := make([]Verse, 0, r.Cardinality)
	for i := 0; i < r.Cardinality; i++ {
		v, err := s.VerseAt(startOrd + i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseOSIS parses a "Book.Chapter.Verse" or "Book.Chapter.Verse-
// Book.Chapter.Verse" OSIS reference (no part marker — callers strip that
// first) into a VerseRange within this system.
func (s *System) ParseOSIS(text string) (VerseRange, error) {
	start, end, isRange, err := osisref.ParseRange(text)
	if err != nil {
		return VerseRange{}, err
	}

	startV := Verse{Book: start.Book, Chapter: start.Chapter, Verse: start.Verse}
	startOrd, err := s.Ordinal(startV)
	if err != nil {
		return VerseRange{}, err
	}

	if !isRange {
		return VerseRange{Start: startV, Cardinality: 1}, nil
	}

	endV := Verse{Book: end.Book, Chapter: end.Chapter, Verse: end.Verse}
	endOrd, err := s.Ordinal(endV)
	if err != nil {
		return VerseRange{}, err
	}
	if endOrd < startOrd {
		return VerseRange{}, fmt.Errorf("versif: range %q ends before it starts", text)
	}
	return VerseRange{Start: startV, Cardinality: endOrd - startOrd + 1}, nil
}

// FormatOSIS renders a single verse as "Book.Chapter.Verse".
func (s *System) FormatOSIS(v Verse) string {
	return osisref.Format(osisref.Ref{Book: v.Book, Chapter: v.Chapter, Verse: v.Verse})
}

// FormatOSISRange renders a VerseRange as a single verse (cardinality 1)
// or an "A-B" range.
func (s *System) FormatOSISRange(r VerseRange) string {
	if r.Cardinality <= 1 {
		return s.FormatOSIS(r.Start)
	}
	end, err := s.Add(r.Start, r.Cardinality-1)
	if err != nil {
		return s.FormatOSIS(r.Start)
	}
	return osisref.FormatRange(
		osisref.Ref{Book: r.Start.Book, Chapter: r.Start.Chapter, Verse: r.Start.Verse},
		osisref.Ref{Book: end.Book, Chapter: end.Chapter, Verse: end.Verse},
	)
}
