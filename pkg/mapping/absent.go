package mapping

import "github.com/focuswithjustin/versemap/pkg/versif"

// AbsentSet is a passage of pivot verses declared to have no counterpart
// in the left system, grown by union as "?=..." entries are processed.
type AbsentSet struct {
	passage *versif.Passage
}

// NewAbsentSet returns an empty set.
func NewAbsentSet() *AbsentSet {
	return &AbsentSet{passage: versif.NewPassage()}
}

// Add unions every verse in rng into the set.
func (a *AbsentSet) Add(sys versif.Versification, rng versif.VerseRange) error {
	verses, err := sys.Iterate(rng)
	if err != nil {
		return err
	}
	for _, v := range verses {
		a.passage.Add(v)
	}
	return nil
}

// Contains reports whether v was declared absent.
func (a *AbsentSet) Contains(v versif.Verse) bool {
	return a.passage.Contains(v)
}
