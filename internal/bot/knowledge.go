package bot

import "github.com/robalobadob/wordlebot/internal/words"

// Knowledge is what a guesser has learned from feedback so far.
// Facts are only ever added: a known position never changes letter and
// an absent letter is never removed.
type Knowledge struct {
	Known  [words.WordLength]byte // 0 = unknown
	Absent map[byte]bool
}

func newKnowledge() Knowledge {
	return Knowledge{Absent: make(map[byte]bool)}
}

// Allows reports whether w has no absent letter and agrees with every
// known position.
func (k Knowledge) Allows(w string) bool {
	for i := 0; i < len(w); i++ {
		if k.Absent[w[i]] {
			return false
		}
		if k.Known[i] != 0 && w[i] != k.Known[i] {
			return false
		}
	}
	return true
}

func (k Knowledge) clone() Knowledge {
	c := Knowledge{Known: k.Known, Absent: make(map[byte]bool, len(k.Absent))}
	for l := range k.Absent {
		c.Absent[l] = true
	}
	return c
}
