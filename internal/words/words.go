// internal/words/words.go
//
// Word list management for the game engine and the bot.
//
// Responsibilities:
//   - Load a newline-delimited word list from a reader, a file, or the embedded default.
//   - Normalize every entry to uppercase and keep only WordLength ASCII letters.
//   - Provide ordered access (Words, At), membership (Contains) and random picks.
//
// Input rules:
//   • One word per line, surrounding whitespace trimmed, case-insensitive.
//   • Blank lines and lines starting with '#' are ignored.
//   • Lines that are not WordLength letters are skipped and counted in Skipped().
//   • Duplicates collapse to the first occurrence.
//
// A List is read-only after loading and safe to share.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordlebot/assets"
)

// WordLength is the number of letters in every word.
const WordLength = 5

// ErrEmpty is returned when a source yields no usable words.
var ErrEmpty = errors.New("words: list is empty")

// List is an ordered set of valid uppercase words.
type List struct {
	words   []string
	set     map[string]struct{}
	skipped int
}

// Load reads one word per line from r.
func Load(r io.Reader) (*List, error) {
	l := &List{set: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w := Normalize(line)
		if !Valid(w) {
			l.skipped++
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(l.words) == 0 {
		return nil, ErrEmpty
	}
	return l, nil
}

// LoadFile reads a word list from path.
func LoadFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list %s: %w", path, err)
	}
	defer f.Close()
	l, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return l, nil
}

// Default loads the embedded word list.
func Default() (*List, error) {
	f, err := assets.Words()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// FromPath loads path, or the embedded list when path is empty.
func FromPath(path string) (*List, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// New builds a list from in-memory words, applying the same rules as Load.
func New(ws ...string) (*List, error) {
	return Load(strings.NewReader(strings.Join(ws, "\n")))
}

// Normalize trims and upper-cases a word.
func Normalize(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}

// Valid reports whether w is WordLength uppercase ASCII letters.
func Valid(w string) bool {
	if len(w) != WordLength {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}

// Contains reports whether w (already normalized) is in the list.
func (l *List) Contains(w string) bool {
	_, ok := l.set[w]
	return ok
}

// Len returns the number of words.
func (l *List) Len() int { return len(l.words) }

// At returns the i-th word in load order.
func (l *List) At(i int) string { return l.words[i] }

// Words returns a copy of the words in load order.
func (l *List) Words() []string {
	return append([]string(nil), l.words...)
}

// Skipped returns how many non-blank lines were rejected during loading.
func (l *List) Skipped() int { return l.skipped }

// Random returns a uniformly random word using crypto/rand.
func (l *List) Random() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return l.words[0]
	}
	return l.words[n.Int64()]
}
