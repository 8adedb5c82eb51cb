// Package daily picks a deterministic word of the day.
//
// Every UTC calendar day maps to one position in the word list. The mapping
// is keyed by a salt so the sequence cannot be read off the list order.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordlebot/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Picker maps days to words for one salt.
type Picker struct {
	salt []byte
}

// NewPicker returns a Picker keyed by salt.
func NewPicker(salt string) Picker {
	return Picker{salt: []byte(salt)}
}

// Index returns the day's position in a list of n words, or 0 when n <= 0.
func (p Picker) Index(day time.Time, n int) int {
	if n <= 0 {
		return 0
	}
	return int(p.digest(day) % uint64(n))
}

// Target returns the word of the day from list.
func (p Picker) Target(list *words.List, day time.Time) string {
	return list.At(p.Index(day, list.Len()))
}

// digest reads the leading 8 bytes of HMAC-SHA256(salt, DateKey(day)).
func (p Picker) digest(day time.Time) uint64 {
	mac := hmac.New(sha256.New, p.salt)
	mac.Write([]byte(DateKey(day)))
	return binary.BigEndian.Uint64(mac.Sum(nil))
}
