package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordlebot/internal/words"
)

func TestDateKey_UTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	d := time.Date(2024, 10, 3, 8, 0, 0, 0, loc)
	assert.Equal(t, "2024-10-02", DateKey(d))
}

func TestPicker_Index(t *testing.T) {
	p := NewPicker("salt")
	d := time.Date(2024, 10, 2, 12, 0, 0, 0, time.UTC)
	a := p.Index(d, 1000)
	assert.Equal(t, a, p.Index(d.Add(time.Hour), 1000), "same day, same index")
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 1000)
	assert.Zero(t, p.Index(d, 0))
}

func TestPicker_SaltChangesSequence(t *testing.T) {
	a, b := NewPicker("one"), NewPicker("two")
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	differ := false
	for i := 0; i < 30 && !differ; i++ {
		d := start.AddDate(0, 0, i)
		differ = a.Index(d, 1<<20) != b.Index(d, 1<<20)
	}
	assert.True(t, differ)
}

func TestPicker_TargetInList(t *testing.T) {
	list, err := words.New("crane", "trace", "slate")
	require.NoError(t, err)
	p := NewPicker("wordlebot")
	for i := 0; i < 30; i++ {
		d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		assert.True(t, list.Contains(p.Target(list, d)))
	}
}
