// internal/store/memory.go
//
// In-memory store of finished session reports.
// Used by the batch runner to collect reports and summarize them afterwards.
//
// Characteristics:
//   - Reports are keyed by session ID and listed in insertion order.
//   - Safe for concurrent use via RWMutex.
//   - Nothing survives the process.

package store

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/robalobadob/wordlebot/internal/game"
)

// ErrNotFound is returned by Get for an unknown ID.
var ErrNotFound = errors.New("report not found")

// Store defines where finished session reports are kept.
type Store interface {
	// Save adds or replaces a report.
	Save(ctx context.Context, r *game.Report) error

	// Get retrieves a report by session ID.
	Get(ctx context.Context, id string) (*game.Report, error)

	// List returns every report in insertion order.
	List(ctx context.Context) ([]*game.Report, error)
}

type memory struct {
	mu      sync.RWMutex
	reports map[string]*game.Report
	order   []string
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{reports: make(map[string]*game.Report)}
}

func (m *memory) Save(ctx context.Context, r *game.Report) error {
	if r.ID == "" {
		return errors.New("report has no id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reports[r.ID]; !ok {
		m.order = append(m.order, r.ID)
	}
	m.reports[r.ID] = r
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.reports[id]; ok {
		return r, nil
	}
	return nil, ErrNotFound
}

func (m *memory) List(ctx context.Context) ([]*game.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*game.Report, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.reports[id])
	}
	return out, nil
}

// Summary aggregates a set of reports.
type Summary struct {
	Sessions  int
	Solved    int
	Exhausted int
	Aborted   int
	// Histogram[n] counts sessions solved in n rounds (index 0 unused).
	Histogram []int
	// Errors counts aborted sessions by error kind (see ErrorKind).
	Errors map[string]int
}

// MeanRounds is the average number of rounds over solved sessions.
func (s Summary) MeanRounds() float64 {
	if s.Solved == 0 {
		return 0
	}
	total := 0
	for n, c := range s.Histogram {
		total += n * c
	}
	return float64(total) / float64(s.Solved)
}

// ErrorKinds returns the keys of Errors sorted by name.
func (s Summary) ErrorKinds() []string {
	out := make([]string, 0, len(s.Errors))
	for k := range s.Errors {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// errorKinds lists the error kinds a session can abort with.
var errorKinds = []error{
	game.ErrInvalidTarget,
	game.ErrGuessNotInWordList,
	game.ErrDuplicateGuess,
	game.ErrInconsistentGuess,
	game.ErrGuesserExhausted,
}

// ErrorKind names the kind of err, or "other" when it matches none.
func ErrorKind(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k) {
			return k.Error()
		}
	}
	return "other"
}

// Summarize folds every report in st into a Summary.
func Summarize(ctx context.Context, st Store) (Summary, error) {
	reports, err := st.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	s := Summary{Histogram: make([]int, game.MaxAttempts+1), Errors: map[string]int{}}
	for _, r := range reports {
		s.Sessions++
		switch r.Outcome {
		case game.OutcomeSolved:
			s.Solved++
			if n := r.RoundsUsed(); n < len(s.Histogram) {
				s.Histogram[n]++
			}
		case game.OutcomeExhausted:
			s.Exhausted++
		case game.OutcomeAborted:
			s.Aborted++
			s.Errors[ErrorKind(r.Err)]++
		}
	}
	return s, nil
}
