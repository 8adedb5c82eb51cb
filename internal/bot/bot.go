// internal/bot/bot.go
//
// Computer guesser.
// Responsibilities:
//   - Track the letters known to be absent and the letters known to sit at a
//     given position.
//   - Propose a random word from the list that was never proposed before and
//     is consistent with that knowledge.
//
// Letters reported in the word but out of place are not tracked; only absence
// and exact positions narrow the candidates.

package bot

import (
	"fmt"
	"math/rand/v2"

	"github.com/robalobadob/wordlebot/internal/game"
	"github.com/robalobadob/wordlebot/internal/words"
)

// Bot implements game.Guesser by uniform sampling over the remaining candidates.
type Bot struct {
	list     *words.List
	rng      *rand.Rand
	proposed map[string]struct{}
	know     Knowledge
}

// New creates a bot over list. A nil rng uses a randomly seeded source.
func New(list *words.List, rng *rand.Rand) *Bot {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Bot{
		list:     list,
		rng:      rng,
		proposed: make(map[string]struct{}),
		know:     newKnowledge(),
	}
}

// Seeded creates a bot whose choices are reproducible for a given seed.
func Seeded(list *words.List, seed uint64) *Bot {
	return New(list, rand.New(rand.NewPCG(seed, seed)))
}

// Candidates lists every word the bot could still propose, in list order.
func (b *Bot) Candidates() []string {
	var out []string
	for i := 0; i < b.list.Len(); i++ {
		w := b.list.At(i)
		if _, done := b.proposed[w]; done {
			continue
		}
		if b.know.Allows(w) {
			out = append(out, w)
		}
	}
	return out
}

// ProposeGuess picks one candidate at random and remembers it.
func (b *Bot) ProposeGuess() (string, error) {
	cands := b.Candidates()
	if len(cands) == 0 {
		return "", fmt.Errorf("%w: no candidate left after %d guesses", game.ErrGuesserExhausted, len(b.proposed))
	}
	w := cands[b.rng.IntN(len(cands))]
	b.proposed[w] = struct{}{}
	return w, nil
}

// RecordFeedback folds the evaluation of guess into the bot's knowledge.
func (b *Bot) RecordFeedback(guess string, res game.GuessResult) {
	for i, lf := range res.Letters {
		if i >= len(guess) || i >= words.WordLength {
			break
		}
		if lf.InCorrectPlace && b.know.Known[i] == 0 {
			b.know.Known[i] = guess[i]
		}
		if !lf.InWord {
			b.know.Absent[guess[i]] = true
		}
	}
}

// Knowledge returns a copy of what the bot has learned.
func (b *Bot) Knowledge() Knowledge { return b.know.clone() }
