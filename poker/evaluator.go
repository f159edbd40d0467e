package poker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lox/pokerjump/card"
	"github.com/lox/pokerjump/internal/eval5"
	"github.com/lox/pokerjump/internal/jumptable"
	"github.com/lox/pokerjump/internal/tablestore"
)

// ErrTablesUnavailable means the evaluator could neither load nor
// regenerate its jump-table trie (typically: the table directory isn't
// writable and no valid file was already there).
var ErrTablesUnavailable = errors.New("poker: hand-rank tables unavailable")

// ErrCorruptTables means a table file failed its checksum and could not
// be repaired by regeneration. In normal operation tablestore regenerates
// transparently on corruption, so this surfaces only when regeneration
// itself also fails.
var ErrCorruptTables = errors.New("poker: hand-rank tables corrupt")

// State is the evaluator's lazy-initialization state.
type State int32

const (
	Uninitialized State = iota
	Initializing
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Evaluator is the process-wide, read-only handle onto the built tables.
// Once Ready, every method is an unsynchronized read: the tables never
// change after construction, so concurrent callers need no locking.
type Evaluator struct {
	jt *jumptable.JumpTable
}

var (
	initOnce  sync.Once
	shared    *Evaluator
	sharedErr error
	state     atomic.Int32
)

// Default returns the process-wide Evaluator, building or loading its
// tables on the first call under a one-shot guard. Every later call
// returns the same instance (or the same error) without re-running
// initialization.
func Default() (*Evaluator, error) {
	initOnce.Do(func() {
		state.Store(int32(Initializing))
		store := tablestore.New(tablestore.DefaultDir(), nil, nil)

		jt, err := store.Load(context.Background())
		if err != nil {
			switch {
			case errors.Is(err, tablestore.ErrCorruptTable):
				sharedErr = fmt.Errorf("%w: %w", ErrCorruptTables, err)
			default:
				sharedErr = fmt.Errorf("%w: %w", ErrTablesUnavailable, err)
			}
			state.Store(int32(Failed))
			return
		}

		shared = &Evaluator{jt: jt}
		state.Store(int32(Ready))
	})
	return shared, sharedErr
}

// CurrentState reports the singleton's initialization state without
// forcing initialization.
func CurrentState() State {
	return State(state.Load())
}

// Evaluate5 ranks exactly five cards directly, bypassing the jump table.
func (e *Evaluator) Evaluate5(cards [5]card.Card) HandRank {
	return eval5.Evaluate5(cards)
}

// Evaluate6 ranks six cards via one indirection through the jump table.
func (e *Evaluator) Evaluate6(cards [6]card.Card) HandRank {
	return e.jt.Evaluate6(cards[:])
}

// Evaluate7 ranks seven cards via two indirections through the jump table.
func (e *Evaluator) Evaluate7(cards [7]card.Card) HandRank {
	return e.jt.Evaluate7(cards[:])
}

// Evaluate dispatches on hand size. A hand smaller than five cards cannot
// be ranked and returns Invalid.
func (e *Evaluator) Evaluate(hand card.Hand) HandRank {
	cards := hand.Cards()
	switch len(cards) {
	case 5:
		var a [5]card.Card
		copy(a[:], cards)
		return e.Evaluate5(a)
	case 6:
		var a [6]card.Card
		copy(a[:], cards)
		return e.Evaluate6(a)
	case 7:
		var a [7]card.Card
		copy(a[:], cards)
		return e.Evaluate7(a)
	default:
		return Invalid
	}
}
