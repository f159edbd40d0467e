package jumptable

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerjump/card"
	"github.com/lox/pokerjump/internal/canon"
	"github.com/lox/pokerjump/internal/eval5"
)

// canonicalEntry pairs a canonical hand's hash key with its representative
// card sequence, the one actually evaluated to produce the level's value.
type canonicalEntry struct {
	key []byte
	rep []card.Card
}

// enumerateCanonical walks every k-card combination of universe,
// canonicalizes it, and returns one entry per distinct canonical form.
// Entries are returned sorted by key, so two builds over the same universe
// always emit entries in the same order — a prerequisite for
// bit-reproducible tables.
func enumerateCanonical(universe []card.Card, k int) []canonicalEntry {
	seen := make(map[string]bool, expectedCanonicalCount(k))
	var entries []canonicalEntry

	eachCombination(universe, k, func(combo []card.Card) {
		rep := canon.Canonicalize(combo)
		key := canon.Key(rep)
		if seen[key] {
			return
		}
		seen[key] = true
		entries = append(entries, canonicalEntry{key: []byte(key), rep: rep})
	})

	sort.Slice(entries, func(i, j int) bool { return string(entries[i].key) < string(entries[j].key) })
	return entries
}

// expectedCanonicalCount is only a map-sizing hint; it need not be exact.
func expectedCanonicalCount(k int) int {
	switch k {
	case 5:
		return 134459
	case 6:
		return 962988
	case 7:
		return 6009159
	default:
		return 1024
	}
}

// parallelMap applies fn to every index in [0,n) using a worker pool sized
// to GOMAXPROCS, the same shape the equity sampler uses for its Monte
// Carlo workers.
func parallelMap(ctx context.Context, n int, fn func(i int) error) error {
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func toArray5(cards []card.Card) [5]card.Card {
	var a [5]card.Card
	copy(a[:], cards)
	return a
}

// buildLevel5 evaluates every canonical 5-card hand and builds the
// perfect hash over its key set.
func buildLevel5(ctx context.Context, universe []card.Card) (*perfectHash, []eval5.HandRank, error) {
	entries := enumerateCanonical(universe, 5)
	keys := make([][]byte, len(entries))
	for i, e := range entries {
		keys[i] = e.key
	}

	ph, err := buildPerfectHash(keys)
	if err != nil {
		return nil, nil, err
	}

	values := make([]eval5.HandRank, ph.Len())
	err = parallelMap(ctx, len(entries), func(i int) error {
		e := entries[i]
		values[ph.find(e.key)] = eval5.Evaluate5(toArray5(e.rep))
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("jumptable: build level 5: %w", err)
	}
	return ph, values, nil
}

// buildLevel6 evaluates every canonical 6-card hand by finding, among its
// six 5-card subsets, the one with the maximum Level-5 rank, and storing
// that subset's Level-5 index.
func buildLevel6(ctx context.Context, universe []card.Card, l5 *perfectHash, l5Values []eval5.HandRank) (*perfectHash, []uint32, error) {
	entries := enumerateCanonical(universe, 6)
	keys := make([][]byte, len(entries))
	for i, e := range entries {
		keys[i] = e.key
	}

	ph, err := buildPerfectHash(keys)
	if err != nil {
		return nil, nil, err
	}

	values := make([]uint32, ph.Len())
	err = parallelMap(ctx, len(entries), func(i int) error {
		e := entries[i]
		var bestIdx uint32
		var bestRank eval5.HandRank
		first := true
		eachSubset(e.rep, func(sub []card.Card) {
			c := canon.Canonicalize(sub)
			idx := l5.find([]byte(canon.Key(c)))
			rank := l5Values[idx]
			if first || rank > bestRank {
				bestRank = rank
				bestIdx = idx
				first = false
			}
		})
		values[ph.find(e.key)] = bestIdx
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("jumptable: build level 6: %w", err)
	}
	return ph, values, nil
}

// buildLevel7 evaluates every canonical 7-card hand by finding, among its
// seven 6-card subsets, the one whose transitive Level-5 rank (via its
// Level-6 entry) is maximal, and storing that subset's Level-6 index.
func buildLevel7(ctx context.Context, universe []card.Card, l6 *perfectHash, l6Values []uint32, l5Values []eval5.HandRank) (*perfectHash, []uint32, error) {
	entries := enumerateCanonical(universe, 7)
	keys := make([][]byte, len(entries))
	for i, e := range entries {
		keys[i] = e.key
	}

	ph, err := buildPerfectHash(keys)
	if err != nil {
		return nil, nil, err
	}

	values := make([]uint32, ph.Len())
	err = parallelMap(ctx, len(entries), func(i int) error {
		e := entries[i]
		var bestIdx uint32
		var bestRank eval5.HandRank
		first := true
		eachSubset(e.rep, func(sub []card.Card) {
			c := canon.Canonicalize(sub)
			idx6 := l6.find([]byte(canon.Key(c)))
			rank := l5Values[l6Values[idx6]]
			if first || rank > bestRank {
				bestRank = rank
				bestIdx = idx6
				first = false
			}
		})
		values[ph.find(e.key)] = bestIdx
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("jumptable: build level 7: %w", err)
	}
	return ph, values, nil
}

// Build runs the full bottom-up generator over a standard 52-card deck.
// See BuildWithUniverse for the generator's shape; Build is the
// production entry point internal/tablestore calls on a table-file miss.
func Build(ctx context.Context) (*JumpTable, error) {
	return BuildWithUniverse(ctx, fullDeck)
}

// BuildWithUniverse runs the bottom-up generator over an arbitrary card
// universe: Level 5 first (it evaluates hands directly), then Level 6
// (which only needs Level 5's completed table), then Level 7 (which only
// needs Level 6's). Within a level, per-hand work is trivially parallel
// and runs across GOMAXPROCS workers; levels themselves are sequential
// because each depends on the previous one's finished table.
//
// A non-standard universe is mainly useful for tests (a reduced deck
// keeps the combinatorics tractable) and for potential short-deck
// variants; production callers should use Build.
func BuildWithUniverse(ctx context.Context, universe []card.Card) (*JumpTable, error) {
	l5Hash, l5Values, err := buildLevel5(ctx, universe)
	if err != nil {
		return nil, err
	}
	l6Hash, l6Values, err := buildLevel6(ctx, universe, l5Hash, l5Values)
	if err != nil {
		return nil, err
	}
	l7Hash, l7Values, err := buildLevel7(ctx, universe, l6Hash, l6Values, l5Values)
	if err != nil {
		return nil, err
	}

	return &JumpTable{
		level5Hash: l5Hash,
		level5:     l5Values,
		level6Hash: l6Hash,
		level6:     l6Values,
		level7Hash: l7Hash,
		level7:     l7Values,
	}, nil
}
