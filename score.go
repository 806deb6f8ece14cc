package main

import (
	"sort"
	"strings"
)

// Evaluator decides which traits a team activates.
type Evaluator struct {
	registry TraitRegistry
	exact    ExactRule
	excluded map[string]bool
}

// NewEvaluator builds an evaluator from the config's registry, exact-count
// rule and trait exclusions.
func NewEvaluator(cfg *Config) *Evaluator {
	exact := cfg.ExactRule
	exact.Trait = strings.TrimSpace(exact.Trait)
	return &Evaluator{
		registry: cfg.Registry(),
		exact:    exact,
		excluded: trimmedSet(cfg.ExcludeTraits),
	}
}

// eligible reports whether a trait can ever activate.
func (e *Evaluator) eligible(trait string) bool {
	if e.excluded[trait] {
		return false
	}
	if e.exact.Trait != "" && trait == e.exact.Trait {
		return true
	}
	_, ok := e.registry[trait]
	return ok
}

// active applies the activation rule of an eligible trait to a count.
func (e *Evaluator) active(trait string, count int) bool {
	if count == 0 {
		return false
	}
	if e.exact.Trait != "" && trait == e.exact.Trait {
		return e.exact.matches(count)
	}
	return count >= e.registry[trait]
}

// Activated returns the sorted labels activated by team.
func (e *Evaluator) Activated(team []Champion) []string {
	counts := make(map[string]int)
	for i := range team {
		for _, t := range team[i].Traits {
			if e.eligible(t) {
				counts[t]++
			}
		}
	}
	var out []string
	for t, n := range counts {
		if e.active(t, n) {
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

// yield is the number of eligible traits a champion carries: an upper bound
// on how many traits adding it can newly activate.
func (e *Evaluator) yield(c *Champion) int {
	n := 0
	for _, t := range c.Traits {
		if e.eligible(t) {
			n++
		}
	}
	return n
}

// ── Incremental counting ────────────────────────────────────────────

// traitCounter keeps per-trait counts for a team built by push/pop over a
// fixed pool. Traits are interned to dense ids so the hot path is slice work.
type traitCounter struct {
	labels  []string // id -> label
	exact   []bool   // id -> governed by the exact-count rule
	min     []int    // id -> threshold
	counts  []int    // id -> members carrying it
	members [][]int  // pool index -> eligible trait ids
	ev      *Evaluator
	active  int
}

func (e *Evaluator) newCounter(pool []Champion) *traitCounter {
	tc := &traitCounter{ev: e, members: make([][]int, len(pool))}
	ids := make(map[string]int)
	for i := range pool {
		for _, t := range pool[i].Traits {
			if !e.eligible(t) {
				continue
			}
			id, ok := ids[t]
			if !ok {
				id = len(tc.labels)
				ids[t] = id
				tc.labels = append(tc.labels, t)
				tc.exact = append(tc.exact, e.exact.Trait != "" && t == e.exact.Trait)
				tc.min = append(tc.min, e.registry[t])
			}
			tc.members[i] = append(tc.members[i], id)
		}
	}
	tc.counts = make([]int, len(tc.labels))
	return tc
}

func (tc *traitCounter) on(id int) bool {
	n := tc.counts[id]
	if n == 0 {
		return false
	}
	if tc.exact[id] {
		return tc.ev.exact.matches(n)
	}
	return n >= tc.min[id]
}

func (tc *traitCounter) push(poolIdx int) {
	for _, id := range tc.members[poolIdx] {
		was := tc.on(id)
		tc.counts[id]++
		tc.adjust(was, tc.on(id))
	}
}

func (tc *traitCounter) pop(poolIdx int) {
	for _, id := range tc.members[poolIdx] {
		was := tc.on(id)
		tc.counts[id]--
		tc.adjust(was, tc.on(id))
	}
}

func (tc *traitCounter) adjust(was, now bool) {
	switch {
	case !was && now:
		tc.active++
	case was && !now:
		tc.active--
	}
}

// activated returns the sorted labels currently active.
func (tc *traitCounter) activated() []string {
	var out []string
	for id, label := range tc.labels {
		if tc.on(id) {
			out = append(out, label)
		}
	}
	sort.Strings(out)
	return out
}
