package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// ErrSearchAborted is returned when the search context ends before a result.
var ErrSearchAborted = errors.New("search aborted")

// checkEvery is how many node visits pass between context checks.
const checkEvery = 4096

// Observer receives progress notifications. Nil funcs are skipped.
type Observer struct {
	// OnDepth fires before the search for team size k starts.
	OnDepth func(k int)
	// OnCandidate fires whenever the best team of size k improves.
	OnCandidate func(k int, s *Solution)
}

// ── Solver ──────────────────────────────────────────────────────────

// Solver finds the smallest team that reaches the trait target, breaking ties
// with compareSolutions. A Solver is not safe for concurrent Solve calls.
type Solver struct {
	pool    []Champion
	target  int
	opts    SearchOptions
	bound   *feasibilityBound
	counter *traitCounter
	obs     Observer
	log     *slog.Logger

	// per-run state
	ctx   context.Context
	team  []int
	best  *Solution
	stats Stats
	err   error
}

// NewSolver prepares a solver over an ordered pool (see BuildPool).
func NewSolver(pool []Champion, cfg *Config, obs Observer) *Solver {
	ev := NewEvaluator(cfg)
	return &Solver{
		pool:    pool,
		target:  cfg.Target,
		opts:    cfg.Search,
		bound:   newFeasibilityBound(cfg.Search, cfg.Target, pool, ev),
		counter: ev.newCounter(pool),
		obs:     obs,
		log:     newLogger("search"),
	}
}

// Solve runs iterative deepening over team size. An infeasible target is not
// an error: the result has Feasible false.
func (s *Solver) Solve(ctx context.Context) (*Result, error) {
	start := time.Now()
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}
	s.ctx = ctx
	s.stats = Stats{}
	s.err = nil

	maxK := len(s.pool)
	if s.opts.MaxTeamSize > 0 && s.opts.MaxTeamSize < maxK {
		maxK = s.opts.MaxTeamSize
	}

	s.log.Info("starting search",
		slog.Int("pool", len(s.pool)),
		slog.Int("target", s.target),
		slog.String("bound", string(s.opts.Bound)))

	res := &Result{PoolSize: len(s.pool), Target: s.target}
	for k := 1; k <= maxK; k++ {
		s.log.Info("searching exact team size", slog.Int("k", k))
		if s.obs.OnDepth != nil {
			s.obs.OnDepth(k)
		}
		best, err := s.searchSize(k)
		s.stats.DepthsSearched = k
		if err != nil {
			res.Stats = s.stats
			res.Elapsed = time.Since(start)
			return res, err
		}
		if best != nil {
			s.log.Info("found minimal team size", slog.Int("k", k))
			res.Feasible = true
			res.Solution = best
			break
		}
	}

	res.Stats = s.stats
	res.Elapsed = time.Since(start)
	s.log.Info("search done",
		slog.Bool("feasible", res.Feasible),
		slog.Int64("nodes", s.stats.NodeVisits),
		slog.Int64("prunes_cannot_reach", s.stats.PrunesCannotReach),
		slog.Duration("elapsed", res.Elapsed))
	return res, nil
}

// searchSize returns the best team of exactly k champions, or nil.
func (s *Solver) searchSize(k int) (*Solution, error) {
	s.best = nil
	s.team = s.team[:0]
	s.dfs(k, 0)
	if s.err != nil {
		return nil, fmt.Errorf("%w at team size %d: %w", ErrSearchAborted, k, s.err)
	}
	return s.best, nil
}

// dfs extends the current team with pool indices >= start until it holds k
// champions. Indices are strictly increasing so each combination is visited once.
func (s *Solver) dfs(k, start int) {
	if s.err != nil {
		return
	}
	s.stats.NodeVisits++
	if s.stats.NodeVisits%checkEvery == 0 {
		if err := s.ctx.Err(); err != nil {
			s.err = err
			return
		}
	}

	activated := s.counter.active
	slots := k - len(s.team)
	if !s.bound.canReach(activated, slots, start) {
		s.stats.PrunesCannotReach++
		return
	}

	if slots == 0 {
		if activated >= s.target {
			s.offer(k)
		}
		return
	}

	for i := start; i < len(s.pool); i++ {
		if s.opts.StructuralPrune && len(s.pool)-i < slots {
			s.stats.PrunesExhausted++
			break
		}
		s.team = append(s.team, i)
		s.counter.push(i)
		if s.opts.Trace {
			s.trace(i)
		}
		s.dfs(k, i+1)
		s.counter.pop(i)
		s.team = s.team[:len(s.team)-1]
		if s.err != nil {
			return
		}
	}
}

// offer records the current team if it beats the best of size k.
func (s *Solver) offer(k int) {
	members := make([]Champion, len(s.team))
	for j, idx := range s.team {
		members[j] = s.pool[idx]
	}
	cand := newSolution(members, s.counter.activated())
	if s.best != nil && compareSolutions(cand, s.best) >= 0 {
		return
	}
	s.best = cand
	s.stats.Candidates++
	s.log.Info("candidate",
		slog.Int("k", k),
		slog.Bool("has5", cand.Score.Has5),
		slog.Bool("has4", cand.Score.Has4),
		slog.String("avg", fmt.Sprintf("%.2f", cand.Score.Avg)),
		slog.String("team", teamLabel(cand.Team)))
	if s.obs.OnCandidate != nil {
		s.obs.OnCandidate(k, cand)
	}
}

func (s *Solver) trace(idx int) {
	names := make([]string, len(s.team))
	for j, i := range s.team {
		names[j] = s.pool[i].Name
	}
	s.log.Debug("try",
		slog.String("champion", s.pool[idx].Name),
		slog.Int("cost", s.pool[idx].Cost),
		slog.Int("idx", idx),
		slog.String("chosen", strings.Join(names, ", ")),
		slog.Int("activated", s.counter.active),
		slog.Int("target", s.target))
}

// teamLabel renders a team as "Name(cost), Name(cost)".
func teamLabel(team []Champion) string {
	parts := make([]string, len(team))
	for i := range team {
		parts[i] = fmt.Sprintf("%s(%d)", team[i].Name, team[i].Cost)
	}
	return strings.Join(parts, ", ")
}
