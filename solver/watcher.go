package solver

import "sort"

// clauseStore owns the clauses the solver keeps: the multi-literal original
// clauses and every learned clause, built by newClause/newLearnedClause and
// registered here. Their *Clause references stay valid until Reduce frees
// them. Unit clauses from the input are asserted on the trail and not
// registered.
type clauseStore struct {
	original []*Clause // the input problem's clauses, never freed
	learned  []*Clause // the learned-clauses registry Reduce scans
}

func (cs *clauseStore) addOriginal(c *Clause) {
	cs.original = append(cs.original, c)
}

func (cs *clauseStore) addLearned(c *Clause) {
	cs.learned = append(cs.learned, c)
}

// watcherList is the per-literal index: watcherList[ℓ] is the set of
// clauses currently watching ℓ, i.e. clauses the propagator must
// re-inspect whenever ℓ's negation becomes true.
type watcherList [][]*Clause

func newWatcherList(nVars int) watcherList {
	return make(watcherList, 2*nVars)
}

// watch registers c in the watcher list(s) of its watched literal(s): both
// watch1 and watch2 for a clause of size >= 2, or just watch1 (== watch2 ==
// 0) for a unit clause.
func (s *Solver) watch(c *Clause) {
	lit1 := c.lits[c.watch1]
	s.watchers[lit1] = append(s.watchers[lit1], c)
	if c.Len() >= 2 {
		lit2 := c.lits[c.watch2]
		s.watchers[lit2] = append(s.watchers[lit2], c)
	}
}

// unwatchLit removes the single occurrence of c from lit's watcher list.
// c must be present exactly once.
func (s *Solver) unwatchLit(lit Lit, c *Clause) {
	lst := s.watchers[lit]
	for i, w := range lst {
		if w == c {
			last := len(lst) - 1
			lst[i] = lst[last]
			s.watchers[lit] = lst[:last]
			return
		}
	}
}

// unwatch removes c from the watcher list(s) of both of its watched
// literals (or its single one, if c is a unit clause).
func (s *Solver) unwatch(c *Clause) {
	s.unwatchLit(c.lits[c.watch1], c)
	if c.Len() >= 2 {
		s.unwatchLit(c.lits[c.watch2], c)
	}
}

// clauseBumpActivity bumps a learned clause's activity (no-op for original
// clauses, which never carry one).
func (s *Solver) clauseBumpActivity(c *Clause) {
	if !c.learned {
		return
	}
	c.activity += s.clauseInc
	if c.activity > 1e100 {
		for _, c2 := range s.store.learned {
			c2.activity *= 1e-100
		}
		s.clauseInc *= 1e-100
	}
}

func (s *Solver) clauseDecayActivity() {
	s.clauseInc *= 1 / clauseActivityDecay
}

const (
	clauseActivityDecay = 0.95
	reductionThreshold  = 3000
)

// isLocked reports whether c is the current reason for the variable at its
// asserting position: a learned clause is locked iff reason[c.lits[0].Var()]
// == c. A locked clause must survive Reduce — freeing it would leave that
// variable's reason pointer dangling.
func (s *Solver) isLocked(c *Clause) bool {
	v := c.lits[0].Var()
	return s.reason[v] == c
}

// reduce shrinks the learned-clause database: sort by ascending activity,
// drop the lowest-activity half, skipping locked clauses.
func (s *Solver) reduce() {
	learned := s.store.learned
	sort.Slice(learned, func(i, j int) bool {
		return learned[i].activity < learned[j].activity
	})
	half := len(learned) / 2
	removed := 0
	for i := 0; i < half; i++ {
		c := learned[i]
		if s.isLocked(c) {
			continue
		}
		s.unwatch(c)
		c.tomb = true
		removed++
	}
	kept := learned[:0]
	for _, c := range learned {
		if !c.tomb {
			kept = append(kept, c)
		}
	}
	s.store.learned = kept
	if debugChecks {
		for _, r := range s.reason {
			debugAssert(r == nil || !r.tomb, "reason pointer kept pointing at a clause reduce() just freed")
		}
	}
	s.stats.Deleted += removed
	s.stats.Reductions++
	if s.verbose {
		s.trace("reduce", logrusFields{"removed": removed, "remaining": len(kept)})
	}
}
