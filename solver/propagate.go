package solver

// propagate runs the two-watched-literals fixpoint. It consumes
// s.trail[s.trailHead:], extending the trail with every literal implied
// along the way, and returns the clause that went all-false, or nil if
// propagation reached a fixpoint without conflict.
func (s *Solver) propagate() *Clause {
	for s.trailHead < len(s.trail) {
		lit := s.trail[s.trailHead]
		falsified := lit.Negation()
		w := s.watchers[falsified]
		i := 0
		for i < len(w) {
			c := w[i]
			if debugChecks {
				debugAssert(c.lits[c.watch1] == falsified || (c.Len() >= 2 && c.lits[c.watch2] == falsified),
					"clause %s in watcher list for %d doesn't actually watch it", c.CNF(), falsified.Int())
			}
			other, watchNum := c.otherWatch(falsified)
			if s.valueOf(other) == True {
				i++
				continue
			}
			moved := false
			for j := 0; j < c.Len(); j++ {
				if j == c.watch1 || j == c.watch2 {
					continue
				}
				cand := c.lits[j]
				if s.valueOf(cand) != False {
					// Move this watch from falsified to cand.
					c.setWatch(watchNum, j)
					last := len(w) - 1
					w[i] = w[last]
					w = w[:last]
					s.watchers[falsified] = w
					s.watchers[cand] = append(s.watchers[cand], c)
					moved = true
					break
				}
			}
			if moved {
				continue // slot i now holds a different clause; don't advance.
			}
			if s.valueOf(other) == False {
				s.conflictClause = c
				return c
			}
			// other is unassigned: a unit implication.
			s.assign(other, c)
			s.stats.Propagations++
			if s.verbose {
				s.trace("propagate", logrusFields{"lit": other.Int(), "reason": c.CNF()})
			}
			i++
		}
		s.trailHead++
	}
	return nil
}
