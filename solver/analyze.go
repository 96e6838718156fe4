package solver

// analyze performs First-UIP conflict analysis. Starting from the clause
// propagate() reported as falsified, it walks the trail backward, resolving
// the working clause against each assigned literal's reason until exactly
// one literal at the current decision level remains: the UIP. It returns
// the learned clause (UIP at position 0) and the level to backjump to.
func (s *Solver) analyze(conflict *Clause) (*Clause, int) {
	seen := s.seen // reused scratch bitset, all false on entry and on return
	level := s.currentLevel()

	learned := make([]Lit, 1, 8) // position 0 reserved for the UIP literal
	counter := 0                 // literals at the current level still unresolved
	p := NoLit
	reasonClause := conflict
	trailIdx := len(s.trail) - 1

	for {
		s.clauseBumpActivity(reasonClause)
		for _, lit := range reasonClause.Lits() {
			if lit == p {
				continue
			}
			v := lit.Var()
			if seen[v] {
				continue
			}
			if s.level[v] == 0 {
				continue // root-level falsified literal: never part of the learned clause
			}
			seen[v] = true
			if int(s.level[v]) == level {
				counter++
			} else {
				learned = append(learned, lit)
			}
		}

		// Find the next seen literal walking backward from trailIdx; it is
		// the next literal to resolve around (or the UIP once counter hits 1).
		for !seen[s.trail[trailIdx].Var()] {
			trailIdx--
		}
		p = s.trail[trailIdx]
		v := p.Var()
		seen[v] = false
		counter--
		if debugChecks {
			debugAssert(counter >= 0, "conflict-analysis counter went negative")
		}
		trailIdx--
		if counter == 0 {
			break
		}
		reasonClause = s.reason[v]
	}

	learned[0] = p.Negation()

	// Bump activity for exactly the literals that survive into the learned
	// clause, not every variable touched while resolving. Also clears any
	// seen bits analysis didn't reach (shouldn't happen, since counter
	// reaching 0 means every marked var at the current level was consumed,
	// but literals added to `learned` at lower levels stay marked until
	// here).
	for _, lit := range learned {
		s.varBumpActivity(lit.Var())
		seen[lit.Var()] = false
	}

	backjumpLevel := 0
	for _, lit := range learned[1:] {
		if lv := int(s.level[lit.Var()]); lv > backjumpLevel {
			backjumpLevel = lv
		}
	}

	return newLearnedClause(learned), backjumpLevel
}
