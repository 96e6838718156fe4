package solver

import "github.com/fieldbox/fieldsat/dimacs"

// mark values used by dedupClause's scratch array.
const (
	markNone int8 = iota
	markPos
	markNeg
)

// load ingests pb into the solver: each clause is deduplicated and checked
// for tautology (a tautological clause is dropped outright, never shrunk),
// unit clauses are asserted directly onto the trail at decision level 0,
// and a conflict between two root-level units marks the solver Unsat
// before Solve is ever called.
func (s *Solver) load(pb *dimacs.Problem) {
	mark := make([]int8, s.nVars)
	touched := make([]Var, 0, 8)

	for _, raw := range pb.Clauses {
		lits, tautology := dedupClause(raw, mark, touched[:0])
		if tautology {
			continue
		}
		switch len(lits) {
		case 0:
			s.conflictClause = newClause(nil)
			return
		case 1:
			if !s.assignRootUnit(lits[0]) {
				return
			}
		default:
			c := newClause(lits)
			s.store.addOriginal(c)
			s.watch(c)
		}
	}
}

// dedupClause converts raw DIMACS literals to Lits, drops duplicate
// literals and reports whether the clause is a tautology (contains both a
// literal and its negation). mark and touched are
// caller-owned scratch space, reused clause to clause; mark must be all
// markNone on entry and is restored to that state before dedupClause
// returns.
func dedupClause(raw []int32, mark []int8, touched []Var) (lits []Lit, tautology bool) {
	out := make([]Lit, 0, len(raw))
	taut := false
	for _, i := range raw {
		lit := IntToLit(i)
		v := lit.Var()
		want := markPos
		if !lit.IsPositive() {
			want = markNeg
		}
		switch mark[v] {
		case markNone:
			mark[v] = want
			touched = append(touched, v)
			out = append(out, lit)
		case want:
			// duplicate literal: drop silently
		default:
			taut = true
		}
	}
	for _, v := range touched {
		mark[v] = markNone
	}
	if taut {
		return nil, true
	}
	return out, false
}

// assignRootUnit asserts lit at decision level 0, detecting a root-level
// contradiction against an opposite unit already asserted. It returns false
// iff the problem is now known Unsat and load must stop.
func (s *Solver) assignRootUnit(lit Lit) bool {
	v := lit.Var()
	switch s.value[v] {
	case Unassigned:
		s.assign(lit, nil)
		return true
	case True:
		if lit.IsPositive() {
			return true
		}
	case False:
		if !lit.IsPositive() {
			return true
		}
	}
	s.conflictClause = newClause(nil)
	return false
}
