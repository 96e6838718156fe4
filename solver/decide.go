package solver

const (
	activityIncInit = 1.0
	activityDecay   = 0.95
)

// chooseVar returns the unassigned variable with the greatest activity, or
// -1 if every variable is already assigned. Vars are lazily dropped from the
// heap here rather than eagerly when propagate() assigns them; they return
// to the heap in undoTo when unassigned.
func (s *Solver) chooseVar() Var {
	for !s.varQueue.empty() {
		v := s.varQueue.removeMin()
		if s.value[v] == Unassigned {
			return v
		}
	}
	return -1
}

// decide opens a new decision level and assigns a literal for the chosen
// variable, phase-saved from lastValue (defaults to False for a variable
// never assigned before). It must only be called when an unassigned
// variable exists.
func (s *Solver) decide() {
	v := s.chooseVar()
	s.decisionStack = append(s.decisionStack, len(s.trail))
	neg := s.lastValue[v] != True
	lit := v.SignedLit(neg)
	s.assign(lit, nil)
	s.stats.Decisions++
	if s.verbose {
		s.trace("decide", logrusFields{"lit": lit.Int(), "level": s.currentLevel()})
	}
}

// varBumpActivity increases v's activity and fixes its position in the
// decision heap.
func (s *Solver) varBumpActivity(v Var) {
	s.activity[v] += s.varInc
	if s.activity[v] > 1e100 {
		for i := range s.activity {
			s.activity[i] *= 1e-100
		}
		s.varInc *= 1e-100
	}
	if s.varQueue.contains(v) {
		s.varQueue.decrease(v)
	}
}

// varDecayActivity realizes the "global decay" half of VSIDS: rather than
// shrinking every stored activity, the increment grows, which has the same
// relative effect without an O(n) rescan every conflict.
func (s *Solver) varDecayActivity() {
	s.varInc *= 1 / activityDecay
}

// rebuildVarQueue rebuilds the decision heap from scratch over every
// currently-unassigned variable. Used after a restart, once many variables
// have been unassigned at once.
func (s *Solver) rebuildVarQueue() {
	vs := make([]Var, 0, s.nVars)
	for v := Var(0); int(v) < s.nVars; v++ {
		if s.value[v] == Unassigned {
			vs = append(vs, v)
		}
	}
	s.varQueue.build(vs)
}
