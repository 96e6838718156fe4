// Package solver implements a CDCL SAT solver: two-watched-literals unit
// propagation, VSIDS-style decisions with phase saving, First-UIP conflict
// analysis, non-chronological backjumping, activity-based learned-clause
// reduction and geometric restarts.
package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/fieldbox/fieldsat/dimacs"
)

// logrusFields is the structured-field map trace() hands to the logger.
type logrusFields = logrus.Fields

// Stats collects the search counters a caller can inspect after Solve
// returns, and that -stats prints on the CLI side.
type Stats struct {
	Decisions    int
	Propagations int
	Conflicts    int
	Restarts     int
	Reductions   int
	Deleted      int
	Learned      int
}

// Config holds the tunables a caller may override; the zero Config runs
// with the solver's defaults.
type Config struct {
	// Logger receives one structured entry per decision, propagation,
	// conflict, reduction and restart when Verbose is set. Defaults to
	// logrus.StandardLogger().
	Logger *logrus.Logger
	// Verbose turns on the per-event trace. Off by default: building the
	// trace fields has a real cost in the hot propagation loop.
	Verbose bool
	// InitialMaxConflicts seeds the first restart's conflict budget
	// (defaults to 100).
	InitialMaxConflicts int
}

func (c Config) logger() *logrus.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logrus.StandardLogger()
}

// Solver holds every piece of mutable search state: no package-level
// globals, so multiple Solvers can run concurrently.
type Solver struct {
	nVars int

	value     []Value
	lastValue []Value // phase saving: the polarity a variable last held
	level     []int32
	reason    []*Clause
	activity  []float64
	varInc    float64

	trail         []Lit
	trailHead     int
	decisionStack []int

	watchers  watcherList
	store     clauseStore
	clauseInc float64

	varQueue queue
	seen     []bool // conflict-analysis scratch, always all-false between calls

	assignedVars   int
	conflictClause *Clause
	maxConflicts   int

	stats   Stats
	config  Config
	verbose bool
	log     *logrus.Logger
}

// New builds an empty solver for nVars variables. Most callers should use
// NewFromDIMACS instead.
func New(nVars int, config Config) *Solver {
	if config.InitialMaxConflicts == 0 {
		config.InitialMaxConflicts = 100
	}
	s := &Solver{
		nVars:        nVars,
		value:        make([]Value, nVars),
		lastValue:    make([]Value, nVars),
		level:        make([]int32, nVars),
		reason:       make([]*Clause, nVars),
		activity:     make([]float64, nVars),
		varInc:       activityIncInit,
		clauseInc:    1,
		watchers:     newWatcherList(nVars),
		seen:         make([]bool, nVars),
		maxConflicts: config.InitialMaxConflicts,
		config:       config,
		verbose:      config.Verbose,
		log:          config.logger(),
	}
	for i := range s.level {
		s.level[i] = -1
		s.activity[i] = 1 // every variable starts at activity 1
	}
	s.decisionStack = append(s.decisionStack, 0) // root level
	s.varQueue = newQueue(s.activity)
	return s
}

// NewFromDIMACS builds a solver whose clause database and watcher lists are
// the ingested form of pb. It returns an already-Unsat solver if ingest
// detects a root-level contradiction.
func NewFromDIMACS(pb *dimacs.Problem, config Config) *Solver {
	s := New(pb.NVars, config)
	s.load(pb)
	return s
}

// trace emits one structured log entry. Callers in the hot path must guard
// this behind `if s.verbose` themselves, since building the fields map has a
// real cost even when logging is disabled.
func (s *Solver) trace(event string, fields logrusFields) {
	s.log.WithFields(fields).Debug(event)
}

// Solve runs the CDCL search loop to completion: propagate, analyze,
// decide, repeat, until the problem is proven SAT or UNSAT. There is no
// cancellation plumbed into the loop itself; a caller wanting a deadline
// races Solve against a timer in its own goroutine, same as the CLI's
// -timeout flag does.
func (s *Solver) Solve() Status {
	if s.conflictClause != nil {
		return Unsat // ingest already found a root-level contradiction
	}
	for {
		conflict := s.propagate()
		if conflict != nil {
			if s.currentLevel() == 0 {
				return Unsat
			}
			learned, backjumpLevel := s.analyze(conflict)
			s.backjump(learned, backjumpLevel)
			continue
		}
		if s.assignedVars == s.nVars {
			return Sat
		}
		s.decide()
	}
}

// Model returns the satisfying assignment found by a Sat-returning Solve
// call: Model()[v] is the DIMACS variable v+1's truth value.
func (s *Solver) Model() []bool {
	m := make([]bool, s.nVars)
	for v := range m {
		m[v] = s.value[v] == True
	}
	return m
}

// Stats returns a copy of the solver's running search counters.
func (s *Solver) Stats() Stats {
	return s.stats
}
