package solver

import (
	"fmt"
	"strings"
)

// A Clause is an ordered, deduplicated list of literals, plus the two
// watch positions maintained by the propagator and the bookkeeping learned
// clauses need: an activity score and a tombstone flag set by Reduce once
// the clause has no reason pointing at it.
//
// A Clause is only ever owned by the clauseStore it is registered in; every
// other reference to it (watcher lists, reason slots, the learned
// registry) is non-owning, per the "arena + stable references" note in
// the design notes.
type Clause struct {
	lits    []Lit
	watch1  int
	watch2  int
	activity float64
	learned bool
	tomb    bool
}

// newClause builds an original (non-learned) clause. watch1/watch2 are set
// to 0/1 when the clause has at least 2 literals; a unit clause leaves them
// both at 0.
func newClause(lits []Lit) *Clause {
	c := &Clause{lits: lits}
	if len(lits) >= 2 {
		c.watch1, c.watch2 = 0, 1
	}
	return c
}

// newLearnedClause builds a learned clause. The caller has already placed
// the asserting (UIP) literal at position 0.
func newLearnedClause(lits []Lit) *Clause {
	c := &Clause{lits: lits, learned: true, activity: 1}
	if len(lits) >= 2 {
		c.watch1, c.watch2 = 0, 1
	}
	return c
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int { return len(c.lits) }

// Get returns the ith literal.
func (c *Clause) Get(i int) Lit { return c.lits[i] }

// Lits returns the clause's literals. The caller must not retain or mutate
// the returned slice beyond read-only inspection.
func (c *Clause) Lits() []Lit { return c.lits }

// Learned reports whether c was derived by conflict analysis, as opposed to
// being part of the original problem.
func (c *Clause) Learned() bool { return c.learned }

// otherWatch returns the watched literal that is not lit, and the watch
// index (1 or 2) lit occupies.
func (c *Clause) otherWatch(lit Lit) (other Lit, watchNum int) {
	if c.lits[c.watch1] == lit {
		return c.lits[c.watch2], 1
	}
	return c.lits[c.watch1], 2
}

func (c *Clause) setWatch(watchNum, pos int) {
	if watchNum == 1 {
		c.watch1 = pos
	} else {
		c.watch2 = pos
	}
}

// CNF renders the clause as a DIMACS clause line (without the trailing
// newline).
func (c *Clause) CNF() string {
	var b strings.Builder
	for _, l := range c.lits {
		fmt.Fprintf(&b, "%d ", l.Int())
	}
	b.WriteByte('0')
	return b.String()
}

func (c *Clause) String() string {
	parts := make([]string, len(c.lits))
	for i, l := range c.lits {
		parts[i] = fmt.Sprintf("%d", l.Int())
	}
	return "(" + strings.Join(parts, " ") + ")"
}
