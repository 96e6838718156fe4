package solver

import (
	"strconv"
	"strings"
	"testing"

	"github.com/fieldbox/fieldsat/dimacs"
)

func mustParse(t *testing.T, cnf string) *dimacs.Problem {
	t.Helper()
	pb, err := dimacs.Parse(strings.NewReader(cnf))
	if err != nil {
		t.Fatalf("dimacs.Parse: %v", err)
	}
	return pb
}

func solve(t *testing.T, cnf string) (*Solver, Status) {
	t.Helper()
	pb := mustParse(t, cnf)
	s := NewFromDIMACS(pb, Config{})
	return s, s.Solve()
}

func TestSolveSatisfiable(t *testing.T) {
	cnf := `p cnf 3 3
1 2 0
-1 3 0
-2 -3 0
`
	s, status := solve(t, cnf)
	if status != Sat {
		t.Fatalf("expected Sat, got %v", status)
	}
	checkModel(t, cnf, s.Model())
}

func TestSolveUnsatisfiable(t *testing.T) {
	cnf := `p cnf 3 4
1 2 3 0
-1 0
-2 0
-3 0
`
	if _, status := solve(t, cnf); status != Unsat {
		t.Fatalf("expected Unsat, got %v", status)
	}
}

func TestSolveRootUnitConflict(t *testing.T) {
	// Two contradictory unit clauses: ingest itself should catch this
	// before Solve ever starts its search loop.
	cnf := `p cnf 1 2
1 0
-1 0
`
	pb := mustParse(t, cnf)
	s := NewFromDIMACS(pb, Config{})
	if s.conflictClause == nil {
		t.Fatalf("expected ingest to flag a root-level contradiction")
	}
	if status := s.Solve(); status != Unsat {
		t.Fatalf("expected Unsat, got %v", status)
	}
}

func TestSolveDropsTautology(t *testing.T) {
	// The first clause is a tautology (1 and -1 both present) and should
	// be dropped outright, not shrunk or kept.
	cnf := `p cnf 2 2
1 -1 2 0
-2 0
`
	s, status := solve(t, cnf)
	if status != Sat {
		t.Fatalf("expected Sat, got %v", status)
	}
	if len(s.store.original) != 0 {
		t.Fatalf("expected the tautology to be dropped, kept %d clauses", len(s.store.original))
	}
}

// pigeonholeCNF renders the standard "pigeons into holes" unsat instance:
// every pigeon gets at least one hole, and no hole gets two pigeons. It is
// unsat whenever pigeons > holes, and provably so by a counting argument
// independent of how any particular solver searches it.
func pigeonholeCNF(pigeons, holes int) string {
	var b strings.Builder
	nClauses := pigeons + holes*pigeons*(pigeons-1)/2
	b.WriteString("p cnf ")
	b.WriteString(strconv.Itoa(pigeons * holes))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(nClauses))
	b.WriteByte('\n')
	for p := 0; p < pigeons; p++ {
		for h := 0; h < holes; h++ {
			b.WriteString(strconv.Itoa(p*holes + h + 1))
			b.WriteByte(' ')
		}
		b.WriteString("0\n")
	}
	for h := 0; h < holes; h++ {
		for p1 := 0; p1 < pigeons; p1++ {
			for p2 := p1 + 1; p2 < pigeons; p2++ {
				v1 := p1*holes + h + 1
				v2 := p2*holes + h + 1
				b.WriteString(strconv.Itoa(-v1))
				b.WriteByte(' ')
				b.WriteString(strconv.Itoa(-v2))
				b.WriteString(" 0\n")
			}
		}
	}
	return b.String()
}

func TestSolvePigeonholeUnsat(t *testing.T) {
	// 4 pigeons, 3 holes: classic unsat instance that forces several
	// conflicts and learned clauses during the search.
	if _, status := solve(t, pigeonholeCNF(4, 3)); status != Unsat {
		t.Fatalf("expected Unsat for the pigeonhole instance, got %v", status)
	}
}

func TestSolveForcesRestart(t *testing.T) {
	// A conflict budget of 1 means the very first conflict backjump()
	// resolves already meets the restart threshold, so any instance whose
	// search needs more than a single conflict is guaranteed to restart at
	// least once. 6 pigeons into 5 holes is large enough to need several.
	cnf := pigeonholeCNF(6, 5)
	pb := mustParse(t, cnf)
	s := NewFromDIMACS(pb, Config{InitialMaxConflicts: 1})
	if status := s.Solve(); status != Unsat {
		t.Fatalf("expected Unsat for the pigeonhole instance, got %v", status)
	}
	if s.Stats().Restarts == 0 {
		t.Fatalf("expected at least one restart with a conflict budget of 1")
	}
}

// checkModel verifies that model satisfies every clause in cnf, failing the
// test otherwise. A minimal, readable alternative to trusting Solve's own
// bookkeeping.
func checkModel(t *testing.T, cnf string, model []bool) {
	t.Helper()
	pb := mustParse(t, cnf)
	for _, clause := range pb.Clauses {
		sat := false
		for _, lit := range clause {
			v := lit
			if v < 0 {
				v = -v
			}
			val := model[v-1]
			if (lit > 0) == val {
				sat = true
				break
			}
		}
		if !sat {
			t.Errorf("clause %v not satisfied by model %v", clause, model)
		}
	}
}
