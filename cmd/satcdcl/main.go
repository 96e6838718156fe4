// Command satcdcl reads a DIMACS CNF formula from stdin and prints its
// satisfiability verdict to stdout.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/fieldbox/fieldsat/dimacs"
	"github.com/fieldbox/fieldsat/solver"
)

const (
	exitOK        = 0
	exitBadInput  = 1
	exitTimeout   = 2
	exitInternal  = 3
)

func main() {
	var (
		verbose bool
		stats   bool
		timeout time.Duration
	)
	flag.BoolVarP(&verbose, "verbose", "v", false, "trace decisions, propagations and conflicts on stdout")
	flag.BoolVar(&stats, "stats", false, "print search statistics to stderr after the verdict")
	flag.DurationVar(&timeout, "timeout", 0, "abort and print UNKNOWN after this long (e.g. 10s); 0 means no limit")
	flag.Parse()

	pb, err := dimacs.Parse(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "c error: %v\n", err)
		os.Exit(exitBadInput)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&commentFormatter{})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	s := solver.NewFromDIMACS(pb, solver.Config{
		Logger:  logger,
		Verbose: verbose,
	})

	status, ok := solveWithTimeout(s, timeout)
	if !ok {
		fmt.Println("UNKNOWN")
		if stats {
			displayStats(s.Stats())
		}
		os.Exit(exitTimeout)
	}

	fmt.Println(status)
	if stats {
		displayStats(s.Stats())
	}
	os.Exit(exitOK)
}

// solveWithTimeout runs s.Solve() to completion, or abandons it once
// timeout elapses (0 means wait forever). The solver itself has no notion
// of cancellation: this races Solve() against a timer entirely from the
// caller's side, and the solver goroutine is simply left to finish (or not)
// in the background after we give up on it.
func solveWithTimeout(s *solver.Solver, timeout time.Duration) (solver.Status, bool) {
	if timeout <= 0 {
		return s.Solve(), true
	}
	result := make(chan solver.Status, 1)
	go func() { result <- s.Solve() }()
	select {
	case status := <-result:
		return status, true
	case <-time.After(timeout):
		return solver.Indet, false
	}
}

func displayStats(st solver.Stats) {
	fmt.Fprintf(os.Stderr, "c ======================================================\n")
	fmt.Fprintf(os.Stderr, "c | decisions    | %10d                       |\n", st.Decisions)
	fmt.Fprintf(os.Stderr, "c | propagations | %10d                       |\n", st.Propagations)
	fmt.Fprintf(os.Stderr, "c | conflicts    | %10d                       |\n", st.Conflicts)
	fmt.Fprintf(os.Stderr, "c | restarts     | %10d                       |\n", st.Restarts)
	fmt.Fprintf(os.Stderr, "c | learned      | %10d                       |\n", st.Learned)
	fmt.Fprintf(os.Stderr, "c | reductions   | %10d                       |\n", st.Reductions)
	fmt.Fprintf(os.Stderr, "c | deleted      | %10d                       |\n", st.Deleted)
	fmt.Fprintf(os.Stderr, "c ======================================================\n")
}

// commentFormatter renders each logrus entry as a single "c "-prefixed
// line, so verbose trace output stays valid DIMACS-solution commentary and
// never collides with the verdict line a competition harness greps for.
type commentFormatter struct{}

func (f *commentFormatter) Format(e *logrus.Entry) ([]byte, error) {
	line := fmt.Sprintf("c %s", e.Message)
	for k, v := range e.Data {
		line += fmt.Sprintf(" %s=%v", k, v)
	}
	return []byte(line + "\n"), nil
}
