package dimacs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBasic(t *testing.T) {
	cnf := `c a comment line
p cnf 3 2
1 -2 3 0
-1 2 0
`
	pb, err := Parse(strings.NewReader(cnf))
	require.NoError(t, err)
	require.Equal(t, 3, pb.NVars)
	require.Equal(t, [][]int32{{1, -2, 3}, {-1, 2}}, pb.Clauses)
}

func TestParseUnitClause(t *testing.T) {
	pb, err := Parse(strings.NewReader("p cnf 1 1\n1 0\n"))
	require.NoError(t, err)
	require.Equal(t, [][]int32{{1}}, pb.Clauses)
}

func TestParseRejectsMissingHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("1 2 0\n"))
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseRejectsLiteralOutOfRange(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 2 1\n5 0\n"))
	require.Error(t, err)
}

func TestParseRejectsUnterminatedClause(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 2 1\n1 2"))
	require.Error(t, err)
}

func TestParseToleratesBlankLines(t *testing.T) {
	cnf := "p cnf 2 2\n\n1 2 0\n\n-1 -2 0\n"
	pb, err := Parse(strings.NewReader(cnf))
	require.NoError(t, err)
	require.Equal(t, [][]int32{{1, 2}, {-1, -2}}, pb.Clauses)
}
