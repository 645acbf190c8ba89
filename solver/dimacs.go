package solver

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseDIMACS parses text in the DIMACS CNF format, adapted from
// cespare-saturday's ParseDIMACS: a few non-standard variations are
// accepted for convenience.
//
//   - Comments (lines beginning with 'c') may appear anywhere, not just in
//     the preamble.
//   - The problem line may be missing.
func ParseDIMACS(r io.Reader) (*Problem, error) {
	var header struct {
		vars    int
		clauses int
	}
	var clauses [][]int
	var clause []int
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(clauses) > 0 {
				return nil, errors.New("problem line appears after clauses")
			}
			if header.vars > 0 {
				return nil, errors.New("multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return nil, errors.Errorf("malformed problem line %q", line)
			}
			if fields[1] != "cnf" {
				return nil, errors.Errorf("only cnf supported; got %q", fields[1])
			}
			var err error
			header.vars, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, errors.Wrap(err, "malformed #vars in problem line")
			}
			header.clauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, errors.Wrap(err, "malformed #clauses in problem line")
			}
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrap(err, "invalid literal")
			}
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
			} else {
				clause = append(clause, n)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(clause) > 0 {
		clauses = append(clauses, clause)
	}
	if header.clauses > 0 && len(clauses) != header.clauses {
		return nil, errors.Errorf("problem line specifies %d clauses, but there are %d", header.clauses, len(clauses))
	}
	pb, err := ParseSlice(clauses)
	if err != nil {
		return nil, errors.Wrap(err, "could not build problem from parsed DIMACS clauses")
	}
	if header.vars > pb.NbVars {
		pb.NbVars = header.vars
	}
	return pb, nil
}
