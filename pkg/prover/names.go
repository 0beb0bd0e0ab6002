package prover

import "strconv"

// freshVariableName returns the lowest-indexed unused name of the form
// v1, v2, … given the sequent's current combined free-variable/
// free-metavariable set (spec §4.3, "Fresh names").
func freshVariableName(taken map[string]struct{}) string {
	return freshName(taken, "v")
}

// freshMetavariableName returns the lowest-indexed unused name of the
// form t1, t2, ….
func freshMetavariableName(taken map[string]struct{}) string {
	return freshName(taken, "t")
}

func freshName(taken map[string]struct{}, prefix string) string {
	for i := 1; ; i++ {
		name := prefix + strconv.Itoa(i)
		if _, ok := taken[name]; !ok {
			return name
		}
	}
}
