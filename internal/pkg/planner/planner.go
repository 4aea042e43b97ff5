package planner

import (
	"sort"

	"bitbucket.org/almantas/shiftplan/internal/pkg/matching"
)

//Plan runs the full pipeline: maximum matching, enumeration of all maximum
//assignments, quantity scoring and greedy scheduling.
//It is a pure function of the input, safe to call repeatedly
func Plan(in *Input) *Result {
	res := &Result{ShiftStart: in.ShiftStart, Lines: []string{},
		Assignment: map[string]string{}, Sequence: map[string][]Placement{}}

	g := matching.NewGraph(in.Lines, in.Employees)
	max := g.MaxMatchingSize()
	if max == 0 {
		return res
	}

	all := g.AllMaxMatchings(max)
	best := all[0]
	bestScore := -1
	for _, m := range all {
		if sc := Score(pairLines(m), in.Orders, in.Materials); sc > bestScore {
			bestScore = sc
			best = m
		}
	}

	chosen := pairLines(best)
	for _, p := range best {
		res.Assignment[p.Line] = p.Employee
	}
	res.Sequence = Schedule(chosen, in.Orders, in.Materials, in.ShiftStart, in.ShiftLength)
	res.Lines = append(res.Lines, chosen...)
	sort.Strings(res.Lines)
	return res
}

func pairLines(pairs []matching.Pair) []string {
	res := make([]string, len(pairs))
	for i, p := range pairs {
		res[i] = p.Line
	}
	return res
}
