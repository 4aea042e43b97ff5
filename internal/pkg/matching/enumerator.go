package matching

import (
	"sort"
	"strings"
)

//AllMaxMatchings returns every distinct matching of size max as normalized pair lists.
//Result is sorted lexicographically by the (line, employee) pair sequence
func (g *Graph) AllMaxMatchings(max int) [][]Pair {
	if max <= 0 {
		return nil
	}
	ordered := make([]string, len(g.lines))
	copy(ordered, g.lines)
	// fewest candidates first, input order kept for ties
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(g.candidates[ordered[i]]) < len(g.candidates[ordered[j]])
	})

	w := &walker{g: g, ordered: ordered, max: max,
		used: make(map[string]bool), seen: make(map[string]bool)}
	w.walk(0)

	sort.Slice(w.result, func(i, j int) bool { return lessPairs(w.result[i], w.result[j]) })
	return w.result
}

type walker struct {
	g       *Graph
	ordered []string
	max     int

	used   map[string]bool
	cur    []Pair
	seen   map[string]bool
	result [][]Pair
}

func (w *walker) walk(i int) {
	remLines := len(w.ordered) - i
	remEmps := w.g.empCount - len(w.used)
	// exact feasibility bound: the branch can't reach max anymore
	if len(w.cur)+min(remLines, remEmps) < w.max {
		return
	}

	if i == len(w.ordered) {
		if len(w.cur) == w.max {
			w.record()
		}
		return
	}

	line := w.ordered[i]

	// skip the line
	w.walk(i + 1)

	// or assign any unused qualified employee
	for _, emp := range w.g.candidates[line] {
		if w.used[emp] {
			continue
		}
		w.used[emp] = true
		w.cur = append(w.cur, Pair{Line: line, Employee: emp})
		w.walk(i + 1)
		w.cur = w.cur[:len(w.cur)-1]
		delete(w.used, emp)
	}
}

func (w *walker) record() {
	m := make([]Pair, len(w.cur))
	copy(m, w.cur)
	sort.Slice(m, func(i, j int) bool {
		if m[i].Line != m[j].Line {
			return m[i].Line < m[j].Line
		}
		return m[i].Employee < m[j].Employee
	})
	k := pairsKey(m)
	if w.seen[k] {
		return
	}
	w.seen[k] = true
	w.result = append(w.result, m)
}

func pairsKey(pairs []Pair) string {
	sb := strings.Builder{}
	for _, p := range pairs {
		sb.WriteString(p.Line)
		sb.WriteByte(0)
		sb.WriteString(p.Employee)
		sb.WriteByte(1)
	}
	return sb.String()
}

func lessPairs(a, b []Pair) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].Line != b[i].Line {
			return a[i].Line < b[i].Line
		}
		if a[i].Employee != b[i].Employee {
			return a[i].Employee < b[i].Employee
		}
	}
	return len(a) < len(b)
}
