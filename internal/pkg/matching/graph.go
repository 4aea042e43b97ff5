package matching

//Employee keeps worker ID and production lines the worker is qualified to operate
type Employee struct {
	ID             string
	QualifiedLines []string
}

//Pair joins one line with one employee
type Pair struct {
	Line     string
	Employee string
}

//Graph is the bipartite line - employee qualification relation.
//Candidate employees for a line keep the employee input order
type Graph struct {
	lines      []string
	candidates map[string][]string
	empCount   int
}

//NewGraph builds qualification graph from available lines and employees
func NewGraph(lines []string, employees []Employee) *Graph {
	res := &Graph{}
	res.lines = lines
	res.candidates = make(map[string][]string, len(lines))
	for _, l := range lines {
		var cnd []string
		for _, e := range employees {
			if isQualified(&e, l) {
				cnd = append(cnd, e.ID)
			}
		}
		res.candidates[l] = cnd
	}
	ids := make(map[string]bool, len(employees))
	for _, e := range employees {
		ids[e.ID] = true
	}
	res.empCount = len(ids)
	return res
}

//MaxMatchingSize returns the maximum matching size computed by augmenting paths
func (g *Graph) MaxMatchingSize() int {
	match := make(map[string]string, len(g.lines)) // employee -> line
	for _, l := range g.lines {
		g.augment(l, match, make(map[string]bool))
	}
	return len(match)
}

// augment tries to match line, rematching already used employees recursively.
// seen guards one attempt from revisiting an employee
func (g *Graph) augment(line string, match map[string]string, seen map[string]bool) bool {
	for _, emp := range g.candidates[line] {
		if seen[emp] {
			continue
		}
		seen[emp] = true
		ml, f := match[emp]
		if !f || g.augment(ml, match, seen) {
			match[emp] = line
			return true
		}
	}
	return false
}

func isQualified(e *Employee, line string) bool {
	for _, l := range e.QualifiedLines {
		if l == line {
			return true
		}
	}
	return false
}
