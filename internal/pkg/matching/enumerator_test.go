package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllMaxMatchings_SingleResult(t *testing.T) {
	// e1 fits L1 only, so the one maximum matching is L1:e1, L2:e2
	g := NewGraph([]string{"L1", "L2"},
		[]Employee{{ID: "e1", QualifiedLines: []string{"L1"}},
			{ID: "e2", QualifiedLines: []string{"L1", "L2"}}})
	res := g.AllMaxMatchings(g.MaxMatchingSize())
	assert.Equal(t, [][]Pair{{{Line: "L1", Employee: "e1"}, {Line: "L2", Employee: "e2"}}}, res)
}

func TestAllMaxMatchings_Several(t *testing.T) {
	g := NewGraph([]string{"L1", "L2"},
		[]Employee{{ID: "e1", QualifiedLines: []string{"L1", "L2"}},
			{ID: "e2", QualifiedLines: []string{"L1", "L2"}}})
	res := g.AllMaxMatchings(g.MaxMatchingSize())
	assert.Equal(t, [][]Pair{
		{{Line: "L1", Employee: "e1"}, {Line: "L2", Employee: "e2"}},
		{{Line: "L1", Employee: "e2"}, {Line: "L2", Employee: "e1"}}}, res)
}

func TestAllMaxMatchings_SkipsLine(t *testing.T) {
	// only one employee, every line is a separate maximum matching of size 1
	g := NewGraph([]string{"L2", "L1"},
		[]Employee{{ID: "e1", QualifiedLines: []string{"L1", "L2"}}})
	res := g.AllMaxMatchings(g.MaxMatchingSize())
	assert.Equal(t, [][]Pair{
		{{Line: "L1", Employee: "e1"}},
		{{Line: "L2", Employee: "e1"}}}, res)
}

func TestAllMaxMatchings_ZeroMax(t *testing.T) {
	g := NewGraph([]string{"L1"}, []Employee{{ID: "e1"}})
	assert.Empty(t, g.AllMaxMatchings(0))
}

func TestAllMaxMatchings_Valid(t *testing.T) {
	lines := []string{"L1", "L2"}
	for _, emps := range allGraphs(lines) {
		g := NewGraph(lines, emps)
		max := g.MaxMatchingSize()
		if max == 0 {
			continue
		}
		res := g.AllMaxMatchings(max)
		assert.NotEmpty(t, res, "graph %v", emps)
		keys := map[string]bool{}
		for _, m := range res {
			assert.Equal(t, max, len(m), "graph %v", emps)
			usedL, usedE := map[string]bool{}, map[string]bool{}
			for _, p := range m {
				assert.False(t, usedL[p.Line], "line repeated in %v", m)
				assert.False(t, usedE[p.Employee], "employee repeated in %v", m)
				usedL[p.Line] = true
				usedE[p.Employee] = true
			}
			k := pairsKey(m)
			assert.False(t, keys[k], "duplicate matching %v", m)
			keys[k] = true
		}
		assert.Equal(t, len(bruteForceAll(lines, emps, max)), len(res), "graph %v", emps)
	}
}

func TestAllMaxMatchings_Sorted(t *testing.T) {
	g := NewGraph([]string{"L3", "L1", "L2"},
		[]Employee{{ID: "e2", QualifiedLines: []string{"L1", "L2", "L3"}},
			{ID: "e1", QualifiedLines: []string{"L1", "L2", "L3"}},
			{ID: "e3", QualifiedLines: []string{"L1", "L2", "L3"}}})
	res := g.AllMaxMatchings(g.MaxMatchingSize())
	assert.Equal(t, 6, len(res))
	for i := 1; i < len(res); i++ {
		assert.True(t, lessPairs(res[i-1], res[i]), "%v before %v", res[i-1], res[i])
	}
	assert.Equal(t, []Pair{{Line: "L1", Employee: "e1"}, {Line: "L2", Employee: "e2"},
		{Line: "L3", Employee: "e3"}}, res[0])
}

// bruteForceAll collects normalized maximum matchings without pruning
func bruteForceAll(lines []string, employees []Employee, max int) map[string]bool {
	res := map[string]bool{}
	var cur []Pair
	var rec func(i int, used map[string]bool)
	rec = func(i int, used map[string]bool) {
		if i == len(lines) {
			if len(cur) == max {
				m := make([]Pair, len(cur))
				copy(m, cur)
				sortPairsForTest(m)
				res[pairsKey(m)] = true
			}
			return
		}
		rec(i+1, used)
		for _, e := range employees {
			if used[e.ID] || !isQualified(&e, lines[i]) {
				continue
			}
			used[e.ID] = true
			cur = append(cur, Pair{Line: lines[i], Employee: e.ID})
			rec(i+1, used)
			cur = cur[:len(cur)-1]
			delete(used, e.ID)
		}
	}
	rec(0, map[string]bool{})
	return res
}

func sortPairsForTest(m []Pair) {
	for i := 1; i < len(m); i++ {
		for j := i; j > 0 && (m[j].Line < m[j-1].Line ||
			(m[j].Line == m[j-1].Line && m[j].Employee < m[j-1].Employee)); j-- {
			m[j], m[j-1] = m[j-1], m[j]
		}
	}
}
