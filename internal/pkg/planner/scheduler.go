package planner

import (
	"math"
	"sort"
	"time"
)

type job struct {
	number   string
	duration int // seconds, floor(quantity * timeToComplete)
	density  float64
	eligible []string
}

//Schedule packs orders onto the given lines within one shift.
//Orders are never split; an order that fits nowhere is dropped, not deferred.
//Every given line appears in the result, empty ones included
func Schedule(lines []string, orders []Order, materials []Material,
	shiftStart time.Time, shiftLength int) map[string][]Placement {
	res := make(map[string][]Placement, len(lines))
	for _, l := range lines {
		res[l] = []Placement{}
	}
	if shiftLength <= 0 || len(lines) == 0 {
		return res
	}

	jobs := prepareJobs(orders, materials, lines)
	used := make(map[string]int, len(lines))

	for _, j := range jobs {
		line, ok := bestLine(&j, used, shiftLength)
		if !ok {
			continue // no line fits the whole order
		}
		res[line] = append(res[line], Placement{OrderNumber: j.number,
			Start: shiftStart.Add(time.Duration(used[line]) * time.Second)})
		used[line] += j.duration
	}
	return res
}

// prepareJobs filters out orders with no eligible line and fixes the processing
// order: density desc, duration asc, order number asc
func prepareJobs(orders []Order, materials []Material, lines []string) []job {
	capable := capableLines(materials)
	set := toSet(lines)
	var res []job
	for _, o := range orders {
		elig := eligibleLines(capable[o.Material], set)
		if len(elig) == 0 {
			continue
		}
		density := math.Inf(1)
		if o.TimeToComplete > 0 {
			density = 1 / o.TimeToComplete
		}
		res = append(res, job{number: o.Number,
			duration: int(float64(o.Quantity) * o.TimeToComplete),
			density:  density, eligible: elig})
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].density != res[j].density {
			return res[i].density > res[j].density
		}
		if res[i].duration != res[j].duration {
			return res[i].duration < res[j].duration
		}
		return res[i].number < res[j].number
	})
	return res
}

func eligibleLines(capable []string, available map[string]bool) []string {
	seen := map[string]bool{}
	var res []string
	for _, l := range capable {
		if available[l] && !seen[l] {
			seen[l] = true
			res = append(res, l)
		}
	}
	sort.Strings(res)
	return res
}

// bestLine picks the fitting line with the most remaining capacity,
// ties by smallest used time, then by line ID
func bestLine(j *job, used map[string]int, shiftLength int) (string, bool) {
	best, found := "", false
	for _, l := range j.eligible {
		if used[l]+j.duration > shiftLength {
			continue
		}
		if !found || used[l] < used[best] || (used[l] == used[best] && l < best) {
			best = l
			found = true
		}
	}
	return best, found
}
