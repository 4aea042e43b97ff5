package planner

//Score sums quantities of all orders producible on at least one of the given lines.
//An order counts once however many eligible lines it has
func Score(lines []string, orders []Order, materials []Material) int {
	capable := capableLines(materials)
	set := toSet(lines)
	total := 0
	for _, o := range orders {
		if anyIn(capable[o.Material], set) {
			total += o.Quantity
		}
	}
	return total
}

func anyIn(lines []string, set map[string]bool) bool {
	for _, l := range lines {
		if set[l] {
			return true
		}
	}
	return false
}
