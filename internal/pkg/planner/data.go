package planner

import (
	"time"

	"bitbucket.org/almantas/shiftplan/internal/pkg/matching"
)

//Order is one indivisible production order
type Order struct {
	Number         string
	Material       string
	Quantity       int
	TimeToComplete float64 // seconds per unit
}

//Material keeps material ID and lines capable of producing it
type Material struct {
	Number string
	Lines  []string
}

//Placement is one scheduled order on a line
type Placement struct {
	OrderNumber string
	Start       time.Time
}

//Input is everything one planning call works on
type Input struct {
	Lines       []string
	Employees   []matching.Employee
	Orders      []Order
	Materials   []Material
	ShiftStart  time.Time
	ShiftLength int // seconds
}

//Result is the final plan for one shift
type Result struct {
	ShiftStart time.Time
	Lines      []string
	Assignment map[string]string
	Sequence   map[string][]Placement
}

func capableLines(materials []Material) map[string][]string {
	res := make(map[string][]string, len(materials))
	for _, m := range materials {
		res[m.Number] = m.Lines
	}
	return res
}

func toSet(lines []string) map[string]bool {
	res := make(map[string]bool, len(lines))
	for _, l := range lines {
		res[l] = true
	}
	return res
}
