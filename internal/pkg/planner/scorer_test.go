package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testMaterials = []Material{
	{Number: "M1", Lines: []string{"L1", "L2"}},
	{Number: "M2", Lines: []string{"L2"}},
	{Number: "M3", Lines: []string{"L3"}},
}

var testOrders = []Order{
	{Number: "PO-001", Material: "M1", Quantity: 10, TimeToComplete: 1},
	{Number: "PO-002", Material: "M2", Quantity: 20, TimeToComplete: 2},
	{Number: "PO-003", Material: "M3", Quantity: 40, TimeToComplete: 3},
}

func TestScore(t *testing.T) {
	assert.Equal(t, 10, Score([]string{"L1"}, testOrders, testMaterials))
	assert.Equal(t, 30, Score([]string{"L2"}, testOrders, testMaterials))
	assert.Equal(t, 70, Score([]string{"L2", "L3"}, testOrders, testMaterials))
}

func TestScore_OrderCountedOnce(t *testing.T) {
	// PO-001 can run on both lines but adds its quantity once
	assert.Equal(t, 40, Score([]string{"L1", "L2"}, testOrders, testMaterials))
}

func TestScore_Empty(t *testing.T) {
	assert.Equal(t, 0, Score(nil, testOrders, testMaterials))
	assert.Equal(t, 0, Score([]string{"L1"}, nil, testMaterials))
	assert.Equal(t, 0, Score([]string{"L9"}, testOrders, testMaterials))
	assert.Equal(t, 0, Score([]string{"L1"}, testOrders, nil))
}

func TestScore_Monotonic(t *testing.T) {
	sets := [][]string{nil, {"L1"}, {"L2"}, {"L3"}, {"L1", "L3"}, {"L2", "L3"}}
	for _, s := range sets {
		base := Score(s, testOrders, testMaterials)
		for _, add := range []string{"L1", "L2", "L3"} {
			assert.GreaterOrEqual(t, Score(append(append([]string{}, s...), add), testOrders, testMaterials),
				base, "adding %s to %v", add, s)
		}
	}
}
