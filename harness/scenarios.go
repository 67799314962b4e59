// SPDX-License-Identifier: MIT

package harness

// Scenario is a fixed system with a known solution.
type Scenario struct {
	Name     string
	Rows     [][]float64 // n rows of n+1 values
	Expected []float64   // length n
}

// ScenarioA is a 4×4 system whose first pivot step needs a row swap.
func ScenarioA() Scenario {
	return Scenario{
		Name: "A",
		Rows: [][]float64{
			{1, 2, 3, 4, 0},
			{7, 14, 20, 27, 0},
			{5, 10, 16, 19, -2},
			{3, 5, 6, 13, 5},
		},
		Expected: []float64{1, -1, -1, 1},
	}
}

// ScenarioB is a 5×5 system with a fractional solution.
func ScenarioB() Scenario {
	return Scenario{
		Name: "B",
		Rows: [][]float64{
			{2, -1, -1, -4, -1, 2},
			{-1, 2, -1, -1, -1, 0},
			{4, 1, -5, -8, -5, 1},
			{1, 1, 2, 1, 1, 0},
			{1, 1, 1, 2, 1, 0.5},
		},
		Expected: []float64{5.0 / 18.0, 4.0 / 9.0, -4.0 / 3.0, -5.0 / 6.0, 25.0 / 9.0},
	}
}

// Scenarios returns the built-in scenarios in validation order.
func Scenarios() []Scenario {
	return []Scenario{ScenarioA(), ScenarioB()}
}
