package pointmut_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/psjs/pointmut"
)

// ExampleNew builds an HKY model and reads one transition rate.
func ExampleNew() {
	x := []float64{math.Log(0.3), math.Log(0.5), math.Log(0.2), math.Log(9.5)}
	m, err := pointmut.New(pointmut.HKY, x, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m.Name(), m.Alphabet(), m.NumParams())
	// Output:
	// HKY 4 4
}
