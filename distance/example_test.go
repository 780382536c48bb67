package distance_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/activeplan/builder"
	"github.com/katalvlaran/activeplan/distance"
)

// ExampleCompute collapses a corridor with a transit-only middle node.
func ExampleCompute() {
	g, _ := builder.ParseString(`Valve AA has flow rate=0; tunnel leads to valve BB
Valve BB has flow rate=0; tunnels lead to valves AA, CC
Valve CC has flow rate=5; tunnels lead to valves BB, DD
Valve DD has flow rate=9; tunnel leads to valve CC`)
	tbl, err := distance.Compute(context.Background(), g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tbl)
	// Output:
	//    AA CC DD
	// AA  0  2  3
	// CC  2  0  1
	// DD  3  1  0
}
