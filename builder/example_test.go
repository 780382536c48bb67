package builder_test

import (
	"fmt"

	"github.com/katalvlaran/activeplan/builder"
)

// ExampleParseString shows the text front end.
func ExampleParseString() {
	g, err := builder.ParseString(`Valve AA has flow rate=0; tunnel leads to valve BB
Valve BB has flow rate=13; tunnels lead to valves AA, CC
Valve CC has flow rate=2; tunnel leads to valve BB`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Start(), g.RewardNodes(), g.TotalRate())
	// Output: AA [BB CC] 15
}

// ExampleBuildGraph builds a reward-bearing corridor fixture.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithIDScheme(builder.ValveIDFn),
		builder.WithRateFn(builder.RatesFn(0, 0, 7, 3)),
	}, builder.Path(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Nodes(), g.RewardNodes())
	// Output: [AA AB AC AD] [AC AD]
}
