package builder_test

import (
	"fmt"

	"github.com/katalvlaran/frankengrid/builder"
	"github.com/katalvlaran/frankengrid/core"
)

// ExampleBuildGraph assembles a 3×3 rook lattice with a BA(m=2) social layer.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(42)},
		builder.GridNodes(3, 3),
		builder.GeoGrid(3, 3, core.Rook),
		builder.SocialBA(2),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Order(), g.GeoSize(), g.SocialSize())
	fmt.Println(builder.GeoGridEdgeCount(3, 3, core.Queen), builder.SocialBAEdgeCount(9, 2))
	// Output:
	// 9 12 14
	// 20 14
}
