package pipegrid_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// ExampleParse shows the parsed dimensions and the start marker location.
func ExampleParse() {
	g, err := pipegrid.Parse([]byte("-L|F7\n7S-7|\nL|7||\n-L-J|\nL|-JF\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%dx%d start=%v\n", g.Width, g.Height, g.Start)
	// Output:
	// 5x5 start=(1,1)
}

// ExampleExit follows an 'L' bend entered from its northern side.
func ExampleExit() {
	out, ok := pipegrid.Exit(pipegrid.NorthEast, pipegrid.North)
	fmt.Println(out, ok)
	_, ok = pipegrid.Exit(pipegrid.NorthEast, pipegrid.South)
	fmt.Println(ok)
	// Output:
	// east true
	// false
}
