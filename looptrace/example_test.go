package looptrace_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/looptrace"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// ExampleTrace walks the loop of a small map cluttered with unrelated pipes.
//
//	-L|F7
//	7S-7|
//	L|7||
//	-L-J|
//	L|-JF
//
// Only the square through S is traced; the start stands for an 'F' bend.
func ExampleTrace() {
	g, _ := pipegrid.Parse([]byte("-L|F7\n7S-7|\nL|7||\n-L-J|\nL|-JF\n"))

	loop, err := looptrace.Trace(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("length:", loop.Len())
	fmt.Println("farthest:", loop.Farthest())
	fmt.Println("start shape:", loop.StartShape)
	fmt.Println("path:", loop.Path)
	// Output:
	// length: 8
	// farthest: 4
	// start shape: F
	// path: [(1,1) (2,1) (3,1) (3,2) (3,3) (2,3) (1,3) (1,2)]
}

// ExampleResolveStart infers the bend joining North and West.
func ExampleResolveStart() {
	t, _ := looptrace.ResolveStart([]pipegrid.Direction{pipegrid.West, pipegrid.North})
	fmt.Println(t)
	// Output:
	// J
}
