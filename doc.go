// Package pipeloop analyzes a grid of pipe tiles that forms a single closed
// loop through a start tile 'S'.
//
// Two questions are answered from the same front end:
//
//   - Farthest: how many steps along the loop is the cell farthest from the
//     start? (half the loop length, rounded down)
//   - Enclosed: how many cells does the loop enclose?
//
// Quick ASCII example:
//
//	.....
//	.S-7.
//	.|.|.      loop length 8, farthest 4, enclosed 1
//	.L-J.
//	.....
//
// Under the hood, the work is split into three subpackages:
//
//	pipegrid/  Grid parsing, tiles, directions and the connector table
//	looptrace/ loop discovery from the start and start-shape inference
//	interior/  scanline classification of enclosed cells
//
// Every computation parses its own copy of the input, so the functions are
// safe for concurrent use and return the same result for the same buffer.
//
//	go install github.com/katalvlaran/pipeloop/cmd/pipeloop@latest
package pipeloop
