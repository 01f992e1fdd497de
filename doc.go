// Package beamgrid simulates a beam of light travelling through a grid of
// mirrors and splitters.
//
// Under the hood, everything is organized under four subpackages:
//
//	grid/      immutable rectangular grid of tiles, text parser
//	beam/      beam state (position + direction) and the transition rules
//	energize/  fixed-point propagation from one entry beam
//	maximize/  search over every boundary entry on a worker pool
//
// Quick ASCII example:
//
//	.|.
//	...
//	.-.
//
// A beam entering the top-left cell heading Right splits on '|' into Up
// (off the grid) and Down, then splits again on '-' into Left and Right:
// six cells are energized.
//
//	go run ./cmd/beamgrid grid.txt
package beamgrid
