// Command lifegrid runs Conway's Game of Life on a fixed grid.
package main

func main() {
	Execute()
}
