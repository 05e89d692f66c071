package main

// cell is an integer coordinate on the terminal's character grid.
type cell struct {
	x int
	y int
}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// drawLine visits every cell on the Bresenham line from a to b, endpoints
// included, skipping cells outside a width x height grid.
func drawLine(a, b cell, width, height int, plot func(x, y int)) {
	x0, y0 := a.x, a.y
	dx := absInt(b.x - x0)
	sx := -1
	if x0 < b.x {
		sx = 1
	}
	dy := -absInt(b.y - y0)
	sy := -1
	if y0 < b.y {
		sy = 1
	}
	err := dx + dy
	for {
		if x0 >= 0 && x0 < width && y0 >= 0 && y0 < height {
			plot(x0, y0)
		}
		if x0 == b.x && y0 == b.y {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
