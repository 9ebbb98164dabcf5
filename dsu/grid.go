package dsu

import "fmt"

// Connectivity selects which neighbouring cells are adjacent.
type Connectivity int

const (
	// Conn4 links N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 also links the diagonals.
	Conn8
)

// GridOptions tunes GridComponents.
type GridOptions struct {
	// LandThreshold is the minimum cell value counted as land.
	LandThreshold int
	// Conn chooses 4- or 8-directional adjacency.
	Conn Connectivity
}

// DefaultGridOptions returns LandThreshold = 1 and Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{LandThreshold: 1, Conn: Conn4}
}

// forward offsets: each undirected adjacency is visited once, from the
// cell that comes first in row-major order
var (
	forward4 = [][2]int{{1, 0}, {0, 1}}
	forward8 = [][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// GridComponents returns the connected regions of land cells of values,
// each as ascending row-major indices (y*width + x). Regions are ordered
// by their first cell.
//
// Steps:
//  1. Validate the grid is non-empty and rectangular.
//  2. Union every land cell with its forward land neighbours.
//  3. Keep the classes of land cells; water cells stay singletons.
//
// Errors:
//   - ErrEmptyGrid if values has no rows or no columns.
//   - ErrNonRectangular if rows differ in length.
//
// Complexity: O(W·H·α(W·H)).
func GridComponents(values [][]int, opts GridOptions) ([][]int, error) {
	// 1. Shape checks.
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	// Forward offsets only: the backward half is covered by earlier cells.
	offsets := forward4
	if opts.Conn == Conn8 {
		offsets = forward8
	}
	// land also bounds-checks; forward offsets never decrease y.
	land := func(x, y int) bool {
		return x >= 0 && x < w && y < h && values[y][x] >= opts.LandThreshold
	}

	// ByValue makes each region's representative its first cell.
	d, err := New(w*h, WithPolicy(ByValue))
	if err != nil {
		return nil, err
	}
	// 2. Link adjacent land cells.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !land(x, y) {
				continue // water
			}
			for _, o := range offsets {
				if nx, ny := x+o[0], y+o[1]; land(nx, ny) {
					d.Union(y*w+x, ny*w+nx)
				}
			}
		}
	}

	// 3. A class is land iff its smallest cell is land.
	var out [][]int
	for _, class := range d.Classes() {
		if c := class[0]; land(c%w, c/w) {
			out = append(out, class)
		}
	}

	return out, nil
}
