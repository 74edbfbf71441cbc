package term

import "pixos/device/video/display"

// Region describes a rectangular area of the character grid, in cell
// coordinates.
type Region struct {
	display.Position
	display.Size
}

// DirtyTracker keeps one bit per grid cell recording which cells changed
// since the last render pass. The render path pulls rectangular regions out
// of the bitmap so repaints stay local to the areas that actually changed.
type DirtyTracker struct {
	width  uint32
	height uint32
	bits   []bool
}

// NewDirtyTracker creates a tracker for a width x height cell grid with all
// bits clear.
func NewDirtyTracker(width, height uint32) *DirtyTracker {
	return &DirtyTracker{
		width:  width,
		height: height,
		bits:   make([]bool, width*height),
	}
}

// Mark flags a single cell as dirty. Out-of-range coordinates are ignored.
func (d *DirtyTracker) Mark(row, col uint32) {
	if row >= d.height || col >= d.width {
		return
	}
	d.bits[row*d.width+col] = true
}

// MarkRow flags every cell of a row as dirty.
func (d *DirtyTracker) MarkRow(row uint32) {
	if row >= d.height {
		return
	}
	for col := uint32(0); col < d.width; col++ {
		d.bits[row*d.width+col] = true
	}
}

// InitRedraw flags the whole grid so the next render repaints everything.
func (d *DirtyTracker) InitRedraw() {
	for i := range d.bits {
		d.bits[i] = true
	}
}

// Clear resets every dirty bit.
func (d *DirtyTracker) Clear() {
	for i := range d.bits {
		d.bits[i] = false
	}
}

// IsDirty reports whether a cell is flagged. Out-of-range coordinates
// report clean.
func (d *DirtyTracker) IsDirty(row, col uint32) bool {
	if row >= d.height || col >= d.width {
		return false
	}
	return d.bits[row*d.width+col]
}

// DirtyRegions extracts the dirty cells as a list of bounding rectangles,
// one per connected component of the dirty bitmap (4-connectivity), and
// consumes the bits it visits. Regions may overlap when two components
// interlock diagonally; every dirty cell is covered by at least one
// returned region.
func (d *DirtyTracker) DirtyRegions() []Region {
	var regions []Region

	for row := uint32(0); row < d.height; row++ {
		for col := uint32(0); col < d.width; col++ {
			if !d.bits[row*d.width+col] {
				continue
			}
			regions = append(regions, d.floodRegion(row, col))
		}
	}

	return regions
}

type cellRef struct{ row, col uint32 }

// floodRegion consumes the connected component containing (row, col) and
// returns its bounding rectangle. The traversal uses an explicit stack so
// component size is bounded by the grid, not the call stack.
func (d *DirtyTracker) floodRegion(row, col uint32) Region {
	minRow, maxRow := row, row
	minCol, maxCol := col, col

	stack := []cellRef{{row, col}}
	d.bits[row*d.width+col] = false

	for len(stack) != 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if c.row < minRow {
			minRow = c.row
		}
		if c.row > maxRow {
			maxRow = c.row
		}
		if c.col < minCol {
			minCol = c.col
		}
		if c.col > maxCol {
			maxCol = c.col
		}

		d.visit(c.row, c.col-1, &stack)
		d.visit(c.row, c.col+1, &stack)
		d.visit(c.row-1, c.col, &stack)
		d.visit(c.row+1, c.col, &stack)
	}

	return Region{
		Position: display.Position{X: minCol, Y: minRow},
		Size:     display.Size{Width: maxCol - minCol + 1, Height: maxRow - minRow + 1},
	}
}

// visit pushes a neighbor onto the stack if it is in range and dirty,
// clearing its bit so it is pushed at most once. Coordinate underflow wraps
// to a huge value and fails the range check.
func (d *DirtyTracker) visit(row, col uint32, stack *[]cellRef) {
	if row >= d.height || col >= d.width {
		return
	}
	if !d.bits[row*d.width+col] {
		return
	}
	d.bits[row*d.width+col] = false
	*stack = append(*stack, cellRef{row, col})
}
